package hypothesis

import (
	"fmt"
	"strings"

	"coldreach/internal/signal"
)

type FormerConfig struct {
	StrongWeight      float64
	MinStrongTotal    float64
	MinEvidenceChars  int
	MaxHedges         int
	HedgeRelevanceBar float64
	RecentFreshness   float64
	StaleFreshness    float64
	HighRelevance     float64
}

func DefaultFormerConfig() FormerConfig {
	return FormerConfig{
		StrongWeight:      0.3,
		MinStrongTotal:    0.5,
		MinEvidenceChars:  10,
		MaxHedges:         2,
		HedgeRelevanceBar: 0.7,
		RecentFreshness:   0.8,
		StaleFreshness:    0.5,
		HighRelevance:     0.7,
	}
}

var hedgeWords = []string{
	"might", "maybe", "possibly", "perhaps", "could", "potentially", "unclear", "rumored",
}

var kindKeywords = map[signal.Kind][]string{
	signal.KindFundingEvent:  {"funding", "raised", "round", "series", "investment", "investor", "capital"},
	signal.KindRoleChange:    {"joined", "promoted", "hired", "appointed", "new role", "vp", "head of", "chief", "director", "cto", "ceo"},
	signal.KindTechAdoption:  {"adopted", "migrated", "migration", "stack", "platform", "tool", "deployed", "rolled out", "switched"},
	signal.KindGrowth:        {"growth", "growing", "expanded", "expansion", "hiring", "headcount", "opened", "scaling", "grew"},
	signal.KindIndustryTrend: {"industry", "market", "trend", "regulation", "sector", "shift", "compliance"},
}

var reasonByKind = map[signal.Kind]string{
	signal.KindFundingEvent:  "fresh funding usually means new budget and new initiatives in motion",
	signal.KindRoleChange:    "a leadership change suggests priorities are being re-examined",
	signal.KindTechAdoption:  "a recent technology change suggests the team is actively rebuilding how it works",
	signal.KindGrowth:        "visible growth tends to surface the exact problems we help with",
	signal.KindIndustryTrend: "a shift in the wider industry is likely already on their radar",
}

type Former struct {
	config FormerConfig
}

func NewFormer(cfg FormerConfig) *Former {
	return &Former{config: cfg}
}

// Form reduces a batch of weighted signals to exactly one hypothesis.
// It is total: any input, including an empty batch, yields a usable result.
func (f *Former) Form(sigs []signal.WeightedSignal) Hypothesis {
	valid := make([]signal.WeightedSignal, 0, len(sigs))
	for _, s := range sigs {
		if s.Weight > signal.ScoreFloor {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return f.conservative()
	}

	var strong []signal.WeightedSignal
	var strongTotal float64
	for _, s := range valid {
		if s.Weight >= f.config.StrongWeight {
			strong = append(strong, s)
			strongTotal += s.Weight
		}
	}
	if len(strong) == 0 || strongTotal < f.config.MinStrongTotal {
		return f.conservative()
	}

	top := valid[0]
	for _, s := range valid[1:] {
		if s.Weight > top.Weight {
			top = s
		}
	}
	if !f.passesEvidenceCheck(top) || !passesTopicalCheck(top) {
		return f.conservative()
	}

	return f.compose(top, valid, strong)
}

func (f *Former) compose(top signal.WeightedSignal, valid, strong []signal.WeightedSignal) Hypothesis {
	reason := reasonByKind[top.Kind]
	if top.Freshness > f.config.RecentFreshness {
		reason += " (recent)"
	}

	var evidence []string
	for _, s := range strong {
		if f.passesEvidenceCheck(s) {
			evidence = append(evidence, fmt.Sprintf("%s: %s", s.Kind, s.Description))
		}
	}

	var recent, highRelevance, direct int
	for _, s := range valid {
		if s.Freshness > f.config.RecentFreshness {
			recent++
		}
		if s.Relevance >= f.config.HighRelevance {
			highRelevance++
		}
		if s.Kind.IsDirect() {
			direct++
		}
	}

	factors := []string{fmt.Sprintf("%d signal(s) carry meaningful weight", len(strong))}
	if recent > 0 {
		factors = append(factors, fmt.Sprintf("%d signal(s) are very recent", recent))
	}
	if highRelevance > 0 {
		factors = append(factors, fmt.Sprintf("%d signal(s) have high stated relevance", highRelevance))
	}
	if direct > 0 {
		factors = append(factors, fmt.Sprintf("%d signal(s) describe events at the company itself", direct))
	}

	caveats := []string{genericCaveat}
	if weak := len(valid) - len(strong); weak > 0 {
		caveats = append(caveats, fmt.Sprintf("%d weaker signal(s) were set aside", weak))
	}
	stale := 0
	for _, s := range valid {
		if s.Freshness < f.config.StaleFreshness {
			stale++
		}
	}
	if stale > 0 {
		caveats = append(caveats, fmt.Sprintf("%d signal(s) are no longer fresh", stale))
	}

	return Hypothesis{
		PrimaryReason:       reason,
		SupportingEvidence:  evidence,
		ConfidenceFactors:   factors,
		ConservativeCaveats: caveats,
		PrimaryKind:         top.Kind,
	}
}

func (f *Former) conservative() Hypothesis {
	return Hypothesis{
		PrimaryReason:       conservativeReason,
		ConfidenceFactors:   []string{"no single signal stood out as a reliable reason to reach out"},
		ConservativeCaveats: []string{insufficiencyCaveat, genericCaveat},
	}
}

// passesEvidenceCheck rejects descriptions too short or too hedged to quote.
// Heavy hedging is tolerated only when the source claims high relevance.
func (f *Former) passesEvidenceCheck(s signal.WeightedSignal) bool {
	desc := strings.TrimSpace(s.Description)
	if len(desc) < f.config.MinEvidenceChars {
		return false
	}
	if countHedges(desc) > f.config.MaxHedges && s.Relevance < f.config.HedgeRelevanceBar {
		return false
	}
	return true
}

func passesTopicalCheck(s signal.WeightedSignal) bool {
	keywords, ok := kindKeywords[s.Kind]
	if !ok {
		return false
	}
	desc := strings.ToLower(s.Description)
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func countHedges(desc string) int {
	lower := strings.ToLower(desc)
	count := 0
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && r != '\''
	}) {
		for _, hedge := range hedgeWords {
			if word == hedge {
				count++
			}
		}
	}
	return count
}
