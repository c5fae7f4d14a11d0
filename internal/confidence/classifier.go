package confidence

import (
	"strings"

	"coldreach/internal/hypothesis"
	"coldreach/internal/signal"
)

type Level string

const (
	High   Level = "high"
	Medium Level = "medium"
	Low    Level = "low"
)

// Rank orders levels for threshold comparisons: High > Medium > Low.
func (l Level) Rank() int {
	switch l {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

type ClassifierConfig struct {
	StrongWeight        float64
	WeakRatioOverride   float64
	MaxKindsWithLowAvg  int
	LowAvgWeight        float64
	HighMinSignals      int
	HighAvgWeight       float64
	HighAvgFreshness    float64
	HighAvgRelevance    float64
	NoDirectAvgWeight   float64
	NoDirectFreshness   float64
	MediumAvgWeight     float64
	MediumAvgWeightBar  float64
	MediumFreshnessBar  float64
	MediumWeakRatio     float64
}

func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		StrongWeight:       0.3,
		WeakRatioOverride:  0.8,
		MaxKindsWithLowAvg: 3,
		LowAvgWeight:       0.5,
		HighMinSignals:     2,
		HighAvgWeight:      0.7,
		HighAvgFreshness:   0.6,
		HighAvgRelevance:   0.7,
		NoDirectAvgWeight:  0.8,
		NoDirectFreshness:  0.7,
		MediumAvgWeight:    0.3,
		MediumAvgWeightBar: 0.35,
		MediumFreshnessBar: 0.1,
		MediumWeakRatio:    0.7,
	}
}

// Pressure language in a hypothesis is a red flag regardless of how good
// the numbers look; conservative output is the only safe response.
var pressureTerms = []string{
	"urgent", "immediately", "act now", "act fast", "guaranteed", "guarantee",
	"exclusive", "limited time", "last chance", "once in a lifetime", "don't miss",
}

type Classifier struct {
	config ClassifierConfig
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{config: cfg}
}

// Classify maps a hypothesis and its weighted signals to a level.
// Rules are evaluated in order; the first match wins.
func (c *Classifier) Classify(hyp hypothesis.Hypothesis, sigs []signal.WeightedSignal) Level {
	st := summarize(sigs, c.config.StrongWeight)

	if st.valid == 0 {
		return Low
	}
	if hyp.IsConservative() {
		return Low
	}
	if c.safetyOverride(hyp, st) {
		return Low
	}
	if c.qualifiesHigh(st) {
		return High
	}
	if c.qualifiesMedium(st) {
		return Medium
	}
	return Low
}

func (c *Classifier) safetyOverride(hyp hypothesis.Hypothesis, st stats) bool {
	text := strings.ToLower(hyp.PrimaryReason + " " + strings.Join(hyp.SupportingEvidence, " "))
	for _, term := range pressureTerms {
		if strings.Contains(text, term) {
			return true
		}
	}
	if st.weakRatio > c.config.WeakRatioOverride {
		return true
	}
	if st.kinds > c.config.MaxKindsWithLowAvg && st.avgWeight < c.config.LowAvgWeight {
		return true
	}
	return false
}

func (c *Classifier) qualifiesHigh(st stats) bool {
	cfg := c.config
	if st.total < cfg.HighMinSignals || st.weak > 0 {
		return false
	}
	if st.avgWeight < cfg.HighAvgWeight || st.avgFreshness < cfg.HighAvgFreshness || st.avgRelevance < cfg.HighAvgRelevance {
		return false
	}
	if !st.hasDirect {
		return st.avgWeight >= cfg.NoDirectAvgWeight && st.avgFreshness >= cfg.NoDirectFreshness
	}
	return true
}

func (c *Classifier) qualifiesMedium(st stats) bool {
	cfg := c.config
	if st.total < 1 || st.avgWeight < cfg.MediumAvgWeight || st.strong == 0 {
		return false
	}
	if st.avgWeight >= cfg.MediumAvgWeightBar {
		return true
	}
	if st.maxFreshness >= cfg.MediumFreshnessBar {
		return true
	}
	return st.weakRatio > cfg.MediumWeakRatio && st.maxWeight >= cfg.StrongWeight
}

type stats struct {
	total        int
	valid        int
	strong       int
	weak         int
	kinds        int
	avgWeight    float64
	avgFreshness float64
	avgRelevance float64
	maxWeight    float64
	maxFreshness float64
	weakRatio    float64
	hasDirect    bool
}

func summarize(sigs []signal.WeightedSignal, strongWeight float64) stats {
	st := stats{total: len(sigs)}
	if len(sigs) == 0 {
		return st
	}

	seen := make(map[signal.Kind]bool)
	var sumWeight, sumFreshness, sumRelevance float64
	for _, s := range sigs {
		if s.Weight > signal.ScoreFloor {
			st.valid++
		}
		if s.Weight >= strongWeight {
			st.strong++
		} else {
			st.weak++
		}
		if !seen[s.Kind] {
			seen[s.Kind] = true
			st.kinds++
		}
		if s.Kind.IsDirect() {
			st.hasDirect = true
		}
		if s.Weight > st.maxWeight {
			st.maxWeight = s.Weight
		}
		if s.Freshness > st.maxFreshness {
			st.maxFreshness = s.Freshness
		}
		sumWeight += s.Weight
		sumFreshness += s.Freshness
		sumRelevance += s.Relevance
	}

	n := float64(len(sigs))
	st.avgWeight = sumWeight / n
	st.avgFreshness = sumFreshness / n
	st.avgRelevance = sumRelevance / n
	st.weakRatio = float64(st.weak) / n
	return st
}
