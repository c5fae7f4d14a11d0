package assemble

import (
	"regexp"
	"strings"
	"time"

	"coldreach/internal/confidence"
	"coldreach/internal/draft"
	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/strategy"
)

type Drafter interface {
	Draft(strat strategy.Strategy, hyp hypothesis.Hypothesis, p prospect.Profile, opts draft.Options) draft.Draft
}

type StepRecord struct {
	Step    string
	Status  string
	Details string
}

type Stage struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

type Metadata struct {
	RequestID   string    `json:"request_id"`
	ProcessedAt time.Time `json:"processed_at"`
	Stages      []Stage   `json:"stages"`
}

type FinalOutput struct {
	Confidence       confidence.Level `json:"confidence"`
	ReasoningSummary string           `json:"reasoning_summary"`
	Message          string           `json:"message"`
	Alternatives     []string         `json:"alternatives"`
	FollowUpTiming   string           `json:"follow_up_timing"`
	Metadata         Metadata         `json:"metadata"`
}

type Input struct {
	Message      string
	Confidence   confidence.Level
	RawReasoning string
	Strategy     strategy.Strategy
	Hypothesis   hypothesis.Hypothesis
	Prospect     prospect.Profile
	RequestID    string
	ProcessedAt  time.Time
	Records      []StepRecord
}

// Vocabulary that belongs to the machinery, not to the prospect-facing
// reasoning text.
var internalVocab = []string{
	"pipeline", "orchestrator", "weigher", "classifier", "drafter", "evaluator",
	"assembler", "algorithm", "audit", "metadata", "authenticity", "revision loop",
	"hypothesis former",
}

var (
	stepMarker    = regexp.MustCompile(`(?i)\bstep\s*\d+[:.)]?`)
	vocabPatterns = compileVocabPatterns()
	doubleSpaces  = regexp.MustCompile(`[ \t]{2,}`)
	spacedPunct   = regexp.MustCompile(` +([.,!?;])`)
)

func compileVocabPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(internalVocab))
	for _, term := range internalVocab {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

var genericReasonings = []string{
	"The overall picture suggests this is a reasonable moment to reach out.",
	"The evidence points to a sensible, low-risk opening for a first message.",
	"Recent activity around the company supports a measured introduction.",
	"The available information supports a careful, relevant first touch.",
	"What we can observe about the company makes a brief note appropriate.",
}

var uncertaintyQualifiers = []string{
	"This read is tentative and could easily be wrong.",
	"There is meaningful uncertainty behind this suggestion.",
	"Treat this as a guess worth testing, not a conclusion.",
}

var uncertaintyMarkers = []string{
	"may", "might", "could", "appears", "seems", "uncertain", "uncertainty",
	"tentative", "not guaranteed", "unclear", "guess",
}

var followUpByLevel = map[confidence.Level]string{
	confidence.High:   "1 week",
	confidence.Medium: "2 weeks",
	confidence.Low:    "1 month",
}

var stageLabels = map[string]string{
	"weigh_signals":         "Signal review",
	"form_hypothesis":       "Opportunity analysis",
	"classify_confidence":   "Confidence assessment",
	"select_strategy":       "Approach selection",
	"draft_message":         "Message composition",
	"evaluate_authenticity": "Quality review",
	"assemble_output":       "Final packaging",
}

var distinguishers = []string{
	"Happy to keep this to email if that is easier.",
	"A one-line reply is more than enough.",
}

type Assembler struct {
	drafter Drafter
}

func NewAssembler(drafter Drafter) *Assembler {
	return &Assembler{drafter: drafter}
}

// Assemble produces the externally visible result: cleaned reasoning, two
// guaranteed-distinct alternatives, a follow-up suggestion, and metadata
// with internal step names translated away.
func (a *Assembler) Assemble(in Input) FinalOutput {
	reasoning := a.reasoningSummary(in.RawReasoning, in.Confidence)
	alt1, alt2 := a.alternatives(in)

	return FinalOutput{
		Confidence:       in.Confidence,
		ReasoningSummary: reasoning,
		Message:          in.Message,
		Alternatives:     []string{alt1, alt2},
		FollowUpTiming:   followUpByLevel[in.Confidence],
		Metadata: Metadata{
			RequestID:   in.RequestID,
			ProcessedAt: in.ProcessedAt,
			Stages:      sanitizeStages(in.Records),
		},
	}
}

func (a *Assembler) reasoningSummary(raw string, level confidence.Level) string {
	stripped := stripInternalVocab(raw)
	if len(stripped) < 10 {
		// Same raw text always selects the same substitute.
		stripped = draft.Pick(raw, genericReasonings)
	}
	summary := clampSentences(stripped, 2)

	// Clamp first, qualify after: a low-confidence summary must end with
	// explicit uncertainty even when the reasoning already fills both
	// sentences.
	if level == confidence.Low && !containsUncertainty(summary) {
		summary = strings.TrimSpace(summary) + " " + draft.Pick(summary, uncertaintyQualifiers)
	}
	return summary
}

func (a *Assembler) alternatives(in Input) (string, string) {
	alt1 := a.drafter.Draft(in.Strategy, in.Hypothesis, in.Prospect, draft.Options{
		Seed: in.Message + "::alternative-1",
		Tone: draft.ToneConversational,
	}).Message
	alt2 := a.drafter.Draft(in.Strategy, in.Hypothesis, in.Prospect, draft.Options{
		Seed: in.Message + "::alternative-2",
		Tone: draft.ToneAnalytical,
	}).Message

	if alt1 == in.Message {
		alt1 = withDistinguisher(alt1, distinguishers[0])
	}
	if alt2 == in.Message {
		alt2 = withDistinguisher(alt2, distinguishers[1])
	}
	if alt2 == alt1 {
		alt2 = withDistinguisher(alt2, distinguishers[1])
	}
	return alt1, alt2
}

// withDistinguisher appends the marker sentence while keeping the result
// inside the drafting word limit. Paragraph breaks survive unless the
// message has to be trimmed to make room.
func withDistinguisher(message, marker string) string {
	budget := draft.MaxWords - draft.WordCount(marker)
	if words := strings.Fields(message); len(words) > budget {
		message = strings.Join(words[:budget], " ")
	}
	return message + " " + marker
}

func stripInternalVocab(s string) string {
	out := stepMarker.ReplaceAllString(s, "")
	for _, pattern := range vocabPatterns {
		out = pattern.ReplaceAllString(out, "")
	}
	out = doubleSpaces.ReplaceAllString(out, " ")
	out = spacedPunct.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s|$)`)

func clampSentences(s string, max int) string {
	ends := sentenceEnd.FindAllStringIndex(s, -1)
	if len(ends) <= max {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[:ends[max-1][1]])
}

func containsUncertainty(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range uncertaintyMarkers {
		if containsWord(lower, marker) {
			return true
		}
	}
	return false
}

func containsWord(lower, term string) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(lower, term)
	}
	matched, _ := regexp.MatchString(`\b`+regexp.QuoteMeta(term)+`\b`, lower)
	return matched
}

func sanitizeStages(records []StepRecord) []Stage {
	stages := make([]Stage, 0, len(records))
	for _, rec := range records {
		label, ok := stageLabels[rec.Step]
		if !ok {
			label = humanize(rec.Step)
		}
		// Details are internal; they never leave the pipeline.
		stages = append(stages, Stage{Label: label, Status: rec.Status})
	}
	return stages
}

func humanize(step string) string {
	cleaned := strings.ReplaceAll(step, "_", " ")
	if cleaned == "" {
		return cleaned
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
