package authenticity

import (
	"fmt"
	"regexp"
	"strings"

	"coldreach/internal/confidence"
	"coldreach/internal/draft"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Issue struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Note     string   `json:"note"`
}

type Verdict struct {
	Acceptable bool    `json:"acceptable"`
	Issues     []Issue `json:"issues"`
	MustRevise bool    `json:"must_revise"`
	Score      int     `json:"score"`
}

type EvaluatorConfig struct {
	MinScore          int
	MaxMediumIssues   int
	MaxTotalIssues    int
	MaxConnectors     int
	MaxSentenceWords  int
	MaxPromoBuzzwords int
	HighPenalty       int
	MediumPenalty     int
	LowPenalty        int
}

func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MinScore:          75,
		MaxMediumIssues:   1,
		MaxTotalIssues:    3,
		MaxConnectors:     2,
		MaxSentenceWords:  30,
		MaxPromoBuzzwords: 2,
		HighPenalty:       25,
		MediumPenalty:     15,
		LowPenalty:        5,
	}
}

var placeholderPattern = regexp.MustCompile(`\{\{[^}]*\}\}|\{[A-Za-z_]+\}|\[[A-Za-z_ ]+\]|<[A-Za-z_]+>`)

var stockPhrases = []string{
	"i hope this email finds you well",
	"i wanted to reach out",
	"per my last email",
	"to whom it may concern",
	"i know you're busy",
}

var formalConnectors = []string{
	"furthermore", "moreover", "additionally", "consequently", "therefore", "thus", "hence",
}

var highPressurePhrases = []string{
	"act now", "limited time", "last chance", "don't miss", "urgent", "final offer", "expires soon",
}

var directSalesPhrases = []string{
	"schedule a demo", "book a demo", "buy now", "sign up today", "start your free trial", "pricing call",
}

var moderateSalesPhrases = []string{
	"our product", "our solution", "our platform", "we offer", "we provide",
}

var promoBuzzwords = []string{
	"powerful", "amazing", "incredible", "exciting", "unique", "exceptional", "premier", "unmatched",
}

// Counting is whole-word: "hence" must not match inside "whence", nor
// "unique" inside "uniquely". Input is lowercased before matching.
var (
	connectorPatterns = wordPatterns(formalConnectors)
	promoPatterns     = wordPatterns(promoBuzzwords)
)

func wordPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

type Evaluator struct {
	config EvaluatorConfig
}

func NewEvaluator(cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{config: cfg}
}

// Evaluate scores a draft for templated, robotic, or oversold characteristics.
// What counts as oversold depends on the confidence level: a direct ask is
// fine when the evidence is strong and a flag when it is not.
func (e *Evaluator) Evaluate(d draft.Draft, level confidence.Level) Verdict {
	var issues []Issue
	issues = append(issues, e.templateIssues(d.Message)...)
	issues = append(issues, e.artificialIssues(d.Message)...)
	issues = append(issues, e.salesIssues(d.Message, level)...)

	score := 100
	var high, medium int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityHigh:
			high++
			score -= e.config.HighPenalty
		case SeverityMedium:
			medium++
			score -= e.config.MediumPenalty
		default:
			score -= e.config.LowPenalty
		}
	}
	if score < 0 {
		score = 0
	}

	mustRevise := score < e.config.MinScore ||
		high > 0 ||
		medium > e.config.MaxMediumIssues ||
		len(issues) > e.config.MaxTotalIssues

	return Verdict{
		Acceptable: !mustRevise,
		Issues:     issues,
		MustRevise: mustRevise,
		Score:      score,
	}
}

func (e *Evaluator) templateIssues(message string) []Issue {
	var issues []Issue

	if placeholderPattern.MatchString(message) {
		issues = append(issues, Issue{
			Category: "template",
			Severity: SeverityHigh,
			Note:     "unfilled placeholder syntax in message",
		})
	}

	seen := make(map[string]bool)
	for _, sentence := range splitSentences(message) {
		normalized := strings.ToLower(strings.TrimSpace(sentence))
		if len(strings.Fields(normalized)) < 3 {
			continue
		}
		if seen[normalized] {
			issues = append(issues, Issue{
				Category: "template",
				Severity: SeverityHigh,
				Note:     "identical sentence repeated",
			})
			break
		}
		seen[normalized] = true
	}

	return issues
}

func (e *Evaluator) artificialIssues(message string) []Issue {
	var issues []Issue
	lower := strings.ToLower(message)

	for _, phrase := range stockPhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, Issue{
				Category: "artificial",
				Severity: SeverityLow,
				Note:     fmt.Sprintf("stock corporate phrase: %q", phrase),
			})
		}
	}

	connectors := 0
	for _, pattern := range connectorPatterns {
		connectors += len(pattern.FindAllStringIndex(lower, -1))
	}
	if connectors > e.config.MaxConnectors {
		issues = append(issues, Issue{
			Category: "artificial",
			Severity: SeverityLow,
			Note:     fmt.Sprintf("%d formal connectors", connectors),
		})
	}

	for _, sentence := range splitSentences(message) {
		if len(strings.Fields(sentence)) > e.config.MaxSentenceWords {
			issues = append(issues, Issue{
				Category: "artificial",
				Severity: SeverityMedium,
				Note:     "sentence runs past the readable length",
			})
		}
	}

	return issues
}

func (e *Evaluator) salesIssues(message string, level confidence.Level) []Issue {
	var issues []Issue
	lower := strings.ToLower(message)

	for _, phrase := range highPressurePhrases {
		if strings.Contains(lower, phrase) {
			issues = append(issues, Issue{
				Category: "salesy",
				Severity: SeverityHigh,
				Note:     fmt.Sprintf("high-pressure phrase: %q", phrase),
			})
		}
	}

	for _, phrase := range directSalesPhrases {
		if strings.Contains(lower, phrase) && level != confidence.High {
			issues = append(issues, Issue{
				Category: "salesy",
				Severity: SeverityHigh,
				Note:     fmt.Sprintf("direct sales phrase without the confidence to back it: %q", phrase),
			})
		}
	}

	if level == confidence.Low {
		for _, phrase := range moderateSalesPhrases {
			if strings.Contains(lower, phrase) {
				issues = append(issues, Issue{
					Category: "salesy",
					Severity: SeverityMedium,
					Note:     fmt.Sprintf("sales phrasing too assertive for low confidence: %q", phrase),
				})
			}
		}
	}

	promo := 0
	for _, pattern := range promoPatterns {
		promo += len(pattern.FindAllStringIndex(lower, -1))
	}
	if promo > e.config.MaxPromoBuzzwords {
		issues = append(issues, Issue{
			Category: "salesy",
			Severity: SeverityMedium,
			Note:     fmt.Sprintf("%d promotional buzzwords", promo),
		})
	}

	return issues
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

func splitSentences(s string) []string {
	parts := sentenceBoundary.Split(s, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
