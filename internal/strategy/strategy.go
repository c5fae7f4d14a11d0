package strategy

import "coldreach/internal/confidence"

type Kind string

const (
	DirectAlignment Kind = "direct-alignment"
	InsightLed      Kind = "insight-led"
	SoftCuriosity   Kind = "soft-curiosity"
)

type CTALevel string

const (
	CTANone   CTALevel = "none"
	CTASoft   CTALevel = "soft"
	CTADirect CTALevel = "direct"
)

type Strategy struct {
	Kind         Kind     `json:"kind"`
	ToneRules    []string `json:"tone_rules"`
	ContentFocus string   `json:"content_focus"`
	CTALevel     CTALevel `json:"cta_level"`
}

// Select is a pure, total mapping from confidence level to strategy.
// Anything that is not High or Medium gets the most cautious treatment.
func Select(level confidence.Level) Strategy {
	switch level {
	case confidence.High:
		return Strategy{
			Kind: DirectAlignment,
			ToneRules: []string{
				"confident but factual",
				"reference the observed event directly",
				"no superlatives",
			},
			ContentFocus: "connect the observed event to one concrete way we can help",
			CTALevel:     CTADirect,
		}
	case confidence.Medium:
		return Strategy{
			Kind: InsightLed,
			ToneRules: []string{
				"lead with a useful observation, not a pitch",
				"keep claims modest",
				"no pressure",
			},
			ContentFocus: "share one relevant insight and leave the door open",
			CTALevel:     CTASoft,
		}
	default:
		return Strategy{
			Kind: SoftCuriosity,
			ToneRules: []string{
				"curious, not persuasive",
				"acknowledge the guesswork",
				"ask, never push",
			},
			ContentFocus: "open a conversation without assuming anything about their situation",
			CTALevel:     CTANone,
		}
	}
}
