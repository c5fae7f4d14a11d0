package hypothesis

import "coldreach/internal/signal"

type Hypothesis struct {
	PrimaryReason       string   `json:"primary_reason"`
	SupportingEvidence  []string `json:"supporting_evidence"`
	ConfidenceFactors   []string `json:"confidence_factors"`
	ConservativeCaveats []string `json:"conservative_caveats"`

	// PrimaryKind is the kind of the signal the reason was built from.
	// Empty for the conservative fallback.
	PrimaryKind signal.Kind `json:"primary_kind,omitempty"`
}

const (
	conservativeReason  = "general business timing may make a light, low-pressure touch worthwhile"
	insufficiencyCaveat = "the available signals are too weak or too sparse to support a specific angle"
	genericCaveat       = "relevance is assumed from observed activity, not guaranteed"
)

// IsConservative reports whether this hypothesis is the fallback produced
// when no signal qualified as a primary reason.
func (h Hypothesis) IsConservative() bool {
	if h.PrimaryReason == conservativeReason {
		return true
	}
	for _, c := range h.ConservativeCaveats {
		if c == insufficiencyCaveat {
			return true
		}
	}
	return false
}
