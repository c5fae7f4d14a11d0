package signal

import "time"

type Kind string

const (
	KindRoleChange    Kind = "role-change"
	KindFundingEvent  Kind = "funding-event"
	KindTechAdoption  Kind = "tech-adoption"
	KindGrowth        Kind = "growth"
	KindIndustryTrend Kind = "industry-trend"
)

var ValidKinds = map[Kind]string{
	KindRoleChange:    "A decision maker changed roles or a new leader was appointed",
	KindFundingEvent:  "The company raised or announced new funding",
	KindTechAdoption:  "The company adopted or migrated to a relevant technology",
	KindGrowth:        "The company is visibly growing (hiring, expansion, new offices)",
	KindIndustryTrend: "A broader industry shift that touches the company",
}

func (k Kind) IsValid() bool {
	_, ok := ValidKinds[k]
	return ok
}

// Direct kinds are events that happened to the prospect itself rather than
// to its surroundings, so they carry more evidential value.
func (k Kind) IsDirect() bool {
	return k == KindRoleChange || k == KindFundingEvent
}

type RawSignal struct {
	Kind        Kind      `json:"kind"`
	Description string    `json:"description"`
	ObservedAt  time.Time `json:"observed_at"`
	Relevance   float64   `json:"relevance"`
	Source      string    `json:"source"`
}

type WeightedSignal struct {
	RawSignal
	Weight    float64 `json:"weight"`
	Freshness float64 `json:"freshness"`
}
