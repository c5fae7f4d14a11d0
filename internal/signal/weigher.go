package signal

import (
	"math"
	"time"
)

const (
	// Floor for any derived score. Invalid inputs collapse to this value
	// instead of zero so downstream averages stay well defined.
	ScoreFloor = 0.01
)

type WeigherConfig struct {
	FreshWindowDays  float64
	StaleWindowDays  float64
	FreshWindowFloor float64
	StaleFloor       float64
	WeakBand         float64
	LowBand          float64
	UncertainLow     float64
	UncertainHigh    float64
}

// Threshold values are empirically tuned policy, not derived from a model.
// Changing them is a behavior change, not a correction.
func DefaultWeigherConfig() WeigherConfig {
	return WeigherConfig{
		FreshWindowDays:  30,
		StaleWindowDays:  90,
		FreshWindowFloor: 0.3,
		StaleFloor:       0.1,
		WeakBand:         0.3,
		LowBand:          0.4,
		UncertainLow:     0.3,
		UncertainHigh:    0.7,
	}
}

type Weigher struct {
	config WeigherConfig
	now    time.Time
}

func NewWeigher(cfg WeigherConfig) *Weigher {
	return NewWeigherAt(cfg, time.Now())
}

func NewWeigherAt(cfg WeigherConfig, now time.Time) *Weigher {
	return &Weigher{config: cfg, now: now}
}

// Weigh scores a single signal in isolation. It never looks at other
// signals in the batch; WeighAll is only a convenience loop.
func (w *Weigher) Weigh(s RawSignal) WeightedSignal {
	relevance := s.Relevance
	if math.IsNaN(relevance) || relevance < 0 || relevance > 1 {
		relevance = ScoreFloor
	}

	freshness := w.freshness(s.ObservedAt)
	penalty := w.conservativePenalty(relevance, freshness)
	weight := clamp(relevance*freshness*penalty, ScoreFloor, 1.0)

	return WeightedSignal{
		RawSignal: s,
		Weight:    weight,
		Freshness: freshness,
	}
}

func (w *Weigher) WeighAll(sigs []RawSignal) []WeightedSignal {
	weighted := make([]WeightedSignal, 0, len(sigs))
	for _, s := range sigs {
		weighted = append(weighted, w.Weigh(s))
	}
	return weighted
}

func (w *Weigher) freshness(observedAt time.Time) float64 {
	if observedAt.IsZero() {
		return ScoreFloor
	}

	age := w.now.Sub(observedAt)
	if age < 0 {
		return 1.0
	}

	days := age.Hours() / 24
	cfg := w.config

	switch {
	case days <= cfg.FreshWindowDays:
		return 1.0 - days/cfg.FreshWindowDays*(1.0-cfg.FreshWindowFloor)
	case days <= cfg.StaleWindowDays:
		span := cfg.StaleWindowDays - cfg.FreshWindowDays
		return cfg.FreshWindowFloor - (days-cfg.FreshWindowDays)/span*(cfg.FreshWindowFloor-cfg.StaleFloor)
	default:
		return cfg.StaleFloor
	}
}

// conservativePenalty dampens ambiguous evidence. Clear-cut signals, strong
// or weak, pass through untouched; it is the murky middle that gets shaved.
func (w *Weigher) conservativePenalty(relevance, freshness float64) float64 {
	cfg := w.config
	uncertain := func(v float64) bool {
		return v >= cfg.UncertainLow && v <= cfg.UncertainHigh
	}

	switch {
	case relevance < cfg.WeakBand && freshness < cfg.WeakBand:
		return 0.6
	case relevance < cfg.LowBand && uncertain(freshness):
		return 0.7
	case freshness < cfg.LowBand && uncertain(relevance):
		return 0.7
	case uncertain(relevance) && uncertain(freshness):
		return 0.8
	default:
		return 1.0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
