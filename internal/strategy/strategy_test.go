package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coldreach/internal/confidence"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		level    confidence.Level
		kind     Kind
		ctaLevel CTALevel
	}{
		{confidence.High, DirectAlignment, CTADirect},
		{confidence.Medium, InsightLed, CTASoft},
		{confidence.Low, SoftCuriosity, CTANone},
		{confidence.Level("garbage"), SoftCuriosity, CTANone},
		{confidence.Level(""), SoftCuriosity, CTANone},
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			s := Select(tc.level)
			assert.Equal(t, tc.kind, s.Kind)
			assert.Equal(t, tc.ctaLevel, s.CTALevel)
			assert.NotEmpty(t, s.ToneRules)
			assert.NotEmpty(t, s.ContentFocus)
		})
	}
}

func TestSelectDeterministic(t *testing.T) {
	for _, level := range []confidence.Level{confidence.High, confidence.Medium, confidence.Low} {
		assert.Equal(t, Select(level), Select(level))
	}
}
