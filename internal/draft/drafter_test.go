package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach/internal/confidence"
	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/signal"
	"coldreach/internal/strategy"
)

func testProspect() prospect.Profile {
	return prospect.Profile{
		Role:        "VP Engineering",
		CompanyName: "Acme Robotics",
		Industry:    "industrial automation",
		ContactName: "Jordan Lee",
		Email:       "jordan@acme.example",
	}
}

func fundingHypothesis() hypothesis.Hypothesis {
	return hypothesis.Hypothesis{
		PrimaryReason:      "recent funding suggests budget and appetite for new tooling",
		SupportingEvidence: []string{"Announced a Series B round"},
		PrimaryKind:        signal.KindFundingEvent,
	}
}

func TestDraftStructure(t *testing.T) {
	d := NewDrafter()
	out := d.Draft(strategy.Select(confidence.High), fundingHypothesis(), testProspect(), Options{Seed: "s1"})

	parts := strings.Split(out.Message, "\n\n")
	require.Len(t, parts, 3, "greeting, body, closing")

	assert.Contains(t, parts[0], "Jordan")
	assert.Contains(t, parts[1], "Acme Robotics")
	assert.True(t, strings.HasSuffix(parts[2], ","), "closing ends with a comma: %q", parts[2])
	assert.LessOrEqual(t, WordCount(out.Message), MaxWords)
}

func TestDraftDeterministic(t *testing.T) {
	d := NewDrafter()
	strat := strategy.Select(confidence.Medium)

	a := d.Draft(strat, fundingHypothesis(), testProspect(), Options{Seed: "same"})
	b := d.Draft(strat, fundingHypothesis(), testProspect(), Options{Seed: "same"})
	assert.Equal(t, a.Message, b.Message)
}

func TestDraftSeedVariesPhrasing(t *testing.T) {
	d := NewDrafter()
	strat := strategy.Select(confidence.Medium)

	seen := map[string]bool{}
	for _, seed := range []string{"a", "b", "c", "d", "e", "f"} {
		out := d.Draft(strat, fundingHypothesis(), testProspect(), Options{Seed: seed})
		seen[out.Message] = true
	}
	assert.Greater(t, len(seen), 1, "different seeds should reach different phrasings")
}

func TestDraftMissingContactName(t *testing.T) {
	d := NewDrafter()
	p := testProspect()
	p.ContactName = ""

	out := d.Draft(strategy.Select(confidence.Low), fundingHypothesis(), p, Options{Seed: "x"})
	assert.Contains(t, out.Message, "there,")
}

func TestDraftGenericTopicNamesIndustry(t *testing.T) {
	d := NewDrafter()
	hyp := hypothesis.Hypothesis{
		PrimaryReason: "general business timing may make a light, low-pressure touch worthwhile",
	}

	out := d.Draft(strategy.Select(confidence.Low), hyp, testProspect(), Options{Seed: "x"})
	assert.Contains(t, out.Message, "industrial automation")
	assert.Contains(t, out.Message, "Acme Robotics")
}

func TestDraftCTAFollowsStrategy(t *testing.T) {
	d := NewDrafter()

	t.Run("direct asks for a call", func(t *testing.T) {
		out := d.Draft(strategy.Select(confidence.High), fundingHypothesis(), testProspect(), Options{Seed: "x"})
		assert.Contains(t, out.Message, "next week")
	})

	t.Run("none never asks", func(t *testing.T) {
		out := d.Draft(strategy.Select(confidence.Low), fundingHypothesis(), testProspect(), Options{Seed: "x"})
		assert.NotContains(t, out.Message, "call")
	})
}

func TestPick(t *testing.T) {
	bank := []string{"one", "two", "three"}

	t.Run("stable for a seed", func(t *testing.T) {
		assert.Equal(t, Pick("seed", bank), Pick("seed", bank))
	})

	t.Run("empty bank", func(t *testing.T) {
		assert.Equal(t, "", Pick("seed", nil))
	})

	t.Run("always in range", func(t *testing.T) {
		for _, seed := range []string{"", "a", "bb", "ccc", "dddd"} {
			assert.Contains(t, bank, Pick(seed, bank))
		}
	})
}

func TestApplySubstitutions(t *testing.T) {
	t.Run("buzzwords become plain words", func(t *testing.T) {
		got := applySubstitutions("We leverage cutting-edge tooling to empower teams.")
		assert.Equal(t, "We use modern tooling to help teams.", got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := applySubstitutions("Leverage this.")
		assert.Equal(t, "use this.", got)
	})

	t.Run("cliches are removed and spacing repaired", func(t *testing.T) {
		got := applySubstitutions("Just checking in about the plan, it could be a win-win.")
		assert.NotContains(t, got, "checking in")
		assert.NotContains(t, got, "win-win")
		assert.NotContains(t, got, "  ")
		assert.NotContains(t, got, " ,")
	})

	t.Run("whole words only", func(t *testing.T) {
		got := applySubstitutions("The leverageable part stays.")
		assert.Contains(t, got, "leverageable")
	})
}

func TestEnforceWordLimit(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		s := "A short message."
		assert.Equal(t, s, enforceWordLimit(s, 120))
	})

	t.Run("cuts at a sentence boundary", func(t *testing.T) {
		s := strings.Repeat("word ", 9) + "end. " + strings.Repeat("tail ", 10)
		got := enforceWordLimit(strings.TrimSpace(s), 12)
		assert.True(t, strings.HasSuffix(got, "end."), "got %q", got)
		assert.LessOrEqual(t, WordCount(got), 12)
	})

	t.Run("hard cut when no boundary fits", func(t *testing.T) {
		s := strings.TrimSpace(strings.Repeat("word ", 40))
		got := enforceWordLimit(s, 12)
		assert.Equal(t, 12, WordCount(got))
	})
}
