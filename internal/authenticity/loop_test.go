package authenticity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldreach/internal/confidence"
	"coldreach/internal/draft"
	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/strategy"
)

// scriptedDrafter returns one canned message per attempt and records the
// seeds it was called with.
type scriptedDrafter struct {
	messages []string
	seeds    []string
	calls    int
}

func (s *scriptedDrafter) Draft(strat strategy.Strategy, hyp hypothesis.Hypothesis, p prospect.Profile, opts draft.Options) draft.Draft {
	s.seeds = append(s.seeds, opts.Seed)
	i := s.calls
	if i >= len(s.messages) {
		i = len(s.messages) - 1
	}
	s.calls++
	return draft.Draft{Message: s.messages[i], Strategy: strat, Hypothesis: hyp, Prospect: p}
}

const cleanMessage = "Hi Jordan,\n\nI noticed the team is growing quickly. Happy to trade notes if useful.\n\nBest regards,"

func TestRevisionLoopAcceptsFirstDraft(t *testing.T) {
	d := &scriptedDrafter{messages: []string{cleanMessage}}
	loop := NewRevisionLoop(d, NewEvaluator(DefaultEvaluatorConfig()), DefaultMaxAttempts)

	res := loop.Run(strategy.Select(confidence.Medium), hypothesis.Hypothesis{}, prospect.Profile{}, confidence.Medium)

	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.BestEffort)
	assert.True(t, res.Verdict.Acceptable)
	assert.Equal(t, cleanMessage, res.Draft.Message)
}

func TestRevisionLoopRetriesUntilClean(t *testing.T) {
	flawed := "Hi {first_name}, good to meet you."
	d := &scriptedDrafter{messages: []string{flawed, cleanMessage}}
	loop := NewRevisionLoop(d, NewEvaluator(DefaultEvaluatorConfig()), DefaultMaxAttempts)

	res := loop.Run(strategy.Select(confidence.Medium), hypothesis.Hypothesis{}, prospect.Profile{}, confidence.Medium)

	assert.Equal(t, 2, res.Attempts)
	assert.False(t, res.BestEffort)
	assert.Equal(t, cleanMessage, res.Draft.Message)

	// The first call starts unseeded; the retry is seeded with the text of
	// the draft it is replacing.
	require.Len(t, d.seeds, 2)
	assert.Equal(t, "", d.seeds[0])
	assert.Equal(t, flawed, d.seeds[1])
}

func TestRevisionLoopExhaustsBudget(t *testing.T) {
	flawed := "Act now, this is a limited time offer for {company}."
	d := &scriptedDrafter{messages: []string{flawed}}
	loop := NewRevisionLoop(d, NewEvaluator(DefaultEvaluatorConfig()), DefaultMaxAttempts)

	res := loop.Run(strategy.Select(confidence.Low), hypothesis.Hypothesis{}, prospect.Profile{}, confidence.Low)

	assert.Equal(t, DefaultMaxAttempts, res.Attempts)
	assert.True(t, res.BestEffort)
	assert.True(t, res.Verdict.MustRevise)
	assert.Equal(t, flawed, res.Draft.Message)
	assert.Equal(t, 3, d.calls)
}

func TestRevisionLoopDefaultsAttempts(t *testing.T) {
	d := &scriptedDrafter{messages: []string{"Act now for a limited time."}}
	loop := NewRevisionLoop(d, NewEvaluator(DefaultEvaluatorConfig()), 0)

	res := loop.Run(strategy.Select(confidence.Low), hypothesis.Hypothesis{}, prospect.Profile{}, confidence.Low)
	assert.Equal(t, DefaultMaxAttempts, res.Attempts)
}
