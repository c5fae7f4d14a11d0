package authenticity

import (
	"coldreach/internal/confidence"
	"coldreach/internal/draft"
	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/strategy"
)

// DefaultMaxAttempts bounds the revision loop: one initial draft plus two
// revisions. The counter, not the evaluator, guarantees termination.
const DefaultMaxAttempts = 3

type Drafter interface {
	Draft(strat strategy.Strategy, hyp hypothesis.Hypothesis, p prospect.Profile, opts draft.Options) draft.Draft
}

type Result struct {
	Draft    draft.Draft
	Verdict  Verdict
	Attempts int

	// BestEffort is set when the attempt budget ran out while the verdict
	// still demanded a revision. The last draft is accepted as-is.
	BestEffort bool
}

type RevisionLoop struct {
	drafter     Drafter
	evaluator   *Evaluator
	maxAttempts int
}

func NewRevisionLoop(drafter Drafter, evaluator *Evaluator, maxAttempts int) *RevisionLoop {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &RevisionLoop{
		drafter:     drafter,
		evaluator:   evaluator,
		maxAttempts: maxAttempts,
	}
}

// Run drafts, evaluates, and re-drafts until a draft is acceptable or the
// budget is spent. Each retry is seeded with the previous draft's text, so
// the phrasing shifts deterministically between attempts.
func (l *RevisionLoop) Run(strat strategy.Strategy, hyp hypothesis.Hypothesis, p prospect.Profile, level confidence.Level) Result {
	var (
		d    draft.Draft
		v    Verdict
		seed string
	)

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		d = l.drafter.Draft(strat, hyp, p, draft.Options{Seed: seed})
		v = l.evaluator.Evaluate(d, level)
		if !v.MustRevise {
			return Result{Draft: d, Verdict: v, Attempts: attempt}
		}
		seed = d.Message
	}

	return Result{Draft: d, Verdict: v, Attempts: l.maxAttempts, BestEffort: true}
}
