package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"coldreach/internal/assemble"
	"coldreach/internal/authenticity"
	"coldreach/internal/confidence"
	"coldreach/internal/draft"
	"coldreach/internal/hypothesis"
	"coldreach/internal/prospect"
	"coldreach/internal/signal"
	"coldreach/internal/strategy"
)

const DefaultTimeout = 5 * time.Second

type Config struct {
	Timeout          time.Duration
	MaxDraftAttempts int
}

func DefaultConfig() Config {
	return Config{
		Timeout:          DefaultTimeout,
		MaxDraftAttempts: authenticity.DefaultMaxAttempts,
	}
}

// Orchestrator sequences the reasoning stages. It holds no per-request
// state, so a single instance may serve concurrent calls.
type Orchestrator struct {
	weigherConfig signal.WeigherConfig
	former        *hypothesis.Former
	classifier    *confidence.Classifier
	drafter       *draft.Drafter
	loop          *authenticity.RevisionLoop
	assembler     *assemble.Assembler
	timeout       time.Duration
	logger        *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Orchestrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	drafter := draft.NewDrafter()
	evaluator := authenticity.NewEvaluator(authenticity.DefaultEvaluatorConfig())

	return &Orchestrator{
		weigherConfig: signal.DefaultWeigherConfig(),
		former:        hypothesis.NewFormer(hypothesis.DefaultFormerConfig()),
		classifier:    confidence.NewClassifier(confidence.DefaultClassifierConfig()),
		drafter:       drafter,
		loop:          authenticity.NewRevisionLoop(drafter, evaluator, cfg.MaxDraftAttempts),
		assembler:     assemble.NewAssembler(drafter),
		timeout:       cfg.Timeout,
		logger:        logger,
	}
}

// Process runs the full pipeline against an overall deadline. On timeout the
// in-flight computation is abandoned and no partial result is surfaced. The
// returned error is always a *Failure.
func (o *Orchestrator) Process(ctx context.Context, p prospect.Profile, sigs []signal.RawSignal) (*assemble.FinalOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type outcome struct {
		out *assemble.FinalOutput
		err error
	}
	// Buffered so the worker can finish and be collected even after the
	// deadline wins the race.
	done := make(chan outcome, 1)
	go func() {
		out, err := o.run(p, sigs)
		done <- outcome{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &Failure{
			Code:        CodeTimeout,
			Message:     "processing exceeded the configured deadline",
			Remediation: "retry with fewer signals or a longer timeout",
		}
	case res := <-done:
		return res.out, res.err
	}
}

func (o *Orchestrator) run(p prospect.Profile, sigs []signal.RawSignal) (*assemble.FinalOutput, error) {
	started := time.Now()
	t := newTrail()
	requestID := uuid.NewString()
	logger := o.logger.With(zap.String("request_id", requestID))

	var (
		weighted []signal.WeightedSignal
		hyp      hypothesis.Hypothesis
		level    confidence.Level
		strat    strategy.Strategy
		accepted authenticity.Result
		out      assemble.FinalOutput
	)

	if err := o.step(t, logger, StepWeighSignals, func() (string, error) {
		weighted = signal.NewWeigher(o.weigherConfig).WeighAll(sigs)
		return fmt.Sprintf("%d signal(s) weighed", len(weighted)), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepFormHypothesis, func() (string, error) {
		hyp = o.former.Form(weighted)
		if hyp.IsConservative() {
			return "conservative fallback", nil
		}
		return string(hyp.PrimaryKind), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepClassifyConfidence, func() (string, error) {
		level = o.classifier.Classify(hyp, weighted)
		return string(level), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepSelectStrategy, func() (string, error) {
		strat = strategy.Select(level)
		return string(strat.Kind), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepDraftMessage, func() (string, error) {
		accepted = o.loop.Run(strat, hyp, p, level)
		return fmt.Sprintf("%d attempt(s)", accepted.Attempts), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepEvaluateAuthenticity, func() (string, error) {
		if accepted.BestEffort {
			return "best-effort acceptance after attempt limit", nil
		}
		return fmt.Sprintf("score %d", accepted.Verdict.Score), nil
	}); err != nil {
		return nil, err
	}

	if err := o.step(t, logger, StepAssembleOutput, func() (string, error) {
		out = o.assembler.Assemble(assemble.Input{
			Message:      accepted.Draft.Message,
			Confidence:   level,
			RawReasoning: rawReasoning(hyp),
			Strategy:     strat,
			Hypothesis:   hyp,
			Prospect:     p,
			RequestID:    requestID,
			ProcessedAt:  time.Now().UTC(),
			Records:      t.records(),
		})
		return "", nil
	}); err != nil {
		return nil, err
	}

	logger.Info("request processed",
		zap.String("confidence", string(level)),
		zap.Int("attempts", accepted.Attempts),
		zap.Bool("best_effort", accepted.BestEffort),
		zap.Duration("elapsed", time.Since(started)))

	return &out, nil
}

func (o *Orchestrator) step(t *trail, logger *zap.Logger, name string, fn func() (string, error)) error {
	t.record(name, StatusStarted, "")
	details, err := runStep(fn)
	if err != nil {
		t.record(name, StatusFailed, err.Error())
		logger.Warn("pipeline step failed", zap.String("step", name), zap.Error(err))
		return &Failure{
			Code:        CodeStepFailed,
			Message:     err.Error(),
			FailedStep:  name,
			Remediation: "check the request payload; the pipeline halts on the first failed stage",
		}
	}
	t.record(name, StatusCompleted, details)
	return nil
}

// runStep converts a panic inside a stage into an ordinary step error so the
// orchestrator can halt cleanly instead of crashing the process.
func runStep(fn func() (string, error)) (details string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn()
}

func rawReasoning(hyp hypothesis.Hypothesis) string {
	reason := strings.TrimSuffix(strings.TrimSpace(hyp.PrimaryReason), ".")
	summary := capitalize(reason) + "."
	if len(hyp.ConfidenceFactors) > 0 {
		factor := strings.TrimSuffix(strings.TrimSpace(hyp.ConfidenceFactors[0]), ".")
		summary += " " + capitalize(factor) + "."
	}
	return summary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
