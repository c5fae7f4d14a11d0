package pipeline

import (
	"time"

	"coldreach/internal/assemble"
)

type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

const (
	StepWeighSignals         = "weigh_signals"
	StepFormHypothesis       = "form_hypothesis"
	StepClassifyConfidence   = "classify_confidence"
	StepSelectStrategy       = "select_strategy"
	StepDraftMessage         = "draft_message"
	StepEvaluateAuthenticity = "evaluate_authenticity"
	StepAssembleOutput       = "assemble_output"
)

type Entry struct {
	Step      string    `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`
	Details   string    `json:"details,omitempty"`
}

// trail is the per-request audit accumulator. One is created for every
// Process call and discarded with it; nothing is shared across requests.
type trail struct {
	entries []Entry
}

func newTrail() *trail {
	return &trail{}
}

func (t *trail) record(step string, status Status, details string) {
	t.entries = append(t.entries, Entry{
		Step:      step,
		Timestamp: time.Now().UTC(),
		Status:    status,
		Details:   details,
	})
}

func (t *trail) records() []assemble.StepRecord {
	records := make([]assemble.StepRecord, 0, len(t.entries))
	for _, e := range t.entries {
		records = append(records, assemble.StepRecord{
			Step:    e.Step,
			Status:  string(e.Status),
			Details: e.Details,
		})
	}
	return records
}
