package pipeline

import "fmt"

type FailureCode string

const (
	CodeStepFailed FailureCode = "step_failed"
	CodeTimeout    FailureCode = "timeout"
)

// Failure is the only error type Process returns. Every failure path in
// the pipeline is a value; nothing panics past the orchestrator.
type Failure struct {
	Code        FailureCode `json:"code"`
	Message     string      `json:"message"`
	FailedStep  string      `json:"failed_step,omitempty"`
	Remediation string      `json:"remediation,omitempty"`
}

func (f *Failure) Error() string {
	if f.FailedStep != "" {
		return fmt.Sprintf("%s: %s (step %s)", f.Code, f.Message, f.FailedStep)
	}
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}
