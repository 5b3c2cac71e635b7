package models

import "time"

// StepStatus is the outcome of a single workflow step.
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
)

// StepRecord is one row of the run journal: what a workflow step did, when,
// and what it printed.
type StepRecord struct {
	RunID      string     `json:"run_id"`
	Step       string     `json:"step"`
	Position   int        `json:"position"`
	Status     StepStatus `json:"status"`
	Payload    string     `json:"payload,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

// Duration returns how long the step ran.
func (r StepRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
