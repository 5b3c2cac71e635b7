package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/google/uuid"
)

// Step names a workflow step.
type Step string

const (
	StepAuthenticate       Step = "authenticate"
	StepRetrievePatients   Step = "retrieve_patients"
	StepRetrieveActivities Step = "retrieve_activities"
	StepRetrieveCategory   Step = "retrieve_category"
)

// Stage is the last milestone a run reached.
type Stage string

const (
	StageStart             Stage = "start"
	StageAuthenticated     Stage = "authenticated"
	StagePatientsListed    Stage = "patients_listed"
	StageActivitiesListed  Stage = "activities_listed"
	StageCategoryRetrieved Stage = "category_retrieved"
)

// State is threaded through the steps. Authenticate fills Session; the
// activity step fills AttachmentID, which the category step requires.
type State struct {
	Stage        Stage
	Session      models.Session
	AttachmentID uuid.UUID
}

// Params are the request parameters of one run.
type Params struct {
	Credentials     models.UserAuthenticationRequest
	PatientFilters  models.Filters
	ActivityFilters models.Filters
	ContentFormat   models.ContentFormat
	Sections        models.AttachmentSection
}

// StepResult describes one executed step.
type StepResult struct {
	Step       Step
	Position   int
	Status     models.StepStatus
	Rendered   string
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Report summarises a run, successful or not.
type Report struct {
	RunID string
	State State
	Steps []StepResult
}

// Completed reports whether the run reached its final stage.
func (r Report) Completed() bool {
	return r.State.Stage == StageCategoryRetrieved
}

// StepError wraps the cause of the step that ended a run.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FailedStep returns the step that ended the run when err carries a
// [*StepError].
func FailedStep(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}
