// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workflow

import (
	"context"
	"time"

	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/render"
	"github.com/MKhiriev/patient-vault-example/internal/service"
	"github.com/MKhiriev/patient-vault-example/internal/store"
	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/MKhiriev/patient-vault-example/models"
	"github.com/rs/zerolog"
)

type stepFunc func(ctx context.Context, state *State, params Params) (any, error)

type stepDef struct {
	step  Step
	title string
	next  Stage
	run   stepFunc
}

// Runner executes the workflow against the PatientVault services.
type Runner struct {
	services *service.Services
	renderer *render.Renderer
	journal  store.JournalRepository
	ids      *utils.UUIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewRunner builds a Runner. journal may be a no-op journal.
func NewRunner(services *service.Services, renderer *render.Renderer, journal store.JournalRepository, logger *logger.Logger) *Runner {
	return &Runner{
		services: services,
		renderer: renderer,
		journal:  journal,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

func (r *Runner) steps() []stepDef {
	return []stepDef{
		{step: StepAuthenticate, title: "Signing in...", next: StageAuthenticated, run: r.authenticate},
		{step: StepRetrievePatients, title: "Retrieving patients (records)...", next: StagePatientsListed, run: r.retrievePatients},
		{step: StepRetrieveActivities, title: "Retrieving activities...", next: StageActivitiesListed, run: r.retrieveActivities},
		{step: StepRetrieveCategory, title: "Getting CCDA Information...", next: StageCategoryRetrieved, run: r.retrieveCategory},
	}
}

// Run executes every step in order and stops at the first failure, which is
// returned as a [*StepError]. The report is filled in both cases.
func (r *Runner) Run(ctx context.Context, params Params) (Report, error) {
	report := Report{
		RunID: r.ids.Generate(),
		State: State{Stage: StageStart},
	}

	log := r.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", report.RunID)
	})
	ctx = log.WithContext(ctx)

	for i, def := range r.steps() {
		position := i + 1
		if i > 0 {
			_ = r.renderer.Break()
		}

		result := r.runStep(ctx, def, position, &report.State, params)
		report.Steps = append(report.Steps, result)
		r.record(ctx, report.RunID, result)

		if result.Err != nil {
			log.Err(result.Err).Str("step", string(def.step)).Msg("workflow step failed")
			return report, &StepError{Step: def.step, Err: result.Err}
		}

		report.State.Stage = def.next
		log.Debug().Str("step", string(def.step)).Str("stage", string(def.next)).Msg("workflow step done")
	}

	log.Info().Msg("workflow completed")
	return report, nil
}

func (r *Runner) runStep(ctx context.Context, def stepDef, position int, state *State, params Params) StepResult {
	result := StepResult{Step: def.step, Position: position, StartedAt: r.now()}

	if err := r.renderer.Title(def.title); err != nil {
		r.logger.Warn().Err(err).Msg("error writing step title")
	}

	if err := ctx.Err(); err != nil {
		return finish(result, "", err, r.now)
	}

	out, err := def.run(ctx, state, params)

	var rendered string
	if out != nil {
		var renderErr error
		rendered, renderErr = r.renderer.Result(out)
		if renderErr != nil && err == nil {
			err = renderErr
		}
	}
	if err != nil {
		_ = r.renderer.Error(err)
	}

	return finish(result, rendered, err, r.now)
}

func finish(result StepResult, rendered string, err error, now func() time.Time) StepResult {
	result.Rendered = rendered
	result.Err = err
	result.Status = models.StepSucceeded
	if err != nil {
		result.Status = models.StepFailed
	}
	result.FinishedAt = now()
	return result
}

// record writes the step to the journal. Journal failures are logged and do
// not end the run.
func (r *Runner) record(ctx context.Context, runID string, result StepResult) {
	rec := models.StepRecord{
		RunID:      runID,
		Step:       string(result.Step),
		Position:   result.Position,
		Status:     result.Status,
		Payload:    result.Rendered,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}

	if err := r.journal.SaveStep(context.WithoutCancel(ctx), rec); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("step", rec.Step).Msg("error saving step to journal")
	}
}
