package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/patient-vault-example/internal/adapter"
	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/render"
	"github.com/MKhiriev/patient-vault-example/internal/service"
	"github.com/MKhiriev/patient-vault-example/internal/store"
	"github.com/MKhiriev/patient-vault-example/internal/workflow"
)

type App struct {
	cfg      *config.ClientConfig
	runner   *workflow.Runner
	storages *store.Storages
	renderer *render.Renderer
	in       io.Reader

	report workflow.Report
	logger *logger.Logger
}

// NewApp builds the application. Results are written to out; in is read
// only when the configuration asks to wait before exiting.
func NewApp(ctx context.Context, cfg *config.ClientConfig, out io.Writer, in io.Reader, logger *logger.Logger) (*App, error) {
	vault, err := adapter.NewHTTPPatientVaultAdapter(cfg.Adapter, cfg.App.Culture, logger)
	if err != nil {
		return nil, fmt.Errorf("create adapter: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services := service.NewServices(vault, cfg.App.Culture, logger)
	renderer := render.NewRenderer(out)

	return &App{
		cfg:      cfg,
		runner:   workflow.NewRunner(services, renderer, storages.Journal, logger),
		storages: storages,
		renderer: renderer,
		in:       in,
		logger:   logger,
	}, nil
}

// Run executes the workflow once and releases the journal. With WaitOnExit
// it blocks on a line from the input, or until ctx is cancelled, before
// returning, whatever the outcome.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing storages")
		}
	}()
	defer a.waitForExit(ctx)

	report, err := a.runner.Run(ctx, workflow.Params{
		Credentials:     a.cfg.App.Credentials,
		PatientFilters:  a.cfg.Workflow.PatientFilters,
		ActivityFilters: a.cfg.Workflow.ActivityFilters,
		ContentFormat:   a.cfg.Workflow.ContentFormat,
		Sections:        a.cfg.Workflow.Sections,
	})
	a.report = report

	if a.cfg.Storage.JournalDSN != "" {
		a.noteJournal(ctx, report.RunID)
	}
	if err != nil {
		return fmt.Errorf("workflow run %s: %w", report.RunID, err)
	}

	if report.Completed() {
		a.logger.Info().Str("run_id", report.RunID).Msg("all workflow steps completed")
	}
	return nil
}

// noteJournal reads the run back from the journal and prints a summary.
func (a *App) noteJournal(ctx context.Context, runID string) {
	records, err := a.storages.Journal.StepsByRun(context.WithoutCancel(ctx), runID)
	if err != nil {
		a.logger.Warn().Err(err).Str("run_id", runID).Msg("error reading run journal")
		return
	}

	var total time.Duration
	for _, rec := range records {
		total += rec.Duration()
	}
	_ = a.renderer.Note("\nRun %s journaled to %s (%d steps, %s)", runID, a.cfg.Storage.JournalDSN, len(records), total)
}

// Report returns the report of the last run.
func (a *App) Report() workflow.Report {
	return a.report
}

// waitForExit blocks until a line is read from the input or ctx is done.
// On cancellation the pending read is abandoned; the process is exiting.
func (a *App) waitForExit(ctx context.Context) {
	if !a.cfg.App.WaitOnExit || a.in == nil {
		return
	}

	_ = a.renderer.Note("Press Enter to exit...")

	readErr := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(a.in).ReadString('\n')
		readErr <- err
	}()

	select {
	case err := <-readErr:
		if err != nil && !errors.Is(err, io.EOF) {
			a.logger.Warn().Err(err).Msg("error reading from input")
		}
	case <-ctx.Done():
		a.logger.Debug().Msg("exit prompt interrupted")
	}
}
