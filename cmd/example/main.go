// Command example runs the PatientVault usage example: it signs in, lists
// patients and activities, and prints the CCDA category of the first
// attachment of the first activity.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/patient-vault-example/internal/client"
	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/workflow"
	"github.com/MKhiriev/patient-vault-example/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("patient-vault-example").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("patient-vault-example", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, os.Stdout, os.Stdin, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		event := log.Fatal().Err(err).Str("run_id", app.Report().RunID)
		if step, ok := workflow.FailedStep(err); ok {
			event = event.Str("step", string(step))
		}
		event.Msg("client run error")
	}
}

// printBuildInfo writes to stderr; stdout carries the workflow results.
func printBuildInfo() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
