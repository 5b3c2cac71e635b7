// Command fakevault serves an in-memory PatientVault API for local runs of
// the example.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/fakevault"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/internal/server"
	"github.com/MKhiriev/patient-vault-example/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetFakeVaultConfig()
	if err != nil {
		logger.NewLogger("fakevault").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fakevault", cfg.LogLevel)
	log.Debug().Str("address", cfg.HTTPAddress).Dur("session_duration", cfg.SessionDuration).Msg("received configs")

	handler := fakevault.NewHandler(fakevault.NewVault(fakevault.SeedDataset()), *cfg, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
