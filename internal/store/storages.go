package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/patient-vault-example/internal/config"
	"github.com/MKhiriev/patient-vault-example/internal/logger"
)

// Storages groups the client storage repositories.
type Storages struct {
	// Journal records the executed workflow steps.
	Journal JournalRepository

	db *DB
}

// NewStorages initialises the storage layer. With an empty journal DSN it
// returns a no-op journal and opens nothing. Otherwise it:
//  1. Opens an SQLite connection to cfg.JournalDSN, creating the database
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [JournalRepository] to the connection.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	if cfg.JournalDSN == "" {
		logger.Debug().Msg("run journal disabled")
		return &Storages{Journal: NewNoopJournal()}, nil
	}

	logger.Info().Str("dsn", cfg.JournalDSN).Msg("opening run journal...")

	db, err := NewConnectSQLite(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Journal: NewJournalRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
