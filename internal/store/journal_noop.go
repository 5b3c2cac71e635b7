package store

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/models"
)

// noopJournal discards every record. It is used when no journal DSN is
// configured.
type noopJournal struct{}

// NewNoopJournal returns a [JournalRepository] that stores nothing.
func NewNoopJournal() JournalRepository {
	return noopJournal{}
}

func (noopJournal) SaveStep(context.Context, models.StepRecord) error {
	return nil
}

func (noopJournal) StepsByRun(context.Context, string) ([]models.StepRecord, error) {
	return nil, ErrRunNotFound
}
