package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/patient-vault-example/internal/logger"
	"github.com/MKhiriev/patient-vault-example/models"
)

const journalTable = "workflow_steps"

var journalColumns = []string{
	"run_id", "step", "position", "status", "payload", "error", "started_at", "finished_at",
}

// journalRepository is the sqlite-backed implementation of
// [JournalRepository]. Queries are built with squirrel using "?" placeholders.
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{db: db, logger: logger}
}

func (r *journalRepository) SaveStep(ctx context.Context, record models.StepRecord) error {
	log := logger.FromContext(ctx)

	if record.RunID == "" || record.Step == "" || record.Status == "" {
		return ErrInvalidStep
	}

	query, args, err := sq.Insert(journalTable).
		Columns(journalColumns...).
		Values(
			record.RunID,
			record.Step,
			record.Position,
			string(record.Status),
			record.Payload,
			record.Error,
			record.StartedAt.UTC(),
			record.FinishedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*journalRepository.SaveStep").Msg("error saving step")
		if isUniqueViolation(err) {
			return ErrStepAlreadySaved
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *journalRepository) StepsByRun(ctx context.Context, runID string) ([]models.StepRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.StepsByRun").Msg("error querying steps")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var records []models.StepRecord
	for rows.Next() {
		var (
			rec    models.StepRecord
			status string
		)
		if err = rows.Scan(&rec.RunID, &rec.Step, &rec.Position, &status, &rec.Payload, &rec.Error, &rec.StartedAt, &rec.FinishedAt); err != nil {
			log.Err(err).Str("func", "*journalRepository.StepsByRun").Msg("error: scanning error")
			return nil, err
		}
		rec.Status = models.StepStatus(status)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrRunNotFound
	}

	return records, nil
}
