// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the run journal: one row per executed workflow step.
//
// The journal is optional. When no DSN is configured the workflow writes to
// a no-op journal and nothing touches the disk.
package store

import (
	"context"

	"github.com/MKhiriev/patient-vault-example/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_mock.go -package=mock

// JournalRepository records workflow steps.
type JournalRepository interface {
	// SaveStep appends one step record. Records of a run are unique by
	// position; saving the same position twice returns [ErrStepAlreadySaved].
	SaveStep(ctx context.Context, record models.StepRecord) error

	// StepsByRun returns the records of runID ordered by position, or
	// [ErrRunNotFound] when the run has no records.
	StepsByRun(ctx context.Context, runID string) ([]models.StepRecord, error)
}
