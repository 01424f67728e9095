package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// WorkRecordReader defines read operations for work records
type WorkRecordReader interface {
	// FindWorkRecordByID retrieves a single record. Returns apperrors.ErrNotFound if missing.
	FindWorkRecordByID(ctx context.Context, recordID string) (*domain.WorkRecord, error)

	// FindWorkRecords returns the records matching filter in (createdAt, recordID)
	// order, skipping page.Offset rows and returning at most page.Limit rows.
	// page.Limit == 0 returns every remaining row.
	FindWorkRecords(ctx context.Context, filter domain.RecordFilter, page domain.PageRequest) ([]domain.WorkRecord, error)
}

// WorkRecordWriter defines write operations for work records
type WorkRecordWriter interface {
	// SaveWorkRecord persists a new record.
	SaveWorkRecord(ctx context.Context, record domain.WorkRecord) error

	// UpdatePendingWorkRecord overwrites a record only while it is still PENDING.
	// Returns apperrors.ErrNotFound if missing and apperrors.ErrInvalidState if paid.
	UpdatePendingWorkRecord(ctx context.Context, record domain.WorkRecord) error

	// DeleteWorkRecord hard-deletes a record and reports whether a row existed.
	DeleteWorkRecord(ctx context.Context, recordID string) (bool, error)
}

// WorkRecordSettler defines the batch payment operation
type WorkRecordSettler interface {
	// MarkRecordsPaid flips every PENDING record among recordIDs to PAID with
	// paidAt as payment date, all or nothing, and returns the ids it changed.
	MarkRecordsPaid(ctx context.Context, recordIDs []string, paidAt time.Time, paidBy string) ([]string, error)
}

// WorkRecordRepositoryFacade combines all work-record repository interfaces
type WorkRecordRepositoryFacade interface {
	WorkRecordReader
	WorkRecordWriter
	WorkRecordSettler
}
