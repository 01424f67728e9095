package services

import (
	"context"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
)

// LedgerSvc defines the work record lifecycle
type LedgerSvc interface {
	CreateRecord(ctx context.Context, req dto.CreateWorkRecordRequest, actorID string) (*domain.WorkRecord, error)
	GetRecord(ctx context.Context, recordID string) (*domain.WorkRecord, error)

	// UpdateRecord applies a partial update to a PENDING record.
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateWorkRecordRequest, actorID string) (*domain.WorkRecord, error)

	// DeleteRecord hard-deletes a record in any status. A missing id is not an error.
	DeleteRecord(ctx context.Context, recordID string, actorID string) error
}

// RecordQuerySvc defines read access over filtered, ordered record sets
type RecordQuerySvc interface {
	// FindRecords returns one page of matching records ordered by (createdAt, recordID).
	FindRecords(ctx context.Context, query dto.WorkRecordQuery) (*domain.RecordPage, error)
}

// WorkRecordSvcFacade combines ledger and query services
type WorkRecordSvcFacade interface {
	LedgerSvc
	RecordQuerySvc
}
