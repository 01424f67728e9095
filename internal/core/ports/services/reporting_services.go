package services

import (
	"context"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
)

// ReportingSvc builds reports over work records
type ReportingSvc interface {
	// GenerateReport reports every record matching the query; paging fields are ignored.
	GenerateReport(ctx context.Context, query dto.WorkRecordQuery) (*domain.Report, error)

	// BuildSelectedReport reports the selected subset of caller-held records without a store query.
	BuildSelectedReport(ctx context.Context, records []domain.WorkRecord, selectionIDs []string) (*domain.Report, error)
}
