package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/dto"
)

type reportingService struct {
	BaseService
	recordRepo portsrepo.WorkRecordReader
	workerRepo portsrepo.WorkerReader
}

// NewReportingService creates the report builder service.
func NewReportingService(recordRepo portsrepo.WorkRecordReader, workerRepo portsrepo.WorkerReader, options ...ServiceOption) *reportingService {
	return &reportingService{
		BaseService: newBaseService(options...),
		recordRepo:  recordRepo,
		workerRepo:  workerRepo,
	}
}

func (s *reportingService) GenerateReport(ctx context.Context, query dto.WorkRecordQuery) (*domain.Report, error) {
	filter, err := recordFilterFromQuery(query, s.Location())
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindWorkRecords(ctx, filter, domain.PageRequest{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for report")
		return nil, err
	}

	report := domain.BuildReport(records, nil)
	report.FromDate = query.FromDate
	report.ToDate = query.ToDate

	if query.WorkerID != "" {
		worker, err := s.workerRepo.FindWorkerByID(ctx, query.WorkerID)
		switch {
		case err == nil:
			report.Worker = worker
		case errors.Is(err, apperrors.ErrNotFound):
			// Deleted workers still have records; the rows carry the name snapshot.
			s.LogDebug(ctx, "Report worker not found, omitting header", slog.String("worker_id", query.WorkerID))
		default:
			s.LogError(ctx, err, "Failed to load report worker", slog.String("worker_id", query.WorkerID))
			return nil, err
		}
	}

	s.LogDebug(ctx, "Report generated", slog.Int("rows", len(report.Rows)), slog.String("total", report.Total.String()))
	return &report, nil
}

func (s *reportingService) BuildSelectedReport(ctx context.Context, records []domain.WorkRecord, selectionIDs []string) (*domain.Report, error) {
	report := domain.BuildReport(records, selectionIDs)
	s.LogDebug(ctx, "Selected report built",
		slog.Int("supplied", len(records)),
		slog.Int("selected", len(selectionIDs)),
		slog.Int("rows", len(report.Rows)))
	return &report, nil
}
