package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type workRecordService struct {
	BaseService
	recordRepo  portsrepo.WorkRecordRepositoryFacade
	workerRepo  portsrepo.WorkerReader
	sectionRepo portsrepo.SectionReader
	itemRepo    portsrepo.ItemReader
}

// NewWorkRecordService creates the ledger and record query service.
func NewWorkRecordService(
	recordRepo portsrepo.WorkRecordRepositoryFacade,
	workerRepo portsrepo.WorkerReader,
	sectionRepo portsrepo.SectionReader,
	itemRepo portsrepo.ItemReader,
	options ...ServiceOption,
) *workRecordService {
	return &workRecordService{
		BaseService: newBaseService(options...),
		recordRepo:  recordRepo,
		workerRepo:  workerRepo,
		sectionRepo: sectionRepo,
		itemRepo:    itemRepo,
	}
}

// resolveCatalog loads the section and item, checking the item belongs to the section.
func (s *workRecordService) resolveCatalog(ctx context.Context, sectionID, itemID string) (*domain.Section, *domain.Item, error) {
	section, err := s.sectionRepo.FindSectionByID(ctx, sectionID)
	if err != nil {
		return nil, nil, referenceError("section", sectionID, err)
	}
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, referenceError("item", itemID, err)
	}
	if item.SectionID != section.SectionID {
		return nil, nil, validationErrorf("item %s does not belong to section %s", itemID, sectionID)
	}
	return section, item, nil
}

func (s *workRecordService) CreateRecord(ctx context.Context, req dto.CreateWorkRecordRequest, actorID string) (*domain.WorkRecord, error) {
	if req.Piece == nil {
		return nil, validationErrorf("piece is required")
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		return nil, referenceError("worker", req.WorkerID, err)
	}
	section, item, err := s.resolveCatalog(ctx, req.SectionID, req.ItemID)
	if err != nil {
		return nil, err
	}

	rate := item.Rate
	if req.ItemRate != nil {
		rate = *req.ItemRate
	}
	if err := domain.ValidateQuantities(*req.Piece, rate, req.Amount); err != nil {
		return nil, err
	}

	record := domain.WorkRecord{
		RecordID:      uuid.NewString(),
		WorkerID:      worker.WorkerID,
		WorkerName:    worker.FullName(),
		SectionID:     section.SectionID,
		SectionName:   section.Name,
		ItemID:        item.ItemID,
		ItemName:      item.Name,
		Piece:         *req.Piece,
		ItemRate:      rate,
		PaymentStatus: domain.PaymentPending,
		AuditFields:   domain.NewAuditFields(actorID, s.Now()),
	}
	record.SetAmount(req.Amount)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.SaveWorkRecord(ctx, record); err != nil {
		s.logFailure(ctx, err, "Failed to save work record", slog.String("record_id", record.RecordID))
		return nil, err
	}

	s.LogInfo(ctx, "Work record created",
		slog.String("record_id", record.RecordID),
		slog.String("worker_id", record.WorkerID),
		slog.String("amount", record.Amount.String()))
	return &record, nil
}

func (s *workRecordService) GetRecord(ctx context.Context, recordID string) (*domain.WorkRecord, error) {
	record, err := s.recordRepo.FindWorkRecordByID(ctx, recordID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find work record", slog.String("record_id", recordID))
		return nil, err
	}
	return record, nil
}

func (s *workRecordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateWorkRecordRequest, actorID string) (*domain.WorkRecord, error) {
	record, err := s.recordRepo.FindWorkRecordByID(ctx, recordID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find work record for update", slog.String("record_id", recordID))
		return nil, err
	}
	if record.IsPaid() {
		return nil, invalidStatef("work record %s is PAID and can no longer be edited", recordID)
	}

	if req.WorkerID != nil && *req.WorkerID != record.WorkerID {
		worker, err := s.workerRepo.FindWorkerByID(ctx, *req.WorkerID)
		if err != nil {
			return nil, referenceError("worker", *req.WorkerID, err)
		}
		record.WorkerID = worker.WorkerID
		record.WorkerName = worker.FullName()
	}

	recompute := false
	sectionChanged := req.SectionID != nil && *req.SectionID != record.SectionID
	itemChanged := req.ItemID != nil && *req.ItemID != record.ItemID
	if sectionChanged || itemChanged {
		sectionID, itemID := record.SectionID, record.ItemID
		if req.SectionID != nil {
			sectionID = *req.SectionID
		}
		if req.ItemID != nil {
			itemID = *req.ItemID
		}
		section, item, err := s.resolveCatalog(ctx, sectionID, itemID)
		if err != nil {
			return nil, err
		}
		record.SectionID, record.SectionName = section.SectionID, section.Name
		record.ItemID, record.ItemName = item.ItemID, item.Name
		if itemChanged {
			record.ItemRate = item.Rate
		}
		recompute = true
	}

	if req.Piece != nil {
		record.Piece = *req.Piece
		recompute = true
	}
	if req.ItemRate != nil {
		record.ItemRate = *req.ItemRate
		recompute = true
	}
	if err := domain.ValidateQuantities(record.Piece, record.ItemRate, req.Amount); err != nil {
		return nil, err
	}

	switch {
	case req.Amount != nil:
		record.SetAmount(req.Amount)
	case recompute:
		record.SetAmount(nil)
	}
	record.Touch(actorID, s.Now())
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.recordRepo.UpdatePendingWorkRecord(ctx, *record); err != nil {
		s.logFailure(ctx, err, "Failed to update work record", slog.String("record_id", recordID))
		return nil, err
	}

	s.LogInfo(ctx, "Work record updated", slog.String("record_id", recordID), slog.String("amount", record.Amount.String()))
	return record, nil
}

func (s *workRecordService) DeleteRecord(ctx context.Context, recordID string, actorID string) error {
	existed, err := s.recordRepo.DeleteWorkRecord(ctx, recordID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete work record", slog.String("record_id", recordID))
		return err
	}
	if !existed {
		s.LogDebug(ctx, "Work record to delete did not exist", slog.String("record_id", recordID))
		return nil
	}
	s.LogInfo(ctx, "Work record deleted", slog.String("record_id", recordID), slog.String("deleted_by", actorID))
	return nil
}

func (s *workRecordService) FindRecords(ctx context.Context, query dto.WorkRecordQuery) (*domain.RecordPage, error) {
	if query.Limit < 0 {
		return nil, validationErrorf("limit must not be negative, got %d", query.Limit)
	}
	if query.Offset < 0 {
		return nil, validationErrorf("offset must not be negative, got %d", query.Offset)
	}
	filter, err := recordFilterFromQuery(query, s.Location())
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindWorkRecords(ctx, filter, domain.PageRequest{Limit: query.Limit, Offset: query.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to query work records",
			slog.Int("limit", query.Limit),
			slog.Int("offset", query.Offset))
		return nil, err
	}
	if records == nil {
		records = []domain.WorkRecord{}
	}

	return &domain.RecordPage{
		Records: records,
		HasMore: pagination.HasMore(len(records), query.Limit),
	}, nil
}
