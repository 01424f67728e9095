package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkRecordRepository ---
type MockWorkRecordRepository struct {
	mock.Mock
}

func (m *MockWorkRecordRepository) FindWorkRecordByID(ctx context.Context, recordID string) (*domain.WorkRecord, error) {
	args := m.Called(ctx, recordID)
	var record *domain.WorkRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.WorkRecord)
	}
	return record, args.Error(1)
}

func (m *MockWorkRecordRepository) FindWorkRecords(ctx context.Context, filter domain.RecordFilter, page domain.PageRequest) ([]domain.WorkRecord, error) {
	args := m.Called(ctx, filter, page)
	var records []domain.WorkRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.WorkRecord)
	}
	return records, args.Error(1)
}

func (m *MockWorkRecordRepository) SaveWorkRecord(ctx context.Context, record domain.WorkRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWorkRecordRepository) UpdatePendingWorkRecord(ctx context.Context, record domain.WorkRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWorkRecordRepository) DeleteWorkRecord(ctx context.Context, recordID string) (bool, error) {
	args := m.Called(ctx, recordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkRecordRepository) MarkRecordsPaid(ctx context.Context, recordIDs []string, paidAt time.Time, paidBy string) ([]string, error) {
	args := m.Called(ctx, recordIDs, paidAt, paidBy)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

// --- Mock WorkerRepository (read side only) ---
type MockWorkerReader struct {
	mock.Mock
}

func (m *MockWorkerReader) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	var worker *domain.Worker
	if args.Get(0) != nil {
		worker = args.Get(0).(*domain.Worker)
	}
	return worker, args.Error(1)
}

func (m *MockWorkerReader) ListWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error) {
	args := m.Called(ctx, limit, offset)
	var workers []domain.Worker
	if args.Get(0) != nil {
		workers = args.Get(0).([]domain.Worker)
	}
	return workers, args.Error(1)
}

// --- Mock catalog readers ---
type MockSectionReader struct {
	mock.Mock
}

func (m *MockSectionReader) FindSectionByID(ctx context.Context, sectionID string) (*domain.Section, error) {
	args := m.Called(ctx, sectionID)
	var section *domain.Section
	if args.Get(0) != nil {
		section = args.Get(0).(*domain.Section)
	}
	return section, args.Error(1)
}

func (m *MockSectionReader) ListSections(ctx context.Context) ([]domain.Section, error) {
	args := m.Called(ctx)
	var sections []domain.Section
	if args.Get(0) != nil {
		sections = args.Get(0).([]domain.Section)
	}
	return sections, args.Error(1)
}

type MockItemReader struct {
	mock.Mock
}

func (m *MockItemReader) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockItemReader) ListItems(ctx context.Context, sectionID string) ([]domain.Item, error) {
	args := m.Called(ctx, sectionID)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	return items, args.Error(1)
}
