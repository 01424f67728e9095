package memory

import (
	"context"
	"slices"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/utils/pagination"
)

// cloneRecord detaches the PaymentDate pointer from the stored copy.
func cloneRecord(r domain.WorkRecord) domain.WorkRecord {
	if r.PaymentDate != nil {
		d := *r.PaymentDate
		r.PaymentDate = &d
	}
	return r
}

func (s *Store) SaveWorkRecord(_ context.Context, record domain.WorkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.RecordID]; ok {
		return apperrors.ErrDuplicate
	}
	s.records[record.RecordID] = cloneRecord(record)
	return nil
}

func (s *Store) FindWorkRecordByID(_ context.Context, recordID string) (*domain.WorkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[recordID]
	if !ok {
		return nil, apperrors.NewNotFoundError("work record " + recordID + " not found")
	}
	r = cloneRecord(r)
	return &r, nil
}

func (s *Store) FindWorkRecords(_ context.Context, filter domain.RecordFilter, page domain.PageRequest) ([]domain.WorkRecord, error) {
	s.mu.RLock()
	matched := make([]domain.WorkRecord, 0)
	for _, r := range s.records {
		if filter.Matches(r) {
			matched = append(matched, cloneRecord(r))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b domain.WorkRecord) int {
		switch {
		case domain.RecordLess(a, b):
			return -1
		case domain.RecordLess(b, a):
			return 1
		}
		return 0
	})

	start, end := pagination.Window(len(matched), page.Offset, page.Limit)
	return matched[start:end], nil
}

func (s *Store) UpdatePendingWorkRecord(_ context.Context, record domain.WorkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.records[record.RecordID]
	if !ok {
		return apperrors.NewNotFoundError("work record " + record.RecordID + " not found")
	}
	if cur.IsPaid() {
		return apperrors.NewInvalidStateError("work record " + record.RecordID + " is PAID and can no longer be edited")
	}
	// Payment and creation fields are owned by the store.
	record.PaymentStatus = cur.PaymentStatus
	record.PaymentDate = nil
	record.CreatedAt, record.CreatedBy = cur.CreatedAt, cur.CreatedBy
	s.records[record.RecordID] = record
	return nil
}

func (s *Store) DeleteWorkRecord(_ context.Context, recordID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[recordID]; !ok {
		return false, nil
	}
	delete(s.records, recordID)
	return true, nil
}

func (s *Store) MarkRecordsPaid(_ context.Context, recordIDs []string, paidAt time.Time, paidBy string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := make([]string, 0, len(recordIDs))
	for _, id := range recordIDs {
		r, ok := s.records[id]
		if !ok || !r.MarkPaid(paidAt, paidBy) {
			continue
		}
		s.records[id] = r
		updated = append(updated, id)
	}
	return updated, nil
}
