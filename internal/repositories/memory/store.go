// Package memory is an in-process storage backend behind the same repository
// ports as Postgres. It is used for local runs and for exercising query and
// settlement behavior in tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/utils/pagination"
)

// Store keeps every entity in maps guarded by one RWMutex. Multi-entity
// operations (cascade delete, settlement) run under a single write lock.
type Store struct {
	mu       sync.RWMutex
	sections map[string]domain.Section
	items    map[string]domain.Item
	workers  map[string]domain.Worker
	records  map[string]domain.WorkRecord
	users    map[string]domain.User
}

func New() *Store {
	return &Store{
		sections: map[string]domain.Section{},
		items:    map[string]domain.Item{},
		workers:  map[string]domain.Worker{},
		records:  map[string]domain.WorkRecord{},
		users:    map[string]domain.User{},
	}
}

var (
	_ portsrepo.SectionRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ItemRepositoryFacade       = (*Store)(nil)
	_ portsrepo.WorkerRepositoryFacade     = (*Store)(nil)
	_ portsrepo.WorkRecordRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade       = (*Store)(nil)
)

// NewRepositoryProvider exposes one Store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SectionRepo:    s,
		ItemRepo:       s,
		WorkerRepo:     s,
		WorkRecordRepo: s,
		UserRepo:       s,
	}
}

// --- sections ---

func (s *Store) SaveSection(_ context.Context, section domain.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sections[section.SectionID]; ok {
		return apperrors.ErrDuplicate
	}
	s.sections[section.SectionID] = section
	return nil
}

func (s *Store) FindSectionByID(_ context.Context, sectionID string) (*domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sec, ok := s.sections[sectionID]
	if !ok || sec.IsDeleted {
		return nil, apperrors.NewNotFoundError("section " + sectionID + " not found")
	}
	return &sec, nil
}

func (s *Store) ListSections(_ context.Context) ([]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		if !sec.IsDeleted {
			out = append(out, sec)
		}
	}
	slices.SortFunc(out, func(a, b domain.Section) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.SectionID, b.SectionID))
	})
	return out, nil
}

func (s *Store) UpdateSection(_ context.Context, section domain.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.sections[section.SectionID]
	if !ok || cur.IsDeleted {
		return apperrors.NewNotFoundError("section " + section.SectionID + " not found")
	}
	cur.Name = section.Name
	cur.LastUpdatedAt = section.LastUpdatedAt
	cur.LastUpdatedBy = section.LastUpdatedBy
	s.sections[section.SectionID] = cur
	return nil
}

func (s *Store) SoftDeleteSection(_ context.Context, sectionID string, deletedAt time.Time, deletedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[sectionID]
	if !ok || sec.IsDeleted {
		return apperrors.NewNotFoundError("section " + sectionID + " not found")
	}
	sec.IsDeleted = true
	sec.Touch(deletedBy, deletedAt)
	s.sections[sectionID] = sec

	for id, it := range s.items {
		if it.SectionID == sectionID && !it.IsDeleted {
			it.IsDeleted = true
			it.Touch(deletedBy, deletedAt)
			s.items[id] = it
		}
	}
	return nil
}

// --- items ---

func (s *Store) SaveItem(_ context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ItemID]; ok {
		return apperrors.ErrDuplicate
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) FindItemByID(_ context.Context, itemID string) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[itemID]
	if !ok || it.IsDeleted {
		return nil, apperrors.NewNotFoundError("item " + itemID + " not found")
	}
	return &it, nil
}

func (s *Store) ListItems(_ context.Context, sectionID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Item, 0)
	for _, it := range s.items {
		if it.IsDeleted || (sectionID != "" && it.SectionID != sectionID) {
			continue
		}
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b domain.Item) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ItemID, b.ItemID))
	})
	return out, nil
}

func (s *Store) UpdateItem(_ context.Context, item domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[item.ItemID]
	if !ok || cur.IsDeleted {
		return apperrors.NewNotFoundError("item " + item.ItemID + " not found")
	}
	item.IsDeleted = false
	item.CreatedAt, item.CreatedBy = cur.CreatedAt, cur.CreatedBy
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) SoftDeleteItem(_ context.Context, itemID string, deletedAt time.Time, deletedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok || it.IsDeleted {
		return apperrors.NewNotFoundError("item " + itemID + " not found")
	}
	it.IsDeleted = true
	it.Touch(deletedBy, deletedAt)
	s.items[itemID] = it
	return nil
}

// --- workers ---

func (s *Store) SaveWorker(_ context.Context, worker domain.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workers[worker.WorkerID]; ok {
		return apperrors.ErrDuplicate
	}
	s.workers[worker.WorkerID] = worker
	return nil
}

func (s *Store) FindWorkerByID(_ context.Context, workerID string) (*domain.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workers[workerID]
	if !ok || w.IsDeleted {
		return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
	}
	return &w, nil
}

func (s *Store) ListWorkers(_ context.Context, limit int, offset int) ([]domain.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]domain.Worker, 0, len(s.workers))
	for _, w := range s.workers {
		if !w.IsDeleted {
			all = append(all, w)
		}
	}
	slices.SortFunc(all, func(a, b domain.Worker) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.Lastname, b.Lastname),
			strings.Compare(a.WorkerID, b.WorkerID),
		)
	})
	start, end := pagination.Window(len(all), max(offset, 0), limit)
	return all[start:end], nil
}

func (s *Store) UpdateWorker(_ context.Context, worker domain.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.workers[worker.WorkerID]
	if !ok || cur.IsDeleted {
		return apperrors.NewNotFoundError("worker " + worker.WorkerID + " not found")
	}
	worker.IsDeleted = false
	worker.CreatedAt, worker.CreatedBy = cur.CreatedAt, cur.CreatedBy
	s.workers[worker.WorkerID] = worker
	return nil
}

func (s *Store) MarkWorkerDeleted(_ context.Context, workerID string, deletedAt time.Time, deletedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workers[workerID]
	if !ok || w.IsDeleted {
		return apperrors.NewNotFoundError("worker " + workerID + " not found")
	}
	w.IsDeleted = true
	w.Touch(deletedBy, deletedAt)
	s.workers[workerID] = w
	return nil
}

// --- users ---

func (s *Store) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return apperrors.ErrDuplicate
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
