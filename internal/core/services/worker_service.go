package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/google/uuid"
)

type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
}

// NewWorkerService creates the worker registry service.
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, options ...ServiceOption) *workerService {
	return &workerService{
		BaseService: newBaseService(options...),
		workerRepo:  workerRepo,
	}
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find worker", slog.String("worker_id", workerID))
		return nil, err
	}
	return worker, nil
}

func (s *workerService) ListWorkers(ctx context.Context, limit, offset int) ([]domain.Worker, error) {
	if limit < 0 || offset < 0 {
		return nil, validationErrorf("limit and offset must not be negative")
	}
	workers, err := s.workerRepo.ListWorkers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, err
	}
	if workers == nil {
		return []domain.Worker{}, nil
	}
	return workers, nil
}

func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, actorID string) (*domain.Worker, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("worker name is required")
	}

	worker := domain.Worker{
		WorkerID:    uuid.NewString(),
		Name:        name,
		Lastname:    strings.TrimSpace(req.Lastname),
		MobileNo:    strings.TrimSpace(req.MobileNo),
		Address:     strings.TrimSpace(req.Address),
		AuditFields: domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		s.logFailure(ctx, err, "Failed to save worker", slog.String("worker_id", worker.WorkerID))
		return nil, err
	}

	s.LogInfo(ctx, "Worker created", slog.String("worker_id", worker.WorkerID))
	return &worker, nil
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest, actorID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find worker for update", slog.String("worker_id", workerID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, validationErrorf("worker name must not be empty")
		}
		worker.Name = name
	}
	if req.Lastname != nil {
		worker.Lastname = strings.TrimSpace(*req.Lastname)
	}
	if req.MobileNo != nil {
		worker.MobileNo = strings.TrimSpace(*req.MobileNo)
	}
	if req.Address != nil {
		worker.Address = strings.TrimSpace(*req.Address)
	}
	worker.Touch(actorID, s.Now())

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.logFailure(ctx, err, "Failed to update worker", slog.String("worker_id", workerID))
		return nil, err
	}
	return worker, nil
}

func (s *workerService) DeleteWorker(ctx context.Context, workerID string, actorID string) error {
	if err := s.workerRepo.MarkWorkerDeleted(ctx, workerID, s.Now(), actorID); err != nil {
		s.logFailure(ctx, err, "Failed to delete worker", slog.String("worker_id", workerID))
		return err
	}
	s.LogInfo(ctx, "Worker deleted", slog.String("worker_id", workerID))
	return nil
}
