package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// WorkerReader defines read operations for worker data
type WorkerReader interface {
	// FindWorkerByID retrieves a non-deleted worker.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// ListWorkers retrieves non-deleted workers ordered by name, lastname.
	ListWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker data
type WorkerWriter interface {
	SaveWorker(ctx context.Context, worker domain.Worker) error
	UpdateWorker(ctx context.Context, worker domain.Worker) error
}

// WorkerLifecycleManager defines operations for managing worker lifecycle
type WorkerLifecycleManager interface {
	// MarkWorkerDeleted marks a worker as deleted (soft delete).
	MarkWorkerDeleted(ctx context.Context, workerID string, deletedAt time.Time, deletedBy string) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
	WorkerLifecycleManager
}
