package services

import (
	"context"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
)

// WorkerReaderSvc defines read operations for workers
type WorkerReaderSvc interface {
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	ListWorkers(ctx context.Context, limit, offset int) ([]domain.Worker, error)
}

// WorkerWriterSvc defines write operations for workers
type WorkerWriterSvc interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest, actorID string) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID string, req dto.UpdateWorkerRequest, actorID string) (*domain.Worker, error)

	// DeleteWorker soft-deletes a worker. Existing records keep their name snapshot.
	DeleteWorker(ctx context.Context, workerID string, actorID string) error
}

// WorkerSvcFacade combines all worker-related service interfaces
type WorkerSvcFacade interface {
	WorkerReaderSvc
	WorkerWriterSvc
}
