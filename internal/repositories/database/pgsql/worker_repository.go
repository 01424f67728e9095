package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/models"
	"github.com/SscSPs/piecework_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) *PgxWorkerRepository {
	return &PgxWorkerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

const workerSelectQuery = `
SELECT worker_id, name, lastname, mobile_no, address, is_deleted,
	created_at, created_by, last_updated_at, last_updated_by
FROM workers
`

func (r *PgxWorkerRepository) getWorkers(ctx context.Context, filterQuery string, args ...any) ([]domain.Worker, error) {
	rows, err := r.Pool.Query(ctx, workerSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, wrapPgError("failed to query workers", err)
	}
	defer rows.Close()

	modelWorkers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Worker])
	if err != nil {
		return nil, wrapPgError("failed to collect worker rows", err)
	}
	return mapping.ToDomainWorkerSlice(modelWorkers), nil
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (
			worker_id, name, lastname, mobile_no, address, is_deleted,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.Name, m.Lastname, m.MobileNo, m.Address,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapPgError("failed to save worker "+m.WorkerID, err)
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	workers, err := r.getWorkers(ctx, `WHERE worker_id = $1 AND NOT is_deleted`, workerID)
	if err != nil {
		return nil, err
	}
	if len(workers) == 0 {
		return nil, apperrors.NewNotFoundError("worker " + workerID + " not found")
	}
	return &workers[0], nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, limit int, offset int) ([]domain.Worker, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return r.getWorkers(ctx, `WHERE NOT is_deleted ORDER BY name ASC, lastname ASC, worker_id ASC OFFSET $1`, offset)
	}
	return r.getWorkers(ctx, `WHERE NOT is_deleted ORDER BY name ASC, lastname ASC, worker_id ASC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers
		SET name = $1, lastname = $2, mobile_no = $3, address = $4, last_updated_at = $5, last_updated_by = $6
		WHERE worker_id = $7 AND NOT is_deleted;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Lastname, m.MobileNo, m.Address, m.LastUpdatedAt, m.LastUpdatedBy, m.WorkerID)
	if err != nil {
		return wrapPgError("failed to update worker "+m.WorkerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("worker " + m.WorkerID + " not found")
	}
	return nil
}

func (r *PgxWorkerRepository) MarkWorkerDeleted(ctx context.Context, workerID string, deletedAt time.Time, deletedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE workers
		SET is_deleted = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE worker_id = $3 AND NOT is_deleted;
	`, deletedAt, deletedBy, workerID)
	if err != nil {
		return wrapPgError("failed to delete worker "+workerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("worker " + workerID + " not found")
	}
	return nil
}
