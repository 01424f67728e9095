package pgsql

import (
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SectionRepo:    newPgxSectionRepository(dbPool),
		ItemRepo:       newPgxItemRepository(dbPool),
		WorkerRepo:     newPgxWorkerRepository(dbPool),
		WorkRecordRepo: newPgxWorkRecordRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}
