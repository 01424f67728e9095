package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/models"
	"github.com/SscSPs/piecework_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkRecordRepository struct {
	BaseRepository
}

func newPgxWorkRecordRepository(pool *pgxpool.Pool) *PgxWorkRecordRepository {
	return &PgxWorkRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkRecordRepositoryFacade = (*PgxWorkRecordRepository)(nil)

const workRecordSelectQuery = `
SELECT record_id, worker_id, worker_name, section_id, section_name, item_id, item_name,
	piece, item_rate, amount, amount_overridden, payment_status, payment_date,
	created_at, created_by, last_updated_at, last_updated_by
FROM work_records
`

// recordOrderClause is the listing order; record_id breaks createdAt ties so offsets are stable.
// Ids compare bytewise, as domain.RecordLess does, whatever the database collation.
const recordOrderClause = ` ORDER BY created_at ASC, record_id COLLATE "C" ASC`

func (r *PgxWorkRecordRepository) getWorkRecords(ctx context.Context, filterQuery string, args ...any) ([]domain.WorkRecord, error) {
	rows, err := r.Pool.Query(ctx, workRecordSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, wrapPgError("failed to query work records", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkRecord])
	if err != nil {
		return nil, wrapPgError("failed to collect work record rows", err)
	}
	return mapping.ToDomainWorkRecordSlice(modelRecords), nil
}

// buildRecordWhere renders filter as a WHERE clause with positional arguments.
func buildRecordWhere(filter domain.RecordFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.WorkerID != "" {
		add("worker_id = $%d", filter.WorkerID)
	}
	if filter.PaymentStatus != "" {
		add("payment_status = $%d", string(filter.PaymentStatus))
	}
	if filter.CreatedFrom != nil {
		add("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		add("created_at < $%d", *filter.CreatedBefore)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// buildRecordPageQuery appends the listing order and the offset window to the filter.
func buildRecordPageQuery(filter domain.RecordFilter, page domain.PageRequest) (string, []any) {
	where, args := buildRecordWhere(filter)
	query := where + recordOrderClause

	args = append(args, page.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	if page.Limit > 0 {
		args = append(args, page.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

func (r *PgxWorkRecordRepository) FindWorkRecords(ctx context.Context, filter domain.RecordFilter, page domain.PageRequest) ([]domain.WorkRecord, error) {
	query, args := buildRecordPageQuery(filter, page)
	return r.getWorkRecords(ctx, query, args...)
}

func (r *PgxWorkRecordRepository) FindWorkRecordByID(ctx context.Context, recordID string) (*domain.WorkRecord, error) {
	records, err := r.getWorkRecords(ctx, `WHERE record_id = $1`, recordID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFoundError("work record " + recordID + " not found")
	}
	return &records[0], nil
}

func (r *PgxWorkRecordRepository) SaveWorkRecord(ctx context.Context, record domain.WorkRecord) error {
	m := mapping.ToModelWorkRecord(record)
	query := `
		INSERT INTO work_records (
			record_id, worker_id, worker_name, section_id, section_name, item_id, item_name,
			piece, item_rate, amount, amount_overridden, payment_status, payment_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.WorkerID, m.WorkerName, m.SectionID, m.SectionName, m.ItemID, m.ItemName,
		m.Piece, m.ItemRate, m.Amount, m.AmountOverridden, string(m.PaymentStatus), m.PaymentDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapPgError("failed to save work record "+m.RecordID, err)
	}
	return nil
}

// UpdatePendingWorkRecord is conditional on payment_status so a concurrent
// settlement is never overwritten.
func (r *PgxWorkRecordRepository) UpdatePendingWorkRecord(ctx context.Context, record domain.WorkRecord) error {
	m := mapping.ToModelWorkRecord(record)
	query := `
		UPDATE work_records
		SET worker_id = $1, worker_name = $2, section_id = $3, section_name = $4,
			item_id = $5, item_name = $6, piece = $7, item_rate = $8, amount = $9,
			amount_overridden = $10, last_updated_at = $11, last_updated_by = $12
		WHERE record_id = $13 AND payment_status = 'PENDING';
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.WorkerName, m.SectionID, m.SectionName,
		m.ItemID, m.ItemName, m.Piece, m.ItemRate, m.Amount,
		m.AmountOverridden, m.LastUpdatedAt, m.LastUpdatedBy,
		m.RecordID,
	)
	if err != nil {
		return wrapPgError("failed to update work record "+m.RecordID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: tell a missing record apart from a paid one.
	var status string
	err = r.Pool.QueryRow(ctx, `SELECT payment_status FROM work_records WHERE record_id = $1`, m.RecordID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("work record " + m.RecordID + " not found")
		}
		return wrapPgError("failed to read work record status "+m.RecordID, err)
	}
	return apperrors.NewInvalidStateError("work record " + m.RecordID + " is " + status + " and can no longer be edited")
}

func (r *PgxWorkRecordRepository) DeleteWorkRecord(ctx context.Context, recordID string) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM work_records WHERE record_id = $1`, recordID)
	if err != nil {
		return false, wrapPgError("failed to delete work record "+recordID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// MarkRecordsPaid flips every pending record of the batch with a single
// statement inside one transaction, so either all eligible rows change or none.
func (r *PgxWorkRecordRepository) MarkRecordsPaid(ctx context.Context, recordIDs []string, paidAt time.Time, paidBy string) ([]string, error) {
	var updated []string
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE work_records
			SET payment_status = 'PAID', payment_date = $2, last_updated_at = $2, last_updated_by = $3
			WHERE record_id = ANY($1) AND payment_status = 'PENDING'
			RETURNING record_id;
		`, recordIDs, paidAt, paidBy)
		if err != nil {
			return wrapPgError("failed to apply payment", err)
		}
		updated, err = pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return wrapPgError("failed to collect paid record ids", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
