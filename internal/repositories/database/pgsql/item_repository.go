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

type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

const itemSelectQuery = `
SELECT item_id, name, value, rate, section_id, is_deleted,
	created_at, created_by, last_updated_at, last_updated_by
FROM items
`

func (r *PgxItemRepository) getItems(ctx context.Context, filterQuery string, args ...any) ([]domain.Item, error) {
	rows, err := r.Pool.Query(ctx, itemSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, wrapPgError("failed to query items", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		return nil, wrapPgError("failed to collect item rows", err)
	}
	return mapping.ToDomainItemSlice(modelItems), nil
}

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (
			item_id, name, value, rate, section_id, is_deleted,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID, m.Name, m.Value, m.Rate, m.SectionID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapPgError("failed to save item "+m.ItemID, err)
	}
	return nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	items, err := r.getItems(ctx, `WHERE item_id = $1 AND NOT is_deleted`, itemID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewNotFoundError("item " + itemID + " not found")
	}
	return &items[0], nil
}

func (r *PgxItemRepository) ListItems(ctx context.Context, sectionID string) ([]domain.Item, error) {
	if sectionID == "" {
		return r.getItems(ctx, `WHERE NOT is_deleted ORDER BY name ASC, item_id ASC`)
	}
	return r.getItems(ctx, `WHERE section_id = $1 AND NOT is_deleted ORDER BY name ASC, item_id ASC`, sectionID)
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		UPDATE items
		SET name = $1, value = $2, rate = $3, section_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE item_id = $7 AND NOT is_deleted;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Value, m.Rate, m.SectionID, m.LastUpdatedAt, m.LastUpdatedBy, m.ItemID)
	if err != nil {
		return wrapPgError("failed to update item "+m.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + m.ItemID + " not found")
	}
	return nil
}

func (r *PgxItemRepository) SoftDeleteItem(ctx context.Context, itemID string, deletedAt time.Time, deletedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE items
		SET is_deleted = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE item_id = $3 AND NOT is_deleted;
	`, deletedAt, deletedBy, itemID)
	if err != nil {
		return wrapPgError("failed to delete item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + itemID + " not found")
	}
	return nil
}
