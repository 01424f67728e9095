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

type PgxSectionRepository struct {
	BaseRepository
}

func newPgxSectionRepository(pool *pgxpool.Pool) *PgxSectionRepository {
	return &PgxSectionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SectionRepositoryFacade = (*PgxSectionRepository)(nil)

const sectionSelectQuery = `
SELECT section_id, name, owner_user_id, owner_user_name, is_deleted,
	created_at, created_by, last_updated_at, last_updated_by
FROM sections
`

func (r *PgxSectionRepository) getSections(ctx context.Context, filterQuery string, args ...any) ([]domain.Section, error) {
	rows, err := r.Pool.Query(ctx, sectionSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, wrapPgError("failed to query sections", err)
	}
	defer rows.Close()

	modelSections, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Section])
	if err != nil {
		return nil, wrapPgError("failed to collect section rows", err)
	}
	return mapping.ToDomainSectionSlice(modelSections), nil
}

func (r *PgxSectionRepository) SaveSection(ctx context.Context, section domain.Section) error {
	m := mapping.ToModelSection(section)
	query := `
		INSERT INTO sections (
			section_id, name, owner_user_id, owner_user_name, is_deleted,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SectionID, m.Name, m.OwnerUserID, m.OwnerUserName,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return wrapPgError("failed to save section "+m.SectionID, err)
	}
	return nil
}

func (r *PgxSectionRepository) FindSectionByID(ctx context.Context, sectionID string) (*domain.Section, error) {
	sections, err := r.getSections(ctx, `WHERE section_id = $1 AND NOT is_deleted`, sectionID)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, apperrors.NewNotFoundError("section " + sectionID + " not found")
	}
	return &sections[0], nil
}

func (r *PgxSectionRepository) ListSections(ctx context.Context) ([]domain.Section, error) {
	return r.getSections(ctx, `WHERE NOT is_deleted ORDER BY name ASC, section_id ASC`)
}

func (r *PgxSectionRepository) UpdateSection(ctx context.Context, section domain.Section) error {
	query := `
		UPDATE sections
		SET name = $1, last_updated_at = $2, last_updated_by = $3
		WHERE section_id = $4 AND NOT is_deleted;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, section.Name, section.LastUpdatedAt, section.LastUpdatedBy, section.SectionID)
	if err != nil {
		return wrapPgError("failed to update section "+section.SectionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("section " + section.SectionID + " not found")
	}
	return nil
}

// SoftDeleteSection flags the section and cascades the flag to its items in one transaction.
func (r *PgxSectionRepository) SoftDeleteSection(ctx context.Context, sectionID string, deletedAt time.Time, deletedBy string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE sections
			SET is_deleted = TRUE, last_updated_at = $1, last_updated_by = $2
			WHERE section_id = $3 AND NOT is_deleted;
		`, deletedAt, deletedBy, sectionID)
		if err != nil {
			return wrapPgError("failed to delete section "+sectionID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("section " + sectionID + " not found")
		}

		_, err = tx.Exec(ctx, `
			UPDATE items
			SET is_deleted = TRUE, last_updated_at = $1, last_updated_by = $2
			WHERE section_id = $3 AND NOT is_deleted;
		`, deletedAt, deletedBy, sectionID)
		if err != nil {
			return wrapPgError("failed to delete items of section "+sectionID, err)
		}
		return nil
	})
}
