package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// SectionReader defines read operations for section data
type SectionReader interface {
	// FindSectionByID retrieves a non-deleted section. Returns apperrors.ErrNotFound otherwise.
	FindSectionByID(ctx context.Context, sectionID string) (*domain.Section, error)

	// ListSections retrieves all non-deleted sections ordered by name.
	ListSections(ctx context.Context) ([]domain.Section, error)
}

// SectionWriter defines write operations for section data
type SectionWriter interface {
	// SaveSection persists a new section.
	SaveSection(ctx context.Context, section domain.Section) error

	// UpdateSection updates a non-deleted section's name and audit fields.
	UpdateSection(ctx context.Context, section domain.Section) error

	// SoftDeleteSection marks the section and every item in it deleted, atomically.
	SoftDeleteSection(ctx context.Context, sectionID string, deletedAt time.Time, deletedBy string) error
}

// SectionRepositoryFacade combines all section-related repository interfaces
type SectionRepositoryFacade interface {
	SectionReader
	SectionWriter
}

// ItemReader defines read operations for item data
type ItemReader interface {
	// FindItemByID retrieves a non-deleted item. Returns apperrors.ErrNotFound otherwise.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves non-deleted items ordered by name; an empty sectionID lists all.
	ListItems(ctx context.Context, sectionID string) ([]domain.Item, error)
}

// ItemWriter defines write operations for item data
type ItemWriter interface {
	SaveItem(ctx context.Context, item domain.Item) error
	UpdateItem(ctx context.Context, item domain.Item) error
	SoftDeleteItem(ctx context.Context, itemID string, deletedAt time.Time, deletedBy string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
