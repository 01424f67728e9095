package services

import (
	"context"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
)

// SectionSvc defines operations on sections
type SectionSvc interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	CreateSection(ctx context.Context, req dto.CreateSectionRequest, actorID string) (*domain.Section, error)
	UpdateSection(ctx context.Context, sectionID string, req dto.UpdateSectionRequest, actorID string) (*domain.Section, error)

	// DeleteSection soft-deletes the section and all of its items.
	DeleteSection(ctx context.Context, sectionID string, actorID string) error
}

// ItemSvc defines operations on items
type ItemSvc interface {
	// ListItems lists non-deleted items; an empty sectionID lists every section.
	ListItems(ctx context.Context, sectionID string) ([]domain.Item, error)
	CreateItem(ctx context.Context, req dto.CreateItemRequest, actorID string) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, actorID string) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID string, actorID string) error
}

// CatalogSvcFacade combines section and item services
type CatalogSvcFacade interface {
	SectionSvc
	ItemSvc
}
