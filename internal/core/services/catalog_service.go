package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/google/uuid"
)

type catalogService struct {
	BaseService
	sectionRepo portsrepo.SectionRepositoryFacade
	itemRepo    portsrepo.ItemRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewCatalogService creates the section/item service.
func NewCatalogService(sectionRepo portsrepo.SectionRepositoryFacade, itemRepo portsrepo.ItemRepositoryFacade, userRepo portsrepo.UserReader, options ...ServiceOption) *catalogService {
	return &catalogService{
		BaseService: newBaseService(options...),
		sectionRepo: sectionRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *catalogService) ListSections(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.sectionRepo.ListSections(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sections")
		return nil, err
	}
	if sections == nil {
		return []domain.Section{}, nil
	}
	return sections, nil
}

func (s *catalogService) CreateSection(ctx context.Context, req dto.CreateSectionRequest, actorID string) (*domain.Section, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("section name is required")
	}

	owner := domain.OwnerRef{UserID: actorID}
	if s.userRepo != nil {
		user, err := s.userRepo.FindUserByID(ctx, actorID)
		switch {
		case err == nil:
			owner = user.Owner()
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to resolve section owner", slog.String("user_id", actorID))
			return nil, err
		}
	}

	section := domain.Section{
		SectionID:   uuid.NewString(),
		Name:        name,
		Owner:       owner,
		AuditFields: domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.sectionRepo.SaveSection(ctx, section); err != nil {
		s.logFailure(ctx, err, "Failed to save section", slog.String("section_id", section.SectionID))
		return nil, err
	}

	s.LogInfo(ctx, "Section created", slog.String("section_id", section.SectionID))
	return &section, nil
}

func (s *catalogService) UpdateSection(ctx context.Context, sectionID string, req dto.UpdateSectionRequest, actorID string) (*domain.Section, error) {
	section, err := s.sectionRepo.FindSectionByID(ctx, sectionID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find section for update", slog.String("section_id", sectionID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, validationErrorf("section name must not be empty")
		}
		section.Name = name
	}
	section.Touch(actorID, s.Now())

	if err := s.sectionRepo.UpdateSection(ctx, *section); err != nil {
		s.logFailure(ctx, err, "Failed to update section", slog.String("section_id", sectionID))
		return nil, err
	}
	return section, nil
}

func (s *catalogService) DeleteSection(ctx context.Context, sectionID string, actorID string) error {
	if err := s.sectionRepo.SoftDeleteSection(ctx, sectionID, s.Now(), actorID); err != nil {
		s.logFailure(ctx, err, "Failed to delete section", slog.String("section_id", sectionID))
		return err
	}
	s.LogInfo(ctx, "Section and its items deleted", slog.String("section_id", sectionID))
	return nil
}

func (s *catalogService) ListItems(ctx context.Context, sectionID string) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx, sectionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items", slog.String("section_id", sectionID))
		return nil, err
	}
	if items == nil {
		return []domain.Item{}, nil
	}
	return items, nil
}

func (s *catalogService) CreateItem(ctx context.Context, req dto.CreateItemRequest, actorID string) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("item name is required")
	}
	if req.Rate == nil {
		return nil, validationErrorf("item rate is required")
	}
	if req.Rate.IsNegative() {
		return nil, validationErrorf("item rate must not be negative, got %s", req.Rate.String())
	}
	if _, err := s.sectionRepo.FindSectionByID(ctx, req.SectionID); err != nil {
		return nil, referenceError("section", req.SectionID, err)
	}

	item := domain.Item{
		ItemID:      uuid.NewString(),
		Name:        name,
		Value:       strings.TrimSpace(req.Value),
		Rate:        *req.Rate,
		SectionID:   req.SectionID,
		AuditFields: domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.logFailure(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("section_id", item.SectionID))
	return &item, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, actorID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find item for update", slog.String("item_id", itemID))
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, validationErrorf("item name must not be empty")
		}
		item.Name = name
	}
	if req.Value != nil {
		item.Value = strings.TrimSpace(*req.Value)
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, validationErrorf("item rate must not be negative, got %s", req.Rate.String())
		}
		item.Rate = *req.Rate
	}
	if req.SectionID != nil && *req.SectionID != item.SectionID {
		if _, err := s.sectionRepo.FindSectionByID(ctx, *req.SectionID); err != nil {
			return nil, referenceError("section", *req.SectionID, err)
		}
		item.SectionID = *req.SectionID
	}
	item.Touch(actorID, s.Now())

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.logFailure(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, err
	}
	return item, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, itemID string, actorID string) error {
	if err := s.itemRepo.SoftDeleteItem(ctx, itemID, s.Now(), actorID); err != nil {
		s.logFailure(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		return err
	}
	return nil
}
