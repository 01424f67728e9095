package dto

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a new item.
type CreateItemRequest struct {
	SectionID string           `json:"sectionID" binding:"required"`
	Name      string           `json:"name" binding:"required,max=200"`
	Value     string           `json:"value" binding:"max=200"`
	Rate      *decimal.Decimal `json:"rate" binding:"required"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateItemRequest struct {
	ID        string           `json:"id"`
	SectionID *string          `json:"sectionID" binding:"omitempty,min=1"`
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Value     *string          `json:"value" binding:"omitempty,max=200"`
	Rate      *decimal.Decimal `json:"rate"`
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	SectionID string `form:"section"`
}

// ItemResponse defines the data returned for an item.
type ItemResponse struct {
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	Value         string          `json:"value"`
	Rate          decimal.Decimal `json:"rate"`
	SectionID     string          `json:"sectionID"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:        it.ItemID,
		Name:          it.Name,
		Value:         it.Value,
		Rate:          it.Rate,
		SectionID:     it.SectionID,
		CreatedAt:     it.CreatedAt,
		CreatedBy:     it.CreatedBy,
		LastUpdatedAt: it.LastUpdatedAt,
		LastUpdatedBy: it.LastUpdatedBy,
	}
}

// ToListItemResponse converts a slice of domain.Item to a slice of ItemResponse DTOs
func ToListItemResponse(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return res
}
