package dto

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// CreateSectionRequest defines the data needed to create a new section.
type CreateSectionRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UpdateSectionRequest defines the data allowed for updating a section.
// ID may be supplied in the body or as the ?id= query parameter.
type UpdateSectionRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

// OwnerResponse identifies the user who owns a section.
type OwnerResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// SectionResponse defines the data returned for a section.
type SectionResponse struct {
	SectionID     string        `json:"sectionID"`
	Name          string        `json:"name"`
	User          OwnerResponse `json:"user"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ToSectionResponse converts a domain.Section to SectionResponse DTO
func ToSectionResponse(s *domain.Section) SectionResponse {
	return SectionResponse{
		SectionID:     s.SectionID,
		Name:          s.Name,
		User:          OwnerResponse{UserID: s.Owner.UserID, Name: s.Owner.Name},
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ToListSectionResponse converts a slice of domain.Section to a slice of SectionResponse DTOs
func ToListSectionResponse(sections []domain.Section) []SectionResponse {
	res := make([]SectionResponse, len(sections))
	for i := range sections {
		res[i] = ToSectionResponse(&sections[i])
	}
	return res
}
