package mapping

import (
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/models"
)

// ToModelSection converts a domain Section to a model Section
func ToModelSection(d domain.Section) models.Section {
	return models.Section{
		SectionID:     d.SectionID,
		Name:          d.Name,
		OwnerUserID:   d.Owner.UserID,
		OwnerUserName: d.Owner.Name,
		IsDeleted:     d.IsDeleted,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSection converts a model Section to a domain Section
func ToDomainSection(m models.Section) domain.Section {
	return domain.Section{
		SectionID:   m.SectionID,
		Name:        m.Name,
		Owner:       domain.OwnerRef{UserID: m.OwnerUserID, Name: m.OwnerUserName},
		IsDeleted:   m.IsDeleted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSectionSlice converts a slice of model Sections to a slice of domain Sections
func ToDomainSectionSlice(ms []models.Section) []domain.Section {
	ds := make([]domain.Section, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSection(m)
	}
	return ds
}

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:      d.ItemID,
		Name:        d.Name,
		Value:       d.Value,
		Rate:        d.Rate,
		SectionID:   d.SectionID,
		IsDeleted:   d.IsDeleted,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:      m.ItemID,
		Name:        m.Name,
		Value:       m.Value,
		Rate:        m.Rate,
		SectionID:   m.SectionID,
		IsDeleted:   m.IsDeleted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
