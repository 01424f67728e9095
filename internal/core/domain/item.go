package domain

import "github.com/shopspring/decimal"

// Item is a billable unit of work with a default rate, scoped to a Section.
type Item struct {
	ItemID    string          `json:"itemID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Value     string          `json:"value"` // Free-form descriptor shown next to the name
	Rate      decimal.Decimal `json:"rate"`  // Unit price used to derive work record amounts
	SectionID string          `json:"sectionID"`
	IsDeleted bool            `json:"isDeleted"`
	AuditFields
}
