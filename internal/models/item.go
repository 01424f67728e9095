package models

import "github.com/shopspring/decimal"

// Item is a row of the items table.
type Item struct {
	ItemID    string          `db:"item_id"`
	Name      string          `db:"name"`
	Value     string          `db:"value"`
	Rate      decimal.Decimal `db:"rate"`
	SectionID string          `db:"section_id"`
	IsDeleted bool            `db:"is_deleted"`
	AuditFields
}
