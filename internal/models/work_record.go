package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is stored as text with a CHECK constraint.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// WorkRecord is a row of the work_records table.
type WorkRecord struct {
	RecordID         string          `db:"record_id"`
	WorkerID         string          `db:"worker_id"`
	WorkerName       string          `db:"worker_name"`
	SectionID        string          `db:"section_id"`
	SectionName      string          `db:"section_name"`
	ItemID           string          `db:"item_id"`
	ItemName         string          `db:"item_name"`
	Piece            decimal.Decimal `db:"piece"`
	ItemRate         decimal.Decimal `db:"item_rate"`
	Amount           decimal.Decimal `db:"amount"`
	AmountOverridden bool            `db:"amount_overridden"`
	PaymentStatus    PaymentStatus   `db:"payment_status"`
	PaymentDate      *time.Time      `db:"payment_date"` // Nullable
	AuditFields
}
