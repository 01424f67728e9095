package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordFilter selects work records. Zero values mean "no constraint".
// CreatedFrom is inclusive, CreatedBefore is exclusive; callers build them
// from calendar days with utils/daterange so a toDate covers its whole day.
type RecordFilter struct {
	WorkerID      string
	PaymentStatus PaymentStatus
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// Matches evaluates the filter in memory.
func (f RecordFilter) Matches(r WorkRecord) bool {
	if f.WorkerID != "" && r.WorkerID != f.WorkerID {
		return false
	}
	if f.PaymentStatus != "" && r.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.CreatedFrom != nil && r.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedBefore != nil && !r.CreatedAt.Before(*f.CreatedBefore) {
		return false
	}
	return true
}

// PageRequest is a stateless offset page. Limit 0 means unbounded.
type PageRequest struct {
	Limit  int
	Offset int
}

// RecordPage is one page of ordered work records.
// HasMore is len(Records) == Limit: it is true when the match count is an exact
// multiple of Limit even though the next page will be empty.
type RecordPage struct {
	Records []WorkRecord
	HasMore bool
}

// SumAmount totals the stored amounts; it never recomputes piece * rate.
func SumAmount(records []WorkRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
