package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment lifecycle state of a work record.
// PENDING -> PAID is the only transition and PAID is terminal.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// IsValid reports whether s is a known status.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// WorkRecord is one unit of completed work by a Worker against an Item.
// WorkerName, SectionName and ItemName are snapshots taken when the record was
// created or re-pointed, so reports do not change when the catalog is renamed.
type WorkRecord struct {
	RecordID         string          `json:"recordID"` // Primary Key (UUID)
	WorkerID         string          `json:"workerID"`
	WorkerName       string          `json:"workerName"`
	SectionID        string          `json:"sectionID"`
	SectionName      string          `json:"sectionName"`
	ItemID           string          `json:"itemID"`
	ItemName         string          `json:"itemName"`
	Piece            decimal.Decimal `json:"piece"`
	ItemRate         decimal.Decimal `json:"itemRate"`
	Amount           decimal.Decimal `json:"amount"`
	AmountOverridden bool            `json:"amountOverridden"` // Amount was supplied explicitly; Piece/ItemRate are informational
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"` // Set iff PaymentStatus == PAID
	AuditFields
}

// ComputeAmount returns piece * rate with exact decimal arithmetic.
func ComputeAmount(piece, rate decimal.Decimal) decimal.Decimal {
	return piece.Mul(rate)
}

// ValidateQuantities rejects negative piece counts, rates and override amounts.
func ValidateQuantities(piece, rate decimal.Decimal, override *decimal.Decimal) error {
	if piece.IsNegative() {
		return fmt.Errorf("%w: piece must not be negative, got %s", apperrors.ErrValidation, piece.String())
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: item rate must not be negative, got %s", apperrors.ErrValidation, rate.String())
	}
	if override != nil && override.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrValidation, override.String())
	}
	return nil
}

// SetAmount applies the amount rule: an explicit override wins, otherwise piece * rate.
func (r *WorkRecord) SetAmount(override *decimal.Decimal) {
	if override != nil {
		r.Amount = *override
		r.AmountOverridden = true
		return
	}
	r.Amount = ComputeAmount(r.Piece, r.ItemRate)
	r.AmountOverridden = false
}

// IsPaid reports whether the record reached its terminal state.
func (r WorkRecord) IsPaid() bool {
	return r.PaymentStatus == PaymentPaid
}

// MarkPaid moves a pending record to PAID at the given time. Paid records are left untouched.
func (r *WorkRecord) MarkPaid(at time.Time, actorID string) bool {
	if r.IsPaid() {
		return false
	}
	paidAt := at
	r.PaymentStatus = PaymentPaid
	r.PaymentDate = &paidAt
	r.Touch(actorID, at)
	return true
}

// Validate checks the record invariants.
func (r WorkRecord) Validate() error {
	if r.WorkerID == "" || r.SectionID == "" || r.ItemID == "" {
		return fmt.Errorf("%w: worker, section and item are required", apperrors.ErrValidation)
	}
	if err := ValidateQuantities(r.Piece, r.ItemRate, nil); err != nil {
		return err
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !r.AmountOverridden && !r.Amount.Equal(ComputeAmount(r.Piece, r.ItemRate)) {
		return fmt.Errorf("%w: amount %s does not equal piece %s x rate %s",
			apperrors.ErrValidation, r.Amount.String(), r.Piece.String(), r.ItemRate.String())
	}
	if !r.PaymentStatus.IsValid() {
		return fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, r.PaymentStatus)
	}
	if r.IsPaid() != (r.PaymentDate != nil) {
		return fmt.Errorf("%w: payment date must be set if and only if the record is paid", apperrors.ErrValidation)
	}
	return nil
}

// RecordLess is the total order used for listing: createdAt, then recordID.
func RecordLess(a, b WorkRecord) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.RecordID < b.RecordID
}
