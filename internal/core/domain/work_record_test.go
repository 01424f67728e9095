package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decimalPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func pending() domain.WorkRecord {
	r := domain.WorkRecord{
		RecordID: "r-1", WorkerID: "w-1", SectionID: "s-1", ItemID: "i-1",
		Piece: d("10"), ItemRate: d("12.5"),
		PaymentStatus: domain.PaymentPending,
	}
	r.SetAmount(nil)
	return r
}

func TestWorkRecord_SetAmount(t *testing.T) {
	tests := []struct {
		name       string
		piece      string
		rate       string
		override   *decimal.Decimal
		want       string
		overridden bool
	}{
		{name: "piece times rate", piece: "10", rate: "12.5", want: "125"},
		{name: "fractional is exact", piece: "0.1", rate: "0.2", want: "0.02"},
		{name: "zero piece", piece: "0", rate: "7", want: "0"},
		{name: "override wins", piece: "10", rate: "12.5", override: decimalPtr(d("100")), want: "100", overridden: true},
		{name: "zero override", piece: "10", rate: "12.5", override: decimalPtr(d("0")), want: "0", overridden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.WorkRecord{Piece: d(tt.piece), ItemRate: d(tt.rate)}
			r.SetAmount(tt.override)
			assert.True(t, r.Amount.Equal(d(tt.want)), "got %s", r.Amount.String())
			assert.Equal(t, tt.overridden, r.AmountOverridden)
		})
	}
}

func TestValidateQuantities(t *testing.T) {
	assert.NoError(t, domain.ValidateQuantities(d("0"), d("0"), nil))
	assert.ErrorIs(t, domain.ValidateQuantities(d("-1"), d("1"), nil), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidateQuantities(d("1"), d("-0.01"), nil), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidateQuantities(d("1"), d("1"), decimalPtr(d("-5"))), apperrors.ErrValidation)
}

func TestWorkRecord_MarkPaid(t *testing.T) {
	r := pending()
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	require.True(t, r.MarkPaid(at, "manager-1"))
	assert.True(t, r.IsPaid())
	require.NotNil(t, r.PaymentDate)
	assert.True(t, r.PaymentDate.Equal(at))
	assert.Equal(t, "manager-1", r.LastUpdatedBy)
	assert.NoError(t, r.Validate())

	later := at.Add(time.Hour)
	assert.False(t, r.MarkPaid(later, "manager-2"))
	assert.True(t, r.PaymentDate.Equal(at))
	assert.Equal(t, "manager-1", r.LastUpdatedBy)
}

func TestWorkRecord_Validate(t *testing.T) {
	paidAt := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		mutate  func(r *domain.WorkRecord)
		wantErr bool
	}{
		{name: "valid pending", mutate: func(r *domain.WorkRecord) {}},
		{name: "amount drift", mutate: func(r *domain.WorkRecord) { r.Amount = d("124.99") }, wantErr: true},
		{name: "override may drift", mutate: func(r *domain.WorkRecord) {
			r.Amount = d("124.99")
			r.AmountOverridden = true
		}},
		{name: "missing worker", mutate: func(r *domain.WorkRecord) { r.WorkerID = "" }, wantErr: true},
		{name: "pending with payment date", mutate: func(r *domain.WorkRecord) { r.PaymentDate = &paidAt }, wantErr: true},
		{name: "paid without payment date", mutate: func(r *domain.WorkRecord) { r.PaymentStatus = domain.PaymentPaid }, wantErr: true},
		{name: "unknown status", mutate: func(r *domain.WorkRecord) { r.PaymentStatus = "SETTLED" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pending()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordLess(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := domain.WorkRecord{RecordID: "b", AuditFields: domain.AuditFields{CreatedAt: t0}}
	b := domain.WorkRecord{RecordID: "a", AuditFields: domain.AuditFields{CreatedAt: t0.Add(time.Second)}}
	c := domain.WorkRecord{RecordID: "a", AuditFields: domain.AuditFields{CreatedAt: t0}}

	assert.True(t, domain.RecordLess(a, b))
	assert.True(t, domain.RecordLess(c, a))
	assert.False(t, domain.RecordLess(a, a))
}
