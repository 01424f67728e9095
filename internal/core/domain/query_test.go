package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecordFilter_Matches(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.RecordFilter{
		WorkerID:      "w-1",
		PaymentStatus: domain.PaymentPending,
		CreatedFrom:   &from,
		CreatedBefore: &before,
	}
	at := func(ts time.Time) domain.WorkRecord {
		return domain.WorkRecord{WorkerID: "w-1", PaymentStatus: domain.PaymentPending, AuditFields: domain.AuditFields{CreatedAt: ts}}
	}

	tests := []struct {
		name   string
		record domain.WorkRecord
		want   bool
	}{
		{name: "lower bound inclusive", record: at(from), want: true},
		{name: "last instant of range", record: at(before.Add(-time.Millisecond)), want: true},
		{name: "upper bound exclusive", record: at(before), want: false},
		{name: "before range", record: at(from.Add(-time.Nanosecond)), want: false},
		{name: "other worker", record: domain.WorkRecord{WorkerID: "w-2", PaymentStatus: domain.PaymentPending, AuditFields: domain.AuditFields{CreatedAt: from}}, want: false},
		{name: "other status", record: domain.WorkRecord{WorkerID: "w-1", PaymentStatus: domain.PaymentPaid, AuditFields: domain.AuditFields{CreatedAt: from}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Matches(tt.record))
		})
	}

	assert.True(t, domain.RecordFilter{}.Matches(domain.WorkRecord{}))
}

func TestSumAmount(t *testing.T) {
	records := []domain.WorkRecord{
		{Amount: d("0.1")},
		{Amount: d("0.2")},
		{Amount: d("100"), AmountOverridden: true, Piece: d("1"), ItemRate: d("1")},
	}
	assert.Equal(t, "100.3", domain.SumAmount(records).String())
	assert.True(t, domain.SumAmount(nil).IsZero())
}
