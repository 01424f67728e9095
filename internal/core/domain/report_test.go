package domain_test

import (
	"testing"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	records := []domain.WorkRecord{
		{RecordID: "a", WorkerName: "Ravi", Amount: d("10.005")},
		{RecordID: "b", WorkerName: "Asha", Amount: d("20")},
		{RecordID: "c", WorkerName: "Ravi", Amount: d("5"), AmountOverridden: true, Piece: d("100"), ItemRate: d("1")},
	}

	t.Run("all records", func(t *testing.T) {
		report := domain.BuildReport(records, nil)
		require.Len(t, report.Rows, 3)
		assert.Equal(t, "35.005", report.Total.String())
		assert.Equal(t, "5", report.Rows[2].Amount.String())
		assert.Equal(t, domain.ReportTotalRow{Label: "Total", Amount: report.Total}, report.TotalRow())
	})

	t.Run("selection keeps input order", func(t *testing.T) {
		report := domain.BuildReport(records, []string{"c", "a"})
		require.Len(t, report.Rows, 2)
		assert.Equal(t, "a", report.Rows[0].RecordID)
		assert.Equal(t, "c", report.Rows[1].RecordID)
		assert.Equal(t, "15.005", report.Total.String())
	})

	t.Run("selection of unknown ids", func(t *testing.T) {
		report := domain.BuildReport(records, []string{"zzz"})
		assert.Empty(t, report.Rows)
		assert.True(t, report.Total.IsZero())
	})

	t.Run("empty selection keeps nothing", func(t *testing.T) {
		report := domain.BuildReport(records, []string{})
		assert.Empty(t, report.Rows)
		assert.True(t, report.Total.IsZero())
		assert.True(t, report.TotalRow().Amount.IsZero())
	})

	t.Run("no records", func(t *testing.T) {
		report := domain.BuildReport(nil, nil)
		assert.NotNil(t, report.Rows)
		assert.True(t, report.Total.IsZero())
	})
}
