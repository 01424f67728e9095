package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() domain.Report {
	ist := time.FixedZone("IST", 5*3600+1800)
	paid := time.Date(2024, 2, 3, 12, 0, 0, 0, ist)
	records := []domain.WorkRecord{
		{
			RecordID: "r-1", WorkerName: "Ravi Kumar", SectionName: "Stitching", ItemName: "Collar",
			Piece: decimal.RequireFromString("10"), ItemRate: decimal.RequireFromString("12.5"),
			Amount: decimal.RequireFromString("125"), PaymentStatus: domain.PaymentPaid, PaymentDate: &paid,
			AuditFields: domain.AuditFields{CreatedAt: time.Date(2024, 1, 31, 23, 59, 59, 0, ist)},
		},
		{
			RecordID: "r-2", WorkerName: "Ravi Kumar", SectionName: "Stitching", ItemName: "Cuff",
			Piece: decimal.RequireFromString("3"), ItemRate: decimal.RequireFromString("0.333"),
			Amount: decimal.RequireFromString("0.999"), PaymentStatus: domain.PaymentPending,
			AuditFields: domain.AuditFields{CreatedAt: time.Date(2024, 1, 15, 8, 0, 0, 0, ist)},
		},
	}
	report := domain.BuildReport(records, nil)
	report.Worker = &domain.Worker{Name: "Ravi", Lastname: "Kumar", MobileNo: "98400"}
	report.FromDate = "2024-01-01"
	report.ToDate = "2024-01-31"
	return report
}

func testOptions() Options {
	return Options{CurrencySymbol: "Rs.", Location: time.FixedZone("IST", 5*3600+1800)}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), testOptions()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	lines, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, lines, 7)
	assert.Equal(t, []string{"Worker: Ravi Kumar"}, lines[0])
	assert.Equal(t, []string{"Mobile: 98400"}, lines[1])
	assert.Equal(t, []string{"Period: 2024-01-01 to 2024-01-31"}, lines[2])
	assert.Equal(t, domain.ReportColumns, lines[3])
	assert.Equal(t, []string{
		"Ravi Kumar", "Stitching", "Collar", "10", "12.5", "Rs. 125.00", "31-01-2024", "PAID", "03-02-2024",
	}, lines[4])
	assert.Equal(t, "Rs. 1.00", lines[5][5])
	assert.Equal(t, "", lines[5][8])
	assert.Equal(t, []string{"Total", "", "", "", "", "Rs. 126.00", "", "", ""}, lines[6])
}

func TestWriteCSV_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, domain.BuildReport(nil, nil), Options{}))

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, domain.TotalLabel, lines[1][0])
	assert.Equal(t, "0.00", lines[1][5])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport(), testOptions()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	assert.Equal(t, "Work Report", rows[0][0])
	assert.Equal(t, "Worker: Ravi Kumar", rows[1][0])

	header := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == domain.ReportColumns[0] {
			header = i
			break
		}
	}
	require.NotEqual(t, -1, header)
	assert.Equal(t, domain.ReportColumns, rows[header])

	last := rows[len(rows)-1]
	assert.Equal(t, domain.TotalLabel, last[0])
	assert.Equal(t, "Rs. 126.00", last[amountColumn])
	assert.Len(t, rows, header+4)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 1, 31, 18, 4, 5, 0, time.UTC)
	assert.Equal(t, "work_report_ravi_kumar_20240131_180405.csv", FileName(sampleReport(), "csv", now))
	assert.Equal(t, "work_report_20240131_180405.xlsx", FileName(domain.Report{}, "xlsx", now))
}
