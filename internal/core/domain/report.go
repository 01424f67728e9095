package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalLabel labels the synthetic trailing row of a report.
const TotalLabel = "Total"

// ReportColumns is the export column order expected by downstream sheets.
var ReportColumns = []string{
	"Name", "Section", "Item", "Piece", "Rate", "Amount", "Submitted On", "Payment Status", "Payment Date",
}

// ReportRow is one exported line.
type ReportRow struct {
	RecordID      string          `json:"recordID"`
	WorkerName    string          `json:"workerName"`
	SectionName   string          `json:"sectionName"`
	ItemName      string          `json:"itemName"`
	Piece         decimal.Decimal `json:"piece"`
	ItemRate      decimal.Decimal `json:"itemRate"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"createdAt"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
}

// Report is an aggregated view of work records.
type Report struct {
	Rows     []ReportRow     `json:"rows"`
	Total    decimal.Decimal `json:"total"`
	Worker   *Worker         `json:"worker,omitempty"`
	FromDate string          `json:"fromDate,omitempty"`
	ToDate   string          `json:"toDate,omitempty"`
}

// ReportTotalRow is the synthetic trailing row: Label sits in the Name column and
// Amount in the Amount column.
type ReportTotalRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// TotalRow returns the trailing "Total" row of the report.
func (r Report) TotalRow() ReportTotalRow {
	return ReportTotalRow{Label: TotalLabel, Amount: r.Total}
}

// BuildReport turns already-materialized records into report rows.
// A nil selection keeps every record. A non-nil selection keeps only the
// selected records, in input order, so an empty selection yields no rows.
// Amounts are copied as stored so the report matches the ledger exactly.
func BuildReport(records []WorkRecord, selectionIDs []string) Report {
	var selected map[string]struct{}
	if selectionIDs != nil {
		selected = make(map[string]struct{}, len(selectionIDs))
		for _, id := range selectionIDs {
			selected[id] = struct{}{}
		}
	}

	rows := make([]ReportRow, 0, len(records))
	total := decimal.Zero
	for _, r := range records {
		if selected != nil {
			if _, ok := selected[r.RecordID]; !ok {
				continue
			}
		}
		rows = append(rows, ReportRow{
			RecordID:      r.RecordID,
			WorkerName:    r.WorkerName,
			SectionName:   r.SectionName,
			ItemName:      r.ItemName,
			Piece:         r.Piece,
			ItemRate:      r.ItemRate,
			Amount:        r.Amount,
			CreatedAt:     r.CreatedAt,
			PaymentStatus: r.PaymentStatus,
			PaymentDate:   r.PaymentDate,
		})
		total = total.Add(r.Amount)
	}
	return Report{Rows: rows, Total: total}
}
