// Package export renders work reports as CSV and XLSX files.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/SscSPs/piecework_app/internal/utils/daterange"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// amountColumn is the index of "Amount" in domain.ReportColumns; the Total row writes there.
const amountColumn = 5

// Options controls how values are rendered.
type Options struct {
	Title          string
	CurrencySymbol string
	Location       *time.Location
}

func (o Options) title() string {
	if o.Title == "" {
		return "Work Report"
	}
	return o.Title
}

// headerLines describes who and what period the report covers.
func headerLines(report domain.Report) []string {
	var lines []string
	if w := report.Worker; w != nil {
		lines = append(lines, "Worker: "+w.FullName())
		if w.MobileNo != "" {
			lines = append(lines, "Mobile: "+w.MobileNo)
		}
		if w.Address != "" {
			lines = append(lines, "Address: "+w.Address)
		}
	}
	if period := periodLine(report.FromDate, report.ToDate); period != "" {
		lines = append(lines, period)
	}
	return lines
}

func periodLine(from, to string) string {
	switch {
	case from != "" && to != "":
		return fmt.Sprintf("Period: %s to %s", from, to)
	case from != "":
		return "Period: from " + from
	case to != "":
		return "Period: up to " + to
	}
	return ""
}

// rowCells renders one report row in column order.
func rowCells(row domain.ReportRow, opts Options) []string {
	paymentDate := ""
	if row.PaymentDate != nil {
		paymentDate = daterange.FormatDay(*row.PaymentDate, opts.Location)
	}
	return []string{
		row.WorkerName,
		row.SectionName,
		row.ItemName,
		utils.FormatQuantity(row.Piece),
		utils.FormatQuantity(row.ItemRate),
		utils.FormatAmount(row.Amount, opts.CurrencySymbol),
		daterange.FormatDay(row.CreatedAt, opts.Location),
		string(row.PaymentStatus),
		paymentDate,
	}
}

func totalCells(report domain.Report, opts Options) []string {
	total := report.TotalRow()
	cells := make([]string, len(domain.ReportColumns))
	cells[0] = total.Label
	cells[amountColumn] = utils.FormatAmount(total.Amount, opts.CurrencySymbol)
	return cells
}

// FileName builds the attachment name, e.g. work_report_ravi_kumar_20240131.csv.
func FileName(report domain.Report, ext string, now time.Time) string {
	parts := []string{"work_report"}
	if report.Worker != nil {
		parts = append(parts, slug(report.Worker.FullName()))
	}
	parts = append(parts, now.Format("20060102_150405"))
	return strings.Join(parts, "_") + "." + ext
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}
