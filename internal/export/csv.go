package export

import (
	"encoding/csv"
	"io"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// WriteCSV writes the header lines, the column header, one line per row and the Total row.
func WriteCSV(w io.Writer, report domain.Report, opts Options) error {
	cw := csv.NewWriter(w)

	for _, line := range headerLines(report) {
		if err := cw.Write([]string{line}); err != nil {
			return err
		}
	}
	if err := cw.Write(domain.ReportColumns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := cw.Write(rowCells(row, opts)); err != nil {
			return err
		}
	}
	if err := cw.Write(totalCells(report, opts)); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
