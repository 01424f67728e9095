package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WriteXLSX writes a single-sheet workbook: title, header lines, column header, rows and Total.
func WriteXLSX(w io.Writer, report domain.Report, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	row := 1
	if err := setRow(f, row, []string{opts.title()}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", bold); err != nil {
		return err
	}
	row++
	for _, line := range headerLines(report) {
		if err := setRow(f, row, []string{line}); err != nil {
			return err
		}
		row++
	}
	row++

	if err := setRow(f, row, domain.ReportColumns); err != nil {
		return err
	}
	if err := styleRow(f, row, bold); err != nil {
		return err
	}
	row++

	for _, r := range report.Rows {
		if err := setRow(f, row, rowCells(r, opts)); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, row, totalCells(report, opts)); err != nil {
		return err
	}
	if err := styleRow(f, row, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "I", 16); err != nil {
		return err
	}
	return f.Write(w)
}

func setRow(f *excelize.File, row int, cells []string) error {
	for i, value := range cells {
		if value == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
	}
	return nil
}

func styleRow(f *excelize.File, row, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(domain.ReportColumns), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, first, last, style)
}
