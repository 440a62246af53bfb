package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cwhitfield/billscan/internal/bill"
)

// BillsXLSX returns an XLSX workbook (as bytes) with one Bills sheet of
// records and, when groups is non-empty, a Duplicates sheet.
func BillsXLSX(records []bill.Record, groups []bill.DuplicateGroup) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Bills"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range billHeader {
		write(sheet, i+1, 1, h)
	}
	for i, r := range records {
		row := i + 2
		write(sheet, 1, row, r.Filename)
		write(sheet, 2, row, deref(r.Date))
		write(sheet, 3, row, deref(r.Tariff))
		write(sheet, 4, row, deref(r.StartDate))
		write(sheet, 5, row, deref(r.EndDate))
		write(sheet, 6, row, deref(r.Amount))
		write(sheet, 7, row, string(r.Type))
		write(sheet, 8, row, deref(r.AccountNumber))
		write(sheet, 9, row, deref(r.MeterNumber))
		write(sheet, 10, row, deref(r.Address))
		write(sheet, 11, row, r.Fingerprint)
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // filename
	_ = f.SetColWidth(sheet, "B", "E", 16) // dates
	_ = f.SetColWidth(sheet, "J", "J", 48) // address
	_ = f.SetColWidth(sheet, "K", "K", 34) // fingerprint

	if len(groups) > 0 {
		const dupes = "Duplicates"
		if _, err := f.NewSheet(dupes); err != nil {
			return nil, err
		}
		for i, h := range duplicateHeader {
			write(dupes, i+1, 1, h)
		}
		for i, g := range groups {
			row := i + 2
			write(dupes, 1, row, strings.Join(g.Filenames, "; "))
			write(dupes, 2, row, string(g.MatchType))
			write(dupes, 3, row, g.Fingerprint)
			write(dupes, 4, row, g.Date)
			write(dupes, 5, row, g.Amount)
			write(dupes, 6, row, string(g.Type))
		}
		_ = f.SetColWidth(dupes, "A", "A", 48)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
