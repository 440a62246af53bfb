package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cwhitfield/billscan/internal/bill"
)

var billHeader = []string{
	"Filename",
	"Date",
	"Tariff",
	"Start Date",
	"End Date",
	"Amount",
	"Type",
	"Account Number",
	"Meter Number",
	"Address",
	"Fingerprint",
}

// WriteBillsCSV writes one row per record (summary pseudo-records included,
// if present in the slice) in the given order.
func WriteBillsCSV(w io.Writer, records []bill.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(billHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Filename,
			deref(r.Date),
			deref(r.Tariff),
			deref(r.StartDate),
			deref(r.EndDate),
			deref(r.Amount),
			string(r.Type),
			deref(r.AccountNumber),
			deref(r.MeterNumber),
			deref(r.Address),
			r.Fingerprint,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", r.Filename, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var duplicateHeader = []string{
	"Files",
	"Match Type",
	"Fingerprint",
	"Date",
	"Amount",
	"Type",
}

// WriteDuplicatesCSV writes one row per duplicate group. Member filenames are
// joined with "; "; the fingerprint column is filled for exact-content groups
// and the date/amount/type columns for semantic groups.
func WriteDuplicatesCSV(w io.Writer, groups []bill.DuplicateGroup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(duplicateHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, g := range groups {
		row := []string{
			strings.Join(g.Filenames, "; "),
			string(g.MatchType),
			g.Fingerprint,
			g.Date,
			g.Amount,
			string(g.Type),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write group: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
