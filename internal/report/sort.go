// Package report renders the processed batch for the outside world: ordering,
// summary rows, CSV and XLSX output. Nothing here feeds back into extraction
// or duplicate detection.
package report

import (
	"regexp"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/cwhitfield/billscan/internal/bill"
)

var ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)

// SortByPeriodStart returns a copy of records ordered by billing-period start
// date, most recent first, with unparseable or absent start dates last. The
// parse is best-effort display ordering only; the raw strings on the records
// are untouched. Ties keep input order.
func SortByPeriodStart(records []bill.Record) []bill.Record {
	type keyed struct {
		rec bill.Record
		t   time.Time
		ok  bool
	}
	keys := make([]keyed, 0, len(records))
	for _, r := range records {
		k := keyed{rec: r}
		if r.StartDate != nil {
			if t, err := dateparse.ParseAny(ordinalSuffix.ReplaceAllString(*r.StartDate, "$1")); err == nil {
				k.t, k.ok = t, true
			}
		}
		keys = append(keys, k)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		switch {
		case a.ok && b.ok:
			return a.t.After(b.t)
		case a.ok:
			return true // parseable before unparseable
		default:
			return false
		}
	})

	out := make([]bill.Record, len(keys))
	for i, k := range keys {
		out[i] = k.rec
	}
	return out
}
