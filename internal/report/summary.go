package report

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/cwhitfield/billscan/internal/bill"
)

// Labels of the two summary pseudo-records appended to the bill table.
const (
	TotalLabel = "Total"
	SplitLabel = "Company/Personal Split (50%)"
)

// SummaryRows computes the two summary pseudo-records for a batch: a Total
// row holding the sum of all numeric amounts (two-decimal rounding) and a
// 50% split row holding half that sum. All other fields stay blank. Records
// without an amount contribute nothing (absence never coerces to zero) and
// amounts that fail to parse are skipped. When no record has a numeric
// amount there is nothing to summarize and nil is returned.
func SummaryRows(records []bill.Record) []bill.Record {
	ctx := apd.BaseContext.WithPrecision(34)

	var total apd.Decimal
	counted := 0
	for _, r := range records {
		if r.Amount == nil {
			continue
		}
		var d apd.Decimal
		if _, _, err := d.SetString(*r.Amount); err != nil {
			continue
		}
		if _, err := ctx.Add(&total, &total, &d); err != nil {
			continue
		}
		counted++
	}
	if counted == 0 {
		return nil
	}

	var half apd.Decimal
	_, _ = ctx.Quo(&half, &total, apd.New(2, 0))
	_, _ = ctx.Quantize(&total, &total, -2)
	_, _ = ctx.Quantize(&half, &half, -2)

	totalStr := total.Text('f')
	halfStr := half.Text('f')
	return []bill.Record{
		{Filename: TotalLabel, Amount: &totalStr},
		{Filename: SplitLabel, Amount: &halfStr},
	}
}
