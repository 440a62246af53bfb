// Package bill holds the record model produced per processed document and
// the duplicate detection over a batch of records.
package bill

import "github.com/cwhitfield/billscan/constants"

// Record is the structured data extracted from one bill document. Optional
// fields are pointers: nil means the extractor found nothing, which is the
// expected outcome for partially-illegible OCR text and distinct from an
// empty match. Filename and Fingerprint are always populated. Records are
// never mutated after construction.
type Record struct {
	Filename      string
	Date          *string // raw date string as it appears in the text
	Tariff        *string
	StartDate     *string // billing-period start, only with a recognized tariff
	EndDate       *string // billing-period end, only with a recognized tariff
	Amount        *string // two-decimal number, currency symbol stripped
	Type          constants.BillType
	AccountNumber *string
	MeterNumber   *string
	Address       *string
	Fingerprint   string // hex MD5 of normalized text
}

// DuplicateGroup is a cluster of records suspected to be the same bill.
// Every group has at least two members.
type DuplicateGroup struct {
	Filenames []string
	MatchType constants.MatchType

	// Fingerprint is set for ExactContentMatch groups: the hash all members share.
	Fingerprint string

	// Date, Amount, and Type are set for SameDateAmountType groups: the
	// triple all members share.
	Date   string
	Amount string
	Type   constants.BillType
}
