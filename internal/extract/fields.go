// Package extract implements pattern-based field extraction from OCR-produced
// utility-bill text. Every extractor is a pure function over the raw text:
// matching is case-insensitive, candidate patterns are tried in priority
// order, and a failed match degrades to nil rather than an error, since OCR
// text is inherently untrustworthy.
package extract

import (
	"regexp"
	"strings"

	"github.com/cwhitfield/billscan/constants"
)

const monthPart = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`

var dateRules = RuleSet{
	Field: "date",
	Rules: []Rule{
		rule("numeric-dmy", `(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		rule("day-month-year", `(\d{1,2}\s+`+monthPart+`\s+\d{2,4})`),
		rule("month-day-year", `(`+monthPart+`\s+\d{1,2},?\s+\d{2,4})`),
		rule("ordinal-bracketed", `(?:\(|-)?\s*(\d{1,2}(?:st|nd|rd|th)?\s+`+monthPart+`\s+\d{4})\s*(?:\)|-)?`),
	},
}

// Amount patterns capture the numeric part only; the currency symbol is
// discarded. The trailing (?:[^0-9]|$) guard keeps a three-decimal number
// like 12.345 from matching via its two-decimal prefix.
var amountRules = RuleSet{
	Field: "amount",
	Rules: []Rule{
		rule("symbol-prefixed", `[$£€](\d+\.\d{2})(?:[^0-9]|$)`),
		rule("pound-prefixed", `£(\d+\.\d{2})(?:[^0-9]|$)`),
		rule("symbol-suffixed", `(\d+\.\d{2})[$£€]`),
		rule("total-label", `Total:?\s*[$£€]?(\d+\.\d{2})(?:[^0-9]|$)`),
		rule("amount-due-label", `Amount\s*due:?\s*[$£€]?(\d+\.\d{2})(?:[^0-9]|$)`),
		rule("total-charges-label", `Total\s+(?:Electricity|Gas)?\s+Charges\s*[£$€]?(\d+\.\d{2})(?:[^0-9]|$)`),
		rule("total-charges-for-bill", `Total\s+charges\s+for\s+bill\s*[£$€]?(\d+\.\d{2})(?:[^0-9]|$)`),
	},
}

// The digit form is listed before the generic alphanumeric form so that it
// wins whenever both could match.
var accountRules = RuleSet{
	Field: "account_number",
	Rules: []Rule{
		rule("labelled-digits", `Account\s*(?:Number|No|#)?\s*:?\s*(\d+[-\s]?\d+)`),
		rule("labelled-alphanumeric", `Account\s*(?:Number|No|#)?\s*:?\s*([A-Z0-9]+)`),
		rule("supply-number", `Supply\s+number\s*:?\s*([A-Z0-9]+)`),
	},
}

var meterRules = RuleSet{
	Field: "meter_number",
	Rules: []Rule{
		rule("labelled", `Meter\s+(?:Number|No|#)?\s*:?\s*([A-Z0-9]+)`),
		rule("for-meter", `(?:for|from)\s+Meter\s+([A-Z0-9]+)`),
	},
}

// Address patterns span lines ((?s)) and capture greedily-until "Postcode"
// or end of text.
var addressRules = RuleSet{
	Field: "address",
	Rules: []Rule{
		rule("supply-address", `(?s)Supply\s+Address:?\s*(.*?)(?:Postcode|$)`),
		rule("address", `(?s)Address:?\s*(.*?)(?:Postcode|$)`),
	},
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Date returns the first loosely-formatted calendar date found in text,
// verbatim, or nil.
func Date(text string) *string {
	return dateRules.First(text)
}

// Amount returns the first two-decimal monetary amount found in text with
// its currency symbol stripped, or nil. Integers and three-decimal numbers
// never match.
func Amount(text string) *string {
	return amountRules.First(text)
}

// AccountNumber returns the first account or supply number found in text, or nil.
func AccountNumber(text string) *string {
	return accountRules.First(text)
}

// MeterNumber returns the first meter number found in text, or nil.
func MeterNumber(text string) *string {
	return meterRules.First(text)
}

// Address returns the supply address found in text with whitespace runs
// collapsed to single spaces, or nil.
func Address(text string) *string {
	m := addressRules.First(text)
	if m == nil {
		return nil
	}
	addr := strings.TrimSpace(whitespaceRun.ReplaceAllString(*m, " "))
	return &addr
}

// BillType classifies text as Gas, Electric, or Unknown. The gas check runs
// before the electric check, so text mentioning both classifies as Gas.
func BillType(text string) constants.BillType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "gas"):
		return constants.Gas
	case strings.Contains(lower, "electric"):
		return constants.Electric
	default:
		return constants.Unknown
	}
}
