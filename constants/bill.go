package constants

// BillType classifies a bill by the kind of supply it charges for.
// Unknown is a valid terminal classification, not an error.
type BillType string

const (
	Gas      BillType = "Gas"
	Electric BillType = "Electric"
	Unknown  BillType = "Unknown"
)

// MatchType tags how a duplicate group was detected.
type MatchType string

const (
	// ExactContentMatch groups bills whose normalized text hashes are identical.
	ExactContentMatch MatchType = "Exact content match"
	// SameDateAmountType groups bills sharing a (date, amount, type) triple
	// but with differing content hashes.
	SameDateAmountType MatchType = "Same date, amount and type"
)
