package bill

import "github.com/cwhitfield/billscan/constants"

// FindDuplicates runs two independent grouping passes over the full record
// collection and concatenates their results: first exact-content groups (same
// fingerprint), then semantic-key groups (same date/amount/type triple with
// at least two distinct fingerprints). A record may legitimately appear in
// groups from both passes. Group order follows first occurrence in the input,
// so output is deterministic for a given record order.
func FindDuplicates(records []Record) []DuplicateGroup {
	groups := groupByFingerprint(records)
	return append(groups, groupBySemanticKey(records)...)
}

// groupByFingerprint emits one ExactContentMatch group per fingerprint shared
// by two or more records.
func groupByFingerprint(records []Record) []DuplicateGroup {
	byHash := make(map[string][]string)
	var order []string
	for _, r := range records {
		if _, seen := byHash[r.Fingerprint]; !seen {
			order = append(order, r.Fingerprint)
		}
		byHash[r.Fingerprint] = append(byHash[r.Fingerprint], r.Filename)
	}

	var groups []DuplicateGroup
	for _, hash := range order {
		files := byHash[hash]
		if len(files) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{
			Filenames:   files,
			MatchType:   constants.ExactContentMatch,
			Fingerprint: hash,
		})
	}
	return groups
}

type semanticKey struct {
	date   string
	amount string
	typ    constants.BillType
}

// groupBySemanticKey emits one SameDateAmountType group per (date, amount,
// type) triple shared by two or more records with at least two distinct
// fingerprints. A group whose members also share one fingerprint was already
// reported by the exact-content pass and is skipped here. Records missing
// Date or Amount never participate: absence is not a matching key value.
func groupBySemanticKey(records []Record) []DuplicateGroup {
	byKey := make(map[semanticKey][]Record)
	var order []semanticKey
	for _, r := range records {
		if r.Date == nil || r.Amount == nil {
			continue
		}
		key := semanticKey{date: *r.Date, amount: *r.Amount, typ: r.Type}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], r)
	}

	var groups []DuplicateGroup
	for _, key := range order {
		members := byKey[key]
		if len(members) < 2 {
			continue
		}
		hashes := make(map[string]struct{}, len(members))
		files := make([]string, 0, len(members))
		for _, m := range members {
			hashes[m.Fingerprint] = struct{}{}
			files = append(files, m.Filename)
		}
		if len(hashes) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{
			Filenames: files,
			MatchType: constants.SameDateAmountType,
			Date:      key.date,
			Amount:    key.amount,
			Type:      key.typ,
		})
	}
	return groups
}
