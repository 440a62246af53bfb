package extract

import "regexp"

// Rule is one candidate pattern for a field. Patterns are compiled
// case-insensitive and capture the field value in group 1.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// RuleSet is an ordered list of candidate patterns for one field, tried in
// priority order. Earlier rules encode stricter, more reliable formats.
type RuleSet struct {
	Field string
	Rules []Rule
}

// First returns the value captured by the first rule, in priority order,
// whose pattern matches anywhere in text. Within a rule, the first match by
// document order wins; later rules and later matches are never consulted
// once a hit occurs. Returns nil when no rule matches.
func (rs RuleSet) First(text string) *string {
	for _, r := range rs.Rules {
		if m := r.Pattern.FindStringSubmatch(text); m != nil {
			v := m[1]
			return &v
		}
	}
	return nil
}

// rule compiles a case-insensitive pattern into a Rule.
func rule(name, pattern string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(`(?i)` + pattern)}
}
