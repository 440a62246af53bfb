package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ordinalDatePart matches dates like "12th May 2025" inside a billing-period range.
const ordinalDatePart = `\d{1,2}(?:st|nd|rd|th)?\s+` + monthPart + `\s+\d{2,4}`

// Vocabulary is the closed set of recognized tariff names. Names outside the
// vocabulary are never recognized, even when correctly formatted.
type Vocabulary struct {
	names    []string
	patterns []*regexp.Regexp
}

// NewVocabulary compiles a billing-period pattern per tariff name:
// "<name> ( <start> - <end> )" with flexible spacing inside the parentheses.
func NewVocabulary(names ...string) Vocabulary {
	v := Vocabulary{names: names}
	for _, name := range names {
		p := fmt.Sprintf(`(?i)(%s)\s*\(\s*(%s)\s*-\s*(%s)\s*\)`,
			regexp.QuoteMeta(name), ordinalDatePart, ordinalDatePart)
		v.patterns = append(v.patterns, regexp.MustCompile(p))
	}
	return v
}

// DefaultVocabulary returns the built-in tariff names.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary("Cosy Octopus", "Agile Octopus", "Octopus Tracker")
}

// Names returns the vocabulary entries in declaration order.
func (v Vocabulary) Names() []string {
	return append([]string(nil), v.names...)
}

// TariffAndPeriod searches text for each known tariff name followed by a
// bracketed date range, returning (tariff, startDate, endDate) for the first
// name that matches. The tariff value is the name as it appears in the text.
// No recognized tariff ⇒ (nil, nil, nil).
func (v Vocabulary) TariffAndPeriod(text string) (tariff, startDate, endDate *string) {
	for _, p := range v.patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			name, start, end := m[1], m[2], m[3]
			return &name, &start, &end
		}
	}
	return nil, nil, nil
}

// vocabularySchema constrains a tariff vocabulary config file: a non-empty
// "tariffs" array of non-empty strings, nothing else.
func vocabularySchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tariffs": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
		},
		"required": []string{"tariffs"},
	}
}

// LoadVocabulary reads a JSON vocabulary file ({"tariffs": ["..."]}),
// validates it against the schema, and compiles it.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	if err := validateAgainstSchema(vocabularySchema(), data); err != nil {
		return Vocabulary{}, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	var cfg struct {
		Tariffs []string `json:"tariffs"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Vocabulary{}, fmt.Errorf("decode vocabulary: %w", err)
	}
	return NewVocabulary(cfg.Tariffs...), nil
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
