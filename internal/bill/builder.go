package bill

import "github.com/cwhitfield/billscan/internal/extract"

// Builder assembles one Record from a document's OCR text by running every
// field extractor plus the fingerprint. Pure: no I/O and no failure mode of
// its own (extraction misses are encoded as nil fields).
type Builder struct {
	vocab extract.Vocabulary
}

// NewBuilder returns a Builder recognizing the given tariff vocabulary.
func NewBuilder(vocab extract.Vocabulary) *Builder {
	return &Builder{vocab: vocab}
}

// Build extracts all fields from text and returns the assembled record.
// Building twice from identical text yields identical records.
func (b *Builder) Build(filename, text string) Record {
	tariff, start, end := b.vocab.TariffAndPeriod(text)
	return Record{
		Filename:      filename,
		Date:          extract.Date(text),
		Tariff:        tariff,
		StartDate:     start,
		EndDate:       end,
		Amount:        extract.Amount(text),
		Type:          extract.BillType(text),
		AccountNumber: extract.AccountNumber(text),
		MeterNumber:   extract.MeterNumber(text),
		Address:       extract.Address(text),
		Fingerprint:   extract.Fingerprint(text),
	}
}
