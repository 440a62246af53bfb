// Package pipeline applies the bill record builder to every document in a
// batch, isolating per-document failures so one bad scan never aborts the run.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cwhitfield/billscan/internal/bill"
	"github.com/cwhitfield/billscan/internal/common"
)

// TextSource yields the OCR-decoded text for one file. The ocr.Extractor
// satisfies this; tests stub it.
type TextSource interface {
	Text(ctx context.Context, path string) (string, error)
}

// Failure is a reported-but-non-fatal per-document outcome.
type Failure struct {
	Filename string
	Err      string
}

type Processor struct {
	Builder *bill.Builder
	Source  TextSource
	Workers int // worker pool size; <=1 means sequential
	Logger  *slog.Logger
}

func NewProcessor(builder *bill.Builder, source TextSource, workers int, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{Builder: builder, Source: source, Workers: workers, Logger: logger}
}

// Process OCRs and extracts every file in files, returning the built records
// in input order plus the per-document failures. A failing document is
// logged, contributes no record, and never aborts the batch. When no document
// at all produced a record the batch-level outcome is common.ErrNoBills.
//
// Extraction is pure and independent per document, so documents are fanned
// out across a fixed-size worker pool; results land in an index-addressed
// slice so input order survives parallel completion.
func (p *Processor) Process(ctx context.Context, files []string) ([]bill.Record, []Failure, error) {
	batchID := uuid.New()
	start := time.Now()
	p.Logger.Info("batch.start", "batch_id", batchID, "files", len(files), "workers", p.Workers)

	records := make([]*bill.Record, len(files))
	failures := make([]*Failure, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)
	for i, path := range files {
		g.Go(func() error {
			filename := filepath.Base(path)
			text, err := p.Source.Text(ctx, path)
			if err != nil {
				p.Logger.Error("batch.document.failed", "batch_id", batchID, "filename", filename, "error", err)
				failures[i] = &Failure{Filename: filename, Err: err.Error()}
				return nil // isolate the failure to this document
			}
			rec := p.Builder.Build(filename, text)
			records[i] = &rec
			p.Logger.Debug("batch.document.ok", "batch_id", batchID, "filename", filename, "type", rec.Type)
			return nil
		})
	}
	// Workers never return errors; Wait only flushes the pool.
	_ = g.Wait()

	out := make([]bill.Record, 0, len(files))
	for _, r := range records {
		if r != nil {
			out = append(out, *r)
		}
	}
	var failed []Failure
	for _, f := range failures {
		if f != nil {
			failed = append(failed, *f)
		}
	}

	p.Logger.Info("batch.done",
		"batch_id", batchID,
		"records", len(out),
		"failed", len(failed),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if len(out) == 0 {
		return nil, failed, common.ErrNoBills
	}
	return out, failed, nil
}
