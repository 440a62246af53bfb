// billfields extracts fields from one already-OCR'd text file and prints the
// record as JSON. Handy for tuning patterns against a problem scan.
package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwhitfield/billscan/internal/bill"
	"github.com/cwhitfield/billscan/internal/extract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "billfields <text-file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	builder := bill.NewBuilder(extract.DefaultVocabulary())
	rec := builder.Build(filepath.Base(os.Args[1]), string(data))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
}
