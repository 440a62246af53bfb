package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cwhitfield/billscan/internal/bill"
	"github.com/cwhitfield/billscan/internal/common"
	"github.com/cwhitfield/billscan/internal/extract"
	"github.com/cwhitfield/billscan/internal/ingest"
	"github.com/cwhitfield/billscan/internal/ocr"
	"github.com/cwhitfield/billscan/internal/pipeline"
	"github.com/cwhitfield/billscan/internal/report"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory to scan for bill images (required)")
		out     = flag.String("out", "bill_data.csv", "output CSV path for bill records")
		dupes   = flag.String("dupes", "duplicate_bills.csv", "output CSV path for duplicate groups")
		xlsx    = flag.String("xlsx", "", "optional XLSX workbook path")
		tariffs = flag.String("tariffs", "", "optional tariff vocabulary JSON file")
		workers = flag.Int("workers", 0, "worker pool size (default from BILLSCAN_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *tariffs != "" {
		cfg.Tariff.ConfigPath = *tariffs
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	vocab := extract.DefaultVocabulary()
	if cfg.Tariff.ConfigPath != "" {
		v, err := extract.LoadVocabulary(cfg.Tariff.ConfigPath)
		if err != nil {
			logger.Error("load tariff vocabulary", "path", cfg.Tariff.ConfigPath, "error", err)
			os.Exit(1)
		}
		vocab = v
		logger.Info("tariff vocabulary loaded", "path", cfg.Tariff.ConfigPath, "tariffs", len(v.Names()))
	}

	files, stats, err := ingest.ScanDirectory(*dir, nil, true)
	if err != nil {
		logger.Error("scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan done", "dir", *dir, "scanned", stats.Scanned, "matched", stats.Matched)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		PSM:           cfg.OCR.PSM,
		OEM:           cfg.OCR.OEM,
	}, logger)

	proc := pipeline.NewProcessor(bill.NewBuilder(vocab), extractor, cfg.Batch.Workers, logger)
	records, failures, err := proc.Process(ctx, files)
	for _, f := range failures {
		logger.Warn("document skipped", "filename", f.Filename, "reason", f.Err)
	}
	if err != nil {
		if errors.Is(err, common.ErrNoBills) {
			logger.Error("no bill images found or processed", "dir", *dir)
		} else {
			logger.Error("batch failed", "error", err)
		}
		os.Exit(1)
	}

	groups := bill.FindDuplicates(records)

	rows := report.SortByPeriodStart(records)
	rows = append(rows, report.SummaryRows(rows)...)

	if err := writeCSV(*out, func(f *os.File) error {
		return report.WriteBillsCSV(f, rows)
	}); err != nil {
		logger.Error("write bill csv", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("bill data saved", "path", *out, "rows", len(rows))

	if len(groups) > 0 {
		if err := writeCSV(*dupes, func(f *os.File) error {
			return report.WriteDuplicatesCSV(f, groups)
		}); err != nil {
			logger.Error("write duplicates csv", "path", *dupes, "error", err)
			os.Exit(1)
		}
		logger.Info("potential duplicate bills found", "path", *dupes, "groups", len(groups))
	} else {
		logger.Info("no duplicate bills found")
	}

	if *xlsx != "" {
		data, err := report.BillsXLSX(rows, groups)
		if err != nil {
			logger.Error("build xlsx", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, data, 0o644); err != nil {
			logger.Error("write xlsx", "path", *xlsx, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook saved", "path", *xlsx)
	}
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
