package sped

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fiscalia-dev/spedparse/internal/model"
)

// Extractor turns a trimmed, hierarchy-resolved record table into typed
// entities. One implementation exists per file family; the physical
// constants it reports drive the tokenizer, trimmer, and resolver.
type Extractor interface {
	Family() model.FileFamily
	NumColumns() int
	ParentTypes() []string
	EndMarker() string
	Extract(t Table, opts Options) (*Extraction, error)
}

// Extraction is the typed output of one family extractor. Families leave
// the collections they do not produce empty.
type Extraction struct {
	Header    model.Header
	Sales     []model.Item
	Purchases []model.Item
	Expenses  []model.Expense
}

// Options tune per-parse policy.
type Options struct {
	// FallbackDate is substituted for unparseable or undersized date fields.
	FallbackDate time.Time
	// BatchSize bounds the fallback tokenizer's scan batches, in lines.
	BatchSize int
	// Logger receives per-row skip diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns the stock policy: 2024-01-01 fallback date and the
// default fallback batch size.
func DefaultOptions() Options {
	return Options{
		FallbackDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		BatchSize:    DefaultBatchSize,
	}
}

// Log returns the configured logger, defaulting to slog.Default.
func (o Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse runs the full pipeline over raw file bytes: tokenize, trim at the
// end marker, resolve the hierarchy, extract typed entities, and attach the
// record table to the result. It returns a fully populated Result or one
// fatal error; per-row extraction failures are logged and skipped instead.
func Parse(ext Extractor, content []byte, opts Options) (*Result, error) {
	log := opts.Log().With("family", string(ext.Family()), "run_id", uuid.NewString())
	opts.Logger = log

	table, strategy, err := Tokenize(content, ext.NumColumns(), ext.EndMarker(), opts.BatchSize, log)
	if err != nil {
		return nil, err
	}
	log.Debug("tokenized", "records", len(table), "strategy", string(strategy))

	table = TrimAtEndMarker(table, ext.EndMarker())
	ResolveHierarchy(table, ext.ParentTypes())

	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no records after trimming", ErrEmptyFile)
	}

	extraction, err := ext.Extract(table, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Family:        ext.Family(),
		Header:        extraction.Header,
		SalesItems:    extraction.Sales,
		PurchaseItems: extraction.Purchases,
		Expenses:      extraction.Expenses,
		Strategy:      strategy,
	}
	res.attachTable(table)

	log.Info("parsed",
		"sales", len(res.SalesItems),
		"purchases", len(res.PurchaseItems),
		"expenses", len(res.Expenses),
		"records", len(table))
	return res, nil
}

// ParseFile reads path and parses its content. A missing or unreadable file
// surfaces as the wrapped filesystem error.
func ParseFile(ext Extractor, path string, opts Options) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(ext, content, opts)
}
