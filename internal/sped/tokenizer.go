package sped

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Delimiter separates fields within a line. SPED lines carry one leading and
// one trailing delimiter; both are stripped before splitting so that the
// record-type code is always column 0.
const Delimiter = "|"

// DefaultBatchSize bounds how many lines the fallback strategy scans per batch.
const DefaultBatchSize = 200_000

// Strategy reports which tokenizer path produced the record table.
type Strategy string

const (
	StrategyFast     Strategy = "fast"     // single pass, strict
	StrategyFallback Strategy = "fallback" // batched, skips malformed lines
)

// Tokenize decodes content as ISO-8859-1 and splits it into records of
// exactly numColumns fields. Lines with fewer tokens than the layout width
// are padded on the right (most record types use only a prefix of the
// family's columns); lines with more tokens are structurally malformed. The
// fast path rejects the whole input on the first malformed line; the
// fallback then re-scans in batches, skipping malformed lines individually
// and stopping early once endMarker appears in column 0.
func Tokenize(content []byte, numColumns int, endMarker string, batchSize int, log *slog.Logger) (Table, Strategy, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	lines := strings.Split(string(decoded), "\n")

	table, err := tokenizeFast(lines, numColumns)
	if err == nil {
		return table, StrategyFast, nil
	}
	log.Debug("fast tokenizer failed, retrying in batches", "error", err)

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	table, err = tokenizeBatched(lines, numColumns, endMarker, batchSize, log)
	if err != nil {
		return nil, StrategyFallback, err
	}
	return table, StrategyFallback, nil
}

func tokenizeFast(lines []string, numColumns int) (Table, error) {
	var table Table
	for n, raw := range lines {
		tokens, ok := splitRecord(raw)
		if !ok {
			continue
		}
		if len(tokens) > numColumns {
			return nil, fmt.Errorf("line %d: %d fields exceeds layout width %d", n+1, len(tokens), numColumns)
		}
		table = append(table, Record{ParentID: -1, Fields: padFields(tokens, numColumns)})
	}
	return table, nil
}

func tokenizeBatched(lines []string, numColumns int, endMarker string, batchSize int, log *slog.Logger) (Table, error) {
	var table Table
	skipped := 0
scan:
	for start := 0; start < len(lines); start += batchSize {
		end := min(start+batchSize, len(lines))
		for n, raw := range lines[start:end] {
			tokens, ok := splitRecord(raw)
			if !ok {
				continue
			}
			if len(tokens) > numColumns {
				skipped++
				log.Warn("skipping malformed line", "line", start+n+1, "fields", len(tokens), "want", numColumns)
				continue
			}
			rec := Record{ParentID: -1, Fields: padFields(tokens, numColumns)}
			table = append(table, rec)
			if rec.Type() == endMarker {
				break scan
			}
		}
	}
	if len(table) == 0 && skipped > 0 {
		return nil, fmt.Errorf("%w: all %d non-blank lines malformed", ErrParse, skipped)
	}
	return table, nil
}

// splitRecord strips the line ending and the enclosing delimiters, then
// splits on the delimiter. Blank lines report ok=false.
func splitRecord(raw string) ([]string, bool) {
	line := strings.TrimSuffix(raw, "\r")
	if line == "" {
		return nil, false
	}
	line = strings.TrimPrefix(line, Delimiter)
	line = strings.TrimSuffix(line, Delimiter)
	return strings.Split(line, Delimiter), true
}

func padFields(tokens []string, numColumns int) []string {
	if len(tokens) >= numColumns {
		return tokens
	}
	fields := make([]string, numColumns)
	copy(fields, tokens)
	return fields
}
