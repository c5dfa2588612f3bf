package sped

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenize_FastPath(t *testing.T) {
	content := []byte("|0000|A|B|\r\n|C100|1|2|\n|9999|2|\n")

	table, strategy, err := Tokenize(content, 5, "9999", 0, discard())
	require.NoError(t, err)
	assert.Equal(t, StrategyFast, strategy)
	require.Len(t, table, 3)

	assert.Equal(t, "0000", table[0].Type())
	assert.Equal(t, "A", table[0].Value(1))
	// Short lines are padded to the declared width.
	assert.Len(t, table[0].Fields, 5)
	assert.Equal(t, "", table[0].Value(4))
}

func TestTokenize_StripsEnclosingDelimiters(t *testing.T) {
	table, _, err := Tokenize([]byte("|C170|x||\n"), 4, "9999", 0, discard())
	require.NoError(t, err)
	require.Len(t, table, 1)
	// "|C170|x||" holds three fields: C170, x, and one empty.
	assert.Equal(t, []string{"C170", "x", "", ""}, table[0].Fields)
}

func TestTokenize_FallbackSkipsMalformed(t *testing.T) {
	// Second line has more fields than the layout width, which fails the
	// fast path; the fallback skips it and keeps the rest.
	content := []byte("|0000|A|\n|BAD|1|2|3|4|5|6|\n|C100|1|\n|9999|2|\n")

	table, strategy, err := Tokenize(content, 4, "9999", 0, discard())
	require.NoError(t, err)
	assert.Equal(t, StrategyFallback, strategy)
	require.Len(t, table, 3)
	assert.Equal(t, "0000", table[0].Type())
	assert.Equal(t, "C100", table[1].Type())
	assert.Equal(t, "9999", table[2].Type())
}

func TestTokenize_FallbackStopsAtEndMarker(t *testing.T) {
	lines := []string{
		"|0000|A|",
		"|BAD|1|2|3|4|5|6|", // forces the fallback
		"|9999|1|",
		"|JUNK|after|logical|end|of|file|x|y|", // never scanned
	}
	content := []byte(strings.Join(lines, "\n"))

	table, strategy, err := Tokenize(content, 4, "9999", 1, discard())
	require.NoError(t, err)
	assert.Equal(t, StrategyFallback, strategy)
	require.Len(t, table, 2)
	assert.Equal(t, "9999", table[1].Type())
}

func TestTokenize_AllLinesMalformed(t *testing.T) {
	content := []byte("|a|b|c|d|e|f|\n|g|h|i|j|k|l|\n")

	_, _, err := Tokenize(content, 3, "9999", 0, discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestTokenize_EmptyInput(t *testing.T) {
	table, strategy, err := Tokenize(nil, 4, "9999", 0, discard())
	require.NoError(t, err)
	assert.Equal(t, StrategyFast, strategy)
	assert.Empty(t, table)
}

func TestTokenize_Latin1Decoding(t *testing.T) {
	// 0xC7 is Ç in ISO-8859-1.
	content := []byte("|0200|P1|A\xc7UCAR|\n")

	table, _, err := Tokenize(content, 4, "9999", 0, discard())
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "AÇUCAR", table[0].Value(2))
}
