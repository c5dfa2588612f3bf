package sped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalia-dev/spedparse/internal/model"
)

// stubExtractor exercises the pipeline without pulling in a real family.
type stubExtractor struct {
	sawTable Table
}

func (s *stubExtractor) Family() model.FileFamily { return model.FileFamily("stub") }
func (s *stubExtractor) NumColumns() int          { return 4 }
func (s *stubExtractor) ParentTypes() []string    { return []string{"0000", "C100"} }
func (s *stubExtractor) EndMarker() string        { return "9999" }

func (s *stubExtractor) Extract(t Table, opts Options) (*Extraction, error) {
	s.sawTable = t
	return &Extraction{Header: model.Header{Family: s.Family()}}, nil
}

func TestParse_PipelineOrder(t *testing.T) {
	content := []byte("|0000|A|\n|C100|1|\n|C170|x|\n|9999|4|\n|JUNK|z|\n")

	ext := &stubExtractor{}
	res, err := Parse(ext, content, DefaultOptions())
	require.NoError(t, err)

	// Extraction saw a trimmed, resolved table.
	require.Len(t, ext.sawTable, 4)
	assert.Equal(t, "9999", ext.sawTable[3].Type())
	assert.Equal(t, 1, ext.sawTable[2].ParentID, "C170 belongs to C100")

	assert.Equal(t, StrategyFast, res.Strategy)

	table, err := res.RawTable()
	require.NoError(t, err)
	assert.Len(t, table, 4)

	rows, err := res.Register("C170")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "C170", rows[0]["0"])
	assert.Equal(t, "x", rows[0]["1"])
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(&stubExtractor{}, []byte("\n\n"), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_AllMalformed(t *testing.T) {
	_, err := Parse(&stubExtractor{}, []byte("|a|b|c|d|e|f|\n"), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(&stubExtractor{}, "does/not/exist.txt", DefaultOptions())
	require.Error(t, err)
}
