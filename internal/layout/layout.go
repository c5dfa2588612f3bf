// Package layout declares the published column layouts of the supported
// SPED file families. Layouts are configuration, loaded once and never
// mutated; a lookup miss is a programming defect, not bad input.
package layout

import (
	"errors"
	"fmt"

	"github.com/fiscalia-dev/spedparse/internal/model"
)

// ErrConfig marks a layout configuration defect (unknown record type or
// field name, or an inconsistent table).
var ErrConfig = errors.New("layout configuration error")

// Layout maps symbolic field names to zero-based column positions for one
// record type.
type Layout map[string]int

// Family declares the physical constants and record layouts of one file
// family. Column positions assume the tokenizer's convention: enclosing
// delimiters stripped, REG at column 0.
type Family struct {
	Name        model.FileFamily
	Columns     int
	EndMarker   string
	ParentTypes []string
	Records     map[string]Layout
}

// Field returns the column index of field within record type recType.
func (f *Family) Field(recType, field string) (int, error) {
	rec, ok := f.Records[recType]
	if !ok {
		return 0, fmt.Errorf("%w: family %s has no layout for record %s", ErrConfig, f.Name, recType)
	}
	col, ok := rec[field]
	if !ok {
		return 0, fmt.Errorf("%w: record %s/%s has no field %s", ErrConfig, f.Name, recType, field)
	}
	return col, nil
}

// Fields resolves several field names of one record type at once.
func (f *Family) Fields(recType string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for _, name := range names {
		col, err := f.Field(recType, name)
		if err != nil {
			return nil, err
		}
		cols[name] = col
	}
	return cols, nil
}

// Validate checks internal consistency: every layout maps REG to column 0
// (two published layout tables disagree on this; the stripped-delimiter
// convention makes 0 the only valid answer) and every index fits the
// family's column count.
func (f *Family) Validate() error {
	if f.Columns <= 0 {
		return fmt.Errorf("%w: family %s declares %d columns", ErrConfig, f.Name, f.Columns)
	}
	if f.EndMarker == "" {
		return fmt.Errorf("%w: family %s has no end marker", ErrConfig, f.Name)
	}
	for recType, rec := range f.Records {
		reg, ok := rec["REG"]
		if !ok || reg != 0 {
			return fmt.Errorf("%w: record %s/%s must map REG to column 0", ErrConfig, f.Name, recType)
		}
		for name, col := range rec {
			if col < 0 || col >= f.Columns {
				return fmt.Errorf("%w: record %s/%s field %s at column %d outside 0..%d",
					ErrConfig, f.Name, recType, name, col, f.Columns-1)
			}
		}
	}
	return nil
}
