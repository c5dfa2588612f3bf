package sped

import (
	"strconv"

	"github.com/fiscalia-dev/spedparse/internal/model"
)

// Result owns everything produced by one successful parse. Three access
// levels: the typed entities below, Register for arbitrary record types,
// and RawTable for the full normalized table.
type Result struct {
	Family        model.FileFamily
	Header        model.Header
	SalesItems    []model.Item
	PurchaseItems []model.Item
	Expenses      []model.Expense
	// Strategy reports which tokenizer path produced the table.
	Strategy Strategy

	table    Table
	attached bool
}

// Register returns every record of the given type from the full table, each
// as a map from column-position string ("0", "1", ...) to raw text value.
// Records of an unknown type yield an empty slice, not an error.
func (r *Result) Register(code string) ([]map[string]string, error) {
	if !r.attached {
		return nil, ErrNoTable
	}
	var rows []map[string]string
	for _, rec := range r.table.OfType(code) {
		row := make(map[string]string, len(rec.Fields))
		for col, v := range rec.Fields {
			row[strconv.Itoa(col)] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// RawTable returns the full normalized record table.
func (r *Result) RawTable() (Table, error) {
	if !r.attached {
		return nil, ErrNoTable
	}
	return r.table, nil
}

// attachTable is called exactly once by Parse after extraction succeeds.
func (r *Result) attachTable(t Table) {
	if r.attached {
		panic("record table already attached")
	}
	r.table = t
	r.attached = true
}
