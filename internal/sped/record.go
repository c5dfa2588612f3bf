package sped

// Record is one decoded line of a SPED file. Column 0 always holds the
// record-type code (REG); the tokenizer strips the enclosing delimiters so
// layouts are zero-based regardless of source variant.
type Record struct {
	ID       int      // zero-based row id, assigned in file order
	ParentID int      // row id of nearest preceding parent-type record, -1 before any
	Fields   []string // raw field values, padded to the family column count
}

// Type returns the record-type code.
func (r Record) Type() string {
	return r.Value(0)
}

// Value returns the raw text at column col, or "" when out of range.
func (r Record) Value(col int) string {
	if col < 0 || col >= len(r.Fields) {
		return ""
	}
	return r.Fields[col]
}

// Table is the ordered record sequence for one parsed file. Order is
// significant: trimming and hierarchy resolution depend on file position.
type Table []Record

// OfType returns all records whose type equals code, in file order.
func (t Table) OfType(code string) []Record {
	var recs []Record
	for _, r := range t {
		if r.Type() == code {
			recs = append(recs, r)
		}
	}
	return recs
}

// First returns the first record of the given type.
func (t Table) First(code string) (Record, bool) {
	for _, r := range t {
		if r.Type() == code {
			return r, true
		}
	}
	return Record{}, false
}

// Parent returns the hierarchy parent of r, if one was resolved.
func (t Table) Parent(r Record) (Record, bool) {
	if r.ParentID < 0 || r.ParentID >= len(t) {
		return Record{}, false
	}
	return t[r.ParentID], true
}
