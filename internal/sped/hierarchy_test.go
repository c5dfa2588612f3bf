package sped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(fields ...string) Record {
	return Record{ParentID: -1, Fields: fields}
}

func types(t Table) []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Type()
	}
	return out
}

func TestTrimAtEndMarker(t *testing.T) {
	table := Table{rec("0000"), rec("C100"), rec("9999"), rec("JUNK"), rec("9999")}

	trimmed := TrimAtEndMarker(table, "9999")
	assert.Equal(t, []string{"0000", "C100", "9999"}, types(trimmed))
	assert.LessOrEqual(t, len(trimmed), len(table))
}

func TestTrimAtEndMarker_NoMarker(t *testing.T) {
	// Files truncated upstream keep whatever records they have.
	table := Table{rec("0000"), rec("C100")}
	assert.Equal(t, table, TrimAtEndMarker(table, "9999"))
}

func TestTrimAtEndMarker_Empty(t *testing.T) {
	assert.Empty(t, TrimAtEndMarker(Table{}, "9999"))
}

func TestResolveHierarchy(t *testing.T) {
	table := Table{
		rec("0000"), // parent, row 0
		rec("0200"), // child of 0
		rec("C100"), // parent, row 2
		rec("C170"), // child of 2
		rec("C170"), // child of 2
		rec("C100"), // parent, row 5
		rec("C170"), // child of 5
	}

	ResolveHierarchy(table, []string{"0000", "C100"})

	for i, r := range table {
		assert.Equal(t, i, r.ID, "row ids follow file order")
	}

	wantParents := []int{0, 0, 2, 2, 2, 5, 5}
	for i, r := range table {
		assert.Equal(t, wantParents[i], r.ParentID, "row %d", i)
	}

	// Parent-type records are their own parents.
	assert.Equal(t, table[2].ID, table[2].ParentID)
}

func TestResolveHierarchy_NoParentTypes(t *testing.T) {
	table := Table{rec("A"), rec("B")}
	ResolveHierarchy(table, []string{"X"})

	for _, r := range table {
		assert.Equal(t, -1, r.ParentID)
		_, ok := table.Parent(r)
		assert.False(t, ok)
	}
}

func TestResolveHierarchy_Empty(t *testing.T) {
	ResolveHierarchy(Table{}, []string{"0000"}) // no-op, must not panic
}

func TestTableLookups(t *testing.T) {
	table := Table{rec("0000"), rec("C100"), rec("C170", "1"), rec("C170", "2")}
	ResolveHierarchy(table, []string{"0000", "C100"})

	recs := table.OfType("C170")
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].Value(1))

	first, ok := table.First("C100")
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	parent, ok := table.Parent(recs[0])
	require.True(t, ok)
	assert.Equal(t, "C100", parent.Type())

	_, ok = table.First("Z999")
	assert.False(t, ok)
	assert.Empty(t, table.OfType("Z999"))
}
