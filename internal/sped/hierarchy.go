package sped

// TrimAtEndMarker truncates the table to and including the first record
// whose type equals marker. A table without the marker is returned
// unchanged: some files are truncated upstream and still parse.
func TrimAtEndMarker(t Table, marker string) Table {
	for i, r := range t {
		if r.Type() == marker {
			return t[:i+1]
		}
	}
	return t
}

// ResolveHierarchy assigns row ids in file order and propagates parent ids
// forward: a record whose type is in parentTypes opens a scope and becomes
// its own parent; every following record inherits that row id until the
// next parent-type record. Records before the first parent keep -1. Must
// run after trimming. Single pass, never fails.
func ResolveHierarchy(t Table, parentTypes []string) {
	parents := make(map[string]struct{}, len(parentTypes))
	for _, p := range parentTypes {
		parents[p] = struct{}{}
	}

	current := -1
	for i := range t {
		t[i].ID = i
		if _, ok := parents[t[i].Type()]; ok {
			current = i
		}
		t[i].ParentID = current
	}
}
