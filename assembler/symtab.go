package assembler

import "sort"

// symbolRow is a single (name, value, kind) tuple.
type symbolRow struct {
	Name  string
	Value int
	Kind  Kind
}

// SymbolTable is the ordered multi-entry symbol store described by the
// data model: rows are kept sorted by value ascending (stable for equal
// values) as they are inserted, with kind-filtered lookup by name and a
// bulk shift operation used to relocate Data symbols past the code image.
//
// This replaces the source's intrusive sorted linked list (table.c) with
// a plain slice plus a name index, per the "replace intrusive linked
// list" design note.
type SymbolTable struct {
	rows  []symbolRow
	index map[string][]int // name -> indices into rows, in insertion order
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string][]int)}
}

// Insert adds a (name, value, kind) row, keeping rows sorted by value
// ascending (stable insertion point: ties go after existing equal
// values).
func (t *SymbolTable) Insert(name string, value int, kind Kind) {
	pos := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].Value > value })
	t.rows = append(t.rows, symbolRow{})
	copy(t.rows[pos+1:], t.rows[pos:])
	t.rows[pos] = symbolRow{Name: name, Value: value, Kind: kind}

	// Shift every recorded index >= pos, then add this row's position.
	for n, idxs := range t.index {
		for i, idx := range idxs {
			if idx >= pos {
				t.index[n][i] = idx + 1
			}
		}
	}
	t.index[name] = append(t.index[name], pos)
}

// Lookup returns the first row for name whose kind is in kinds, in
// ascending-value order, and whether one was found.
func (t *SymbolTable) Lookup(name string, kinds ...Kind) (value int, kind Kind, found bool) {
	idxs, ok := t.index[name]
	if !ok {
		return 0, 0, false
	}
	best := -1
	for _, idx := range idxs {
		row := t.rows[idx]
		if kindIn(row.Kind, kinds) {
			if best == -1 || t.rows[idx].Value < t.rows[best].Value {
				best = idx
			}
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return t.rows[best].Value, t.rows[best].Kind, true
}

// Has reports whether a row for name exists with kind in kinds.
func (t *SymbolTable) Has(name string, kinds ...Kind) bool {
	_, _, ok := t.Lookup(name, kinds...)
	return ok
}

func kindIn(k Kind, kinds []Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

// ShiftKind adds delta to the value of every row whose kind equals k.
// This is the O(n) scan that relocates Data symbols past the final code
// image in §4.4's pre-step.
func (t *SymbolTable) ShiftKind(k Kind, delta int) {
	for i := range t.rows {
		if t.rows[i].Kind == k {
			t.rows[i].Value += delta
		}
	}
	// Values changed, so the sort order may no longer hold; restore it.
	sort.SliceStable(t.rows, func(i, j int) bool { return t.rows[i].Value < t.rows[j].Value })
	t.reindex()
}

func (t *SymbolTable) reindex() {
	t.index = make(map[string][]int, len(t.index))
	for i, row := range t.rows {
		t.index[row.Name] = append(t.index[row.Name], i)
	}
}

// Rows returns every row whose kind equals k, in ascending-value order.
func (t *SymbolTable) Rows(k Kind) []symbolRow {
	var out []symbolRow
	for _, row := range t.rows {
		if row.Kind == k {
			out = append(out, row)
		}
	}
	return out
}

// Names returns the distinct names with a row of kind k.
func (t *SymbolTable) Names(k Kind) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.rows {
		if row.Kind == k && !seen[row.Name] {
			seen[row.Name] = true
			out = append(out, row.Name)
		}
	}
	return out
}
