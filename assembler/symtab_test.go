package assembler

import "testing"

func TestSymbolTableInsertOrderedByValue(t *testing.T) {
	st := NewSymbolTable()
	st.Insert("C", 102, KindCode)
	st.Insert("A", 100, KindCode)
	st.Insert("B", 101, KindCode)

	want := []string{"A", "B", "C"}
	for i, row := range st.Rows(KindCode) {
		if row.Name != want[i] {
			t.Errorf("Rows(KindCode)[%d].Name = %q, want %q", i, row.Name, want[i])
		}
	}
}

func TestSymbolTableLookupByKindFilter(t *testing.T) {
	st := NewSymbolTable()
	st.Insert("OUTSIDE", 0, KindExternal)

	if _, _, ok := st.Lookup("OUTSIDE", KindData, KindCode); ok {
		t.Error("Lookup should not find OUTSIDE under Data/Code")
	}
	if _, _, ok := st.Lookup("OUTSIDE", KindExternal); !ok {
		t.Error("Lookup should find OUTSIDE under External")
	}
}

func TestSymbolTableMultipleKindsSameName(t *testing.T) {
	st := NewSymbolTable()
	st.Insert("A", 100, KindCode)
	st.Insert("A", 100, KindEntry)

	if !st.Has("A", KindCode) {
		t.Error("Has(A, Code) should be true")
	}
	if !st.Has("A", KindEntry) {
		t.Error("Has(A, Entry) should be true")
	}
}

func TestSymbolTableShiftKind(t *testing.T) {
	st := NewSymbolTable()
	st.Insert("LBL", 0, KindData)
	st.Insert("X", 100, KindCode)

	st.ShiftKind(KindData, 103)

	v, _, ok := st.Lookup("LBL", KindData)
	if !ok || v != 103 {
		t.Errorf("after ShiftKind, LBL value = %d, ok=%v, want 103, true", v, ok)
	}
	v, _, ok = st.Lookup("X", KindCode)
	if !ok || v != 100 {
		t.Errorf("ShiftKind(Data) must not affect Code rows; got %d", v)
	}
}

func TestSymbolTableNames(t *testing.T) {
	st := NewSymbolTable()
	st.Insert("FOO", 5, KindExternalReference)
	st.Insert("FOO", 9, KindExternalReference)
	st.Insert("BAR", 3, KindExternalReference)

	names := st.Names(KindExternalReference)
	if len(names) != 2 {
		t.Errorf("Names(ExternalReference) = %v, want 2 distinct names", names)
	}
}
