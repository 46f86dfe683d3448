package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/noa-levi/asm24/assembler"
	"github.com/noa-levi/asm24/diag"
	"github.com/noa-levi/asm24/output"
)

func assembleOK(t *testing.T, src []string) *assembler.Program {
	t.Helper()
	rep := diag.NewRecorder(diag.NewConsoleReporter(os.Stderr))
	res := assembler.Assemble("p.as", "p", src, assembler.DefaultLimits(), rep)
	if !res.OK {
		t.Fatalf("Assemble() failed unexpectedly for %v", src)
	}
	return res.Program
}

func TestWriteObjectMinimal(t *testing.T) {
	prog := assembleOK(t, []string{"stop"})
	dir := t.TempDir()
	path := filepath.Join(dir, "p.ob")

	if err := output.WriteObject(path, prog, prog.Limits.ICInit); err != nil {
		t.Fatalf("WriteObject() error = %v", err)
	}

	listing, err := output.ReadObject(path)
	if err != nil {
		t.Fatalf("ReadObject() error = %v", err)
	}
	if listing.ICCount != 1 || listing.DCCount != 0 {
		t.Errorf("listing header = (%d,%d), want (1,0)", listing.ICCount, listing.DCCount)
	}
	if len(listing.Words) != 1 || listing.Words[0].Address != 100 {
		t.Fatalf("listing.Words = %+v, want one word at address 100", listing.Words)
	}
}

func TestWriteObjectRoundTripsPackedValue(t *testing.T) {
	prog := assembleOK(t, []string{"X: mov #5, r3", "stop"})
	dir := t.TempDir()
	path := filepath.Join(dir, "p.ob")

	if err := output.WriteObject(path, prog, prog.Limits.ICInit); err != nil {
		t.Fatalf("WriteObject() error = %v", err)
	}
	listing, err := output.ReadObject(path)
	if err != nil {
		t.Fatalf("ReadObject() error = %v", err)
	}
	if listing.ICCount != 3 || listing.DCCount != 0 {
		t.Errorf("listing header = (%d,%d), want (3,0)", listing.ICCount, listing.DCCount)
	}

	want := map[int]int{100: prog.CodeSlots()[0].EmitValue(), 101: prog.CodeSlots()[1].EmitValue(), 102: prog.CodeSlots()[2].EmitValue()}
	for _, w := range listing.Words {
		if got, ok := want[w.Address]; !ok || got != w.Value {
			t.Errorf("address %d: got %o, want %o", w.Address, w.Value, got)
		}
	}
}

func TestWriteExternalsAndEntries(t *testing.T) {
	prog := assembleOK(t, []string{".extern OUTSIDE", "jmp OUTSIDE", "stop"})
	dir := t.TempDir()
	extPath := filepath.Join(dir, "p.ext")

	if err := output.WriteExternals(extPath, prog); err != nil {
		t.Fatalf("WriteExternals() error = %v", err)
	}
	contents, err := os.ReadFile(extPath)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", extPath, err)
	}
	if got := string(contents); got != "OUTSIDE 0000101\n" {
		t.Errorf(".ext contents = %q, want %q", got, "OUTSIDE 0000101\n")
	}

	entProg := assembleOK(t, []string{"A: .data 1", ".entry A", "stop"})
	entPath := filepath.Join(dir, "p.ent")
	if err := output.WriteEntries(entPath, entProg); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}
	contents, err = os.ReadFile(entPath)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", entPath, err)
	}
	if got := string(contents); got != "A 0000101\n" {
		t.Errorf(".ent contents = %q, want %q", got, "A 0000101\n")
	}
}

func TestWriteEntriesSkipsEmptyFile(t *testing.T) {
	prog := assembleOK(t, []string{"stop"})
	dir := t.TempDir()
	entPath := filepath.Join(dir, "p.ent")

	if err := output.WriteEntries(entPath, prog); err != nil {
		t.Fatalf("WriteEntries() error = %v", err)
	}
	if _, err := os.Stat(entPath); !os.IsNotExist(err) {
		t.Errorf("WriteEntries() should not create a file when there are no Entry rows")
	}
}
