// Package output serializes an assembled Program into its three
// companion artifacts (.ob, .ext, .ent) and, for the round-trip testable
// property, reads a .ob listing back into its raw (address, value)
// words. Grounded on the source's writefiles.c format strings and on
// loader.go's file-handling style (explicit #nosec annotations on
// user-supplied paths, %w-wrapped errors).
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/noa-levi/asm24/assembler"
)

// WriteObject writes path's object listing: a header line "<icf-ICInit>
// <dcf>" followed by one "<address> <value>" line per populated image
// word, address zero-padded to 7 decimal digits and value zero-padded to
// 6 octal digits.
func WriteObject(path string, prog *assembler.Program, icInit int) error {
	f, err := os.Create(path) // #nosec G304 -- caller-supplied basename, not attacker input
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", prog.ICF()-icInit, prog.DCF())

	addr := icInit
	for _, slot := range prog.CodeSlots() {
		val := 0
		if slot != nil {
			val = slot.EmitValue()
		}
		fmt.Fprintf(w, "%07d %06o\n", addr, val)
		addr++
	}
	for _, word := range prog.DataWords() {
		fmt.Fprintf(w, "%07d %06o\n", addr, word&0x7FFF)
		addr++
	}

	return w.Flush()
}

// WriteExternals writes path's externals listing: one "<name>
// <address>" line per ExternalReference row, address zero-padded to 7
// decimal digits. Writes nothing (not even an empty file is required by
// the format) when there are no rows.
func WriteExternals(path string, prog *assembler.Program) error {
	names := prog.Symbols.Names(assembler.KindExternalReference)
	if len(names) == 0 {
		return nil
	}

	f, err := os.Create(path) // #nosec G304 -- caller-supplied basename, not attacker input
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range prog.Symbols.Rows(assembler.KindExternalReference) {
		fmt.Fprintf(w, "%s %07d\n", row.Name, row.Value)
	}
	return w.Flush()
}

// WriteEntries writes path's entries listing: one "<name> <value>" line
// per Entry row, value zero-padded to 7 decimal digits.
func WriteEntries(path string, prog *assembler.Program) error {
	names := prog.Symbols.Names(assembler.KindEntry)
	if len(names) == 0 {
		return nil
	}

	f, err := os.Create(path) // #nosec G304 -- caller-supplied basename, not attacker input
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range prog.Symbols.Rows(assembler.KindEntry) {
		fmt.Fprintf(w, "%s %07d\n", row.Name, row.Value)
	}
	return w.Flush()
}
