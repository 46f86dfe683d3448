package assembler

import (
	"github.com/noa-levi/asm24/diag"
)

// runSecondPass re-reads the same expanded stream and resolves whatever
// the first pass left incomplete: Direct-operand follow-on words and
// .entry promotion. It walks IC in lockstep with the first pass rather
// than re-deriving addresses from scratch, using the cached instrRecord
// keyed by primary-word IC (see §9's "replace line-by-line re-parsing"
// design note — this repo takes the cached-parse-record option).
func runSecondPass(prog *Program, descs []LineDescriptor, rep *diag.Recorder) {
	ic := prog.Limits.ICInit

	for _, d := range descs {
		pos := diag.Position{Filename: d.File, Line: d.Line}

		i := skipWhitespace(d.Text, 0)
		if i >= len(d.Text) || d.Text[i] == ';' || d.Text[i] == '\n' {
			continue
		}

		rest := d.Text
		if _, after, found, valid := findLabel(d.Text, prog.Limits.MaxLabelLength); found {
			if !valid {
				continue // already reported in the first pass
			}
			rest = d.Text[after:]
		}

		j := skipWhitespace(rest, 0)
		rest = rest[j:]
		if rest == "" {
			continue
		}

		if rest[0] == '.' {
			name, end := firstToken(rest[1:])
			if lookupDirective(name) == directiveEntry {
				secondPassEntry(prog, rest[1+end:], pos, rep)
			}
			continue
		}

		slot := prog.getCode(ic)
		rec, has := prog.instr[prog.icIndex(ic)]
		if slot == nil || !slot.IsCode || !has {
			continue
		}

		secondPassFillOperands(prog, rec, ic, rep)
		ic += slot.Length
	}
}

// secondPassEntry handles one `.entry NAME` line: promotes an existing
// Data/Code row to also carry an Entry row, or fails if NAME is
// external-only or altogether undefined.
func secondPassEntry(prog *Program, arg string, pos diag.Position, rep *diag.Recorder) {
	name, _ := firstToken(arg)
	if name == "" {
		rep.Errorf(pos, diag.KindSyntactic, "%v: .entry", errMissingOperand)
		return
	}
	if prog.Symbols.Has(name, KindEntry) {
		return
	}
	if value, _, ok := prog.Symbols.Lookup(name, KindData, KindCode); ok {
		prog.Symbols.Insert(name, value, KindEntry)
		return
	}
	if prog.Symbols.Has(name, KindExternal) {
		rep.Errorf(pos, diag.KindSemantic, "%v: %q", errConflictingKinds, name)
		return
	}
	rep.Errorf(pos, diag.KindSemantic, "%v: %q", errUndefinedSymbol, name)
}

// secondPassFillOperands resolves every Direct operand of the
// instruction whose primary word sits at primaryIC, filling the matching
// follow-on slot and, for external references, recording the use site.
func secondPassFillOperands(prog *Program, rec instrRecord, primaryIC int, rep *diag.Recorder) {
	for opIndex, addr := range followOnAddrs(rec.Operands, primaryIC) {
		op := rec.Operands[opIndex]
		if op.Mode != AddrDirect {
			continue
		}

		value, kind, ok := prog.Symbols.Lookup(op.Name, KindData, KindCode, KindExternal)
		if !ok {
			rep.Errorf(rec.Pos, diag.KindSemantic, "%v: %q", errUndefinedSymbol, op.Name)
			continue
		}

		are := ARERelocatable
		if kind == KindExternal {
			are = AREExternal
		}
		prog.setCode(addr, dataSlot(DataWord{ARE: are, Data: value & 0xFFF}))

		if kind == KindExternal {
			prog.Symbols.Insert(op.Name, addr, KindExternalReference)
		}
	}
}

// followOnAddrs mirrors the first pass's own follow-on allocation rule
// (see firstpass.go's allocateOperandFollowOn) to recover, for each
// operand index that received a dedicated follow-on word, the address of
// that word. A shared register-register word, and any solo
// Register/RegisterIndirect operand, contribute no addressable follow-on
// here since neither ever needs Direct-operand resolution.
func followOnAddrs(ops []operand, primaryIC int) map[int]int {
	addrs := make(map[int]int)
	ic := primaryIC + 1

	switch len(ops) {
	case 1:
		if !isRegisterLike(ops[0].Mode) {
			addrs[0] = ic
		}
	case 2:
		if isRegisterLike(ops[0].Mode) && isRegisterLike(ops[1].Mode) {
			break
		}
		if !isRegisterLike(ops[0].Mode) {
			addrs[0] = ic
			ic++
		}
		if !isRegisterLike(ops[1].Mode) {
			addrs[1] = ic
		}
	}
	return addrs
}
