package assembler

import (
	"strconv"
	"strings"

	"github.com/noa-levi/asm24/diag"
)

// runFirstPass parses every line, classifies it, allocates code/data
// image slots, and registers symbols. IC starts at Limits.ICInit, DC at
// 0. Every line is visited regardless of earlier errors on this or prior
// lines (the resource model's "error detection does not abort the
// pass").
func runFirstPass(prog *Program, descs []LineDescriptor, rep *diag.Recorder) {
	ic := prog.Limits.ICInit
	dc := 0

	for _, d := range descs {
		pos := diag.Position{Filename: d.File, Line: d.Line}

		if len(d.Text) > prog.Limits.MaxLineLength {
			rep.Errorf(pos, diag.KindLexical, "%v", errOversizeLine)
			continue
		}

		i := skipWhitespace(d.Text, 0)
		if i >= len(d.Text) || d.Text[i] == ';' || d.Text[i] == '\n' {
			continue
		}

		label, rest, ok := extractLabel(d.Text, pos, prog.Limits.MaxLabelLength, rep)
		if !ok {
			continue
		}

		j := skipWhitespace(rest, 0)
		rest = rest[j:]
		if rest == "" {
			continue
		}

		if rest[0] == '.' {
			name, end := firstToken(rest[1:])
			argRest := rest[1+end:]
			kind := lookupDirective(name)
			switch kind {
			case directiveData:
				firstPassData(prog, label, argRest, pos, &dc, rep)
			case directiveString:
				firstPassString(prog, label, argRest, pos, &dc, rep)
			case directiveExtern:
				firstPassExtern(prog, argRest, pos, rep)
			case directiveEntry:
				if label != "" {
					rep.Errorf(pos, diag.KindSemantic, "%v: .entry", errLabelOnDirective)
				}
				// No other effect in the first pass; §4.4 handles it.
			default:
				rep.Errorf(pos, diag.KindSyntactic, "%v: .%s", errUnknownDirective, name)
			}
			continue
		}

		firstPassInstruction(prog, label, rest, pos, &ic, rep)
	}

	prog.icf = ic
	prog.dcf = dc

	prog.Symbols.ShiftKind(KindData, prog.icf)
}

// extractLabel pulls an optional "name:" prefix off text. It reports an
// error and returns ok=false only when a colon is present but the
// candidate name fails label validation; the absence of any colon is not
// an error (the line simply has no label).
func extractLabel(text string, pos diag.Position, maxLabelLength int, rep *diag.Recorder) (label string, rest string, ok bool) {
	name, after, found, valid := findLabel(text, maxLabelLength)
	if !found {
		return "", text, true
	}
	if !valid {
		rep.Errorf(pos, diag.KindLexical, "%v: %q", errInvalidLabel, name)
		return "", "", false
	}
	return name, text[after:], true
}

// registerDefiningSymbol inserts a Code/Data/External row, failing first
// if name already has a row under {Code, Data, External} — the single
// duplicate check the first pass performs across those three kinds.
func registerDefiningSymbol(prog *Program, name string, value int, kind Kind, pos diag.Position, rep *diag.Recorder) bool {
	if prog.Symbols.Has(name, KindCode, KindData, KindExternal) {
		rep.Errorf(pos, diag.KindSemantic, "%v: %q", errDuplicateSymbol, name)
		return false
	}
	prog.Symbols.Insert(name, value, kind)
	return true
}

func firstPassData(prog *Program, label, arg string, pos diag.Position, dc *int, rep *diag.Recorder) {
	values, err := splitOperands(arg)
	if err != nil {
		rep.Errorf(pos, diag.KindSyntactic, "%v", err)
		return
	}
	if len(values) == 0 {
		rep.Errorf(pos, diag.KindSyntactic, "%v: .data", errMissingOperand)
		return
	}
	ints := make([]int, 0, len(values))
	for _, v := range values {
		if !isInt(v) {
			rep.Errorf(pos, diag.KindSyntactic, "invalid integer %q in .data", v)
			return
		}
		n, _ := strconv.Atoi(v)
		ints = append(ints, n)
	}

	if label != "" {
		if !registerDefiningSymbol(prog, label, *dc, KindData, pos, rep) {
			return
		}
	}
	for _, n := range ints {
		prog.data = append(prog.data, n)
		*dc++
	}
}

func firstPassString(prog *Program, label, arg string, pos diag.Position, dc *int, rep *diag.Recorder) {
	arg = strings.TrimSpace(arg)
	if len(arg) < 2 || arg[0] != '"' || arg[len(arg)-1] != '"' {
		rep.Errorf(pos, diag.KindSyntactic, "%v", errUnterminatedStr)
		return
	}
	content := arg[1 : len(arg)-1]

	if label != "" {
		if !registerDefiningSymbol(prog, label, *dc, KindData, pos, rep) {
			return
		}
	}
	for i := 0; i < len(content); i++ {
		prog.data = append(prog.data, int(content[i]))
		*dc++
	}
	prog.data = append(prog.data, 0)
	*dc++
}

func firstPassExtern(prog *Program, arg string, pos diag.Position, rep *diag.Recorder) {
	name, _ := firstToken(arg)
	if name == "" {
		rep.Errorf(pos, diag.KindSyntactic, "%v: .extern", errMissingOperand)
		return
	}
	// A preceding label on .extern is silently ignored; see §9.
	registerDefiningSymbol(prog, name, 0, KindExternal, pos, rep)
}

func firstPassInstruction(prog *Program, label, rest string, pos diag.Position, ic *int, rep *diag.Recorder) {
	mnemonic, end := firstToken(rest)
	info, known := lookupOpcode(mnemonic)
	if !known {
		rep.Errorf(pos, diag.KindSyntactic, "%v: %q", errUnknownMnemonic, mnemonic)
		return
	}

	operandsStr := rest[end:]
	tokens, err := splitOperands(operandsStr)
	if err != nil {
		rep.Errorf(pos, diag.KindSyntactic, "%v", err)
		return
	}

	arity := info.arity()
	if len(tokens) > arity {
		rep.Errorf(pos, diag.KindStructural, "%v", errTooManyOperands)
		return
	}
	if len(tokens) < arity {
		rep.Errorf(pos, diag.KindSyntactic, "%v", errMissingOperand)
		return
	}

	ops := make([]operand, 0, len(tokens))
	for _, tok := range tokens {
		op, err := classifyOperand(tok)
		if err != nil {
			rep.Errorf(pos, diag.KindLexical, "%v", err)
			return
		}
		ops = append(ops, op)
	}

	var src, dst operand
	switch len(ops) {
	case 2:
		src, dst = ops[0], ops[1]
	case 1:
		dst = ops[0]
	}

	if len(ops) == 2 && !addrAllowed(info.SrcAddr, src.Mode) {
		rep.Errorf(pos, diag.KindStructural, "%v: src", errAddressingNotAllowed)
		return
	}
	if len(ops) >= 1 && !addrAllowed(info.DstAddr, dst.Mode) {
		rep.Errorf(pos, diag.KindStructural, "%v: dst", errAddressingNotAllowed)
		return
	}

	if label != "" {
		if !registerDefiningSymbol(prog, label, *ic, KindCode, pos, rep) {
			return
		}
	}

	code := CodeWord{ARE: AREAbsolute, Opcode: info.Opcode, Funct: info.Funct}
	if len(ops) == 2 {
		code.SrcAddressing = src.Mode
		if src.Mode == AddrRegister || src.Mode == AddrRegisterIndirect {
			code.SrcRegister = src.Register
		}
	}
	if len(ops) >= 1 {
		code.DestAddressing = dst.Mode
		if dst.Mode == AddrRegister || dst.Mode == AddrRegisterIndirect {
			code.DestRegister = dst.Register
		}
	}

	primaryIC := *ic
	shared := len(ops) == 2 && isRegisterLike(src.Mode) && isRegisterLike(dst.Mode)

	length := 1
	*ic++

	switch {
	case len(ops) == 0:
		// length stays 1
	case shared:
		word := DataWord{ARE: AREAbsolute, Data: (src.Register << 3) | (dst.Register << 6)}
		prog.setCode(*ic, dataSlot(word))
		*ic++
		length = 2
	case len(ops) == 1:
		length += allocateOperandFollowOn(prog, dst, ic)
	case len(ops) == 2:
		length += allocateOperandFollowOn(prog, src, ic)
		length += allocateOperandFollowOn(prog, dst, ic)
	}

	prog.setCode(primaryIC, codeSlot(code, length))
	prog.instr[prog.icIndex(primaryIC)] = instrRecord{Operands: ops, Pos: pos}
}

// allocateOperandFollowOn allocates and, where possible, fills the
// follow-on word for a single operand: Immediate is filled now, Direct is
// left nil for the second pass to fill in. A Register or RegisterIndirect
// operand contributes no follow-on of its own here — its value already
// lives in the primary word's SrcRegister/DestRegister field, set by the
// caller before this runs. The only place a register value occupies a
// follow-on word is the shared word emitted when both operands are
// register-like, handled separately by the caller. It returns how many
// words were consumed (0 or 1).
func allocateOperandFollowOn(prog *Program, op operand, ic *int) int {
	switch op.Mode {
	case AddrImmediate:
		value := op.Imm & 0xFFF
		prog.setCode(*ic, dataSlot(DataWord{ARE: AREAbsolute, Data: value}))
		*ic++
		return 1
	case AddrDirect:
		prog.setCode(*ic, nil)
		*ic++
		return 1
	}
	return 0
}
