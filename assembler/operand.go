package assembler

import (
	"fmt"
	"strconv"
)

// operand is a single parsed instruction operand: its addressing mode and
// whichever payload that mode carries.
type operand struct {
	Raw      string
	Mode     Addressing
	Register int    // valid when Mode is Register or RegisterIndirect
	Imm      int    // valid when Mode is Immediate
	Name     string // valid when Mode is Direct
}

// classifyOperand determines an operand's addressing mode from its raw
// token, grounded on code.c's get_addressing_type: "#"+int is Immediate,
// "*rN" is RegisterIndirect, "rN" is Register, a valid label is Direct,
// anything else is a lexical error.
func classifyOperand(tok string) (operand, error) {
	switch {
	case len(tok) > 1 && tok[0] == '#':
		numStr := tok[1:]
		if !isInt(numStr) {
			return operand{}, fmt.Errorf("invalid immediate value %q", tok)
		}
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return operand{}, fmt.Errorf("invalid immediate value %q", tok)
		}
		return operand{Raw: tok, Mode: AddrImmediate, Imm: n}, nil

	case isRegisterIndirectToken(tok):
		return operand{Raw: tok, Mode: AddrRegisterIndirect, Register: int(tok[2] - '0')}, nil

	case isRegisterName(tok):
		return operand{Raw: tok, Mode: AddrRegister, Register: int(tok[1] - '0')}, nil

	case isValidIdentifierToken(tok):
		return operand{Raw: tok, Mode: AddrDirect, Name: tok}, nil

	default:
		return operand{}, fmt.Errorf("invalid operand %q", tok)
	}
}

// isValidIdentifierToken reports whether tok could name a symbol: begins
// with a letter, remainder alphanumeric. Unlike isValidLabelName, it does
// not reject reserved words here — Table A validation rejects any
// resulting addressing-mode mismatch, and a direct operand naming a
// mnemonic is simply an undefined symbol at resolution time.
func isValidIdentifierToken(tok string) bool {
	if tok == "" || !isAlpha(tok[0]) {
		return false
	}
	return len(tok) == 1 || isAlphanumericStr(tok[1:])
}

// isRegisterLike reports whether a is "register-like" (Register or
// RegisterIndirect). When both operands are register-like, the first pass
// shares a single follow-on word between them.
func isRegisterLike(a Addressing) bool {
	return a == AddrRegister || a == AddrRegisterIndirect
}
