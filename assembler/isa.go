package assembler

// opcodeInfo is one row of the mnemonic lookup table: the resolved
// (opcode, funct) pair plus the per-opcode addressing allow-lists used to
// validate Table A.
type opcodeInfo struct {
	Opcode  int
	Funct   int
	SrcAddr []Addressing
	DstAddr []Addressing
}

var allTwoOperandDst = []Addressing{AddrDirect, AddrRegisterIndirect, AddrRegister}
var allOperandModes = []Addressing{AddrImmediate, AddrDirect, AddrRegisterIndirect, AddrRegister}
var directIndirect = []Addressing{AddrDirect, AddrRegisterIndirect}

// opcodeTable is fixed, order-insensitive data: mnemonic -> opcode/funct
// plus Table A's addressing allow-lists. Absence from this map is the
// "unknown mnemonic" case.
var opcodeTable = map[string]opcodeInfo{
	"mov": {Opcode: 0, Funct: 0, SrcAddr: allOperandModes, DstAddr: allTwoOperandDst},
	"cmp": {Opcode: 1, Funct: 0, SrcAddr: allOperandModes, DstAddr: allOperandModes},
	"add": {Opcode: 2, Funct: 1, SrcAddr: allOperandModes, DstAddr: allTwoOperandDst},
	"sub": {Opcode: 2, Funct: 2, SrcAddr: allOperandModes, DstAddr: allTwoOperandDst},
	"lea": {Opcode: 4, Funct: 0, SrcAddr: directIndirect, DstAddr: allTwoOperandDst},

	"clr": {Opcode: 5, Funct: 1, SrcAddr: nil, DstAddr: allTwoOperandDst},
	"not": {Opcode: 5, Funct: 2, SrcAddr: nil, DstAddr: allTwoOperandDst},
	"inc": {Opcode: 5, Funct: 3, SrcAddr: nil, DstAddr: allTwoOperandDst},
	"dec": {Opcode: 5, Funct: 4, SrcAddr: nil, DstAddr: allTwoOperandDst},

	"jmp": {Opcode: 9, Funct: 1, SrcAddr: nil, DstAddr: directIndirect},
	"bne": {Opcode: 9, Funct: 2, SrcAddr: nil, DstAddr: directIndirect},
	"red": {Opcode: 11, Funct: 0, SrcAddr: nil, DstAddr: allTwoOperandDst},
	"prn": {Opcode: 12, Funct: 0, SrcAddr: nil, DstAddr: allOperandModes},
	"jsr": {Opcode: 9, Funct: 3, SrcAddr: nil, DstAddr: directIndirect},

	"rts":  {Opcode: 14, Funct: 0, SrcAddr: nil, DstAddr: nil},
	"stop": {Opcode: 15, Funct: 0, SrcAddr: nil, DstAddr: nil},
}

// arity returns how many operands a mnemonic expects: 0, 1, or 2, derived
// from the opcode's membership in the two/one/zero-operand groups.
func (info opcodeInfo) arity() int {
	switch info.Opcode {
	case 0, 1, 2, 4: // mov, cmp, add/sub, lea: always two operands
		return 2
	case 14, 15: // rts, stop: zero operands
		return 0
	default: // clr/not/inc/dec, jmp/bne/jsr, red, prn: one operand
		return 1
	}
}

func lookupOpcode(mnemonic string) (opcodeInfo, bool) {
	info, ok := opcodeTable[mnemonic]
	return info, ok
}

// isOpcodeMnemonic reports whether name names any instruction, used by
// the reserved-word check in lex.go.
func isOpcodeMnemonic(name string) bool {
	_, ok := opcodeTable[name]
	return ok
}

// directiveKind classifies a directive name; unknownDirective signals
// "not a directive at all".
type directiveKind int

const (
	directiveData directiveKind = iota
	directiveString
	directiveExtern
	directiveEntry
	unknownDirective
)

var directiveNames = map[string]directiveKind{
	"data":   directiveData,
	"string": directiveString,
	"extern": directiveExtern,
	"entry":  directiveEntry,
}

func lookupDirective(name string) directiveKind {
	if d, ok := directiveNames[name]; ok {
		return d
	}
	return unknownDirective
}

func isDirectiveName(name string) bool {
	_, ok := directiveNames[name]
	return ok
}

func addrAllowed(allowed []Addressing, a Addressing) bool {
	for _, x := range allowed {
		if x == a {
			return true
		}
	}
	return false
}
