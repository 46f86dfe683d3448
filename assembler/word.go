package assembler

// Addressing is the operand addressing-mode domain.
type Addressing int

const (
	AddrNone Addressing = iota
	AddrImmediate
	AddrDirect
	AddrRegisterIndirect
	AddrRegister
)

// ARE is the 3-bit tag distinguishing Absolute, Relocatable and External
// encodings carried by every emitted word.
type ARE int

const (
	AREExternal   ARE = 1
	ARERelocatable ARE = 2
	AREAbsolute   ARE = 4
)

// Kind is the closed symbol-kind variant.
type Kind int

const (
	KindCode Kind = iota
	KindData
	KindExternal
	KindExternalReference
	KindEntry
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindData:
		return "data"
	case KindExternal:
		return "external"
	case KindExternalReference:
		return "external-reference"
	case KindEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// CodeWord is the primary word of an instruction: 24 significant bits,
// packed per the code-word layout (ARE 3, funct 5, dest_register 3,
// dest_addressing 2, src_register 3, src_addressing 2, opcode 6).
type CodeWord struct {
	ARE            ARE
	Opcode         int
	Funct          int
	SrcAddressing  Addressing
	SrcRegister    int
	DestAddressing Addressing
	DestRegister   int
}

// Pack renders the code word using the specification's literal packing
// formula. The formula ORs funct into the same bit range as
// dest_addressing, which is a deliberately preserved ambiguity (see
// DESIGN.md's open-question note) rather than a bug to fix here.
func (c CodeWord) Pack() int {
	return (c.Opcode << 10) |
		(addrBits(c.SrcAddressing) << 8) |
		(c.SrcRegister << 6) |
		(addrBits(c.DestAddressing) << 3) |
		(c.DestRegister << 0) |
		(c.Funct << 3) |
		int(c.ARE)
}

// addrBits maps the addressing domain to its 2-bit wire encoding, matching
// the source ordering: Immediate=0, Direct=1, RegisterIndirect=2,
// Register=3. None (an absent operand) also encodes as 0.
func addrBits(a Addressing) int {
	switch a {
	case AddrImmediate:
		return 0
	case AddrDirect:
		return 1
	case AddrRegisterIndirect:
		return 2
	case AddrRegister:
		return 3
	default:
		return 0
	}
}

// DataWord is a 12-bit-payload follow-on word in the code image. The
// .data/.string values of the data image are plain ints, not DataWords.
type DataWord struct {
	ARE  ARE
	Data int
}

// Emit renders the data word for the object listing: the 15
// least-significant bits of the payload, shifted left 3 and OR'd with ARE.
func (d DataWord) Emit() int {
	return ((d.Data & 0x7FFF) << 3) | int(d.ARE)
}

// Slot is the tagged union occupying one code-image position: either a
// code word (IsCode true, Length set on the instruction's primary word)
// or a data word (IsCode false, Length always 0 by convention). A nil
// *Slot in the code image represents a gap awaiting second-pass fill.
type Slot struct {
	IsCode bool
	Code   CodeWord
	Data   DataWord
	Length int
}

func codeSlot(c CodeWord, length int) *Slot {
	return &Slot{IsCode: true, Code: c, Length: length}
}

func dataSlot(d DataWord) *Slot {
	return &Slot{IsCode: false, Data: d}
}

// EmitValue returns the value written to the object listing for this
// slot: the full packed instruction word for code slots, the 15-LSB data
// encoding for data slots.
func (s *Slot) EmitValue() int {
	if s.IsCode {
		return s.Code.Pack()
	}
	return s.Data.Emit()
}
