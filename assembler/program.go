// Package assembler implements the two-pass translation pipeline: macro
// expansion, a first pass that classifies lines and allocates the code
// and data images, and a second pass that resolves symbol references.
package assembler

import (
	"github.com/noa-levi/asm24/diag"
)

// LineDescriptor is an immutable record of one line of (expanded) source:
// a file identifier, a 1-based line number, and the raw text. Produced by
// the macro expander; consumed by both passes and by the diagnostic
// reporter.
type LineDescriptor struct {
	File string
	Line int
	Text string
}

// Limits are the tunable constants threaded in from configuration, down
// into the passes and the macro expander that actually consume them.
// ImageCapacity sizes the initial code/data image allocation (both
// slices still grow past it if a program needs more; it is a
// preallocation hint, not a hard ceiling).
type Limits struct {
	MaxLineLength    int
	MaxLabelLength   int
	ImageCapacity    int
	ICInit           int
	MacroLineCap     int
	MacroBucketCount int
	WarnUnusedExtern bool
}

// DefaultLimits returns the specification's fixed constants.
func DefaultLimits() Limits {
	return Limits{
		MaxLineLength:    80,
		MaxLabelLength:   31,
		ImageCapacity:    1200,
		ICInit:           100,
		MacroLineCap:     82,
		MacroBucketCount: 100,
		WarnUnusedExtern: true,
	}
}

// Program holds the per-file state the file processor owns: the two
// images and the symbol table. First and second pass borrow this
// mutably, in disjoint phases; output serializers read it at the end.
type Program struct {
	Basename string
	Limits   Limits

	Symbols *SymbolTable

	code []*Slot // indexed by IC - Limits.ICInit
	data []int   // indexed by DC

	icf int
	dcf int

	// instr records, by code-image index of the primary word, the
	// parsed operand list so the second pass need not re-lex raw text
	// (see §9's "replace line-by-line re-parsing" design note; this
	// repo takes the cached-parse-record option).
	instr map[int]instrRecord
}

type instrRecord struct {
	Operands []operand
	Pos      diag.Position
}

func newProgram(basename string, limits Limits) *Program {
	return &Program{
		Basename: basename,
		Limits:   limits,
		Symbols:  NewSymbolTable(),
		code:     make([]*Slot, 0, limits.ImageCapacity),
		data:     make([]int, 0, limits.ImageCapacity),
		instr:    make(map[int]instrRecord),
	}
}

func (p *Program) icIndex(ic int) int { return ic - p.Limits.ICInit }

func (p *Program) ensureCodeCap(ic int) {
	idx := p.icIndex(ic)
	for len(p.code) <= idx {
		p.code = append(p.code, nil)
	}
}

func (p *Program) setCode(ic int, s *Slot) {
	p.ensureCodeCap(ic)
	p.code[p.icIndex(ic)] = s
}

func (p *Program) getCode(ic int) *Slot {
	idx := p.icIndex(ic)
	if idx < 0 || idx >= len(p.code) {
		return nil
	}
	return p.code[idx]
}

// ICF reports the final instruction counter (one past the last
// code-image slot).
func (p *Program) ICF() int { return p.icf }

// DCF reports the final data counter.
func (p *Program) DCF() int { return p.dcf }

// CodeSlots returns the code image in ascending-address order.
func (p *Program) CodeSlots() []*Slot { return p.code }

// DataWords returns the data image in ascending-address order.
func (p *Program) DataWords() []int { return p.data }

// Result is what Assemble returns: the built program (valid only when OK
// is true) and the macro-expanded source (always produced, used to write
// the intermediate .am stream regardless of success).
type Result struct {
	Program  *Program
	Expanded []string
	OK       bool
}

// Assemble runs the full three-stage pipeline against one file's raw
// source lines: macro expansion, first pass, second pass. Per the
// resource model, errors never abort a pass early — every line is
// visited, diagnostics accumulate, and Result.OK reflects whether any
// error-severity diagnostic was reported anywhere in the run.
func Assemble(filename, basename string, rawLines []string, limits Limits, rep *diag.Recorder) Result {
	expanded := expandMacros(filename, rawLines, limits.MacroLineCap, limits.MacroBucketCount, rep)

	prog := newProgram(basename, limits)

	descs := make([]LineDescriptor, len(expanded))
	for i, text := range expanded {
		descs[i] = LineDescriptor{File: filename, Line: i + 1, Text: text}
	}

	runFirstPass(prog, descs, rep)
	runSecondPass(prog, descs, rep)
	if limits.WarnUnusedExtern {
		warnUnusedExterns(prog, descs, rep)
	}

	return Result{Program: prog, Expanded: expanded, OK: !rep.Failed()}
}

// warnUnusedExterns reports an advisory warning for every External
// declaration with no recorded ExternalReference use site. This is the
// original_source-supplemented feature described in SPEC_FULL.md: it
// changes no output byte, only adds a warning diagnostic.
func warnUnusedExterns(prog *Program, descs []LineDescriptor, rep *diag.Recorder) {
	pos := diag.Position{Filename: prog.Basename + ".as", Line: 0}
	if len(descs) > 0 {
		pos.Filename = descs[0].File
	}
	for _, name := range prog.Symbols.Names(KindExternal) {
		if !prog.Symbols.Has(name, KindExternalReference) {
			rep.Warnf(pos, "extern %s is never referenced", name)
		}
	}
}
