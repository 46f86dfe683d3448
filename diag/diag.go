// Package diag provides the diagnostic-reporting collaborator used by the
// assembler passes. Diagnostics formatting is treated as an external
// concern: passes call Reporter.Report and never touch stderr directly.
package diag

import (
	"fmt"
	"io"
)

// Position identifies a single source line within a single file.
type Position struct {
	Filename string
	Line     int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// Severity distinguishes a hard error (abandons the line, fails the pass)
// from an advisory warning (does not affect output generation).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Kind classifies a diagnostic by the taxonomy in the error-handling
// design: Lexical, Syntactic, Semantic, Structural, Resource.
type Kind int

const (
	KindLexical Kind = iota
	KindSyntactic
	KindSemantic
	KindStructural
	KindResource
)

// Diagnostic is a single reported finding.
type Diagnostic struct {
	Pos      Position
	Severity Severity
	Kind     Kind
	Message  string
}

// Reporter is the single-method interface passes depend on instead of
// writing to stderr themselves.
type Reporter interface {
	Report(d Diagnostic)
}

// ConsoleReporter writes errors to an io.Writer (normally os.Stderr) using
// the exact format mandated for this toolchain: "Error In <file>:<line>:
// <message>". Warnings use a softer "Warning In ..." prefix since the
// specification only fixes the error format.
type ConsoleReporter struct {
	Out io.Writer
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out}
}

func (c *ConsoleReporter) Report(d Diagnostic) {
	switch d.Severity {
	case SeverityWarning:
		fmt.Fprintf(c.Out, "Warning In %s: %s\n", d.Pos, d.Message)
	default:
		fmt.Fprintf(c.Out, "Error In %s: %s\n", d.Pos, d.Message)
	}
}

// Recorder wraps a Reporter and tracks whether any error-severity
// diagnostic has been reported, giving passes the boolean success flag
// the resource model calls for without requiring them to track it by
// hand.
type Recorder struct {
	Reporter
	failed bool
}

func NewRecorder(r Reporter) *Recorder {
	return &Recorder{Reporter: r}
}

func (r *Recorder) Report(d Diagnostic) {
	if d.Severity == SeverityError {
		r.failed = true
	}
	r.Reporter.Report(d)
}

// Errorf reports a formatted error-severity diagnostic at pos.
func (r *Recorder) Errorf(pos Position, kind Kind, format string, args ...any) {
	r.Report(Diagnostic{Pos: pos, Severity: SeverityError, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Warnf reports a formatted warning-severity diagnostic at pos.
func (r *Recorder) Warnf(pos Position, format string, args ...any) {
	r.Report(Diagnostic{Pos: pos, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Failed reports whether any error-severity diagnostic was recorded.
func (r *Recorder) Failed() bool {
	return r.failed
}
