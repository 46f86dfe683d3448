package assembler

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/noa-levi/asm24/diag"
)

func newTestRecorder(buf *bytes.Buffer) *diag.Recorder {
	return diag.NewRecorder(diag.NewConsoleReporter(buf))
}

func TestExpandMacrosBasic(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestRecorder(&buf)

	src := []string{
		"macr m",
		"mov #1, r1",
		"add r1, r2",
		"endmacr",
		"m",
		"stop",
	}

	got := expandMacros("p.as", src, 82, 100, rep)
	want := []string{"mov #1, r1", "add r1, r2", "stop"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandMacros() = %v, want %v", got, want)
	}
	if rep.Failed() {
		t.Errorf("expandMacros() should not fail on valid input")
	}
}

func TestExpandMacrosNoDirectivesPassThrough(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestRecorder(&buf)

	src := []string{"mov r1, r2", "stop"}
	got := expandMacros("p.as", src, 82, 100, rep)

	if !reflect.DeepEqual(got, src) {
		t.Errorf("expandMacros() = %v, want unchanged %v", got, src)
	}
}

func TestExpandMacrosOverflowReportedAndDropped(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestRecorder(&buf)

	const lineCap = 82
	body := make([]string, 0, lineCap+5)
	for i := 0; i < lineCap+5; i++ {
		body = append(body, "stop")
	}
	src := append([]string{"macr big"}, body...)
	src = append(src, "endmacr", "big")

	got := expandMacros("p.as", src, lineCap, 100, rep)

	if len(got) != lineCap {
		t.Errorf("expandMacros() kept %d lines, want %d", len(got), lineCap)
	}
	if buf.Len() == 0 {
		t.Error("expected overflow to be reported")
	}
	if rep.Failed() {
		t.Error("overflow is a warning, not a failure")
	}
}

func TestExpandMacrosUndefinedNameIsPassthrough(t *testing.T) {
	var buf bytes.Buffer
	rep := newTestRecorder(&buf)

	src := []string{"notamacro r1, r2"}
	got := expandMacros("p.as", src, 82, 100, rep)

	if !reflect.DeepEqual(got, src) {
		t.Errorf("expandMacros() = %v, want unchanged %v", got, src)
	}
}
