package assembler

import (
	"strings"

	"github.com/noa-levi/asm24/diag"
)

// macroTable is a bucketed mapping from macro name to its captured body,
// grounded on macr.c's hash-bucketed definition table. Go's map already
// gives O(1) lookup; the bucket/hash machinery is kept only so the
// lookup structure textually matches the specified polynomial hash
// rather than relying on Go's internal map hash — the hash value itself
// is not a contract (§9), so it only gates how names are bucketed
// in-memory, never the stored body.
type macroTable struct {
	buckets [][]macroEntry
}

type macroEntry struct {
	name string
	body []string
}

func newMacroTable(bucketCount int) *macroTable {
	return &macroTable{buckets: make([][]macroEntry, bucketCount)}
}

// polynomialHash computes h = h*31 + c (mod n), the standard hash named
// in §4.1.
func polynomialHash(name string, n int) int {
	h := 0
	for i := 0; i < len(name); i++ {
		h = (h*31 + int(name[i])) % n
	}
	if h < 0 {
		h += n
	}
	return h
}

func (m *macroTable) define(name string, body []string) {
	b := polynomialHash(name, len(m.buckets))
	m.buckets[b] = append(m.buckets[b], macroEntry{name: name, body: body})
}

func (m *macroTable) lookup(name string) ([]string, bool) {
	b := polynomialHash(name, len(m.buckets))
	for _, e := range m.buckets[b] {
		if e.name == name {
			return e.body, true
		}
	}
	return nil, false
}

// expandMacros performs the textual pre-pass: it reads lines, captures
// macr/endmacr bodies, and substitutes macro-name lines with their
// captured bodies. Nested or recursive macro definitions are neither
// detected nor supported (§9 open question; undefined behavior if
// attempted) — grounded on macr.c's macro() function, which has no
// recursion guard either. lineCap and bucketCount come from
// configuration (see Limits.MacroLineCap/MacroBucketCount).
func expandMacros(filename string, lines []string, lineCap, bucketCount int, rep *diag.Recorder) []string {
	table := newMacroTable(bucketCount)
	var out []string

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "macr ") || trimmed == "macr" {
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "macr"))
			var body []string
			overflowed := false
			i++
			for i < len(lines) {
				bodyLine := lines[i]
				if strings.HasPrefix(strings.TrimSpace(bodyLine), "endmacr") {
					i++
					break
				}
				if len(body) >= lineCap {
					if !overflowed {
						rep.Warnf(diag.Position{Filename: filename, Line: i + 1},
							"macro %s body exceeds %d lines; remaining lines dropped", name, lineCap)
						overflowed = true
					}
				} else {
					body = append(body, bodyLine)
				}
				i++
			}
			table.define(name, body)
			continue
		}

		tok, _ := firstToken(line)
		if body, ok := table.lookup(tok); ok {
			out = append(out, body...)
			i++
			continue
		}

		out = append(out, line)
		i++
	}

	return out
}
