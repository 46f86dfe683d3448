package assembler

import "strings"

// skipWhitespace returns the index of the first non-space/non-tab rune in
// s starting at i.
func skipWhitespace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// isAlpha reports whether b is an ASCII letter.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// isAlphanumericStr reports whether every byte of s is alphanumeric.
func isAlphanumericStr(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

// isInt reports whether s is a (possibly signed) run of digits.
func isInt(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isRegisterName reports whether name is one of r0..r7.
func isRegisterName(name string) bool {
	return len(name) == 2 && name[0] == 'r' && name[1] >= '0' && name[1] <= '7'
}

// isRegisterIndirectToken reports whether tok is a register-indirect
// operand token of the form *rN.
func isRegisterIndirectToken(tok string) bool {
	return len(tok) == 3 && tok[0] == '*' && isRegisterName(tok[1:])
}

// isReservedWord reports whether name collides with any opcode mnemonic,
// register name, directive name, or register-indirect token — the exact
// reserved-word set this toolchain rejects as a label name.
func isReservedWord(name string) bool {
	return isOpcodeMnemonic(name) || isRegisterName(name) || isDirectiveName(name) || isRegisterIndirectToken(name)
}

// isValidLabelName validates a candidate label: non-empty, at most
// maxLen characters, starts with a letter, remainder alphanumeric, and
// not a reserved word.
func isValidLabelName(name string, maxLen int) bool {
	if name == "" || len(name) > maxLen {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	if len(name) > 1 && !isAlphanumericStr(name[1:]) {
		return false
	}
	if isReservedWord(name) {
		return false
	}
	return true
}

// findLabel looks for "identifier:" at the start of line (after leading
// whitespace). It returns the label name, the index just past the colon,
// and whether a colon was found at all. If a colon is found but the text
// before it is not a valid label, found is true but valid is false so the
// caller can fail the line.
func findLabel(line string, maxLen int) (name string, afterColon int, found bool, valid bool) {
	i := skipWhitespace(line, 0)
	start := i
	for i < len(line) && line[i] != ':' && line[i] != ' ' && line[i] != '\t' && line[i] != '\n' {
		i++
	}
	if i >= len(line) || line[i] != ':' {
		return "", 0, false, false
	}
	candidate := line[start:i]
	return candidate, i + 1, true, isValidLabelName(candidate, maxLen)
}

// firstToken returns the first whitespace-separated token of s and the
// index immediately after it (not skipping trailing whitespace).
func firstToken(s string) (tok string, end int) {
	i := skipWhitespace(s, 0)
	start := i
	for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' {
		i++
	}
	return s[start:i], i
}

// splitOperands splits a comma-separated operand list, rejecting leading
// commas, trailing commas, and consecutive commas — mirroring the
// source's analyze_operands rules.
func splitOperands(s string) ([]string, error) {
	s = strings.TrimRight(s, " \t\r\n")
	i := skipWhitespace(s, 0)
	s = s[i:]
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, ",") {
		return nil, errLeadingComma
	}
	if strings.HasSuffix(s, ",") {
		return nil, errTrailingComma
	}
	parts := strings.Split(s, ",")
	operands := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, errConsecutiveComma
		}
		operands = append(operands, p)
	}
	return operands, nil
}
