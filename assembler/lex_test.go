package assembler

import "testing"

func TestIsValidLabelName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"X", true},
		{"LBL1", true},
		{"mov", false},       // reserved: opcode mnemonic
		{"r3", false},        // reserved: register name
		{"data", false},      // reserved: directive name
		{"1LBL", false},      // must start with a letter
		{"", false},
		{"has space", false},
		{"thisLabelIsWayTooLongToBeValidAsASymbolName", false}, // > 31 chars
	}
	for _, c := range cases {
		if got := isValidLabelName(c.name, 31); got != c.want {
			t.Errorf("isValidLabelName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindLabel(t *testing.T) {
	name, after, found, valid := findLabel("X: mov #5, r3", 31)
	if !found || !valid || name != "X" {
		t.Fatalf("findLabel() = (%q, %d, %v, %v), want (X, _, true, true)", name, after, found, valid)
	}
	if after != 2 {
		t.Errorf("findLabel() afterColon = %d, want 2", after)
	}

	_, _, found, _ = findLabel("mov #5, r3", 31)
	if found {
		t.Error("findLabel() should report not-found when there is no colon")
	}

	_, _, found, valid = findLabel("mov: stop", 31)
	if !found || valid {
		t.Error("findLabel() should flag a reserved-word label as found-but-invalid")
	}
}

func TestIsValidLabelNameRespectsConfiguredMaxLen(t *testing.T) {
	if !isValidLabelName("abcdefghij", 10) {
		t.Error("a 10-char label should be valid when maxLen=10")
	}
	if isValidLabelName("abcdefghij", 9) {
		t.Error("a 10-char label should be invalid when maxLen=9")
	}
}

func TestSplitOperands(t *testing.T) {
	ops, err := splitOperands("r1, r2")
	if err != nil || len(ops) != 2 || ops[0] != "r1" || ops[1] != "r2" {
		t.Errorf("splitOperands() = (%v, %v), want ([r1 r2], nil)", ops, err)
	}

	if _, err := splitOperands(",r1"); err != errLeadingComma {
		t.Errorf("splitOperands(leading comma) err = %v, want errLeadingComma", err)
	}
	if _, err := splitOperands("r1,"); err != errTrailingComma {
		t.Errorf("splitOperands(trailing comma) err = %v, want errTrailingComma", err)
	}
	if _, err := splitOperands("r1,,r2"); err != errConsecutiveComma {
		t.Errorf("splitOperands(double comma) err = %v, want errConsecutiveComma", err)
	}

	ops, err = splitOperands("")
	if err != nil || ops != nil {
		t.Errorf("splitOperands(empty) = (%v, %v), want (nil, nil)", ops, err)
	}
}

func TestIsInt(t *testing.T) {
	for _, c := range []struct {
		s    string
		want bool
	}{
		{"7", true}, {"-1", true}, {"+3", true}, {"", false}, {"3a", false}, {"-", false},
	} {
		if got := isInt(c.s); got != c.want {
			t.Errorf("isInt(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}
