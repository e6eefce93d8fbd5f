package jsonscan

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

type lengthTestCase struct {
	label string
	input string
	want  int
	state State
}

func runLengthCases(t *testing.T, fn func([]byte, int, *State) int, cases []lengthTestCase) {
	t.Helper()
	for _, tt := range cases {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			var st State
			got := fn([]byte(tt.input), 0, &st)
			if got != tt.want {
				t.Errorf("length = %d, want %d", got, tt.want)
			}
			if st != tt.state {
				t.Errorf("state = %s, want %s", st, tt.state)
			}
		})
	}
}

func TestNumberLength(t *testing.T) {
	runLengthCases(t, NumberLength, []lengthTestCase{
		{"integer", "123", 3, StateOK},
		{"decimal", "12.5,", 4, StateOK},
		{"trailing dot", "7.]", 2, StateOK},
		{"stops at non digit", "42abc", 2, StateOK},
		{"leading decimal", ".5", 0, StateLeadingDecimal},
		{"too many decimals", "12.3.4", 0, StateTooManyDecimals},
		{"not a number", "abc", 0, StateOK},
	})
}

func TestStringLength(t *testing.T) {
	runLengthCases(t, StringLength, []lengthTestCase{
		{"empty", `""`, 2, StateOK},
		{"simple", `"abc" tail`, 5, StateOK},
		{"escaped quote", `"a\"b"`, 6, StateOK},
		{"escaped backslash", `"a\\"`, 5, StateOK},
		{"missing start", `abc"`, 0, StateStringMissingStart},
		{"missing end", `"abc`, 1, StateStringMissingEnd},
		{"dangling escape", `"abc\`, 1, StateStringMissingEscapedChar},
		{"nul terminates", "\"ab\x00c\"", 1, StateStringMissingEnd},
	})
}

func TestStringLengthQuotedRoundTrip(t *testing.T) {
	f := func(s string) bool {
		s = strings.Map(func(r rune) rune {
			switch r {
			case '"', '\\', 0:
				return 'x'
			}
			return r
		}, s)
		var st State
		return StringLength([]byte(`"`+s+`"`), 0, &st) == len(s)+2 && st == StateOK
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestArrayLength(t *testing.T) {
	runLengthCases(t, ArrayLength, []lengthTestCase{
		{"numbers", "[1,2,3]", 7, StateOK},
		{"unterminated", "[1,2,3", 1, StateArrayMissingEnd},
		{"empty", "[]", 2, StateOK},
		{"whitespace", "[ 1 , 2 ]", 9, StateOK},
		{"strings", `["a", "b"]`, 10, StateOK},
		{"nested", `[[1],{"a":2}]`, 13, StateOK},
		{"literals", "[true,false,null]", 17, StateOK},
		{"missing start", "1,2]", 0, StateArrayMissingStart},
		{"missing separator", "[1 2]", 1, StateValueInvalidFollower},
		{"uppercase literal", "[True]", 1, StateValueCase},
		{"unterminated element", "[[1,]", 1, StateCommaInvalidFollower},
		{"unterminated element object", `[{"a":1]`, 1, StateUnexpectedChar},
	})
}

func TestObjectLength(t *testing.T) {
	runLengthCases(t, ObjectLength, []lengthTestCase{
		{"empty", "{}", 2, StateOK},
		{"members", `{"a":1,"b":"x"}`, 15, StateOK},
		{"nested", `{"a":{"b":[1,2]}}`, 17, StateOK},
		{"spaced", `{ "a" : 1 }`, 11, StateOK},
		{"missing start", `"a":1}`, 0, StateObjectMissingStart},
		{"unterminated", `{"a":1`, 1, StateObjectMissingEnd},
		{"bad value", `{"a":nope}`, 1, StateValueInvalid},
		{"bad comma follower", `{"a":1, 2}`, 1, StateCommaInvalidFollower},
		{"unterminated member array", `{"a":[}`, 1, StateUnexpectedChar},
		{"unterminated member string", `{"a":"x}`, 1, StateStringMissingEnd},
	})
}

func TestValueLength(t *testing.T) {
	runLengthCases(t, ValueLength, []lengthTestCase{
		{"true", "true,", 4, StateOK},
		{"false", "false", 5, StateOK},
		{"null", "null}", 4, StateOK},
		{"number", "3.14", 4, StateOK},
		{"string", `"hi"`, 4, StateOK},
		{"array", "[1]", 3, StateOK},
		{"object", "{}", 2, StateOK},
		{"uppercase", "NULL", 0, StateValueCase},
		{"uppercase late", "nulL", 0, StateValueCase},
		{"unknown literal", "nil", 0, StateValueInvalid},
		{"number error kept", "1.2.3", 0, StateTooManyDecimals},
		{"leading decimal", ".5", 0, StateLeadingDecimal},
	})
}

func TestSkip(t *testing.T) {
	tests := []struct {
		label string
		input string
		pos   int
		want  int
		state State
	}{
		{"array", "[1] ,", 0, 4, StateOK},
		{"object", "{} }", 0, 3, StateOK},
		{"string before colon", `"k" :1`, 0, 4, StateOK},
		{"string before end", `"k"`, 0, 3, StateOK},
		{"string bad follower", `"k" x`, 0, 0, StateStringInvalidFollower},
		{"colon value", `: 12 ,`, 0, 5, StateOK},
		{"colon value at end", `:true`, 0, 5, StateOK},
		{"colon bad value", `: nope`, 0, 0, StateValueInvalid},
		{"colon bad follower", `:1 "x"`, 0, 0, StateValueInvalidFollower},
		{"comma", `, "b"`, 0, 2, StateOK},
		{"comma bad follower", `, 1`, 0, 0, StateCommaInvalidFollower},
		{"whitespace", "  \t\nx", 0, 4, StateOK},
		{"unexpected", "x", 0, 0, StateUnexpectedChar},
		{"end of input", "", 0, 0, StateUnexpectedChar},
		{"unterminated array", "[1", 0, 0, StateArrayMissingEnd},
		{"colon unterminated object", ":{]", 0, 0, StateUnexpectedChar},
		{"colon unterminated array", ": [ }", 0, 0, StateUnexpectedChar},
		{"colon unterminated string", `:"ab`, 0, 0, StateStringMissingEnd},
		{"object with unterminated member", `{"a":[}`, 0, 0, StateUnexpectedChar},
		{"mid buffer", `ab"c"]`, 2, 5, StateOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			var st State
			got := Skip([]byte(tt.input), tt.pos, &st)
			if got != tt.want {
				t.Errorf("Skip = %d, want %d", got, tt.want)
			}
			if st != tt.state {
				t.Errorf("state = %s, want %s", st, tt.state)
			}
			if st != StateOK && got != tt.pos {
				t.Errorf("cursor moved on error: %d != %d", got, tt.pos)
			}
		})
	}
}

var scanTokens = []string{
	"[", "]", "{", "}", ":", ",", " ", `"a"`, `"b`, "1", "2.5", "true", "Nope", "x", `\`,
}

// A failed step never moves the cursor, and a failed container measure never
// reports more than its opening byte.
func TestFailureKeepsCursor(t *testing.T) {
	f := func(picks []uint8, start uint8) bool {
		var b strings.Builder
		for _, p := range picks {
			b.WriteString(scanTokens[int(p)%len(scanTokens)])
		}
		buf := []byte(b.String())
		pos := 0
		if len(buf) > 0 {
			pos = int(start) % len(buf)
		}

		var st State
		if next := Skip(buf, pos, &st); st != StateOK && next != pos {
			t.Logf("Skip(%q, %d) = %d, %s", buf, pos, next, st)
			return false
		}
		for _, measure := range []func([]byte, int, *State) int{ValueLength, ArrayLength, ObjectLength} {
			st = StateOK
			if n := measure(buf, pos, &st); st != StateOK && n > 1 {
				t.Logf("measure(%q, %d) = %d, %s", buf, pos, n, st)
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 5000}); err != nil {
		t.Error(err)
	}
}

func TestScanIsPure(t *testing.T) {
	inputs := []string{`{"a":[1,2,{"b":"c"}]}`, `[1,2`, `{"a":1.2.3}`, `"x\"y"`}
	for _, in := range inputs {
		buf := []byte(in)
		var st1, st2 State
		n1 := ValueLength(buf, 0, &st1)
		n2 := ValueLength(buf, 0, &st2)
		if n1 != n2 || st1 != st2 {
			t.Errorf("%q: (%d, %s) then (%d, %s)", in, n1, st1, n2, st2)
		}
		if string(buf) != in {
			t.Errorf("%q: buffer modified", in)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 5) + strings.Repeat("]", 5)

	s := &Scanner{MaxDepth: 5}
	var st State
	if n := s.ArrayLength([]byte(deep), 0, &st); n != len(deep) || st != StateOK {
		t.Fatalf("depth 5 = (%d, %s), want (%d, ok)", n, st, len(deep))
	}

	s = &Scanner{MaxDepth: 4}
	st = StateOK
	s.ArrayLength([]byte(deep), 0, &st)
	if st != StateDepthExceeded {
		t.Fatalf("state = %s, want %s", st, StateDepthExceeded)
	}

	hostile := strings.Repeat(`{"a":`, DefaultMaxDepth+1)
	st = StateOK
	if n := ObjectLength([]byte(hostile), 0, &st); n != 1 || st != StateDepthExceeded {
		t.Fatalf("hostile = (%d, %s)", n, st)
	}
}

func TestNilState(t *testing.T) {
	if n := StringLength([]byte("nope"), 0, nil); n != 0 {
		t.Fatalf("StringLength = %d, want 0", n)
	}
}

func TestStateErr(t *testing.T) {
	if err := StateOK.Err(3); err != nil {
		t.Fatalf("StateOK.Err = %v, want nil", err)
	}
	err := StateArrayMissingEnd.Err(7)
	if err.Error() != "jsonscan: array-missing-end at offset 7" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, &Error{State: StateArrayMissingEnd}) {
		t.Error("errors.Is did not match on state")
	}
	if State(99).String() != "unknown" {
		t.Errorf("String() = %q, want unknown", State(99).String())
	}
}
