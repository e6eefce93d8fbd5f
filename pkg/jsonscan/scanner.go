package jsonscan

// DefaultMaxDepth bounds array and object nesting for the package-level
// functions.
const DefaultMaxDepth = 200

// Scanner holds scan limits. The zero value uses DefaultMaxDepth.
type Scanner struct {
	// MaxDepth is the deepest array/object nesting accepted. Values <= 0
	// select DefaultMaxDepth.
	MaxDepth int
}

var std = &Scanner{MaxDepth: DefaultMaxDepth}

// Default returns the scanner used by the package-level functions.
func Default() *Scanner { return std }

func (s *Scanner) maxDepth() int {
	if s == nil || s.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return s.MaxDepth
}

// at returns the byte at pos, or 0 past the end of buf.
func at(buf []byte, pos int) byte {
	if pos < 0 || pos >= len(buf) {
		return 0
	}
	return buf[pos]
}

func isWhitespace(c byte) bool { return c != 0 && c <= ' ' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// SkipWhitespace returns the first cursor at or after pos that is not
// whitespace.
func SkipWhitespace(buf []byte, pos int) int {
	for isWhitespace(at(buf, pos)) {
		pos++
	}
	return pos
}

func state(st *State) *State {
	if st == nil {
		return new(State)
	}
	return st
}

// ValueLength returns the length of the value starting at pos, or 0 if no
// valid value starts there.
func (s *Scanner) ValueLength(buf []byte, pos int, st *State) int {
	return s.valueLength(buf, pos, state(st), 0)
}

func (s *Scanner) valueLength(buf []byte, pos int, st *State, depth int) int {
	var n int
	switch c := at(buf, pos); {
	case c == '[':
		n = s.arrayLength(buf, pos, st, depth)
	case c == '{':
		n = s.objectLength(buf, pos, st, depth)
	case c == '"':
		n = stringLength(buf, pos, st)
	case isDigit(c) || c == '.':
		n = numberLength(buf, pos, st)
	default:
		if hasUpper(buf, pos, 5) {
			fail(st, StateValueCase)
			return 0
		}
		n = literalLength(buf, pos)
	}
	if n == 0 {
		fail(st, StateValueInvalid)
	}
	return n
}

func hasUpper(buf []byte, pos, n int) bool {
	for i := 0; i < n; i++ {
		c := at(buf, pos+i)
		if c == 0 {
			return false
		}
		if isUpper(c) {
			return true
		}
	}
	return false
}

var literals = [...]string{"true", "false", "null"}

func literalLength(buf []byte, pos int) int {
	for _, lit := range literals {
		if hasPrefix(buf, pos, lit) {
			return len(lit)
		}
	}
	return 0
}

func hasPrefix(buf []byte, pos int, lit string) bool {
	if pos < 0 || len(buf)-pos < len(lit) {
		return false
	}
	return string(buf[pos:pos+len(lit)]) == lit
}

// NumberLength returns the length of the unsigned decimal number at pos.
func (s *Scanner) NumberLength(buf []byte, pos int, st *State) int {
	return numberLength(buf, pos, state(st))
}

func numberLength(buf []byte, pos int, st *State) int {
	dot := false
	i := pos
	for ; ; i++ {
		c := at(buf, i)
		if c == '.' {
			if i == pos {
				fail(st, StateLeadingDecimal)
				return 0
			}
			if dot {
				fail(st, StateTooManyDecimals)
				return 0
			}
			dot = true
			continue
		}
		if !isDigit(c) {
			break
		}
	}
	return i - pos
}

// StringLength returns the length of the quoted string at pos, quotes
// included. An unterminated string reports length 1.
func (s *Scanner) StringLength(buf []byte, pos int, st *State) int {
	return stringLength(buf, pos, state(st))
}

func stringLength(buf []byte, pos int, st *State) int {
	if at(buf, pos) != '"' {
		fail(st, StateStringMissingStart)
		return 0
	}
	for i := pos + 1; ; i++ {
		switch at(buf, i) {
		case 0:
			fail(st, StateStringMissingEnd)
			return 1
		case '"':
			return i - pos + 1
		case '\\':
			i++
			if at(buf, i) == 0 {
				fail(st, StateStringMissingEscapedChar)
				return 1
			}
		}
	}
}

// ArrayLength returns the length of the array at pos, brackets included. An
// unterminated array reports length 1.
func (s *Scanner) ArrayLength(buf []byte, pos int, st *State) int {
	return s.arrayLength(buf, pos, state(st), 0)
}

func (s *Scanner) arrayLength(buf []byte, pos int, st *State, depth int) int {
	if at(buf, pos) != '[' {
		fail(st, StateArrayMissingStart)
		return 0
	}
	if depth >= s.maxDepth() {
		fail(st, StateDepthExceeded)
		return 0
	}
	for i := pos + 1; ; {
		switch at(buf, i) {
		case 0:
			fail(st, StateArrayMissingEnd)
			return 1
		case ']':
			return i - pos + 1
		}
		var inner State
		next := s.skip(buf, i, &inner, depth+1, true)
		if inner != StateOK || next == i {
			fail(st, inner)
			fail(st, StateArrayMissingEnd)
			return 1
		}
		i = next
	}
}

// ObjectLength returns the length of the object at pos, braces included. An
// unterminated object reports length 1.
func (s *Scanner) ObjectLength(buf []byte, pos int, st *State) int {
	return s.objectLength(buf, pos, state(st), 0)
}

func (s *Scanner) objectLength(buf []byte, pos int, st *State, depth int) int {
	if at(buf, pos) != '{' {
		fail(st, StateObjectMissingStart)
		return 0
	}
	if depth >= s.maxDepth() {
		fail(st, StateDepthExceeded)
		return 0
	}
	for i := pos + 1; ; {
		switch at(buf, i) {
		case 0:
			fail(st, StateObjectMissingEnd)
			return 1
		case '}':
			return i - pos + 1
		}
		var inner State
		next := s.skip(buf, i, &inner, depth+1, false)
		if inner != StateOK || next == i {
			fail(st, inner)
			fail(st, StateObjectMissingEnd)
			return 1
		}
		i = next
	}
}

// Skip advances past one structural step at pos: a whole array or object, a
// string together with its follower check, a ':' and the value after it, a
// ',' or a run of whitespace. On failure it returns pos unchanged.
func (s *Scanner) Skip(buf []byte, pos int, st *State) int {
	return s.skip(buf, pos, state(st), 0, false)
}

// skip implements Skip. Inside arrays, elements may also be bare numbers or
// literals, so a comma may be followed by any value start.
func (s *Scanner) skip(buf []byte, pos int, st *State, depth int, inArray bool) int {
	c := at(buf, pos)
	switch {
	case c == '[' || c == '{':
		var n int
		if c == '[' {
			n = s.arrayLength(buf, pos, st, depth)
		} else {
			n = s.objectLength(buf, pos, st, depth)
		}
		if n < 2 {
			return pos
		}
		return SkipWhitespace(buf, pos+n)

	case c == '"':
		n := stringLength(buf, pos, st)
		if n < 2 {
			return pos
		}
		next := SkipWhitespace(buf, pos+n)
		switch at(buf, next) {
		case ',', ']', '}', ':', 0:
			return next
		}
		fail(st, StateStringInvalidFollower)
		return pos

	case c == ':':
		next := SkipWhitespace(buf, pos+1)
		return s.skipValue(buf, pos, next, st, depth)

	case c == ',':
		next := SkipWhitespace(buf, pos+1)
		switch f := at(buf, next); {
		case f == '{' || f == '[' || f == '"':
			return next
		case inArray && isScalarStart(f):
			return next
		}
		fail(st, StateCommaInvalidFollower)
		return pos

	case isWhitespace(c):
		return SkipWhitespace(buf, pos)

	case inArray && isScalarStart(c):
		return s.skipValue(buf, pos, pos, st, depth)
	}
	fail(st, StateUnexpectedChar)
	return pos
}

// skipValue skips the value at valuePos and its trailing whitespace, then
// checks the follower. On failure it returns origin, including when the
// value reports a partial length for an unterminated string or container.
func (s *Scanner) skipValue(buf []byte, origin, valuePos int, st *State, depth int) int {
	var inner State
	n := s.valueLength(buf, valuePos, &inner, depth)
	if inner != StateOK || n == 0 {
		fail(st, inner)
		return origin
	}
	next := SkipWhitespace(buf, valuePos+n)
	switch at(buf, next) {
	case ',', ']', '}', 0:
		return next
	}
	fail(st, StateValueInvalidFollower)
	return origin
}

func isScalarStart(c byte) bool {
	return isDigit(c) || c == '.' || (c >= 'a' && c <= 'z') || isUpper(c)
}

// ValueLength measures a value with the default scanner.
func ValueLength(buf []byte, pos int, st *State) int { return std.ValueLength(buf, pos, st) }

// NumberLength measures a number with the default scanner.
func NumberLength(buf []byte, pos int, st *State) int { return std.NumberLength(buf, pos, st) }

// StringLength measures a string with the default scanner.
func StringLength(buf []byte, pos int, st *State) int { return std.StringLength(buf, pos, st) }

// ArrayLength measures an array with the default scanner.
func ArrayLength(buf []byte, pos int, st *State) int { return std.ArrayLength(buf, pos, st) }

// ObjectLength measures an object with the default scanner.
func ObjectLength(buf []byte, pos int, st *State) int { return std.ObjectLength(buf, pos, st) }

// Skip takes one structural step with the default scanner.
func Skip(buf []byte, pos int, st *State) int { return std.Skip(buf, pos, st) }
