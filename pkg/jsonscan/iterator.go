package jsonscan

// Invalid is the array index that requests the first element, and the index
// returned once an array is exhausted.
const Invalid = -1

// NextArrayIndex steps through the elements of an array. The first call
// passes the cursor just past '[' and Invalid; it returns the cursor of
// element 0 and index 0 without moving past anything. Each later call passes
// the previous result and returns the next element's cursor and index.
// Invalid is returned at ']', at the end of input, or on error, with the
// cursor at len(buf) for errors.
func (s *Scanner) NextArrayIndex(buf []byte, pos, index int, st *State) (next, newIndex int) {
	st = state(st)
	pos = SkipWhitespace(buf, pos)
	switch at(buf, pos) {
	case ']', 0:
		return pos, Invalid
	}
	if index == Invalid {
		return pos, 0
	}
	after := s.skip(buf, pos, st, 0, true)
	if after == pos {
		return len(buf), Invalid
	}
	switch at(buf, after) {
	case ',':
		return SkipWhitespace(buf, after+1), index + 1
	case ']', 0:
		return after, Invalid
	}
	fail(st, StateArrayMissingNextOrEndChar)
	return len(buf), Invalid
}

// NextArrayIndex steps through an array with the default scanner.
func NextArrayIndex(buf []byte, pos, index int, st *State) (int, int) {
	return std.NextArrayIndex(buf, pos, index, st)
}
