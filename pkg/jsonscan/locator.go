package jsonscan

// LocateKeyValue searches the object whose members start at pos for key and
// returns the cursor of that key's value. pos may point at the opening brace
// or just past it. When the key is absent the cursor of the closing brace is
// returned. On error the cursor is len(buf) and st names the problem.
func (s *Scanner) LocateKeyValue(buf []byte, pos int, key string, st *State) int {
	st = state(st)
	pos = SkipWhitespace(buf, pos)
	if at(buf, pos) == '{' {
		pos = SkipWhitespace(buf, pos+1)
	}
	for {
		k, next, ok := s.nextMember(buf, pos, st)
		if !ok {
			return next
		}
		if string(k[1:len(k)-1]) == key {
			return next
		}
		after := s.skipValue(buf, next, next, st, 0)
		if after == next {
			return len(buf)
		}
		pos = after
	}
}

// NextKeyValue reads the next member of an object from pos, which may follow
// the opening brace, a previous value or a comma. It returns the key with its
// quotes and the cursor of the member's value. A key shorter than 2 bytes
// means the object ended or st reports an error.
func (s *Scanner) NextKeyValue(buf []byte, pos int, st *State) (key []byte, next int) {
	st = state(st)
	k, next, ok := s.nextMember(buf, SkipWhitespace(buf, pos), st)
	if !ok {
		return nil, next
	}
	return k, next
}

// nextMember reads one "key": pair starting at pos and returns the quoted key
// and the value cursor. ok is false at the closing brace, at the end of the
// input or on error; the cursor is then the brace, or len(buf).
func (s *Scanner) nextMember(buf []byte, pos int, st *State) (key []byte, value int, ok bool) {
	c := at(buf, pos)
	if c == '}' {
		return nil, pos, false
	}
	if c == 0 {
		fail(st, StateObjectMissingEnd)
		return nil, len(buf), false
	}
	if c == ',' {
		pos = SkipWhitespace(buf, pos+1)
	}
	var kst State
	n := stringLength(buf, pos, &kst)
	if n < 2 {
		fail(st, StateObjectMissingKey)
		return nil, len(buf), false
	}
	key = buf[pos : pos+n]
	pos = SkipWhitespace(buf, pos+n)
	if at(buf, pos) != ':' {
		fail(st, StateObjectMissingValueStart)
		return nil, len(buf), false
	}
	return key, SkipWhitespace(buf, pos+1), true
}

// LocateKeyValue searches an object with the default scanner.
func LocateKeyValue(buf []byte, pos int, key string, st *State) int {
	return std.LocateKeyValue(buf, pos, key, st)
}

// NextKeyValue reads the next object member with the default scanner.
func NextKeyValue(buf []byte, pos int, st *State) ([]byte, int) {
	return std.NextKeyValue(buf, pos, st)
}
