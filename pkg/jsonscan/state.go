package jsonscan

import "fmt"

// State reports the outcome of a scan. The zero value is StateOK; any other
// value names the first problem found during the call that received it.
type State int

const (
	StateOK State = iota
	StateTooManyDecimals
	StateLeadingDecimal
	StateStringMissingStart
	StateStringMissingEnd
	StateStringMissingEscapedChar
	StateStringInvalidFollower
	StateArrayMissingStart
	StateArrayMissingEnd
	StateArrayMissingNextOrEndChar
	StateObjectMissingStart
	StateObjectMissingEnd
	StateObjectMissingKey
	StateObjectMissingValueStart
	StateValueCase
	StateValueInvalid
	StateValueInvalidFollower
	StateCommaInvalidFollower
	StateUnexpectedChar
	StateDepthExceeded
)

var stateLabels = [...]string{
	StateOK:                        "ok",
	StateTooManyDecimals:           "too-many-decimals",
	StateLeadingDecimal:            "leading-decimal",
	StateStringMissingStart:        "string-missing-start",
	StateStringMissingEnd:          "string-missing-end",
	StateStringMissingEscapedChar:  "string-missing-escaped-char",
	StateStringInvalidFollower:     "string-invalid-follower",
	StateArrayMissingStart:         "array-missing-start",
	StateArrayMissingEnd:           "array-missing-end",
	StateArrayMissingNextOrEndChar: "array-missing-next-or-end-char",
	StateObjectMissingStart:        "object-missing-start",
	StateObjectMissingEnd:          "object-missing-end",
	StateObjectMissingKey:          "object-missing-key",
	StateObjectMissingValueStart:   "object-missing-value-start",
	StateValueCase:                 "value-case",
	StateValueInvalid:              "value-invalid",
	StateValueInvalidFollower:      "value-invalid-follower",
	StateCommaInvalidFollower:      "comma-invalid-follower",
	StateUnexpectedChar:            "unexpected-char",
	StateDepthExceeded:             "depth-exceeded",
}

// String returns the diagnostic label for the state.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateLabels) {
		return stateLabels[s]
	}
	return "unknown"
}

// Err converts a failed state into an *Error at the given byte offset.
// It returns nil for StateOK.
func (s State) Err(offset int) error {
	if s == StateOK {
		return nil
	}
	return &Error{State: s, Offset: offset}
}

// Error records a scan failure and where it was detected.
type Error struct {
	State  State
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonscan: %s at offset %d", e.State, e.Offset)
}

// Is reports whether target is an *Error with the same State, so callers can
// match on a kind with errors.Is regardless of offset.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.State == e.State
}

// fail records s unless an earlier failure was already recorded.
func fail(st *State, s State) {
	if *st == StateOK {
		*st = s
	}
}
