package entry

import "errors"

// State is the outcome of the most recent pool operation.
type State int

const (
	StateUnknown State = iota
	StateOK
	StateFull
	StateTextEmpty
	StateTextMissing
	StateStartDate
	StateEndDate
	StateStartDateMissing
	StateAlloc
	StateSetText
	StateResize
	StateSectionMissing
)

var stateLabels = [...]string{
	StateUnknown:          "unknown",
	StateOK:               "ok",
	StateFull:             "error-full",
	StateTextEmpty:        "error-text-empty",
	StateTextMissing:      "error-text-missing",
	StateStartDate:        "error-start-date",
	StateEndDate:          "error-end-date",
	StateStartDateMissing: "error-start-missing",
	StateAlloc:            "error-alloc",
	StateSetText:          "error-set-text",
	StateResize:           "error-resize",
	StateSectionMissing:   "error-section-missing",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateLabels) {
		return stateLabels[s]
	}
	return stateLabels[StateUnknown]
}

// Failed reports whether s is an error state.
func (s State) Failed() bool { return s > StateOK }

// Error is returned by pool and store operations. It matches the sentinel
// errors below by State under errors.Is.
type Error struct {
	State State
}

func (e *Error) Error() string { return "entry: " + e.State.String() }

func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.State == e.State
}

var (
	ErrFull             error = &Error{State: StateFull}
	ErrTextEmpty        error = &Error{State: StateTextEmpty}
	ErrTextMissing      error = &Error{State: StateTextMissing}
	ErrStartDate        error = &Error{State: StateStartDate}
	ErrEndDate          error = &Error{State: StateEndDate}
	ErrStartDateMissing error = &Error{State: StateStartDateMissing}
	ErrResize           error = &Error{State: StateResize}
	ErrSectionMissing   error = &Error{State: StateSectionMissing}
)

// Store errors.
var (
	ErrNilEntry   = errors.New("entry: nil entry")
	ErrIndexRange = errors.New("entry: index out of range")
)
