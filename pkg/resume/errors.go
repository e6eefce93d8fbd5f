package resume

import (
	"errors"
	"fmt"

	"github.com/sirspot/resume/pkg/entry"
	"github.com/sirspot/resume/pkg/jsonscan"
)

// FillError reports the first problem met while filling a résumé.
type FillError struct {
	// Section is the title of the section being filled, if it had one.
	Section string
	// Entry is the pool or section outcome, when that is what failed.
	Entry entry.State
	// JSON is the scanner outcome, when the configuration was malformed.
	JSON jsonscan.State
	// Offset is the byte offset in the configuration, or -1.
	Offset int
	// Err is the underlying error.
	Err error
}

func (e *FillError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("resume could not be filled at section \"%s\" [%s]", e.Section, e.Label())
	}
	return fmt.Sprintf("resume could not be filled [%s]", e.Label())
}

func (e *FillError) Unwrap() error { return e.Err }

// Label names the failure kind.
func (e *FillError) Label() string {
	switch {
	case e.Entry.Failed():
		return e.Entry.String()
	case e.JSON != jsonscan.StateOK:
		return e.JSON.String()
	}
	return entry.StateUnknown.String()
}

func entryError(title string, err error) *FillError {
	fe := &FillError{Section: title, Offset: -1, Err: err}
	var ee *entry.Error
	if errors.As(err, &ee) {
		fe.Entry = ee.State
	} else {
		fe.Entry = entry.StateResize
	}
	return fe
}

func jsonError(title string, st jsonscan.State, offset int) *FillError {
	if st == jsonscan.StateOK {
		st = jsonscan.StateValueInvalid
	}
	return &FillError{Section: title, JSON: st, Offset: offset, Err: st.Err(offset)}
}
