// Package entry holds résumé line items and the pool that owns them.
//
// Entries are created only by a [Pool], which validates their text and dates
// and owns every Entry until it is closed. A [Store] is an ordered list of
// entry references; the pool keeps one that owns its entries, while sections
// and traversals keep stores that merely borrow them.
package entry

// TimeField selects one of an entry's two timestamps.
type TimeField int

const (
	TimeStart TimeField = iota
	TimeEnd
	timeFieldCount
)

func (f TimeField) String() string {
	if f == TimeEnd {
		return "end"
	}
	return "start"
}

// Entry is one line item. If the end date is set, the start date is set too.
type Entry struct {
	text  Text
	times [timeFieldCount]Timestamp
}

// Text returns the entry's display text.
func (e *Entry) Text() string { return e.text.String() }

// Time returns the timestamp selected by f.
func (e *Entry) Time(f TimeField) Timestamp {
	if f < 0 || f >= timeFieldCount {
		return Timestamp{}
	}
	return e.times[f]
}

func (e *Entry) release() {
	e.text.Release()
	e.times = [timeFieldCount]Timestamp{}
}

// FindResult is a predicate's verdict on one entry.
type FindResult int

const (
	Continue FindResult = iota
	Match
	Abort
)

// Predicate inspects a placed entry during Store.Find.
type Predicate func(placed *Entry) FindResult

// IsOlder matches the first placed entry that candidate should precede in
// newest-first order: any entry when candidate has no timestamp for f,
// otherwise a dated entry older than candidate.
func IsOlder(f TimeField, candidate *Entry) Predicate {
	y := candidate.Time(f)
	return func(placed *Entry) FindResult {
		if !y.Set || placed.Time(f).Before(y) {
			return Match
		}
		return Continue
	}
}

// IsNewer matches the first placed entry that candidate should precede in
// oldest-first order: an entry with no timestamp for f, or a dated entry
// newer than candidate.
func IsNewer(f TimeField, candidate *Entry) Predicate {
	y := candidate.Time(f)
	return func(placed *Entry) FindResult {
		x := placed.Time(f)
		if !x.Set || x.After(y) {
			return Match
		}
		return Continue
	}
}
