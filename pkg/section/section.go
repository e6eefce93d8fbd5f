// Package section groups entries under titled, ordered, display-limited
// sections and computes the order in which a section's entries are shown.
package section

import (
	"errors"
	"strings"

	"github.com/sirspot/resume/pkg/entry"
)

// Order is a section's presentation policy.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
	Random
)

var orderNames = map[string]Order{
	"newest_first": NewestFirst,
	"oldest_first": OldestFirst,
	"random":       Random,
}

// ParseOrder maps a configuration name to an Order.
func ParseOrder(name string) (Order, bool) {
	o, ok := orderNames[strings.ToLower(name)]
	return o, ok
}

func (o Order) String() string {
	switch o {
	case NewestFirst:
		return "newest_first"
	case OldestFirst:
		return "oldest_first"
	case Random:
		return "random"
	}
	return "unknown"
}

// Limit is the number of entries a section displays. None hides the
// section and any negative value, such as All, shows every entry.
type Limit int

const (
	All  Limit = -1
	None Limit = 0
)

// Hidden reports whether the limit hides the section.
func (l Limit) Hidden() bool { return l == None }

// Apply returns how many of n entries to show. extended is added to a
// positive limit; showAll lifts any positive limit. A hidden section
// stays hidden.
func (l Limit) Apply(n, extended int, showAll bool) int {
	switch {
	case l == None:
		return 0
	case l < 0 || showAll:
		return n
	}
	show := int(l) + extended
	if show > n {
		return n
	}
	return show
}

// DateOption selects which parts of an entry's dates are displayed.
type DateOption uint8

const (
	HideStartDay   DateOption = 0x01
	HideStartMonth DateOption = 0x02
	HideStartYear  DateOption = 0x04
	HideEndDay     DateOption = 0x10
	HideEndMonth   DateOption = 0x20
	HideEndYear    DateOption = 0x40

	HideStart = HideStartDay | HideStartMonth | HideStartYear
	HideEnd   = HideEndDay | HideEndMonth | HideEndYear
	HideDay   = HideStartDay | HideEndDay
	HideMonth = HideStartMonth | HideEndMonth
	HideYear  = HideStartYear | HideEndYear
	HideAll   = HideStart | HideEnd

	ShowYearOnly  = HideMonth | HideDay
	ShowStartOnly = HideEnd
	ShowEndOnly   = HideStart
)

// Has reports whether every bit of mask is set in o.
func (o DateOption) Has(mask DateOption) bool { return o&mask == mask }

var dateOptionNames = map[string]DateOption{
	"show_year_only":  ShowYearOnly,
	"show_start_only": ShowStartOnly,
	"show_end_only":   ShowEndOnly,
	"hide_all":        HideAll,
	"hide_day":        HideDay,
	"hide_month":      HideMonth,
	"show_all":        0,
}

// ParseDateOption maps a configuration name to a DateOption.
func ParseDateOption(name string) (DateOption, bool) {
	o, ok := dateOptionNames[strings.ToLower(name)]
	return o, ok
}

// ErrNilEntry is returned when including a nil entry.
var ErrNilEntry = errors.New("section: nil entry")

// Section is a titled group of entries borrowed from a pool.
type Section struct {
	title entry.Text

	// Limit caps how many entries are displayed.
	Limit Limit
	// Order is the presentation policy for the entries.
	Order Order
	// Field is the timestamp the time-based orders compare.
	Field entry.TimeField
	// Dates selects the displayed date parts.
	Dates DateOption

	entries entry.Store
	next    int
}

const noSection = -1

// New returns an untitled section with the default settings.
func New() *Section {
	s := &Section{}
	s.reset()
	return s
}

func (s *Section) reset() {
	s.title.Release()
	s.Limit = All
	s.Order = NewestFirst
	s.Field = entry.TimeStart
	s.Dates = HideAll
	s.entries.Reset()
	s.next = noSection
}

// Title returns the section title; empty means untitled.
func (s *Section) Title() string { return s.title.String() }

// SetTitle replaces the title.
func (s *Section) SetTitle(title string) { s.title = entry.NewText(title) }

// Include appends a borrowed entry.
func (s *Section) Include(e *entry.Entry) error {
	if e == nil {
		return ErrNilEntry
	}
	return s.entries.Append(e)
}

// Len returns the number of included entries.
func (s *Section) Len() int { return s.entries.Len() }

// Entries returns the included entries in insertion order.
func (s *Section) Entries() []*entry.Entry { return s.entries.Entries() }
