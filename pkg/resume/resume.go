// Package resume assembles entries and sections into a résumé.
//
// A Resume owns one entry pool and one section chain. The first sections of
// the chain are fixed at construction and filled from compiled-in
// definitions; further sections are appended from JSON configuration. A
// failed fill leaves the Resume unfit for rendering and should be followed
// by Close.
package resume

import (
	"math/rand"
	"strings"

	"github.com/sirspot/resume/pkg/entry"
	"github.com/sirspot/resume/pkg/jsonscan"
	"github.com/sirspot/resume/pkg/log"
	"github.com/sirspot/resume/pkg/section"
)

const (
	// PageLines and Pages bound the number of entries a résumé can hold.
	PageLines  = 60
	Pages      = 5
	MaxEntries = Pages * PageLines

	// MaxHidden is the most section titles Options.Hidden may name.
	MaxHidden = 32
	// MaxExtended is the largest accepted Options.ExtendedCount.
	MaxExtended = PageLines
)

// Resume is a filled or fillable résumé.
type Resume struct {
	pool    *entry.Pool
	chain   *section.Chain
	scanner *jsonscan.Scanner
	logger  log.Logger
}

// Option configures a Resume.
type Option func(*config)

type config struct {
	capacity int
	maxDepth int
	logger   log.Logger
}

// WithCapacity sets the entry pool capacity. The default is MaxEntries.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithMaxDepth bounds JSON nesting in configuration.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// WithLogger sets the logger for fill diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns an empty Resume whose first fixed sections are compiled in.
func New(fixed int, opts ...Option) *Resume {
	cfg := config{
		capacity: MaxEntries,
		maxDepth: jsonscan.DefaultMaxDepth,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resume{
		pool:    entry.NewPool(cfg.capacity, entry.WithLogger(cfg.logger)),
		chain:   section.NewChain(fixed),
		scanner: &jsonscan.Scanner{MaxDepth: cfg.maxDepth},
		logger:  cfg.logger,
	}
}

// Close releases every section and then every entry.
func (r *Resume) Close() {
	r.chain.Close()
	r.pool.Close()
}

// Len returns the number of sections.
func (r *Resume) Len() int { return r.chain.Len() }

// Section returns the section at index, or nil.
func (r *Resume) Section(index int) *section.Section { return r.chain.Get(index) }

// Entries returns the number of entries in the pool.
func (r *Resume) Entries() int { return r.pool.Len() }

// AddEntry creates an entry in the pool and includes it in the section at
// index. Empty dates are absent.
func (r *Resume) AddEntry(index int, text, start, end string) error {
	s := r.chain.Get(index)
	if s == nil {
		return &FillError{Entry: entry.StateSectionMissing, Offset: -1, Err: entry.ErrSectionMissing}
	}
	return r.add(s, []byte(text), start, end)
}

func (r *Resume) add(s *section.Section, text []byte, start, end string) error {
	e, err := r.pool.AppendBytes(text, start, end)
	if err != nil {
		return entryError(s.Title(), err)
	}
	if err := s.Include(e); err != nil {
		return entryError(s.Title(), err)
	}
	return nil
}

// EntryDef is a compiled-in entry. Empty dates are absent.
type EntryDef struct {
	Text  string
	Start string
	End   string
}

// SectionDef is a compiled-in section.
type SectionDef struct {
	Title   string
	Limit   section.Limit
	Order   section.Order
	Field   entry.TimeField
	Dates   section.DateOption
	Entries []EntryDef
}

// FillHardCoded applies defs to the fixed sections in order and adds their
// entries.
func (r *Resume) FillHardCoded(defs []SectionDef) error {
	for i, def := range defs {
		s := r.chain.Get(i)
		if s == nil || i >= r.chain.Prefix() {
			return &FillError{Section: def.Title, Entry: entry.StateSectionMissing, Offset: -1, Err: entry.ErrSectionMissing}
		}
		s.SetTitle(def.Title)
		s.Limit = def.Limit
		s.Order = def.Order
		s.Field = def.Field
		s.Dates = def.Dates
		for _, e := range def.Entries {
			if err := r.add(s, []byte(e.Text), e.Start, e.End); err != nil {
				return err
			}
		}
	}
	return nil
}

// Options control which sections and how many entries are presented.
type Options struct {
	// ExtendedCount is added to every section's positive limit.
	ExtendedCount int
	// ShowAll lifts every positive limit.
	ShowAll bool
	// Hidden names sections to leave out, by title.
	Hidden []string
}

// Block is one section ready for rendering.
type Block struct {
	Section *section.Section
	Entries []*entry.Entry
}

// Visible reports whether the section at s is presented under opts.
// Untitled sections and sections whose limit is None are never shown.
func (o Options) Visible(s *section.Section) bool {
	if s.Title() == "" || s.Limit.Hidden() {
		return false
	}
	for _, h := range o.Hidden {
		if strings.EqualFold(h, s.Title()) {
			return false
		}
	}
	return true
}

// Layout orders and trims every visible section. rng drives Random
// sections.
func (r *Resume) Layout(opts Options, rng *rand.Rand) []Block {
	var blocks []Block
	r.chain.Walk(func(_ int, s *section.Section) bool {
		if !opts.Visible(s) {
			return true
		}
		t := s.Traverse(rng)
		n := s.Limit.Apply(t.Len(), opts.ExtendedCount, opts.ShowAll)
		shown := make([]*entry.Entry, 0, n)
		for e := t.First(); e != nil && len(shown) < n; e = t.Next() {
			shown = append(shown, e)
		}
		blocks = append(blocks, Block{Section: s, Entries: shown})
		return true
	})
	return blocks
}
