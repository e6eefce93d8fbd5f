package entry

import (
	"github.com/sirspot/resume/pkg/log"
)

// Pool creates, validates and owns entries up to a fixed capacity.
// A Pool is not safe for concurrent use.
type Pool struct {
	store  Store
	max    int
	last   State
	logger log.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithLogger sets the logger that receives date warnings.
func WithLogger(l log.Logger) PoolOption {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPool returns an empty pool that holds at most capacity entries.
func NewPool(capacity int, opts ...PoolOption) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool{max: capacity, logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(p)
	}
	p.store.Resize(capacity)
	return p
}

// Len returns the number of entries owned.
func (p *Pool) Len() int { return p.store.Len() }

// Cap returns the pool's fixed capacity.
func (p *Pool) Cap() int { return p.max }

// At returns the entry at index, or nil.
func (p *Pool) At(index int) *Entry { return p.store.At(index) }

// LastState returns the outcome of the last Append, or StateUnknown before
// the first one.
func (p *Pool) LastState() State { return p.last }

// Append validates and stores a new entry. A nil argument is absent; an
// empty date string counts as absent too. The returned Entry is borrowed
// from the pool and stays valid until Close.
func (p *Pool) Append(text, start, end *string) (*Entry, error) {
	var tb []byte
	if text != nil {
		tb = []byte(*text)
	}
	return p.append(text != nil, tb, deref(start), deref(end))
}

// AppendBytes is Append for text taken from a byte view, such as a slice
// of a configuration buffer. The bytes are copied.
func (p *Pool) AppendBytes(text []byte, start, end string) (*Entry, error) {
	return p.append(text != nil, text, start, end)
}

func (p *Pool) append(hasText bool, text []byte, start, end string) (*Entry, error) {
	if p.store.Len() >= p.max {
		return nil, p.fail(StateFull)
	}
	if !hasText {
		return nil, p.fail(StateTextMissing)
	}
	if len(text) == 0 {
		return nil, p.fail(StateTextEmpty)
	}

	var times [timeFieldCount]Timestamp
	if start != "" {
		ts, warn, err := ParseDate(start)
		if err != nil {
			return nil, p.fail(StateStartDate)
		}
		if warn {
			p.warnDate(text, start)
		}
		times[TimeStart] = ts
		if end != "" {
			ts, warn, err = ParseDate(end)
			if err != nil {
				return nil, p.fail(StateEndDate)
			}
			if warn {
				p.warnDate(text, end)
			}
			times[TimeEnd] = ts
		}
	} else if end != "" {
		return nil, p.fail(StateStartDateMissing)
	}

	e := &Entry{text: OwnedText(text), times: times}
	if err := p.store.Append(e); err != nil {
		return nil, p.fail(StateAlloc)
	}
	p.last = StateOK
	return e, nil
}

func (p *Pool) fail(s State) error {
	p.last = s
	return &Error{State: s}
}

func (p *Pool) warnDate(text []byte, date string) {
	p.logger.Warn("date outside sanity window",
		log.String("date", date),
		log.String("text", string(text)),
	)
}

// Close releases every entry, last first. The pool is empty afterwards and
// entries previously returned must not be used.
func (p *Pool) Close() {
	for e := p.store.TakeLast(); e != nil; e = p.store.TakeLast() {
		e.release()
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
