package section

import (
	"math/rand"

	"github.com/sirspot/resume/pkg/entry"
)

// Traversal is a one-shot presentation order over a set of entries. It
// holds references only and never modifies the entries or their source.
type Traversal struct {
	order entry.Store
	pos   int
}

// Traverse builds the presentation order for s.
//
// The first entry of s seeds the order. Each later entry is placed before
// the first already-placed entry it outranks and appended when it outranks
// none: for NewestFirst an entry outranks older dated entries, for
// OldestFirst it outranks newer or undated ones, and an undated entry
// outranks everything under NewestFirst. Random keeps the seed first and
// inserts each later entry at a position after it drawn uniformly from rng,
// so later entries tend to land deeper; a nil rng uses a fixed seed.
func (s *Section) Traverse(rng *rand.Rand) *Traversal {
	return traverse(s.entries.Entries(), s.Order, s.Field, rng)
}

func traverse(src []*entry.Entry, order Order, field entry.TimeField, rng *rand.Rand) *Traversal {
	t := &Traversal{}
	if len(src) == 0 {
		return t
	}
	t.order.Resize(len(src))
	_ = t.order.Append(src[0])
	if order == Random && rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	for _, e := range src[1:] {
		index := -1
		switch order {
		case NewestFirst:
			index = t.order.Find(entry.IsOlder(field, e))
		case OldestFirst:
			index = t.order.Find(entry.IsNewer(field, e))
		case Random:
			index = 1 + rng.Intn(t.order.Len())
		}
		if index < 0 {
			_ = t.order.Append(e)
			continue
		}
		_ = t.order.InsertAt(e, index)
	}
	return t
}

// First rewinds the traversal and returns the first entry, or nil.
func (t *Traversal) First() *entry.Entry {
	t.pos = 0
	return t.Next()
}

// Next returns the next entry, or nil when the traversal is done.
func (t *Traversal) Next() *entry.Entry {
	e := t.order.At(t.pos)
	if e != nil {
		t.pos++
	}
	return e
}

// Len returns the number of entries in the traversal.
func (t *Traversal) Len() int { return t.order.Len() }
