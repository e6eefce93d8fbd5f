package section

import "errors"

var (
	// ErrFixedSection is returned when inserting or removing inside the
	// compiled-in prefix.
	ErrFixedSection = errors.New("section: index is inside the fixed prefix")
	// ErrNoSection is returned for an index past the end of the chain.
	ErrNoSection = errors.New("section: no section at index")
)

// Chain is an ordered sequence of sections. The first Prefix sections are
// fixed and always present; any further sections are runtime sections kept
// in a singly linked list threaded through an arena by slot index.
type Chain struct {
	slots  []*Section
	prefix int
	head   int
	free   []int
	extra  int
}

// NewChain returns a chain holding prefix default sections.
func NewChain(prefix int) *Chain {
	if prefix < 0 {
		prefix = 0
	}
	c := &Chain{prefix: prefix, head: noSection}
	c.slots = make([]*Section, prefix)
	for i := range c.slots {
		c.slots[i] = New()
	}
	return c
}

// Prefix returns the number of fixed sections.
func (c *Chain) Prefix() int { return c.prefix }

// Len returns the total number of sections.
func (c *Chain) Len() int { return c.prefix + c.extra }

// slotOf returns the arena slot of the section at index, or noSection.
func (c *Chain) slotOf(index int) int {
	if index < 0 {
		return noSection
	}
	if index < c.prefix {
		return index
	}
	slot := c.head
	for i := c.prefix; i < index && slot != noSection; i++ {
		slot = c.slots[slot].next
	}
	return slot
}

// Get returns the section at index, or nil.
func (c *Chain) Get(index int) *Section {
	slot := c.slotOf(index)
	if slot == noSection {
		return nil
	}
	return c.slots[slot]
}

// Insert adds a default runtime section at index, which must lie in
// [Prefix, Len], and returns it.
func (c *Chain) Insert(index int) (*Section, error) {
	if index < c.prefix {
		return nil, ErrFixedSection
	}
	if index > c.Len() {
		return nil, ErrNoSection
	}

	slot := c.alloc()
	s := c.slots[slot]
	if index == c.prefix {
		s.next = c.head
		c.head = slot
	} else {
		prev := c.slots[c.slotOf(index-1)]
		s.next = prev.next
		prev.next = slot
	}
	c.extra++
	return s, nil
}

// Append adds a default runtime section at the end and returns it.
func (c *Chain) Append() *Section {
	s, _ := c.Insert(c.Len())
	return s
}

// Remove unlinks and resets the runtime section at index.
func (c *Chain) Remove(index int) error {
	if index >= 0 && index < c.prefix {
		return ErrFixedSection
	}
	slot := c.slotOf(index)
	if slot == noSection {
		return ErrNoSection
	}
	s := c.slots[slot]
	if index == c.prefix {
		c.head = s.next
	} else {
		c.slots[c.slotOf(index-1)].next = s.next
	}
	s.reset()
	c.free = append(c.free, slot)
	c.extra--
	return nil
}

func (c *Chain) alloc() int {
	if n := len(c.free); n > 0 {
		slot := c.free[n-1]
		c.free = c.free[:n-1]
		return slot
	}
	c.slots = append(c.slots, New())
	return len(c.slots) - 1
}

// IndexOf returns the chain index of s, or -1.
func (c *Chain) IndexOf(s *Section) int {
	index := -1
	c.Walk(func(i int, cur *Section) bool {
		if cur == s {
			index = i
			return false
		}
		return true
	})
	return index
}

// Walk calls fn for each section in order until fn returns false.
func (c *Chain) Walk(fn func(index int, s *Section) bool) {
	for i := 0; i < c.prefix; i++ {
		if !fn(i, c.slots[i]) {
			return
		}
	}
	i := c.prefix
	for slot := c.head; slot != noSection; slot = c.slots[slot].next {
		if !fn(i, c.slots[slot]) {
			return
		}
		i++
	}
}

// Close resets every section and drops the runtime ones. The fixed prefix
// remains, with default settings.
func (c *Chain) Close() {
	for slot := c.head; slot != noSection; {
		next := c.slots[slot].next
		c.slots[slot].reset()
		slot = next
	}
	for i := 0; i < c.prefix; i++ {
		c.slots[i].reset()
	}
	c.slots = c.slots[:c.prefix]
	c.head = noSection
	c.free = nil
	c.extra = 0
}
