package entry

// Text is display text that is either empty or owned by its holder. The
// owned form always holds its own copy of the bytes it was built from.
type Text struct {
	s string
}

// Empty is the empty Text.
var Empty Text

// OwnedText copies b into a new Text. An empty b yields Empty.
func OwnedText(b []byte) Text {
	if len(b) == 0 {
		return Empty
	}
	return Text{s: string(b)}
}

// NewText returns a Text holding s. An empty s yields Empty.
func NewText(s string) Text { return Text{s: s} }

// IsEmpty reports whether t is the Empty variant.
func (t Text) IsEmpty() bool { return t.s == "" }

func (t Text) String() string { return t.s }

// Release returns t to Empty. Releasing Empty is a no-op.
func (t *Text) Release() { *t = Empty }
