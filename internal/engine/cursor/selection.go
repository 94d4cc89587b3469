package cursor

import "quill/internal/engine/rope"

// Range is a half-open rune range [Start, End).
type Range struct {
	Start rope.CharOffset
	End   rope.CharOffset
}

// Len returns the length of the range.
func (r Range) Len() rope.CharOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// Selection represents a cursor with an optional extent.
// Anchor is where the selection started; Head is the current cursor position.
// Selection is an immutable value type.
type Selection struct {
	Anchor rope.CharOffset
	Head   rope.CharOffset
}

// Collapsed creates a selection representing just a cursor (no extent).
func Collapsed(pos rope.CharOffset) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// New creates a selection from anchor to head.
func New(anchor, head rope.CharOffset) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the selection as a normalized range (Start <= End).
func (s Selection) Range() Range {
	if s.Anchor <= s.Head {
		return Range{Start: s.Anchor, End: s.Head}
	}
	return Range{Start: s.Head, End: s.Anchor}
}

// Cursor returns the head position (where typing would occur).
func (s Selection) Cursor() rope.CharOffset {
	return s.Head
}

// SetCursor returns a selection with the head moved to pos.
// When extend is false, the anchor collapses to the new cursor.
func (s Selection) SetCursor(pos rope.CharOffset, extend bool) Selection {
	if !extend {
		return Selection{Anchor: pos, Head: pos}
	}
	return Selection{Anchor: s.Anchor, Head: pos}
}

// CollapseTo returns a collapsed selection at pos.
func (s Selection) CollapseTo(pos rope.CharOffset) Selection {
	return Selection{Anchor: pos, Head: pos}
}
