// Package cursor provides the selection model for text editing.
//
// Selections use an anchor/head model where:
//   - Anchor: the position where the selection started
//   - Head: the current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction;
// Range always normalizes to Start <= End.
//
// Positions are rune offsets into the owning buffer. Selection is an
// immutable value type: mutating operations return new values, and a
// selection never outlives the editor that clamps it.
package cursor
