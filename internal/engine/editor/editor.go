package editor

import (
	"quill/internal/engine/cursor"
	"quill/internal/engine/history"
	"quill/internal/engine/rope"
)

// DefaultIndentUnit is the indent step auto-indent inserts after an
// opening brace.
const DefaultIndentUnit = "    "

// Editor is character-indexed editor state backed by a rope, with a simple
// per-edit undo/redo log.
type Editor struct {
	text rope.Rope
	sel  cursor.Selection

	// preferredCol is the column vertical movement tries to preserve.
	// -1 means no column is cached.
	preferredCol int

	indentUnit string
	history    history.History
	version    uint64
	lastEdit   *EditInfo
}

// Empty creates an editor with no content.
func Empty() *Editor {
	return FromText("")
}

// FromText creates an editor seeded with the given text.
func FromText(text string) *Editor {
	return &Editor{
		text:         rope.FromString(text),
		sel:          cursor.Collapsed(0),
		preferredCol: -1,
		indentUnit:   DefaultIndentUnit,
	}
}

// Rope returns the current text content.
func (e *Editor) Rope() rope.Rope {
	return e.text
}

// Text returns the full buffer content as a string.
func (e *Editor) Text() string {
	return e.text.String()
}

// Version returns the mutation counter. It increments on every mutation,
// including undo and redo, and wraps on overflow.
func (e *Editor) Version() uint64 {
	return e.version
}

// Selection returns the current selection.
func (e *Editor) Selection() cursor.Selection {
	return e.sel
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the undo stack depth.
func (e *Editor) UndoCount() int {
	return e.history.UndoCount()
}

// RedoCount returns the redo stack depth.
func (e *Editor) RedoCount() int {
	return e.history.RedoCount()
}

// SetIndentUnit overrides the indent step used by auto-indent.
// Empty units are ignored.
func (e *Editor) SetIndentUnit(unit string) {
	if unit != "" {
		e.indentUnit = unit
	}
}

// TakeLastEdit returns the descriptor of the most recent raw mutation and
// clears it. The descriptor is produced once per mutation and consumed
// exactly once, typically to update incremental parse state.
func (e *Editor) TakeLastEdit() (EditInfo, bool) {
	if e.lastEdit == nil {
		return EditInfo{}, false
	}
	info := *e.lastEdit
	e.lastEdit = nil
	return info, true
}

// SetCursor moves the cursor to the given offset, clamped to the buffer.
// When extend is false the selection collapses and the preferred column
// cache clears.
func (e *Editor) SetCursor(pos rope.CharOffset, extend bool) {
	if pos > e.text.LenChars() {
		pos = e.text.LenChars()
	}
	if pos < 0 {
		pos = 0
	}
	e.sel = e.sel.SetCursor(pos, extend)
	if !extend {
		e.preferredCol = -1
	}
}

// SelectAll selects the entire buffer.
func (e *Editor) SelectAll() {
	e.sel = cursor.New(0, e.text.LenChars())
	e.preferredCol = -1
}

// SelectRange selects the given range, clamped to the buffer.
func (e *Editor) SelectRange(r cursor.Range) {
	total := e.text.LenChars()
	start := r.Start
	end := r.End
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	e.sel = cursor.New(start, end)
	e.preferredCol = -1
}

// SelectedText returns the text covered by the selection.
func (e *Editor) SelectedText() string {
	r := e.sel.Range()
	if r.IsEmpty() {
		return ""
	}
	return e.text.Slice(r.Start, r.End)
}

// cursorLineCol returns the cursor's line and column in runes.
func (e *Editor) cursorLineCol() (int, int) {
	pos := e.sel.Cursor()
	if pos > e.text.LenChars() {
		pos = e.text.LenChars()
	}
	line := e.text.CharToLine(pos)
	col := int(pos - e.text.LineToChar(line))
	return line, col
}
