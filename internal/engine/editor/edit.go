package editor

import (
	"unicode/utf8"

	"quill/internal/engine/cursor"
	"quill/internal/engine/history"
	"quill/internal/engine/rope"
)

// EditInfo describes one raw mutation in byte offsets and row/column points:
// the edit's start, its old end (pre-edit), and its new end (post-edit).
// These three coordinate pairs are everything an incremental parser needs to
// shift its tree positions.
type EditInfo struct {
	StartByte  rope.ByteOffset
	OldEndByte rope.ByteOffset
	NewEndByte rope.ByteOffset

	StartPoint  rope.Point
	OldEndPoint rope.Point
	NewEndPoint rope.Point
}

// InsertText replaces the current selection with text.
// Reports whether the buffer changed.
func (e *Editor) InsertText(text string) bool {
	r := e.sel.Range()
	if text == "" && r.IsEmpty() {
		return false
	}
	return e.ReplaceRange(r, text)
}

// Backspace deletes the selection, or the single character before a
// collapsed cursor. No-op at the start of the buffer.
func (e *Editor) Backspace() bool {
	r := e.sel.Range()
	if !r.IsEmpty() {
		return e.ReplaceRange(r, "")
	}

	pos := e.sel.Cursor()
	if pos == 0 {
		return false
	}
	return e.ReplaceRange(cursor.Range{Start: pos - 1, End: pos}, "")
}

// DeleteForward deletes the selection, or the single character after a
// collapsed cursor. No-op at the end of the buffer.
func (e *Editor) DeleteForward() bool {
	r := e.sel.Range()
	if !r.IsEmpty() {
		return e.ReplaceRange(r, "")
	}

	pos := e.sel.Cursor()
	if pos >= e.text.LenChars() {
		return false
	}
	return e.ReplaceRange(cursor.Range{Start: pos, End: pos + 1}, "")
}

// ReplaceRange removes the text in r and inserts text at its start.
// The selection collapses to the end of the insertion, the redo stack
// clears, and a new record lands on the undo stack. Reports whether the
// buffer changed.
func (e *Editor) ReplaceRange(r cursor.Range, text string) bool {
	total := e.text.LenChars()
	start := r.Start
	end := r.End
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	if start < 0 {
		start = 0
	}
	if start == end && text == "" {
		return false
	}

	before := e.sel
	var deleted string
	if start < end {
		deleted = e.text.Slice(start, end)
	}

	info := e.applyRawEdit(start, int(end-start), text)

	after := cursor.Collapsed(start + rope.CharOffset(utf8.RuneCountInString(text)))
	e.sel = after
	e.preferredCol = -1

	e.history.Push(history.EditRecord{
		Start:    start,
		Inserted: text,
		Deleted:  deleted,
		Before:   before,
		After:    after,
	})

	e.version++
	e.lastEdit = &info
	return true
}

// Undo reverses the most recent mutation, restoring text and the selection
// captured before it. Returns false if there is nothing to undo.
func (e *Editor) Undo() bool {
	rec, ok := e.history.PopUndo()
	if !ok {
		return false
	}

	insertedLen := utf8.RuneCountInString(rec.Inserted)
	info := e.applyRawEdit(rec.Start, insertedLen, rec.Deleted)
	e.sel = rec.Before
	e.preferredCol = -1
	e.history.PushRedo(rec)
	e.version++
	e.lastEdit = &info
	return true
}

// Redo reapplies the most recently undone mutation.
// Returns false if there is nothing to redo.
func (e *Editor) Redo() bool {
	rec, ok := e.history.PopRedo()
	if !ok {
		return false
	}

	deletedLen := utf8.RuneCountInString(rec.Deleted)
	info := e.applyRawEdit(rec.Start, deletedLen, rec.Inserted)
	e.sel = rec.After
	e.preferredCol = -1
	e.history.RequeueUndo(rec)
	e.version++
	e.lastEdit = &info
	return true
}

// applyRawEdit removes removeChars runes at start, inserts text there, and
// returns the coordinates of the mutation. It is the single path that
// touches the rope; history bookkeeping happens only after it returns.
func (e *Editor) applyRawEdit(start rope.CharOffset, removeChars int, inserted string) EditInfo {
	total := e.text.LenChars()
	if start > total {
		start = total
	}
	oldEnd := start + rope.CharOffset(removeChars)
	if oldEnd > total {
		oldEnd = total
	}

	startByte := e.text.CharToByte(start)
	oldEndByte := e.text.CharToByte(oldEnd)
	startPoint := e.text.PointForChar(start)
	oldEndPoint := e.text.PointForChar(oldEnd)

	if oldEnd > start {
		e.text = e.text.Delete(start, oldEnd)
	}
	if inserted != "" {
		e.text = e.text.Insert(start, inserted)
	}

	newEnd := start + rope.CharOffset(utf8.RuneCountInString(inserted))
	if newEnd > e.text.LenChars() {
		newEnd = e.text.LenChars()
	}

	return EditInfo{
		StartByte:   startByte,
		OldEndByte:  oldEndByte,
		NewEndByte:  e.text.CharToByte(newEnd),
		StartPoint:  startPoint,
		OldEndPoint: oldEndPoint,
		NewEndPoint: e.text.PointForChar(newEnd),
	}
}
