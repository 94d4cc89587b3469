package history

import (
	"quill/internal/engine/cursor"
	"quill/internal/engine/rope"
)

// EditRecord is a reversible description of one committed mutation.
type EditRecord struct {
	// Start is the rune offset where the mutation applied.
	Start rope.CharOffset

	// Inserted is the text the mutation added at Start.
	Inserted string

	// Deleted is the text the mutation removed from [Start, Start+len).
	Deleted string

	// Before and After are the selections around the mutation.
	Before cursor.Selection
	After  cursor.Selection
}

// History manages the undo and redo stacks.
type History struct {
	undo []EditRecord
	redo []EditRecord
}

// Push records a new committed mutation and clears the redo stack.
func (h *History) Push(rec EditRecord) {
	h.undo = append(h.undo, rec)
	h.redo = nil
}

// PopUndo removes and returns the most recent undoable record.
func (h *History) PopUndo() (EditRecord, bool) {
	if len(h.undo) == 0 {
		return EditRecord{}, false
	}
	rec := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return rec, true
}

// PopRedo removes and returns the most recent redoable record.
func (h *History) PopRedo() (EditRecord, bool) {
	if len(h.redo) == 0 {
		return EditRecord{}, false
	}
	rec := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return rec, true
}

// PushRedo places an undone record onto the redo stack.
func (h *History) PushRedo(rec EditRecord) {
	h.redo = append(h.redo, rec)
}

// RequeueUndo places a redone record back onto the undo stack
// without clearing redo.
func (h *History) RequeueUndo(rec EditRecord) {
	h.undo = append(h.undo, rec)
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the undo stack depth.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the redo stack depth.
func (h *History) RedoCount() int {
	return len(h.redo)
}
