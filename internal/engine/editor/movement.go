package editor

import "quill/internal/engine/rope"

// MoveLeft moves the cursor one character left. On a non-empty selection
// without extend, it collapses to the selection's start instead.
// Reports whether the selection changed.
func (e *Editor) MoveLeft(extend bool) bool {
	before := e.sel

	if !extend && !e.sel.IsEmpty() {
		e.sel = e.sel.CollapseTo(e.sel.Range().Start)
		e.preferredCol = -1
		return e.sel != before
	}

	pos := e.sel.Cursor()
	if pos > 0 {
		pos--
	}
	e.sel = e.sel.SetCursor(pos, extend)
	if !extend {
		e.preferredCol = -1
	}
	return e.sel != before
}

// MoveRight moves the cursor one character right. On a non-empty selection
// without extend, it collapses to the selection's end instead.
// Reports whether the selection changed.
func (e *Editor) MoveRight(extend bool) bool {
	before := e.sel

	if !extend && !e.sel.IsEmpty() {
		e.sel = e.sel.CollapseTo(e.sel.Range().End)
		e.preferredCol = -1
		return e.sel != before
	}

	pos := e.sel.Cursor() + 1
	if pos > e.text.LenChars() {
		pos = e.text.LenChars()
	}
	e.sel = e.sel.SetCursor(pos, extend)
	if !extend {
		e.preferredCol = -1
	}
	return e.sel != before
}

// MoveUp moves the cursor one line up, preserving the preferred column.
func (e *Editor) MoveUp(extend bool) bool {
	return e.moveVertical(-1, extend)
}

// MoveDown moves the cursor one line down, preserving the preferred column.
func (e *Editor) MoveDown(extend bool) bool {
	return e.moveVertical(1, extend)
}

// MoveLineStart moves the cursor to the start of its line.
func (e *Editor) MoveLineStart(extend bool) bool {
	before := e.sel
	line, _ := e.cursorLineCol()
	e.sel = e.sel.SetCursor(e.text.LineToChar(line), extend)
	if !extend {
		e.preferredCol = -1
	}
	return e.sel != before
}

// MoveLineEnd moves the cursor to the end of its line's visible text.
func (e *Editor) MoveLineEnd(extend bool) bool {
	before := e.sel
	line, _ := e.cursorLineCol()
	end := e.text.LineToChar(line) + rope.CharOffset(e.text.LineVisibleLen(line))
	e.sel = e.sel.SetCursor(end, extend)
	if !extend {
		e.preferredCol = -1
	}
	return e.sel != before
}

// moveVertical moves the cursor by whole lines. The desired column is the
// cached preferred column, or the current column when none is cached; the
// cache is re-armed with the pre-clamp column after every vertical move so a
// short line does not lose the original column for a later move back onto a
// longer line.
func (e *Editor) moveVertical(deltaLines int, extend bool) bool {
	before := e.sel

	pos := e.sel.Cursor()
	if pos > e.text.LenChars() {
		pos = e.text.LenChars()
	}
	line, col := e.cursorLineCol()

	desired := col
	if e.preferredCol >= 0 {
		desired = e.preferredCol
	}

	targetLine := line + deltaLines
	if targetLine < 0 {
		targetLine = 0
	}
	if last := e.text.LineCount() - 1; targetLine > last {
		targetLine = last
	}

	lineStart := e.text.LineToChar(targetLine)
	lineCol := desired
	if visible := e.text.LineVisibleLen(targetLine); lineCol > visible {
		lineCol = visible
	}
	next := lineStart + rope.CharOffset(lineCol)
	if next > e.text.LenChars() {
		next = e.text.LenChars()
	}

	e.sel = e.sel.SetCursor(next, extend)
	e.preferredCol = desired

	if !extend && pos == next {
		e.preferredCol = -1
	}
	return e.sel != before
}
