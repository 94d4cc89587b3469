package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"quill/internal/engine/rope"
)

// InsertNewlineAutoIndent inserts a newline carrying the current line's
// leading indentation forward. The indent deepens after a trailing '{',
// shallows before a leading '}', and splitting an empty brace pair expands
// it onto three lines with the cursor indented inside.
// Reports whether the buffer changed.
func (e *Editor) InsertNewlineAutoIndent() bool {
	pos := e.sel.Cursor()
	if pos > e.text.LenChars() {
		pos = e.text.LenChars()
	}
	line := e.text.CharToLine(pos)
	lineStart := e.text.LineToChar(line)
	lineEnd := lineStart + rope.CharOffset(e.text.LineVisibleLen(line))

	baseIndent := e.leadingIndent(lineStart, lineEnd)

	cursorInLine := pos
	if cursorInLine > lineEnd {
		cursorInLine = lineEnd
	}
	before := e.text.Slice(lineStart, cursorInLine)
	after := e.text.Slice(cursorInLine, lineEnd)

	beforeTrim := strings.TrimRightFunc(before, unicode.IsSpace)
	afterTrim := strings.TrimLeftFunc(after, unicode.IsSpace)

	nextIndent := baseIndent
	if strings.HasSuffix(beforeTrim, "{") {
		nextIndent = baseIndent + e.indentUnit
	}

	if strings.HasPrefix(afterTrim, "}") {
		// Splitting before a closing brace decreases indentation.
		nextIndent = decreaseIndent(baseIndent, e.indentUnit)
	}

	if strings.HasSuffix(beforeTrim, "{") && strings.HasPrefix(afterTrim, "}") {
		// Expand the brace pair onto three lines with the cursor inside.
		inner := "\n" + nextIndent + "\n" + baseIndent
		changed := e.InsertText(inner)
		newCursor := pos + 1 + rope.CharOffset(utf8.RuneCountInString(nextIndent))
		e.SetCursor(newCursor, false)
		return changed
	}

	return e.InsertText("\n" + nextIndent)
}

// leadingIndent returns the run of spaces and tabs at the start of the
// rune range [start, end).
func (e *Editor) leadingIndent(start, end rope.CharOffset) string {
	var sb strings.Builder
	for pos := start; pos < end; pos++ {
		ch, ok := e.text.CharAt(pos)
		if !ok || (ch != ' ' && ch != '\t') {
			break
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// decreaseIndent strips one trailing indent unit, else one trailing tab,
// else leaves the indent unchanged.
func decreaseIndent(indent, unit string) string {
	if stripped, ok := strings.CutSuffix(indent, unit); ok {
		return stripped
	}
	if stripped, ok := strings.CutSuffix(indent, "\t"); ok {
		return stripped
	}
	return indent
}
