package editor

import (
	"testing"

	"quill/internal/engine/cursor"
)

func TestInsertText(t *testing.T) {
	e := FromText("hello world")
	e.SetCursor(5, false)
	if !e.InsertText(",") {
		t.Fatal("insert should report a change")
	}
	if e.Text() != "hello, world" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Selection().Cursor() != 6 {
		t.Errorf("cursor = %d, want 6", e.Selection().Cursor())
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := FromText("hello world")
	e.SelectRange(cursor.Range{Start: 6, End: 11})
	e.InsertText("go")
	if e.Text() != "hello go" {
		t.Errorf("text = %q", e.Text())
	}
}

func TestEmptyInsertIsNoOp(t *testing.T) {
	e := FromText("abc")
	e.SetCursor(1, false)
	version := e.Version()

	if e.InsertText("") {
		t.Error("empty insert with empty selection should not report change")
	}
	if e.Version() != version {
		t.Error("version must not change on no-op")
	}
	if e.UndoCount() != 0 {
		t.Error("no history entry may be created on no-op")
	}
}

func TestVersionBumpsOnEveryMutation(t *testing.T) {
	e := FromText("")
	v := e.Version()
	e.InsertText("a")
	e.InsertText("b")
	e.Undo()
	e.Redo()
	if e.Version() != v+4 {
		t.Errorf("version = %d, want %d", e.Version(), v+4)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := FromText("one two three")
	e.SelectRange(cursor.Range{Start: 4, End: 7})
	e.InsertText("2")

	textBefore := e.Text()
	selBefore := e.Selection()

	if !e.Undo() {
		t.Fatal("undo should succeed")
	}
	if e.Text() != "one two three" {
		t.Errorf("undo text = %q", e.Text())
	}
	sel := e.Selection()
	if sel.Range().Start != 4 || sel.Range().End != 7 {
		t.Errorf("undo should restore selection, got %+v", sel)
	}

	if !e.Redo() {
		t.Fatal("redo should succeed")
	}
	if e.Text() != textBefore {
		t.Errorf("redo text = %q, want %q", e.Text(), textBefore)
	}
	if e.Selection() != selBefore {
		t.Errorf("redo selection = %+v, want %+v", e.Selection(), selBefore)
	}
}

func TestUndoRedoStackDepths(t *testing.T) {
	e := FromText("")
	const n = 4
	for i := 0; i < n; i++ {
		e.InsertText("x")
	}
	if e.UndoCount() != n || e.RedoCount() != 0 {
		t.Fatalf("depths = %d/%d, want %d/0", e.UndoCount(), e.RedoCount(), n)
	}

	const k = 2
	for i := 0; i < k; i++ {
		e.Undo()
	}
	if e.UndoCount() != n-k || e.RedoCount() != k {
		t.Errorf("depths = %d/%d, want %d/%d", e.UndoCount(), e.RedoCount(), n-k, k)
	}

	// A fresh mutation clears redo.
	e.InsertText("y")
	if e.RedoCount() != 0 {
		t.Errorf("redo depth = %d, want 0 after new mutation", e.RedoCount())
	}
}

func TestUndoEmptyStack(t *testing.T) {
	e := FromText("abc")
	version := e.Version()
	if e.Undo() {
		t.Error("undo on empty stack should return false")
	}
	if e.Version() != version {
		t.Error("failed undo must not bump version")
	}
	if e.Redo() {
		t.Error("redo on empty stack should return false")
	}
}

func TestUndoRestoresMultibyte(t *testing.T) {
	e := FromText("日本語")
	e.SelectRange(cursor.Range{Start: 1, End: 2})
	e.InsertText("中")
	if e.Text() != "日中語" {
		t.Fatalf("text = %q", e.Text())
	}
	e.Undo()
	if e.Text() != "日本語" {
		t.Errorf("undo text = %q", e.Text())
	}
}

func TestBackspace(t *testing.T) {
	e := FromText("abc")
	e.SetCursor(2, false)
	e.Backspace()
	if e.Text() != "ac" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Selection().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Selection().Cursor())
	}

	e.SetCursor(0, false)
	if e.Backspace() {
		t.Error("backspace at buffer start should be a no-op")
	}
}

func TestBackspaceSelection(t *testing.T) {
	e := FromText("hello world")
	e.SelectRange(cursor.Range{Start: 5, End: 11})
	e.Backspace()
	if e.Text() != "hello" {
		t.Errorf("text = %q", e.Text())
	}
}

func TestDeleteForward(t *testing.T) {
	e := FromText("abc")
	e.SetCursor(1, false)
	e.DeleteForward()
	if e.Text() != "ac" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Selection().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Selection().Cursor())
	}

	e.SetCursor(2, false)
	if e.DeleteForward() {
		t.Error("delete at buffer end should be a no-op")
	}
}

func TestMoveHorizontalCollapsesSelection(t *testing.T) {
	e := FromText("hello")
	e.SelectRange(cursor.Range{Start: 1, End: 4})

	e.MoveLeft(false)
	if e.Selection() != cursor.Collapsed(1) {
		t.Errorf("left should collapse to start, got %+v", e.Selection())
	}

	e.SelectRange(cursor.Range{Start: 1, End: 4})
	e.MoveRight(false)
	if e.Selection() != cursor.Collapsed(4) {
		t.Errorf("right should collapse to end, got %+v", e.Selection())
	}
}

func TestMoveAtBufferEdges(t *testing.T) {
	e := FromText("ab")
	e.SetCursor(0, false)
	if e.MoveLeft(false) {
		t.Error("move left at start should not change state")
	}
	e.SetCursor(2, false)
	if e.MoveRight(false) {
		t.Error("move right at end should not change state")
	}
}

func TestPreferredColumnSurvivesShortLine(t *testing.T) {
	// "aa\nbbbb\ncc": cursor at offset 6 is line 1, column 3.
	e := FromText("aa\nbbbb\ncc")
	e.SetCursor(6, false)

	e.MoveUp(false)
	if e.Selection().Cursor() != 2 {
		t.Fatalf("after MoveUp cursor = %d, want 2 (clamped to line 0)", e.Selection().Cursor())
	}

	e.MoveDown(false)
	if e.Selection().Cursor() != 6 {
		t.Errorf("after MoveDown cursor = %d, want 6 (preferred column restored)", e.Selection().Cursor())
	}
}

func TestPreferredColumnClearedByHorizontalMove(t *testing.T) {
	e := FromText("aa\nbbbb\ncc")
	e.SetCursor(6, false)

	e.MoveUp(false) // offset 2, preferred column 3 cached
	e.MoveLeft(false)
	e.MoveDown(false)
	// Preferred column was cleared, so the move keeps column 1.
	if e.Selection().Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", e.Selection().Cursor())
	}
}

func TestMoveVerticalClampsAtEdges(t *testing.T) {
	e := FromText("aa\nbb")
	e.SetCursor(1, false)
	e.MoveUp(false) // already on first line: clamp to line 0, same position
	if e.Selection().Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Selection().Cursor())
	}
	e.SetCursor(4, false)
	e.MoveDown(false)
	if e.Selection().Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", e.Selection().Cursor())
	}
}

func TestMoveLineStartEnd(t *testing.T) {
	e := FromText("aa\nbbbb\ncc")
	e.SetCursor(5, false)
	e.MoveLineStart(false)
	if e.Selection().Cursor() != 3 {
		t.Errorf("line start cursor = %d, want 3", e.Selection().Cursor())
	}
	e.MoveLineEnd(false)
	if e.Selection().Cursor() != 7 {
		t.Errorf("line end cursor = %d, want 7", e.Selection().Cursor())
	}
}

func TestAutoIndentAfterBrace(t *testing.T) {
	e := FromText("{\n}")
	e.SetCursor(1, false)
	e.InsertNewlineAutoIndent()
	if e.Text() != "{\n    \n}" {
		t.Errorf("text = %q, want '{\\n    \\n}'", e.Text())
	}
	if e.Selection().Cursor() != 6 {
		t.Errorf("cursor = %d, want 6", e.Selection().Cursor())
	}
}

func TestAutoIndentCarriesIndent(t *testing.T) {
	e := FromText("    foo")
	e.SetCursor(7, false)
	e.InsertNewlineAutoIndent()
	if e.Text() != "    foo\n    " {
		t.Errorf("text = %q", e.Text())
	}
}

func TestAutoIndentBeforeClosingBrace(t *testing.T) {
	e := FromText("    x; }")
	e.SetCursor(6, false)
	e.InsertNewlineAutoIndent()
	// Indent decreases by one unit before the closing brace.
	if e.Text() != "    x;\n }" {
		t.Errorf("text = %q", e.Text())
	}
}

func TestAutoIndentSplitsBracePair(t *testing.T) {
	e := FromText("{}")
	e.SetCursor(1, false)
	e.InsertNewlineAutoIndent()
	if e.Text() != "{\n\n}" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Selection().Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Selection().Cursor())
	}
}

func TestTakeLastEditIsOneShot(t *testing.T) {
	e := FromText("hello\nworld")
	e.SetCursor(0, false)
	e.InsertText("ab")

	info, ok := e.TakeLastEdit()
	if !ok {
		t.Fatal("expected a pending edit descriptor")
	}
	if info.StartByte != 0 || info.OldEndByte != 0 || info.NewEndByte != 2 {
		t.Errorf("bytes = %d/%d/%d, want 0/0/2", info.StartByte, info.OldEndByte, info.NewEndByte)
	}
	if info.NewEndPoint.Row != 0 || info.NewEndPoint.Column != 2 {
		t.Errorf("new end point = %+v", info.NewEndPoint)
	}

	if _, ok := e.TakeLastEdit(); ok {
		t.Error("descriptor must be consumed exactly once")
	}
}

func TestEditDescriptorAcrossLines(t *testing.T) {
	e := FromText("hello\nworld")
	e.ReplaceRange(cursor.Range{Start: 3, End: 8}, "")

	info, ok := e.TakeLastEdit()
	if !ok {
		t.Fatal("expected descriptor")
	}
	if info.StartByte != 3 || info.OldEndByte != 8 || info.NewEndByte != 3 {
		t.Errorf("bytes = %d/%d/%d", info.StartByte, info.OldEndByte, info.NewEndByte)
	}
	if info.OldEndPoint.Row != 1 || info.OldEndPoint.Column != 2 {
		t.Errorf("old end point = %+v, want row 1 col 2", info.OldEndPoint)
	}
	if info.NewEndPoint.Row != 0 || info.NewEndPoint.Column != 3 {
		t.Errorf("new end point = %+v, want row 0 col 3", info.NewEndPoint)
	}
}

func TestUndoEmitsDescriptor(t *testing.T) {
	e := FromText("abc")
	e.SetCursor(3, false)
	e.InsertText("def")
	e.TakeLastEdit()

	e.Undo()
	info, ok := e.TakeLastEdit()
	if !ok {
		t.Fatal("undo should emit a descriptor")
	}
	if info.StartByte != 3 || info.OldEndByte != 6 || info.NewEndByte != 3 {
		t.Errorf("bytes = %d/%d/%d, want 3/6/3", info.StartByte, info.OldEndByte, info.NewEndByte)
	}
}

func TestSelectedText(t *testing.T) {
	e := FromText("hello world")
	e.SelectRange(cursor.Range{Start: 6, End: 11})
	if got := e.SelectedText(); got != "world" {
		t.Errorf("selected = %q", got)
	}
	e.SetCursor(0, false)
	if got := e.SelectedText(); got != "" {
		t.Errorf("collapsed selection text = %q, want empty", got)
	}
}

func TestSelectAll(t *testing.T) {
	e := FromText("hello")
	e.SelectAll()
	r := e.Selection().Range()
	if r.Start != 0 || r.End != 5 {
		t.Errorf("range = %+v", r)
	}
}

func TestSetCursorClamps(t *testing.T) {
	e := FromText("ab")
	e.SetCursor(99, false)
	if e.Selection().Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", e.Selection().Cursor())
	}
}
