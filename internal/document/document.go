package document

import (
	"context"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"quill/internal/engine/cursor"
	"quill/internal/engine/editor"
	"quill/internal/syntax"
	"quill/internal/textenc"
)

// Document is one open file: text engine, encoding, and syntax state.
type Document struct {
	id       uuid.UUID
	path     string
	encoding textenc.Encoding
	language syntax.Language
	editor   *editor.Editor
	syntax   *syntax.State
}

// newSyntaxState is swapped out by tests to exercise construction failure.
var newSyntaxState = syntax.New

// Option configures a Document during construction.
type Option func(*options)

type options struct {
	language    syntax.Language
	hasLanguage bool
	settings    Settings
	hasSettings bool
}

// WithLanguage overrides the language inferred from the file path.
func WithLanguage(lang syntax.Language) Option {
	return func(o *options) {
		o.language = lang
		o.hasLanguage = true
	}
}

// WithSettings applies user settings (indent unit, fallback encoding).
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.settings = s
		o.hasSettings = true
	}
}

// Empty creates an unnamed, empty, UTF-8 document.
func Empty(ctx context.Context, opts ...Option) (*Document, error) {
	return build(ctx, "", editor.Empty(), textenc.UTF8, opts)
}

// FromBytes decodes raw file bytes and builds a document around them. The
// hint steers decoding when the bytes carry no BOM; pass textenc.HintAuto to
// sniff. The detected encoding is remembered so Bytes writes the file back
// the way it arrived.
func FromBytes(ctx context.Context, path string, data []byte, hint textenc.Hint, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if hint == textenc.HintAuto && o.hasSettings {
		if h, err := o.settings.EncodingHint(); err == nil {
			hint = h
		}
	}
	text, enc := textenc.DecodeBytes(data, hint)
	return build(ctx, path, editor.FromText(text), enc, opts)
}

func build(ctx context.Context, path string, ed *editor.Editor, enc textenc.Encoding, opts []Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lang := syntax.LanguageFromPath(path)
	if o.hasLanguage {
		lang = o.language
	}
	syn, err := newSyntaxState(lang)
	if err != nil {
		// A grammar or query that fails to build kills highlighting for
		// this document, not the document itself. Fall back to an inert
		// state and keep the file editable.
		syn, _ = syntax.New(syntax.LangPlainText)
	}
	if err := syn.SetText(ctx, []byte(ed.Text())); err != nil {
		syn.Close()
		return nil, err
	}

	if o.hasSettings && o.settings.IndentUnit != "" {
		ed.SetIndentUnit(o.settings.IndentUnit)
	}

	return &Document{
		id:       uuid.New(),
		path:     path,
		encoding: enc,
		language: lang,
		editor:   ed,
		syntax:   syn,
	}, nil
}

// ID returns the document's stable identity.
func (d *Document) ID() uuid.UUID { return d.id }

// Path returns the file path the document was loaded from, or "" for an
// unnamed document.
func (d *Document) Path() string { return d.path }

// Encoding returns the byte encoding used when saving.
func (d *Document) Encoding() textenc.Encoding { return d.encoding }

// SetEncoding changes the encoding used by Bytes, for save-as flows.
func (d *Document) SetEncoding(enc textenc.Encoding) { d.encoding = enc }

// Language returns the document's language, which may differ from the
// syntax state's when highlighting fell back to the inert state.
func (d *Document) Language() syntax.Language { return d.language }

// Syntax exposes the underlying parse state.
func (d *Document) Syntax() *syntax.State { return d.syntax }

// Editor exposes the underlying engine for reads and cursor movement.
// After mutating through it directly, call SyncEdits.
func (d *Document) Editor() *editor.Editor { return d.editor }

// Text returns the full document text.
func (d *Document) Text() string { return d.editor.Text() }

// Bytes encodes the document text in its remembered encoding, for writing
// back to disk.
func (d *Document) Bytes() []byte {
	return textenc.EncodeText(d.editor.Text(), d.encoding)
}

// InsertText inserts at the cursor, replacing any selection.
func (d *Document) InsertText(text string) bool {
	changed := d.editor.InsertText(text)
	d.SyncEdits()
	return changed
}

// InsertNewlineAutoIndent inserts a newline with brace-aware indentation.
func (d *Document) InsertNewlineAutoIndent() bool {
	changed := d.editor.InsertNewlineAutoIndent()
	d.SyncEdits()
	return changed
}

// Backspace deletes the selection, or one character before the cursor.
func (d *Document) Backspace() bool {
	changed := d.editor.Backspace()
	d.SyncEdits()
	return changed
}

// DeleteForward deletes the selection, or one character after the cursor.
func (d *Document) DeleteForward() bool {
	changed := d.editor.DeleteForward()
	d.SyncEdits()
	return changed
}

// ReplaceRange replaces a character range with text.
func (d *Document) ReplaceRange(r cursor.Range, text string) bool {
	changed := d.editor.ReplaceRange(r, text)
	d.SyncEdits()
	return changed
}

// Undo reverts the most recent edit.
func (d *Document) Undo() bool {
	ok := d.editor.Undo()
	d.SyncEdits()
	return ok
}

// Redo reapplies the most recently undone edit.
func (d *Document) Redo() bool {
	ok := d.editor.Redo()
	d.SyncEdits()
	return ok
}

// SyncEdits forwards any edit the engine recorded since the last sync to
// the syntax state.
func (d *Document) SyncEdits() {
	info, ok := d.editor.TakeLastEdit()
	if !ok {
		return
	}
	d.syntax.QueueEdit(syntax.Edit{
		StartByte:   uint32(info.StartByte),
		OldEndByte:  uint32(info.OldEndByte),
		NewEndByte:  uint32(info.NewEndByte),
		StartPoint:  syntax.Point(info.StartPoint),
		OldEndPoint: syntax.Point(info.OldEndPoint),
		NewEndPoint: syntax.Point(info.NewEndPoint),
	})
}

// HighlightSpans returns highlight spans intersecting the byte window
// [startByte, endByte) of the current text.
func (d *Document) HighlightSpans(ctx context.Context, startByte, endByte uint32) ([]syntax.Span, error) {
	return d.syntax.HighlightSpans(ctx, []byte(d.editor.Text()), startByte, endByte)
}

// MaxLineWidth returns the widest line's display width in terminal cells,
// counting grapheme clusters rather than runes so emoji and wide CJK text
// measure correctly.
func (d *Document) MaxLineWidth() int {
	r := d.editor.Rope()
	max := 0
	for line := 0; line < r.LineCount(); line++ {
		if w := uniseg.StringWidth(r.LineText(line)); w > max {
			max = w
		}
	}
	return max
}

// Close releases the parser resources.
func (d *Document) Close() {
	d.syntax.Close()
}
