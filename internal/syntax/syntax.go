package syntax

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrParseFailed is returned when the parser produced no tree at all.
var ErrParseFailed = errors.New("syntax: parser produced no tree")

// ConstructionError reports a grammar or query that failed to compile while
// building a State.
type ConstructionError struct {
	Language Language
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("syntax: building %s support: %v", e.Language, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// HighlightTag classifies a highlighted span. Tags are deliberately coarse;
// mapping them to colors is the caller's concern.
type HighlightTag uint8

const (
	TagComment HighlightTag = iota
	TagString
	TagNumber
	TagKeyword
	TagType
	TagFunction
	TagConstant
	TagVariable
	TagProperty
	TagOperator
	TagPunctuation
)

func (t HighlightTag) String() string {
	switch t {
	case TagComment:
		return "comment"
	case TagString:
		return "string"
	case TagNumber:
		return "number"
	case TagKeyword:
		return "keyword"
	case TagType:
		return "type"
	case TagFunction:
		return "function"
	case TagConstant:
		return "constant"
	case TagVariable:
		return "variable"
	case TagProperty:
		return "property"
	case TagOperator:
		return "operator"
	case TagPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [StartByte, EndByte) carrying one tag.
type Span struct {
	StartByte uint32
	EndByte   uint32
	Tag       HighlightTag
}

// Point is a zero-based row and byte column within the source.
type Point struct {
	Row    uint32
	Column uint32
}

// Edit describes one text replacement in tree-sitter's coordinates: byte
// offsets plus the row/column of each boundary.
type Edit struct {
	StartByte   uint32
	OldEndByte  uint32
	NewEndByte  uint32
	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// State holds the incremental parse state for a single document.
type State struct {
	language Language
	parser   *sitter.Parser
	query    *sitter.Query
	tree     *sitter.Tree
	debounce time.Duration

	pending      bool
	pendingSince time.Time

	// now is swapped out by tests to drive the debounce clock.
	now func() time.Time
}

// New builds parse state for the given language. Languages without grammar
// support get an inert State whose operations all no-op.
func New(language Language) (*State, error) {
	spec := specFor(language)
	s := &State{
		language: language,
		debounce: spec.debounce,
		now:      time.Now,
	}
	if spec.grammar == nil {
		return s, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(spec.grammar)

	query, err := sitter.NewQuery([]byte(spec.query), spec.grammar)
	if err != nil {
		parser.Close()
		return nil, &ConstructionError{Language: language, Err: err}
	}

	s.parser = parser
	s.query = query
	return s, nil
}

// Language returns the language this state was built for.
func (s *State) Language() Language { return s.language }

// Supported reports whether this state carries a real grammar.
func (s *State) Supported() bool { return s.parser != nil }

// Pending reports whether queued edits are awaiting a reparse.
func (s *State) Pending() bool { return s.pending }

// SetText performs an immediate full parse of src, discarding any previous
// tree and pending edits.
func (s *State) SetText(ctx context.Context, src []byte) error {
	if s.parser == nil {
		return nil
	}
	tree, err := s.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("full parse: %w", err)
	}
	if tree == nil {
		return ErrParseFailed
	}
	if s.tree != nil {
		s.tree.Close()
	}
	s.tree = tree
	s.pending = false
	return nil
}

// QueueEdit records one text replacement. The current tree's node ranges are
// shifted immediately so stale highlights land in roughly the right place,
// but the actual reparse is deferred until EnsureParsed observes a quiet
// period. Each queued edit restarts the quiet period.
func (s *State) QueueEdit(edit Edit) {
	if s.parser == nil {
		return
	}
	if s.tree != nil {
		s.tree.Edit(sitter.EditInput{
			StartIndex:  edit.StartByte,
			OldEndIndex: edit.OldEndByte,
			NewEndIndex: edit.NewEndByte,
			StartPoint:  sitter.Point{Row: edit.StartPoint.Row, Column: edit.StartPoint.Column},
			OldEndPoint: sitter.Point{Row: edit.OldEndPoint.Row, Column: edit.OldEndPoint.Column},
			NewEndPoint: sitter.Point{Row: edit.NewEndPoint.Row, Column: edit.NewEndPoint.Column},
		})
	}
	s.pending = true
	s.pendingSince = s.now()
}

// EnsureParsed reparses src incrementally if edits are pending and the
// debounce window has elapsed. On parse failure the previous tree is kept
// and the edits stay pending, so a later call retries.
func (s *State) EnsureParsed(ctx context.Context, src []byte) error {
	if s.parser == nil || !s.pending {
		return nil
	}
	if s.now().Sub(s.pendingSince) < s.debounce {
		return nil
	}
	tree, err := s.parser.ParseCtx(ctx, s.tree, src)
	if err != nil {
		return fmt.Errorf("incremental parse: %w", err)
	}
	if tree == nil {
		return ErrParseFailed
	}
	if s.tree != nil && s.tree != tree {
		s.tree.Close()
	}
	s.tree = tree
	s.pending = false
	return nil
}

// HighlightSpans returns the tagged spans intersecting the byte window
// [startByte, endByte) of src, clipped to the window and sorted by start
// then end offset. The current tree is used even if edits are still inside
// the debounce window, which yields shifted-but-stale highlights rather
// than none.
func (s *State) HighlightSpans(ctx context.Context, src []byte, startByte, endByte uint32) ([]Span, error) {
	if err := s.EnsureParsed(ctx, src); err != nil {
		return nil, err
	}
	if s.query == nil || s.tree == nil || startByte >= endByte {
		return nil, nil
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.SetPointRange(pointAt(src, startByte), pointAt(src, endByte))
	qc.Exec(s.query, s.tree.RootNode())

	var spans []Span
	for {
		match, captureIndex, ok := qc.NextCapture()
		if !ok {
			break
		}
		if len(match.Captures) <= int(captureIndex) {
			continue
		}
		capture := match.Captures[captureIndex]
		if capture.Node == nil {
			continue
		}
		tag, ok := tagForCapture(s.query.CaptureNameForId(capture.Index))
		if !ok {
			continue
		}
		start := capture.Node.StartByte()
		end := capture.Node.EndByte()
		if start < startByte {
			start = startByte
		}
		if end > endByte {
			end = endByte
		}
		if start >= end {
			continue
		}
		spans = append(spans, Span{StartByte: start, EndByte: end, Tag: tag})
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].StartByte != spans[j].StartByte {
			return spans[i].StartByte < spans[j].StartByte
		}
		return spans[i].EndByte < spans[j].EndByte
	})
	return spans, nil
}

// Close releases the parser, query, and tree. The State must not be used
// afterwards.
func (s *State) Close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
	if s.query != nil {
		s.query.Close()
		s.query = nil
	}
	if s.parser != nil {
		s.parser.Close()
		s.parser = nil
	}
}

// tagForCapture maps a query capture name to a highlight tag. Only the
// segment before the first dot matters.
func tagForCapture(name string) (HighlightTag, bool) {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			name = name[:i]
			break
		}
	}
	switch name {
	case "comment":
		return TagComment, true
	case "string", "escape", "embedded":
		return TagString, true
	case "number":
		return TagNumber, true
	case "keyword":
		return TagKeyword, true
	case "type", "constructor":
		return TagType, true
	case "function":
		return TagFunction, true
	case "constant":
		return TagConstant, true
	case "variable":
		return TagVariable, true
	case "property", "field":
		return TagProperty, true
	case "operator":
		return TagOperator, true
	case "punctuation":
		return TagPunctuation, true
	default:
		return 0, false
	}
}

// pointAt computes the row and byte column of offset within src.
func pointAt(src []byte, offset uint32) sitter.Point {
	if offset > uint32(len(src)) {
		offset = uint32(len(src))
	}
	var row, col uint32
	for _, b := range src[:offset] {
		if b == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return sitter.Point{Row: row, Column: col}
}
