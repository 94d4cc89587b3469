package rope

import "strings"

// Rope is an immutable, character-indexed rope.
// Operations return new Rope values; the original is never modified.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}

	chunks := splitIntoChunks(s)
	return buildFromChunks(chunks)
}

// buildFromChunks builds a rope from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var leaves []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := i + MaxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		leaves = append(leaves, newLeafNodeWithChunks(leafChunks))
	}

	nodes := leaves
	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := i + MaxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	if len(nodes) == 0 {
		return New()
	}
	return Rope{root: nodes[0]}
}

// LenChars returns the total rune count.
func (r Rope) LenChars() CharOffset {
	if r.root == nil {
		return 0
	}
	return CharOffset(r.root.summary.Chars)
}

// LenBytes returns the total UTF-8 byte count.
func (r Rope) LenBytes() ByteOffset {
	if r.root == nil {
		return 0
	}
	return ByteOffset(r.root.summary.Bytes)
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Newlines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.LenChars() == 0
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(int(r.LenBytes()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end).
func (r Rope) Slice(start, end CharOffset) string {
	if r.root == nil || start >= end {
		return ""
	}
	return r.root.textInRange(int(start), int(end))
}

// CharAt returns the rune at the given offset.
// Returns false if the offset is out of range.
func (r Rope) CharAt(offset CharOffset) (rune, bool) {
	if r.root == nil {
		return 0, false
	}
	return r.root.charAt(int(offset))
}

// Insert inserts text at the given rune offset.
// Returns a new rope; the original is unchanged.
func (r Rope) Insert(offset CharOffset, text string) Rope {
	if len(text) == 0 {
		return r
	}

	if r.root == nil || r.LenChars() == 0 {
		return FromString(text)
	}

	if offset <= 0 {
		return FromString(text).Concat(r)
	}
	if offset >= r.LenChars() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(offset)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes text in the rune range [start, end).
// Returns a new rope; the original is unchanged.
func (r Rope) Delete(start, end CharOffset) Rope {
	if r.root == nil || start >= end {
		return r
	}

	total := r.LenChars()
	if start >= total {
		return r
	}
	if end > total {
		end = total
	}

	if start <= 0 && end >= total {
		return New()
	}
	if start <= 0 {
		_, right := r.Split(end)
		return right
	}
	if end >= total {
		left, _ := r.Split(start)
		return left
	}

	left, temp := r.Split(start)
	_, right := temp.Split(end - start)
	return left.Concat(right)
}

// Split splits the rope at a rune offset, returning two ropes.
// Left contains [0, offset), right contains [offset, end).
func (r Rope) Split(offset CharOffset) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.LenChars() {
		return r, New()
	}

	leftRoot, rightRoot := r.root.split(int(offset))
	return Rope{root: leftRoot}, Rope{root: rightRoot}
}

// Concat concatenates two ropes.
// Returns a new rope; the originals are unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.LenChars() == 0 {
		return other
	}
	if other.root == nil || other.LenChars() == 0 {
		return r
	}

	return Rope{root: concat(r.root, other.root)}
}

// CharToByte converts a rune offset to a UTF-8 byte offset.
func (r Rope) CharToByte(offset CharOffset) ByteOffset {
	if r.root == nil {
		return 0
	}
	return ByteOffset(r.root.charToByte(int(offset)))
}

// CharToLine returns the 0-indexed line containing the given rune offset.
// An offset at or past the end of the rope maps to the last line.
func (r Rope) CharToLine(offset CharOffset) int {
	if r.root == nil {
		return 0
	}
	return r.root.newlinesBeforeChar(int(offset))
}

// LineToChar returns the rune offset of the start of the given line.
// A line at or past LineCount maps to the end of the rope.
func (r Rope) LineToChar(line int) CharOffset {
	if r.root == nil || line <= 0 {
		return 0
	}
	return CharOffset(r.root.charForLine(line))
}

// LineVisibleLen returns the rune length of the given line, excluding the
// trailing '\n' and any '\r' immediately before it.
func (r Rope) LineVisibleLen(line int) int {
	start := r.LineToChar(line)

	var end CharOffset
	if line >= r.LineCount()-1 {
		end = r.LenChars()
	} else {
		end = r.LineToChar(line+1) - 1 // drop the '\n'
	}

	if end > start {
		if ch, ok := r.CharAt(end - 1); ok && ch == '\r' {
			end--
		}
	}
	if end < start {
		return 0
	}
	return int(end - start)
}

// LineText returns the text of the given line without its terminator.
func (r Rope) LineText(line int) string {
	start := r.LineToChar(line)
	return r.Slice(start, start+CharOffset(r.LineVisibleLen(line)))
}

// LineTextWithEOL returns the text of the given line including its
// terminator, if any.
func (r Rope) LineTextWithEOL(line int) string {
	start := r.LineToChar(line)
	var end CharOffset
	if line >= r.LineCount()-1 {
		end = r.LenChars()
	} else {
		end = r.LineToChar(line + 1)
	}
	return r.Slice(start, end)
}

// PointForChar converts a rune offset to a row/byte-column position.
func (r Rope) PointForChar(offset CharOffset) Point {
	if r.root == nil {
		return Point{}
	}
	if offset > r.LenChars() {
		offset = r.LenChars()
	}

	row := r.CharToLine(offset)
	lineStart := r.LineToChar(row)
	col := r.CharToByte(offset) - r.CharToByte(lineStart)
	return Point{Row: uint32(row), Column: uint32(col)}
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}
