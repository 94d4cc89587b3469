package rope

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk (except for the last chunk).
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk represents a bounded string stored in leaf nodes.
// Chunks are immutable once created.
type Chunk struct {
	data    string      // The actual text (immutable)
	summary TextSummary // Precomputed metrics
}

// NewChunk creates a chunk from a string.
// Computes summary metrics eagerly.
func NewChunk(s string) Chunk {
	return Chunk{
		data:    s,
		summary: ComputeSummary(s),
	}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's precomputed metrics.
func (c Chunk) Summary() TextSummary {
	return c.summary
}

// Len returns the byte length of the chunk.
func (c Chunk) Len() int {
	return len(c.data)
}

// Chars returns the rune count of the chunk.
func (c Chunk) Chars() int {
	return c.summary.Chars
}

// IsEmpty returns true if the chunk contains no text.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// Split splits a chunk at a rune offset, returning two chunks.
func (c Chunk) Split(chars int) (Chunk, Chunk) {
	if chars <= 0 {
		return Chunk{}, c
	}
	if chars >= c.summary.Chars {
		return c, Chunk{}
	}

	at := byteIndexOfChar(c.data, chars)
	return NewChunk(c.data[:at]), NewChunk(c.data[at:])
}

// splitIntoChunks splits a string into chunks of appropriate size.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxChunkSize {
		return []Chunk{NewChunk(s)}
	}

	var chunks []Chunk
	remaining := s

	for len(remaining) > 0 {
		if len(remaining) <= MaxChunkSize {
			chunks = append(chunks, NewChunk(remaining))
			break
		}

		splitPoint := findSplitPoint(remaining, TargetChunkSize)
		chunks = append(chunks, NewChunk(remaining[:splitPoint]))
		remaining = remaining[splitPoint:]
	}

	return chunks
}

// findSplitPoint finds a valid UTF-8 boundary near the target byte position,
// preferring to split just after a newline when one is nearby.
func findSplitPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}
	if target <= 0 {
		return 0
	}

	searchStart := target - MinChunkSize/4
	if searchStart < 0 {
		searchStart = 0
	}
	searchEnd := target + MinChunkSize/4
	if searchEnd > len(s) {
		searchEnd = len(s)
	}

	for i := target; i < searchEnd; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= searchStart; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	// No newline nearby; settle for a UTF-8 boundary.
	pos := target
	for pos < len(s) && !isUTF8Start(s[pos]) {
		pos++
	}
	if pos > target+4 || pos >= len(s) {
		pos = target
		for pos > 0 && !isUTF8Start(s[pos]) {
			pos--
		}
	}
	return pos
}

// isUTF8Start returns true if the byte is the start of a UTF-8 sequence.
func isUTF8Start(b byte) bool {
	// Continuation bytes are 10xxxxxx (0x80-0xBF).
	return b&0xC0 != 0x80
}
