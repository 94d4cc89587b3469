package rope

import "unicode/utf8"

// CharOffset is an absolute position in Unicode scalar values.
type CharOffset int

// ByteOffset is an absolute UTF-8 byte position.
type ByteOffset int

// Point is a line/column position. Row is a 0-indexed line number and Column
// is a byte offset within that line, which is the coordinate form incremental
// parsers consume.
type Point struct {
	Row    uint32
	Column uint32
}

// TextSummary holds aggregated metrics for a text span.
// It forms a monoid under Add, which is what makes subtree seeking work.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the Unicode scalar value count.
	Chars int

	// Newlines is the number of '\n' characters.
	Newlines int
}

// Add combines two summaries (monoid operation).
func (s TextSummary) Add(other TextSummary) TextSummary {
	return TextSummary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		Newlines: s.Newlines + other.Newlines,
	}
}

// IsZero returns true if this is the identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	var sum TextSummary
	sum.Bytes = len(s)
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// byteIndexOfChar returns the byte index of the nth rune in s.
// Returns len(s) if n is at or past the end.
func byteIndexOfChar(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// newlinesInFirstChars counts '\n' among the first n runes of s.
func newlinesInFirstChars(s string, n int) int {
	count := 0
	newlines := 0
	for _, r := range s {
		if count >= n {
			break
		}
		count++
		if r == '\n' {
			newlines++
		}
	}
	return newlines
}

// charsThroughNewline returns the number of runes in s up to and including
// the nth newline (1-indexed), and whether that many newlines were found.
func charsThroughNewline(s string, n int) (int, bool) {
	if n <= 0 {
		return 0, true
	}
	count := 0
	seen := 0
	for _, r := range s {
		count++
		if r == '\n' {
			seen++
			if seen == n {
				return count, true
			}
		}
	}
	return count, false
}

// runeAtIndex returns the nth rune of s.
func runeAtIndex(s string, n int) rune {
	count := 0
	for _, r := range s {
		if count == n {
			return r
		}
		count++
	}
	return utf8.RuneError
}
