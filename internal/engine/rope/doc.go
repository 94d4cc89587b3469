// Package rope provides an immutable, character-indexed rope for text storage.
//
// A rope is a tree where leaf nodes hold text chunks and internal nodes store
// aggregated metrics (byte count, character count, newline count). This
// implementation uses a B+ tree variant for cache locality and predictable
// worst-case performance.
//
// Positions are expressed in Unicode scalar values (runes), not bytes; the
// rope also answers byte-offset and line/column queries from the same
// aggregated metrics, so callers that speak byte coordinates (for example an
// incremental parser) can convert in O(log n).
//
// Key properties:
//   - O(log n) insertion, deletion, slicing, and index conversion
//   - Operations return new ropes; originals are never modified
//   - Line boundaries are '\n'; a preceding '\r' is excluded from a line's
//     visible length but still counts toward offsets
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")       // "hello, world"
//	r = r.Delete(0, 7)         // "world"
//	text := r.String()         // "world"
package rope
