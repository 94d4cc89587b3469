// Package editor provides the single-document editing facade.
//
// An Editor owns one rope, one selection, a preferred-column cache for
// vertical movement, and the undo/redo history. Every mutation goes through
// the history-tracked edit path: it commits the text change, collapses the
// selection after the insertion, bumps the version counter, and leaves a
// one-shot EditInfo describing the raw mutation in byte offsets and
// row/column points, which the caller forwards to incremental parse state.
//
// Commands return whether they changed state, so callers can decide whether
// to redraw or resync without diffing content.
//
// The editor has exactly one writer at a time by contract; it performs no
// internal locking. Confine each editor to a single goroutine.
package editor
