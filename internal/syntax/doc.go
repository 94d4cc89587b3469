// Package syntax maintains per-document incremental parse state and answers
// highlight queries over it.
//
// Each State owns one tree-sitter parser, an optional compiled highlight
// query, and the most recent parse tree. Edits are queued into the tree's
// bookkeeping immediately (shifting downstream node ranges) but reparsing is
// debounced: EnsureParsed only reparses once a quiet period has elapsed since
// the last queued edit, and the debounce is a plain wall-clock comparison —
// there is no timer or background goroutine, so reparse cadence is entirely a
// function of how often the caller polls.
//
// Languages without a grammar get a permanently inert State: every operation
// is a no-op and highlight queries return nothing. A failed reparse is
// recoverable — the previous tree is retained and the error reported.
//
// A State is owned by exactly one document and is not safe for concurrent
// use. Close releases the underlying C resources.
package syntax
