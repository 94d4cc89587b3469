// Package history provides the reversible edit log for an editor.
//
// The log is two explicit stacks of EditRecord values. Pushing a new record
// (any mutation that is not itself an undo or redo) clears the redo stack.
// Undo and redo move records between the stacks; the editor owns the actual
// reapplication of text and selection state, because a record must restore
// the exact selections captured when the edit committed.
//
// History is not safe for concurrent use; it is owned by exactly one editor,
// which has exactly one writer at a time by contract.
package history
