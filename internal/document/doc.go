// Package document ties one open file together: the editing engine, the
// byte-level encoding it was loaded with, and the incremental syntax state
// for its language.
//
// A Document is created either empty or from raw file bytes. Loading decodes
// the bytes (BOM, caller hint, then content sniffing), remembers the detected
// encoding so Bytes can write the file back in kind, infers the language
// from the path, and seeds the parser with an initial full parse.
//
// Mutations go through the Document's wrapper methods so each edit is
// forwarded to the syntax state as it happens. Callers that reach for the
// underlying Editor directly must call SyncEdits afterwards or highlights
// will drift.
//
// A Document is owned by a single goroutine. Close releases the parser
// resources.
package document
