// Package textenc converts between raw file bytes and editor text.
//
// Decoding resolves an encoding in a fixed priority order: a byte-order mark
// always wins and is stripped; otherwise an explicit hint is honored with
// lossy substitution; otherwise strict UTF-8 is attempted; otherwise the
// bytes are tried as GBK and Big5 and the clean decode wins, with a fixed
// GBK-first tie-break when both are clean or both are dirty. Ambiguity is
// never an error: the caller always receives text plus the concrete encoding
// that produced it.
//
// Encoding is the inverse mapping. BOM-carrying encodings re-emit their exact
// BOM prefix. For the legacy double-byte encodings, characters outside the
// repertoire are replaced with a substitute; round-tripping is only
// guaranteed for characters each encoding can represent.
package textenc
