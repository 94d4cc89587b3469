package textenc

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownHint indicates an unrecognized encoding hint name.
var ErrUnknownHint = errors.New("unknown encoding hint")

// Hint is a caller-supplied encoding preference for decoding.
type Hint uint8

// Decoding hints. HintAuto enables detection.
const (
	HintAuto Hint = iota
	HintUTF8
	HintUTF16LE
	HintUTF16BE
	HintGBK
	HintBig5
)

// ParseHint parses a hint name. Recognized spellings follow common usage,
// e.g. "utf8", "utf-8", "utf16le", "gb2312", "cp950".
func ParseHint(s string) (Hint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return HintAuto, nil
	case "utf8", "utf-8":
		return HintUTF8, nil
	case "utf16le", "utf-16le", "utf16-le":
		return HintUTF16LE, nil
	case "utf16be", "utf-16be", "utf16-be":
		return HintUTF16BE, nil
	case "gbk", "gb2312", "cp936":
		return HintGBK, nil
	case "big5", "big-5", "cp950":
		return HintBig5, nil
	default:
		return HintAuto, ErrUnknownHint
	}
}

// String returns the canonical hint name.
func (h Hint) String() string {
	switch h {
	case HintUTF8:
		return "utf-8"
	case HintUTF16LE:
		return "utf-16le"
	case HintUTF16BE:
		return "utf-16be"
	case HintGBK:
		return "gbk"
	case HintBig5:
		return "big5"
	default:
		return "auto"
	}
}

// Encoding is a concrete, resolved text encoding.
type Encoding uint8

// Concrete encodings a decode can resolve to.
const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
	GBK
	Big5
)

// String returns the canonical encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case GBK:
		return "gbk"
	case Big5:
		return "big5"
	default:
		return "utf-8"
	}
}

// Byte-order marks.
var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

var (
	utf16LECodec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BECodec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// DecodeBytes converts raw bytes to text, resolving the concrete encoding.
//
// Priority: a BOM always wins over any hint and is stripped; an explicit
// hint decodes directly with lossy substitution; otherwise strict UTF-8 is
// tried; otherwise GBK and Big5 are compared and the clean decode wins,
// preferring GBK on a tie. Never fails: some text is always produced.
func DecodeBytes(data []byte, hint Hint) (string, Encoding) {
	if rest, ok := bytes.CutPrefix(data, utf8BOM); ok {
		return lossyUTF8(rest), UTF8BOM
	}
	if rest, ok := bytes.CutPrefix(data, utf16LEBOM); ok {
		return decodeWith(utf16LECodec, rest), UTF16LE
	}
	if rest, ok := bytes.CutPrefix(data, utf16BEBOM); ok {
		return decodeWith(utf16BECodec, rest), UTF16BE
	}

	switch hint {
	case HintUTF8:
		return lossyUTF8(data), UTF8
	case HintUTF16LE:
		return decodeWith(utf16LECodec, data), UTF16LE
	case HintUTF16BE:
		return decodeWith(utf16BECodec, data), UTF16BE
	case HintGBK:
		return decodeWith(simplifiedchinese.GBK, data), GBK
	case HintBig5:
		return decodeWith(traditionalchinese.Big5, data), Big5
	}

	if utf8.Valid(data) {
		return string(data), UTF8
	}

	gbkText, gbkClean := tryDecode(simplifiedchinese.GBK, data)
	big5Text, big5Clean := tryDecode(traditionalchinese.Big5, data)

	if big5Clean && !gbkClean {
		return big5Text, Big5
	}
	// GBK wins when it alone is clean, and on ties in either direction.
	return gbkText, GBK
}

// EncodeText converts text back to bytes in the given encoding.
// BOM-carrying encodings re-emit their exact BOM prefix; the legacy
// double-byte encodings substitute unrepresentable characters.
func EncodeText(text string, enc Encoding) []byte {
	switch enc {
	case UTF8BOM:
		out := make([]byte, 0, len(text)+len(utf8BOM))
		out = append(out, utf8BOM...)
		return append(out, text...)
	case UTF16LE:
		return prefixBOM(utf16LEBOM, encodeWith(utf16LECodec, text))
	case UTF16BE:
		return prefixBOM(utf16BEBOM, encodeWith(utf16BECodec, text))
	case GBK:
		return encodeWith(simplifiedchinese.GBK, text)
	case Big5:
		return encodeWith(traditionalchinese.Big5, text)
	default:
		return []byte(text)
	}
}

// decodeWith decodes bytes with substitution on invalid sequences.
func decodeWith(enc encoding.Encoding, data []byte) string {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return lossyUTF8(data)
	}
	return string(out)
}

// tryDecode decodes and reports whether the result is free of substitutions.
func tryDecode(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return lossyUTF8(data), false
	}
	text := string(out)
	return text, !strings.ContainsRune(text, utf8.RuneError)
}

// encodeWith encodes text, substituting unrepresentable characters.
func encodeWith(enc encoding.Encoding, text string) []byte {
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return []byte(text)
	}
	return out
}

// lossyUTF8 replaces invalid UTF-8 sequences with U+FFFD.
func lossyUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// prefixBOM prepends a BOM to encoded bytes.
func prefixBOM(bom, data []byte) []byte {
	out := make([]byte, 0, len(bom)+len(data))
	out = append(out, bom...)
	return append(out, data...)
}
