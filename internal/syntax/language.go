package syntax

import (
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/python"
)

// Language identifies the grammar and highlight rules used for a document.
type Language uint8

const (
	LangPlainText Language = iota
	LangCpp
	LangPython
	LangHLSL
	LangMarkdown
)

func (l Language) String() string {
	switch l {
	case LangCpp:
		return "cpp"
	case LangPython:
		return "python"
	case LangHLSL:
		return "hlsl"
	case LangMarkdown:
		return "markdown"
	default:
		return "plaintext"
	}
}

// LanguageFromPath maps a file path to a Language by extension. Unknown
// extensions fall back to LangPlainText.
func LanguageFromPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cc", ".cpp", ".cxx", ".h", ".hpp", ".hh":
		return LangCpp
	case ".py":
		return LangPython
	case ".hlsl", ".hlsli", ".fx":
		return LangHLSL
	case ".md", ".markdown":
		return LangMarkdown
	default:
		return LangPlainText
	}
}

// defaultDebounce is the quiet period required after the last queued edit
// before EnsureParsed will reparse.
const defaultDebounce = 40 * time.Millisecond

// languageSpec bundles everything needed to build a State for one language.
// A nil grammar marks a language without syntax support.
type languageSpec struct {
	grammar  *sitter.Language
	query    string
	debounce time.Duration
}

func specFor(l Language) languageSpec {
	switch l {
	case LangCpp:
		return languageSpec{grammar: cpp.GetLanguage(), query: cppHighlights, debounce: defaultDebounce}
	case LangPython:
		return languageSpec{grammar: python.GetLanguage(), query: pythonHighlights, debounce: defaultDebounce}
	case LangHLSL:
		// HLSL is close enough to C++ at the node level that the C++
		// grammar parses it usefully; only the query differs.
		return languageSpec{grammar: cpp.GetLanguage(), query: hlslHighlights, debounce: defaultDebounce}
	default:
		return languageSpec{}
	}
}
