package document

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"quill/internal/textenc"
)

// Settings is the user-tunable document configuration, loaded from TOML.
//
//	indent_unit = "    "
//	default_encoding = "auto"
type Settings struct {
	// IndentUnit is the whitespace inserted per indentation level.
	IndentUnit string `toml:"indent_unit"`

	// DefaultEncoding steers decoding of files that carry no BOM.
	// One of "auto", "utf-8", "utf-16le", "utf-16be", "gbk", "big5".
	DefaultEncoding string `toml:"default_encoding"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		IndentUnit:      "    ",
		DefaultEncoding: "auto",
	}
}

// ParseSettings decodes TOML settings data, filling in defaults for absent
// keys and rejecting values the engine cannot honor.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.IndentUnit == "" {
		return fmt.Errorf("settings: indent_unit must not be empty")
	}
	if strings.TrimLeft(s.IndentUnit, " \t") != "" {
		return fmt.Errorf("settings: indent_unit %q may contain only spaces and tabs", s.IndentUnit)
	}
	if _, err := s.EncodingHint(); err != nil {
		return fmt.Errorf("settings: default_encoding %q: %w", s.DefaultEncoding, err)
	}
	return nil
}

// EncodingHint resolves DefaultEncoding to a decode hint.
func (s Settings) EncodingHint() (textenc.Hint, error) {
	return textenc.ParseHint(s.DefaultEncoding)
}
