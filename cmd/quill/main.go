// Package main is the quill command line tool: it opens files through the
// document engine and reports what the engine sees (detected encoding,
// language, line metrics, and optionally highlight spans).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"quill/internal/document"
	"quill/internal/syntax"
	"quill/internal/textenc"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settings := document.DefaultSettings()
	if opts.ConfigPath != "" {
		data, err := os.ReadFile(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading config: %v\n", err)
			return 1
		}
		settings, err = document.ParseSettings(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	ctx := context.Background()
	for _, path := range opts.Files {
		if err := inspect(ctx, path, opts, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			return 1
		}
	}
	return 0
}

func inspect(ctx context.Context, path string, opts options, settings document.Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	docOpts := []document.Option{document.WithSettings(settings)}
	if opts.Language != "" {
		docOpts = append(docOpts, document.WithLanguage(languageByName(opts.Language)))
	}

	doc, err := document.FromBytes(ctx, path, data, opts.Hint, docOpts...)
	if err != nil {
		return err
	}
	defer doc.Close()

	r := doc.Editor().Rope()
	fmt.Printf("%s\n", path)
	fmt.Printf("  encoding:  %s\n", doc.Encoding())
	fmt.Printf("  language:  %s\n", doc.Language())
	fmt.Printf("  lines:     %d\n", r.LineCount())
	fmt.Printf("  chars:     %d\n", r.LenChars())
	fmt.Printf("  max width: %d\n", doc.MaxLineWidth())

	if opts.DumpSpans {
		src := doc.Text()
		spans, err := doc.HighlightSpans(ctx, 0, uint32(len(src)))
		if err != nil {
			return err
		}
		for _, sp := range spans {
			fmt.Printf("  %6d..%-6d %-12s %q\n", sp.StartByte, sp.EndByte, sp.Tag, src[sp.StartByte:sp.EndByte])
		}
	}
	return nil
}

func languageByName(name string) syntax.Language {
	switch name {
	case "cpp":
		return syntax.LangCpp
	case "python":
		return syntax.LangPython
	case "hlsl":
		return syntax.LangHLSL
	case "markdown":
		return syntax.LangMarkdown
	default:
		return syntax.LangPlainText
	}
}

type options struct {
	ConfigPath string
	Language   string
	Hint       textenc.Hint
	DumpSpans  bool
	Files      []string
}

func parseFlags() options {
	var opts options
	var hintName string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to settings file (TOML)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to settings file (shorthand)")
	flag.StringVar(&opts.Language, "lang", "", "Force language (cpp, python, hlsl, markdown, plaintext)")
	flag.StringVar(&hintName, "encoding", "auto", "Decoding hint (auto, utf-8, utf-16le, utf-16be, gbk, big5)")
	flag.BoolVar(&opts.DumpSpans, "spans", false, "Dump highlight spans")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quill - text engine inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options] files...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill file.py                Report encoding and line metrics\n")
		fmt.Fprintf(os.Stderr, "  quill -spans file.cpp        Dump highlight spans\n")
		fmt.Fprintf(os.Stderr, "  quill -encoding gbk old.txt  Decode with a GBK hint\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Quill %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	hint, err := textenc.ParseHint(hintName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid encoding %q\n", hintName)
		os.Exit(1)
	}
	opts.Hint = hint

	if opts.Language != "" {
		switch opts.Language {
		case "cpp", "python", "hlsl", "markdown", "plaintext":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid language %q\n", opts.Language)
			os.Exit(1)
		}
	}

	opts.Files = flag.Args()
	if len(opts.Files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	return opts
}
