package textenc

import (
	"bytes"
	"testing"
)

func TestDecodeUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("héllo")...)
	text, enc := DecodeBytes(data, HintAuto)
	if enc != UTF8BOM {
		t.Errorf("encoding = %v, want UTF8BOM", enc)
	}
	if text != "héllo" {
		t.Errorf("text = %q", text)
	}
}

func TestBOMBeatsHint(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("abc")...)
	_, enc := DecodeBytes(data, HintGBK)
	if enc != UTF8BOM {
		t.Errorf("BOM must take precedence over hint, got %v", enc)
	}
}

func TestDecodeUTF16LEBOM(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	text, enc := DecodeBytes(data, HintAuto)
	if enc != UTF16LE {
		t.Errorf("encoding = %v, want UTF16LE", enc)
	}
	if text != "hi" {
		t.Errorf("text = %q, want 'hi'", text)
	}
}

func TestDecodeUTF16BEBOM(t *testing.T) {
	data := []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}
	text, enc := DecodeBytes(data, HintAuto)
	if enc != UTF16BE {
		t.Errorf("encoding = %v, want UTF16BE", enc)
	}
	if text != "hi" {
		t.Errorf("text = %q, want 'hi'", text)
	}
}

func TestDecodeAutoValidUTF8(t *testing.T) {
	text, enc := DecodeBytes([]byte("plain ascii and 日本語"), HintAuto)
	if enc != UTF8 {
		t.Errorf("encoding = %v, want UTF8", enc)
	}
	if text != "plain ascii and 日本語" {
		t.Errorf("text = %q", text)
	}
}

func TestDecodeExplicitHint(t *testing.T) {
	// "中" in GBK.
	data := []byte{0xD6, 0xD0}
	text, enc := DecodeBytes(data, HintGBK)
	if enc != GBK {
		t.Errorf("encoding = %v, want GBK", enc)
	}
	if text != "中" {
		t.Errorf("text = %q, want '中'", text)
	}
}

func TestLegacyTieBreakPrefersGBK(t *testing.T) {
	// 0xD6 0xD0 is a valid sequence in both GBK and Big5;
	// the fixed tie-break chooses GBK.
	data := []byte{0xD6, 0xD0}
	text, enc := DecodeBytes(data, HintAuto)
	if enc != GBK {
		t.Errorf("encoding = %v, want GBK on tie", enc)
	}
	if text != "中" {
		t.Errorf("text = %q, want '中'", text)
	}
}

func TestLegacyTieBreakDeterministic(t *testing.T) {
	// Invalid in both legacy encodings: still resolves, still GBK.
	data := []byte{0xFF, 0xFF, 0xFF}
	text1, enc1 := DecodeBytes(data, HintAuto)
	text2, enc2 := DecodeBytes(data, HintAuto)
	if enc1 != GBK {
		t.Errorf("encoding = %v, want GBK when both decodes are dirty", enc1)
	}
	if enc1 != enc2 || text1 != text2 {
		t.Error("detection must be deterministic")
	}
}

func TestEncodeUTF8BOMPrefix(t *testing.T) {
	out := EncodeText("abc", UTF8BOM)
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Errorf("missing BOM prefix: % X", out)
	}
	if !bytes.Equal(out[3:], []byte("abc")) {
		t.Errorf("payload = % X", out[3:])
	}
}

func TestEncodeUTF16RoundTrip(t *testing.T) {
	for _, enc := range []Encoding{UTF16LE, UTF16BE} {
		out := EncodeText("héllo 世界", enc)
		text, got := DecodeBytes(out, HintAuto)
		if got != enc {
			t.Errorf("round trip encoding = %v, want %v", got, enc)
		}
		if text != "héllo 世界" {
			t.Errorf("round trip text = %q", text)
		}
	}
}

func TestGBKRoundTrip(t *testing.T) {
	out := EncodeText("中文", GBK)
	text, _ := DecodeBytes(out, HintGBK)
	if text != "中文" {
		t.Errorf("round trip text = %q", text)
	}
}

func TestLegacyEncodeSubstitutes(t *testing.T) {
	// Outside the GBK repertoire: must not fail, must produce something.
	out := EncodeText("a🚀b", GBK)
	if len(out) == 0 {
		t.Fatal("encode produced no bytes")
	}
	text, _ := DecodeBytes(out, HintGBK)
	if text == "a🚀b" {
		t.Error("round trip outside repertoire should be lossy")
	}
}

func TestDecodeEncodeIdentityUTF8(t *testing.T) {
	original := "line one\nline two\n"
	text, enc := DecodeBytes([]byte(original), HintAuto)
	if out := EncodeText(text, enc); !bytes.Equal(out, []byte(original)) {
		t.Errorf("identity failed: % X", out)
	}
}

func TestParseHint(t *testing.T) {
	cases := map[string]Hint{
		"auto":    HintAuto,
		"UTF-8":   HintUTF8,
		"utf16le": HintUTF16LE,
		"gb2312":  HintGBK,
		"cp950":   HintBig5,
	}
	for s, want := range cases {
		got, err := ParseHint(s)
		if err != nil || got != want {
			t.Errorf("ParseHint(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseHint("latin1"); err == nil {
		t.Error("unknown hint should error")
	}
}

func TestHintAndEncodingNames(t *testing.T) {
	if HintGBK.String() != "gbk" {
		t.Errorf("hint name = %q", HintGBK.String())
	}
	if UTF8BOM.String() != "utf-8-bom" {
		t.Errorf("encoding name = %q", UTF8BOM.String())
	}
}
