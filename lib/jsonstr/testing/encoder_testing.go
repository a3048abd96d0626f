package testing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"strings"
	"sync"
	"testing"
	"unicode/utf16"
)

// EncoderFactory is a function that creates a new encoder using the default or the HTML-safe escape table
type EncoderFactory func(htmlSafe bool) jsonstr.IStringEncoder

// RunEncoderTests runs the conformance suite for an IStringEncoder implementation.
func RunEncoderTests(t *testing.T, name string, factory EncoderFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("RoundTrip", func(t *testing.T) {
			testRoundTrip(t, factory)
		})

		t.Run("EscapingLiterals", func(t *testing.T) {
			testEscapingLiterals(t, factory)
		})

		t.Run("HTMLSafe", func(t *testing.T) {
			testHTMLSafe(t, factory)
		})

		t.Run("LineSeparators", func(t *testing.T) {
			testLineSeparators(t, factory)
		})

		t.Run("LoneHighSurrogate", func(t *testing.T) {
			testLoneHighSurrogate(t, factory)
		})

		t.Run("LoneLowSurrogate", func(t *testing.T) {
			testLoneLowSurrogate(t, factory)
		})

		t.Run("ConcurrentUse", func(t *testing.T) {
			testConcurrentUse(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the encoder supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, enc jsonstr.IStringEncoder, feature jsonstr.Feature) {
	if !enc.SupportsFeature(feature) {
		t.Skip()
	}
}

// esc returns the six byte \uXXXX escape of c
func esc(c int) string {
	return fmt.Sprintf("\\u%04x", c)
}

func encodeUnits(t testing.TB, enc jsonstr.IStringEncoder, units []uint16) string {
	t.Helper()
	var buf bytes.Buffer
	if err := enc.EncodeUnits(&buf, units); err != nil {
		t.Fatalf("EncodeUnits(%x) failed: %v", units, err)
	}
	return buf.String()
}

// testTexts returns the round trip corpus
func testTexts() map[string]string {
	return map[string]string{
		"Empty":         "",
		"ASCII":         "hello, world",
		"Quotes":        `say "hi" \ bye`,
		"Controls":      "line\nfeed\ttab\rcr\bbs\fff\x00nul\x07bell\x1f",
		"BMP":           "café ñandú Straße € 日本語",
		"Supplementary": "grin \U0001F600 and gothic \U00010348",
		"HTML":          `<a href='x'>&amp;=</a>`,
		"Separators":    "a\u2028b\u2029c",
		"Mixed":         "\x01é\U0001F600<€>\"",
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testRoundTrip(t *testing.T, factory EncoderFactory) {
	for _, htmlSafe := range []bool{false, true} {
		enc := factory(htmlSafe)

		for name, text := range testTexts() {
			t.Run(fmt.Sprintf("%s/html=%t", name, htmlSafe), func(t *testing.T) {
				out := encodeUnits(t, enc, utf16.Encode([]rune(text)))

				if !json.Valid([]byte(out)) {
					t.Fatalf("output is not valid JSON: %q", out)
				}

				var decoded string
				if err := json.Unmarshal([]byte(out), &decoded); err != nil {
					t.Fatalf("failed to decode %q: %v", out, err)
				}
				if decoded != text {
					t.Errorf("round trip mismatch:\nOriginal: %q\nResult:   %q", text, decoded)
				}

				// EncodeString must produce the same bytes
				var buf bytes.Buffer
				if err := enc.EncodeString(&buf, text); err != nil {
					t.Fatalf("EncodeString failed: %v", err)
				}
				if buf.String() != out {
					t.Errorf("EncodeString = %q, EncodeUnits = %q", buf.String(), out)
				}
			})
		}
	}
}

func testEscapingLiterals(t *testing.T, factory EncoderFactory) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bell", "\a", `"` + esc(0x07) + `"`},
		{"nul", "\x00", `"` + esc(0x00) + `"`},
		{"unit separator", "\x1f", `"` + esc(0x1f) + `"`},
		{"quote", `"`, `"\""`},
		{"backslash", `\`, `"\\"`},
		{"tab", "\t", `"\t"`},
		{"backspace", "\b", `"\b"`},
		{"newline", "\n", `"\n"`},
		{"carriage return", "\r", `"\r"`},
		{"form feed", "\f", `"\f"`},
		{"solidus stays raw", "/", `"/"`},
		{"delete stays raw", "\x7f", "\"\x7f\""},
	}

	for _, htmlSafe := range []bool{false, true} {
		enc := factory(htmlSafe)
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/html=%t", tt.name, htmlSafe), func(t *testing.T) {
				got := encodeUnits(t, enc, utf16.Encode([]rune(tt.input)))
				if got != tt.want {
					t.Errorf("got %s, want %s", got, tt.want)
				}
			})
		}
	}
}

func testHTMLSafe(t *testing.T, factory EncoderFactory) {
	const input = `<>&='`

	plain := factory(false)
	if got := encodeUnits(t, plain, utf16.Encode([]rune(input))); got != `"`+input+`"` {
		t.Errorf("default mode should leave HTML characters raw, got %s", got)
	}

	safe := factory(true)
	requireFeature(t, safe, jsonstr.FeatureHTMLSafe)

	want := `"` + esc('<') + esc('>') + esc('&') + esc('=') + esc('\'') + `"`
	if got := encodeUnits(t, safe, utf16.Encode([]rune(input))); got != want {
		t.Errorf("html-safe mode: got %s, want %s", got, want)
	}
}

func testLineSeparators(t *testing.T, factory EncoderFactory) {
	want := `"` + esc(0x2028) + esc(0x2029) + `"`
	for _, htmlSafe := range []bool{false, true} {
		if got := encodeUnits(t, factory(htmlSafe), []uint16{0x2028, 0x2029}); got != want {
			t.Errorf("html=%t: got %s, want %s", htmlSafe, got, want)
		}
	}
}

func testLoneHighSurrogate(t *testing.T, factory EncoderFactory) {
	enc := factory(false)
	requireFeature(t, enc, jsonstr.FeatureCodeUnits)

	for _, units := range [][]uint16{{0xD800}, {'a', 0xD83D}, {0xD83D, 'x'}} {
		var buf bytes.Buffer
		err := enc.EncodeUnits(&buf, units)
		if !errors.Is(err, jsonstr.ErrMalformedSurrogatePair) {
			t.Errorf("EncodeUnits(%x): expected ErrMalformedSurrogatePair, got %v", units, err)
		}
		if err != nil && !strings.Contains(err.Error(), "0xd8") {
			t.Errorf("error %q should name the high surrogate in hex", err.Error())
		}
	}
}

func testLoneLowSurrogate(t *testing.T, factory EncoderFactory) {
	enc := factory(false)
	requireFeature(t, enc, jsonstr.FeatureCodeUnits)

	for _, units := range [][]uint16{{0xDC00}, {'a', 0xDFFF, 'b'}} {
		var buf bytes.Buffer
		err := enc.EncodeUnits(&buf, units)
		if !errors.Is(err, jsonstr.ErrMalformedSurrogatePair) {
			t.Errorf("EncodeUnits(%x): expected ErrMalformedSurrogatePair, got %v", units, err)
		}
	}
}

func testConcurrentUse(t *testing.T, factory EncoderFactory) {
	enc := factory(true)
	texts := testTexts()

	expected := make(map[string]string, len(texts))
	for name, text := range texts {
		expected[name] = encodeUnits(t, enc, utf16.Encode([]rune(text)))
	}

	const goroutines = 8
	const iterations = 200

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			for i := 0; i < iterations; i++ {
				for name, text := range texts {
					buf.Reset()
					if err := enc.EncodeString(&buf, text); err != nil {
						errs <- err
						return
					}
					if buf.String() != expected[name] {
						errs <- fmt.Errorf("%s: got %q, want %q", name, buf.String(), expected[name])
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
