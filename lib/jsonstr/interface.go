package jsonstr

import "io"

// Feature represents encoder features as bit flags
type Feature uint64

const (
	FeatureCodeUnits Feature = 1 << iota // Raw UTF-16 code units reach the encoder (lone surrogates are reported)
	FeatureHTMLSafe                      // The HTML-safe escape table is honored
	FeatureStreaming                     // Output is written incrementally to the sink
)

// IStringEncoder is the interface for all JSON string literal encoders
type IStringEncoder interface {
	// EncodeUnits writes the quoted literal of a UTF-16 code unit sequence to w
	// It returns a *Error if the sequence contains a broken surrogate pair
	EncodeUnits(w io.Writer, units []uint16) error
	// EncodeString writes the quoted literal of a Go string to w
	EncodeString(w io.Writer, s string) error
	// SupportsFeature reports whether the encoder supports all given features
	SupportsFeature(feature Feature) bool
	// Table returns the escape table in use
	Table() *EscapeTable
}
