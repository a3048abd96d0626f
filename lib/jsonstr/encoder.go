package jsonstr

import (
	"fmt"
	"github.com/ValentinKolb/jstr/lib/bitop"
	"io"
	"unicode/utf16"
)

const (
	surr1First = 0xD800
	surr1Last  = 0xDBFF
	surr2First = 0xDC00
	surr2Last  = 0xDFFF

	lineSeparator      = 0x2028
	paragraphSeparator = 0x2029

	maxScalar = 0x10FFFF

	// scratchSize is the size of the write buffer of one Encode call. Output is
	// handed to the sink every time less than flushMargin bytes remain free.
	scratchSize = 256
	flushMargin = 16
)

var (
	escLineSeparator      = fmt.Sprintf("\\u%04x", lineSeparator)
	escParagraphSeparator = fmt.Sprintf("\\u%04x", paragraphSeparator)
)

// NewStringEncoder creates a new encoder using the default or the HTML-safe escape table
func NewStringEncoder(htmlSafe bool) IStringEncoder {
	return &stringEncoderImpl{table: Table(htmlSafe)}
}

// NewStringEncoderWithTable creates a new encoder using a custom escape table
func NewStringEncoderWithTable(table *EscapeTable) IStringEncoder {
	return &stringEncoderImpl{table: table}
}

// stringEncoderImpl implements IStringEncoder on top of Encode
type stringEncoderImpl struct {
	table *EscapeTable
}

// --------------------------------------------------------------------------
// Interface Methods (docu see jsonstr.IStringEncoder)
// --------------------------------------------------------------------------

func (e *stringEncoderImpl) EncodeUnits(w io.Writer, units []uint16) error {
	return Encode(w, units, e.table)
}

func (e *stringEncoderImpl) EncodeString(w io.Writer, s string) error {
	return EncodeString(w, s, e.table)
}

func (e *stringEncoderImpl) SupportsFeature(feature Feature) bool {
	const supported = FeatureCodeUnits | FeatureHTMLSafe | FeatureStreaming
	return supported&feature == feature
}

func (e *stringEncoderImpl) Table() *EscapeTable {
	return e.table
}

// --------------------------------------------------------------------------
// Encode functions
// --------------------------------------------------------------------------

// Encode writes the quoted JSON string literal of units to w.
//
// Bytes are handed to w in code-unit order through a fixed scratch buffer,
// so memory use does not grow with the input. If an error is returned, the
// closing quote has not been written and w may hold a truncated literal.
func Encode(w io.Writer, units []uint16, table *EscapeTable) error {
	var scratch [scratchSize]byte
	buf := append(scratch[:0], '"')

	for i := 0; i < len(units); {
		var err error
		buf, i, err = appendUnit(buf, units, i, table)
		if err != nil {
			return err
		}
		if len(buf) > scratchSize-flushMargin {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = scratch[:0]
		}
	}

	buf = append(buf, '"')
	_, err := w.Write(buf)
	return err
}

// EncodeString is Encode for a Go string. The string is converted to UTF-16
// code units first, invalid UTF-8 sequences become U+FFFD.
func EncodeString(w io.Writer, s string, table *EscapeTable) error {
	return Encode(w, utf16.Encode([]rune(s)), table)
}

// Append appends the quoted JSON string literal of units to dst and returns
// the extended buffer. On error dst is returned unchanged.
func Append(dst []byte, units []uint16, table *EscapeTable) ([]byte, error) {
	out := append(dst, '"')
	for i := 0; i < len(units); {
		var err error
		out, i, err = appendUnit(out, units, i, table)
		if err != nil {
			return dst, err
		}
	}
	return append(out, '"'), nil
}

// AppendString is Append for a Go string
func AppendString(dst []byte, s string, table *EscapeTable) ([]byte, error) {
	return Append(dst, utf16.Encode([]rune(s)), table)
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// appendUnit encodes the code unit at index i and returns the index of the next unconsumed unit
func appendUnit(dst []byte, units []uint16, i int, table *EscapeTable) ([]byte, int, error) {
	c := units[i]

	switch {
	case c < 0x80:
		if lit, ok := table.Lookup(c); ok {
			return append(dst, lit...), i + 1, nil
		}
		return append(dst, byte(c)), i + 1, nil

	case c == 0x80:
		// 128 is part of the table so callers can map it, without an entry it is plain 2-byte UTF-8
		if lit, ok := table.Lookup(c); ok {
			return append(dst, lit...), i + 1, nil
		}
		return appendUTF8Two(dst, uint64(c)), i + 1, nil

	case c == lineSeparator:
		return append(dst, escLineSeparator...), i + 1, nil

	case c == paragraphSeparator:
		return append(dst, escParagraphSeparator...), i + 1, nil

	case c < 0x800:
		return appendUTF8Two(dst, uint64(c)), i + 1, nil

	case isHighSurrogate(int(c)):
		if i+1 >= len(units) {
			return dst, i, newError(ErrMalformedSurrogatePair, i, int(c))
		}
		scalar, err := CombineSurrogates(int(c), int(units[i+1]))
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Index = i
			}
			return dst, i, err
		}
		return appendUTF8Four(dst, uint64(scalar)), i + 2, nil

	case isLowSurrogate(int(c)):
		return dst, i, newError(ErrMalformedSurrogatePair, i, int(c))

	default:
		return appendUTF8Three(dst, uint64(c)), i + 1, nil
	}
}

// CombineSurrogates joins a high and a low surrogate into one scalar value.
// The low unit must lie in [0xDC00, 0xDFFF]; the high unit is not range
// checked, a combination above U+10FFFF fails with ErrSurrogateRangeOverflow.
func CombineSurrogates(high, low int) (rune, error) {
	if !isLowSurrogate(low) {
		return 0, newError(ErrMalformedSurrogatePair, -1, high, low)
	}
	scalar := 0x10000 + ((high - surr1First) << 10) + (low - surr2First)
	if scalar > maxScalar {
		return 0, newError(ErrSurrogateRangeOverflow, -1, high, low)
	}
	return rune(scalar), nil
}

func isHighSurrogate(c int) bool {
	return c >= surr1First && c <= surr1Last
}

func isLowSurrogate(c int) bool {
	return c >= surr2First && c <= surr2Last
}

// appendUTF8Two appends 110xxxxx 10xxxxxx
func appendUTF8Two(dst []byte, c uint64) []byte {
	return append(dst,
		byte(bitop.Or(0xC0, c>>6)),
		byte(bitop.Or(0x80, bitop.And(c, 0x3F))),
	)
}

// appendUTF8Three appends 1110xxxx 10xxxxxx 10xxxxxx
func appendUTF8Three(dst []byte, c uint64) []byte {
	return append(dst,
		byte(bitop.Or(0xE0, c>>12)),
		byte(bitop.Or(0x80, bitop.And(c>>6, 0x3F))),
		byte(bitop.Or(0x80, bitop.And(c, 0x3F))),
	)
}

// appendUTF8Four appends 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
func appendUTF8Four(dst []byte, scalar uint64) []byte {
	return append(dst,
		byte(bitop.Or(0xF0, scalar>>18)),
		byte(bitop.Or(0x80, bitop.And(scalar>>12, 0x3F))),
		byte(bitop.Or(0x80, bitop.And(scalar>>6, 0x3F))),
		byte(bitop.Or(0x80, bitop.And(scalar, 0x3F))),
	)
}
