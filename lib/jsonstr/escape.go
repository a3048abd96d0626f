package jsonstr

import (
	"fmt"
)

// tableSize covers the ASCII range plus the synthetic slot 128
const tableSize = 129

// EscapeTable maps code units 0..128 to an optional literal replacement.
// Tables are immutable after construction and safe for concurrent use.
type EscapeTable struct {
	name    string
	entries [tableSize]string
}

var (
	// DefaultTable escapes the quotation mark, the reverse solidus and all
	// control characters (U+0000 through U+001F).
	DefaultTable = newDefaultTable()

	// HTMLSafeTable additionally escapes <, >, &, = and ' so that the output
	// can be embedded in HTML and script contexts.
	HTMLSafeTable = newHTMLSafeTable()
)

// Table selects one of the two built-in tables
func Table(htmlSafe bool) *EscapeTable {
	if htmlSafe {
		return HTMLSafeTable
	}
	return DefaultTable
}

func newDefaultTable() *EscapeTable {
	t := &EscapeTable{name: "default"}
	for i := 0; i <= 0x1f; i++ {
		t.entries[i] = fmt.Sprintf("\\u%04x", i)
	}
	t.entries['"'] = `\"`
	t.entries['\\'] = `\\`
	t.entries['\t'] = `\t`
	t.entries['\b'] = `\b`
	t.entries['\n'] = `\n`
	t.entries['\r'] = `\r`
	t.entries['\f'] = `\f`
	return t
}

func newHTMLSafeTable() *EscapeTable {
	t := newDefaultTable()
	t.name = "html-safe"
	for _, c := range []byte{'<', '>', '&', '=', '\''} {
		t.entries[c] = fmt.Sprintf("\\u%04x", c)
	}
	return t
}

// Lookup returns the literal replacement for c, if any
func (t *EscapeTable) Lookup(c uint16) (string, bool) {
	if int(c) >= tableSize {
		return "", false
	}
	lit := t.entries[c]
	return lit, lit != ""
}

// With returns a copy of the table where c is replaced by literal. An empty
// literal removes the entry. Only code units 0..128 can be mapped.
func (t *EscapeTable) With(c uint16, literal string) (*EscapeTable, error) {
	if int(c) >= tableSize {
		return nil, fmt.Errorf("code unit 0x%x outside of escape table range [0x0, 0x%x]", c, tableSize-1)
	}
	cp := *t
	cp.name = t.name + "+custom"
	cp.entries[c] = literal
	return &cp, nil
}

// Name returns a short identifier of the table (used in logs and config output)
func (t *EscapeTable) Name() string {
	return t.name
}
