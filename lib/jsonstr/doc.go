// Package jsonstr implements the JSON string literal encoder. It converts a
// sequence of UTF-16 code units into a quoted, escaped UTF-8 byte sequence
// that conforms to the string grammar of RFC 8259, section 7.
//
// The package focuses on:
//   - Escaping via immutable escape tables (default and HTML-safe)
//   - Manual UTF-8 packing of 2, 3 and 4 byte forms through the bitop primitive
//   - Validation and combination of UTF-16 surrogate pairs
//   - Streaming output with constant extra memory per call
//
// Key Components:
//
//   - EscapeTable: Mapping from code units 0..128 to literal replacements.
//     DefaultTable escapes ", \ and the control characters U+0000..U+001F (using
//     the shorthands \" \\ \t \b \n \r \f where they exist and the \u00XX form
//     otherwise). HTMLSafeTable additionally escapes < > & = and '.
//
//   - Encode / Append: Core encoding routines. U+2028 and U+2029 are always
//     escaped, independent of the table, so the output is safe inside
//     JavaScript string literals.
//
//   - CombineSurrogates: The surrogate pair combine step, exposed for callers
//     that assemble scalars themselves.
//
//   - Error: Structured error carrying the offending code units. Its Kind is
//     ErrMalformedSurrogatePair or ErrSurrogateRangeOverflow.
//
// Thread Safety:
//
//	All functions are stateless. The escape tables are read-only after package
//	initialization. Concurrent calls are safe as long as each call uses its own sink.
//
// Usage:
//
//	var buf bytes.Buffer
//	err := jsonstr.EncodeString(&buf, "café <b>", jsonstr.HTMLSafeTable)
//	// buf now holds the quoted literal with < and > escaped
package jsonstr
