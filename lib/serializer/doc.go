// Package serializer provides JSON value serialization behind a common
// interface, so the gson compatible encoder can be compared against other
// JSON implementations.
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must satisfy.
//
//   - gsonSerializerImpl: Uses the compat configuration. Strings are escaped
//     by jsonstr, HTML-safe ("gson") or with the default table ("gson-plain").
//
//   - jsoniterSerializerImpl: json-iterator in its encoding/json compatible
//     configuration ("jsoniter").
//
//   - stdSerializerImpl: encoding/json ("std").
//
// Output differences:
//
//	All serializers produce valid JSON that decodes to the same value. The
//	byte output differs in string escaping: encoding/json escapes <, > and &
//	as \u003c style sequences, the gson serializer additionally escapes = and '
//	and always escapes U+2028 and U+2029.
//
// Thread Safety:
//
//	All serializer implementations are safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	s, err := serializer.NewSerializer("gson")
//	data, err := s.Serialize(value)
//	err = s.Deserialize(data, &value)
package serializer
