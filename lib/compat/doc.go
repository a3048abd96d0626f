// Package compat provides a gson compatible JSON configuration on top of
// json-iterator. It is the host serializer of the jsonstr string encoder:
// every Go string is written through jsonstr, so strings are escaped the way
// gson escapes them (HTML-safe by default, U+2028/U+2029 always escaped).
//
// Key Components:
//
//   - Builder / Config: Builder collects options (DisableHTMLEscaping,
//     SetPrettyPrinting, Register) and Build freezes them into a Config that
//     wraps a jsoniter.API.
//
//   - Registry: Pluggable codec registration keyed by reflect.Type, backed by
//     an xsync.MapOf. The built-in string codec and the lenient decoders are
//     installed through it; custom codecs override them.
//
//   - Lenient decoders: strings accept numbers, booleans and null; booleans and
//     numbers accept null as their zero value.
//
//   - ReadFields / DecodeStringMap: Object iteration helpers on top of jsoniter.
//
// Thread Safety:
//
//	A built Config is safe for concurrent use across goroutines.
//
// Usage:
//
//	conf := compat.NewBuilder().DisableHTMLEscaping().Build()
//	data, err := conf.Marshal(value)
package compat
