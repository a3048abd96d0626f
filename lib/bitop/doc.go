// Package bitop provides the bitwise AND/OR primitive used by the JSON string
// encoder to pack UTF-8 lead and continuation bytes.
//
// The package focuses on:
//   - A closed operator type with exactly two valid values (AND, OR)
//   - Results identical to the native & and | operators for all non-negative operands
//   - An explicit, logged no-op path for operator values outside the enumeration
//
// Key Components:
//
//   - Op: The operator tag. Only AND and OR are valid. Any other value (e.g. the
//     zero value or a converted integer) is reported by Op.Valid and evaluates to
//     an all-zero result in Apply. Use Checked to turn that case into an error.
//
//   - And / Or: Direct entry points used on the hot path of the encoder.
//
// Thread Safety:
//
//	All functions are pure and safe for concurrent use.
//
// Usage:
//
//	b1 := bitop.Or(0xC0, uint64(c)>>6)
//	b2 := bitop.Or(0x80, bitop.And(uint64(c), 0x3F))
package bitop
