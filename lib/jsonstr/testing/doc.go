// Package testing provides standardised tests and benchmarks for
// JSON string encoders that satisfy the jsonstr.IStringEncoder interface.
//
// The package contains:
//   - testing: A conformance suite for escaping, UTF-8 output, round trips and surrogate handling
//   - benchmark: Throughput benchmarks over ASCII, BMP, supplementary and HTML heavy workloads
//
// Tests that need a feature the encoder does not report via SupportsFeature are skipped.
//
// Example usage:
//
//	factory := func(htmlSafe bool) jsonstr.IStringEncoder {
//		return jsonstr.NewStringEncoder(htmlSafe)
//	}
//
//	enctesting.RunEncoderTests(t, "StringEncoder", factory)
//	enctesting.RunEncoderBenchmarks(b, "StringEncoder", factory)
package testing
