// Package cmd implements the command-line interface of jstr. It provides
// commands to encode text as gson compatible JSON string literals, to decode
// flat JSON objects and to benchmark the encoder against other serializers.
//
// The package is organized into several subpackages:
//
//   - encode: Encodes arguments, stdin lines or raw UTF-16 code units
//   - decode: Decodes a flat JSON object with the lenient decoders
//   - perf: Benchmarks the serializers over generated workloads
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See jstr -help for a list of all commands.
package cmd
