package testing

import (
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"io"
	"strings"
	"testing"
	"unicode/utf16"
)

// Workloads returns the benchmark inputs by name, shared with the perf command
func Workloads(size int) map[string]string {
	repeat := func(unit string) string {
		if size <= 0 {
			return ""
		}
		return strings.Repeat(unit, size/len(unit)+1)[:size]
	}

	return map[string]string{
		"ascii":         repeat("the quick brown fox jumps over the lazy dog "),
		"escapes":       repeat("\"quoted\"\t\\path\\\n"),
		"html":          repeat("<a href='x'>&amp;</a>="),
		"bmp":           strings.Repeat("café € 日本 ", size/16+1),
		"supplementary": strings.Repeat("\U0001F600\U00010348", size/8+1),
	}
}

// RunEncoderBenchmarks runs all benchmarks for an IStringEncoder implementation
func RunEncoderBenchmarks(b *testing.B, name string, factory EncoderFactory) {
	b.Run(name, func(b *testing.B) {
		for workload, text := range Workloads(1024) {
			units := utf16.Encode([]rune(text))

			b.Run("Units/"+workload, func(b *testing.B) {
				benchmarkEncodeUnits(b, factory(true), units)
			})

			b.Run("String/"+workload, func(b *testing.B) {
				benchmarkEncodeString(b, factory(true), text)
			})
		}
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkEncodeUnits(b *testing.B, enc jsonstr.IStringEncoder, units []uint16) {
	b.SetBytes(int64(len(units) * 2))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := enc.EncodeUnits(io.Discard, units); err != nil {
			b.Fatalf("EncodeUnits failed: %v", err)
		}
	}
}

func benchmarkEncodeString(b *testing.B, enc jsonstr.IStringEncoder, text string) {
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := enc.EncodeString(io.Discard, text); err != nil {
				b.Errorf("EncodeString failed: %v", err)
				return
			}
		}
	})
}
