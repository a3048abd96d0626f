package perf

import (
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/jstr/cmd/util"
	"github.com/ValentinKolb/jstr/lib/common"
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	enctesting "github.com/ValentinKolb/jstr/lib/jsonstr/testing"
	"github.com/ValentinKolb/jstr/lib/serializer"
	"github.com/spf13/cobra"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"testing"
	"time"
	"unicode/utf16"

	gometrics "github.com/rcrowley/go-metrics"
)

// rawEncoderName is the test group that encodes code units with jsonstr directly
const rawEncoderName = "jsonstr"

var (
	// PerfCmd benchmarks the serializers over generated workloads
	PerfCmd = &cobra.Command{
		Use:   "perf",
		Short: "Performance testing tool for the string encoder",
		Long: `Performance testing tool for the string encoder.

Every serializer encodes every workload (ascii, escapes, html, bmp,
supplementary) as a JSON string. The jsonstr group encodes the raw
UTF-16 code units without a serializer.`,
		RunE: run,
	}
)

func init() {
	key := "skip"
	PerfCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - serializer, workload or serializer/workload, e.g. std,gson/html)"))
	key = "threads"
	PerfCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "size"
	PerfCmd.Flags().Int(key, 1024, util.WrapString("Size of the encoded text (in bytes)"))
	key = "serializers"
	PerfCmd.Flags().String(key, "", util.WrapString("Serializers to benchmark (comma separated, default all)"))
	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

// Result is the outcome of a single benchmark. A skipped benchmark has a zero Bench.
type Result struct {
	Test      string
	Bench     testing.BenchmarkResult
	Latencies gometrics.Timer
}

func run(cmd *cobra.Command, _ []string) error {
	conf := util.GetPerfConfig()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Performance testing tool for the string encoder")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintln(out, conf.String())

	fmt.Fprintln(out, "starting tests...")

	results, err := Run(conf, out)
	if err != nil {
		return err
	}

	// Write results to csv if specified
	if conf.CSVPath != "" {
		fmt.Fprintf(out, "\nExporting results to CSV: %s\n", conf.CSVPath)
		file, err := os.Create(conf.CSVPath)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %v", err)
		}
		defer file.Close()

		if err := writeResultsToCSV(file, results, conf); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Fprintln(out, "Export complete")
	}

	return nil
}

// Run executes all benchmarks that are not skipped and prints each result to out
func Run(conf *common.PerfConfig, out io.Writer) ([]Result, error) {
	serializers := make([]serializer.ISerializer, 0, len(conf.Serializers))
	for _, name := range conf.Serializers {
		s, err := serializer.NewSerializer(name)
		if err != nil {
			return nil, err
		}
		serializers = append(serializers, s)
	}

	workloads := enctesting.Workloads(conf.SizeBytes)
	names := make([]string, 0, len(workloads))
	for name := range workloads {
		names = append(names, name)
	}
	sort.Strings(names)

	registry := gometrics.NewRegistry()

	var results []Result
	add := func(group, workload string, newOp func() func() error) {
		test := group + "/" + workload
		timer := gometrics.GetOrRegisterTimer(test, registry)

		var bench testing.BenchmarkResult
		if !shouldSkip(conf, group, workload) {
			bench = testing.Benchmark(func(b *testing.B) {
				benchmark(b, conf.Threads, timer, newOp)
			})
		}
		results = append(results, Result{Test: test, Bench: bench, Latencies: timer})
		printResult(out, test, bench, timer)
	}

	for _, workload := range names {
		text := workloads[workload]

		for _, s := range serializers {
			add(s.Name(), workload, func() func() error {
				return func() error {
					_, err := s.Serialize(text)
					return err
				}
			})
		}

		units := utf16.Encode([]rune(text))
		add(rawEncoderName, workload, func() func() error {
			var buf []byte
			return func() error {
				var err error
				buf, err = jsonstr.Append(buf[:0], units, jsonstr.HTMLSafeTable)
				return err
			}
		})
	}

	return results, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// benchmark runs the operation in parallel and records every call in timer.
// newOp is called once per goroutine.
func benchmark(b *testing.B, threads int, timer gometrics.Timer, newOp func() func() error) {
	b.SetParallelism(max(threads, 1))
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		op := newOp()
		for pb.Next() {
			start := time.Now()
			if err := op(); err != nil {
				b.Errorf("operation failed: %v", err)
				return
			}
			timer.UpdateSince(start)
		}
	})
}

func shouldSkip(conf *common.PerfConfig, group, workload string) bool {
	return conf.ShouldSkip(group) || conf.ShouldSkip(workload) || conf.ShouldSkip(group+"/"+workload)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(out io.Writer, test string, result testing.BenchmarkResult, timer gometrics.Timer) {
	if result.NsPerOp() == 0 {
		fmt.Fprintf(out, "%-28sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)
	p := timer.Snapshot().Percentiles([]float64{0.5, 0.99})

	fmt.Fprintf(out, "%-28s%.0fns/op (%s/op)\t%.0f ops/sec\tp50 %s\tp99 %s\n",
		test, nsPerOp, time.Duration(nsPerOp), opsPerSec, time.Duration(p[0]), time.Duration(p[1]))
}

// writeResultsToCSV writes benchmark results as CSV to w
func writeResultsToCSV(w io.Writer, results []Result, conf *common.PerfConfig) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "P50Ns", "P99Ns", "Skipped",
		"Threads", "SizeBytes",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for _, r := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if r.Bench.NsPerOp() == 0 {
			skipped = "true"
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(r.Bench.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}
		p := r.Latencies.Snapshot().Percentiles([]float64{0.5, 0.99})

		row := []string{
			r.Test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			fmt.Sprintf("%.0f", p[0]),
			fmt.Sprintf("%.0f", p[1]),
			skipped,
			strconv.Itoa(conf.Threads),
			strconv.Itoa(conf.SizeBytes),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for test %s: %v", r.Test, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
