package perf

import (
	"bytes"
	"encoding/csv"
	"github.com/ValentinKolb/jstr/lib/common"
	"strings"
	"testing"
)

func TestRunAllSkipped(t *testing.T) {
	conf := &common.PerfConfig{
		Threads:     2,
		SizeBytes:   64,
		Serializers: []string{"std"},
		Skip:        []string{"std", "jsonstr"},
	}

	var out bytes.Buffer
	results, err := Run(conf, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// five workloads, one serializer plus the raw encoder
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Bench.N != 0 {
			t.Errorf("%s should have been skipped", r.Test)
		}
	}
	if got := strings.Count(out.String(), "skipped"); got != 10 {
		t.Errorf("expected 10 skipped lines, got %d:\n%s", got, out.String())
	}
}

func TestRunUnknownSerializer(t *testing.T) {
	conf := &common.PerfConfig{Serializers: []string{"xml"}}
	if _, err := Run(conf, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown serializer")
	}
}

func TestShouldSkip(t *testing.T) {
	conf := &common.PerfConfig{Skip: []string{"gson/html", "bmp"}}

	tests := []struct {
		group, workload string
		want            bool
	}{
		{"gson", "html", true},
		{"std", "html", false},
		{"std", "bmp", true},
		{"jsonstr", "ascii", false},
	}
	for _, tc := range tests {
		if got := shouldSkip(conf, tc.group, tc.workload); got != tc.want {
			t.Errorf("shouldSkip(%s, %s) = %t, want %t", tc.group, tc.workload, got, tc.want)
		}
	}
}

func TestWriteResultsToCSV(t *testing.T) {
	conf := &common.PerfConfig{
		Threads:     1,
		SizeBytes:   16,
		Serializers: []string{"gson"},
		Skip:        []string{"gson", "jsonstr"},
	}
	results, err := Run(conf, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeResultsToCSV(&buf, results, conf); err != nil {
		t.Fatalf("writeResultsToCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}
	if len(rows) != len(results)+1 {
		t.Fatalf("expected %d rows, got %d", len(results)+1, len(rows))
	}
	if rows[0][0] != "Test" || rows[1][6] != "true" || rows[1][7] != "1" {
		t.Errorf("unexpected CSV content: %v", rows[:2])
	}
}
