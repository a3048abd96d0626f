package encode

import (
	"bytes"
	"fmt"
	"github.com/ValentinKolb/jstr/lib/common"
	"github.com/ValentinKolb/jstr/lib/serializer"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/google/go-cmp/cmp"
)

func esc(c int) string {
	return fmt.Sprintf("\\u%04x", c)
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		input   string
		want    []uint16
		wantErr bool
	}{
		{"", []uint16{}, false},
		{"41", []uint16{0x41}, false},
		{"d83d,de00", []uint16{0xD83D, 0xDE00}, false},
		{"0x41 0X42\t43", []uint16{0x41, 0x42, 0x43}, false},
		{"41,,42", []uint16{0x41, 0x42}, false},
		{"10000", nil, true},
		{"zz", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseUnits(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %x", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUnits failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("units mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunText(t *testing.T) {
	s, err := serializer.NewSerializer(serializer.NameGson)
	if err != nil {
		t.Fatalf("NewSerializer failed: %v", err)
	}

	var out bytes.Buffer
	set := metrics.NewSet()
	conf := common.Config{HTMLSafe: true}
	if err := Run(conf, s, []string{"a<b", "x\ny"}, &out, set); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := `"a` + esc('<') + `b"` + "\n" + `"x\ny"` + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	var prom bytes.Buffer
	set.WritePrometheus(&prom)
	if !strings.Contains(prom.String(), "jstr_encoded_strings_total 2") {
		t.Errorf("missing string counter:\n%s", prom.String())
	}
}

func TestRunUnits(t *testing.T) {
	s := serializer.NewStdSerializer()

	var out bytes.Buffer
	set := metrics.NewSet()
	conf := common.Config{InputUnits: true}
	err := Run(conf, s, []string{"d83d,de00", "d800", "dc00,41", "3c"}, &out, set)
	if err == nil || !strings.Contains(err.Error(), "2 of 4") {
		t.Fatalf("expected two failures, got %v", err)
	}

	want := "\"\xf0\x9f\x98\x80\"\n\"<\"\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	var prom bytes.Buffer
	set.WritePrometheus(&prom)
	if !strings.Contains(prom.String(), `jstr_encode_errors_total{kind="malformed_surrogate_pair"} 2`) {
		t.Errorf("missing error counter:\n%s", prom.String())
	}
	if !strings.Contains(prom.String(), "jstr_encoded_bytes_total 9") {
		t.Errorf("byte counter should count both literals:\n%s", prom.String())
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("a\nb\r\n\nc"))
	if err != nil {
		t.Fatalf("readLines failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "", "c"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}
