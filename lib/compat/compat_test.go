package compat

import (
	"fmt"
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	enctesting "github.com/ValentinKolb/jstr/lib/jsonstr/testing"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
)

// esc returns the six byte \uXXXX escape of c
func esc(c int) string {
	return fmt.Sprintf("\\u%04x", c)
}

func newConfig(htmlSafe bool) *Config {
	b := NewBuilder()
	if !htmlSafe {
		b.DisableHTMLEscaping()
	}
	return b.Build()
}

func TestEncoderSuite(t *testing.T) {
	enctesting.RunEncoderTests(t, "GsonCompat", func(htmlSafe bool) jsonstr.IStringEncoder {
		return newConfig(htmlSafe).StringEncoder()
	})
}

func TestMarshalStructUsesStringCodec(t *testing.T) {
	type page struct {
		Title string            `json:"title"`
		Tags  []string          `json:"tags"`
		Meta  map[string]string `json:"meta"`
		Ref   *string           `json:"ref"`
	}
	ref := "a=b"
	value := page{
		Title: "<b>Tom & Jerry</b>",
		Tags:  []string{"it's", "x\u2028y"},
		Meta:  map[string]string{"k<": "v>"},
		Ref:   &ref,
	}

	want := `{"title":"` + esc('<') + "b" + esc('>') + "Tom " + esc('&') + " Jerry" + esc('<') + "/b" + esc('>') + `",` +
		`"tags":["it` + esc('\'') + `s","x` + esc(0x2028) + `y"],` +
		`"meta":{"k` + esc('<') + `":"v` + esc('>') + `"},` +
		`"ref":"a` + esc('=') + `b"}`

	got, err := Default().MarshalToString(value)
	if err != nil {
		t.Fatalf("MarshalToString failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("html-safe output mismatch (-want +got):\n%s", diff)
	}

	got, err = newConfig(false).MarshalToString(value)
	if err != nil {
		t.Fatalf("MarshalToString failed: %v", err)
	}
	if !strings.Contains(got, `"<b>Tom & Jerry</b>"`) {
		t.Errorf("default table should keep HTML characters raw, got %s", got)
	}
	if !strings.Contains(got, esc(0x2028)) {
		t.Errorf("U+2028 must be escaped with the default table, got %s", got)
	}
}

func TestPrettyPrinting(t *testing.T) {
	conf := NewBuilder().SetPrettyPrinting().Build()
	got, err := conf.MarshalToString(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("MarshalToString failed: %v", err)
	}
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLenientDecoders(t *testing.T) {
	type record struct {
		Name  string  `json:"name"`
		Alive bool    `json:"alive"`
		Count int     `json:"count"`
		Big   int64   `json:"big"`
		Ratio float32 `json:"ratio"`
		Score float64 `json:"score"`
	}

	tests := []struct {
		name  string
		input string
		fill  record
		want  record
	}{
		{
			name:  "Plain values",
			input: `{"name":"x","alive":true,"count":3,"big":9000000000,"ratio":0.5,"score":1.25}`,
			want:  record{Name: "x", Alive: true, Count: 3, Big: 9000000000, Ratio: 0.5, Score: 1.25},
		},
		{
			name:  "Number as string keeps literal text",
			input: `{"name":12.50}`,
			want:  record{Name: "12.50"},
		},
		{
			name:  "Boolean as string",
			input: `{"name":false}`,
			want:  record{Name: "false"},
		},
		{
			name:  "Nulls become zero values",
			input: `{"name":null,"alive":null,"count":null,"big":null,"ratio":null,"score":null}`,
			fill:  record{Name: "old", Alive: true, Count: 7, Big: 7, Ratio: 7, Score: 7},
			want:  record{},
		},
		{
			name:  "Escaped string",
			input: `{"name":"` + esc('<') + `\n"}`,
			want:  record{Name: "<\n"},
		},
	}

	conf := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.fill
			if err := conf.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("decoded record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLenientDecoderErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  any
		message string
	}{
		{"String from array", `{"v":[1]}`, &struct{ V string }{}, "expect string, but found ARRAY"},
		{"String from object", `{"v":{}}`, &struct{ V string }{}, "expect string, but found OBJECT"},
		{"Bool from string", `{"v":"true"}`, &struct{ V bool }{}, "expect boolean, but found STRING"},
		{"Int from string", `{"v":"1"}`, &struct{ V int }{}, "expect int, but found STRING"},
		{"Int64 from bool", `{"v":true}`, &struct{ V int64 }{}, "expect long, but found BOOLEAN"},
		{"Float32 from array", `{"v":[]}`, &struct{ V float32 }{}, "expect float, but found ARRAY"},
		{"Float64 from string", `{"v":"x"}`, &struct{ V float64 }{}, "expect double, but found STRING"},
	}

	conf := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := conf.Unmarshal([]byte(tc.input), tc.target)
			if err == nil {
				t.Fatalf("expected error for %s", tc.input)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("error %q should contain %q", err.Error(), tc.message)
			}
		})
	}
}

func TestCustomCodec(t *testing.T) {
	type celsius float64

	b := NewBuilder().Register(reflect.TypeOf(celsius(0)),
		func(ptr unsafe.Pointer, stream *jsoniter.Stream) {
			stream.WriteString(fmt.Sprintf("%.1fC", float64(*(*celsius)(ptr))))
		},
		func(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
			var value float64
			if _, err := fmt.Sscanf(iter.ReadString(), "%fC", &value); err != nil {
				iter.ReportError("decode celsius", err.Error())
				return
			}
			*(*celsius)(ptr) = celsius(value)
		})

	conf := b.Build()
	got, err := conf.MarshalToString([]celsius{21.5})
	if err != nil {
		t.Fatalf("MarshalToString failed: %v", err)
	}
	if got != `["21.5C"]` {
		t.Errorf("got %s, want [\"21.5C\"]", got)
	}

	var decoded []celsius
	if err := conf.Unmarshal([]byte(`["-3.0C"]`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != -3 {
		t.Errorf("decoded %v, want [-3]", decoded)
	}

	// a config built from a copy keeps the registration but not later ones
	cp := b.Copy()
	b.Register(reflect.TypeOf(int8(0)), nil, nil)
	if cp.Build().Registry().Len() != conf.Registry().Len() {
		t.Errorf("copied builder should not see registrations made after Copy")
	}
}

func TestCustomCodecOverridesStringCodec(t *testing.T) {
	conf := NewBuilder().Register(reflect.TypeOf(""),
		func(ptr unsafe.Pointer, stream *jsoniter.Stream) {
			stream.WriteRaw(`"redacted"`)
		}, nil).Build()

	got, err := conf.MarshalToString("<secret>")
	if err != nil {
		t.Fatalf("MarshalToString failed: %v", err)
	}
	if got != `"redacted"` {
		t.Errorf("got %s, want \"redacted\"", got)
	}
}

func TestMarshalReportsSurrogateErrors(t *testing.T) {
	// Go strings never carry lone surrogates, the error surfaces through a custom codec
	type raw []uint16
	conf := NewBuilder().Register(reflect.TypeOf(raw(nil)),
		func(ptr unsafe.Pointer, stream *jsoniter.Stream) {
			if err := jsonstr.Encode(stream, *(*raw)(ptr), jsonstr.DefaultTable); err != nil {
				stream.Error = err
			}
		}, nil).Build()

	_, err := conf.Marshal(raw{'a', 0xD800})
	if err == nil {
		t.Fatal("expected error for lone high surrogate")
	}
	if !strings.Contains(err.Error(), "0xd800") {
		t.Errorf("error %q should name the surrogate", err.Error())
	}
}

func TestDecodeStringMap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{"Empty object", `{}`, map[string]string{}, false},
		{"Null", `null`, map[string]string{}, false},
		{"Mixed values", `{"a":"x","b":1.5,"c":true,"d":null}`,
			map[string]string{"a": "x", "b": "1.5", "c": "true", "d": ""}, false},
		{"Escaped key", `{"` + esc('<') + `k":"v"}`, map[string]string{"<k": "v"}, false},
		{"Array", `[1,2]`, nil, true},
		{"Nested object", `{"a":{"b":1}}`, nil, true},
		{"Truncated", `{"a":"x"`, nil, true},
	}

	conf := Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := conf.DecodeStringMap([]byte(tc.input))
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStringMap failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("map mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFieldsStopsCallback(t *testing.T) {
	iter := jsoniter.ParseString(Default().API(), `{"a":1,"b":2,"c":3}`)
	var seen []string
	ok := ReadFields(iter, func(iter *jsoniter.Iterator, field string) bool {
		seen = append(seen, field)
		iter.Skip()
		return field != "b"
	})
	if ok {
		t.Error("ReadFields should report the rejected field")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, seen); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if iter.Error != nil {
		t.Errorf("unexpected iterator error: %v", iter.Error)
	}
}

func TestConfigString(t *testing.T) {
	s := Default().String()
	if !strings.Contains(s, jsonstr.HTMLSafeTable.Name()) {
		t.Errorf("config string should name the escape table:\n%s", s)
	}
	if Default().HTMLSafe() != true || newConfig(false).HTMLSafe() != false {
		t.Error("HTMLSafe does not reflect the builder options")
	}
}
