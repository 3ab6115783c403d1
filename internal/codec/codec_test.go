package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Name   string    `json:"name" yaml:"name"`
	Length float64   `json:"length" yaml:"length"`
	Loads  []float64 `json:"loads,omitempty" yaml:"loads,omitempty"`
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{"beam.json", "json"},
		{"beam.yaml", "yaml"},
		{"beam.YML", "yaml"},
		{"beam.txt", "json"},
		{"beam", "json"},
		{"dir.yaml/beam.json", "json"},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path).Format(); got != tt.format {
			t.Errorf("ForPath(%q).Format() = %s, want %s", tt.path, got, tt.format)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := sample{Name: "gantry", Length: 1200, Loads: []float64{250}}

	var buf bytes.Buffer
	if err := NewJSONCodec().Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\"length\": 1200") {
		t.Errorf("expected indented snake_case output, got %q", buf.String())
	}

	var out sample
	if err := NewJSONCodec().Decode(&buf, &out); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out.Name != in.Name || out.Length != in.Length || len(out.Loads) != 1 {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := sample{Name: "conveyor", Length: 2000}

	var buf bytes.Buffer
	if err := NewYAMLCodec().Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(buf.String(), "length: 2000") {
		t.Errorf("expected snake_case YAML output, got %q", buf.String())
	}

	var out sample
	if err := NewYAMLCodec().Decode(&buf, &out); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if out.Name != in.Name || out.Length != in.Length {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestDecodeErrors(t *testing.T) {
	if err := NewJSONCodec().Decode(strings.NewReader("{broken"), &sample{}); err == nil {
		t.Error("expected a JSON parse error")
	}
	if err := NewYAMLCodec().Decode(strings.NewReader(":\n :\t-"), &sample{}); err == nil {
		t.Error("expected a YAML parse error")
	}
	if err := DecodeFile(filepath.Join(t.TempDir(), "missing.json"), &sample{}); err == nil {
		t.Error("expected an open error for a missing file")
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"beam.json", "beam.yaml", filepath.Join("nested", "beam.yml")} {
		path := filepath.Join(dir, name)
		in := sample{Name: "crane", Length: 4000, Loads: []float64{7000, 4200}}

		if err := EncodeFile(path, in); err != nil {
			t.Fatalf("EncodeFile(%s) error: %v", name, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}

		var out sample
		if err := DecodeFile(path, &out); err != nil {
			t.Fatalf("DecodeFile(%s) error: %v", name, err)
		}
		if out.Name != in.Name || out.Length != in.Length || len(out.Loads) != 2 {
			t.Errorf("round trip mismatch for %s: %+v", name, out)
		}
	}
}
