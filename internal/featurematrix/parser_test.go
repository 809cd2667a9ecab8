package featurematrix

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func sampleMatrix() Matrix {
	return Matrix{MsRuns: []MsRun{
		{
			Date:             "2019-06-10T113612",
			OriginalFilename: "raw.mzXML",
			ChemicalMixID:    "v1",
			MsfeVersion:      "0.3.1",
			ScansProcessed:   86,
			FeaturesNames:    []string{"intensity_193", "widths_193_1"},
			FeaturesValues:   []float64{2000, 0.05},
		},
	}}
}

func TestLoadPlainJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_matrix.json")
	data, err := json.Marshal(sampleMatrix())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.MsRuns) != 1 {
		t.Fatalf("expected 1 run, got %d", len(m.MsRuns))
	}
	if m.MsRuns[0].OriginalFilename != "raw.mzXML" {
		t.Fatalf("unexpected filename %s", m.MsRuns[0].OriginalFilename)
	}
	if m.MsRuns[0].ScansProcessed != 86 {
		t.Fatalf("expected 86 scans, got %d", m.MsRuns[0].ScansProcessed)
	}
}

func TestLoadGzippedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_matrix.json.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if err := json.NewEncoder(gz).Encode(sampleMatrix()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.MsRuns) != 1 || m.MsRuns[0].FeaturesValues[1] != 0.05 {
		t.Fatalf("unexpected matrix %+v", m)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadParityViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{"ms_runs":[{"original_filename":"x.mzXML","features_names":["a","b"],"features_values":[1.0]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for names/values length mismatch")
	}
}
