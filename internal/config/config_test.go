package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	doc := `{
		"feature_matrix_path": "/data/feature_matrix.json",
		"backend": "json",
		"qc_matrix_path": "/data/qc_matrix.json",
		"debug": true
	}`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.FeatureMatrixPath != "/data/feature_matrix.json" {
		t.Fatalf("unexpected matrix path %s", cfg.FeatureMatrixPath)
	}
	if cfg.Backend != "json" {
		t.Fatalf("unexpected backend %s", cfg.Backend)
	}
	if !cfg.Debug {
		t.Fatal("expected debug to be set")
	}
	// Absent keys keep defaults
	if cfg.QCDatabasePath != Default().QCDatabasePath {
		t.Fatalf("unexpected db path %s", cfg.QCDatabasePath)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"backend": "sqlite", "qc_database_path": "x.db"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QCDatabasePath != "x.db" {
		t.Fatalf("unexpected db path %s", cfg.QCDatabasePath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
