package featurematrix

import (
	"errors"
	"testing"
)

func TestAccessorLookup(t *testing.T) {
	run := MsRun{
		OriginalFilename: "raw.mzXML",
		FeaturesNames:    []string{"intensity_193", "widths_193_1", "mz_193"},
		FeaturesValues:   []float64{2000, 0.05, 193.0725},
	}
	acc, err := NewAccessor(run)
	if err != nil {
		t.Fatalf("NewAccessor: %v", err)
	}

	v, err := acc.Value("widths_193_1")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 0.05 {
		t.Fatalf("expected 0.05, got %f", v)
	}

	values, err := acc.Values([]string{"mz_193", "intensity_193"})
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values[0] != 193.0725 || values[1] != 2000 {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestAccessorFeatureNotFound(t *testing.T) {
	run := MsRun{
		FeaturesNames:  []string{"intensity_193"},
		FeaturesValues: []float64{2000},
	}
	acc, err := NewAccessor(run)
	if err != nil {
		t.Fatalf("NewAccessor: %v", err)
	}

	_, err = acc.Value("intensity_712")
	if err == nil {
		t.Fatal("expected error for absent feature")
	}
	var notFound *FeatureNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected FeatureNotFoundError, got %v", err)
	}
	if notFound.Name != "intensity_712" {
		t.Fatalf("expected intensity_712, got %s", notFound.Name)
	}
}

func TestAccessorLengthMismatch(t *testing.T) {
	run := MsRun{
		FeaturesNames:  []string{"a", "b"},
		FeaturesValues: []float64{1},
	}
	if _, err := NewAccessor(run); err == nil {
		t.Fatal("expected error for name/value length mismatch")
	}
}

func TestAccessorDuplicateKeepsFirst(t *testing.T) {
	run := MsRun{
		FeaturesNames:  []string{"a", "a"},
		FeaturesValues: []float64{1, 2},
	}
	acc, err := NewAccessor(run)
	if err != nil {
		t.Fatalf("NewAccessor: %v", err)
	}
	v, err := acc.Value("a")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != 1 {
		t.Fatalf("expected first occurrence 1, got %f", v)
	}
}
