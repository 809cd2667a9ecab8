package featurematrix

import "fmt"

// #region not-found-error

// FeatureNotFoundError reports a feature identifier absent from a run's
// feature vector. A compliant extractor emits every identifier the QC
// pipeline reads (missing observations are encoded as MissingValue, not
// omitted), so this error signals an upstream bug and is never retried.
type FeatureNotFoundError struct {
	Name string
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("feature %q not found in run's feature vector", e.Name)
}

// #endregion

// #region accessor

// Accessor provides constant-time lookup of feature values by identifier.
// The name→value index is built once per run from the parallel arrays.
type Accessor struct {
	index map[string]float64
}

// NewAccessor builds an Accessor for one run. The first occurrence of a
// name wins; identifiers are unique per contract.
func NewAccessor(run MsRun) (*Accessor, error) {
	if len(run.FeaturesNames) != len(run.FeaturesValues) {
		return nil, fmt.Errorf("run %s: %d feature names vs %d values",
			run.OriginalFilename, len(run.FeaturesNames), len(run.FeaturesValues))
	}
	index := make(map[string]float64, len(run.FeaturesNames))
	for i, name := range run.FeaturesNames {
		if _, ok := index[name]; !ok {
			index[name] = run.FeaturesValues[i]
		}
	}
	return &Accessor{index: index}, nil
}

// Value returns the feature value for name, or FeatureNotFoundError.
func (a *Accessor) Value(name string) (float64, error) {
	v, ok := a.index[name]
	if !ok {
		return 0, &FeatureNotFoundError{Name: name}
	}
	return v, nil
}

// Values returns the values for names, in order. Lookup stops at the first
// missing identifier.
func (a *Accessor) Values(names []string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := a.Value(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// #endregion
