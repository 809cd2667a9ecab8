package featurematrix

// #region sentinel

// MissingValue is the reserved feature value meaning "not observed in this
// run". The upstream extractor writes it for peaks it could not find or fit;
// it is distinct from a true zero measurement.
const MissingValue = -1.0

// #endregion

// #region ms-run

// MsRun is one instrument acquisition as recorded by the feature extractor:
// run identification metadata plus the parallel feature name/value arrays.
// FeaturesNames and FeaturesValues are positionally paired and always of
// equal length. An MsRun is never mutated after loading.
type MsRun struct {
	Date             string    `json:"date"`
	OriginalFilename string    `json:"original_filename"`
	ChemicalMixID    string    `json:"chemical_mix_id"`
	MsfeVersion      string    `json:"msfe_version"`
	ScansProcessed   int       `json:"scans_processed"`
	FeaturesNames    []string  `json:"features_names"`
	FeaturesValues   []float64 `json:"features_values"`
}

// #endregion

// #region matrix

// Matrix is the whole feature-matrix document, one MsRun per processed
// acquisition, in file order.
type Matrix struct {
	MsRuns []MsRun `json:"ms_runs"`
}

// #endregion
