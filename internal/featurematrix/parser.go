package featurematrix

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// #region load

// Load reads a feature-matrix document from path. Files ending in .gz are
// transparently decompressed. Every run is checked for name/value parity
// before the matrix is returned.
func Load(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("open feature matrix %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Matrix{}, fmt.Errorf("gunzip feature matrix %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var m Matrix
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Matrix{}, fmt.Errorf("decode feature matrix %s: %w", path, err)
	}

	for i, run := range m.MsRuns {
		if len(run.FeaturesNames) != len(run.FeaturesValues) {
			return Matrix{}, fmt.Errorf("feature matrix %s: run %d (%s): %d names vs %d values",
				path, i, run.OriginalFilename, len(run.FeaturesNames), len(run.FeaturesValues))
		}
	}
	return m, nil
}

// #endregion
