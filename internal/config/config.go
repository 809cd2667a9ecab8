// Package config loads the tool configuration from a JSON file.
package config

// #region imports
import (
	"fmt"
	"os"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// #endregion

// #region config

// Config holds the file paths and switches of one invocation.
type Config struct {
	// FeatureMatrixPath is the input feature-matrix document (.json or .json.gz).
	FeatureMatrixPath string `koanf:"feature_matrix_path"`
	// Backend selects the persistence backend: "json" or "sqlite".
	Backend string `koanf:"backend"`
	// QCMatrixPath is the output document path for the json backend.
	QCMatrixPath string `koanf:"qc_matrix_path"`
	// QCDatabasePath is the SQLite database path for the sqlite backend.
	QCDatabasePath string `koanf:"qc_database_path"`
	// Debug enables the human-readable metric dumps.
	Debug bool `koanf:"debug"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Backend:        "sqlite",
		QCMatrixPath:   "qc_matrix.json",
		QCDatabasePath: "qc_metrics.db",
	}
}

// #endregion

// #region load

// Load reads a JSON config file. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse loads a config from raw JSON bytes.
func Parse(data []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// #endregion
