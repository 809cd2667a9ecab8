// qcmetrics computes QC metrics for every run of a feature-matrix file and
// persists the resulting QC matrix to a JSON document or the SQLite QC
// database.
package main

// #region imports
import (
	"flag"
	"log"
	"os"

	"github.com/msqclab/qcmg/internal/config"
	"github.com/msqclab/qcmg/internal/featurematrix"
	"github.com/msqclab/qcmg/internal/metrics"
	"github.com/msqclab/qcmg/internal/persist"
	"github.com/msqclab/qcmg/internal/validator"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	matrixPath := flag.String("matrix", "", "feature matrix path (overrides config)")
	backend := flag.String("backend", "", "persistence backend: json|sqlite (overrides config)")
	outPath := flag.String("out", "", "qc matrix output path for the json backend (overrides config)")
	dbPath := flag.String("db", "", "qc database path for the sqlite backend (overrides config)")
	debug := flag.Bool("debug", false, "dump metric inputs and values to stderr")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	applyOverrides(&cfg, *matrixPath, *backend, *outPath, *dbPath, *debug)

	if cfg.FeatureMatrixPath == "" {
		log.Fatal("no feature matrix given: set feature_matrix_path in the config or pass --matrix")
	}

	// Backend selector is validated before any computation starts.
	adapter, err := persist.NewAdapter(cfg.Backend, cfg.QCMatrixPath, cfg.QCDatabasePath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var sink validator.Sink = validator.Nop{}
	if cfg.Debug {
		sink = validator.NewPrinter(os.Stderr)
	}

	fm, err := featurematrix.Load(cfg.FeatureMatrixPath)
	if err != nil {
		log.Fatalf("load: %v", err)
	}

	qm, err := metrics.BuildMatrix(fm, sink)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	if err := adapter.WriteMatrix(qm); err != nil {
		log.Fatalf("persist: %v", err)
	}
	log.Printf("qc matrix persisted: %d runs, backend=%s", len(qm.QCRuns), cfg.Backend)
}

// #endregion

// #region overrides

func applyOverrides(cfg *config.Config, matrixPath, backend, outPath, dbPath string, debug bool) {
	if matrixPath != "" {
		cfg.FeatureMatrixPath = matrixPath
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if outPath != "" {
		cfg.QCMatrixPath = outPath
	}
	if dbPath != "" {
		cfg.QCDatabasePath = dbPath
	}
	if debug {
		cfg.Debug = true
	}
}

// #endregion
