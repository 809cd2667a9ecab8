// qcwatch watches a feature-matrix file and appends QC records for newly
// extracted runs to the live QC database. Runs already stored (matched by
// acquisition date and original filename) are skipped, so the extractor can
// rewrite the matrix file wholesale after each acquisition.
package main

// #region imports
import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/msqclab/qcmg/internal/config"
	"github.com/msqclab/qcmg/internal/featurematrix"
	"github.com/msqclab/qcmg/internal/metrics"
	"github.com/msqclab/qcmg/internal/qcdb"
	"github.com/msqclab/qcmg/internal/validator"
)

// #endregion

// #region main

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	matrixPath := flag.String("matrix", "", "feature matrix path to watch (overrides config)")
	dbPath := flag.String("db", "", "qc database path (overrides config)")
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
	if *matrixPath != "" {
		cfg.FeatureMatrixPath = *matrixPath
	}
	if *dbPath != "" {
		cfg.QCDatabasePath = *dbPath
	}
	if *debug {
		cfg.Debug = true
	}
	if cfg.FeatureMatrixPath == "" {
		log.Fatal("no feature matrix given: set feature_matrix_path in the config or pass --matrix")
	}

	store, err := qcdb.Open(cfg.QCDatabasePath)
	if err != nil {
		log.Fatalf("open qc database: %v", err)
	}
	defer store.Close()

	var sink validator.Sink = validator.Nop{}
	if cfg.Debug {
		sink = validator.NewPrinter(os.Stderr)
	}

	// Catch up before watching: the extractor may have run while we were down.
	if err := appendNewRuns(store, cfg.FeatureMatrixPath, sink); err != nil {
		log.Fatalf("initial pass: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watch: %v", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: extractors typically replace the
	// matrix atomically via rename, which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(cfg.FeatureMatrixPath)); err != nil {
		log.Fatalf("watch %s: %v", cfg.FeatureMatrixPath, err)
	}
	log.Printf("watching %s, appending to %s", cfg.FeatureMatrixPath, cfg.QCDatabasePath)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != cfg.FeatureMatrixPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := appendNewRuns(store, cfg.FeatureMatrixPath, sink); err != nil {
				log.Fatalf("append: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		case <-interrupt:
			log.Print("shutting down")
			return
		}
	}
}

// #endregion

// #region append

// appendNewRuns computes and stores QC records for every run of the matrix
// file that is not in the database yet.
func appendNewRuns(store *qcdb.Store, matrixPath string, sink validator.Sink) error {
	fm, err := featurematrix.Load(matrixPath)
	if err != nil {
		return err
	}
	for _, run := range fm.MsRuns {
		stored, err := store.HasRun(run.Date, run.OriginalFilename)
		if err != nil {
			return err
		}
		if stored {
			continue
		}
		qc, err := metrics.ComputeRun(run, sink)
		if err != nil {
			return err
		}
		if err := store.InsertRun(qc); err != nil {
			return err
		}
		log.Printf("appended run %s (%s)", run.OriginalFilename, run.Date)
	}
	return nil
}

// #endregion
