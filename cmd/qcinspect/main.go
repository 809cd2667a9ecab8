// qcinspect lists QC records stored in the QC database.
package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/msqclab/qcmg/internal/qcdb"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the qc database")
	last := flag.Int("last", 20, "show N most recent runs")
	jsonOut := flag.Bool("json", false, "output full records as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: qcinspect --db path/to/qc_metrics.db [--last N] [--json]")
		os.Exit(2)
	}

	store, err := qcdb.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.ListRuns(*last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(runs); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tFILE\tRES_200\tACCURACY\tSIGNAL\tS2N")
	for _, run := range runs {
		byName := make(map[string]float64, len(run.QCNames))
		for i, name := range run.QCNames {
			byName[name] = run.QCValues[i]
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.5f\t%.3g\t%.2f\n",
			run.Date, run.OriginalFilename,
			byName["resolution_200"], byName["average_accuracy"], byName["signal"], byName["s2n"])
	}
	w.Flush()
}

// #endregion
