package metrics

// #region imports
import (
	"fmt"
	"log"

	"github.com/msqclab/qcmg/internal/featurematrix"
	"github.com/msqclab/qcmg/internal/validator"
)

// #endregion

// #region pipeline

// Calculators returns the fixed QC pipeline. The order is the schema of
// qc_names and must not change between releases.
func Calculators() []Calculator {
	return []Calculator{
		resolutionCalc{metric: "resolution_200", mzFeature: "mz_193", widthFeature: "widths_193_1"},
		resolutionCalc{metric: "resolution_700", mzFeature: "mz_712", widthFeature: "widths_712_1"},
		accuracyCalc{},
		sumCalc{metric: "chemical_dirt", features: dirtFeatures},
		sumCalc{metric: "instrument_noise", features: instrumentNoiseFeatures},
		isotopicCalc{},
		transmissionCalc{},
		passthroughCalc{
			metrics:  []string{"fragmentation_305", "fragmentation_712"},
			features: []string{"fragments_ratios_305_0", "fragments_ratios_712_0"},
		},
		passthroughCalc{
			metrics: []string{"baseline_25_150", "baseline_50_150", "baseline_25_650", "baseline_50_650"},
			features: []string{
				"percentiles_chem_noise_150_0", "percentiles_chem_noise_150_1",
				"percentiles_chem_noise_650_0", "percentiles_chem_noise_650_1",
			},
		},
		signalCalc{},
		s2bCalc{},
		s2nCalc{},
	}
}

// Names returns the canonical ordered list of QC metric names produced by
// the pipeline. The QC database schema derives its columns from this list.
func Names() []string {
	var names []string
	for _, c := range Calculators() {
		names = append(names, c.MetricNames()...)
	}
	return names
}

// #endregion

// #region compute-run

// ComputeRun executes the full pipeline against one run's feature vector
// and returns the run's QC record. sink may be nil. The first calculator
// error aborts the run; there is no partial-result recovery.
func ComputeRun(run featurematrix.MsRun, sink validator.Sink) (QCRun, error) {
	if sink == nil {
		sink = validator.Nop{}
	}

	acc, err := featurematrix.NewAccessor(run)
	if err != nil {
		return QCRun{}, err
	}

	qc := QCRun{
		Date:             run.Date,
		OriginalFilename: run.OriginalFilename,
		ChemicalMixID:    run.ChemicalMixID,
		MsfeVersion:      run.MsfeVersion,
		ScansProcessed:   run.ScansProcessed,
	}
	for _, c := range Calculators() {
		computed, err := c.Compute(acc, sink)
		if err != nil {
			return QCRun{}, fmt.Errorf("run %s: %w", run.OriginalFilename, err)
		}
		for _, m := range computed {
			qc.QCNames = append(qc.QCNames, m.Name)
			qc.QCValues = append(qc.QCValues, m.Value)
		}
	}
	sink.ObserveMetrics(qc.QCNames, qc.QCValues)
	return qc, nil
}

// #endregion

// #region build-matrix

// BuildMatrix computes QC records for every run of a feature matrix, in
// file order. One progress line is logged per run. A failure in any run
// aborts the whole build.
func BuildMatrix(fm featurematrix.Matrix, sink validator.Sink) (QCMatrix, error) {
	var qm QCMatrix
	for i, run := range fm.MsRuns {
		qc, err := ComputeRun(run, sink)
		if err != nil {
			return QCMatrix{}, err
		}
		qm.QCRuns = append(qm.QCRuns, qc)
		log.Printf("processed run %d/%d: %s", i+1, len(fm.MsRuns), run.OriginalFilename)
	}
	return qm, nil
}

// #endregion
