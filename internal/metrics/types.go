package metrics

// #region imports
import (
	"errors"

	"github.com/msqclab/qcmg/internal/featurematrix"
	"github.com/msqclab/qcmg/internal/validator"
)

// #endregion

// #region errors

// ErrZeroDenominator reports a ratio metric whose denominator is a true
// zero, as opposed to the MissingValue sentinel. The sentinel already
// covers "not observed", so a real zero means the upstream extraction is
// broken and the whole invocation aborts.
var ErrZeroDenominator = errors.New("division by zero denominator")

// #endregion

// #region metric

// Metric is one named QC scalar.
type Metric struct {
	Name  string
	Value float64
}

// #endregion

// #region calculator

// Calculator is one unit of the QC pipeline. Each implementation reads a
// fixed, hard-coded list of feature identifiers through the accessor and
// appends one or more named scalars to the run's QC record. Calculators
// are stateless; the sink is a pure side channel.
type Calculator interface {
	// MetricNames lists the QC names this calculator produces, in output order.
	MetricNames() []string
	// Compute reads features and produces the calculator's metrics.
	Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error)
}

// #endregion

// #region qc-run

// QCRun is the QC record of one instrument run: the run's metadata plus the
// parallel qc_names/qc_values arrays built in fixed calculator order. The
// positional correspondence of names and values is a schema the downstream
// QC database keys on; reordering calculators is a breaking change.
type QCRun struct {
	Date             string    `json:"date"`
	OriginalFilename string    `json:"original_filename"`
	ChemicalMixID    string    `json:"chemical_mix_id"`
	MsfeVersion      string    `json:"msfe_version"`
	ScansProcessed   int       `json:"scans_processed"`
	QCNames          []string  `json:"qc_names"`
	QCValues         []float64 `json:"qc_values"`
}

// QCMatrix collects the QC records of a batch of runs, in input order.
type QCMatrix struct {
	QCRuns []QCRun `json:"qc_runs"`
}

// #endregion
