// Package validator is the human-readable debug side channel of the QC
// pipeline. Calculators report their raw inputs and the finished QC record
// to an injected Sink; the dumps have no machine-readable contract and no
// effect on the computed QC values.
package validator

import (
	"fmt"
	"io"
)

// #region sink

// Sink receives metric dumps from the QC pipeline.
type Sink interface {
	// ObserveInputs reports the raw feature inputs of one metric.
	ObserveInputs(metric string, names []string, values []float64)
	// ObserveMetrics reports a finished QC record (parallel names/values).
	ObserveMetrics(names []string, values []float64)
}

// #endregion

// #region nop

// Nop discards all observations. Used when the debug flag is off.
type Nop struct{}

func (Nop) ObserveInputs(string, []string, []float64) {}
func (Nop) ObserveMetrics([]string, []float64)        {}

// #endregion

// #region printer

// Printer writes name/value dumps to w, one pair per line.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) ObserveInputs(metric string, names []string, values []float64) {
	for i, name := range names {
		fmt.Fprintf(p.w, "%s <- %s = %v\n", metric, name, values[i])
	}
}

func (p *Printer) ObserveMetrics(names []string, values []float64) {
	for i, name := range names {
		fmt.Fprintf(p.w, "qc: %s = %v\n", name, values[i])
	}
}

// #endregion
