package metrics

// #region imports
import (
	"fmt"
	"math"

	"github.com/msqclab/qcmg/internal/featurematrix"
	"github.com/msqclab/qcmg/internal/validator"
)

// #endregion

const missing = featurematrix.MissingValue

// #region resolution

// resolutionCalc computes instrument resolution at one reference ion:
// the fitted m/z divided by the peak width at 50% of peak height.
type resolutionCalc struct {
	metric       string
	mzFeature    string
	widthFeature string
}

func (c resolutionCalc) MetricNames() []string { return []string{c.metric} }

func (c resolutionCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	mz, err := acc.Value(c.mzFeature)
	if err != nil {
		return nil, err
	}
	width, err := acc.Value(c.widthFeature)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs(c.metric, []string{c.mzFeature, c.widthFeature}, []float64{mz, width})

	if mz == missing || width == missing {
		return []Metric{{c.metric, missing}}, nil
	}
	if width == 0 {
		return nil, fmt.Errorf("%s: peak width is zero: %w", c.metric, ErrZeroDenominator)
	}
	return []Metric{{c.metric, mz / width}}, nil
}

// #endregion

// #region accuracy

// accuracyCalc averages the absolute mass-accuracy deviations of all
// expected ions, skipping missing observations.
type accuracyCalc struct{}

func (accuracyCalc) MetricNames() []string { return []string{"average_accuracy"} }

func (accuracyCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	values, err := acc.Values(accuracyFeatures)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("average_accuracy", accuracyFeatures, values)

	sum := 0.0
	count := 0
	for _, v := range values {
		if v == missing {
			continue
		}
		sum += v
		count++
	}
	sink.ObserveInputs("average_accuracy", []string{"total_non_missing"}, []float64{float64(count)})
	if count == 0 {
		return nil, fmt.Errorf("average_accuracy: every mass-accuracy feature is missing: %w", ErrZeroDenominator)
	}
	return []Metric{{"average_accuracy", sum / float64(count)}}, nil
}

// #endregion

// #region noise-sums

// sumCalc sums a fixed list of frame intensity sums. Used for the
// chemical-dirt and instrument-noise metrics. The extractor emits
// non-negative intensity sums for noise frames, so raw values are summed
// and there is no missing-value concept here.
type sumCalc struct {
	metric   string
	features []string
}

func (c sumCalc) MetricNames() []string { return []string{c.metric} }

func (c sumCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	values, err := acc.Values(c.features)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs(c.metric, c.features, values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return []Metric{{c.metric, sum}}, nil
}

// #endregion

// #region isotopic

// isotopicCalc averages the absolute deviations between observed and
// theoretical isotope intensity ratios, skipping missing observations.
type isotopicCalc struct{}

func (isotopicCalc) MetricNames() []string { return []string{"isotopic_presence"} }

func (isotopicCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	values, err := acc.Values(isotopicFeatures)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("isotopic_presence", isotopicFeatures, values)

	sum := 0.0
	count := 0
	for _, v := range values {
		if v == missing {
			continue
		}
		sum += math.Abs(v)
		count++
	}
	if count == 0 {
		return nil, fmt.Errorf("isotopic_presence: every isotope-ratio feature is missing: %w", ErrZeroDenominator)
	}
	return []Metric{{"isotopic_presence", sum / float64(count)}}, nil
}

// #endregion

// #region transmission

// transmissionCalc is the heavy-to-light ion intensity ratio.
type transmissionCalc struct{}

const (
	transmissionLight = "intensity_305"
	transmissionHeavy = "intensity_712"
)

func (transmissionCalc) MetricNames() []string { return []string{"transmission"} }

func (transmissionCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	light, err := acc.Value(transmissionLight)
	if err != nil {
		return nil, err
	}
	heavy, err := acc.Value(transmissionHeavy)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("transmission", []string{transmissionLight, transmissionHeavy}, []float64{light, heavy})

	if light == missing || heavy == missing {
		return []Metric{{"transmission", missing}}, nil
	}
	if light == 0 {
		return nil, fmt.Errorf("transmission: light ion intensity is zero: %w", ErrZeroDenominator)
	}
	return []Metric{{"transmission", heavy / light}}, nil
}

// #endregion

// #region passthrough

// passthroughCalc republishes already-finalized feature values under QC
// metric names. Used for the fragmentation ratios and the baseline
// percentiles, which the extractor computes completely.
type passthroughCalc struct {
	metrics  []string
	features []string
}

func (c passthroughCalc) MetricNames() []string { return c.metrics }

func (c passthroughCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	values, err := acc.Values(c.features)
	if err != nil {
		return nil, err
	}
	out := make([]Metric, len(c.metrics))
	for i, name := range c.metrics {
		sink.ObserveInputs(name, c.features[i:i+1], values[i:i+1])
		out[i] = Metric{name, values[i]}
	}
	return out, nil
}

// #endregion

// #region signal

// signalCalc sums the intensities of all expected ions that were observed.
// The non-missing count goes to the debug channel only.
type signalCalc struct{}

func (signalCalc) MetricNames() []string { return []string{"signal"} }

func (signalCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	values, err := acc.Values(signalFeatures)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("signal", signalFeatures, values)

	sum := 0.0
	count := 0
	for _, v := range values {
		if v == missing {
			continue
		}
		sum += v
		count++
	}
	sink.ObserveInputs("signal", []string{"total_non_missing"}, []float64{float64(count)})
	return []Metric{{"signal", sum}}, nil
}

// #endregion

// #region s2b

// s2bCalc is signal-to-background: a reference ion intensity over the 25th
// intensity percentile of the instrument-noise frame next to it.
type s2bCalc struct{}

const (
	s2IonIntensity = "intensity_510"
	s2Percentile25 = "percentiles_bg_650_0"
	s2Percentile50 = "percentiles_bg_650_1"
)

func (s2bCalc) MetricNames() []string { return []string{"s2b"} }

func (s2bCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	intensity, err := acc.Value(s2IonIntensity)
	if err != nil {
		return nil, err
	}
	p25, err := acc.Value(s2Percentile25)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("s2b", []string{s2IonIntensity, s2Percentile25}, []float64{intensity, p25})

	if intensity == missing || p25 == missing {
		return []Metric{{"s2b", missing}}, nil
	}
	if p25 == 0 {
		return nil, fmt.Errorf("s2b: background percentile is zero: %w", ErrZeroDenominator)
	}
	return []Metric{{"s2b", intensity / p25}}, nil
}

// #endregion

// #region s2n

// s2nCalc is signal-to-noise: a reference ion intensity over the spread
// between the 50th and 25th intensity percentiles of the same
// instrument-noise frame.
type s2nCalc struct{}

func (s2nCalc) MetricNames() []string { return []string{"s2n"} }

func (s2nCalc) Compute(acc *featurematrix.Accessor, sink validator.Sink) ([]Metric, error) {
	intensity, err := acc.Value(s2IonIntensity)
	if err != nil {
		return nil, err
	}
	p25, err := acc.Value(s2Percentile25)
	if err != nil {
		return nil, err
	}
	p50, err := acc.Value(s2Percentile50)
	if err != nil {
		return nil, err
	}
	sink.ObserveInputs("s2n", []string{s2IonIntensity, s2Percentile25, s2Percentile50}, []float64{intensity, p25, p50})

	if intensity == missing || p25 == missing || p50 == missing {
		return []Metric{{"s2n", missing}}, nil
	}
	if p50-p25 == 0 {
		return nil, fmt.Errorf("s2n: percentile spread is zero: %w", ErrZeroDenominator)
	}
	return []Metric{{"s2n", intensity / (p50 - p25)}}, nil
}

// #endregion
