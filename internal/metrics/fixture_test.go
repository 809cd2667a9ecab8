package metrics

import (
	"math"

	"github.com/msqclab/qcmg/internal/featurematrix"
)

// testFeatures returns a complete feature vector covering every identifier
// the pipeline reads, with hand-checkable values.
func testFeatures() map[string]float64 {
	f := map[string]float64{
		// resolution inputs: 205.1/0.05 = 4102, width@700 missing
		"mz_193":       205.1,
		"widths_193_1": 0.05,
		"mz_712":       712.9467,
		"widths_712_1": -1.0,

		// fragmentation and baseline pass-throughs
		"fragments_ratios_305_0":       0.05,
		"fragments_ratios_712_0":       0.07,
		"percentiles_chem_noise_150_0": 10,
		"percentiles_chem_noise_150_1": 20,
		"percentiles_chem_noise_650_0": 30,
		"percentiles_chem_noise_650_1": 40,

		// s2b = 800/4 = 200, s2n = 800/(9-4) = 160
		"percentiles_bg_650_0": 4,
		"percentiles_bg_650_1": 9,
	}

	// average_accuracy = (0.001+0.003)/2 = 0.002, two non-missing
	for _, id := range expectedIonIDs {
		f["absolute_mass_accuracy_"+id] = -1.0
	}
	f["absolute_mass_accuracy_118"] = 0.001
	f["absolute_mass_accuracy_305"] = 0.003

	// chemical_dirt = 2100, instrument_noise = 60
	for i, frame := range noiseFrames {
		f["intensity_sum_chem_noise_"+frame] = float64((i + 1) * 100)
		f["intensity_sum_bg_"+frame] = 10
	}

	// isotopic_presence = (|0.1|+|-0.2|+|0.3|)/3 = 0.2
	for _, name := range isotopicFeatures {
		f[name] = -1.0
	}
	f["isotopes_ratios_diffs_193_0"] = 0.1
	f["isotopes_ratios_diffs_193_1"] = -0.2
	f["isotopes_ratios_diffs_305_0"] = 0.3

	// signal = 5150 over 8 observed ions; transmission = 50/100 = 0.5
	intensities := map[string]float64{
		"118": 1000, "193": 2000, "305": 100, "432": -1, "462": 500, "503": -1,
		"510": 800, "554": -1, "639": 300, "682": -1, "712": 50, "922": 400,
	}
	for id, v := range intensities {
		f["intensity_"+id] = v
	}

	return f
}

// runFromFeatures flattens a feature map into an MsRun.
func runFromFeatures(f map[string]float64) featurematrix.MsRun {
	run := featurematrix.MsRun{
		Date:             "2019-06-10T113612",
		OriginalFilename: "raw.mzXML",
		ChemicalMixID:    "v1",
		MsfeVersion:      "0.3.1",
		ScansProcessed:   86,
	}
	for name, value := range f {
		run.FeaturesNames = append(run.FeaturesNames, name)
		run.FeaturesValues = append(run.FeaturesValues, value)
	}
	return run
}

func testAccessor(f map[string]float64) *featurematrix.Accessor {
	acc, err := featurematrix.NewAccessor(runFromFeatures(f))
	if err != nil {
		panic(err)
	}
	return acc
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
