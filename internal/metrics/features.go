package metrics

// Feature identifiers follow the extractor's naming scheme: a per-peak
// feature is "<feature>_<ion id>" where the ion id is the nominal mass of
// the expected ion, list-valued features are flattened with a trailing
// index ("widths_193_1" is the width at 50% of peak height), and per-frame
// noise-scan features carry the frame's upper m/z bound.

// #region ion-list

// expectedIonIDs are the ions of the chemical mix, by nominal mass.
var expectedIonIDs = []string{
	"118", "193", "305", "432", "462", "503", "510", "554", "639", "682", "712", "922",
}

// #endregion

// #region feature-lists

var (
	accuracyFeatures = prefixed("absolute_mass_accuracy_", expectedIonIDs)
	signalFeatures   = prefixed("intensity_", expectedIonIDs)

	// chemical-noise and instrument-noise scans are framed into six
	// 100 m/z windows between 50 and 650
	noiseFrames             = []string{"150", "250", "350", "450", "550", "650"}
	dirtFeatures            = prefixed("intensity_sum_chem_noise_", noiseFrames)
	instrumentNoiseFeatures = prefixed("intensity_sum_bg_", noiseFrames)

	isotopicFeatures = []string{
		"isotopes_ratios_diffs_193_0",
		"isotopes_ratios_diffs_193_1",
		"isotopes_ratios_diffs_193_2",
		"isotopes_ratios_diffs_305_0",
		"isotopes_ratios_diffs_305_1",
		"isotopes_ratios_diffs_712_0",
		"isotopes_ratios_diffs_712_1",
	}
)

func prefixed(prefix string, ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = prefix + id
	}
	return names
}

// #endregion
