package peakcall

import (
	"math"
	"testing"
)

func TestFromStringsDefaults(t *testing.T) {
	if got := FromStrings("", "", "", "", ""); got != DefaultParams() {
		t.Error("blank inputs must fall back to the defaults, got", got)
	}
}

func TestFromStringsUncoercible(t *testing.T) {
	got := FromStrings("first", "fast", "many", "wide", "flat")
	if got != DefaultParams() {
		t.Error("uncoercible inputs must fall back to the defaults, got", got)
	}
}

func TestFromStringsParses(t *testing.T) {
	got := FromStrings("3", "2.5", "10", "5000", "0.25")

	if got.Window != 3 || got.Factor != 2.5 || got.MinCount != 10 ||
		got.MaxSpacing != 5000 || got.MinVbal != 0.25 {
		t.Error("valid inputs not parsed:", got)
	}
	if got.GenomeTests != DefaultGenomeTests || got.Chromosomes != DefaultChromosomes {
		t.Error("study-level settings should keep their defaults:", got)
	}
}

// Blank factor input must produce the documented default noise bound.
func TestBlankFactorNoiseBound(t *testing.T) {
	averages := []float64{2.5e-08}

	thr, err := ComputeThresholds(averages, FromStrings("", "", "", "", ""))
	if err != nil {
		t.Fatal(err)
	}

	if want := -math.Log10(averages[0]) * 1.33; thr.Noise != want {
		t.Errorf("noise with defaulted factor: got %v, want %v", thr.Noise, want)
	}
}
