package peakcall

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidThreshold reports threshold inputs that cannot seed a
// classification run. The caller should keep its previous output.
var ErrInvalidThreshold = errors.New("peakcall: invalid threshold")

// Thresholds are the two significance floors of one run, applied uniformly
// across all chromosomes.
type Thresholds struct {
	// Noise is the data-driven floor -log10(topAverages[window]) * factor.
	Noise float64 `json:"noise"`

	// Bonferroni is the multiple-testing floor -log10(0.05 / genomeTests).
	Bonferroni float64 `json:"bonferroni"`
}

// ComputeThresholds derives both floors. Neither depends on the markers
// themselves, and neither is assumed tighter than the other: the filter
// predicate evaluates both.
func ComputeThresholds(topAverages []float64, p Params) (Thresholds, error) {
	if p.Window < 0 || p.Window >= len(topAverages) {
		return Thresholds{}, fmt.Errorf("%w: window %d out of range of %d top-peak averages", ErrInvalidThreshold, p.Window, len(topAverages))
	}

	avg := topAverages[p.Window]
	if avg <= 0 {
		return Thresholds{}, fmt.Errorf("%w: non-positive top-peak average %v at window %d", ErrInvalidThreshold, avg, p.Window)
	}

	if p.GenomeTests <= 0 {
		return Thresholds{}, fmt.Errorf("%w: non-positive genome test count %d", ErrInvalidThreshold, p.GenomeTests)
	}

	return Thresholds{
		Noise:      -math.Log10(avg) * p.Factor,
		Bonferroni: -math.Log10(0.05 / float64(p.GenomeTests)),
	}, nil
}
