// Package peakcall decides which harvester peaks in a GWAS scan are called:
// it derives the two significance thresholds and applies the combined
// noise/Bonferroni/shape filter to every marker.
package peakcall

import (
	"strconv"
	"strings"
)

// Defaults mirror the dashboard inputs.
const (
	DefaultWindow     = 0 // top-5 peaks
	DefaultFactor     = 1.33
	DefaultMinCount   = 50
	DefaultMaxSpacing = 20000
	DefaultMinVbal    = 0.1

	// DefaultGenomeTests is the number of candidate test positions in the
	// Arabidopsis thaliana imputed marker set the pipeline was built
	// around. Studies on other organisms must override it.
	DefaultGenomeTests = 10709466

	DefaultChromosomes = 5
)

// QualityFloor separates SNPs the harvester graded into a peak (GQS above
// the floor) from background noise. Part of the calling contract; not
// user-tunable.
const QualityFloor = 3.0

// Params are the tunables of one classification run.
type Params struct {
	// Window selects which top-peak average seeds the noise threshold:
	// index 0 is the average LOD of the top 5 peaks, index 5 the top 10.
	Window int `json:"window"`

	// Factor multiplies the noise threshold.
	Factor float64 `json:"factor"`

	// MinCount is the minimum number of supporting SNPs in a called peak
	// (strict >).
	MinCount int `json:"mincount"`

	// MaxSpacing is the maximum average SNP spacing in a called peak
	// (strict <).
	MaxSpacing int `json:"maxspacing"`

	// MinVbal is the minimum vertical balance of a called peak (strict >).
	MinVbal float64 `json:"minvbal"`

	// GenomeTests is the Bonferroni denominator: the number of candidate
	// test positions for the genome build, not the row count of any one
	// file.
	GenomeTests int `json:"genometests"`

	// Chromosomes is the number of chromosomes in the study organism.
	Chromosomes int `json:"chromosomes"`
}

func DefaultParams() Params {
	return Params{
		Window:      DefaultWindow,
		Factor:      DefaultFactor,
		MinCount:    DefaultMinCount,
		MaxSpacing:  DefaultMaxSpacing,
		MinVbal:     DefaultMinVbal,
		GenomeTests: DefaultGenomeTests,
		Chromosomes: DefaultChromosomes,
	}
}

// FromStrings builds Params from raw user input. A blank or uncoercible
// value falls back to its default rather than erroring, so a half-filled
// form still classifies.
func FromStrings(window, factor, minCount, maxSpacing, minVbal string) Params {
	p := DefaultParams()
	p.Window = intOr(window, DefaultWindow)
	p.Factor = floatOr(factor, DefaultFactor)
	p.MinCount = intOr(minCount, DefaultMinCount)
	p.MaxSpacing = intOr(maxSpacing, DefaultMaxSpacing)
	p.MinVbal = floatOr(minVbal, DefaultMinVbal)

	return p
}

func intOr(s string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}

	return fallback
}

func floatOr(s string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}

	return fallback
}
