// Package harvest reads harv_processed files: per-chromosome GWAS scan
// results from GEMMA, annotated with Manhattan Harvester peak descriptors.
package harvest

import (
	"math"

	"gopkg.in/guregu/null.v3"
)

// Marker is one row of a harv_processed file: a single SNP's association
// result plus the descriptors of the harvester peak it was assigned to.
// The harvester columns are None for SNPs that sit outside any peak.
type Marker struct {
	Chromosome int     `json:"chr"`
	Position   int     `json:"ps"`
	PWald      float64 `json:"p_wald"`

	// GQS is the harvester's grade for the peak this SNP belongs to. A
	// marker without a GQS was never assigned to a peak and can only ever
	// be background.
	GQS null.Float `json:"GQS"`

	// Spacing is the average distance between SNPs within the peak.
	Spacing null.Float `json:"spacing"`

	// Count is the number of SNPs with LOD over 3 supporting the peak.
	Count null.Float `json:"count"`

	// Monot measures how monotonically the peak rises and falls. Carried
	// through to the output table; not used for filtering.
	Monot null.Float `json:"monot"`

	// Vbal is the vertical balance (symmetry) of the peak profile.
	Vbal null.Float `json:"vbal1"`
}

// LOD is the association strength -log10(p_wald).
func (m Marker) LOD() float64 {
	return -math.Log10(m.PWald)
}
