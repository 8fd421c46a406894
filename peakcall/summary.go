package peakcall

import (
	"github.com/montanaflynn/stats"
)

// ChromSummary describes the called SNPs of one chromosome.
type ChromSummary struct {
	Chromosome int     `json:"chr"`
	Called     int     `json:"called"`
	MaxLOD     float64 `json:"maxLOD"`
	MeanLOD    float64 `json:"meanLOD"`
}

// Summarize reduces a Result to per-chromosome calling statistics for
// reporting. Chromosomes with no called SNPs report zeroes.
func Summarize(res *Result) []ChromSummary {
	out := make([]ChromSummary, 0, len(res.Chromosomes))

	for _, view := range res.Chromosomes {
		s := ChromSummary{Chromosome: view.Chromosome, Called: len(view.Accepted)}

		if len(view.Accepted) > 0 {
			lods := make([]float64, 0, len(view.Accepted))
			for _, pt := range view.Accepted {
				lods = append(lods, pt.LOD)
			}

			// stats errors only on empty input, which is excluded above
			s.MaxLOD, _ = stats.Max(lods)
			s.MeanLOD, _ = stats.Mean(lods)
		}

		out = append(out, s)
	}

	return out
}
