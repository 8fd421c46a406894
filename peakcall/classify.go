package peakcall

import (
	"github.com/stefanprodic/SNIP/harvest"
)

// Class is the outcome of the filter predicate for one marker. The three
// classes partition the marker set for a fixed parameter set.
type Class int

const (
	// Background: no harvester peak membership, or below a significance
	// floor.
	Background Class = iota

	// Detected: harvester-graded and significant, but failing at least one
	// of the count/spacing/vbal criteria.
	Detected

	// Accepted: passes everything; a called SNP.
	Accepted
)

func (c Class) String() string {
	switch c {
	case Detected:
		return "detected"
	case Accepted:
		return "accepted"
	}

	return "background"
}

// Point is one plotted marker.
type Point struct {
	Position int            `json:"ps"`
	LOD      float64        `json:"LOD"`
	Marker   harvest.Marker `json:"marker"`
}

// ChromView is the renderable classification of one chromosome: three
// disjoint point sets plus the two threshold lines spanning the
// chromosome's position range.
type ChromView struct {
	Chromosome int     `json:"chr"`
	Background []Point `json:"background"`
	Detected   []Point `json:"detected"`
	Accepted   []Point `json:"accepted"`
	Noise      float64 `json:"noise"`
	Bonferroni float64 `json:"bonferroni"`
	MinPos     int     `json:"minpos"`
	MaxPos     int     `json:"maxpos"`
}

// Result is the full output of one classification run: one view per
// chromosome, and the called SNPs of all chromosomes concatenated in
// chromosome order.
type Result struct {
	Thresholds  Thresholds    `json:"thresholds"`
	Chromosomes []ChromView   `json:"chromosomes"`
	Accepted    []AcceptedRow `json:"accepted"`
}

// Classify runs one full peak-acceptance pass. It is a pure function of its
// arguments: identical inputs yield an identical Result, and nothing is
// cached across parameter changes.
func Classify(markers []harvest.Marker, topAverages []float64, p Params) (*Result, error) {
	t, err := ComputeThresholds(topAverages, p)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Thresholds: t,
		Accepted:   make([]AcceptedRow, 0),
	}

	for chr := 1; chr <= p.Chromosomes; chr++ {
		view := ChromView{
			Chromosome: chr,
			Noise:      t.Noise,
			Bonferroni: t.Bonferroni,
		}

		first := true
		for _, m := range markers {
			if m.Chromosome != chr {
				continue
			}

			pt := Point{Position: m.Position, LOD: m.LOD(), Marker: m}

			if first || pt.Position < view.MinPos {
				view.MinPos = pt.Position
			}
			if first || pt.Position > view.MaxPos {
				view.MaxPos = pt.Position
			}
			first = false

			switch ClassifyMarker(m, t, p) {
			case Accepted:
				view.Accepted = append(view.Accepted, pt)
				res.Accepted = append(res.Accepted, acceptedRow(m, pt.LOD))
			case Detected:
				view.Detected = append(view.Detected, pt)
			default:
				view.Background = append(view.Background, pt)
			}
		}

		res.Chromosomes = append(res.Chromosomes, view)
	}

	return res, nil
}

// ClassifyMarker applies the filter predicate to a single marker. All
// comparisons are strict: a marker sitting exactly on a threshold fails it.
func ClassifyMarker(m harvest.Marker, t Thresholds, p Params) Class {
	// A marker the harvester never graded into a peak stays background no
	// matter how strong its association.
	if !m.GQS.Valid || !(m.GQS.Float64 > QualityFloor) {
		return Background
	}

	lod := m.LOD()
	if !(lod > t.Noise) || !(lod > t.Bonferroni) {
		return Background
	}

	if m.Count.Valid && m.Count.Float64 > float64(p.MinCount) &&
		m.Spacing.Valid && m.Spacing.Float64 < float64(p.MaxSpacing) &&
		m.Vbal.Valid && m.Vbal.Float64 > p.MinVbal {
		return Accepted
	}

	return Detected
}
