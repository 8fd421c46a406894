package peakcall

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"

	"github.com/stefanprodic/SNIP/harvest"
)

// AcceptedRow is one line of the called-SNP table. Field order fixes the
// column order of the output: ps, LOD, GQS, spacing, count, monot, vbal1,
// chr.
type AcceptedRow struct {
	Position   int        `csv:"ps" json:"ps"`
	LOD        float64    `csv:"LOD" json:"LOD"`
	GQS        null.Float `csv:"GQS" json:"GQS"`
	Spacing    null.Float `csv:"spacing" json:"spacing"`
	Count      null.Float `csv:"count" json:"count"`
	Monot      null.Float `csv:"monot" json:"monot"`
	Vbal       null.Float `csv:"vbal1" json:"vbal1"`
	Chromosome int        `csv:"chr" json:"chr"`
}

func acceptedRow(m harvest.Marker, lod float64) AcceptedRow {
	return AcceptedRow{
		Position:   m.Position,
		LOD:        lod,
		GQS:        m.GQS,
		Spacing:    m.Spacing,
		Count:      m.Count,
		Monot:      m.Monot,
		Vbal:       m.Vbal,
		Chromosome: m.Chromosome,
	}
}

// WriteTable writes the called-SNP table as tab-delimited text with a
// header row. Output is deterministic for a given input.
func WriteTable(w io.Writer, rows []AcceptedRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	return pfx.Err(gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(cw)))
}
