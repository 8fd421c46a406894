package harvest

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// detectDelimiter returns the single most likely rune delimiting the marker
// table. Harvester output is tab-delimited, but files that have passed
// through spreadsheet tools sometimes arrive comma- or space-delimited.
func detectDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
