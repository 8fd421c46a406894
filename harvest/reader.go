package harvest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// ErrMalformedInput reports a source that cannot be parsed as a
// harv_processed file. The load is all-or-nothing: on error no markers are
// returned.
var ErrMalformedInput = errors.New("harvest: malformed input")

// layout maps the required harv_processed columns to their positions in the
// header row. Extra columns (GEMMA emits rs, allele1, af, beta, se, ...) are
// ignored.
type layout struct {
	chr, ps, pWald, gqs, spacing, count, monot, vbal int
}

var requiredColumns = []string{"chr", "ps", "p_wald", "GQS", "spacing", "count", "monot", "vbal1"}

func layoutFromHeader(header []string) (layout, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, exists := byName[name]; !exists {
			return layout{}, fmt.Errorf("%w: header is missing column %q", ErrMalformedInput, name)
		}
	}

	return layout{
		chr:     byName["chr"],
		ps:      byName["ps"],
		pWald:   byName["p_wald"],
		gqs:     byName["GQS"],
		spacing: byName["spacing"],
		count:   byName["count"],
		monot:   byName["monot"],
		vbal:    byName["vbal1"],
	}, nil
}

// ReadHarvProcessed parses a harv_processed source. The first line holds the
// average LODs of the top-5 through top-10 peaks; the remainder is a
// header-labeled table with one row per SNP.
func ReadHarvProcessed(r io.Reader) ([]Marker, []float64, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, nil, pfx.Err(err)
	}

	averages, err := parseAverages(first)
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, fmt.Errorf("%w: no marker table after the averages line", ErrMalformedInput)
	}

	cr := csv.NewReader(bytes.NewReader(body))
	cr.Comma = detectDelimiter(bytes.NewReader(body))
	cr.Comment = '#'

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(rows) < 1 {
		return nil, nil, fmt.Errorf("%w: no marker table after the averages line", ErrMalformedInput)
	}

	l, err := layoutFromHeader(rows[0])
	if err != nil {
		return nil, nil, err
	}

	markers := make([]Marker, 0, len(rows)-1)
	for i, row := range rows[1:] {
		m, err := parseMarker(l, row)
		if err != nil {
			// +3: 1-based, plus the averages line and the header line
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i+3, err)
		}
		markers = append(markers, m)
	}

	return markers, averages, nil
}

func parseAverages(line string) ([]float64, error) {
	fields := splitAverages(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: missing top-peak averages line", ErrMalformedInput)
	}

	averages := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric top-peak average %q", ErrMalformedInput, field)
		}
		averages = append(averages, v)
	}

	return averages, nil
}

// The averages line is tab-delimited in harvester output, but loads from
// comma- or space-delimited exports as well, matching the body sniffing.
func splitAverages(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	switch {
	case strings.ContainsRune(line, '\t'):
		return strings.Split(line, "\t")
	case strings.ContainsRune(line, ','):
		return strings.Split(line, ",")
	}

	return strings.Fields(line)
}

func parseMarker(l layout, row []string) (Marker, error) {
	var m Marker
	var err error

	if m.Chromosome, err = strconv.Atoi(strings.TrimSpace(row[l.chr])); err != nil {
		return m, fmt.Errorf("chr: %v", err)
	}

	if m.Position, err = strconv.Atoi(strings.TrimSpace(row[l.ps])); err != nil {
		return m, fmt.Errorf("ps: %v", err)
	}

	if m.PWald, err = strconv.ParseFloat(strings.TrimSpace(row[l.pWald]), 64); err != nil {
		return m, fmt.Errorf("p_wald: %v", err)
	}
	if m.PWald <= 0 {
		// -log10 is undefined at and below zero
		return m, fmt.Errorf("p_wald must be positive, got %v", m.PWald)
	}

	if m.GQS, err = optionalFloat(row[l.gqs]); err != nil {
		return m, fmt.Errorf("GQS: %v", err)
	}
	if m.Spacing, err = optionalFloat(row[l.spacing]); err != nil {
		return m, fmt.Errorf("spacing: %v", err)
	}
	if m.Count, err = optionalFloat(row[l.count]); err != nil {
		return m, fmt.Errorf("count: %v", err)
	}
	if m.Monot, err = optionalFloat(row[l.monot]); err != nil {
		return m, fmt.Errorf("monot: %v", err)
	}
	if m.Vbal, err = optionalFloat(row[l.vbal]); err != nil {
		return m, fmt.Errorf("vbal1: %v", err)
	}

	return m, nil
}
