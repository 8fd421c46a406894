package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/stefanprodic/SNIP/harvest"
	"github.com/stefanprodic/SNIP/manhattan"
	"github.com/stefanprodic/SNIP/peakcall"
)

var errUnknownFile = errors.New("unknown harv_processed file")

// classify loads one listed file and runs a full classification pass with
// the request's parameters. Every request recomputes from scratch; the
// response therefore always reflects its own completed run.
func (h *handler) classify(file string, q url.Values) (peakcall.Params, *peakcall.Result, error) {
	if err := h.checkFile(file); err != nil {
		return peakcall.Params{}, nil, err
	}

	params := peakcall.FromStrings(
		q.Get("window"),
		q.Get("factor"),
		q.Get("mincount"),
		q.Get("maxspacing"),
		q.Get("minvbal"),
	)
	params.GenomeTests = h.Global.GenomeTests
	params.Chromosomes = h.Global.Chromosomes

	markers, averages, err := harvest.Open(filepath.Join(h.Global.Pathway, file))
	if err != nil {
		return params, nil, err
	}

	res, err := peakcall.Classify(markers, averages, params)
	return params, res, err
}

// checkFile only admits names from the current directory listing, which
// also keeps path traversal out of harvest.Open.
func (h *handler) checkFile(name string) error {
	for _, f := range h.Global.Files() {
		if f == name {
			return nil
		}
	}

	return fmt.Errorf("%w: %q", errUnknownFile, name)
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	files, err := ListHarvFiles(h.Global.Pathway)
	if err != nil {
		h.HTTPError(w, r, err)
		return
	}
	h.Global.SetFiles(files)

	q := r.URL.Query()
	file := q.Get("file")
	if file == "" && len(files) > 0 {
		file = files[0]
	}

	output := struct {
		Site        string
		Files       []string
		File        string
		PeakChoices []int
		Params      peakcall.Params
		Result      *peakcall.Result
		Summaries   []peakcall.ChromSummary
		Query       template.URL
	}{
		Site:        h.Global.Site,
		Files:       files,
		File:        file,
		PeakChoices: []int{5, 6, 7, 8, 9, 10},
		Params:      peakcall.DefaultParams(),
	}

	if file == "" {
		h.Render(w, r, "index.html", output)
		return
	}

	params, res, err := h.classify(file, q)
	if err != nil {
		h.HTTPError(w, r, err)
		return
	}

	output.Params = params
	output.Result = res
	output.Summaries = peakcall.Summarize(res)
	output.Query = paramQuery(params)

	h.Render(w, r, "index.html", output)
}

func (h *handler) PlotPNG(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]

	chr, err := strconv.Atoi(mux.Vars(r)["chr"])
	if err != nil {
		h.HTTPError(w, r, fmt.Errorf("bad chromosome: %v", err))
		return
	}

	_, res, err := h.classify(file, r.URL.Query())
	if err != nil {
		h.HTTPError(w, r, err)
		return
	}

	for _, view := range res.Chromosomes {
		if view.Chromosome != chr {
			continue
		}

		// Render to a byte buffer so a failed chart never produces a
		// half-written image response
		var buffer bytes.Buffer
		if err := manhattan.Draw(view, &buffer); err != nil {
			h.HTTPError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		buffer.WriteTo(w)
		return
	}

	h.HTTPError(w, r, fmt.Errorf("chromosome %d out of range", chr))
}

func (h *handler) Table(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]

	_, res, err := h.classify(file, r.URL.Query())
	if err != nil {
		h.HTTPError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_called.tsv"`, file))

	if err := peakcall.WriteTable(w, res.Accepted); err != nil {
		h.Global.log.Println(r.URL.Path, err)
	}
}

func (h *handler) API(w http.ResponseWriter, r *http.Request) {
	file := mux.Vars(r)["file"]

	params, res, err := h.classify(file, r.URL.Query())
	if err != nil {
		h.HTTPError(w, r, err)
		return
	}

	output := struct {
		File   string           `json:"file"`
		Params peakcall.Params  `json:"params"`
		Result *peakcall.Result `json:"result"`
	}{file, params, res}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(output); err != nil {
		h.Global.log.Println(r.URL.Path, err)
	}
}

// paramQuery rebuilds the tunables as a query string so the plot image and
// table download URLs reproduce the page's parameters exactly.
func paramQuery(p peakcall.Params) template.URL {
	q := url.Values{}
	q.Set("window", strconv.Itoa(p.Window))
	q.Set("factor", strconv.FormatFloat(p.Factor, 'g', -1, 64))
	q.Set("mincount", strconv.Itoa(p.MinCount))
	q.Set("maxspacing", strconv.Itoa(p.MaxSpacing))
	q.Set("minvbal", strconv.FormatFloat(p.MinVbal, 'g', -1, 64))

	return template.URL(q.Encode())
}
