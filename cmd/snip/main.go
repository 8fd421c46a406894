// snip calls association peaks in one harv_processed GWAS result file and
// writes the called-SNP table, with optional per-chromosome Manhattan plots.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/stefanprodic/SNIP/harvest"
	"github.com/stefanprodic/SNIP/manhattan"
	"github.com/stefanprodic/SNIP/peakcall"
)

func main() {
	var file, out, plots string
	var peaks, factor, minCount, maxSpacing, minVbal string
	var genomeTests, chromosomes int

	flag.StringVar(&file, "file", "", "harv_processed file with GWAS scan results to call peaks on.")
	flag.StringVar(&out, "out", "", "(Optional) Path for the called-SNP table (tab-delimited). Prints to STDOUT if empty.")
	flag.StringVar(&plots, "plots", "", "(Optional) Directory for per-chromosome Manhattan plot PNGs. Skips plotting if empty.")
	flag.StringVar(&peaks, "peaks", "", "(Optional) How many top peaks to average for the noise threshold (5-10). Defaults to 5.")
	flag.StringVar(&factor, "factor", "", "(Optional) Noise threshold multiplier. Defaults to 1.33.")
	flag.StringVar(&minCount, "mincount", "", "(Optional) Minimum SNPs supporting a called peak, exclusive. Defaults to 50.")
	flag.StringVar(&maxSpacing, "maxspacing", "", "(Optional) Maximum average SNP spacing in a called peak, exclusive. Defaults to 20000.")
	flag.StringVar(&minVbal, "minvbal", "", "(Optional) Minimum vertical balance of a called peak, exclusive. Defaults to 0.1.")
	flag.IntVar(&genomeTests, "genometests", peakcall.DefaultGenomeTests, "Number of candidate test positions for the genome build (Bonferroni denominator).")
	flag.IntVar(&chromosomes, "chromosomes", peakcall.DefaultChromosomes, "Number of chromosomes in the study organism.")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		return
	}

	params := peakcall.FromStrings(windowFromPeaks(peaks), factor, minCount, maxSpacing, minVbal)
	params.GenomeTests = genomeTests
	params.Chromosomes = chromosomes

	if err := run(file, out, plots, params); err != nil {
		log.Fatalln(err)
	}
}

// The CLI takes the noise window as a peak count (5-10) like the dashboard
// dropdown; Params wants the 0-based index into the averages line.
func windowFromPeaks(peaks string) string {
	n, err := strconv.Atoi(strings.TrimSpace(peaks))
	if err != nil {
		return ""
	}

	return strconv.Itoa(n - 5)
}

func run(file, out, plots string, params peakcall.Params) error {
	markers, averages, err := harvest.Open(file)
	if err != nil {
		return err
	}

	res, err := peakcall.Classify(markers, averages, params)
	if err != nil {
		return err
	}

	log.Printf("Loaded %d markers from %s. Noise threshold %.3f, bonferroni %.3f\n",
		len(markers), file, res.Thresholds.Noise, res.Thresholds.Bonferroni)
	for _, s := range peakcall.Summarize(res) {
		if s.Called == 0 {
			log.Printf("Chromosome %d: no called SNPs\n", s.Chromosome)
			continue
		}
		log.Printf("Chromosome %d: %d called SNPs, max LOD %.3f, mean LOD %.3f\n",
			s.Chromosome, s.Called, s.MaxLOD, s.MeanLOD)
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return pfx.Err(err)
		}
		defer f.Close()
		w = f
	}

	if err := peakcall.WriteTable(w, res.Accepted); err != nil {
		return err
	}

	if plots == "" {
		return nil
	}

	return writePlots(plots, file, res)
}

func writePlots(plots, file string, res *peakcall.Result) error {
	if err := os.MkdirAll(plots, 0755); err != nil {
		return pfx.Err(err)
	}

	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, view := range res.Chromosomes {
		if len(view.Background)+len(view.Detected)+len(view.Accepted) == 0 {
			continue
		}

		name := filepath.Join(plots, fmt.Sprintf("%s_chr%d.png", base, view.Chromosome))
		f, err := os.Create(name)
		if err != nil {
			return pfx.Err(err)
		}

		if err := manhattan.Draw(view, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return pfx.Err(err)
		}

		log.Println("Wrote", name)
	}

	return nil
}
