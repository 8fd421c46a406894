// snipweb serves the SNIP calling dashboard: a file picker over a directory
// of harv_processed GWAS results, a parameter form, per-chromosome Manhattan
// plots, and the called-SNP table.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stefanprodic/SNIP/peakcall"
)

var global *Global

func main() {
	errs := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
	)

	pathway := flag.String("path", "harv_processed", "Directory holding harv_processed GWAS result files.")
	port := flag.Int("port", 9027, "Port for HTTP server")
	genomeTests := flag.Int("genometests", peakcall.DefaultGenomeTests, "Number of candidate test positions for the genome build (Bonferroni denominator).")
	chromosomes := flag.Int("chromosomes", peakcall.DefaultChromosomes, "Number of chromosomes in the study organism.")
	flag.Parse()

	files, err := ListHarvFiles(*pathway)
	if err != nil {
		log.Fatalln(err)
	}

	global = &Global{
		Site:        "SNIP calling",
		log:         log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		Pathway:     *pathway,
		GenomeTests: *genomeTests,
		Chromosomes: *chromosomes,
		files:       files,
	}

	global.log.Println("Launching", global.Site)
	if len(files) == 0 {
		global.log.Printf("No %s files under %s yet; the listing refreshes on every page load\n", HarvInfix, *pathway)
	}

	go func() {
		handler, err := router(global)
		if err != nil {
			errs <- err
			return
		}

		global.log.Println("Starting HTTP server on port", *port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, *port), handler); err != nil {
			errs <- err
		}
	}()

	select {
	case sigl := <-sig:
		global.log.Printf("Exit: %s\n", sigl.String())
	case err := <-errs:
		global.log.Println("Exiting due to error", err)
		os.Exit(1)
	}
}
