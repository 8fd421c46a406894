package main

import (
	"os"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// HarvInfix marks result files produced by the harvester pipeline.
const HarvInfix = "harv_processed"

// ListHarvFiles lists the regular files under dir whose name contains
// HarvInfix, sorted by name.
func ListHarvFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pfx.Err(err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), HarvInfix) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	return files, nil
}
