package main

import (
	"sync"
)

type Global struct {
	log logger

	Site    string
	Pathway string // directory holding harv_processed files

	GenomeTests int
	Chromosomes int

	m     sync.RWMutex
	files []string
}

func (g *Global) Files() []string {
	g.m.RLock()
	defer g.m.RUnlock()

	return g.files
}

func (g *Global) SetFiles(files []string) {
	g.m.Lock()
	defer g.m.Unlock()

	g.files = files
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
