package peakcall

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	res, err := Classify(testMarkers(), []float64{1e-4}, lowParams())
	if err != nil {
		t.Fatal(err)
	}

	summaries := Summarize(res)
	if len(summaries) != DefaultChromosomes {
		t.Fatalf("expected %d summaries, got %d", DefaultChromosomes, len(summaries))
	}

	for i, s := range summaries {
		if s.Chromosome != i+1 {
			t.Error("summaries out of chromosome order:", s)
		}
		if s.Called != len(res.Chromosomes[i].Accepted) {
			t.Errorf("chromosome %d: called %d, view has %d", s.Chromosome, s.Called, len(res.Chromosomes[i].Accepted))
		}
		if s.Called == 0 && (s.MaxLOD != 0 || s.MeanLOD != 0) {
			t.Error("empty chromosome must report zeroes:", s)
		}
		if s.Called > 0 && s.MaxLOD < s.MeanLOD {
			t.Error("max LOD below mean LOD:", s)
		}
	}
}
