package manhattan

import (
	"bytes"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/stefanprodic/SNIP/harvest"
	"github.com/stefanprodic/SNIP/peakcall"
)

func testView() peakcall.ChromView {
	graded := harvest.Marker{Chromosome: 1, Position: 12000, PWald: 1e-6, GQS: null.FloatFrom(4.0)}

	return peakcall.ChromView{
		Chromosome: 1,
		Background: []peakcall.Point{
			{Position: 10000, LOD: 1.5, Marker: harvest.Marker{Chromosome: 1, Position: 10000, PWald: 0.03}},
			{Position: 12000, LOD: 6.0, Marker: graded},
		},
		Detected: []peakcall.Point{
			{Position: 14000, LOD: 9.1, Marker: harvest.Marker{Chromosome: 1, Position: 14000, PWald: 8e-10, GQS: null.FloatFrom(3.5)}},
		},
		Accepted: []peakcall.Point{
			{Position: 16000, LOD: 11.3, Marker: harvest.Marker{Chromosome: 1, Position: 16000, PWald: 5e-12, GQS: null.FloatFrom(4.8)}},
		},
		Noise:      8.5,
		Bonferroni: 8.33,
		MinPos:     10000,
		MaxPos:     16000,
	}
}

func TestDrawProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Draw(testView(), &buf); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestDrawEmptyChromosome(t *testing.T) {
	var buf bytes.Buffer
	if err := Draw(peakcall.ChromView{Chromosome: 3}, &buf); err == nil {
		t.Error("drawing a chromosome with no markers should error")
	}
}

func TestSplitBackground(t *testing.T) {
	view := testView()

	plain, graded := splitBackground(view.Background)
	if len(plain) != 1 || len(graded) != 1 {
		t.Fatalf("split: got %d plain, %d graded", len(plain), len(graded))
	}
	if graded[0].Position != 12000 {
		t.Error("the GQS-graded background point should be in the graded layer")
	}
}
