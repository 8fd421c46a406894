// Package manhattan renders one chromosome's classified markers as a PNG
// scatter chart. It consumes the peakcall view contract and can be swapped
// for any other renderer.
package manhattan

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stefanprodic/SNIP/peakcall"
)

var (
	colorBackground = drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 255}
	colorHarvester  = drawing.Color{R: 0x2a, G: 0x78, B: 0x8e, A: 255}
	colorCalled     = drawing.Color{R: 0xd6, G: 0x2a, B: 0x28, A: 255}
	colorNoise      = drawing.Color{R: 0x41, G: 0x69, B: 0xe1, A: 255}
)

// Draw renders the view at the default size.
func Draw(view peakcall.ChromView, w io.Writer) error {
	return DrawSized(view, w, 560, 640)
}

// DrawSized renders gray background dots, harvester-graded dots, red called
// dots, and the dashed noise and Bonferroni lines spanning the chromosome's
// position range.
func DrawSized(view peakcall.ChromView, w io.Writer, width, height int) error {
	plain, graded := splitBackground(view.Background)

	series := make([]chart.Series, 0, 5)
	for _, layer := range []struct {
		name   string
		color  drawing.Color
		points []peakcall.Point
	}{
		{"not called", colorBackground, plain},
		{"harvester graded", colorHarvester, graded},
		{"harvester detected", colorHarvester, view.Detected},
		{"called", colorCalled, view.Accepted},
	} {
		if len(layer.points) == 0 {
			continue
		}
		series = append(series, scatter(layer.name, layer.color, layer.points))
	}

	if len(series) == 0 {
		return fmt.Errorf("manhattan: chromosome %d has no markers to draw", view.Chromosome)
	}

	series = append(series,
		refLine("noise", colorNoise, view.Noise, view),
		refLine("bonferroni", colorCalled, view.Bonferroni, view),
	)

	graph := chart.Chart{
		Title:  fmt.Sprintf("Chromosome %d", view.Chromosome),
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "position",
		},
		YAxis: chart.YAxis{
			Name: "-log10(p-value)",
		},
		Series: series,
	}

	return graph.Render(chart.PNG, w)
}

// Markers the harvester graded into a peak but which missed a significance
// floor stay in the background class, yet are drawn in the harvester color
// so the peak shape remains visible under the thresholds.
func splitBackground(background []peakcall.Point) (plain, graded []peakcall.Point) {
	for _, pt := range background {
		if pt.Marker.GQS.Valid && pt.Marker.GQS.Float64 > peakcall.QualityFloor {
			graded = append(graded, pt)
			continue
		}
		plain = append(plain, pt)
	}

	return plain, graded
}

func scatter(name string, color drawing.Color, points []peakcall.Point) chart.Series {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, pt := range points {
		xs = append(xs, float64(pt.Position))
		ys = append(ys, pt.LOD)
	}

	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    3,
			DotColor:    color,
		},
	}
}

func refLine(name string, color drawing.Color, y float64, view peakcall.ChromView) chart.Series {
	minPos, maxPos := float64(view.MinPos), float64(view.MaxPos)
	if minPos >= maxPos {
		// single-marker chromosome; give the line some width
		maxPos = minPos + 1
	}

	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{minPos, maxPos},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeWidth:     2,
			StrokeColor:     color,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}
