package scene

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/alexozer/upperenv"
)

const (
	plotSize   = 800.0
	plotMargin = 20.0
)

// Plot draws a top-down view of mesh as SVG. Faces are shaded from dark
// (low) to light (high) by their mean height; vertices are marked with dots.
func Plot(w io.Writer, mesh *upperenv.Mesh, title string) {
	bb := mesh.Bounds()
	data := mesh.Export()

	canvas := svg.New(w)
	canvas.Start(plotSize, plotSize)
	canvas.Title(title)
	defer canvas.End()

	if bb.Empty() {
		return
	}

	span := bb.Span(0)
	if l := bb.Span(1); l > span {
		span = l
	}
	if span == 0 {
		span = 1
	}
	scale := (plotSize - 2*plotMargin) / span

	// SVG y grows downwards
	px := func(x float64) float64 { return plotMargin + (x-bb.Min[0])*scale }
	py := func(y float64) float64 { return plotSize - plotMargin - (y-bb.Min[1])*scale }

	height := bb.Span(2)

	canvas.Gstyle("stroke:black;stroke-width:1")
	for _, face := range data.Faces {
		xs := make([]float64, len(face))
		ys := make([]float64, len(face))
		z := 0.0
		for i, v := range face {
			xs[i], ys[i] = px(data.Points[v][0]), py(data.Points[v][1])
			z += data.Points[v][2]
		}
		z /= float64(len(face))

		shade := 128
		if height > 0 {
			shade = 64 + int(160*(z-bb.Min[2])/height)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:rgb(%d,%d,%d)", shade, shade, shade))
	}
	canvas.Gend()

	canvas.Gstyle("fill:red")
	for _, co := range data.Points {
		canvas.Circle(px(co[0]), py(co[1]), 2)
	}
	canvas.Gend()
}
