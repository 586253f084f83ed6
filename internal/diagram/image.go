package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/golam/internal/composite"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plyColor picks a fill color per fiber direction
func plyColor(angle float64) color.Color {
	switch Fill(angle) {
	case "─":
		return color.RGBA{R: 70, G: 70, B: 70, A: 200}
	case "│":
		return color.RGBA{R: 100, G: 149, B: 237, A: 200}
	case "╱":
		return color.RGBA{R: 60, G: 179, B: 113, A: 200}
	default:
		return color.RGBA{R: 218, G: 165, B: 32, A: 200}
	}
}

// plyBands returns the z range of every ply, bottom and top in mm. The
// first layer starts at z = -t/2, as in the laminate assembly.
func plyBands(lam *composite.Laminate) [][2]float64 {
	layers := lam.Layers()
	bands := make([][2]float64, len(layers))
	z := -lam.Thickness() / 2
	for i, l := range layers {
		bands[i] = [2]float64{z, z + l.Thickness()}
		z += l.Thickness()
	}
	return bands
}

// ExportStackDiagram exports a cross-section of the ply stack to an image
// file. The z axis points down so the first layer, at z = -t/2, is drawn
// at the top like the ASCII stack.
func ExportStackDiagram(lam *composite.Laminate, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Laminate %s", lam.Name())
	p.X.Label.Text = "Width (arbitrary)"
	p.Y.Label.Text = "z (mm)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.HideX()

	const width = 10.0
	layers := lam.Layers()
	for i, band := range plyBands(lam) {
		l := layers[i]
		lo, hi := band[0], band[1]
		ply, err := plotter.NewPolygon(plotter.XYs{
			{X: 0, Y: lo},
			{X: width, Y: lo},
			{X: width, Y: hi},
			{X: 0, Y: hi},
		})
		if err != nil {
			return err
		}
		ply.Color = plyColor(l.Angle())
		ply.LineStyle.Color = color.Black
		ply.LineStyle.Width = vg.Points(0.5)
		p.Add(ply)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: width + 0.3, Y: (lo + hi) / 2}},
			Labels: []string{fmt.Sprintf("%d: %g° %s", i+1, l.Angle(), l.Fiber().Name())},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// Mid-plane
	mid, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: width + 0.5, Y: 0}})
	if err != nil {
		return err
	}
	mid.LineStyle.Width = vg.Points(1.5)
	mid.LineStyle.Color = color.RGBA{R: 255, A: 255}
	mid.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(mid)

	p.X.Min, p.X.Max = -1, width*1.6
	return save(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// ExportSweep plots the in-plane moduli against the rotation angle.
func ExportSweep(name string, points []composite.SweepPoint, filename string) error {
	if len(points) < 2 {
		return fmt.Errorf("sweep of %q has %d points, need at least 2", name, len(points))
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Laminate %s rotated", name)
	p.X.Label.Text = "Rotation (°)"
	p.Y.Label.Text = "Modulus (MPa)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	series := []struct {
		label string
		value func(composite.SweepPoint) float64
		color color.Color
	}{
		{"E_x", func(s composite.SweepPoint) float64 { return s.Ex }, color.RGBA{R: 200, A: 255}},
		{"E_y", func(s composite.SweepPoint) float64 { return s.Ey }, color.RGBA{B: 200, A: 255}},
		{"G_xy", func(s composite.SweepPoint) float64 { return s.Gxy }, color.RGBA{G: 150, A: 255}},
	}
	for _, s := range series {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.Angle, Y: s.value(pt)}
		}
		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = s.color
		pts.GlyphStyle.Color = s.color
		pts.GlyphStyle.Radius = vg.Points(2)
		pts.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, pts)
		p.Legend.Add(s.label, line, pts)
	}

	p.X.Min, p.X.Max = 0, 180
	p.Y.Min = 0
	return save(p, filename, 8*vg.Inch, 5*vg.Inch)
}

// save writes the plot; the format follows the extension, png by default.
func save(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
