package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
)

// Palette for exported diagrams
var (
	shearFill   = color.RGBA{R: 42, G: 157, B: 143, A: 110}
	shearLine   = color.RGBA{R: 42, G: 157, B: 143, A: 255}
	momentFill  = color.RGBA{R: 244, G: 208, B: 63, A: 110}
	momentLine  = color.RGBA{R: 230, G: 126, B: 34, A: 255}
	peakColor   = color.RGBA{R: 192, G: 57, B: 43, A: 255}
	supportInk  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	zeroLineInk = color.Gray{Y: 128}
)

// ExportShearDiagram draws V(x) with the area to the axis shaded and saves
// it to filename. The format follows the extension: .png, .svg, or .pdf.
func ExportShearDiagram(a *beam.Analysis, title, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Shear Force Diagram: %s", title)
	p.X.Label.Text = "Distance (mm)"
	p.Y.Label.Text = "Shear force (N)"

	samples := a.Samples(200)
	curve := make(plotter.XYs, len(samples))
	for i, s := range samples {
		curve[i] = plotter.XY{X: s.X, Y: s.V}
	}
	if err := addFilledCurve(p, curve, a.Beam().Length, shearFill, shearLine); err != nil {
		return err
	}
	if err := addBaseline(p, a.Beam().Length); err != nil {
		return err
	}
	if err := addSupportMarkers(p, a); err != nil {
		return err
	}

	ext := a.Critical(0)
	peaks := []peak{
		{x: ext.VMax.Position, y: ext.VMax.Value, text: fmt.Sprintf("V_max = %.4g N", ext.VMax.Value)},
		{x: ext.VMin.Position, y: ext.VMin.Value, text: fmt.Sprintf("V_min = %.4g N", ext.VMin.Value)},
	}
	if err := addPeakMarkers(p, peaks); err != nil {
		return err
	}
	return savePlot(p, filename)
}

// ExportMomentDiagram draws M(x) with the sagging and hogging area shaded
// and saves it to filename
func ExportMomentDiagram(a *beam.Analysis, title, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bending Moment Diagram: %s", title)
	p.X.Label.Text = "Distance (mm)"
	p.Y.Label.Text = "Bending moment (N·mm)"

	samples := a.Samples(200)
	curve := make(plotter.XYs, len(samples))
	for i, s := range samples {
		curve[i] = plotter.XY{X: s.X, Y: s.M}
	}
	if err := addFilledCurve(p, curve, a.Beam().Length, momentFill, momentLine); err != nil {
		return err
	}
	if err := addBaseline(p, a.Beam().Length); err != nil {
		return err
	}
	if err := addSupportMarkers(p, a); err != nil {
		return err
	}

	ext := a.Critical(0)
	peaks := []peak{
		{x: ext.MMax.Position, y: ext.MMax.Value, text: fmt.Sprintf("M_max = %.4g N·mm", ext.MMax.Value)},
		{x: ext.MMin.Position, y: ext.MMin.Value, text: fmt.Sprintf("M_min = %.4g N·mm", ext.MMin.Value)},
	}
	if err := addPeakMarkers(p, peaks); err != nil {
		return err
	}
	return savePlot(p, filename)
}

// ExportSeriesDiagram draws one y series over x, for travel studies
func ExportSeriesDiagram(xs, ys []float64, title, xLabel, yLabel, filename string) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("series needs matching x and y values")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	curve := make(plotter.XYs, len(xs))
	for i := range xs {
		curve[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = shearLine
	p.Add(line)

	return savePlot(p, filename)
}

type peak struct {
	x, y float64
	text string
}

func addFilledCurve(p *plot.Plot, curve plotter.XYs, span float64, fill, stroke color.Color) error {
	area := make(plotter.XYs, 0, len(curve)+2)
	area = append(area, plotter.XY{X: 0, Y: 0})
	area = append(area, curve...)
	area = append(area, plotter.XY{X: span, Y: 0})
	poly, err := plotter.NewPolygon(area)
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	p.Add(poly)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = stroke
	p.Add(line)
	return nil
}

func addBaseline(p *plot.Plot, span float64) error {
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = zeroLineInk
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(zero)
	return nil
}

func addSupportMarkers(p *plot.Plot, a *beam.Analysis) error {
	b := a.Beam()
	pts := make(plotter.XYs, 0, len(b.Supports)+1)
	for _, s := range b.Supports {
		pts = append(pts, plotter.XY{X: s.Position, Y: 0})
	}
	if len(pts) > 0 {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = supportInk
		sc.GlyphStyle.Radius = vg.Points(6)
		sc.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(sc)
	}
	if b.Spring != nil {
		sc, err := plotter.NewScatter(plotter.XYs{{X: b.Spring.Position, Y: 0}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = supportInk
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(sc)
	}
	return nil
}

func addPeakMarkers(p *plot.Plot, peaks []peak) error {
	for _, pk := range peaks {
		sc, err := plotter.NewScatter(plotter.XYs{{X: pk.x, Y: pk.y}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = peakColor
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: pk.x, Y: pk.y}},
			Labels: []string{pk.text},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return nil
}

// savePlot writes the plot sized 8x6 inches, defaulting unknown extensions
// to PNG
func savePlot(p *plot.Plot, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	width := 8 * vg.Inch
	height := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	}
	return p.Save(width, height, filename+".png")
}
