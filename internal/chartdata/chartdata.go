package chartdata

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/utl"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/codec"
)

// File names the plotting front end expects
const (
	ShearFileName  = "shear_force_data.json"
	MomentFileName = "bending_moment_data.json"
)

// Marker colors shared by both diagrams
const (
	colorSupport = "#2A9D8F"
	colorLoad    = "#F4D03F"
	colorPeak    = "#C0392B"
)

// Point is one curve sample
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one straight run of the shear diagram between breakpoints
type Segment struct {
	Name        string    `json:"name"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Description string    `json:"description,omitempty"`
}

// CriticalPoint marks an extreme value on a diagram
type CriticalPoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
}

// Indicator marks a support, spring, or applied load along the beam axis
type Indicator struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
	Type  string  `json:"type"`
	Color string  `json:"color"`
}

// Annotation is a text callout pinned to a curve point
type Annotation struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Text     string  `json:"text"`
	Color    string  `json:"color,omitempty"`
	Position string  `json:"position,omitempty"`
}

// ShearChart is the plot-ready shear force diagram. Shear is piecewise
// linear, so each run is emitted as a two point segment.
type ShearChart struct {
	Title          string          `json:"title"`
	XLabel         string          `json:"xLabel"`
	YLabel         string          `json:"yLabel"`
	XMin           float64         `json:"xMin"`
	XMax           float64         `json:"xMax"`
	YMin           float64         `json:"yMin"`
	YMax           float64         `json:"yMax"`
	Segments       []Segment       `json:"segments"`
	CriticalPoints []CriticalPoint `json:"criticalPoints"`
	Indicators     []Indicator     `json:"indicators"`
}

// MomentChart is the plot-ready bending moment diagram, a single dense
// curve with callouts at the peaks
type MomentChart struct {
	Title       string       `json:"title"`
	XLabel      string       `json:"xLabel"`
	YLabel      string       `json:"yLabel"`
	XMin        float64      `json:"xMin"`
	XMax        float64      `json:"xMax"`
	YMin        float64      `json:"yMin"`
	YMax        float64      `json:"yMax"`
	CurveData   []Point      `json:"curveData"`
	Annotations []Annotation `json:"annotations"`
	Indicators  []Indicator  `json:"indicators"`
}

// Units selects the axis scale of emitted charts. The analysis works in N
// and mm; site drawings are usually annotated in metres.
type Units struct {
	Length string  `json:"length"` // axis unit name
	Scale  float64 `json:"scale"`  // multiply mm by this for chart values
}

var (
	Millimeters = Units{Length: "mm", Scale: 1}
	Meters      = Units{Length: "m", Scale: 0.001}
)

// Generator turns an analysis into the chart documents the front end renders
type Generator struct {
	Analysis *beam.Analysis
	Title    string
	Units    Units
	CurveN   int // moment curve resolution, default 200
}

// New builds a generator with millimetre axes
func New(a *beam.Analysis, title string) *Generator {
	return &Generator{Analysis: a, Title: title, Units: Millimeters, CurveN: 200}
}

// Shear builds the shear force chart
func (g *Generator) Shear() *ShearChart {
	a := g.Analysis
	u := g.units()
	bps := a.Breakpoints()

	c := &ShearChart{
		Title:  fmt.Sprintf("Shear Force Diagram: %s", g.title()),
		XLabel: fmt.Sprintf("Distance (%s)", u.Length),
		YLabel: "Shear Force (N)",
		XMax:   a.Beam().Length * u.Scale,
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i+1 < len(bps); i++ {
		x0, x1 := bps[i], bps[i+1]
		v0, v1 := a.Shear(x0), a.ShearBefore(x1)
		c.Segments = append(c.Segments, Segment{
			Name:        fmt.Sprintf("segment %d", i+1),
			X:           []float64{x0 * u.Scale, x1 * u.Scale},
			Y:           []float64{v0, v1},
			Description: fmt.Sprintf("%g %s to %g %s", x0*u.Scale, u.Length, x1*u.Scale, u.Length),
		})
		lo = math.Min(lo, math.Min(v0, v1))
		hi = math.Max(hi, math.Max(v0, v1))
	}
	c.YMin, c.YMax = pad(lo, hi)

	ext := a.Critical(0)
	c.CriticalPoints = append(c.CriticalPoints, CriticalPoint{
		X:           ext.VMax.Position * u.Scale,
		Y:           ext.VMax.Value,
		Label:       fmt.Sprintf("V_max = %.4g N", ext.VMax.Value),
		Description: "peak shear",
	})
	if ext.VMin.Value != ext.VMax.Value || ext.VMin.Position != ext.VMax.Position {
		c.CriticalPoints = append(c.CriticalPoints, CriticalPoint{
			X:           ext.VMin.Position * u.Scale,
			Y:           ext.VMin.Value,
			Label:       fmt.Sprintf("V_min = %.4g N", ext.VMin.Value),
			Description: "lowest shear",
		})
	}
	c.Indicators = g.indicators()
	return c
}

// Moment builds the bending moment chart. The uniform grid is merged with
// the breakpoints and the located peaks, so the callouts sit on the curve.
func (g *Generator) Moment() *MomentChart {
	a := g.Analysis
	u := g.units()
	mUnit := "N·" + u.Length

	n := g.CurveN
	if n < 2 {
		n = 200
	}
	ext := a.Critical(0)
	xs := utl.LinSpace(0, a.Beam().Length, n)
	xs = append(xs, a.Breakpoints()...)
	xs = append(xs, ext.MMax.Position, ext.MMin.Position)
	sort.Float64s(xs)

	c := &MomentChart{
		Title:  fmt.Sprintf("Bending Moment Diagram: %s", g.title()),
		XLabel: fmt.Sprintf("Distance (%s)", u.Length),
		YLabel: fmt.Sprintf("Bending Moment (%s)", mUnit),
		XMax:   a.Beam().Length * u.Scale,
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	last := math.NaN()
	for _, x := range xs {
		if x == last {
			continue
		}
		last = x
		m := a.Moment(x)
		c.CurveData = append(c.CurveData, Point{X: x * u.Scale, Y: m * u.Scale})
		lo = math.Min(lo, m*u.Scale)
		hi = math.Max(hi, m*u.Scale)
	}
	c.YMin, c.YMax = pad(lo, hi)

	c.Annotations = append(c.Annotations, Annotation{
		X:        ext.MMax.Position * u.Scale,
		Y:        ext.MMax.Value * u.Scale,
		Text:     fmt.Sprintf("M_max = %.4g %s", ext.MMax.Value*u.Scale, mUnit),
		Color:    colorPeak,
		Position: "top",
	})
	if ext.MMin.Value != ext.MMax.Value || ext.MMin.Position != ext.MMax.Position {
		c.Annotations = append(c.Annotations, Annotation{
			X:        ext.MMin.Position * u.Scale,
			Y:        ext.MMin.Value * u.Scale,
			Text:     fmt.Sprintf("M_min = %.4g %s", ext.MMin.Value*u.Scale, mUnit),
			Color:    colorPeak,
			Position: "bottom",
		})
	}
	c.Indicators = g.indicators()
	return c
}

// WriteFiles writes both chart documents into dir and returns their paths
func (g *Generator) WriteFiles(dir string) ([]string, error) {
	shearPath := filepath.Join(dir, ShearFileName)
	if err := codec.EncodeFile(shearPath, g.Shear()); err != nil {
		return nil, err
	}
	momentPath := filepath.Join(dir, MomentFileName)
	if err := codec.EncodeFile(momentPath, g.Moment()); err != nil {
		return nil, err
	}
	return []string{shearPath, momentPath}, nil
}

func (g *Generator) indicators() []Indicator {
	u := g.units()
	b := g.Analysis.Beam()

	var ind []Indicator
	for _, s := range b.Supports {
		ind = append(ind, Indicator{
			X:     s.Position * u.Scale,
			Label: fmt.Sprintf("%s support", s.Kind),
			Type:  "support",
			Color: colorSupport,
		})
	}
	if b.Spring != nil {
		ind = append(ind, Indicator{
			X:     b.Spring.Position * u.Scale,
			Label: "spring",
			Type:  "spring",
			Color: colorSupport,
		})
	}
	for _, p := range b.PointLoads {
		ind = append(ind, Indicator{
			X:     p.Position * u.Scale,
			Label: fmt.Sprintf("P = %.4g N", p.Magnitude),
			Type:  "load",
			Color: colorLoad,
		})
	}
	for _, w := range b.DistributedLoads {
		ind = append(ind, Indicator{
			X:     w.Centroid() * u.Scale,
			Label: fmt.Sprintf("w = %.4g N/%s", w.Intensity/u.Scale, u.Length),
			Type:  "load",
			Color: colorLoad,
		})
	}
	return ind
}

func (g *Generator) units() Units {
	if g.Units.Scale == 0 {
		return Millimeters
	}
	return g.Units
}

func (g *Generator) title() string {
	if g.Title != "" {
		return g.Title
	}
	if name := g.Analysis.Beam().Name; name != "" {
		return name
	}
	return "Beam"
}

// pad widens a value range by a tenth of its span so curves stay off the
// plot frame
func pad(lo, hi float64) (float64, float64) {
	if lo > hi {
		lo, hi = 0, 0
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(1, math.Abs(hi))
	}
	return lo - 0.1*span, hi + 0.1*span
}
