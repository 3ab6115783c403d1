package beam

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Labels for the governing values reported by Critical
const (
	KindShearMax  = "V_max"
	KindShearMin  = "V_min"
	KindMomentMax = "M_max"
	KindMomentMin = "M_min"
)

// CriticalPoint is a station where shear or moment reaches an extreme
type CriticalPoint struct {
	Position float64 `json:"position" yaml:"position"` // x (mm)
	Value    float64 `json:"value" yaml:"value"`       // V (N) or M (N·mm)
	Kind     string  `json:"kind" yaml:"kind"`
}

// Extremes holds the governing internal force values over the span
type Extremes struct {
	VMax CriticalPoint `json:"v_max" yaml:"v_max"`
	VMin CriticalPoint `json:"v_min" yaml:"v_min"`
	MMax CriticalPoint `json:"m_max" yaml:"m_max"`
	MMin CriticalPoint `json:"m_min" yaml:"m_min"`
}

// MaxAbsShear returns the largest shear magnitude (N)
func (e *Extremes) MaxAbsShear() float64 {
	return math.Max(math.Abs(e.VMax.Value), math.Abs(e.VMin.Value))
}

// MaxAbsMoment returns the largest moment magnitude (N·mm)
func (e *Extremes) MaxAbsMoment() float64 {
	return math.Max(math.Abs(e.MMax.Value), math.Abs(e.MMin.Value))
}

// GoverningShear returns the shear extreme with the larger magnitude
func (e *Extremes) GoverningShear() CriticalPoint {
	if math.Abs(e.VMin.Value) > math.Abs(e.VMax.Value) {
		return e.VMin
	}
	return e.VMax
}

// GoverningMoment returns the moment extreme with the larger magnitude
func (e *Extremes) GoverningMoment() CriticalPoint {
	if math.Abs(e.MMin.Value) > math.Abs(e.MMax.Value) {
		return e.MMin
	}
	return e.MMax
}

// defaultGrid is the scan resolution used when Critical is given zero
const defaultGrid = 2000

// Critical scans the span and returns the extreme shear and moment values.
// gridN sets the number of uniform scan intervals and is clamped into
// [1000, 10000]; zero selects the default. Every breakpoint is checked on
// both sides of any jump, and zero crossings of V inside distributed loads
// are located from the straight-line segments, so the governing moment does
// not depend on the grid landing on it.
func (a *Analysis) Critical(gridN int) *Extremes {
	switch {
	case gridN <= 0:
		gridN = defaultGrid
	case gridN < 1000:
		gridN = 1000
	case gridN > 10000:
		gridN = 10000
	}

	ext := newExtremes(0, a.Shear(0), a.Moment(0))
	for _, x := range utl.LinSpace(0, a.beam.Length, gridN+1) {
		ext.observe(x, a.Shear(x), a.Moment(x))
	}
	for _, x := range a.Breakpoints() {
		m := a.Moment(x)
		ext.observe(x, a.ShearBefore(x), m)
		ext.observe(x, a.Shear(x), m)
	}
	for _, x := range a.shearZeros() {
		ext.observeMoment(x, a.Moment(x))
	}
	return ext
}

// shearZeros finds the stations strictly inside diagram segments where V
// crosses zero. V is affine between adjacent breakpoints, so the crossing
// follows from the segment's end values.
func (a *Analysis) shearZeros() []float64 {
	bps := a.Breakpoints()
	var roots []float64
	for i := 0; i+1 < len(bps); i++ {
		x0, x1 := bps[i], bps[i+1]
		v0 := a.Shear(x0)
		v1 := a.ShearBefore(x1)
		if v0 == 0 || v1 == 0 || (v0 > 0) == (v1 > 0) {
			continue
		}
		x := x0 - v0*(x1-x0)/(v1-v0)
		if x > x0 && x < x1 {
			roots = append(roots, x)
		}
	}
	return roots
}

func newExtremes(x, v, m float64) *Extremes {
	return &Extremes{
		VMax: CriticalPoint{Position: x, Value: v, Kind: KindShearMax},
		VMin: CriticalPoint{Position: x, Value: v, Kind: KindShearMin},
		MMax: CriticalPoint{Position: x, Value: m, Kind: KindMomentMax},
		MMin: CriticalPoint{Position: x, Value: m, Kind: KindMomentMin},
	}
}

func (e *Extremes) observe(x, v, m float64) {
	if v > e.VMax.Value {
		e.VMax.Position, e.VMax.Value = x, v
	}
	if v < e.VMin.Value {
		e.VMin.Position, e.VMin.Value = x, v
	}
	e.observeMoment(x, m)
}

func (e *Extremes) observeMoment(x, m float64) {
	if m > e.MMax.Value {
		e.MMax.Position, e.MMax.Value = x, m
	}
	if m < e.MMin.Value {
		e.MMin.Position, e.MMin.Value = x, m
	}
}
