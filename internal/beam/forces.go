package beam

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/utl"
)

// InternalForceSample is the internal force state at one station
type InternalForceSample struct {
	X float64 `json:"x" yaml:"x"` // station (mm)
	V float64 `json:"v" yaml:"v"` // shear force (N)
	M float64 `json:"m" yaml:"m"` // bending moment (N·mm), sagging positive
}

// Analysis evaluates the internal forces of a solved beam.
//
// Beams on supports follow the left-segment convention: V(x) is the sum of
// upward forces left of the cut, so V just right of the left support equals
// its reaction. Cantilevers are evaluated from the free-end segment, which
// makes V the negative of the load carried past the cut and lets the fixing
// moment appear as a hogging (negative) bending moment at the wall.
type Analysis struct {
	beam      Beam
	config    Configuration
	reactions *ReactionSet
	points    []verticalForce
}

// verticalForce is a resolved concentrated force, upward positive
type verticalForce struct {
	pos float64
	f   float64
}

// Analyze validates the beam, solves its reactions, and returns an evaluator
// for shear and bending moment
func (b *Beam) Analyze() (*Analysis, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cfg, err := b.configuration()
	if err != nil {
		return nil, err
	}

	c := *b
	c.Supports = b.sortedSupports()
	c.PointLoads = append([]PointLoad(nil), b.PointLoads...)
	sort.Slice(c.PointLoads, func(i, j int) bool { return c.PointLoads[i].Position < c.PointLoads[j].Position })
	c.DistributedLoads = append([]DistributedLoad(nil), b.DistributedLoads...)
	sort.Slice(c.DistributedLoads, func(i, j int) bool { return c.DistributedLoads[i].Start < c.DistributedLoads[j].Start })
	if b.Spring != nil {
		s := *b.Spring
		c.Spring = &s
	}

	rs := solveReactions(&c, cfg)
	return &Analysis{beam: c, config: cfg, reactions: rs, points: buildPointForces(&c, rs)}, nil
}

// buildPointForces merges reactions, spring force, and point loads into one
// upward-positive list. Fixed reactions are left out: the evaluator always
// works from the segment that does not contain the wall.
func buildPointForces(b *Beam, rs *ReactionSet) []verticalForce {
	var ps []verticalForce
	for _, r := range rs.Supports {
		if r.Kind != Fixed {
			ps = append(ps, verticalForce{pos: r.Position, f: r.Force})
		}
	}
	if rs.Spring != nil {
		ps = append(ps, verticalForce{pos: rs.Spring.Position, f: rs.Spring.Force})
	}
	for _, p := range b.PointLoads {
		ps = append(ps, verticalForce{pos: p.Position, f: -p.Magnitude})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].pos < ps[j].pos })
	return ps
}

// Beam returns the analyzed beam with supports and loads sorted by position
func (a *Analysis) Beam() *Beam {
	return &a.beam
}

// Config returns the recognized support arrangement
func (a *Analysis) Config() Configuration {
	return a.config
}

// Reactions returns the solved support reactions
func (a *Analysis) Reactions() *ReactionSet {
	return a.reactions
}

// Shear returns V(x) approached from the right, so a concentrated force at x
// is already counted. At the right end the interior-side value is reported,
// and stations outside the span are clamped to it.
func (a *Analysis) Shear(x float64) float64 {
	x = a.clamp(x)
	if x == a.beam.Length {
		return a.shear(x, false)
	}
	return a.shear(x, true)
}

// ShearBefore returns V(x) approached from the left, the value before any
// jump at x. At the left end the interior-side value is reported.
func (a *Analysis) ShearBefore(x float64) float64 {
	x = a.clamp(x)
	if x == 0 {
		return a.shear(0, true)
	}
	return a.shear(x, false)
}

// shear evaluates one side of V(x). fromRight selects the limit from the
// right of the station, which counts concentrated forces at exactly x as
// part of the left segment.
func (a *Analysis) shear(x float64, fromRight bool) float64 {
	if a.evalFromRight() {
		var f float64
		for _, p := range a.points {
			if p.pos > x || (!fromRight && p.pos == x) {
				f += p.f
			}
		}
		for _, d := range a.beam.DistributedLoads {
			f -= d.loadFrom(x)
		}
		return f
	}
	var f float64
	for _, p := range a.points {
		if p.pos < x || (fromRight && p.pos == x) {
			f += p.f
		}
	}
	for _, d := range a.beam.DistributedLoads {
		f -= d.loadUpTo(x)
	}
	return f
}

// Moment returns the bending moment M(x), sagging positive. M is continuous
// across concentrated forces, so there is no one-sided variant. Stations
// outside the span are clamped to its ends.
func (a *Analysis) Moment(x float64) float64 {
	x = a.clamp(x)
	if a.evalFromRight() {
		var m float64
		for _, p := range a.points {
			if p.pos > x {
				m += p.f * (p.pos - x)
			}
		}
		for _, d := range a.beam.DistributedLoads {
			m -= d.momentFrom(x)
		}
		return m
	}
	var m float64
	for _, p := range a.points {
		if p.pos < x {
			m += p.f * (x - p.pos)
		}
	}
	for _, d := range a.beam.DistributedLoads {
		m -= d.momentUpTo(x)
	}
	return m
}

// evalFromRight reports whether the free-end segment lies to the right of
// any cut, which holds only for cantilevers fixed at the left end
func (a *Analysis) evalFromRight() bool {
	return a.config == Cantilever && a.beam.Supports[0].Position == 0
}

func (a *Analysis) clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > a.beam.Length:
		return a.beam.Length
	}
	return x
}

// loadUpTo returns the part of the distributed load acting left of x (N)
func (d DistributedLoad) loadUpTo(x float64) float64 {
	if x <= d.Start {
		return 0
	}
	end := math.Min(x, d.End)
	return d.Intensity * (end - d.Start)
}

// momentUpTo returns the moment about x of the load acting left of x (N·mm)
func (d DistributedLoad) momentUpTo(x float64) float64 {
	if x <= d.Start {
		return 0
	}
	end := math.Min(x, d.End)
	return d.Intensity * (end - d.Start) * (x - (d.Start+end)/2)
}

// loadFrom returns the part of the distributed load acting right of x (N)
func (d DistributedLoad) loadFrom(x float64) float64 {
	if x >= d.End {
		return 0
	}
	start := math.Max(x, d.Start)
	return d.Intensity * (d.End - start)
}

// momentFrom returns the moment about x of the load acting right of x (N·mm)
func (d DistributedLoad) momentFrom(x float64) float64 {
	if x >= d.End {
		return 0
	}
	start := math.Max(x, d.Start)
	return d.Intensity * (d.End - start) * ((start+d.End)/2 - x)
}

// Breakpoints returns the sorted distinct stations where V can jump or
// change slope: the beam ends, supports, the spring, point loads, and the
// edges of distributed loads
func (a *Analysis) Breakpoints() []float64 {
	xs := []float64{0, a.beam.Length}
	for _, s := range a.beam.Supports {
		xs = append(xs, s.Position)
	}
	if a.beam.Spring != nil {
		xs = append(xs, a.beam.Spring.Position)
	}
	for _, p := range a.beam.PointLoads {
		xs = append(xs, p.Position)
	}
	for _, d := range a.beam.DistributedLoads {
		xs = append(xs, d.Start, d.End)
	}
	sort.Float64s(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// Samples evaluates the internal forces over a uniform grid of n stations
// merged with the breakpoints of the diagram. An interior station where V
// jumps yields two samples at the same x, one for each side of the jump, so
// plots step vertically instead of slanting.
func (a *Analysis) Samples(n int) []InternalForceSample {
	if n < 2 {
		n = 2
	}
	xs := append(utl.LinSpace(0, a.beam.Length, n), a.Breakpoints()...)
	sort.Float64s(xs)

	out := make([]InternalForceSample, 0, len(xs)+4)
	for i, x := range xs {
		if i > 0 && x == xs[i-1] {
			continue
		}
		vb, va := a.ShearBefore(x), a.Shear(x)
		m := a.Moment(x)
		if vb != va {
			out = append(out, InternalForceSample{X: x, V: vb, M: m})
		}
		out = append(out, InternalForceSample{X: x, V: va, M: m})
	}
	return out
}

// Superpose evaluates several load cases at shared stations and sums their
// internal forces. The cases must share one span length; they normally share
// the support arrangement too, with the loads split between them.
func Superpose(xs []float64, cases ...*Analysis) ([]InternalForceSample, error) {
	if len(cases) == 0 {
		return nil, configErrorf("superposition needs at least one load case")
	}
	length := cases[0].beam.Length
	for _, c := range cases[1:] {
		if c.beam.Length != length {
			return nil, configErrorf("superposition spans differ: %.2f vs %.2f mm", length, c.beam.Length)
		}
	}
	out := make([]InternalForceSample, len(xs))
	for i, x := range xs {
		s := InternalForceSample{X: x}
		for _, c := range cases {
			s.V += c.Shear(x)
			s.M += c.Moment(x)
		}
		out[i] = s
	}
	return out, nil
}
