package section

import (
	"fmt"
	"math"
)

// Shape computes the geometric constants of a cross-section
type Shape interface {
	Area() float64            // A (mm²)
	MomentOfInertia() float64 // I about the horizontal centroidal axis (mm⁴)
	ExtremeFiber() float64    // c, centroid to the extreme fiber (mm)
	Validate() error
}

// Torsional is satisfied by shapes whose polar moment is meaningful
type Torsional interface {
	PolarMoment() float64 // J (mm⁴)
}

// PropertiesOf validates a shape and collects its constants
func PropertiesOf(s Shape) (*Properties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	p := &Properties{
		Area: s.Area(),
		I:    s.MomentOfInertia(),
		C:    s.ExtremeFiber(),
	}
	p.S = p.I / p.C
	if t, ok := s.(Torsional); ok {
		p.J = t.PolarMoment()
	}
	return p, nil
}

// Rectangular is a solid rectangle bent about its horizontal axis
type Rectangular struct {
	Width  float64 // b (mm)
	Height float64 // h (mm)
}

func (r *Rectangular) Area() float64 {
	return r.Width * r.Height
}

func (r *Rectangular) MomentOfInertia() float64 {
	return r.Width * math.Pow(r.Height, 3) / 12
}

func (r *Rectangular) ExtremeFiber() float64 {
	return r.Height / 2
}

func (r *Rectangular) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return &ValidationError{msg: fmt.Sprintf("invalid rectangle dimensions: width=%.2f, height=%.2f", r.Width, r.Height)}
	}
	return nil
}

// HollowRectangular is a rectangular tube with uniform wall thickness
type HollowRectangular struct {
	Width     float64 // b - outer width (mm)
	Height    float64 // h - outer height (mm)
	Thickness float64 // t - wall thickness (mm)
}

func (h *HollowRectangular) inner() (bi, hi float64) {
	return h.Width - 2*h.Thickness, h.Height - 2*h.Thickness
}

func (h *HollowRectangular) Area() float64 {
	bi, hi := h.inner()
	return h.Width*h.Height - bi*hi
}

func (h *HollowRectangular) MomentOfInertia() float64 {
	bi, hi := h.inner()
	return (h.Width*math.Pow(h.Height, 3) - bi*math.Pow(hi, 3)) / 12
}

func (h *HollowRectangular) ExtremeFiber() float64 {
	return h.Height / 2
}

func (h *HollowRectangular) Validate() error {
	if h.Width <= 0 || h.Height <= 0 || h.Thickness <= 0 {
		return &ValidationError{msg: fmt.Sprintf("invalid hollow rectangle dimensions: width=%.2f, height=%.2f, thickness=%.2f",
			h.Width, h.Height, h.Thickness)}
	}
	if 2*h.Thickness >= h.Width || 2*h.Thickness >= h.Height {
		return &ValidationError{msg: fmt.Sprintf("wall thickness %.2f mm leaves no hollow in a %.2f x %.2f section",
			h.Thickness, h.Width, h.Height)}
	}
	return nil
}

// SolidCircular is a solid round bar
type SolidCircular struct {
	Diameter float64 // d (mm)
}

func (c *SolidCircular) Area() float64 {
	return math.Pi * c.Diameter * c.Diameter / 4
}

func (c *SolidCircular) MomentOfInertia() float64 {
	return math.Pi * math.Pow(c.Diameter, 4) / 64
}

func (c *SolidCircular) ExtremeFiber() float64 {
	return c.Diameter / 2
}

func (c *SolidCircular) PolarMoment() float64 {
	return math.Pi * math.Pow(c.Diameter, 4) / 32
}

func (c *SolidCircular) Validate() error {
	if c.Diameter <= 0 {
		return &ValidationError{msg: fmt.Sprintf("invalid bar diameter: %.2f", c.Diameter)}
	}
	return nil
}

// CircularTube is a hollow round bar
type CircularTube struct {
	Outer float64 // OD (mm)
	Inner float64 // ID (mm)
}

func (c *CircularTube) Area() float64 {
	return math.Pi * (c.Outer*c.Outer - c.Inner*c.Inner) / 4
}

func (c *CircularTube) MomentOfInertia() float64 {
	return math.Pi * (math.Pow(c.Outer, 4) - math.Pow(c.Inner, 4)) / 64
}

func (c *CircularTube) ExtremeFiber() float64 {
	return c.Outer / 2
}

func (c *CircularTube) PolarMoment() float64 {
	return math.Pi * (math.Pow(c.Outer, 4) - math.Pow(c.Inner, 4)) / 32
}

func (c *CircularTube) Validate() error {
	if c.Outer <= 0 {
		return &ValidationError{msg: fmt.Sprintf("invalid tube outer diameter: %.2f", c.Outer)}
	}
	if c.Inner < 0 || c.Inner >= c.Outer {
		return &ValidationError{msg: fmt.Sprintf("invalid tube bore: inner=%.2f, outer=%.2f", c.Inner, c.Outer)}
	}
	return nil
}
