package section

import "fmt"

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// Properties holds the geometric constants a bending check needs
type Properties struct {
	Area float64 `json:"area" yaml:"area"`                           // A (mm²)
	I    float64 `json:"moment_of_inertia" yaml:"moment_of_inertia"` // about the horizontal centroidal axis (mm⁴)
	C    float64 `json:"extreme_fiber" yaml:"extreme_fiber"`         // centroid to extreme fiber (mm)
	S    float64 `json:"section_modulus" yaml:"section_modulus"`     // S = I/c (mm³)

	// Polar moment, set for circular sections only where torsion applies
	J float64 `json:"polar_moment,omitempty" yaml:"polar_moment,omitempty"` // mm⁴
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Shape kinds accepted by Definition
const (
	KindRectangular       = "rectangular"
	KindHollowRectangular = "hollow_rectangular"
	KindSolidCircular     = "solid_circular"
	KindCircularTube      = "circular_tube"
	KindPolygon           = "polygon"
	KindGiven             = "given" // no geometry, properties stated directly
)

// Definition describes a cross-section as read from an input file. Kind
// selects the shape and which dimensions apply. Non-zero given values take
// the place of the computed constants, which is how data sheets with
// tabulated or rounded properties are reproduced faithfully.
type Definition struct {
	Kind string `json:"kind" yaml:"kind"`

	// Rectangular shapes (mm)
	Width     float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height    float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Thickness float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"` // wall thickness of hollow shapes

	// Circular shapes (mm)
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Outer    float64 `json:"outer_diameter,omitempty" yaml:"outer_diameter,omitempty"`
	Inner    float64 `json:"inner_diameter,omitempty" yaml:"inner_diameter,omitempty"`

	// Polygonal outline, counter-clockwise (mm)
	Vertices []Point `json:"vertices,omitempty" yaml:"vertices,omitempty"`

	// Stated properties that override the computed ones
	GivenI float64 `json:"given_moment_of_inertia,omitempty" yaml:"given_moment_of_inertia,omitempty"` // mm⁴
	GivenC float64 `json:"given_extreme_fiber,omitempty" yaml:"given_extreme_fiber,omitempty"`         // mm
}

// Shape builds the geometric shape described by the definition. A "given"
// definition carries no geometry and returns nil.
func (d *Definition) Shape() (Shape, error) {
	switch d.Kind {
	case KindRectangular:
		return &Rectangular{Width: d.Width, Height: d.Height}, nil
	case KindHollowRectangular:
		return &HollowRectangular{Width: d.Width, Height: d.Height, Thickness: d.Thickness}, nil
	case KindSolidCircular:
		return &SolidCircular{Diameter: d.Diameter}, nil
	case KindCircularTube:
		inner := d.Inner
		if inner == 0 && d.Thickness > 0 {
			inner = d.Outer - 2*d.Thickness
		}
		return &CircularTube{Outer: d.Outer, Inner: inner}, nil
	case KindPolygon:
		return &Polygon{Vertices: d.Vertices}, nil
	case KindGiven, "":
		return nil, nil
	}
	return nil, &ValidationError{msg: fmt.Sprintf("unknown section kind: %q", d.Kind)}
}

// ComputedProperties evaluates the shape dimensions alone, ignoring any
// given overrides
func (d *Definition) ComputedProperties() (*Properties, error) {
	s, err := d.Shape()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &ValidationError{msg: fmt.Sprintf("section kind %q carries no geometry to compute from", d.Kind)}
	}
	return PropertiesOf(s)
}

// Resolve returns the effective properties: the computed ones with any given
// values substituted and the section modulus rebuilt from the result
func (d *Definition) Resolve() (*Properties, error) {
	s, err := d.Shape()
	if err != nil {
		return nil, err
	}

	p := &Properties{}
	if s != nil {
		p, err = PropertiesOf(s)
		if err != nil {
			return nil, err
		}
	} else if d.GivenI <= 0 || d.GivenC <= 0 {
		return nil, &ValidationError{"a section without geometry needs both given moment of inertia and extreme fiber"}
	}

	if d.GivenI > 0 {
		p.I = d.GivenI
	}
	if d.GivenC > 0 {
		p.C = d.GivenC
	}
	p.S = p.I / p.C
	return p, nil
}

// HasOverrides reports whether the definition states properties that take
// the place of computed ones
func (d *Definition) HasOverrides() bool {
	return d.GivenI > 0 || d.GivenC > 0
}
