package beam

import (
	"fmt"
	"sort"
)

// SupportKind identifies how a support restrains the beam
type SupportKind string

const (
	Pinned SupportKind = "pinned" // resists vertical force
	Roller SupportKind = "roller" // resists vertical force
	Fixed  SupportKind = "fixed"  // resists vertical force and moment

	// springKind tags the spring entry of a ReactionSet
	springKind SupportKind = "spring"
)

// Support is a beam support at a known position
type Support struct {
	Position float64     `json:"position" yaml:"position"` // x - distance from left end (mm)
	Kind     SupportKind `json:"kind" yaml:"kind"`
}

// PointLoad is a concentrated transverse force
type PointLoad struct {
	Position  float64 `json:"position" yaml:"position"`   // x - distance from left end (mm)
	Magnitude float64 `json:"magnitude" yaml:"magnitude"` // P - force (N), downward positive
}

// DistributedLoad is a uniform line load over part of the span
type DistributedLoad struct {
	Start     float64 `json:"start" yaml:"start"`         // x1 - left edge (mm)
	End       float64 `json:"end" yaml:"end"`             // x2 - right edge (mm)
	Intensity float64 `json:"intensity" yaml:"intensity"` // w - load per unit length (N/mm), downward positive
}

// Total returns the resultant force of the distributed load (N)
func (d DistributedLoad) Total() float64 {
	return d.Intensity * (d.End - d.Start)
}

// Centroid returns the position of the resultant (mm)
func (d DistributedLoad) Centroid() float64 {
	return (d.Start + d.End) / 2
}

// Spring is an auxiliary vertical link that supplies an upward force at a
// known position. Its force comes from equilibrium, not from a stiffness
// relation, so the beam stays statically determinate.
type Spring struct {
	Position float64 `json:"position" yaml:"position"` // x - distance from left end (mm)
}

// Beam describes a straight prismatic member with its supports and loads.
// Positions are measured from the left end in mm; forces are in N with
// downward loads positive.
type Beam struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Length float64 `json:"length" yaml:"length"` // L - span from left end to right end (mm)

	Supports         []Support         `json:"supports" yaml:"supports"`
	PointLoads       []PointLoad       `json:"point_loads,omitempty" yaml:"point_loads,omitempty"`
	DistributedLoads []DistributedLoad `json:"distributed_loads,omitempty" yaml:"distributed_loads,omitempty"`
	Spring           *Spring           `json:"spring,omitempty" yaml:"spring,omitempty"`
}

// Configuration identifies the support arrangement the solver recognizes
type Configuration int

const (
	// TwoSupport is a beam on two vertical supports, simply supported or
	// overhanging
	TwoSupport Configuration = iota
	// Cantilever is a beam fixed at one end and free at the other
	Cantilever
	// PinAndSpring is a beam on one pin with a spring link supplying the
	// second vertical force
	PinAndSpring
)

func (c Configuration) String() string {
	switch c {
	case TwoSupport:
		return "two-support"
	case Cantilever:
		return "cantilever"
	case PinAndSpring:
		return "pin-and-spring"
	}
	return "unknown"
}

// ConfigurationError reports a beam description that is malformed, such as a
// non-positive length or a load placed outside the span
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// UnsupportedConfigurationError reports a well-formed beam whose support
// arrangement falls outside the statically determinate cases this package
// solves
type UnsupportedConfigurationError struct {
	msg string
}

func (e *UnsupportedConfigurationError) Error() string {
	return e.msg
}

func unsupportedErrorf(format string, args ...any) *UnsupportedConfigurationError {
	return &UnsupportedConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// TotalLoad returns the sum of all applied loads (N, downward positive)
func (b *Beam) TotalLoad() float64 {
	var w float64
	for _, p := range b.PointLoads {
		w += p.Magnitude
	}
	for _, d := range b.DistributedLoads {
		w += d.Total()
	}
	return w
}

// Validate checks the beam description. It returns a ConfigurationError for
// malformed input and an UnsupportedConfigurationError for a support
// arrangement the solver cannot handle.
func (b *Beam) Validate() error {
	if b.Length <= 0 {
		return configErrorf("invalid beam length: %.2f mm", b.Length)
	}
	for _, s := range b.Supports {
		switch s.Kind {
		case Pinned, Roller, Fixed:
		default:
			return configErrorf("unknown support kind: %q", s.Kind)
		}
		if s.Position < 0 || s.Position > b.Length {
			return configErrorf("support at %.2f mm lies outside the beam (length %.2f mm)", s.Position, b.Length)
		}
	}
	for i, s := range b.Supports {
		for _, t := range b.Supports[i+1:] {
			if s.Position == t.Position {
				return configErrorf("duplicate supports at %.2f mm", s.Position)
			}
		}
	}
	for _, p := range b.PointLoads {
		if p.Position < 0 || p.Position > b.Length {
			return configErrorf("point load at %.2f mm lies outside the beam (length %.2f mm)", p.Position, b.Length)
		}
	}
	for _, d := range b.DistributedLoads {
		if d.Start < 0 || d.End > b.Length {
			return configErrorf("distributed load [%.2f, %.2f] mm lies outside the beam (length %.2f mm)", d.Start, d.End, b.Length)
		}
		if d.End <= d.Start {
			return configErrorf("distributed load has non-positive extent: [%.2f, %.2f] mm", d.Start, d.End)
		}
	}
	if b.Spring != nil {
		if b.Spring.Position < 0 || b.Spring.Position > b.Length {
			return configErrorf("spring at %.2f mm lies outside the beam (length %.2f mm)", b.Spring.Position, b.Length)
		}
	}
	_, err := b.configuration()
	return err
}

// configuration classifies the support arrangement
func (b *Beam) configuration() (Configuration, error) {
	var fixed, vertical int
	for _, s := range b.Supports {
		if s.Kind == Fixed {
			fixed++
		} else {
			vertical++
		}
	}

	switch {
	case fixed == 1 && vertical == 0 && b.Spring == nil:
		s := b.Supports[0]
		if s.Position != 0 && s.Position != b.Length {
			return 0, unsupportedErrorf("fixed support at %.2f mm: cantilevers must be fixed at an end", s.Position)
		}
		return Cantilever, nil
	case fixed == 0 && vertical == 2 && b.Spring == nil:
		return TwoSupport, nil
	case fixed == 0 && vertical == 1 && b.Spring != nil:
		if b.Supports[0].Position == b.Spring.Position {
			return 0, unsupportedErrorf("spring and support coincide at %.2f mm", b.Spring.Position)
		}
		return PinAndSpring, nil
	case fixed >= 1 && (vertical > 0 || b.Spring != nil):
		return 0, unsupportedErrorf("fixed support combined with other supports is statically indeterminate")
	case fixed > 1:
		return 0, unsupportedErrorf("%d fixed supports: statically indeterminate", fixed)
	case vertical > 2 || (vertical == 2 && b.Spring != nil):
		return 0, unsupportedErrorf("more than two vertical restraints: statically indeterminate")
	default:
		return 0, unsupportedErrorf("unstable support arrangement: %d vertical, %d fixed, spring=%v",
			vertical, fixed, b.Spring != nil)
	}
}

// sortedSupports returns the supports ordered left to right
func (b *Beam) sortedSupports() []Support {
	s := make([]Support, len(b.Supports))
	copy(s, b.Supports)
	sort.Slice(s, func(i, j int) bool { return s[i].Position < s[j].Position })
	return s
}
