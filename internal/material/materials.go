package material

import (
	"fmt"
	"sort"
	"strings"
)

// Material holds the strength and stiffness constants of a beam material
type Material struct {
	Name string `json:"name" yaml:"name"`

	// Strengths (MPa)
	Yield       float64 `json:"yield_strength" yaml:"yield_strength"`                             // σ_y
	Tensile     float64 `json:"tensile_strength,omitempty" yaml:"tensile_strength,omitempty"`     // σ_ut
	Compressive float64 `json:"compressive_strength,omitempty" yaml:"compressive_strength,omitempty"`
	Shear       float64 `json:"shear_strength,omitempty" yaml:"shear_strength,omitempty"` // τ_u

	// Stiffness
	Elastic float64 `json:"elastic_modulus" yaml:"elastic_modulus"`                 // E (MPa)
	Poisson float64 `json:"poisson_ratio,omitempty" yaml:"poisson_ratio,omitempty"` // ν
}

// YieldStrain returns σ_y/E
func (m *Material) YieldStrain() float64 {
	return m.Yield / m.Elastic
}

// Built-in materials, matched to the alloys that appear in the bundled
// scenarios
var (
	// StructuralSteel is mild A36-grade plate and tube stock
	StructuralSteel = Material{
		Name:    "Structural steel (A36)",
		Yield:   250,
		Tensile: 400,
		Elastic: 200000,
		Poisson: 0.30,
	}

	// Aluminum6061 is 6061-T6 extrusion
	Aluminum6061 = Material{
		Name:    "Aluminum 6061-T6",
		Yield:   275,
		Tensile: 310,
		Elastic: 69000,
		Poisson: 0.33,
	}

	// CarbonFiber is a quasi-isotropic layup; it has no yield point, so the
	// tensile and compressive strengths govern instead
	CarbonFiber = Material{
		Name:        "Carbon fiber composite",
		Yield:       600,
		Tensile:     600,
		Compressive: 500,
		Shear:       70,
		Elastic:     70000,
		Poisson:     0.10,
	}
)

var catalog = map[string]Material{
	"structural_steel": StructuralSteel,
	"aluminum_6061":    Aluminum6061,
	"carbon_fiber":     CarbonFiber,
}

// ByName finds a built-in material by its catalog key, ignoring case
func ByName(name string) (*Material, error) {
	m, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown material: %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return &m, nil
}

// Names lists the catalog keys in order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for k := range catalog {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
