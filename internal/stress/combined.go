package stress

import (
	"fmt"
	"math"

	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
)

// Combined holds a two-plane bending plus torsion check for a round member.
// The worst surface element sees the resultant bending stress as its normal
// stress and the torsion shear on the same faces.
type Combined struct {
	// Internal actions at the critical section (N·mm)
	VerticalMoment   float64 // M_v - bending in the vertical plane
	HorizontalMoment float64 // M_h - bending in the horizontal plane
	Torque           float64 // T

	// Section constants
	I float64 // moment of inertia (mm⁴)
	J float64 // polar moment (mm⁴)
	R float64 // outer radius (mm)

	// Strengths (MPa); brittle layups have no yield, so tension,
	// compression, and shear are graded separately
	Tensile     float64
	Compressive float64
	ShearStr    float64

	RequiredSF float64
}

// CombinedResult follows the worked chain: component and resultant bending
// stresses, torsion shear, the principal state, both failure measures, and
// the family of safety factors with the governing mode
type CombinedResult struct {
	BendingVertical   float64 `json:"bending_vertical" yaml:"bending_vertical"`     // σ_v = M_v·r/I (MPa)
	BendingHorizontal float64 `json:"bending_horizontal" yaml:"bending_horizontal"` // σ_h = M_h·r/I (MPa)
	BendingResultant  float64 `json:"bending_resultant" yaml:"bending_resultant"`   // σ_x = √(σ_v²+σ_h²) (MPa)
	TorsionShear      float64 `json:"torsion_shear" yaml:"torsion_shear"`           // τ = T·r/J (MPa)

	Sigma1   float64 `json:"sigma_1" yaml:"sigma_1"` // principal stresses (MPa)
	Sigma2   float64 `json:"sigma_2" yaml:"sigma_2"`
	Sigma3   float64 `json:"sigma_3" yaml:"sigma_3"` // zero at a free surface
	TauMax   float64 `json:"tau_max" yaml:"tau_max"` // (σ1-σ2)/2 (MPa)
	ThetaP   float64 `json:"theta_p" yaml:"theta_p"` // principal angle (deg)
	VonMises float64 `json:"von_mises" yaml:"von_mises"`

	SFTension     float64 `json:"sf_tension" yaml:"sf_tension"`
	SFCompression float64 `json:"sf_compression" yaml:"sf_compression"`
	SFShear       float64 `json:"sf_shear" yaml:"sf_shear"`
	SFVonMises    float64 `json:"sf_von_mises" yaml:"sf_von_mises"`
	SFGoverning   float64 `json:"sf_governing" yaml:"sf_governing"`
	GoverningMode string  `json:"governing_mode" yaml:"governing_mode"`

	Adequate   bool   `json:"adequate" yaml:"adequate"`
	Assessment string `json:"assessment" yaml:"assessment"`
	Message    string `json:"message" yaml:"message"`
}

// NewCombined builds the check from the sectional actions, a circular
// section, and the material strengths
func NewCombined(mv, mh, torque float64, p *section.Properties, m *material.Material, requiredSF float64) *Combined {
	return &Combined{
		VerticalMoment:   math.Abs(mv),
		HorizontalMoment: math.Abs(mh),
		Torque:           math.Abs(torque),
		I:                p.I,
		J:                p.J,
		R:                p.C,
		Tensile:          m.Tensile,
		Compressive:      m.Compressive,
		ShearStr:         m.Shear,
		RequiredSF:       requiredSF,
	}
}

// Analyze runs the combined check and grades the governing mode
func (c *Combined) Analyze() (*CombinedResult, error) {
	if c.I <= 0 || c.J <= 0 || c.R <= 0 {
		return nil, fmt.Errorf("combined loading needs a circular section: I=%.2f, J=%.2f, r=%.2f", c.I, c.J, c.R)
	}
	if c.Tensile <= 0 || c.Compressive <= 0 || c.ShearStr <= 0 {
		return nil, fmt.Errorf("combined loading needs tensile, compressive, and shear strengths (have %.1f, %.1f, %.1f)",
			c.Tensile, c.Compressive, c.ShearStr)
	}

	r := &CombinedResult{
		BendingVertical:   c.VerticalMoment * c.R / c.I,
		BendingHorizontal: c.HorizontalMoment * c.R / c.I,
		TorsionShear:      c.Torque * c.R / c.J,
	}
	r.BendingResultant = math.Hypot(r.BendingVertical, r.BendingHorizontal)

	// Mohr's circle for the plane stress element (σ_x, σ_y=0, τ_xy)
	avg := r.BendingResultant / 2
	rad := math.Hypot(avg, r.TorsionShear)
	r.Sigma1 = avg + rad
	r.Sigma2 = avg - rad
	r.Sigma3 = 0
	r.TauMax = (r.Sigma1 - r.Sigma2) / 2
	r.ThetaP = 0.5 * math.Atan2(2*r.TorsionShear, r.BendingResultant) * 180 / math.Pi
	r.VonMises = math.Sqrt(((r.Sigma1-r.Sigma2)*(r.Sigma1-r.Sigma2) +
		(r.Sigma2-r.Sigma3)*(r.Sigma2-r.Sigma3) +
		(r.Sigma3-r.Sigma1)*(r.Sigma3-r.Sigma1)) / 2)

	r.SFTension = factorOr(c.Tensile, r.Sigma1, safetyCap)
	// a near-zero minor principal stress would blow the compression factor
	// out of scale, so it reports the cap instead
	if math.Abs(r.Sigma2) <= 0.1 {
		r.SFCompression = safetyCap
	} else {
		r.SFCompression = c.Compressive / math.Abs(r.Sigma2)
	}
	r.SFShear = factorOr(c.ShearStr, r.TauMax, safetyCap)
	// composite layups fail in compression first, so von Mises is graded
	// against the compressive strength
	r.SFVonMises = factorOr(c.Compressive, r.VonMises, safetyCap)

	r.SFGoverning, r.GoverningMode = governing(r)

	req := c.RequiredSF
	if req <= 0 {
		req = 1
	}
	r.Adequate = r.SFGoverning >= req
	r.Assessment = material.Assess(r.SFGoverning, req)
	if r.Adequate {
		r.Message = fmt.Sprintf("governing mode %s with safety factor %.2f meets required %.2f",
			r.GoverningMode, r.SFGoverning, req)
	} else {
		r.Message = fmt.Sprintf("NOT adequate: governing mode %s gives safety factor %.2f below required %.2f",
			r.GoverningMode, r.SFGoverning, req)
	}
	return r, nil
}

func factorOr(strength, stress, cap float64) float64 {
	if stress*cap <= strength {
		return cap
	}
	return strength / stress
}

func governing(r *CombinedResult) (sf float64, mode string) {
	sf, mode = r.SFTension, "tension"
	if r.SFCompression < sf {
		sf, mode = r.SFCompression, "compression"
	}
	if r.SFShear < sf {
		sf, mode = r.SFShear, "shear"
	}
	if r.SFVonMises < sf {
		sf, mode = r.SFVonMises, "von_mises"
	}
	return sf, mode
}
