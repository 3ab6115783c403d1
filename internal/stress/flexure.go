package stress

import (
	"fmt"
	"math"

	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
)

// safetyCap bounds reported safety factors so stations with vanishing
// stress stay finite in serialized output
const safetyCap = 1000.0

// Flexure holds the inputs of a bending stress check
type Flexure struct {
	Moment float64 // |M| - governing bending moment (N·mm)

	// Section constants
	I float64 // moment of inertia (mm⁴)
	C float64 // extreme fiber distance (mm)

	// Acceptance
	Yield      float64 // σ_y (MPa)
	RequiredSF float64 // minimum acceptable safety factor, 1.0 when unset
}

// FlexureResult holds the outcome of a bending stress check
type FlexureResult struct {
	Stress         float64 `json:"stress" yaml:"stress"`                   // σ_max = M·c/I (MPa)
	SectionModulus float64 `json:"section_modulus" yaml:"section_modulus"` // S = I/c (mm³)
	SafetyFactor   float64 `json:"safety_factor" yaml:"safety_factor"`     // σ_y/σ_max, capped
	RequiredSF     float64 `json:"required_sf" yaml:"required_sf"`

	Adequate   bool   `json:"adequate" yaml:"adequate"`
	Assessment string `json:"assessment" yaml:"assessment"`
	Message    string `json:"message" yaml:"message"`
}

// NewFlexure builds a bending check from the governing moment magnitude, the
// resolved section, and the material
func NewFlexure(moment float64, p *section.Properties, m *material.Material, requiredSF float64) *Flexure {
	return &Flexure{
		Moment:     math.Abs(moment),
		I:          p.I,
		C:          p.C,
		Yield:      m.Yield,
		RequiredSF: requiredSF,
	}
}

// Analyze runs the flexure formula and grades the outcome
func (f *Flexure) Analyze() (*FlexureResult, error) {
	if f.I <= 0 || f.C <= 0 {
		return nil, fmt.Errorf("invalid section constants: I=%.2f, c=%.2f", f.I, f.C)
	}
	if f.Yield <= 0 {
		return nil, fmt.Errorf("invalid yield strength: %.2f", f.Yield)
	}
	if f.Moment < 0 {
		return nil, fmt.Errorf("invalid moment magnitude: %.2f", f.Moment)
	}

	req := f.RequiredSF
	if req <= 0 {
		req = 1
	}

	r := &FlexureResult{
		Stress:         f.Moment * f.C / f.I,
		SectionModulus: f.I / f.C,
		RequiredSF:     req,
	}
	if r.Stress*safetyCap <= f.Yield {
		r.SafetyFactor = safetyCap
	} else {
		r.SafetyFactor = f.Yield / r.Stress
	}

	r.Adequate = r.SafetyFactor >= req
	r.Assessment = material.Assess(r.SafetyFactor, req)
	if r.Adequate {
		r.Message = fmt.Sprintf("bending stress %.2f MPa, safety factor %.2f meets required %.2f",
			r.Stress, r.SafetyFactor, req)
	} else {
		r.Message = fmt.Sprintf("NOT adequate: bending stress %.2f MPa gives safety factor %.2f below required %.2f",
			r.Stress, r.SafetyFactor, req)
	}
	return r, nil
}
