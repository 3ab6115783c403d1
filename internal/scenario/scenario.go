package scenario

import (
	"fmt"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
	"github.com/SiliconWit/mechanics-of-materials/internal/stress"
)

// Scenario bundles a beam, its cross-section, the material, and the
// acceptance criteria into one analyzable case
type Scenario struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Beam     beam.Beam          `json:"beam" yaml:"beam"`
	Section  section.Definition `json:"section" yaml:"section"`
	Material material.Material  `json:"material" yaml:"material"`

	// Acceptance
	RequiredSF    float64 `json:"required_sf,omitempty" yaml:"required_sf,omitempty"`
	DynamicFactor float64 `json:"dynamic_factor,omitempty" yaml:"dynamic_factor,omitempty"` // amplifies concentrated loads

	// Out-of-plane actions for round members
	Combined *CombinedLoads `json:"combined,omitempty" yaml:"combined,omitempty"`

	// Published figures the analysis should reproduce
	Expected *Expected `json:"expected,omitempty" yaml:"expected,omitempty"`
}

// CombinedLoads carries the actions a plane beam analysis cannot see: a
// second bending plane and torsion at the critical section
type CombinedLoads struct {
	HorizontalMoment float64 `json:"horizontal_moment" yaml:"horizontal_moment"` // N·mm
	Torque           float64 `json:"torque" yaml:"torque"`                       // N·mm
}

// Expected lists published figures for verification. Zero entries are
// skipped; moments and stresses compare by magnitude.
type Expected struct {
	Reactions    []float64 `json:"reactions,omitempty" yaml:"reactions,omitempty"` // support forces, left to right (N)
	SpringForce  float64   `json:"spring_force,omitempty" yaml:"spring_force,omitempty"`
	FixedMoment  float64   `json:"fixed_moment,omitempty" yaml:"fixed_moment,omitempty"` // |M| at the wall (N·mm)
	MaxMoment    float64   `json:"max_moment,omitempty" yaml:"max_moment,omitempty"`     // governing |M| (N·mm)
	MaxStress    float64   `json:"max_stress,omitempty" yaml:"max_stress,omitempty"`     // σ (MPa)
	SafetyFactor float64   `json:"safety_factor,omitempty" yaml:"safety_factor,omitempty"`
}

// Result collects everything one scenario run produces
type Result struct {
	Scenario   *Scenario
	Analysis   *beam.Analysis
	Extremes   *beam.Extremes
	Properties *section.Properties
	Flexure    *stress.FlexureResult
	Combined   *stress.CombinedResult // set for round members with extra actions
}

// Validate checks that the scenario can be analyzed
func (s *Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario needs an id")
	}
	if err := s.Beam.Validate(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	if s.Material.Yield <= 0 {
		return fmt.Errorf("scenario %s: material needs a positive yield strength", s.ID)
	}
	if s.RequiredSF < 0 || s.DynamicFactor < 0 {
		return fmt.Errorf("scenario %s: factors cannot be negative", s.ID)
	}
	if _, err := s.Section.Resolve(); err != nil {
		return fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	return nil
}

// Build returns the beam to analyze, with the dynamic factor applied to the
// concentrated loads. Distributed lines model self-weight and stay nominal.
func (s *Scenario) Build() *beam.Beam {
	b := s.Beam
	if s.DynamicFactor > 0 && s.DynamicFactor != 1 {
		b.PointLoads = append([]beam.PointLoad(nil), s.Beam.PointLoads...)
		for i := range b.PointLoads {
			b.PointLoads[i].Magnitude *= s.DynamicFactor
		}
	}
	return &b
}

// Analyze runs the scenario end to end: reactions, internal force extremes,
// section resolution, and the stress checks
func (s *Scenario) Analyze() (*Result, error) {
	return s.AnalyzeGrid(0)
}

// AnalyzeGrid is Analyze with an explicit scan resolution for the critical
// point extraction. Zero picks the default grid.
func (s *Scenario) AnalyzeGrid(grid int) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	a, err := s.Build().Analyze()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	ext := a.Critical(grid)

	props, err := s.Section.Resolve()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}

	r := &Result{
		Scenario:   s,
		Analysis:   a,
		Extremes:   ext,
		Properties: props,
	}

	fl := stress.NewFlexure(ext.MaxAbsMoment(), props, &s.Material, s.RequiredSF)
	r.Flexure, err = fl.Analyze()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}

	if s.Combined != nil {
		cb := stress.NewCombined(ext.MaxAbsMoment(), s.Combined.HorizontalMoment, s.Combined.Torque,
			props, &s.Material, s.RequiredSF)
		r.Combined, err = cb.Analyze()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
	}
	return r, nil
}

// GoverningSF returns the safety factor that rules the scenario: the
// combined check when present, the flexure factor otherwise
func (r *Result) GoverningSF() float64 {
	if r.Combined != nil {
		return r.Combined.SFGoverning
	}
	return r.Flexure.SafetyFactor
}
