package chartdata

import (
	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/codec"
	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
	"github.com/SiliconWit/mechanics-of-materials/internal/stress"
)

// Bundle is the single-file analysis document: inputs, results,
// verification against published figures, and plot-ready chart data
type Bundle struct {
	SystemParameters SystemParameters       `json:"system_parameters"`
	SupportReactions *beam.ReactionSet      `json:"support_reactions"`
	ShearAnalysis    DiagramSummary         `json:"shear_analysis"`
	MomentAnalysis   DiagramSummary         `json:"moment_analysis"`
	StressAnalysis   *StressAnalysis        `json:"stress_analysis,omitempty"`
	SafetyAnalysis   *SafetyAnalysis        `json:"safety_analysis,omitempty"`
	Verification     *scenario.VerifyResult `json:"verification,omitempty"`
	ChartData        ChartData              `json:"chart_data"`
}

// SystemParameters records the analyzed inputs, with any dynamic factor
// already applied to the beam's concentrated loads
type SystemParameters struct {
	Title         string              `json:"title"`
	Configuration string              `json:"configuration"`
	Units         string              `json:"units"`
	Beam          *beam.Beam          `json:"beam"`
	TotalLoad     float64             `json:"total_load"`
	Section       *section.Properties `json:"section_properties,omitempty"`
	Material      *material.Material  `json:"material,omitempty"`
	RequiredSF    float64             `json:"required_sf,omitempty"`
	DynamicFactor float64             `json:"dynamic_factor,omitempty"`
}

// DiagramSummary reports the extremes of one internal force diagram
type DiagramSummary struct {
	Max       beam.CriticalPoint `json:"max"`
	Min       beam.CriticalPoint `json:"min"`
	Governing beam.CriticalPoint `json:"governing"`
	MaxAbs    float64            `json:"max_abs"`
}

// StressAnalysis carries the flexure check and, for round members with
// out-of-plane actions, the combined stress state
type StressAnalysis struct {
	Flexure  *stress.FlexureResult  `json:"flexure"`
	Combined *stress.CombinedResult `json:"combined,omitempty"`
}

// SafetyAnalysis is the verdict: the governing factor against the duty
type SafetyAnalysis struct {
	SafetyFactor  float64 `json:"safety_factor"`
	RequiredSF    float64 `json:"required_sf"`
	GoverningMode string  `json:"governing_mode"`
	Adequate      bool    `json:"adequate"`
	Assessment    string  `json:"assessment"`
}

// ChartData nests both plot documents. Their inner keys follow the
// plotting front end's camelCase convention.
type ChartData struct {
	Shear  *ShearChart  `json:"shear"`
	Moment *MomentChart `json:"moment"`
}

// NewBundle assembles the full document for a scenario result. Chart axes
// use the given units; everything else stays in N and mm.
func NewBundle(r *scenario.Result, u Units) *Bundle {
	s := r.Scenario
	a := r.Analysis

	g := New(a, s.Title)
	g.Units = u

	b := &Bundle{
		SystemParameters: SystemParameters{
			Title:         s.Title,
			Configuration: a.Config().String(),
			Units:         "N, mm",
			Beam:          a.Beam(),
			TotalLoad:     a.Beam().TotalLoad(),
			Section:       r.Properties,
			Material:      &s.Material,
			RequiredSF:    s.RequiredSF,
			DynamicFactor: s.DynamicFactor,
		},
		SupportReactions: a.Reactions(),
		ShearAnalysis: DiagramSummary{
			Max:       r.Extremes.VMax,
			Min:       r.Extremes.VMin,
			Governing: r.Extremes.GoverningShear(),
			MaxAbs:    r.Extremes.MaxAbsShear(),
		},
		MomentAnalysis: DiagramSummary{
			Max:       r.Extremes.MMax,
			Min:       r.Extremes.MMin,
			Governing: r.Extremes.GoverningMoment(),
			MaxAbs:    r.Extremes.MaxAbsMoment(),
		},
		StressAnalysis: &StressAnalysis{Flexure: r.Flexure, Combined: r.Combined},
		SafetyAnalysis: safetyOf(r),
		ChartData:      ChartData{Shear: g.Shear(), Moment: g.Moment()},
	}

	// a second analysis pass cannot fail once the first succeeded
	if s.Expected != nil {
		if v, err := s.Verify(); err == nil {
			b.Verification = v
		}
	}
	return b
}

// Write saves the bundle to path, choosing JSON or YAML by extension
func (b *Bundle) Write(path string) error {
	return codec.EncodeFile(path, b)
}

func safetyOf(r *scenario.Result) *SafetyAnalysis {
	mode := "bending"
	sf := r.Flexure.SafetyFactor
	adequate := r.Flexure.Adequate
	assessment := r.Flexure.Assessment
	if r.Combined != nil {
		mode = r.Combined.GoverningMode
		sf = r.Combined.SFGoverning
		adequate = r.Combined.Adequate
		assessment = r.Combined.Assessment
	}
	req := r.Scenario.RequiredSF
	if req <= 0 {
		req = 1
	}
	return &SafetyAnalysis{
		SafetyFactor:  sf,
		RequiredSF:    req,
		GoverningMode: mode,
		Adequate:      adequate,
		Assessment:    assessment,
	}
}
