package scenario

import (
	"fmt"
	"math"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
)

// sectionTolerance is the relative gap above which a stated section
// property is reported as disagreeing with the drawn geometry
const sectionTolerance = 0.05

// Check compares one published figure with the computed value
type Check struct {
	Name     string  `json:"name" yaml:"name"`
	Expected float64 `json:"expected" yaml:"expected"`
	Actual   float64 `json:"actual" yaml:"actual"`
	Match    bool    `json:"match" yaml:"match"`
}

// VerifyResult reports how the analysis compares with the scenario's
// published figures
type VerifyResult struct {
	ScenarioID string   `json:"scenario_id" yaml:"scenario_id"`
	Title      string   `json:"title" yaml:"title"`
	Checks     []Check  `json:"checks" yaml:"checks"`
	Notes      []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	AllMatch   bool     `json:"all_match" yaml:"all_match"`
}

// Verify analyzes the scenario and compares the results against its
// expected figures. Section properties stated alongside geometry are
// cross-checked and reported in the notes when they disagree.
func (s *Scenario) Verify() (*VerifyResult, error) {
	res, err := s.Analyze()
	if err != nil {
		return nil, err
	}

	v := &VerifyResult{ScenarioID: s.ID, Title: s.Title}
	v.Notes = append(v.Notes, s.sectionNotes()...)

	exp := s.Expected
	if exp == nil {
		v.Notes = append(v.Notes, "no expected figures recorded for this scenario")
		v.AllMatch = true
		return v, nil
	}

	rs := res.Analysis.Reactions()
	if len(exp.Reactions) > 0 {
		if len(exp.Reactions) != len(rs.Supports) {
			v.Notes = append(v.Notes, fmt.Sprintf("expected %d support reactions, the beam has %d supports",
				len(exp.Reactions), len(rs.Supports)))
		} else {
			for i, want := range exp.Reactions {
				name := fmt.Sprintf("support reaction at %g mm", rs.Supports[i].Position)
				v.add(name, want, rs.Supports[i].Force)
			}
		}
	}
	if exp.SpringForce != 0 && rs.Spring != nil {
		v.add("spring force", exp.SpringForce, rs.Spring.Force)
	}
	if exp.FixedMoment != 0 {
		v.add("fixing moment", exp.FixedMoment, fixingMoment(rs))
	}
	if exp.MaxMoment != 0 {
		v.add("peak bending moment", exp.MaxMoment, res.Extremes.MaxAbsMoment())
	}
	if exp.MaxStress != 0 {
		v.add("peak bending stress", exp.MaxStress, res.Flexure.Stress)
	}
	if exp.SafetyFactor != 0 {
		v.add("safety factor", exp.SafetyFactor, res.GoverningSF())
	}

	v.AllMatch = true
	for _, c := range v.Checks {
		if !c.Match {
			v.AllMatch = false
			break
		}
	}
	return v, nil
}

func (v *VerifyResult) add(name string, expected, actual float64) {
	v.Checks = append(v.Checks, Check{Name: name, Expected: expected, Actual: actual, Match: near(expected, actual)})
}

// near accepts published figures rounded to about three significant digits
func near(expected, actual float64) bool {
	tol := 0.01 * math.Abs(expected)
	if tol < 0.5 {
		tol = 0.5
	}
	return math.Abs(actual-expected) <= tol
}

func fixingMoment(rs *beam.ReactionSet) float64 {
	for _, r := range rs.Supports {
		if r.Kind == beam.Fixed {
			return math.Abs(r.Moment)
		}
	}
	return 0
}

// sectionNotes cross-checks stated section properties against the drawn
// geometry. Published worked examples sometimes quote figures for a
// different stock size than the sketch shows.
func (s *Scenario) sectionNotes() []string {
	if !s.Section.HasOverrides() {
		return nil
	}
	computed, err := s.Section.ComputedProperties()
	if err != nil {
		return nil // no geometry to compare against
	}

	var notes []string
	if s.Section.GivenI > 0 && relGap(s.Section.GivenI, computed.I) > sectionTolerance {
		notes = append(notes, fmt.Sprintf("stated moment of inertia %.4g mm^4 differs from the computed %.4g mm^4 by %.0f%%",
			s.Section.GivenI, computed.I, relGap(s.Section.GivenI, computed.I)*100))
	}
	if s.Section.GivenC > 0 && relGap(s.Section.GivenC, computed.C) > sectionTolerance {
		notes = append(notes, fmt.Sprintf("stated extreme fiber %.4g mm differs from the computed %.4g mm by %.0f%%",
			s.Section.GivenC, computed.C, relGap(s.Section.GivenC, computed.C)*100))
	}
	return notes
}

func relGap(stated, computed float64) float64 {
	if computed == 0 {
		return math.Inf(1)
	}
	return math.Abs(stated-computed) / math.Abs(computed)
}
