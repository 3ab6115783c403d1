package sweep

import (
	"fmt"

	"github.com/cpmech/gosl/utl"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
)

// defaultSteps is the number of travel stations when the config leaves it zero
const defaultSteps = 50

// Config describes a moving load study: one concentrated load of a scenario
// travels along the span while everything else stays put
type Config struct {
	Scenario *scenario.Scenario `json:"scenario" yaml:"scenario"`
	Index    int                `json:"index" yaml:"index"`                     // which point load travels
	Start    float64            `json:"start,omitempty" yaml:"start,omitempty"` // travel range (mm), defaults to the full span
	End      float64            `json:"end,omitempty" yaml:"end,omitempty"`
	Steps    int                `json:"steps,omitempty" yaml:"steps,omitempty"` // stations across the range
}

// Station is the outcome with the load parked at one position
type Station struct {
	Position     float64   `json:"position" yaml:"position"` // of the travelling load (mm)
	Reactions    []float64 `json:"reactions" yaml:"reactions"`
	MaxAbsShear  float64   `json:"max_abs_shear" yaml:"max_abs_shear"`
	MaxAbsMoment float64   `json:"max_abs_moment" yaml:"max_abs_moment"`
	MomentAt     float64   `json:"moment_at" yaml:"moment_at"` // station of the governing moment (mm)
	Stress       float64   `json:"stress" yaml:"stress"`       // bending stress (MPa)
	SafetyFactor float64   `json:"safety_factor" yaml:"safety_factor"`
}

// Result is the whole travel history plus the governing station
type Result struct {
	ScenarioID string    `json:"scenario_id" yaml:"scenario_id"`
	Stations   []Station `json:"stations" yaml:"stations"`
	Worst      Station   `json:"worst" yaml:"worst"` // largest moment magnitude
}

// Run moves the selected load across its travel range and analyzes each
// station in full
func Run(cfg *Config) (*Result, error) {
	if cfg == nil || cfg.Scenario == nil {
		return nil, fmt.Errorf("sweep needs a scenario")
	}
	s := cfg.Scenario
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Beam.PointLoads) == 0 {
		return nil, fmt.Errorf("sweep needs a concentrated load to move, scenario %s has none", s.ID)
	}
	if cfg.Index < 0 || cfg.Index >= len(s.Beam.PointLoads) {
		return nil, fmt.Errorf("load index %d out of range, scenario %s has %d point loads",
			cfg.Index, s.ID, len(s.Beam.PointLoads))
	}

	start, end := cfg.Start, cfg.End
	if start == 0 && end == 0 {
		end = s.Beam.Length
	}
	if start < 0 || end > s.Beam.Length || start >= end {
		return nil, fmt.Errorf("travel range [%g, %g] does not fit the %g mm span", start, end, s.Beam.Length)
	}
	steps := cfg.Steps
	if steps <= 1 {
		steps = defaultSteps
	}

	res := &Result{ScenarioID: s.ID}
	for _, x := range utl.LinSpace(start, end, steps) {
		st, err := stationAt(s, cfg.Index, x)
		if err != nil {
			return nil, err
		}
		res.Stations = append(res.Stations, st)
		if st.MaxAbsMoment > res.Worst.MaxAbsMoment || len(res.Stations) == 1 {
			res.Worst = st
		}
	}
	return res, nil
}

func stationAt(s *scenario.Scenario, idx int, x float64) (Station, error) {
	parked := *s
	parked.Beam.PointLoads = append([]beam.PointLoad(nil), s.Beam.PointLoads...)
	parked.Beam.PointLoads[idx].Position = x

	r, err := parked.Analyze()
	if err != nil {
		return Station{}, fmt.Errorf("load at %g mm: %w", x, err)
	}

	st := Station{
		Position:     x,
		MaxAbsShear:  r.Extremes.MaxAbsShear(),
		MaxAbsMoment: r.Extremes.MaxAbsMoment(),
		MomentAt:     r.Extremes.GoverningMoment().Position,
		Stress:       r.Flexure.Stress,
		SafetyFactor: r.GoverningSF(),
	}
	rs := r.Analysis.Reactions()
	for _, sup := range rs.Supports {
		st.Reactions = append(st.Reactions, sup.Force)
	}
	if rs.Spring != nil {
		st.Reactions = append(st.Reactions, rs.Spring.Force)
	}
	return st, nil
}

// Positions lists the travel stations, ready for plotting
func (r *Result) Positions() []float64 {
	xs := make([]float64, len(r.Stations))
	for i, st := range r.Stations {
		xs[i] = st.Position
	}
	return xs
}

// Moments lists the governing moment magnitude per station
func (r *Result) Moments() []float64 {
	ms := make([]float64, len(r.Stations))
	for i, st := range r.Stations {
		ms[i] = st.MaxAbsMoment
	}
	return ms
}

// SafetyFactors lists the governing safety factor per station
func (r *Result) SafetyFactors() []float64 {
	sf := make([]float64, len(r.Stations))
	for i, st := range r.Stations {
		sf[i] = st.SafetyFactor
	}
	return sf
}

// MinSafetyFactor returns the smallest factor seen over the travel
func (r *Result) MinSafetyFactor() float64 {
	if len(r.Stations) == 0 {
		return 0
	}
	min := r.Stations[0].SafetyFactor
	for _, st := range r.Stations[1:] {
		if st.SafetyFactor < min {
			min = st.SafetyFactor
		}
	}
	return min
}
