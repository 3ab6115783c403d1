package material

import "fmt"

// Safety factor bands for the adequacy assessment
const (
	MinDesignFactor  = 3.0 // below this a machine member is running lean
	OverDesignFactor = 5.0 // above this it is carrying dead weight
)

// Adequacy labels returned by Assess
const (
	AdequacyInsufficient = "insufficient"
	AdequacyAdequate     = "adequate"
	AdequacyExcellent    = "excellent"
	AdequacyOverDesigned = "over-designed"
)

// Assess places a safety factor in the adequacy bands relative to the
// required minimum
func Assess(sf, required float64) string {
	switch {
	case sf < required:
		return AdequacyInsufficient
	case sf > OverDesignFactor:
		return AdequacyOverDesigned
	case sf >= MinDesignFactor:
		return AdequacyExcellent
	}
	return AdequacyAdequate
}

// ApplicationFactors captures how a duty case amplifies loads and what
// margin it must keep
type ApplicationFactors struct {
	ID          string
	Application string
	// Load amplification
	DynamicFactor float64 // applied loads are multiplied by this
	// Acceptance
	RequiredSF float64 // minimum acceptable safety factor
}

// DesignFactors lists typical mechatronic duty cases
var DesignFactors = []ApplicationFactors{
	{
		ID:            "static",
		Application:   "Static or slowly varying load",
		DynamicFactor: 1.0,
		RequiredSF:    2.0,
	},
	{
		ID:            "conveyor",
		Application:   "Conveyor frame under steady part traffic",
		DynamicFactor: 1.2,
		RequiredSF:    2.5,
	},
	{
		ID:            "actuated",
		Application:   "Actuated arm with moderate accelerations",
		DynamicFactor: 1.25,
		RequiredSF:    3.0,
	},
	{
		ID:            "hoisting",
		Application:   "Hoisting with dynamic load pickup",
		DynamicFactor: 1.4,
		RequiredSF:    3.0,
	},
	{
		ID:            "impact",
		Application:   "Impact-prone service",
		DynamicFactor: 2.0,
		RequiredSF:    4.0,
	},
}

// FactorsFor finds a duty case by ID
func FactorsFor(id string) (ApplicationFactors, error) {
	for _, f := range DesignFactors {
		if f.ID == id {
			return f, nil
		}
	}
	return ApplicationFactors{}, fmt.Errorf("unknown duty case: %q", id)
}

// Amplify scales a nominal load by the dynamic factor
func (f ApplicationFactors) Amplify(load float64) float64 {
	return f.DynamicFactor * load
}
