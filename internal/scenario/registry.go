package scenario

import (
	"fmt"
	"strings"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/material"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
)

// Builtin returns the bundled scenarios in display order. Callers own the
// returned values.
func Builtin() []*Scenario {
	return []*Scenario{
		conveyorFrame(),
		craneJib(),
		cameraBoom(),
		pantographArm(),
		pantographCantilever(),
		roboticArm(),
		solarTracker(),
		gantryRail(),
		gantryTrolley(),
		droneArm(),
	}
}

// ByID finds a bundled scenario by its id, case insensitive
func ByID(id string) (*Scenario, error) {
	want := strings.ToLower(strings.TrimSpace(id))
	for _, s := range Builtin() {
		if s.ID == want {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scenario %q, available: %s", id, strings.Join(IDs(), ", "))
}

// IDs lists the bundled scenario ids in display order
func IDs() []string {
	all := Builtin()
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = s.ID
	}
	return ids
}

func conveyorFrame() *Scenario {
	return &Scenario{
		ID:          "conveyor_frame",
		Title:       "Conveyor support frame",
		Description: "Roller frame cross member carrying five equally spaced idler loads",
		Beam: beam.Beam{
			Name:   "conveyor cross member",
			Length: 2000,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
				{Position: 2000, Kind: beam.Roller},
			},
			PointLoads: []beam.PointLoad{
				{Position: 200, Magnitude: 400},
				{Position: 600, Magnitude: 400},
				{Position: 1000, Magnitude: 400},
				{Position: 1400, Magnitude: 400},
				{Position: 1800, Magnitude: 400},
			},
		},
		Section: section.Definition{
			Kind:      section.KindHollowRectangular,
			Width:     60,
			Height:    40,
			Thickness: 4,
			GivenI:    3.1e6,
			GivenC:    30,
		},
		Material:   material.StructuralSteel,
		RequiredSF: 2.5,
		Expected: &Expected{
			Reactions: []float64{1000, 1000},
			MaxMoment: 520000,
		},
	}
}

func craneJib() *Scenario {
	return &Scenario{
		ID:          "crane_jib",
		Title:       "Crane jib",
		Description: "Overhanging jib with a hoist in the bay, a tip sheave, and self-weight; concentrated loads carry a 1.4 dynamic factor",
		Beam: beam.Beam{
			Name:   "jib",
			Length: 4000,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
				{Position: 3000, Kind: beam.Roller},
			},
			PointLoads: []beam.PointLoad{
				{Position: 1500, Magnitude: 5000},
				{Position: 4000, Magnitude: 3000},
			},
			DistributedLoads: []beam.DistributedLoad{
				{Start: 0, End: 4000, Intensity: 0.8},
			},
		},
		Section: section.Definition{
			Kind:   section.KindGiven,
			GivenI: 8.2e6,
			GivenC: 75,
		},
		Material:      material.StructuralSteel,
		RequiredSF:    3.0,
		DynamicFactor: 1.4,
		Expected: &Expected{
			Reactions: []float64{3166.67, 11233.33},
			MaxMoment: 4.6e6,
		},
	}
}

func cameraBoom() *Scenario {
	return &Scenario{
		ID:          "camera_boom",
		Title:       "Camera boom",
		Description: "Inspection camera on a 1.2 m cantilever boom",
		Beam: beam.Beam{
			Name:   "boom",
			Length: 1200,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Fixed},
			},
			PointLoads: []beam.PointLoad{
				{Position: 1200, Magnitude: 500},
			},
		},
		Section: section.Definition{
			Kind:     section.KindSolidCircular,
			Diameter: 40,
		},
		Material:   material.StructuralSteel,
		RequiredSF: 2.0,
		Expected: &Expected{
			Reactions:   []float64{500},
			FixedMoment: 600000,
		},
	}
}

func pantographArm() *Scenario {
	return &Scenario{
		ID:          "pantograph_arm",
		Title:       "Pantograph arm, pin and spring",
		Description: "Lower pantograph link held by a pivot and a gas spring 300 mm out",
		Beam: beam.Beam{
			Name:   "lower link",
			Length: 1200,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
			},
			PointLoads: []beam.PointLoad{
				{Position: 1200, Magnitude: 800},
			},
			Spring: &beam.Spring{Position: 300},
		},
		Section: section.Definition{
			Kind:      section.KindCircularTube,
			Outer:     50,
			Thickness: 4,
			GivenI:    2.45e6,
			GivenC:    25,
		},
		Material:   material.StructuralSteel,
		RequiredSF: 3.0,
		Expected: &Expected{
			Reactions:   []float64{-2400},
			SpringForce: 3200,
			MaxMoment:   720000,
		},
	}
}

func pantographCantilever() *Scenario {
	return &Scenario{
		ID:          "pantograph_cantilever",
		Title:       "Pantograph arm, clamped root",
		Description: "Same link analyzed with the root clamped instead of sprung",
		Beam: beam.Beam{
			Name:   "lower link",
			Length: 1200,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Fixed},
			},
			PointLoads: []beam.PointLoad{
				{Position: 1200, Magnitude: 800},
			},
		},
		Section: section.Definition{
			Kind:      section.KindCircularTube,
			Outer:     50,
			Thickness: 4,
			GivenI:    2.45e6,
			GivenC:    25,
		},
		Material:   material.StructuralSteel,
		RequiredSF: 3.0,
		Expected: &Expected{
			FixedMoment:  960000,
			MaxStress:    9.80,
			SafetyFactor: 25.5,
		},
	}
}

func roboticArm() *Scenario {
	return &Scenario{
		ID:          "robotic_arm",
		Title:       "Robotic arm",
		Description: "Pick and place arm plate under self-weight and a 1.2 kN payload at the gripper",
		Beam: beam.Beam{
			Name:   "arm plate",
			Length: 2500,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Fixed},
			},
			PointLoads: []beam.PointLoad{
				{Position: 2500, Magnitude: 1200},
			},
			DistributedLoads: []beam.DistributedLoad{
				{Start: 0, End: 2500, Intensity: 0.075},
			},
		},
		Section: section.Definition{
			Kind:   section.KindRectangular,
			Width:  10,
			Height: 80,
			GivenI: 5.33e6,
			GivenC: 40,
		},
		Material:   material.Aluminum6061,
		RequiredSF: 3.0,
		Expected: &Expected{
			Reactions:   []float64{1387.5},
			FixedMoment: 3234375,
			MaxStress:   24.27,
		},
	}
}

func solarTracker() *Scenario {
	return &Scenario{
		ID:          "solar_tracker",
		Title:       "Solar tracker beam",
		Description: "Tracker beam on two bearings with an overhanging drive end",
		Beam: beam.Beam{
			Name:   "tracker beam",
			Length: 3000,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
				{Position: 2500, Kind: beam.Roller},
			},
			PointLoads: []beam.PointLoad{
				{Position: 3000, Magnitude: 600},
			},
			DistributedLoads: []beam.DistributedLoad{
				{Start: 0, End: 3000, Intensity: 0.3},
			},
		},
		Section: section.Definition{
			Kind:      section.KindHollowRectangular,
			Width:     80,
			Height:    60,
			Thickness: 5,
		},
		Material:   material.StructuralSteel,
		RequiredSF: 2.5,
		Expected: &Expected{
			Reactions: []float64{240, 1260},
			MaxMoment: 337500,
		},
	}
}

func gantryRail() *Scenario {
	return &Scenario{
		ID:          "gantry_rail",
		Title:       "Gantry rail",
		Description: "Light gantry rail with the trolley parked at mid span",
		Beam: beam.Beam{
			Name:   "rail",
			Length: 1200,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
				{Position: 1200, Kind: beam.Roller},
			},
			PointLoads: []beam.PointLoad{
				{Position: 600, Magnitude: 250},
			},
		},
		Section: section.Definition{
			Kind:   section.KindGiven,
			GivenI: 2.2e6,
			GivenC: 25,
		},
		Material:   material.Aluminum6061,
		RequiredSF: 2.0,
		Expected: &Expected{
			Reactions: []float64{125, 125},
			MaxMoment: 75000,
		},
	}
}

func gantryTrolley() *Scenario {
	return &Scenario{
		ID:          "gantry_trolley",
		Title:       "Gantry trolley off center",
		Description: "Same rail with the trolley at 900 mm; sweep the load position to cover the full travel",
		Beam: beam.Beam{
			Name:   "rail",
			Length: 1200,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Pinned},
				{Position: 1200, Kind: beam.Roller},
			},
			PointLoads: []beam.PointLoad{
				{Position: 900, Magnitude: 250},
			},
		},
		Section: section.Definition{
			Kind:   section.KindGiven,
			GivenI: 2.2e6,
			GivenC: 25,
		},
		Material:   material.Aluminum6061,
		RequiredSF: 2.0,
		Expected: &Expected{
			Reactions: []float64{62.5, 187.5},
			MaxMoment: 56250,
		},
	}
}

func droneArm() *Scenario {
	return &Scenario{
		ID:          "drone_arm",
		Title:       "Drone motor arm",
		Description: "Round motor arm seeing thrust bending, side gust bending, and propeller torque",
		Beam: beam.Beam{
			Name:   "motor arm",
			Length: 300,
			Supports: []beam.Support{
				{Position: 0, Kind: beam.Fixed},
			},
			PointLoads: []beam.PointLoad{
				{Position: 300, Magnitude: 20},
			},
		},
		Section: section.Definition{
			Kind:  section.KindCircularTube,
			Outer: 16,
			Inner: 12,
		},
		Material:   material.CarbonFiber,
		RequiredSF: 3.0,
		Combined: &CombinedLoads{
			HorizontalMoment: 1000,
			Torque:           1000,
		},
		Expected: &Expected{
			FixedMoment:  6000,
			SafetyFactor: 6.24,
		},
	}
}
