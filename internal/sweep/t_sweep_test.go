package sweep

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/scenario"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func pick(tst *testing.T, id string) *scenario.Scenario {
	s, err := scenario.ByID(id)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return s
}

func TestSweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. trolley across the gantry rail")

	res, err := Run(&Config{Scenario: pick(tst, "gantry_rail"), Steps: 25})
	if err != nil {
		tst.Fatalf("sweep failed: %v", err)
	}
	chk.Int(tst, "stations", len(res.Stations), 25)
	chk.String(tst, res.ScenarioID, "gantry_rail")

	// over the pin the rail carries no moment at all
	chk.Float64(tst, "load over the pin", 1e-12, res.Stations[0].Position, 0)
	chk.Float64(tst, "no moment", 1e-10, res.Stations[0].MaxAbsMoment, 0)
	chk.Float64(tst, "capped factor", 1e-12, res.Stations[0].SafetyFactor, 1000)

	// lever rule at quarter travel
	chk.Array(tst, "reactions at 300", 1e-10, res.Stations[6].Reactions, []float64{187.5, 62.5})

	// mid span governs the whole travel
	chk.Float64(tst, "worst position", 1e-10, res.Worst.Position, 600)
	chk.Float64(tst, "worst moment", 1e-8, res.Worst.MaxAbsMoment, 75000)
	chk.Float64(tst, "worst moment station", 1e-10, res.Worst.MomentAt, 600)
	chk.Float64(tst, "worst factor", 1e-8, res.Worst.SafetyFactor, 275.0*88000/75000)
	chk.Float64(tst, "min factor is the worst", 1e-12, res.MinSafetyFactor(), res.Worst.SafetyFactor)

	chk.Int(tst, "positions", len(res.Positions()), 25)
	chk.Float64(tst, "moment series mid", 1e-8, res.Moments()[12], 75000)
}

func TestSweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. hoist travelling the crane bay")

	res, err := Run(&Config{Scenario: pick(tst, "crane_jib"), Index: 0, Start: 0, End: 3000, Steps: 13})
	if err != nil {
		tst.Fatalf("sweep failed: %v", err)
	}
	chk.Int(tst, "stations", len(res.Stations), 13)

	// the factored train weighs the same wherever the hoist parks
	for _, st := range res.Stations {
		chk.Int(tst, "two supports", len(st.Reactions), 2)
		chk.Float64(tst, "vertical balance", 1e-8, st.Reactions[0]+st.Reactions[1], 14400)
	}

	// hoist back at mid bay reproduces the published figures
	st := res.Stations[6]
	chk.Float64(tst, "hoist at mid bay", 1e-10, st.Position, 1500)
	chk.Array(tst, "reactions", 1e-6, st.Reactions, []float64{14400 - 33.7e6/3000.0, 33.7e6 / 3000.0})
	chk.Float64(tst, "governing moment", 1e-6, st.MaxAbsMoment, 4.6e6)
	chk.Float64(tst, "over the roller", 1e-10, st.MomentAt, 3000)

	// the overhang sets the envelope regardless of hoist position
	chk.Float64(tst, "worst moment", 1e-6, res.Worst.MaxAbsMoment, 4.6e6)
}

func TestSweep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep03. payload out the robotic arm")

	res, err := Run(&Config{Scenario: pick(tst, "robotic_arm"), Steps: 11})
	if err != nil {
		tst.Fatalf("sweep failed: %v", err)
	}

	// fully extended is the governing pose
	chk.Float64(tst, "worst position", 1e-10, res.Worst.Position, 2500)
	chk.Float64(tst, "worst moment", 1e-6, res.Worst.MaxAbsMoment, 1200*2500+187.5*1250)
	chk.Float64(tst, "worst at the wall", 1e-10, res.Worst.MomentAt, 0)
	chk.Float64(tst, "min factor", 1e-6, res.MinSafetyFactor(), 275.0*5.33e6/((1200*2500+187.5*1250)*40))

	// retracted pose still carries the arm's own weight
	chk.Float64(tst, "self-weight moment", 1e-8, res.Stations[0].MaxAbsMoment, 187.5*1250)
}

func TestSweep04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep04. rejected configurations")

	if _, err := Run(nil); err == nil {
		tst.Errorf("nil config must fail")
	}
	if _, err := Run(&Config{}); err == nil {
		tst.Errorf("missing scenario must fail")
	}

	s := pick(tst, "solar_tracker")
	s.Beam.PointLoads = nil
	if _, err := Run(&Config{Scenario: s}); err == nil {
		tst.Errorf("sweep without a concentrated load must fail")
	}

	cases := []Config{
		{Scenario: pick(tst, "gantry_rail"), Index: 5},
		{Scenario: pick(tst, "gantry_rail"), Start: 500, End: 200},
		{Scenario: pick(tst, "gantry_rail"), Start: -10, End: 600},
		{Scenario: pick(tst, "gantry_rail"), Start: 0, End: 9999},
	}
	for i, cfg := range cases {
		if _, err := Run(&cfg); err == nil {
			tst.Errorf("case %d must fail", i)
		}
	}
}

func TestSweep05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep05. travel history matches the closed form")

	s := pick(tst, "gantry_rail")
	s.Beam.Length = 800
	s.Beam.Supports[1].Position = 800
	s.Beam.PointLoads = []beam.PointLoad{{Position: 0, Magnitude: 200}}

	res, err := Run(&Config{Scenario: s, Steps: 17})
	if err != nil {
		tst.Fatalf("sweep failed: %v", err)
	}

	// M(a) = P a (L-a) / L station by station
	for _, st := range res.Stations {
		a := st.Position
		chk.Float64(tst, io.Sf("M(a=%g)", a), 1e-8, st.MaxAbsMoment, 200*a*(800-a)/800)
	}
	chk.Float64(tst, "worst position", 1e-10, res.Worst.Position, 400)
	chk.Float64(tst, "worst moment", 1e-8, res.Worst.MaxAbsMoment, 40000)
}
