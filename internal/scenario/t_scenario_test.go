package scenario

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/SiliconWit/mechanics-of-materials/internal/material"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func check(tst *testing.T, v *VerifyResult, name string) Check {
	for _, c := range v.Checks {
		if c.Name == name {
			return c
		}
	}
	tst.Fatalf("check %q not found in %v", name, v.Checks)
	return Check{}
}

func TestScen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen01. bundled registry")

	all := Builtin()
	chk.Int(tst, "bundled count", len(all), 10)
	chk.Strings(tst, "ids", IDs(), []string{
		"conveyor_frame", "crane_jib", "camera_boom", "pantograph_arm", "pantograph_cantilever",
		"robotic_arm", "solar_tracker", "gantry_rail", "gantry_trolley", "drone_arm",
	})

	for _, s := range all {
		if err := s.Validate(); err != nil {
			tst.Errorf("bundled scenario %s does not validate: %v", s.ID, err)
		}
	}

	s, err := ByID("  Crane_Jib ")
	if err != nil {
		tst.Fatalf("lookup failed: %v", err)
	}
	chk.String(tst, s.ID, "crane_jib")

	if _, err := ByID("warp_nacelle"); err == nil {
		tst.Errorf("lookup of unknown scenario must fail")
	}
}

func TestScen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen02. conveyor frame against published figures")

	s, err := ByID("conveyor_frame")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	v, err := s.Verify()
	if err != nil {
		tst.Fatalf("verify failed: %v", err)
	}
	if !v.AllMatch {
		tst.Fatalf("expected all checks to match: %+v", v.Checks)
	}
	chk.Int(tst, "number of checks", len(v.Checks), 3)

	c := check(tst, v, "support reaction at 0 mm")
	chk.Float64(tst, "R left", 1e-10, c.Actual, 1000)
	c = check(tst, v, "peak bending moment")
	chk.Float64(tst, "M peak", 1e-6, c.Actual, 520000)

	// the stated inertia belongs to a heavier stock size than the sketch
	if len(v.Notes) == 0 || !strings.Contains(v.Notes[0], "moment of inertia") {
		tst.Errorf("expected a section discrepancy note, got %v", v.Notes)
	}

	res, err := s.Analyze()
	if err != nil {
		tst.Fatalf("analyze failed: %v", err)
	}
	chk.Float64(tst, "sigma", 1e-8, res.Flexure.Stress, 520000.0*30/3.1e6)
	chk.String(tst, res.Flexure.Assessment, material.AdequacyOverDesigned)
}

func TestScen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen03. pantograph clamped root worked example")

	s, err := ByID("pantograph_cantilever")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	v, err := s.Verify()
	if err != nil {
		tst.Fatalf("verify failed: %v", err)
	}
	if !v.AllMatch {
		tst.Fatalf("expected all checks to match: %+v", v.Checks)
	}

	chk.Float64(tst, "fixing moment", 1e-8, check(tst, v, "fixing moment").Actual, 960000)
	chk.Float64(tst, "sigma", 1e-4, check(tst, v, "peak bending stress").Actual, 960000.0*25/2.45e6)
	chk.Float64(tst, "safety factor", 1e-4, check(tst, v, "safety factor").Actual, 250.0*2.45e6/(960000.0*25))
}

func TestScen04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen04. crane jib dynamic factor and reactions")

	s, err := ByID("crane_jib")
	if err != nil {
		tst.Fatalf("%v", err)
	}

	// the factor amplifies concentrated loads in the working copy only
	b := s.Build()
	chk.Float64(tst, "hoist factored", 1e-10, b.PointLoads[0].Magnitude, 7000)
	chk.Float64(tst, "sheave factored", 1e-10, b.PointLoads[1].Magnitude, 4200)
	chk.Float64(tst, "hoist nominal", 1e-10, s.Beam.PointLoads[0].Magnitude, 5000)
	chk.Float64(tst, "self-weight unfactored", 1e-10, b.DistributedLoads[0].Intensity, 0.8)

	v, err := s.Verify()
	if err != nil {
		tst.Fatalf("verify failed: %v", err)
	}
	if !v.AllMatch {
		tst.Fatalf("expected all checks to match: %+v", v.Checks)
	}
	chk.Float64(tst, "R right", 1e-6, check(tst, v, "support reaction at 3000 mm").Actual, 33.7e6/3000.0)
	chk.Float64(tst, "M peak", 1e-6, check(tst, v, "peak bending moment").Actual, 4.6e6)
}

func TestScen05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen05. drone arm combined loading")

	s, err := ByID("drone_arm")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	res, err := s.Analyze()
	if err != nil {
		tst.Fatalf("analyze failed: %v", err)
	}
	if res.Combined == nil {
		tst.Fatalf("round member with torsion must produce a combined result")
	}
	chk.String(tst, res.Combined.GoverningMode, "shear")
	chk.Float64(tst, "governing SF", 0.005, res.GoverningSF(), 6.24)

	v, err := s.Verify()
	if err != nil {
		tst.Fatalf("verify failed: %v", err)
	}
	if !v.AllMatch {
		tst.Fatalf("expected all checks to match: %+v", v.Checks)
	}
	chk.Float64(tst, "fixing moment", 1e-10, check(tst, v, "fixing moment").Actual, 6000)
}

func TestScen06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen06. pantograph pin and spring figures")

	s, err := ByID("pantograph_arm")
	if err != nil {
		tst.Fatalf("%v", err)
	}
	v, err := s.Verify()
	if err != nil {
		tst.Fatalf("verify failed: %v", err)
	}
	if !v.AllMatch {
		tst.Fatalf("expected all checks to match: %+v", v.Checks)
	}
	chk.Float64(tst, "spring force", 1e-8, check(tst, v, "spring force").Actual, 3200)
	chk.Float64(tst, "pin reaction", 1e-8, check(tst, v, "support reaction at 0 mm").Actual, -2400)
	chk.Float64(tst, "M peak", 1e-8, check(tst, v, "peak bending moment").Actual, 720000)
}

func TestScen07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen07. save and reload")

	dir := tst.TempDir()
	s, err := ByID("solar_tracker")
	if err != nil {
		tst.Fatalf("%v", err)
	}

	for _, name := range []string{"tracker.yaml", "tracker.json"} {
		path := filepath.Join(dir, name)
		if err := s.Save(path); err != nil {
			tst.Fatalf("save %s failed: %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			tst.Fatalf("load %s failed: %v", name, err)
		}
		chk.String(tst, loaded.ID, "solar_tracker")
		v, err := loaded.Verify()
		if err != nil {
			tst.Fatalf("verify of reloaded %s failed: %v", name, err)
		}
		if !v.AllMatch {
			tst.Errorf("reloaded %s no longer matches: %+v", name, v.Checks)
		}
	}

	if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
		tst.Errorf("loading a missing file must fail")
	}
}

func TestScen08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scen08. validation rejects broken scenarios")

	cases := []struct {
		name  string
		wreck func(*Scenario)
	}{
		{"blank id", func(s *Scenario) { s.ID = "" }},
		{"zero yield", func(s *Scenario) { s.Material.Yield = 0 }},
		{"negative dynamic factor", func(s *Scenario) { s.DynamicFactor = -1 }},
		{"unknown section", func(s *Scenario) { s.Section.Kind = "t-beam" }},
		{"load off the span", func(s *Scenario) { s.Beam.PointLoads[0].Position = 9999 }},
	}
	for _, tc := range cases {
		s, err := ByID("gantry_rail")
		if err != nil {
			tst.Fatalf("%v", err)
		}
		tc.wreck(s)
		if err := s.Validate(); err == nil {
			tst.Errorf("%s: validation must fail", tc.name)
		}
	}
}
