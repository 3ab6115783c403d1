package beam

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCrit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crit01. extremes under symmetric point loads")

	b := &Beam{
		Length: 2000,
		Supports: []Support{
			{Position: 0, Kind: Pinned},
			{Position: 2000, Kind: Roller},
		},
		PointLoads: []PointLoad{
			{Position: 200, Magnitude: 400},
			{Position: 600, Magnitude: 400},
			{Position: 1000, Magnitude: 400},
			{Position: 1400, Magnitude: 400},
			{Position: 1800, Magnitude: 400},
		},
	}

	a, err := b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}
	ext := a.Critical(0)

	chk.Float64(tst, "V_max", 1e-10, ext.VMax.Value, 1000)
	chk.Float64(tst, "x(V_max)", 1e-10, ext.VMax.Position, 0)
	chk.Float64(tst, "V_min", 1e-10, ext.VMin.Value, -1000)
	chk.Float64(tst, "x(V_min)", 1e-10, ext.VMin.Position, 2000)
	chk.Float64(tst, "M_max", 1e-8, ext.MMax.Value, 520000)
	chk.Float64(tst, "x(M_max)", 1e-10, ext.MMax.Position, 1000)
	chk.Float64(tst, "M_min", 1e-10, ext.MMin.Value, 0)

	gov := ext.GoverningMoment()
	chk.Float64(tst, "governing M", 1e-8, gov.Value, 520000)
	chk.String(tst, gov.Kind, KindMomentMax)
	chk.Float64(tst, "|M|max", 1e-8, ext.MaxAbsMoment(), 520000)
	chk.Float64(tst, "|V|max", 1e-10, ext.MaxAbsShear(), 1000)
}

func TestCrit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crit02. zero crossing inside a distributed load")

	b := &Beam{
		Length: 3000,
		Supports: []Support{
			{Position: 0, Kind: Pinned},
			{Position: 2500, Kind: Roller},
		},
		PointLoads:       []PointLoad{{Position: 3000, Magnitude: 600}},
		DistributedLoads: []DistributedLoad{{Start: 0, End: 3000, Intensity: 0.3}},
	}

	a, err := b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}

	// V = 240 - 0.3x vanishes at x = 800, off any uniform grid step
	ext := a.Critical(1001)
	chk.Float64(tst, "x(M_max)", 1e-8, ext.MMax.Position, 800)
	chk.Float64(tst, "M_max", 1e-6, ext.MMax.Value, 96000)
	chk.Float64(tst, "x(M_min)", 1e-8, ext.MMin.Position, 2500)
	chk.Float64(tst, "M_min", 1e-6, ext.MMin.Value, -337500)
	chk.Float64(tst, "V_max", 1e-8, ext.VMax.Value, 750)
	chk.Float64(tst, "V_min", 1e-8, ext.VMin.Value, -510)
}

func TestCrit03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crit03. both shear extremes land on one station")

	b := &Beam{
		Length: 4000,
		Supports: []Support{
			{Position: 0, Kind: Pinned},
			{Position: 3000, Kind: Roller},
		},
		PointLoads: []PointLoad{
			{Position: 1500, Magnitude: 7000},
			{Position: 4000, Magnitude: 4200},
		},
		DistributedLoads: []DistributedLoad{{Start: 0, End: 4000, Intensity: 0.8}},
	}

	a, err := b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}
	ext := a.Critical(0)

	// the right support carries the jump from the largest negative to the
	// largest positive shear
	chk.Float64(tst, "x(V_max)", 1e-10, ext.VMax.Position, 3000)
	chk.Float64(tst, "V_max", 1e-8, ext.VMax.Value, 5000)
	chk.Float64(tst, "x(V_min)", 1e-10, ext.VMin.Position, 3000)
	chk.Float64(tst, "V_min", 1e-8, ext.VMin.Value, 14400-33.7e6/3000.0-9400)

	chk.Float64(tst, "M_max", 1e-6, ext.MMax.Value, 3.85e6)
	chk.Float64(tst, "x(M_max)", 1e-10, ext.MMax.Position, 1500)
	chk.Float64(tst, "M_min", 1e-6, ext.MMin.Value, -4.6e6)
	chk.Float64(tst, "x(M_min)", 1e-10, ext.MMin.Position, 3000)

	gov := ext.GoverningMoment()
	chk.String(tst, gov.Kind, KindMomentMin)
}

func TestCrit04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crit04. cantilever extremes sit at the wall")

	b := &Beam{
		Length:           2500,
		Supports:         []Support{{Position: 0, Kind: Fixed}},
		PointLoads:       []PointLoad{{Position: 2500, Magnitude: 1200}},
		DistributedLoads: []DistributedLoad{{Start: 0, End: 2500, Intensity: 0.075}},
	}

	a, err := b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}
	ext := a.Critical(0)

	chk.Float64(tst, "V_min", 1e-10, ext.VMin.Value, -1387.5)
	chk.Float64(tst, "x(V_min)", 1e-10, ext.VMin.Position, 0)
	chk.Float64(tst, "V_max", 1e-10, ext.VMax.Value, -1200)
	chk.Float64(tst, "M_min", 1e-8, ext.MMin.Value, -(1200*2500 + 187.5*1250))
	chk.Float64(tst, "x(M_min)", 1e-10, ext.MMin.Position, 0)
	chk.Float64(tst, "M_max", 1e-10, ext.MMax.Value, 0)

	gov := ext.GoverningShear()
	chk.String(tst, gov.Kind, KindShearMin)
	chk.Float64(tst, "|V|max", 1e-10, ext.MaxAbsShear(), 1387.5)
}

func TestCrit05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("crit05. grid resolution is clamped to a sane range")

	b := &Beam{
		Length: 1000,
		Supports: []Support{
			{Position: 0, Kind: Pinned},
			{Position: 1000, Kind: Roller},
		},
		DistributedLoads: []DistributedLoad{{Start: 0, End: 1000, Intensity: 2}},
	}

	a, err := b.Analyze()
	if err != nil {
		tst.Errorf("Analyze failed: %v\n", err)
		return
	}

	for _, n := range []int{-1, 0, 7, 1000, 5000, 10000, 99999} {
		ext := a.Critical(n)
		chk.Float64(tst, "M_max", 1e-6, ext.MMax.Value, 2*1000.0*1000.0/8.0)
		chk.Float64(tst, "x(M_max)", 1e-8, ext.MMax.Position, 500)
		chk.Float64(tst, "V_max", 1e-8, ext.VMax.Value, 1000)
		chk.Float64(tst, "V_min", 1e-8, ext.VMin.Value, -1000)
	}
}
