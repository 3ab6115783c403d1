package section

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func TestShapes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shapes01. solid rectangle")

	r := &Rectangular{Width: 80, Height: 120}
	p, err := PropertiesOf(r)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}

	chk.Float64(tst, "A", 1e-10, p.Area, 9600)
	chk.Float64(tst, "I", 1e-8, p.I, 80*120*120*120/12.0)
	chk.Float64(tst, "c", 1e-10, p.C, 60)
	chk.Float64(tst, "S", 1e-8, p.S, 80*120*120/6.0)
	chk.Float64(tst, "J", 1e-10, p.J, 0)
}

func TestShapes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shapes02. hollow rectangular tube")

	h := &HollowRectangular{Width: 60, Height: 40, Thickness: 4}
	p, err := PropertiesOf(h)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}

	chk.Float64(tst, "A", 1e-10, p.Area, 60*40-52*32.0)
	chk.Float64(tst, "I", 1e-8, p.I, (60*64000.0-52*32768.0)/12.0)
	chk.Float64(tst, "c", 1e-10, p.C, 20)
	chk.Float64(tst, "S", 1e-8, p.S, (60*64000.0-52*32768.0)/12.0/20.0)
}

func TestShapes03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shapes03. solid and hollow round bars")

	c := &SolidCircular{Diameter: 50}
	p, err := PropertiesOf(c)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-8, p.Area, math.Pi*2500/4)
	chk.Float64(tst, "I", 1e-8, p.I, math.Pi*6.25e6/64)
	chk.Float64(tst, "c", 1e-10, p.C, 25)
	chk.Float64(tst, "J", 1e-8, p.J, math.Pi*6.25e6/32)

	t := &CircularTube{Outer: 16, Inner: 12}
	p, err = PropertiesOf(t)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A tube", 1e-8, p.Area, 28*math.Pi)
	chk.Float64(tst, "I tube", 1e-8, p.I, 700*math.Pi)
	chk.Float64(tst, "J tube", 1e-8, p.J, 1400*math.Pi)
	chk.Float64(tst, "c tube", 1e-10, p.C, 8)
	chk.Float64(tst, "S tube", 1e-8, p.S, 700*math.Pi/8)
}

func TestShapes04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shapes04. bad dimensions are rejected")

	for _, s := range []Shape{
		&Rectangular{Width: 0, Height: 100},
		&Rectangular{Width: 50, Height: -1},
		&HollowRectangular{Width: 60, Height: 40, Thickness: 0},
		&HollowRectangular{Width: 60, Height: 40, Thickness: 20},
		&SolidCircular{Diameter: 0},
		&CircularTube{Outer: 0, Inner: 0},
		&CircularTube{Outer: 16, Inner: 16},
		&CircularTube{Outer: 16, Inner: -2},
		&Polygon{Vertices: []Point{{0, 0}, {1, 0}}},
	} {
		if _, err := PropertiesOf(s); err == nil {
			tst.Errorf("expected a validation error for %#v\n", s)
		}
	}
}

func TestDefinition01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("definition01. given values take over from geometry")

	d := &Definition{
		Kind:      KindHollowRectangular,
		Width:     60,
		Height:    40,
		Thickness: 4,
		GivenI:    3.1e6,
		GivenC:    30,
	}

	comp, err := d.ComputedProperties()
	if err != nil {
		tst.Errorf("ComputedProperties failed: %v\n", err)
		return
	}
	chk.Float64(tst, "computed I", 1e-8, comp.I, (60*64000.0-52*32768.0)/12.0)
	chk.Float64(tst, "computed c", 1e-10, comp.C, 20)

	eff, err := d.Resolve()
	if err != nil {
		tst.Errorf("Resolve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "effective I", 1e-10, eff.I, 3.1e6)
	chk.Float64(tst, "effective c", 1e-10, eff.C, 30)
	chk.Float64(tst, "effective S", 1e-8, eff.S, 3.1e6/30.0)
	if !d.HasOverrides() {
		tst.Errorf("overrides not reported\n")
	}
}

func TestDefinition02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("definition02. tube bore from wall thickness")

	d := &Definition{Kind: KindCircularTube, Outer: 50, Thickness: 4}
	p, err := d.ComputedProperties()
	if err != nil {
		tst.Errorf("ComputedProperties failed: %v\n", err)
		return
	}
	chk.Float64(tst, "I", 1e-8, p.I, math.Pi*(6.25e6-3111696.0)/64)
	chk.Float64(tst, "c", 1e-10, p.C, 25)
}

func TestDefinition03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("definition03. stated properties without geometry")

	d := &Definition{Kind: KindGiven, GivenI: 8.2e6, GivenC: 75}
	p, err := d.Resolve()
	if err != nil {
		tst.Errorf("Resolve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "I", 1e-10, p.I, 8.2e6)
	chk.Float64(tst, "S", 1e-8, p.S, 8.2e6/75.0)

	if _, err := d.ComputedProperties(); err == nil {
		tst.Errorf("expected an error computing from a geometry-free section\n")
	}

	bad := &Definition{Kind: KindGiven, GivenI: 8.2e6}
	if _, err := bad.Resolve(); err == nil {
		tst.Errorf("expected an error without a given extreme fiber\n")
	}

	unknown := &Definition{Kind: "t-beam"}
	if _, err := unknown.Resolve(); err == nil {
		tst.Errorf("expected an error for an unknown kind\n")
	}
}
