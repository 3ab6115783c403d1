package section

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPolygon01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon01. rectangle as an outline")

	p := &Polygon{Vertices: []Point{{0, 0}, {60, 0}, {60, 40}, {0, 40}}}
	props, err := PropertiesOf(p)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}

	chk.Float64(tst, "A", 1e-10, props.Area, 2400)
	chk.Float64(tst, "I", 1e-8, props.I, 60*64000.0/12.0)
	chk.Float64(tst, "c", 1e-10, props.C, 20)

	cx, cy := p.Centroid()
	chk.Float64(tst, "cx", 1e-10, cx, 30)
	chk.Float64(tst, "cy", 1e-10, cy, 20)
}

func TestPolygon02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon02. tee outline against the composite sum")

	// 100x20 flange on a 20x80 web
	p := &Polygon{Vertices: []Point{
		{40, 0}, {60, 0}, {60, 80}, {100, 80},
		{100, 100}, {0, 100}, {0, 80}, {40, 80},
	}}
	props, err := PropertiesOf(p)
	if err != nil {
		tst.Errorf("PropertiesOf failed: %v\n", err)
		return
	}

	webA, flangeA := 20*80.0, 100*20.0
	area := webA + flangeA
	ybar := (webA*40 + flangeA*90) / area
	iWeb := 20*512000.0/12.0 + webA*(ybar-40)*(ybar-40)
	iFlange := 100*8000.0/12.0 + flangeA*(90-ybar)*(90-ybar)

	chk.Float64(tst, "A", 1e-10, props.Area, area)
	chk.Float64(tst, "I", 1e-7, props.I, iWeb+iFlange)
	chk.Float64(tst, "c", 1e-10, props.C, ybar)

	_, cy := p.Centroid()
	chk.Float64(tst, "cy", 1e-10, cy, ybar)
}

func TestPolygon03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon03. clockwise outlines measure the same")

	ccw := &Polygon{Vertices: []Point{{0, 0}, {60, 0}, {60, 40}, {0, 40}}}
	cw := &Polygon{Vertices: []Point{{0, 0}, {0, 40}, {60, 40}, {60, 0}}}

	chk.Float64(tst, "A", 1e-10, cw.Area(), ccw.Area())
	chk.Float64(tst, "I", 1e-8, cw.MomentOfInertia(), ccw.MomentOfInertia())
	chk.Float64(tst, "c", 1e-10, cw.ExtremeFiber(), ccw.ExtremeFiber())
}

func TestPolygon04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polygon04. degenerate outlines are rejected")

	for _, p := range []*Polygon{
		{},
		{Vertices: []Point{{0, 0}, {10, 0}}},
		{Vertices: []Point{{0, 0}, {10, 10}, {20, 20}}},
	} {
		if err := p.Validate(); err == nil {
			tst.Errorf("expected a validation error for %d vertices\n", len(p.Vertices))
		}
	}
}
