package section

import "math"

// Polygon is a simple closed outline traversed counter-clockwise. Clockwise
// outlines are accepted and treated by the magnitude of their area.
type Polygon struct {
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// areaCentroid runs the shoelace sums once, returning the signed area and
// the centroid
func (p *Polygon) areaCentroid() (area, cx, cy float64) {
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		area += cross
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	area /= 2
	if area != 0 {
		cx /= 6 * area
		cy /= 6 * area
	}
	return area, cx, cy
}

func (p *Polygon) Area() float64 {
	area, _, _ := p.areaCentroid()
	return math.Abs(area)
}

// Centroid returns the centroid of the outline (mm)
func (p *Polygon) Centroid() (x, y float64) {
	_, cx, cy := p.areaCentroid()
	return cx, cy
}

// MomentOfInertia returns I about the horizontal axis through the centroid,
// from the shoelace second-moment sum shifted by the parallel axis rule
func (p *Polygon) MomentOfInertia() float64 {
	area, _, cy := p.areaCentroid()
	n := len(p.Vertices)
	var ix float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		yi, yj := p.Vertices[i].Y, p.Vertices[j].Y
		cross := p.Vertices[i].X*yj - p.Vertices[j].X*yi
		ix += cross * (yi*yi + yi*yj + yj*yj)
	}
	ix /= 12
	ic := ix - area*cy*cy
	if area < 0 {
		return -ic
	}
	return ic
}

// ExtremeFiber returns the larger distance from the centroid to the top or
// bottom of the outline (mm)
func (p *Polygon) ExtremeFiber() float64 {
	_, _, cy := p.areaCentroid()
	minY, maxY := p.boundsY()
	return math.Max(maxY-cy, cy-minY)
}

func (p *Polygon) boundsY() (minY, maxY float64) {
	minY, maxY = p.Vertices[0].Y, p.Vertices[0].Y
	for _, v := range p.Vertices[1:] {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minY, maxY
}

func (p *Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &ValidationError{"polygon must have at least 3 vertices"}
	}
	area, _, _ := p.areaCentroid()
	if area == 0 {
		return &ValidationError{"polygon outline encloses no area"}
	}
	return nil
}
