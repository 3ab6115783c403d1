package xlsxio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
	"github.com/SiliconWit/mechanics-of-materials/internal/section"
)

// Cell grammars, one entry per element, entries joined by ";":
//
//	supports          0:pinned; 3000:roller
//	point_loads       1500:5000; 4000:3000
//	distributed_loads 0-4000:0.8
//	section           rect 80x120 | hollow 60x40x4 | circle 40 |
//	                  tube 50x4 | tube 16/12 | given 8.2e6:75
//
// A section may append "@ I:C" to state properties that override the
// drawn geometry, e.g. "hollow 60x40x4 @ 3.1e6:30".

func entries(cell string) []string {
	var out []string
	for _, e := range strings.Split(cell, ";") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func pair(s string) (a, b string, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expected two values separated by \":\" in %q", s)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func number(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func parseSupports(cell string) ([]beam.Support, error) {
	var out []beam.Support
	for _, e := range entries(cell) {
		pos, kind, err := pair(e)
		if err != nil {
			return nil, err
		}
		x, err := number(pos)
		if err != nil {
			return nil, err
		}
		out = append(out, beam.Support{Position: x, Kind: beam.SupportKind(strings.ToLower(kind))})
	}
	return out, nil
}

func parsePointLoads(cell string) ([]beam.PointLoad, error) {
	var out []beam.PointLoad
	for _, e := range entries(cell) {
		pos, mag, err := pair(e)
		if err != nil {
			return nil, err
		}
		x, err := number(pos)
		if err != nil {
			return nil, err
		}
		p, err := number(mag)
		if err != nil {
			return nil, err
		}
		out = append(out, beam.PointLoad{Position: x, Magnitude: p})
	}
	return out, nil
}

func parseDistributed(cell string) ([]beam.DistributedLoad, error) {
	var out []beam.DistributedLoad
	for _, e := range entries(cell) {
		span, w, err := pair(e)
		if err != nil {
			return nil, err
		}
		edges := strings.Split(span, "-")
		if len(edges) != 2 {
			return nil, fmt.Errorf("expected a start-end range in %q", e)
		}
		start, err := number(edges[0])
		if err != nil {
			return nil, err
		}
		end, err := number(edges[1])
		if err != nil {
			return nil, err
		}
		intensity, err := number(w)
		if err != nil {
			return nil, err
		}
		out = append(out, beam.DistributedLoad{Start: start, End: end, Intensity: intensity})
	}
	return out, nil
}

func parseSection(cell string) (section.Definition, error) {
	var d section.Definition
	fields := strings.Fields(strings.ToLower(cell))

	// peel off a trailing "@ I:C" override
	for i, f := range fields {
		if f != "@" {
			continue
		}
		if i+1 >= len(fields) {
			return d, fmt.Errorf("section override needs I:C after \"@\" in %q", cell)
		}
		gi, gc, err := pair(fields[i+1])
		if err != nil {
			return d, err
		}
		if d.GivenI, err = number(gi); err != nil {
			return d, err
		}
		if d.GivenC, err = number(gc); err != nil {
			return d, err
		}
		fields = fields[:i]
		break
	}
	if len(fields) != 2 {
		return d, fmt.Errorf("section cell %q needs a kind and its dimensions", cell)
	}

	kind, arg := fields[0], fields[1]
	switch kind {
	case "rect":
		dims, err := splitDims(arg, 2)
		if err != nil {
			return d, err
		}
		d.Kind = section.KindRectangular
		d.Width, d.Height = dims[0], dims[1]
	case "hollow":
		dims, err := splitDims(arg, 3)
		if err != nil {
			return d, err
		}
		d.Kind = section.KindHollowRectangular
		d.Width, d.Height, d.Thickness = dims[0], dims[1], dims[2]
	case "circle":
		v, err := number(arg)
		if err != nil {
			return d, err
		}
		d.Kind = section.KindSolidCircular
		d.Diameter = v
	case "tube":
		d.Kind = section.KindCircularTube
		if strings.Contains(arg, "/") {
			parts := strings.Split(arg, "/")
			if len(parts) != 2 {
				return d, fmt.Errorf("tube bores in %q, want OD/ID", arg)
			}
			od, err := number(parts[0])
			if err != nil {
				return d, err
			}
			id, err := number(parts[1])
			if err != nil {
				return d, err
			}
			d.Outer, d.Inner = od, id
		} else {
			dims, err := splitDims(arg, 2)
			if err != nil {
				return d, err
			}
			d.Outer, d.Thickness = dims[0], dims[1]
		}
	case "given":
		gi, gc, err := pair(arg)
		if err != nil {
			return d, err
		}
		d.Kind = section.KindGiven
		if d.GivenI, err = number(gi); err != nil {
			return d, err
		}
		if d.GivenC, err = number(gc); err != nil {
			return d, err
		}
	default:
		return d, fmt.Errorf("unknown section kind %q, want rect, hollow, circle, tube, or given", kind)
	}
	return d, nil
}

func splitDims(s string, n int) ([]float64, error) {
	parts := strings.Split(s, "x")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d dimensions separated by \"x\" in %q", n, s)
	}
	dims := make([]float64, n)
	for i, p := range parts {
		v, err := number(p)
		if err != nil {
			return nil, err
		}
		dims[i] = v
	}
	return dims, nil
}
