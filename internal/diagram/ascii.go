package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"

	"github.com/SiliconWit/mechanics-of-materials/internal/beam"
)

// Terminal render geometry
const (
	axisWidth   = 61 // characters across the beam sketch
	graphWidth  = 64 // samples across a force graph
	graphHeight = 12
)

// DrawLoadingDiagram sketches the beam, its supports, and its loads on a
// scaled character axis
func DrawLoadingDiagram(a *beam.Analysis) string {
	b := a.Beam()
	col := func(x float64) int {
		c := int(math.Round(x / b.Length * float64(axisWidth-1)))
		if c < 0 {
			c = 0
		}
		if c >= axisWidth {
			c = axisWidth - 1
		}
		return c
	}
	blank := func() []rune { return []rune(strings.Repeat(" ", axisWidth)) }

	arrows := blank()
	for _, p := range b.PointLoads {
		arrows[col(p.Position)] = '↓'
	}

	shade := blank()
	hasShade := false
	for _, w := range b.DistributedLoads {
		hasShade = true
		for c := col(w.Start); c <= col(w.End); c++ {
			shade[c] = '░'
		}
	}

	marks := blank()
	hasWall, hasBearing := false, false
	for _, s := range b.Supports {
		if s.Kind == beam.Fixed {
			marks[col(s.Position)] = '█'
			hasWall = true
		} else {
			marks[col(s.Position)] = '▲'
			hasBearing = true
		}
	}
	if b.Spring != nil {
		marks[col(b.Spring.Position)] = '§'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	if len(b.PointLoads) > 0 {
		sb.WriteString("  " + string(arrows) + "\n")
	}
	if hasShade {
		sb.WriteString("  " + string(shade) + "\n")
	}
	sb.WriteString("  " + strings.Repeat("═", axisWidth) + "\n")
	sb.WriteString("  " + string(marks) + "\n")

	left := "0"
	right := fmt.Sprintf("%g mm", b.Length)
	gap := axisWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString("  " + left + strings.Repeat(" ", gap) + right + "\n")

	var legend []string
	if len(b.PointLoads) > 0 {
		legend = append(legend, "↓ point load")
	}
	if hasShade {
		legend = append(legend, "░ distributed load")
	}
	if hasBearing {
		legend = append(legend, "▲ support")
	}
	if hasWall {
		legend = append(legend, "█ fixed end")
	}
	if b.Spring != nil {
		legend = append(legend, "§ spring")
	}
	sb.WriteString("  " + strings.Join(legend, "   ") + "\n")
	return sb.String()
}

// DrawShearGraph plots V(x) across the span for the terminal
func DrawShearGraph(a *beam.Analysis) string {
	vals := make([]float64, graphWidth)
	for i, x := range utl.LinSpace(0, a.Beam().Length, graphWidth) {
		vals[i] = a.Shear(x)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(graphHeight),
		asciigraph.Caption(fmt.Sprintf("V (N) from 0 to %g mm", a.Beam().Length)),
	)
}

// DrawMomentGraph plots M(x) across the span for the terminal, in N·m so
// the axis labels stay short
func DrawMomentGraph(a *beam.Analysis) string {
	vals := make([]float64, graphWidth)
	for i, x := range utl.LinSpace(0, a.Beam().Length, graphWidth) {
		vals[i] = a.Moment(x) / 1000
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(graphHeight),
		asciigraph.Caption(fmt.Sprintf("M (N·m) from 0 to %g mm", a.Beam().Length)),
	)
}

// DrawSeriesGraph plots an arbitrary series, for travel studies and the like
func DrawSeriesGraph(vals []float64, caption string) string {
	if len(vals) == 0 {
		return ""
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(graphHeight),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
