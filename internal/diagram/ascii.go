package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// Curve selects one of the three response diagrams.
type Curve int

const (
	Moment Curve = iota
	Shear
	Deflection
)

func (c Curve) label() string {
	switch c {
	case Moment:
		return "Bending Moment (kN-m)"
	case Shear:
		return "Shear Force (kN)"
	case Deflection:
		return "Deflection (mm)"
	}
	return ""
}

func (c Curve) values(points []engine.DiagramPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		switch c {
		case Moment:
			out[i] = p.Moment
		case Shear:
			out[i] = p.Shear
		case Deflection:
			out[i] = p.Deflection
		}
	}
	return out
}

// PlotCurve renders one response curve as an ASCII chart for terminal
// output.
func PlotCurve(c Curve, points []engine.DiagramPoint) string {
	if len(points) == 0 {
		return ""
	}
	span := points[len(points)-1].X

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(c.values(points),
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Precision(1),
		asciigraph.Caption(c.label()),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  x = 0 m ... %.2f m (left to right)\n", span))
	return sb.String()
}

// PlotAll renders moment, shear and deflection charts in sequence.
func PlotAll(points []engine.DiagramPoint) string {
	var sb strings.Builder
	for _, c := range []Curve{Moment, Shear, Deflection} {
		sb.WriteString(PlotCurve(c, points))
	}
	return sb.String()
}

// SummaryBox frames a titled list of result lines in a double-line box.
func SummaryBox(title string, lines []string) string {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	var sb strings.Builder
	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
