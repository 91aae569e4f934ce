package engine

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/units"
)

// DiagramStations is the number of evenly spaced sampling stations over
// the span, both endpoints included.
const DiagramStations = 101

// sampleDiagram evaluates the response functions at every station.
// Moment and shear are converted to kN-m/kN and rounded to two decimals
// for display; deflection is reported in mm. x_i = L·i/100 so the last
// station lands exactly on L.
func sampleDiagram(lc *loadCase, span float64) []DiagramPoint {
	points := make([]DiagramPoint, DiagramStations)
	for i := range points {
		x := span * (float64(i) / float64(DiagramStations-1))
		points[i] = DiagramPoint{
			X:          x,
			Moment:     round2(units.NToKN(lc.moment(x))),
			Shear:      round2(units.NToKN(lc.shear(x))),
			Deflection: units.MToMm(lc.deflection(x)),
		}
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
