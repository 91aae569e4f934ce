// Package engine computes the static response of a single-span prismatic
// beam: support reactions, bending moment, shear force and elastic
// deflection along the span, and the peak bending stress.
//
// The engine is a pure function of an immutable BeamSpec. It holds no
// state between calls and is safe to invoke from any number of
// concurrent callers.
package engine

import (
	"github.com/alexiusacademia/gobeam/internal/section"
)

// SupportType identifies the support condition of the span.
type SupportType int

const (
	// SimplySupported rests on two supports free to rotate, carrying no
	// end moment.
	SimplySupported SupportType = iota
	// Cantilever is rigidly fixed at x=0 and free at x=L.
	Cantilever
)

// String returns the display name of the support condition.
func (s SupportType) String() string {
	switch s {
	case SimplySupported:
		return "simply supported"
	case Cantilever:
		return "cantilever"
	}
	return "unknown"
}

// LoadType identifies the load pattern applied to the span.
type LoadType int

const (
	// PointLoad is a single concentrated load at a position along the span.
	PointLoad LoadType = iota
	// UniformLoad is a constant load intensity over the full span.
	UniformLoad
)

// String returns the display name of the load pattern.
func (l LoadType) String() string {
	switch l {
	case PointLoad:
		return "point load"
	case UniformLoad:
		return "uniform load"
	}
	return "unknown"
}

// BeamSpec is the full input for one analysis, in display units.
// It is constructed once per request and never mutated.
type BeamSpec struct {
	Span    float64 // L - span length (m)
	Support SupportType
	Load    LoadType

	// Magnitude is P in kN for a point load, w in kN/m for a uniform load.
	Magnitude float64

	// Position is the point-load position a from the left end (m).
	// Ignored for uniform loads.
	Position float64

	Section        section.Geometry
	ElasticModulus float64 // E (GPa)
}

// DiagramPoint is one sampled station of the response diagrams.
type DiagramPoint struct {
	X          float64 // position along span (m)
	Moment     float64 // bending moment (kN-m)
	Shear      float64 // shear force (kN)
	Deflection float64 // elastic deflection (mm)
}

// Reactions holds the support reactions in display units. For a simply
// supported span R1 and R2 are the left and right support forces (kN).
// For a cantilever R1 is the fixed-end shear reaction (kN) and R2 the
// fixed-end moment reaction (kN-m, negative for hogging).
type Reactions struct {
	R1 float64
	R2 float64
}

// BeamResult is the immutable output of one analysis.
type BeamResult struct {
	MaxMoment     float64 // peak bending moment magnitude (kN-m)
	MaxShear      float64 // peak shear force magnitude (kN)
	MaxStress     float64 // peak bending stress (MPa)
	MaxDeflection float64 // peak deflection magnitude (mm)

	MomentOfInertia float64 // resolved second moment of area (m⁴)

	Reactions Reactions
	Diagram   []DiagramPoint // 101 stations, ascending x over [0, L]
}
