package engine

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/units"
)

// Compute validates the spec and produces the full analysis result, or a
// typed validation error. It never returns a partially computed result:
// every precondition is checked before any load-case evaluation, and a
// non-finite outcome (overflowed input magnitudes) is rejected the same
// way.
func Compute(spec BeamSpec) (*BeamResult, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	props, err := spec.Section.Resolve()
	if err != nil {
		return nil, err
	}

	// Display → SI once, up front. Every formula below runs in N, m, Pa.
	l := spec.Span
	p := units.KNToN(spec.Magnitude)
	e := units.GPaToPa(spec.ElasticModulus)
	ei := e * props.I

	lc := solveLoadCase(spec.Support, spec.Load, l, p, spec.Position, ei)
	diagram := sampleDiagram(lc, l)

	var maxDeflection float64
	for _, pt := range diagram {
		if !isFinite(pt.Moment) || !isFinite(pt.Shear) || !isFinite(pt.Deflection) {
			return nil, loadErrorf("inputs overflow floating-point range at x=%.3f m", pt.X)
		}
		if d := math.Abs(pt.Deflection); d > maxDeflection {
			maxDeflection = d
		}
	}

	maxStress := units.PaToMPa(lc.peakMoment * props.C / props.I)
	if !isFinite(lc.peakMoment) || !isFinite(lc.peakShear) || !isFinite(maxStress) {
		return nil, loadErrorf("inputs overflow floating-point range")
	}

	return &BeamResult{
		MaxMoment:       units.NToKN(lc.peakMoment),
		MaxShear:        units.NToKN(lc.peakShear),
		MaxStress:       maxStress,
		MaxDeflection:   maxDeflection,
		MomentOfInertia: props.I,
		Reactions: Reactions{
			R1: units.NToKN(lc.r1),
			R2: units.NToKN(lc.r2),
		},
		Diagram: diagram,
	}, nil
}

func validate(spec BeamSpec) error {
	if spec.Span <= 0 {
		return loadErrorf("span length must be positive: L=%.3f m", spec.Span)
	}
	if spec.Magnitude <= 0 {
		return loadErrorf("load magnitude must be positive: %.3f", spec.Magnitude)
	}
	if spec.ElasticModulus <= 0 {
		return loadErrorf("elastic modulus must be positive: E=%.3f GPa", spec.ElasticModulus)
	}
	if spec.Load == PointLoad && (spec.Position < 0 || spec.Position > spec.Span) {
		return positionErrorf("load position a=%.3f m outside span [0, %.3f]", spec.Position, spec.Span)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
