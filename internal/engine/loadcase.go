package engine

import "math"

// loadCase holds the solved reactions and the closed-form response
// functions for one support×load combination. Everything here is in
// base SI units: forces in N, moments in N-m, deflections in m.
type loadCase struct {
	r1 float64 // support/shear reaction (N)
	r2 float64 // second support force (N) or fixed-end moment (N-m)

	moment     func(x float64) float64 // N-m
	shear      func(x float64) float64 // N
	deflection func(x float64) float64 // m

	// Peak magnitudes derived analytically per variant so they are exact
	// regardless of where the sampling stations fall.
	peakMoment float64 // N-m
	peakShear  float64 // N
}

// solveLoadCase dispatches on the support and load variant. Inputs are
// already converted to SI: span l (m), magnitude p (N or N/m), point-load
// position a (m), flexural rigidity ei (N-m²).
func solveLoadCase(support SupportType, load LoadType, l, p, a, ei float64) *loadCase {
	switch {
	case support == SimplySupported && load == PointLoad:
		return simplePoint(l, p, a, ei)
	case support == SimplySupported && load == UniformLoad:
		return simpleUniform(l, p, ei)
	case support == Cantilever && load == PointLoad:
		return cantileverPoint(p, a, ei)
	default:
		return cantileverUniform(l, p, ei)
	}
}

// simplePoint: simply supported span with a concentrated load P at x=a.
func simplePoint(l, p, a, ei float64) *loadCase {
	b := l - a
	r1 := p * b / l
	r2 := p * a / l

	return &loadCase{
		r1: r1,
		r2: r2,
		moment: func(x float64) float64 {
			if x <= a {
				return r1 * x
			}
			return r1*x - p*(x-a)
		},
		shear: func(x float64) float64 {
			if x < a {
				return r1
			}
			return r1 - p
		},
		deflection: func(x float64) float64 {
			if x <= a {
				return p * b * x * (l*l - b*b - x*x) / (6 * ei * l)
			}
			xr := l - x
			return p * a * xr * (l*l - a*a - xr*xr) / (6 * ei * l)
		},
		peakMoment: p * a * b / l, // at the load point
		peakShear:  math.Max(r1, r2),
	}
}

// simpleUniform: simply supported span with uniform intensity w.
func simpleUniform(l, w, ei float64) *loadCase {
	r := w * l / 2

	return &loadCase{
		r1: r,
		r2: r,
		moment: func(x float64) float64 {
			return r*x - w*x*x/2
		},
		shear: func(x float64) float64 {
			return r - w*x
		},
		deflection: func(x float64) float64 {
			return w * x * (l*l*l - 2*l*x*x + x*x*x) / (24 * ei)
		},
		peakMoment: w * l * l / 8, // at midspan
		peakShear:  r,
	}
}

// cantileverPoint: cantilever fixed at x=0 with a concentrated load P at
// x=a. Moment and shear are taken as exactly zero beyond the load
// position; that is only exact when the load sits at the free tip (a=L),
// and is kept as a known modeling approximation for interior loads.
func cantileverPoint(p, a, ei float64) *loadCase {
	r1 := p
	r2 := -p * a // fixed-end moment, hogging

	return &loadCase{
		r1: r1,
		r2: r2,
		moment: func(x float64) float64 {
			if x < a {
				return r2 + r1*x
			}
			return 0
		},
		shear: func(x float64) float64 {
			if x < a {
				return r1
			}
			return 0
		},
		deflection: func(x float64) float64 {
			if x <= a {
				return p * x * x * (3*a - x) / (6 * ei)
			}
			return p * a * a * (3*x - a) / (6 * ei)
		},
		peakMoment: p * a, // at the fixed end
		peakShear:  p,
	}
}

// cantileverUniform: cantilever fixed at x=0 with uniform intensity w.
func cantileverUniform(l, w, ei float64) *loadCase {
	r1 := w * l
	r2 := -w * l * l / 2

	return &loadCase{
		r1: r1,
		r2: r2,
		moment: func(x float64) float64 {
			return r2 + r1*x - w*x*x/2
		},
		shear: func(x float64) float64 {
			return r1 - w*x
		},
		deflection: func(x float64) float64 {
			return w * x * x * (x*x + 6*l*l - 4*l*x) / (24 * ei)
		},
		peakMoment: w * l * l / 2, // at the fixed end
		peakShear:  r1,
	}
}
