// Package section resolves cross-section geometry into the two elastic
// properties the beam formulas need: the second moment of area I and the
// distance c from the neutral axis to the extreme fiber.
package section

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/units"
)

// Shape identifies the cross-section model.
type Shape int

const (
	// Rectangular is a solid rectangle defined by width and height.
	Rectangular Shape = iota
	// IBeam is a symmetric I-section defined by overall width and height
	// plus flange and web thicknesses.
	IBeam
	// Custom supplies I and c directly for sections not covered by the
	// built-in models.
	Custom
)

// String returns the display name of the shape.
func (s Shape) String() string {
	switch s {
	case Rectangular:
		return "rectangular"
	case IBeam:
		return "i-beam"
	case Custom:
		return "custom"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Geometry describes a cross-section in the display units the user
// enters: dimensions in mm, moment of inertia in cm⁴.
// Only the fields of the selected Shape are read.
type Geometry struct {
	Shape Shape

	// Rectangular and IBeam (mm)
	Width  float64 // b - overall width
	Height float64 // h - overall height

	// IBeam only (mm)
	FlangeThickness float64 // tf
	WebThickness    float64 // tw

	// Custom only
	MomentOfInertia float64 // I (cm⁴)
	ExtremeFiber    float64 // c - neutral axis to outer face (mm)
}

// Properties holds the resolved elastic section properties in base SI.
type Properties struct {
	I float64 // second moment of area (m⁴)
	C float64 // extreme fiber distance (m)
}

// GeometryError reports a non-positive or structurally inconsistent
// cross-section dimension.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErrorf(format string, args ...any) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks the dimensions of the selected shape.
func (g Geometry) Validate() error {
	switch g.Shape {
	case Rectangular:
		if g.Width <= 0 || g.Height <= 0 {
			return geometryErrorf("invalid rectangular section: b=%.2f mm, h=%.2f mm", g.Width, g.Height)
		}
	case IBeam:
		if g.Width <= 0 || g.Height <= 0 || g.FlangeThickness <= 0 || g.WebThickness <= 0 {
			return geometryErrorf("invalid i-beam section: b=%.2f mm, h=%.2f mm, tf=%.2f mm, tw=%.2f mm",
				g.Width, g.Height, g.FlangeThickness, g.WebThickness)
		}
		if g.WebThickness >= g.Width {
			return geometryErrorf("web thickness tw=%.2f mm must be less than flange width b=%.2f mm", g.WebThickness, g.Width)
		}
		if 2*g.FlangeThickness >= g.Height {
			return geometryErrorf("flanges 2·tf=%.2f mm must be less than section height h=%.2f mm", 2*g.FlangeThickness, g.Height)
		}
	case Custom:
		if g.MomentOfInertia <= 0 {
			return geometryErrorf("moment of inertia must be positive: I=%.2f cm⁴", g.MomentOfInertia)
		}
		if g.ExtremeFiber <= 0 {
			return geometryErrorf("extreme fiber distance must be positive: c=%.2f mm", g.ExtremeFiber)
		}
	default:
		return geometryErrorf("unknown section shape %d", int(g.Shape))
	}
	return nil
}

// Resolve validates the geometry and computes I (m⁴) and c (m).
func (g Geometry) Resolve() (*Properties, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch g.Shape {
	case Rectangular:
		b := units.MmToM(g.Width)
		h := units.MmToM(g.Height)
		return &Properties{
			I: b * h * h * h / 12,
			C: h / 2,
		}, nil

	case IBeam:
		// Gross rectangle minus the void between the flanges.
		b := units.MmToM(g.Width)
		h := units.MmToM(g.Height)
		bv := units.MmToM(g.Width - g.WebThickness)
		hv := units.MmToM(g.Height - 2*g.FlangeThickness)
		return &Properties{
			I: (b*h*h*h - bv*hv*hv*hv) / 12,
			C: h / 2,
		}, nil

	default: // Custom
		return &Properties{
			I: units.Cm4ToM4(g.MomentOfInertia),
			C: units.MmToM(g.ExtremeFiber),
		}, nil
	}
}
