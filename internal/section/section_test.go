package section

import (
	"errors"
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestResolveRectangular(t *testing.T) {
	// 150×300 mm → I = 0.15·0.3³/12 = 3.375e-4 m⁴, c = 0.15 m.
	g := Geometry{Shape: Rectangular, Width: 150, Height: 300}

	props, err := g.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	approx(t, props.I, 3.375e-4, 1e-12)
	approx(t, props.C, 0.15, 1e-12)
}

func TestResolveIBeam(t *testing.T) {
	g := Geometry{Shape: IBeam, Width: 200, Height: 400, FlangeThickness: 12, WebThickness: 8}

	props, err := g.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// Gross rectangle minus the void between the flanges, in m.
	want := (0.2*math.Pow(0.4, 3) - 0.192*math.Pow(0.376, 3)) / 12
	approx(t, props.I, want, 1e-12)
	approx(t, props.C, 0.2, 1e-12)

	// An I-beam is stiffer per area but softer than the gross rectangle.
	if gross := 0.2 * math.Pow(0.4, 3) / 12; props.I >= gross {
		t.Fatalf("i-beam inertia %v not below gross %v", props.I, gross)
	}
}

func TestResolveCustom(t *testing.T) {
	g := Geometry{Shape: Custom, MomentOfInertia: 337500, ExtremeFiber: 150}

	props, err := g.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	approx(t, props.I, 3.375e-4, 1e-12)
	approx(t, props.C, 0.15, 1e-12)
}

func TestResolveInvalidGeometry(t *testing.T) {
	cases := []struct {
		name string
		g    Geometry
	}{
		{"zero width rectangle", Geometry{Shape: Rectangular, Width: 0, Height: 300}},
		{"negative height rectangle", Geometry{Shape: Rectangular, Width: 150, Height: -1}},
		{"zero flange", Geometry{Shape: IBeam, Width: 200, Height: 400, FlangeThickness: 0, WebThickness: 8}},
		{"web as wide as flange", Geometry{Shape: IBeam, Width: 200, Height: 400, FlangeThickness: 12, WebThickness: 200}},
		{"flanges meet", Geometry{Shape: IBeam, Width: 200, Height: 400, FlangeThickness: 200, WebThickness: 8}},
		{"non-positive custom inertia", Geometry{Shape: Custom, MomentOfInertia: 0, ExtremeFiber: 150}},
		{"non-positive custom fiber", Geometry{Shape: Custom, MomentOfInertia: 100, ExtremeFiber: -5}},
		{"unknown shape", Geometry{Shape: Shape(42)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.g.Resolve()
			if err == nil {
				t.Fatalf("expected geometry error")
			}
			var geomErr *GeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("expected *GeometryError, got %T: %v", err, err)
			}
		})
	}
}

func TestIBeamVoidNeverNegative(t *testing.T) {
	// Just inside the validity limits the void must stay smaller than the
	// gross rectangle, keeping I positive.
	g := Geometry{Shape: IBeam, Width: 100, Height: 200, FlangeThickness: 99.9, WebThickness: 99.9}

	props, err := g.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if props.I <= 0 {
		t.Fatalf("expected positive inertia, got %v", props.I)
	}
}
