package units

import (
	"math"
	"testing"
)

func TestScaleFactors(t *testing.T) {
	if got := KNToN(100); got != 100e3 {
		t.Fatalf("KNToN(100) = %v", got)
	}
	if got := GPaToPa(200); got != 2e11 {
		t.Fatalf("GPaToPa(200) = %v", got)
	}
	if got := MmToM(300); got != 0.3 {
		t.Fatalf("MmToM(300) = %v", got)
	}
	if got := Cm4ToM4(337500); got != 3.375e-4 {
		t.Fatalf("Cm4ToM4(337500) = %v", got)
	}
	if got := PaToMPa(5.5e8); got != 550 {
		t.Fatalf("PaToMPa(5.5e8) = %v", got)
	}
}

func TestRoundTrips(t *testing.T) {
	values := []float64{1, 0.001, 12.5, 337500, 9.81e6}

	for _, v := range values {
		if got := NToKN(KNToN(v)); math.Abs(got-v) > 1e-12*v {
			t.Fatalf("kN round trip: %v -> %v", v, got)
		}
		if got := MToMm(MmToM(v)); math.Abs(got-v) > 1e-12*v {
			t.Fatalf("mm round trip: %v -> %v", v, got)
		}
		if got := M4ToCm4(Cm4ToM4(v)); math.Abs(got-v) > 1e-12*v {
			t.Fatalf("cm⁴ round trip: %v -> %v", v, got)
		}
	}
}
