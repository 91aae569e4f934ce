// Package units provides the conversions between the display units used
// at the tool boundary (kN, kN/m, kN-m, GPa, MPa, mm, cm⁴) and the base
// SI units (N, N/m, N-m, Pa, m, m⁴) that every internal formula works in.
//
// All engine arithmetic happens in base SI; callers convert once on the
// way in and once on the way out, never in the middle of a formula.
package units

// Force and moment.

// KNToN converts kilonewtons to newtons. Also valid for kN/m → N/m
// and kN-m → N-m since the length factor is unchanged.
func KNToN(v float64) float64 { return v * 1000 }

// NToKN converts newtons to kilonewtons (and N-m → kN-m).
func NToKN(v float64) float64 { return v / 1000 }

// Pressure and modulus.

// GPaToPa converts gigapascals to pascals.
func GPaToPa(v float64) float64 { return v * 1e9 }

// PaToMPa converts pascals to megapascals.
func PaToMPa(v float64) float64 { return v / 1e6 }

// Length.

// MmToM converts millimetres to metres.
func MmToM(v float64) float64 { return v / 1000 }

// MToMm converts metres to millimetres.
func MToMm(v float64) float64 { return v * 1000 }

// Second moment of area.

// Cm4ToM4 converts cm⁴ to m⁴.
func Cm4ToM4(v float64) float64 { return v / 1e8 }

// M4ToCm4 converts m⁴ to cm⁴.
func M4ToCm4(v float64) float64 { return v * 1e8 }
