// Package report writes a one-page PDF calculation sheet for an
// analysis result.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/engine"
	"github.com/alexiusacademia/gobeam/internal/units"
)

// Write renders the spec and result to a PDF file.
func Write(spec engine.BeamSpec, result *engine.BeamResult, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Analysis Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	heading("Input")
	row("Span length (L)", fmt.Sprintf("%.2f m", spec.Span))
	row("Support condition", spec.Support.String())
	row("Load pattern", spec.Load.String())
	if spec.Load == engine.PointLoad {
		row("Load magnitude (P)", fmt.Sprintf("%.2f kN", spec.Magnitude))
		row("Load position (a)", fmt.Sprintf("%.2f m", spec.Position))
	} else {
		row("Load intensity (w)", fmt.Sprintf("%.2f kN/m", spec.Magnitude))
	}
	row("Elastic modulus (E)", fmt.Sprintf("%.1f GPa", spec.ElasticModulus))
	row("Cross section", spec.Section.Shape.String())
	pdf.Ln(4)

	heading("Section Properties")
	row("Moment of inertia (I)", fmt.Sprintf("%.2f cm4", units.M4ToCm4(result.MomentOfInertia)))
	pdf.Ln(4)

	heading("Reactions")
	if spec.Support == engine.Cantilever {
		row("Fixed-end shear (R1)", fmt.Sprintf("%.2f kN", result.Reactions.R1))
		row("Fixed-end moment (R2)", fmt.Sprintf("%.2f kN-m", result.Reactions.R2))
	} else {
		row("Left support (R1)", fmt.Sprintf("%.2f kN", result.Reactions.R1))
		row("Right support (R2)", fmt.Sprintf("%.2f kN", result.Reactions.R2))
	}
	pdf.Ln(4)

	heading("Peak Response")
	row("Max bending moment", fmt.Sprintf("%.2f kN-m", result.MaxMoment))
	row("Max shear force", fmt.Sprintf("%.2f kN", result.MaxShear))
	row("Max bending stress", fmt.Sprintf("%.2f MPa", result.MaxStress))
	row("Max deflection", fmt.Sprintf("%.3f mm", result.MaxDeflection))

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	return pdf.OutputFileAndClose(filename)
}
