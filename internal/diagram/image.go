package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// ExportCurve renders one response curve to an image file. The format is
// chosen from the file extension (.png, .svg or .pdf); anything else
// falls back to PNG.
func ExportCurve(c Curve, points []engine.DiagramPoint, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("empty diagram")
	}

	p := plot.New()
	p.Title.Text = c.label()
	p.X.Label.Text = "Position x (m)"
	p.Y.Label.Text = c.label()

	values := c.values(points)
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: values[i]}
	}

	curve, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(curve)

	// Zero baseline for reference.
	span := points[len(points)-1].X
	baseline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: span, Y: 0},
	})
	if err != nil {
		return err
	}
	baseline.LineStyle.Width = vg.Points(1)
	baseline.LineStyle.Color = color.Gray{Y: 128}
	baseline.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(baseline)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportAll writes the moment, shear and deflection curves to three
// files derived from filename by inserting -moment/-shear/-deflection
// before the extension.
func ExportAll(points []engine.DiagramPoint, filename string) error {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if ext == "" {
		ext = ".png"
	}

	for _, c := range []Curve{Moment, Shear, Deflection} {
		var suffix string
		switch c {
		case Moment:
			suffix = "-moment"
		case Shear:
			suffix = "-shear"
		case Deflection:
			suffix = "-deflection"
		}
		if err := ExportCurve(c, points, base+suffix+ext); err != nil {
			return fmt.Errorf("export %s diagram: %w", strings.TrimPrefix(suffix, "-"), err)
		}
	}
	return nil
}
