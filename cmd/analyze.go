package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/engine"
	"github.com/alexiusacademia/gobeam/internal/history"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/units"
	"github.com/spf13/cobra"
)

var (
	// Beam and load inputs
	analyzeSpan      float64
	analyzeSupport   string
	analyzeLoad      string
	analyzeMagnitude float64
	analyzePosition  float64
	analyzeModulus   float64

	// Cross section inputs
	analyzeSection string
	analyzeWidth   float64
	analyzeHeight  float64
	analyzeFlange  float64
	analyzeWeb     float64
	analyzeInertia float64
	analyzeFiber   float64

	// Output options
	analyzeDiagrams    bool
	analyzeExportFile  string
	analyzeReportFile  string
	analyzeSave        bool
	analyzeHistoryFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single-span beam",
	Long: `Compute reactions, moment/shear/deflection diagrams and peak bending
stress for a single-span beam.

Support conditions:
  simple      - simply supported at both ends
  cantilever  - fixed at x=0, free at x=L

Load patterns:
  point  - concentrated load P (kN) at position a (m)
  udl    - uniformly distributed load w (kN/m) over the full span

Cross sections:
  rect    - solid rectangle: --width, --height (mm)
  ibeam   - symmetric I-section: --width, --height, --flange, --web (mm)
  custom  - direct properties: --inertia (cm4), --fiber (mm)

Examples:
  # 10 m simply supported span, 100 kN point load at midspan
  gobeam analyze --span 10 --support simple --load point --magnitude 100 \
    --position 5 --section rect --width 150 --height 300 --modulus 200

  # 5 m cantilever with a 20 kN/m UDL on an I-beam, exported diagrams
  gobeam analyze --span 5 --support cantilever --load udl --magnitude 20 \
    --section ibeam --width 200 --height 400 --flange 12 --web 8 \
    --export diagrams.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Beam and load flags
	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "s", 0, "Span length L (m) [required]")
	analyzeCmd.Flags().StringVar(&analyzeSupport, "support", "simple", "Support condition: simple | cantilever")
	analyzeCmd.Flags().StringVar(&analyzeLoad, "load", "point", "Load pattern: point | udl")
	analyzeCmd.Flags().Float64VarP(&analyzeMagnitude, "magnitude", "m", 0, "Load magnitude: P (kN) or w (kN/m) [required]")
	analyzeCmd.Flags().Float64VarP(&analyzePosition, "position", "a", 0, "Point load position a from left end (m)")
	analyzeCmd.Flags().Float64VarP(&analyzeModulus, "modulus", "e", 200, "Elastic modulus E (GPa)")

	// Cross section flags
	analyzeCmd.Flags().StringVar(&analyzeSection, "section", "rect", "Cross section: rect | ibeam | custom")
	analyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Section width b (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeHeight, "height", 0, "Section height h (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeFlange, "flange", 0, "I-beam flange thickness tf (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeWeb, "web", 0, "I-beam web thickness tw (mm)")
	analyzeCmd.Flags().Float64Var(&analyzeInertia, "inertia", 0, "Custom section moment of inertia I (cm4)")
	analyzeCmd.Flags().Float64Var(&analyzeFiber, "fiber", 0, "Custom section extreme fiber distance c (mm)")

	// Output flags
	analyzeCmd.Flags().BoolVar(&analyzeDiagrams, "diagrams", true, "Print ASCII moment/shear/deflection diagrams")
	analyzeCmd.Flags().StringVar(&analyzeExportFile, "export", "", "Export diagram images (png/svg/pdf by extension)")
	analyzeCmd.Flags().StringVar(&analyzeReportFile, "report", "", "Write a PDF calculation report to this file")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Record the result in the analysis history")
	analyzeCmd.Flags().StringVar(&analyzeHistoryFile, "history-file", "", "History file location (default ~/.gobeam/history.json)")

	analyzeCmd.MarkFlagRequired("span")
	analyzeCmd.MarkFlagRequired("magnitude")
}

func parseSupport(s string) (engine.SupportType, error) {
	switch s {
	case "simple", "ss":
		return engine.SimplySupported, nil
	case "cantilever", "cant":
		return engine.Cantilever, nil
	}
	return 0, fmt.Errorf("unknown support condition %q (want simple or cantilever)", s)
}

func parseLoad(s string) (engine.LoadType, error) {
	switch s {
	case "point":
		return engine.PointLoad, nil
	case "udl", "uniform":
		return engine.UniformLoad, nil
	}
	return 0, fmt.Errorf("unknown load pattern %q (want point or udl)", s)
}

func parseSection() (section.Geometry, error) {
	switch analyzeSection {
	case "rect", "rectangular":
		return section.Geometry{
			Shape:  section.Rectangular,
			Width:  analyzeWidth,
			Height: analyzeHeight,
		}, nil
	case "ibeam", "i":
		return section.Geometry{
			Shape:           section.IBeam,
			Width:           analyzeWidth,
			Height:          analyzeHeight,
			FlangeThickness: analyzeFlange,
			WebThickness:    analyzeWeb,
		}, nil
	case "custom":
		return section.Geometry{
			Shape:           section.Custom,
			MomentOfInertia: analyzeInertia,
			ExtremeFiber:    analyzeFiber,
		}, nil
	}
	return section.Geometry{}, fmt.Errorf("unknown section %q (want rect, ibeam or custom)", analyzeSection)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	support, err := parseSupport(analyzeSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	load, err := parseLoad(analyzeLoad)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	geom, err := parseSection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	spec := engine.BeamSpec{
		Span:           analyzeSpan,
		Support:        support,
		Load:           load,
		Magnitude:      analyzeMagnitude,
		Position:       analyzePosition,
		Section:        geom,
		ElasticModulus: analyzeModulus,
	}

	result, err := engine.Compute(spec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printAnalysis(spec, result)

	if analyzeDiagrams {
		fmt.Println("DIAGRAMS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.PlotAll(result.Diagram))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportAll(result.Diagram, analyzeExportFile); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Diagram images written next to %s\n", analyzeExportFile)
	}

	if analyzeReportFile != "" {
		if err := report.Write(spec, result, analyzeReportFile); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Report written to %s\n", analyzeReportFile)
	}

	if analyzeSave {
		path := analyzeHistoryFile
		if path == "" {
			if path, err = history.DefaultPath(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		store, err := history.NewStore(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.Append(history.NewEntry(spec, result)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Result recorded in %s\n", path)
	}
}

func printAnalysis(spec engine.BeamSpec, result *engine.BeamResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SINGLE-SPAN BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", spec.Span)
	fmt.Fprintf(w, "  Support:\t%s\n", spec.Support)
	fmt.Fprintf(w, "  Load:\t%s\n", spec.Load)
	if spec.Load == engine.PointLoad {
		fmt.Fprintf(w, "  Magnitude (P):\t%.2f kN\n", spec.Magnitude)
		fmt.Fprintf(w, "  Position (a):\t%.2f m\n", spec.Position)
	} else {
		fmt.Fprintf(w, "  Intensity (w):\t%.2f kN/m\n", spec.Magnitude)
	}
	fmt.Fprintf(w, "  Section:\t%s\n", spec.Section.Shape)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.1f GPa\n", spec.ElasticModulus)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moment of Inertia (I):\t%.2f cm⁴\t(%.6e m⁴)\n",
		units.M4ToCm4(result.MomentOfInertia), result.MomentOfInertia)
	w.Flush()
	fmt.Println()

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if spec.Support == engine.Cantilever {
		fmt.Fprintf(w, "  Fixed-end shear (R1):\t%.2f kN\n", result.Reactions.R1)
		fmt.Fprintf(w, "  Fixed-end moment (R2):\t%.2f kN-m\n", result.Reactions.R2)
	} else {
		fmt.Fprintf(w, "  Left support (R1):\t%.2f kN\n", result.Reactions.R1)
		fmt.Fprintf(w, "  Right support (R2):\t%.2f kN\n", result.Reactions.R2)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.SummaryBox("PEAK RESPONSE", []string{
		fmt.Sprintf("Max Moment:     %10.2f kN-m", result.MaxMoment),
		fmt.Sprintf("Max Shear:      %10.2f kN", result.MaxShear),
		fmt.Sprintf("Max Stress:     %10.2f MPa", result.MaxStress),
		fmt.Sprintf("Max Deflection: %10.3f mm", result.MaxDeflection),
	}))
}
