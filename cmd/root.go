package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Single-Span Beam Analysis Tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for the elastic analysis of single-span beams.

Given the support condition, load pattern, cross-section geometry and
material stiffness, gobeam computes:
  - Support reactions
  - Bending moment, shear force and deflection diagrams
  - Peak bending stress and deflection

Supported cases: simply supported or cantilever spans, carrying a
concentrated point load or a uniformly distributed load.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Single-Span Beam Analyzer                            ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the elastic analysis of single-span beams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported and cantilever spans")
		fmt.Println("    • Point and uniformly distributed loads")
		fmt.Println("    • Rectangular, I-beam and custom cross sections")
		fmt.Println("    • Moment, shear and deflection diagrams (terminal and image)")
		fmt.Println("    • PDF calculation reports and a local analysis history")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
