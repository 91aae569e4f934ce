package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/history"
	"github.com/spf13/cobra"
)

var historyFile string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis results",
	Long: `List the analysis summaries recorded with 'gobeam analyze --save'.

Entries are stored locally as JSON, keyed by timestamp. The engine itself
is stateless; the history is owned entirely by this command layer.`,
	Run: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFile, "history-file", "", "History file location (default ~/.gobeam/history.json)")
}

func runHistory(cmd *cobra.Command, args []string) {
	path := historyFile
	if path == "" {
		var err error
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
	entries, err := store.List()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No recorded analyses.")
		return
	}

	fmt.Println()
	fmt.Println("RECORDED ANALYSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Timestamp\tSupport\tLoad\tL (m)\tMmax (kN-m)\tVmax (kN)\tδmax (mm)")
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.3f\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Support, e.Load, e.Span, e.MaxMoment, e.MaxShear, e.MaxDeflection)
	}
	w.Flush()
	fmt.Println()
}
