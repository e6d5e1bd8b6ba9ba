package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// search flags
	searchHighlight     bool
	searchCaseSensitive bool
	searchNoHistory     bool
	searchWorkers       int
	searchChunkSize     int
)

var rootCmd = &cobra.Command{
	Use:   "ff <query>",
	Short: "ff - fuzzy path search in the working directory",
	Long: `ff scores every file path under the working directory against a query
and prints the matching paths, one per line, in no particular order.

The query splits on whitespace into terms and every term must match the
same path. A term is a fuzzy subsequence by default; prefix it with '
to require an exact substring instead.

Examples:
  ff matcher
  ff "int mat"
  ff "'exact_part fuzzypart" --highlight`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&searchHighlight, "highlight", "H", false, "Highlight matched characters")
	rootCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "Match case exactly")
	rootCmd.Flags().BoolVar(&searchNoHistory, "no-history", false, "Do not record this search in history")
	rootCmd.Flags().IntVar(&searchWorkers, "workers", 0, "Number of matcher workers (0 = one per CPU)")
	rootCmd.Flags().IntVar(&searchChunkSize, "chunk-size", 0, "Candidates per worker chunk")
}
