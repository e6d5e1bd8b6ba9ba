package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fuzzyfind/internal/fuzzy"
	"fuzzyfind/internal/scan"
	"fuzzyfind/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive fuzzy picker",
	Long: `Open an interactive picker over the working directory. Type to
filter, arrows to move, enter to print the selected path.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "Match case exactly")
}

func runTUI(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	candidates, err := scan.Candidates(root)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	opts := fuzzy.MatchOptions{
		CaseSensitive: searchCaseSensitive,
		MatchPosition: true,
	}

	p := tea.NewProgram(tui.NewModel(candidates, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Selection() != "" {
		fmt.Fprintln(cmd.OutOrStdout(), m.Selection())
	}

	return nil
}
