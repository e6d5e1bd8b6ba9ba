package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fuzzyfind/internal/config"
	"fuzzyfind/internal/repository"
	"fuzzyfind/internal/repository/sqlite"
)

var (
	historyLimit int

	historyIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(6).
			Align(lipgloss.Right)
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Show recent searches, most recently used first.

Examples:
  ff history
  ff history --limit 10
  ff history delete 3
  ff history clear`,
	RunE: runHistoryList,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one recorded search",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum entries to show (0 = config default)")
}

// opens the history repository from the configured db path
func openHistoryRepo() (repository.SearchHistoryRepository, *sqlite.DB, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.GetDefaultConfig()
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}

	return sqlite.NewSearchHistoryRepository(db), db, cfg, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	repo, db, cfg, err := openHistoryRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	limit := historyLimit
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}

	entries, err := repo.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No searches recorded yet.")
		return nil
	}

	for _, entry := range entries {
		id := historyIDStyle.Render(strconv.FormatInt(entry.ID, 10))
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", id, entry.GetDisplayText())
	}

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid history id %q", args[0])
	}

	repo, db, _, err := openHistoryRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted history entry %d.\n", id)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	repo, db, _, err := openHistoryRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Clear(context.Background()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared.")
	return nil
}
