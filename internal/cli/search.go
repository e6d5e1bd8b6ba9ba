package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"fuzzyfind/internal/config"
	"fuzzyfind/internal/display"
	"fuzzyfind/internal/domain"
	"fuzzyfind/internal/fuzzy"
	"fuzzyfind/internal/repository/sqlite"
	"fuzzyfind/internal/scan"
)

var matchedCharStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true)

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.LoadConfig()
	if err != nil {
		// fallback to default
		cfg = config.GetDefaultConfig()
	}

	workers := cfg.Workers
	if searchWorkers > 0 {
		workers = searchWorkers
	}
	chunkSize := cfg.ChunkSize
	if searchChunkSize > 0 {
		chunkSize = searchChunkSize
	}

	opts := fuzzy.MatchOptions{
		CaseSensitive: searchCaseSensitive,
		MatchPosition: searchHighlight,
	}
	pattern := fuzzy.NewPattern(query, opts)

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	candidates, err := scan.Candidates(root)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	matches := scan.Search(pattern, candidates, scan.Options{
		Workers:   workers,
		ChunkSize: chunkSize,
	})

	// single consumer drains the match channel until the workers close it
	out := cmd.OutOrStdout()
	resultCount := 0
	for m := range matches {
		resultCount++
		if searchHighlight {
			fmt.Fprintln(out, display.Highlight(m.Path, m.Results, matchedCharStyle))
		} else {
			fmt.Fprintln(out, m.Path)
		}
	}

	if !searchNoHistory && pattern.TermCount() > 0 {
		recordHistory(cfg, query, pattern.TermCount(), resultCount, root)
	}

	return nil
}

// best effort: a failed history write warns but never fails the search
func recordHistory(cfg *config.Config, query string, termCount, resultCount int, root string) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open history database: %v\n", err)
		return
	}
	defer db.Close()

	entry := domain.NewSearchHistory(query, termCount, root)
	entry.ResultCount = resultCount

	repo := sqlite.NewSearchHistoryRepository(db)
	if err := repo.RecordSearch(context.Background(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record search: %v\n", err)
	}
}
