package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SearchHistory records one search run: the raw query, how many terms
// it parsed into, how many paths matched, and where the scan rooted.
type SearchHistory struct {
	ID          int64     `db:"id" json:"id"`
	QueryText   string    `db:"query_text" json:"query_text"`
	TermCount   int       `db:"term_count" json:"term_count"`
	ResultCount int       `db:"result_count" json:"result_count"`
	RootPath    string    `db:"root_path" json:"root_path"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func (s *SearchHistory) Validate() error {
	if strings.TrimSpace(s.QueryText) == "" {
		return errors.New("query text cannot be empty")
	}

	if s.TermCount < 1 {
		return errors.New("term count must be at least 1")
	}

	if s.ResultCount < 0 {
		return errors.New("result count cannot be negative")
	}

	return nil
}

func (s *SearchHistory) GetRelativeTime() string {
	duration := time.Since(s.UpdatedAt)

	seconds := int(duration.Seconds())
	minutes := int(duration.Minutes())
	hours := int(duration.Hours())
	days := int(duration.Hours() / 24)

	switch {
	case seconds < 60:
		return "just now"
	case minutes == 1:
		return "1 minute ago"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	}
}

func (s *SearchHistory) GetDisplayText() string {
	matches := "matches"
	if s.ResultCount == 1 {
		matches = "match"
	}
	return fmt.Sprintf("%s (%d %s, %s)", s.QueryText, s.ResultCount, matches, s.GetRelativeTime())
}

func NewSearchHistory(queryText string, termCount int, rootPath string) *SearchHistory {
	now := time.Now()
	return &SearchHistory{
		QueryText:   queryText,
		TermCount:   termCount,
		RootPath:    rootPath,
		ResultCount: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
