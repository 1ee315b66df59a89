package game

import (
	"sort"
	"strings"
	"time"
)

type Game struct {
	ID       int64
	Date     time.Time
	Name     string
	Number   string
	Category string
	Venue    string
}

// Filter narrows queries to a subset of games. An empty slice means no
// restriction on that attribute, never "match nothing".
type Filter struct {
	GameNames  []string
	Categories []string
	Venues     []string
}

func (f Filter) IsZero() bool {
	return len(f.GameNames) == 0 && len(f.Categories) == 0 && len(f.Venues) == 0
}

// CacheKey renders the filter as a stable string so equal selections share a
// memoization slot regardless of the order values were picked in.
func (f Filter) CacheKey() string {
	var b strings.Builder
	b.WriteString("g=")
	b.WriteString(joinSorted(f.GameNames))
	b.WriteString("|c=")
	b.WriteString(joinSorted(f.Categories))
	b.WriteString("|v=")
	b.WriteString(joinSorted(f.Venues))
	return b.String()
}

func joinSorted(values []string) string {
	if len(values) == 0 {
		return ""
	}
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// FilterOptions are the distinct attribute values available for selection.
type FilterOptions struct {
	GameNames  []string
	Categories []string
	Venues     []string
}

// Summary holds the headline aggregates over the filtered game set.
type Summary struct {
	TotalGames      int
	AvgTeamsPerGame float64
	LatestGameDate  *time.Time
}
