package tui

import (
	"fmt"
	"strings"

	proxerlist "github.com/Ceeox/proxer-go/list"
	"github.com/Ceeox/proxer-go/style"
)

// listItem adapts a search result to list.Item.
type listItem struct {
	entry proxerlist.SearchEntry
}

func (t *listItem) Title() string {
	return t.entry.Name
}

// Description shows medium, episode count, rating and genres.
func (t *listItem) Description() string {
	parts := []string{
		t.entry.Medium.String(),
		fmt.Sprintf("%d ep.", t.entry.Count),
	}

	if t.entry.RateCount > 0 {
		parts = append(parts, fmt.Sprintf("★ %.1f", float64(t.entry.RateSum)/float64(t.entry.RateCount)))
	}

	if len(t.entry.Genre) > 0 {
		parts = append(parts, style.Faint(strings.Join(t.entry.Genre, ", ")))
	}

	return strings.Join(parts, " · ")
}

func (t *listItem) FilterValue() string {
	return t.entry.Name
}
