// Package tui implements the interactive browse mode: search entries, pick one, read its details.
package tui

import (
	"context"

	"github.com/Ceeox/proxer-go/api"
	proxerlist "github.com/Ceeox/proxer-go/list"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Session *api.Session
	// Query starts the browse mode with results for it instead of the search prompt.
	Query string
	// Search carries the filters applied to every search. Its Name is replaced by the typed query.
	Search proxerlist.SearchOptions
}

// Run starts the browse mode and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	bubble.newState(searchState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
