package tui

import (
	"strings"

	proxerlist "github.com/Ceeox/proxer-go/list"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case searchResult:
		if msg.request != b.request {
			return b, nil
		}
		if msg.err != nil {
			b.stopLoading()
			b.raiseError(msg.err)
			return b, nil
		}
	case entryResult:
		if msg.request != b.request {
			return b, nil
		}
		if msg.err != nil {
			b.stopLoading()
			b.raiseError(msg.err)
			return b, nil
		}
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case searchState:
				if b.inputC.Value() == "" {
					return b, tea.Quit
				}
				b.inputC.SetValue("")
				return b, nil
			case resultsState:
				if b.resultsC.FilterState() != list.Unfiltered {
					b.resultsC, cmd = b.resultsC.Update(msg)
					return b, cmd
				}
				b.resultsC.ResetSelected()
			case entryState:
				b.selectedEntry = nil
			}

			if b.state == loadingState {
				b.nextRequest()
			}

			b.previousState()
			b.stopLoading()
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateResults(msg)
	case entryState:
		return b.updateEntry(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case searchResult:
		items := lo.Map(msg.entries, func(entry proxerlist.SearchEntry, _ int) list.Item {
			return &listItem{entry: entry}
		})

		b.stopLoading()
		b.newState(resultsState)
		return b, b.resultsC.SetItems(items)
	case entryResult:
		b.selectedEntry = &msg.entry
		b.entryC.SetContent(renderEntry(msg.entry, b.width))
		b.entryC.GotoTop()

		b.stopLoading()
		b.newState(entryState)
		return b, nil
	}

	if !b.loading {
		return b, nil
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		query := strings.TrimSpace(b.inputC.Value())
		if query == "" {
			return b, nil
		}

		b.resultsC.Title = "Results for " + query
		return b, b.search(query)
	}

	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) && b.resultsC.FilterState() != list.Filtering {
		item, ok := b.resultsC.SelectedItem().(*listItem)
		if !ok {
			return b, nil
		}

		b.progressStatus = "Loading " + item.entry.Name
		b.newState(loadingState)
		return b, tea.Batch(b.startLoading(), b.fetchEntry(b.nextRequest(), item.entry))
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.open) && b.selectedEntry != nil:
			return b, b.openEntry(*b.selectedEntry)
		}
	}

	b.entryC, cmd = b.entryC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return b, tea.Quit
	}

	return b, nil
}
