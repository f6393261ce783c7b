package tui

import (
	"fmt"
	"strings"

	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/icon"
	"github.com/Ceeox/proxer-go/info"
	"github.com/Ceeox/proxer-go/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case searchState:
		return b.viewSearch()
	case resultsState:
		return listExtraPaddingStyle.Render(b.resultsC.View())
	case entryState:
		return b.viewEntry()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " " + b.progressStatus,
	})
}

func (b *statefulBubble) viewSearch() string {
	return b.renderLines(true, []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewEntry() string {
	var title string
	if b.selectedEntry != nil {
		title = b.selectedEntry.Name
	}

	return paddingStyle.Render(strings.Join([]string{
		style.Title(title),
		b.entryC.View(),
		b.helpC.View(b.keymap),
	}, "\n"))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		wrap.String(errorStyle.Render(b.lastError.Error()), b.width),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// renderEntry lays out the details of an entry, wrapping the description at width.
func renderEntry(e info.FullEntry, width int) string {
	label := style.Fg(color.Blue)
	var lines []string

	field := func(name, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s %s", label(name+":"), value))
		}
	}

	lines = append(lines, "")
	field("Medium", fmt.Sprintf("%s (%s)", e.Medium, e.Category))
	field("Episodes", fmt.Sprint(e.Count))
	field("Genre", strings.Join(strings.Fields(e.Genre), ", "))
	field("FSK", strings.Join(strings.Fields(e.FSK), ", "))
	if e.RateCount > 0 {
		field("Rating", fmt.Sprintf("%.2f (%d votes)", float64(e.RateSum)/float64(e.RateCount), e.RateCount))
	}
	field("Clicks", fmt.Sprint(e.Clicks))
	field("Names", strings.Join(e.Names, ", "))
	field("Languages", strings.Join(e.Languages, ", "))
	field("Seasons", strings.Join(lo.Map(e.Seasons, func(s info.EntrySeason, _ int) string {
		return fmt.Sprintf("%s %d", s.Type, s.Year)
	}), ", "))
	field("Groups", strings.Join(lo.Map(e.Groups, func(g info.Group, _ int) string {
		return g.Name
	}), ", "))
	field("Publishers", strings.Join(lo.Map(e.Publishers, func(p info.EntryCompany, _ int) string {
		return p.Name
	}), ", "))
	field("Tags", strings.Join(lo.Map(e.Tags, func(t info.FullEntryTag, _ int) string {
		return t.Tag
	}), ", "))

	if e.Gate {
		lines = append(lines, style.Fg(color.Yellow)("Adult content"))
	}

	if e.Description != "" {
		lines = append(lines, "", wordwrap.String(e.Description, max(width, 20)))
	}

	return strings.Join(lines, "\n")
}
