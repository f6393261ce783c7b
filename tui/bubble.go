package tui

import (
	"context"
	"fmt"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/info"
	"github.com/Ceeox/proxer-go/query"
	"github.com/Ceeox/proxer-go/style"
	"github.com/Ceeox/proxer-go/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	resultsC list.Model
	entryC   viewport.Model
	helpC    help.Model

	ctx     context.Context
	session *api.Session

	selectedEntry *info.FullEntry

	request int

	progressStatus string
	lastError      error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers the current state for back navigation.
// Loading and error screens are never returned to.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.resultsC.SetSize(listWidth, listHeight)
	b.resultsC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y

	// title, blank line and help
	b.entryC.Width = b.width
	b.entryC.Height = util.Max(b.height-3, 1)
	if b.selectedEntry != nil {
		b.entryC.SetContent(renderEntry(*b.selectedEntry, b.width))
	}

	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		session:       options.Session,
		options:       options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(style.Subtext)

	bubble.resultsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.resultsC.Title = "Results"
	bubble.resultsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.resultsC.Styles.NoItems = paddingStyle
	bubble.resultsC.KeyMap = keymap.forList()
	bubble.resultsC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.resultsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.resultsC.SetStatusBarItemName("entry", "entries")

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search Proxer (v%s)", constant.Version)
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = "> "
	bubble.inputC.SetValue(options.Query)
	bubble.inputC.ShowSuggestions = true
	bubble.inputC.KeyMap.AcceptSuggestion = keymap.acceptSuggestion
	bubble.inputC.SetSuggestions(query.SuggestMany(""))

	bubble.entryC = viewport.New(0, 0)

	bubble.resize(util.TerminalWidth(80), 24)
	bubble.inputC.Focus()

	return &bubble
}

func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Query != "" {
		return b.search(b.options.Query)
	}
	return textinput.Blink
}
