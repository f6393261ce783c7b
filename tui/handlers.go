package tui

import (
	"fmt"

	"github.com/Ceeox/proxer-go/info"
	"github.com/Ceeox/proxer-go/log"
	"github.com/Ceeox/proxer-go/open"
	"github.com/Ceeox/proxer-go/query"
	proxerlist "github.com/Ceeox/proxer-go/list"
	"github.com/Ceeox/proxer-go/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// searchResult and entryResult carry the outcome of one request.
// Results of a request that is no longer current are dropped.
type searchResult struct {
	request int
	entries []proxerlist.SearchEntry
	err     error
}

type entryResult struct {
	request int
	entry   info.FullEntry
	err     error
}

func (b *statefulBubble) search(q string) tea.Cmd {
	b.progressStatus = fmt.Sprintf("Searching for %q", q)
	b.newState(loadingState)
	return tea.Batch(b.startLoading(), b.searchEntries(b.nextRequest(), q))
}

func (b *statefulBubble) searchEntries(request int, q string) tea.Cmd {
	ctx, s, opts := b.ctx, b.session, b.options.Search
	opts.Name = mo.Some(q)

	return func() tea.Msg {
		log.Info("searching for " + q)

		entries, err := proxerlist.SearchEntries(ctx, s, opts)
		if err != nil {
			log.Error(err)
			return searchResult{request: request, err: err}
		}

		log.Infof("found %s", util.Quantify(len(entries), "entry", "entries"))
		if err := query.Remember(q, 1); err != nil {
			log.Warn(err)
		}
		return searchResult{request: request, entries: entries}
	}
}

func (b *statefulBubble) fetchEntry(request int, entry proxerlist.SearchEntry) tea.Cmd {
	ctx, s := b.ctx, b.session

	return func() tea.Msg {
		log.Infof("fetching entry %d", entry.ID)

		full, err := info.GetFullEntry(ctx, s, entry.ID)
		if err != nil {
			log.Error(err)
		}
		return entryResult{request: request, entry: full, err: err}
	}
}

// nextRequest starts a new request and makes every earlier one stale.
func (b *statefulBubble) nextRequest() int {
	b.request++
	return b.request
}

// openEntry shows the entry page in the browser. Failures are logged and otherwise ignored.
func (b *statefulBubble) openEntry(entry info.FullEntry) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(entry.PageURL()); err != nil {
			log.Warn(err)
		}
		return nil
	}
}
