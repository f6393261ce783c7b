// Package query keeps the history of search queries and suggests them back, most used first.
package query

import (
	"strings"
	"sync"

	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher = gache.New[map[string]*record](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})

	mu          sync.Mutex
	suggestions = make(map[string][]*record)
)

// Remember adds q to the history or raises its rank by weight.
// Nothing is stored when search.history is off.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchHistory) {
		return nil
	}

	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[q]; ok {
		r.Rank += weight
	} else {
		cached[q] = &record{Rank: weight, Query: q}
	}

	suggestions = make(map[string][]*record)
	return cacher.Set(cached)
}

// Suggest returns the best ranked query matching q.
func Suggest(q string) mo.Option[string] {
	all := SuggestMany(q)
	if len(all) == 0 {
		return mo.None[string]()
	}
	return mo.Some(all[0])
}

// SuggestMany returns the remembered queries that fuzzily match q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchHistory) {
		return nil
	}

	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestions[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return nil
		}

		for _, r := range cached {
			if fuzzy.Match(q, r.Query) {
				records = append(records, r)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

func normalize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
