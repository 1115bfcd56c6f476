// Package query remembers search queries and suggests them back.
package query

import (
	"strings"
	"time"

	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// MaxSuggestions caps SuggestMany.
const MaxSuggestions = 10

type record struct {
	Query    string    `json:"query"`
	Rank     int       `json:"rank"`
	LastUsed time.Time `json:"last_used"`
}

var store = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var now = time.Now

func load() map[string]*record {
	records, expired, err := store.Get()
	if err != nil || expired || records == nil {
		return make(map[string]*record)
	}
	return records
}

// Remember adds weight to the rank of q. Empty queries are ignored, as is
// everything when remembering is turned off.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" || !viper.GetBool(key.SearchRememberQueries) {
		return nil
	}

	records := load()

	r, ok := records[q]
	if !ok {
		r = &record{Query: q}
		records[q] = r
	}
	r.Rank += weight
	r.LastUsed = now()

	return store.Set(records)
}

// Clear forgets every remembered query.
func Clear() error {
	return store.Set(make(map[string]*record))
}

// Suggest returns the best remembered query matching q.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
// Equal ranks put the most recently used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	matches := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastUsed.Compare(a.LastUsed)
	})

	return lo.Map(lo.Slice(matches, 0, MaxSuggestions), func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
