// Package suggest ranks dish names for search autocomplete.
package suggest

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Varun5711/mealcounter/internal/cache"
)

const (
	DefaultLimit    = 8
	defaultMemoSize = 128
)

// Ranker matches queries against a fixed catalog. Results are memoized per
// (query, limit); the catalog never changes after construction.
type Ranker struct {
	catalog []string
	lower   []string
	memo    *cache.LRU[string, []string]
}

func NewRanker(catalog []string, memoSize int) *Ranker {
	c := slices.Clone(catalog)
	lower := make([]string, len(c))
	for i, name := range c {
		lower[i] = strings.ToLower(name)
	}

	return &Ranker{
		catalog: c,
		lower:   lower,
		memo:    cache.NewLRU[string, []string](memoSize),
	}
}

// Suggest returns at most limit catalog entries for query.
//
// A blank query yields the head of the catalog in catalog order. Otherwise
// entries containing the query (case-insensitive) are ordered by the offset
// of the first match, ties keeping catalog order. The returned slice belongs
// to the caller.
func (r *Ranker) Suggest(query string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	key := strconv.Itoa(limit) + "|" + query
	if hit, ok := r.memo.Get(key); ok {
		return slices.Clone(hit)
	}

	out := r.rank(query, limit)
	r.memo.Set(key, out)
	return slices.Clone(out)
}

func (r *Ranker) rank(query string, limit int) []string {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(r.catalog[:min(limit, len(r.catalog))])
	}

	type match struct {
		name   string
		offset int
	}

	q := strings.ToLower(query)
	matches := make([]match, 0, len(r.catalog))
	for i, name := range r.lower {
		if off := strings.Index(name, q); off >= 0 {
			matches = append(matches, match{name: r.catalog[i], offset: off})
		}
	}

	slices.SortStableFunc(matches, func(a, b match) int {
		return a.offset - b.offset
	})

	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.name)
	}
	return out
}

var defaultRanker = NewRanker(PopularDishes, defaultMemoSize)

// GetSuggestedDishes ranks query against PopularDishes.
func GetSuggestedDishes(query string, limit int) []string {
	return defaultRanker.Suggest(query, limit)
}
