// Package rank orders script lists for display: favorites, frecency, and
// fuzzy relevance combined into one deterministic ordering.
package rank

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/nrun-sh/nrun/internal/frecency"
)

// Item is one runnable script entry as seen by the ranking engine.
type Item struct {
	// Key is the stable identity used for favorites and recents lookups.
	// Keys must be unique within one call; duplicates resolve last-write-wins.
	Key string
	// Name is the script name shown to the user and matched against queries.
	Name string
	// Command is the shell command text. Display only, never parsed.
	Command string
}

// itemSource adapts a slice of items to the fuzzy matcher.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Name }
func (s itemSource) Len() int            { return len(s) }

// Rank returns indices into items in display order.
//
// With an empty query every item is kept: favorites sort first
// (alphabetically among themselves), then the rest by descending frecency
// with alphabetical tie-break. With a non-empty query, items that do not
// fuzzy-match are dropped entirely; survivors sort by relevance, with ties
// broken by favorite status, then frecency, then name.
func Rank(items []Item, favorites map[string]bool, recents *frecency.Store, query string) []int {
	return rankAt(items, favorites, recents, query, frecency.NowMillis())
}

func rankAt(items []Item, favorites map[string]bool, recents *frecency.Store, query string, now int64) []int {
	scores := make(map[string]float64, len(items))
	for _, it := range items {
		scores[it.Key] = recents.ScoreOf(it.Key, now)
	}

	if query == "" {
		return rankBrowsing(items, favorites, scores)
	}
	return rankSearching(items, favorites, scores, query)
}

func rankBrowsing(items []Item, favorites map[string]bool, scores map[string]float64) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := items[order[a]], items[order[b]]

		favA, favB := favorites[ia.Key], favorites[ib.Key]
		if favA != favB {
			return favA
		}
		if favA {
			// Favoriting is an explicit override; recency is irrelevant here.
			return ia.Name < ib.Name
		}

		if scores[ia.Key] != scores[ib.Key] {
			return scores[ia.Key] > scores[ib.Key]
		}
		return ia.Name < ib.Name
	})

	return order
}

func rankSearching(items []Item, favorites map[string]bool, scores map[string]float64, query string) []int {
	matches := fuzzy.FindFrom(query, itemSource(items))

	order := make([]int, 0, len(matches))
	relevance := make(map[int]int, len(matches))
	for _, m := range matches {
		order = append(order, m.Index)
		relevance[m.Index] = m.Score
	}

	sort.SliceStable(order, func(a, b int) bool {
		if relevance[order[a]] != relevance[order[b]] {
			return relevance[order[a]] > relevance[order[b]]
		}

		ia, ib := items[order[a]], items[order[b]]
		favA, favB := favorites[ia.Key], favorites[ib.Key]
		if favA != favB {
			return favA
		}
		if scores[ia.Key] != scores[ib.Key] {
			return scores[ia.Key] > scores[ib.Key]
		}
		return ia.Name < ib.Name
	})

	return order
}
