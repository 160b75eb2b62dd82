package tui

import "github.com/sahilm/fuzzy"

type titles []Item

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Filter returns the indexes of items whose title fuzzy-matches query, best
// match first. An empty query keeps every item in its original order.
func Filter(items []Item, query string) []int {
	if query == "" {
		idx := make([]int, len(items))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	matches := fuzzy.FindFrom(query, titles(items))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	return idx
}
