// Package stats classifies conversations, tallies messages, words and emoji,
// and ranks the results.
package stats

import "sort"

// Entry is one ranked key with its count.
type Entry struct {
	Key   string
	Count int
}

// Tally is a frequency table that remembers the order keys were first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add increases key's count by n, registering key on first sight.
func (t *Tally) Add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

func (t *Tally) Inc(key string) {
	t.Add(key, 1)
}

// AddAll counts every key in keys once.
func (t *Tally) AddAll(keys []string) {
	for _, k := range keys {
		t.Add(k, 1)
	}
}

func (t *Tally) Count(key string) int {
	return t.counts[key]
}

func (t *Tally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Keys returns the keys in first-seen order.
func (t *Tally) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.order...)
}

// Rank returns all entries sorted by count, highest first. Entries with equal
// counts keep their first-seen order.
func Rank(t *Tally) []Entry {
	if t.Len() == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// TopN returns at most n entries of Rank(t).
func TopN(t *Tally, n int) []Entry {
	if n <= 0 {
		return nil
	}
	ranked := Rank(t)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
