package stats

import (
	"reflect"
	"testing"
)

func tallyOf(keys ...string) *Tally {
	t := NewTally()
	t.AddAll(keys)
	return t
}

func TestRankDescendingAndStable(t *testing.T) {
	tl := tallyOf("b", "a", "c", "a", "d", "c", "e")
	got := Rank(tl)
	want := []Entry{{"a", 2}, {"c", 2}, {"b", 1}, {"d", 1}, {"e", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Rank = %v; want %v", got, want)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(NewTally()); len(got) != 0 {
		t.Fatalf("Rank(empty) = %v; want empty", got)
	}
	if got := Rank(nil); len(got) != 0 {
		t.Fatalf("Rank(nil) = %v; want empty", got)
	}
}

func TestTopNIsPrefixOfRank(t *testing.T) {
	tl := tallyOf("x", "y", "y", "z", "z", "z", "w")
	ranked := Rank(tl)
	for n := -1; n <= len(ranked)+2; n++ {
		top := TopN(tl, n)
		limit := n
		if limit < 0 {
			limit = 0
		}
		if limit > len(ranked) {
			limit = len(ranked)
		}
		if len(top) != limit {
			t.Fatalf("TopN(%d) returned %d items; want %d", n, len(top), limit)
		}
		for i := range top {
			if top[i] != ranked[i] {
				t.Fatalf("TopN(%d)[%d] = %v; want %v", n, i, top[i], ranked[i])
			}
		}
	}
}

func TestTallyKeepsFirstSeenOrder(t *testing.T) {
	tl := NewTally()
	tl.Add("later", 0)
	tl.Inc("first")
	tl.Add("later", 5)
	if got := tl.Keys(); !reflect.DeepEqual(got, []string{"later", "first"}) {
		t.Fatalf("Keys = %v", got)
	}
	if tl.Count("later") != 5 || tl.Count("missing") != 0 {
		t.Fatalf("unexpected counts: later=%d missing=%d", tl.Count("later"), tl.Count("missing"))
	}
}
