package tui

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	items := []Item{
		{Title: "Book Club"},
		{Title: "Climbing Crew"},
		{Title: "Alice - a@x, Bob - b@x, Cara - c@x"},
	}
	if got := Filter(items, ""); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("Filter(empty) = %v", got)
	}
	if got := Filter(items, "climb"); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Filter(climb) = %v", got)
	}
	if got := Filter(items, "zzz"); len(got) != 0 {
		t.Fatalf("Filter(zzz) = %v", got)
	}
}
