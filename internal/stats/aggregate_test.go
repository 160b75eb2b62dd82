package stats

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
)

var (
	me    = chat.NewParticipant("Me", "me@x")
	alice = chat.NewParticipant("Alice", "a@x")
	bob   = chat.NewParticipant("Bob", "b@x")
)

func msg(p chat.Participant, text string) chat.Message {
	return chat.Message{Sender: p, Text: text}
}

func TestAggregateDMScenario(t *testing.T) {
	s := AggregateDM("dm1", []chat.Message{msg(alice, "Hi!! 😀 so GOOD 😀😀")})
	if s.Count != 1 {
		t.Fatalf("Count = %d", s.Count)
	}
	if got := Rank(s.Emoji); !reflect.DeepEqual(got, []Entry{{"😀", 3}}) {
		t.Fatalf("emoji = %v", got)
	}
	if got := s.Words.Keys(); !reflect.DeepEqual(got, []string{"hi", "so", "good"}) {
		t.Fatalf("words = %v", got)
	}
}

func TestAggregateDMEmpty(t *testing.T) {
	r := AggregateDM("empty", nil).Recap()
	if r.MessageCount != 0 {
		t.Fatalf("MessageCount = %d", r.MessageCount)
	}
	if r.MostCommonWord != (Entry{"N/A", 0}) {
		t.Fatalf("MostCommonWord = %v", r.MostCommonWord)
	}
	if len(r.TopEmojis) != 0 {
		t.Fatalf("TopEmojis = %v", r.TopEmojis)
	}
}

func TestAggregateDMsBySenderSums(t *testing.T) {
	totals := AggregateDMsBySender([]DMTally{
		{ConversationID: "dm1", Participants: []chat.Participant{me, alice}, MessageCount: 3},
		{ConversationID: "dm2", Participants: []chat.Participant{alice, me}, MessageCount: 4},
	}, me.ID())
	if got := totals.Counts.Count("Alice - a@x"); got != 7 {
		t.Fatalf("Alice total = %d; want 7", got)
	}
	if totals.Conversations["Alice - a@x"] != "dm2" {
		t.Fatalf("conversation = %q", totals.Conversations["Alice - a@x"])
	}
	if len(totals.Skipped) != 0 {
		t.Fatalf("unexpected skips: %v", totals.Skipped)
	}
}

func TestAggregateDMsBySenderRanksHigherFirst(t *testing.T) {
	totals := AggregateDMsBySender([]DMTally{
		{ConversationID: "dm-a", Participants: []chat.Participant{me, alice}, MessageCount: 5},
		{ConversationID: "dm-b", Participants: []chat.Participant{me, bob}, MessageCount: 10},
	}, me.ID())
	want := []Entry{{"Bob - b@x", 10}, {"Alice - a@x", 5}}
	if got := totals.Ranked(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Ranked = %v; want %v", got, want)
	}
}

func TestAggregateDMsBySenderSkipsAmbiguous(t *testing.T) {
	totals := AggregateDMsBySender([]DMTally{
		{ConversationID: "stranger", Participants: []chat.Participant{alice, bob}, MessageCount: 2},
		{ConversationID: "self", Participants: []chat.Participant{me, me}, MessageCount: 9},
		{ConversationID: "ok", Participants: []chat.Participant{me, bob}, MessageCount: 1},
	}, me.ID())
	if len(totals.Skipped) != 2 {
		t.Fatalf("Skipped = %v; want 2 entries", totals.Skipped)
	}
	var amb *chat.AmbiguousParticipantError
	if err := error(totals.Skipped[0]); !errors.As(err, &amb) || amb.ConversationID != "stranger" {
		t.Fatalf("first skip = %v", totals.Skipped[0])
	}
	if totals.Counts.Len() != 1 || totals.Counts.Count("Bob - b@x") != 1 {
		t.Fatalf("Counts = %v", totals.Ranked())
	}
}

func TestAggregateGroupUsesMessageSender(t *testing.T) {
	gone := chat.NewParticipant("Former", "")
	s := AggregateGroup([]chat.Message{
		msg(alice, "hello hello"),
		msg(gone, "bye 👋"),
		msg(alice, "hello 👋"),
		msg(bob, ""),
	})
	r := s.Recap()
	want := []Entry{{"Alice - a@x", 2}, {"Former - Unknown Email", 1}, {"Bob - b@x", 1}}
	if !reflect.DeepEqual(r.Ranked, want) {
		t.Fatalf("Ranked = %v; want %v", r.Ranked, want)
	}
	if r.MostCommonWord != (Entry{"hello", 3}) {
		t.Fatalf("MostCommonWord = %v", r.MostCommonWord)
	}
	if r.MessageCount != 4 || s.Senders["Former - Unknown Email"] != gone {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	msgs := []chat.Message{msg(alice, "a b 😀"), msg(bob, "b c 🎉 😀"), msg(me, "c c")}
	first := AggregateGroup(msgs).Recap()
	second := AggregateGroup(msgs).Recap()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recaps differ:\n%+v\n%+v", first, second)
	}
}
