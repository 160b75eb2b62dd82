package report_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/report"
	"github.com/Zuo-Peng/chat-recap/internal/stats"
)

// fakeSource serves conversations from memory and records loads.
type fakeSource struct {
	convs    []chat.Conversation
	messages map[string][]chat.Message
	loads    []string
}

func (f *fakeSource) ListConversations() ([]chat.Conversation, error) {
	return f.convs, nil
}

func (f *fakeSource) LoadMessages(id string) ([]chat.Message, error) {
	f.loads = append(f.loads, id)
	msgs, ok := f.messages[id]
	if !ok {
		return nil, &chat.NotFoundError{ConversationID: id}
	}
	return msgs, nil
}

var (
	me    = chat.NewParticipant("Me", "me@x")
	alice = chat.NewParticipant("Alice", "a@x")
	bob   = chat.NewParticipant("Bob", "b@x")
	cara  = chat.NewParticipant("Cara", "")
)

func repeat(p chat.Participant, text string, n int) []chat.Message {
	msgs := make([]chat.Message, n)
	for i := range msgs {
		msgs[i] = chat.Message{Sender: p, Text: text}
	}
	return msgs
}

func newSource() *fakeSource {
	return &fakeSource{
		convs: []chat.Conversation{
			{ID: "dm-alice", Participants: []chat.Participant{me, alice}},
			{ID: "dm-bob", Participants: []chat.Participant{bob, me}},
			{ID: "dm-strangers", Participants: []chat.Participant{alice, bob}},
			{ID: "space", DeclaredName: "Group Chat", Participants: []chat.Participant{me, alice, cara}},
		},
		messages: map[string][]chat.Message{
			"dm-alice":     repeat(alice, "hey 😀", 5),
			"dm-bob":       repeat(bob, "yo", 10),
			"dm-strangers": repeat(alice, "psst", 2),
			"space": append(repeat(cara, "good good 🎉", 2),
				chat.Message{Sender: alice, Text: "Hi!! 😀 so GOOD 😀😀"}),
		},
	}
}

func newController(t *testing.T, src report.Source) *report.Controller {
	t.Helper()
	c, err := report.NewController(src)
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRankContacts(t *testing.T) {
	src := newSource()
	c := newController(t, src)

	rep, err := c.Run(report.RankContacts(me))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []report.ContactRank{
		{Rank: 1, Participant: bob, Count: 10, ConversationID: "dm-bob"},
		{Rank: 2, Participant: alice, Count: 5, ConversationID: "dm-alice"},
	}
	if !reflect.DeepEqual(rep.Contacts, want) {
		t.Fatalf("Contacts = %+v; want %+v", rep.Contacts, want)
	}

	if len(rep.Skipped) != 1 {
		t.Fatalf("Skipped = %v; want the strangers DM", rep.Skipped)
	}
	var amb *chat.AmbiguousParticipantError
	if !errors.As(rep.Skipped[0], &amb) || amb.ConversationID != "dm-strangers" {
		t.Fatalf("Skipped[0] = %v", rep.Skipped[0])
	}
	for _, id := range src.loads {
		if id == "space" {
			t.Fatal("group log loaded while ranking contacts")
		}
	}
}

func TestRankContactsSkipsUnloadableDM(t *testing.T) {
	src := newSource()
	delete(src.messages, "dm-alice")
	c := newController(t, src)

	rep, err := c.Run(report.RankContacts(me))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(rep.Contacts) != 1 || rep.Contacts[0].Participant != bob {
		t.Fatalf("Contacts = %+v", rep.Contacts)
	}
	var nf *chat.NotFoundError
	if !errors.As(rep.Skipped[0], &nf) {
		t.Fatalf("Skipped[0] = %v; want NotFoundError", rep.Skipped[0])
	}
}

func TestAnalyzeConversation(t *testing.T) {
	c := newController(t, newSource())
	rep, err := c.Run(report.AnalyzeConversation("dm-alice"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if rep.Recap.MessageCount != 5 || rep.Recap.MostCommonWord != (stats.Entry{Key: "hey", Count: 5}) {
		t.Fatalf("Recap = %+v", rep.Recap)
	}
	if !reflect.DeepEqual(rep.Recap.TopEmojis, []stats.Entry{{Key: "😀", Count: 5}}) {
		t.Fatalf("TopEmojis = %v", rep.Recap.TopEmojis)
	}
}

func TestAnalyzeGroup(t *testing.T) {
	c := newController(t, newSource())
	rep, err := c.Run(report.AnalyzeGroup("space"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if rep.Title != "Me - me@x, Alice - a@x, Cara - Unknown Email" {
		t.Fatalf("Title = %q", rep.Title)
	}
	wantRanked := []stats.Entry{{Key: "Cara - Unknown Email", Count: 2}, {Key: "Alice - a@x", Count: 1}}
	if !reflect.DeepEqual(rep.Recap.Ranked, wantRanked) {
		t.Fatalf("Ranked = %v", rep.Recap.Ranked)
	}
	if rep.Recap.MostCommonWord != (stats.Entry{Key: "good", Count: 5}) {
		t.Fatalf("MostCommonWord = %v", rep.Recap.MostCommonWord)
	}
	wantEmoji := []stats.Entry{{Key: "😀", Count: 3}, {Key: "🎉", Count: 2}}
	if !reflect.DeepEqual(rep.Recap.TopEmojis, wantEmoji) {
		t.Fatalf("TopEmojis = %v", rep.Recap.TopEmojis)
	}
}

func TestAnalyzeEmptyConversation(t *testing.T) {
	src := newSource()
	src.messages["dm-bob"] = nil
	c := newController(t, src)

	rep, err := c.Run(report.AnalyzeConversation("dm-bob"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if rep.Recap.MessageCount != 0 || rep.Recap.MostCommonWord != stats.NoWord || len(rep.Recap.TopEmojis) != 0 {
		t.Fatalf("Recap = %+v", rep.Recap)
	}
}

func TestAnalyzeUnknownConversation(t *testing.T) {
	c := newController(t, newSource())
	_, err := c.Run(report.AnalyzeGroup("nope"))
	var nf *chat.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v; want NotFoundError", err)
	}

	// the controller keeps working after a failed request
	if _, err := c.Run(report.AnalyzeGroup("space")); err != nil {
		t.Fatalf("second request failed: %v", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	c := newController(t, newSource())
	first, err := c.Run(report.AnalyzeGroup("space"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := c.Run(report.AnalyzeGroup("space"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports differ:\n%+v\n%+v", first, second)
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    int
		wantErr bool
	}{
		{"1", 3, 0, false},
		{" 3\n", 3, 2, false},
		{"0", 3, 0, true},
		{"4", 3, 0, true},
		{"-1", 3, 0, true},
		{"two", 3, 0, true},
		{"", 3, 0, true},
		{"1", 0, 0, true},
	}
	for _, tc := range tests {
		got, err := report.ParseSelection(tc.in, tc.n)
		if tc.wantErr {
			var sel *chat.InvalidSelectionError
			if !errors.As(err, &sel) {
				t.Errorf("ParseSelection(%q, %d) err = %v; want InvalidSelectionError", tc.in, tc.n, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseSelection(%q, %d) = %d, %v; want %d", tc.in, tc.n, got, err, tc.want)
		}
	}
}

func TestInvalidSelectionMessage(t *testing.T) {
	_, err := report.ParseSelection("9", 2)
	if err == nil || !strings.Contains(err.Error(), fmt.Sprint(2)) {
		t.Fatalf("err = %v", err)
	}
}
