package stats

import (
	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/textstat"
)

type ConversationStats struct {
	ConversationID string
	Count          int
	Words          *Tally
	Emoji          *Tally
}

// AggregateDM counts messages, words and emoji of a single conversation.
func AggregateDM(conversationID string, msgs []chat.Message) ConversationStats {
	s := ConversationStats{
		ConversationID: conversationID,
		Count:          len(msgs),
		Words:          NewTally(),
		Emoji:          NewTally(),
	}
	for _, m := range msgs {
		tallyText(s.Words, s.Emoji, m.Text)
	}
	return s
}

// DMTally is the message count of one DM, ready to be attributed to a contact.
type DMTally struct {
	ConversationID string
	Participants   []chat.Participant
	MessageCount   int
}

type ContactTotals struct {
	Counts        *Tally                      // other participant id -> messages
	Participants  map[string]chat.Participant // other participant id -> participant
	Conversations map[string]string           // other participant id -> conversation id
	Skipped       []*chat.AmbiguousParticipantError
}

// Ranked returns the contacts ordered by message count, highest first.
func (c ContactTotals) Ranked() []Entry {
	return Rank(c.Counts)
}

// AggregateDMsBySender sums DM message counts per "other" participant, the
// one whose identifier differs from currentUser. DMs where currentUser is not
// in the roster, or where both entries are currentUser, are skipped and
// reported in Skipped.
func AggregateDMsBySender(dms []DMTally, currentUser string) ContactTotals {
	totals := ContactTotals{
		Counts:        NewTally(),
		Participants:  make(map[string]chat.Participant),
		Conversations: make(map[string]string),
	}
	for _, dm := range dms {
		other, ok := otherParticipant(dm.Participants, currentUser)
		if !ok {
			totals.Skipped = append(totals.Skipped, &chat.AmbiguousParticipantError{
				ConversationID: dm.ConversationID,
				CurrentUser:    currentUser,
				Participants:   participantIDs(dm.Participants),
			})
			continue
		}
		id := other.ID()
		totals.Counts.Add(id, dm.MessageCount)
		totals.Participants[id] = other
		totals.Conversations[id] = dm.ConversationID
	}
	return totals
}

func otherParticipant(ps []chat.Participant, currentUser string) (chat.Participant, bool) {
	var others []chat.Participant
	matched := false
	for _, p := range ps {
		if p.ID() == currentUser {
			matched = true
			continue
		}
		others = append(others, p)
	}
	if !matched || len(others) != 1 {
		return chat.Participant{}, false
	}
	return others[0], true
}

type GroupStats struct {
	Count     int
	PerSender *Tally // sender id -> messages
	Senders   map[string]chat.Participant
	Words     *Tally
	Emoji     *Tally
}

// AggregateGroup counts messages per sender plus words and emoji. Senders come
// from each message's creator, so members who have left are still counted.
func AggregateGroup(msgs []chat.Message) GroupStats {
	s := GroupStats{
		Count:     len(msgs),
		PerSender: NewTally(),
		Senders:   make(map[string]chat.Participant),
		Words:     NewTally(),
		Emoji:     NewTally(),
	}
	for _, m := range msgs {
		id := m.Sender.ID()
		s.PerSender.Inc(id)
		if _, ok := s.Senders[id]; !ok {
			s.Senders[id] = m.Sender
		}
		tallyText(s.Words, s.Emoji, m.Text)
	}
	return s
}

func tallyText(words, emoji *Tally, text string) {
	words.AddAll(textstat.TokenizeWords(text))
	emoji.AddAll(textstat.ExtractEmoji(text))
}
