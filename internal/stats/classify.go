package stats

import (
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
)

type DirectMessage struct {
	ID           string
	Participants []chat.Participant
}

// ParticipantIDs returns the "name - email" identifiers in roster order.
func (d DirectMessage) ParticipantIDs() []string {
	return participantIDs(d.Participants)
}

type Group struct {
	ID           string
	DisplayName  string
	Participants []chat.Participant
}

type Classification struct {
	DMs    []DirectMessage
	Groups []Group
}

// Classify splits conversations into DMs (exactly two participants) and
// groups (everything else), keeping input order within each list.
func Classify(convs []chat.Conversation) Classification {
	var c Classification
	for _, conv := range convs {
		if len(conv.Participants) == 2 {
			c.DMs = append(c.DMs, DirectMessage{ID: conv.ID, Participants: conv.Participants})
			continue
		}
		c.Groups = append(c.Groups, Group{
			ID:           conv.ID,
			DisplayName:  DisplayName(conv),
			Participants: conv.Participants,
		})
	}
	return c
}

// DisplayName returns the declared group name, or the comma-joined participant
// identifiers when the name is missing or the generic placeholder.
func DisplayName(conv chat.Conversation) string {
	if conv.DeclaredName != "" && conv.DeclaredName != chat.PlaceholderGroupName {
		return conv.DeclaredName
	}
	return strings.Join(participantIDs(conv.Participants), ", ")
}

func participantIDs(ps []chat.Participant) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID()
	}
	return ids
}
