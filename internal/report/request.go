// Package report turns a user request into recap data, loading conversations
// from a Source on demand.
package report

import (
	"strconv"
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
)

type Kind string

const (
	KindRankContacts        Kind = "rank-contacts"
	KindAnalyzeConversation Kind = "analyze-conversation"
	KindAnalyzeGroup        Kind = "analyze-group"
)

type Request struct {
	Kind           Kind
	ConversationID string           // analyze-conversation, analyze-group
	CurrentUser    chat.Participant // rank-contacts
}

func RankContacts(currentUser chat.Participant) Request {
	return Request{Kind: KindRankContacts, CurrentUser: currentUser}
}

func AnalyzeConversation(id string) Request {
	return Request{Kind: KindAnalyzeConversation, ConversationID: id}
}

func AnalyzeGroup(id string) Request {
	return Request{Kind: KindAnalyzeGroup, ConversationID: id}
}

// ParseSelection converts a 1-based choice among n items into a 0-based index.
func ParseSelection(input string, n int) (int, error) {
	s := strings.TrimSpace(input)
	choice, err := strconv.Atoi(s)
	if err != nil || choice < 1 || choice > n {
		return 0, &chat.InvalidSelectionError{Input: s, Max: n}
	}
	return choice - 1, nil
}
