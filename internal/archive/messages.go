package archive

import (
	"errors"
	"os"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/tidwall/gjson"
)

// LoadMessages reads the message log of one conversation:
//
//	{"messages": [{"creator": {"name": "...", "email": "..."}, "text": "..."}]}
//
// A missing or unreadable log yields a NotFoundError.
func (a *Archive) LoadMessages(conversationID string) ([]chat.Message, error) {
	data, err := os.ReadFile(a.MessagesPath(conversationID))
	if err != nil {
		return nil, &chat.NotFoundError{ConversationID: conversationID, Err: err}
	}
	msgs, err := parseMessages(data)
	if err != nil {
		return nil, &chat.NotFoundError{ConversationID: conversationID, Err: err}
	}
	return msgs, nil
}

func parseMessages(data []byte) ([]chat.Message, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	var msgs []chat.Message
	gjson.GetBytes(data, "messages").ForEach(func(_, m gjson.Result) bool {
		msgs = append(msgs, chat.Message{
			Sender: participantFrom(m.Get("creator")),
			Text:   m.Get("text").String(),
		})
		return true
	})
	return msgs, nil
}
