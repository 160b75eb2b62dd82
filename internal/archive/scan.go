package archive

import (
	"errors"
	"fmt"
	"os"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/observability"
	"github.com/tidwall/gjson"
)

type Stats struct {
	Scanned int
	Loaded  int
	Skipped int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d loaded=%d skipped=%d", s.Scanned, s.Loaded, s.Skipped)
}

type ScanResult struct {
	Conversations []chat.Conversation
	Skipped       []*chat.MissingDataError
	Stats         Stats
}

// Scan reads the roster of every conversation folder, in folder-name order.
// Folders without a roster or message log, or with an unreadable roster, are
// reported in Skipped instead of failing the scan.
func (a *Archive) Scan() (ScanResult, error) {
	var res ScanResult

	entries, err := os.ReadDir(a.root)
	if err != nil {
		return res, fmt.Errorf("read archive %s: %w", a.root, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		res.Stats.Scanned++

		conv, err := a.readConversation(e.Name())
		if err != nil {
			var missing *chat.MissingDataError
			if !errors.As(err, &missing) {
				return res, err
			}
			res.Stats.Skipped++
			res.Skipped = append(res.Skipped, missing)
			observability.WithFields("folder", e.Name()).Warn("skipping conversation", "err", missing)
			continue
		}
		res.Stats.Loaded++
		res.Conversations = append(res.Conversations, conv)
	}

	return res, nil
}

// ListConversations returns the readable conversations of the archive.
func (a *Archive) ListConversations() ([]chat.Conversation, error) {
	res, err := a.Scan()
	if err != nil {
		return nil, err
	}
	observability.Logger().Debug("archive scanned", "root", a.root, "stats", res.Stats.String())
	return res.Conversations, nil
}

func (a *Archive) readConversation(id string) (chat.Conversation, error) {
	if _, err := os.Stat(a.MessagesPath(id)); err != nil {
		return chat.Conversation{}, &chat.MissingDataError{ConversationID: id, File: messagesFile}
	}

	data, err := os.ReadFile(a.rosterPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return chat.Conversation{}, &chat.MissingDataError{ConversationID: id, File: rosterFile}
	}
	if err != nil {
		return chat.Conversation{}, &chat.MissingDataError{ConversationID: id, File: rosterFile, Err: err}
	}
	conv, err := parseRoster(id, data)
	if err != nil {
		return chat.Conversation{}, &chat.MissingDataError{ConversationID: id, File: rosterFile, Err: err}
	}
	return conv, nil
}

// parseRoster decodes group_info.json:
//
//	{"members": [{"name": "...", "email": "..."}], "name": "..."}
func parseRoster(id string, data []byte) (chat.Conversation, error) {
	if !gjson.ValidBytes(data) {
		return chat.Conversation{}, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	members := doc.Get("members")
	if !members.IsArray() {
		return chat.Conversation{}, errors.New("no members list")
	}

	conv := chat.Conversation{
		ID:           id,
		DeclaredName: doc.Get("name").String(),
	}
	members.ForEach(func(_, m gjson.Result) bool {
		conv.Participants = append(conv.Participants, participantFrom(m))
		return true
	})
	return conv, nil
}

func participantFrom(v gjson.Result) chat.Participant {
	return chat.NewParticipant(v.Get("name").String(), v.Get("email").String())
}
