// Package archive reads a Google Chat Takeout export from disk.
package archive

import (
	"os"
	"path/filepath"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
)

const (
	rosterFile   = "group_info.json"
	messagesFile = "messages.json"
	userFile     = "user_info.json"
)

// Archive is the Groups directory of a Takeout export.
type Archive struct {
	root string
}

// ResolvePath completes a user-supplied path to the Groups directory. The path
// may point at the Takeout root, its "Google Chat" directory or "Groups" itself.
func ResolvePath(path string) string {
	path = filepath.Clean(path)
	switch filepath.Base(path) {
	case "Groups":
		return path
	case "Google Chat":
		return filepath.Join(path, "Groups")
	case "Takeout":
		return filepath.Join(path, "Google Chat", "Groups")
	default:
		return filepath.Join(path, "Takeout", "Google Chat", "Groups")
	}
}

// Open resolves path and checks that the Groups directory exists.
func Open(path string) (*Archive, error) {
	root := ResolvePath(path)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &chat.ArchiveNotFoundError{Path: root}
	}
	return &Archive{root: root}, nil
}

// Root returns the Groups directory.
func (a *Archive) Root() string {
	return a.root
}

// MessagesPath returns the message log file of a conversation.
func (a *Archive) MessagesPath(conversationID string) string {
	return filepath.Join(a.root, conversationID, messagesFile)
}

func (a *Archive) rosterPath(conversationID string) string {
	return filepath.Join(a.root, conversationID, rosterFile)
}
