package archive

import (
	"os"
	"path/filepath"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/observability"
	"github.com/tidwall/gjson"
)

// ResolveCurrentUser reads the archive owner from Users/<user>/user_info.json,
// next to the Groups directory. It only succeeds when exactly one user folder
// exists and the file names both a user name and an email.
func (a *Archive) ResolveCurrentUser() (chat.Participant, bool) {
	log := observability.WithFields("root", a.root)

	usersDir := filepath.Join(filepath.Dir(a.root), "Users")
	entries, err := os.ReadDir(usersDir)
	if err != nil {
		log.Debug("no users directory", "err", err)
		return chat.Participant{}, false
	}
	if len(entries) != 1 {
		log.Debug("expected exactly one user folder", "found", len(entries))
		return chat.Participant{}, false
	}

	data, err := os.ReadFile(filepath.Join(usersDir, entries[0].Name(), userFile))
	if err != nil {
		log.Debug("read user info", "err", err)
		return chat.Participant{}, false
	}
	user := gjson.GetBytes(data, "user")
	name, email := user.Get("name"), user.Get("email")
	if !name.Exists() || !email.Exists() {
		log.Debug("user info lacks name or email")
		return chat.Participant{}, false
	}
	return chat.NewParticipant(name.String(), email.String()), true
}
