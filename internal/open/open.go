// Package open shows a conversation's raw message log in the user's editor.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// MessageLocator resolves a conversation id to its message log file.
type MessageLocator interface {
	MessagesPath(conversationID string) string
}

// OpenConversation opens the message log of conversationID in $EDITOR, or
// less when $EDITOR is unset.
func OpenConversation(loc MessageLocator, conversationID string) error {
	filePath := loc.MessagesPath(conversationID)
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not found: %s", filePath)
	}

	editor := os.Getenv("EDITOR")
	if strings.TrimSpace(editor) == "" {
		editor = "less"
	}

	cmd := editorCommand(editor, filePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// editorCommand builds the command line; editors that take extra arguments
// in $EDITOR (e.g. "code --wait") are split on spaces.
func editorCommand(editor, filePath string) *exec.Cmd {
	fields := strings.Fields(editor)
	args := append(fields[1:], filePath)
	if strings.Contains(fields[0], "less") {
		// jump past the opening brace straight to the first message
		args = append([]string{"+/\"messages\""}, args...)
	}
	return exec.Command(fields[0], args...)
}
