package chat

import "fmt"

// ArchiveNotFoundError means the archive root does not exist.
type ArchiveNotFoundError struct {
	Path string
}

func (e *ArchiveNotFoundError) Error() string {
	return fmt.Sprintf("archive not found: %s", e.Path)
}

// MissingDataError means a conversation folder lacks its roster or message log,
// or one of them could not be read.
type MissingDataError struct {
	ConversationID string
	File           string
	Err            error
}

func (e *MissingDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversation %s: %s: %v", e.ConversationID, e.File, e.Err)
	}
	return fmt.Sprintf("conversation %s: missing %s", e.ConversationID, e.File)
}

func (e *MissingDataError) Unwrap() error { return e.Err }

// NotFoundError means a conversation's message log could not be loaded.
type NotFoundError struct {
	ConversationID string
	Err            error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversation %s not found: %v", e.ConversationID, e.Err)
	}
	return fmt.Sprintf("conversation %s not found", e.ConversationID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// AmbiguousParticipantError means the current user could not be used to pick
// the other participant of a DM.
type AmbiguousParticipantError struct {
	ConversationID string
	CurrentUser    string
	Participants   []string
}

func (e *AmbiguousParticipantError) Error() string {
	return fmt.Sprintf("conversation %s: cannot find other participant for %q among %q",
		e.ConversationID, e.CurrentUser, e.Participants)
}

// InvalidSelectionError means a user-provided choice is non-numeric or out of range.
type InvalidSelectionError struct {
	Input string
	Max   int
}

func (e *InvalidSelectionError) Error() string {
	if e.Max <= 0 {
		return fmt.Sprintf("invalid selection %q: nothing to choose from", e.Input)
	}
	return fmt.Sprintf("invalid selection %q: expected a number between 1 and %d", e.Input, e.Max)
}
