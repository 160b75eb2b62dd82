package chat

// UnknownEmail stands in for a roster member or message creator without an email.
const UnknownEmail = "Unknown Email"

// PlaceholderGroupName is the generic name Google Chat gives unnamed group chats.
const PlaceholderGroupName = "Group Chat"

type Participant struct {
	Name  string
	Email string // UnknownEmail when absent from the export
}

// NewParticipant builds a participant, substituting UnknownEmail for an empty email.
func NewParticipant(name, email string) Participant {
	if email == "" {
		email = UnknownEmail
	}
	return Participant{Name: name, Email: email}
}

// ID is the composite identity key "name - email".
func (p Participant) ID() string {
	return p.Name + " - " + p.Email
}

type Conversation struct {
	ID           string // folder name under Groups/
	Participants []Participant
	DeclaredName string // "" when the roster has no name
}

type Message struct {
	Sender Participant
	Text   string
}
