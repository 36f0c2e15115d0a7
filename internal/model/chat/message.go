package chat

import "time"

// Sender identifies which side of the conversation produced a turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// DisplayName returns the label used when rendering or exporting a turn.
func (s Sender) DisplayName() string {
	if s == SenderBot {
		return "TatvaAI"
	}
	return "You"
}

// Message is one immutable turn in a session's append-only history.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
