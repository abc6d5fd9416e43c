package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a single entry in a conversation transcript. ID is the identity;
// content of an assistant message grows by delta appends while its stream is
// in flight and is immutable afterwards.
type Message struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	HumanFriendly string    `json:"human_friendly_content,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// NewUserMessage creates a user message. display is what the transcript shows
// when it differs from the text sent to the model; empty means show content.
func NewUserMessage(content, display string) Message {
	return Message{
		ID:            uuid.NewString(),
		Role:          RoleUser,
		Content:       strings.TrimSpace(content),
		HumanFriendly: strings.TrimSpace(display),
		Timestamp:     time.Now(),
	}
}

// NewAssistantMessage creates an empty assistant placeholder ready to receive
// streamed deltas.
func NewAssistantMessage() Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   "",
		Timestamp: time.Now(),
	}
}

func NewSystemMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleSystem,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

func (m Message) IsSystem() bool {
	return m.Role == RoleSystem
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Content) == ""
}

// DisplayContent returns the human-facing text for the transcript
func (m Message) DisplayContent() string {
	if m.HumanFriendly != "" {
		return m.HumanFriendly
	}
	return m.Content
}
