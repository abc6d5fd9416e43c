package chat

import "errors"

// ErrStreamInFlight is returned when a new assistant message is requested
// while another one is still receiving deltas.
var ErrStreamInFlight = errors.New("assistant message already in flight")

// Conversation owns the ordered message list for a single chat view and the
// mutation protocol around the in-flight assistant message. At most one
// message is in flight at a time, and it is always the most recently
// appended assistant message.
type Conversation struct {
	Model string

	messages   []Message
	inFlightID string
}

// NewConversation creates an empty conversation for the given model
func NewConversation(model string) *Conversation {
	return &Conversation{
		Model:    model,
		messages: make([]Message, 0),
	}
}

// NewConversationWithSystem seeds the conversation with a system prompt
func NewConversationWithSystem(model, systemPrompt string) *Conversation {
	conv := NewConversation(model)
	if systemPrompt != "" {
		conv.messages = append(conv.messages, NewSystemMessage(systemPrompt))
	}
	return conv
}

// Restore appends previously persisted messages, dropping any empty
// assistant placeholder left over from an interrupted stream.
func (c *Conversation) Restore(msgs []Message) {
	for _, m := range msgs {
		if m.IsAssistant() && m.IsEmpty() {
			continue
		}
		c.messages = append(c.messages, m)
	}
}

// AppendUserMessage adds a user message at the end. display may differ from
// content when the text sent to the model is not what the user should see.
func (c *Conversation) AppendUserMessage(content, display string) Message {
	msg := NewUserMessage(content, display)
	c.messages = append(c.messages, msg)
	return msg
}

// BeginAssistantMessage appends an empty assistant placeholder and marks it
// in flight. Rejects a second in-flight message.
func (c *Conversation) BeginAssistantMessage() (Message, error) {
	if c.inFlightID != "" {
		return Message{}, ErrStreamInFlight
	}

	msg := NewAssistantMessage()
	c.messages = append(c.messages, msg)
	c.inFlightID = msg.ID
	return msg, nil
}

// AppendDelta concatenates delta onto the message with the given id.
// A miss is a silent no-op: it cannot happen under correct sequencing and is
// not worth failing the stream over.
func (c *Conversation) AppendDelta(id, delta string) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].ID == id {
			c.messages[i].Content += delta
			return
		}
	}
}

// FinalizeAssistantMessage marks the in-flight message complete
func (c *Conversation) FinalizeAssistantMessage(id string) {
	if c.inFlightID == id {
		c.inFlightID = ""
	}
}

// FinalizeOnError replaces the in-flight message's content with a user-facing
// error string and clears the in-flight marker.
func (c *Conversation) FinalizeOnError(id, errorText string) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].ID == id {
			c.messages[i].Content = errorText
			break
		}
	}
	if c.inFlightID == id {
		c.inFlightID = ""
	}
}

// InFlight reports the id of the assistant message currently receiving
// deltas, if any.
func (c *Conversation) InFlight() (string, bool) {
	return c.inFlightID, c.inFlightID != ""
}

// Messages returns a copy of the transcript in display order
func (c *Conversation) Messages() []Message {
	result := make([]Message, len(c.messages))
	copy(result, c.messages)
	return result
}

// Len returns the number of messages in the transcript
func (c *Conversation) Len() int {
	return len(c.messages)
}

// LastMessage returns the most recent message, if any
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// WireMessage is the role/content pair sent to the completion endpoint
type WireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// WireMessages flattens the transcript into the request payload, skipping the
// empty in-flight placeholder.
func (c *Conversation) WireMessages() []WireMessage {
	result := make([]WireMessage, 0, len(c.messages))
	for _, m := range c.messages {
		if m.ID == c.inFlightID && m.IsEmpty() {
			continue
		}
		result = append(result, WireMessage{Role: m.Role, Content: m.Content})
	}
	return result
}
