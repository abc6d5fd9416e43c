package chat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// History persists a chat transcript to a JSON file so a session can be
// resumed with --continue.
type History struct {
	Messages []Message `json:"messages"`
	mu       sync.RWMutex
	filePath string
}

// NewHistory creates a history manager backed by the given file, loading
// any existing transcript.
func NewHistory(filePath string) (*History, error) {
	h := &History{
		Messages: make([]Message, 0),
		filePath: filePath,
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := h.Load(); err != nil {
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
	}

	return h, nil
}

// Add appends a message and saves
func (h *History) Add(msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Messages = append(h.Messages, msg)
	return h.save()
}

// Replace overwrites the whole transcript and saves
func (h *History) Replace(msgs []Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Messages = make([]Message, len(msgs))
	copy(h.Messages, msgs)
	return h.save()
}

// GetMessages returns a copy of the persisted transcript
func (h *History) GetMessages() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msgs := make([]Message, len(h.Messages))
	copy(msgs, h.Messages)
	return msgs
}

// Clear empties the transcript and saves
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Messages = h.Messages[:0]
	return h.save()
}

// Load reads the transcript from disk
func (h *History) Load() error {
	data, err := os.ReadFile(h.filePath)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	return json.Unmarshal(data, h)
}

func (h *History) save() error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	return os.WriteFile(h.filePath, data, 0644)
}
