package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hireterm/hireterm/pkg/chat"
	"github.com/hireterm/hireterm/pkg/config"
)

// StartApp runs the interactive chat view until the user quits
func StartApp(cfg *config.Config, token string, conv *chat.Conversation, history *chat.History) error {
	client := chat.NewStreamingClient(
		cfg.API.URL, token, cfg.Chat.Role, cfg.API.TimeoutOrDefault())

	model := NewModel(client, conv, history)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat view error: %w", err)
	}
	return nil
}
