package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hireterm/hireterm/pkg/chat"
)

// streamOpenedMsg reports that the completion request is streaming
type streamOpenedMsg struct {
	id     string
	deltas <-chan chat.Delta
}

// streamFailedMsg reports a failure before any content arrived
type streamFailedMsg struct {
	id  string
	err error
}

// deltaMsg carries one increment for the in-flight message
type deltaMsg struct {
	id    string
	delta chat.Delta
}

// openStream starts the completion request for the in-flight message
func openStream(ctx context.Context, client *chat.StreamingClient, conv *chat.Conversation, id string) tea.Cmd {
	return func() tea.Msg {
		deltas, err := client.StreamCompletion(ctx, conv)
		if err != nil {
			return streamFailedMsg{id: id, err: err}
		}
		return streamOpenedMsg{id: id, deltas: deltas}
	}
}

// waitForDelta yields the next delta from the stream channel. A closed
// channel counts as completion.
func waitForDelta(id string, deltas <-chan chat.Delta) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-deltas
		if !ok {
			return deltaMsg{id: id, delta: chat.Delta{Done: true}}
		}
		return deltaMsg{id: id, delta: d}
	}
}
