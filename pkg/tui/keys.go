package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func handleKeyMsg(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		// Abort any in-flight request before leaving
		m.endStream()
		return m, tea.Quit

	case tea.KeyEscape:
		m.numEscPress++
		if m.numEscPress == 2 {
			m.textarea.Reset()
			m.numEscPress = 0
			return m, nil
		}
		return m, nil

	case tea.KeyEnter:
		if msg.Alt {
			// Alt+Enter adds a newline
			break
		}
		return m.submit()
	}

	m.numEscPress = 0

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit sends the current input. Rejected while a stream is in flight:
// one in-flight assistant message per conversation.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.streaming {
		m.status = "waiting for the current response"
		return m, nil
	}

	text := strings.TrimSpace(m.textarea.Value())
	if text == "" {
		return m, nil
	}

	m.conv.AppendUserMessage(text, "")
	asst, err := m.conv.BeginAssistantMessage()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.textarea.Reset()
	m.streaming = true
	m.inFlightID = asst.ID
	m.status = "connecting"

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelStream = cancel

	m.refreshViewport()
	return m, tea.Batch(
		m.spinner.Tick,
		openStream(ctx, m.client, m.conv, asst.ID),
	)
}
