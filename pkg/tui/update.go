package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const streamErrorText = "Sorry, there was an error processing your request."

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case streamOpenedMsg:
		if msg.id != m.inFlightID {
			return m, nil
		}
		m.deltas = msg.deltas
		m.status = "thinking"
		return m, waitForDelta(msg.id, msg.deltas)

	case streamFailedMsg:
		if msg.id != m.inFlightID {
			return m, nil
		}
		m.log.Error("failed to open stream", "error", msg.err)
		m.conv.FinalizeOnError(msg.id, streamErrorText)
		m.endStream()
		m.saveHistory()
		m.refreshViewport()

	case deltaMsg:
		return m.handleDelta(msg)

	case spinner.TickMsg:
		if m.streaming {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	default:
		var tiCmd tea.Cmd
		m.textarea, tiCmd = m.textarea.Update(msg)
		cmds = append(cmds, tiCmd)

		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleDelta(msg deltaMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.inFlightID {
		// Stale delta from a cancelled stream
		return m, nil
	}

	d := msg.delta
	switch {
	case d.Err != nil:
		m.log.Error("stream failed", "error", d.Err)
		m.conv.FinalizeOnError(msg.id, streamErrorText)
		m.endStream()
		m.saveHistory()
		m.refreshViewport()
		return m, nil

	case d.Done:
		m.conv.FinalizeAssistantMessage(msg.id)
		m.endStream()
		m.saveHistory()
		m.refreshViewport()
		return m, nil

	default:
		m.conv.AppendDelta(msg.id, d.Content)
		m.status = "receiving"
		m.refreshViewport()
		return m, waitForDelta(msg.id, m.deltas)
	}
}
