package tui

import (
	"strings"

	"github.com/hireterm/hireterm/pkg/chat"
	"github.com/hireterm/hireterm/pkg/directive"
)

func (m Model) View() string {
	var status string
	if m.streaming {
		status = m.spinner.View() + " " + m.styles.Muted.Render(m.status)
	} else if m.status != "" {
		status = m.styles.Muted.Render(m.status)
	}

	return m.viewport.View() + "\n" + status + "\n" + m.textarea.View()
}

// renderTranscript renders every message in display order. The in-flight
// assistant message shows narrative only, with any unterminated directive
// suffix hidden; finished messages show narrative plus dispatched cards.
func (m Model) renderTranscript() string {
	var blocks []string

	for _, msg := range m.conv.Messages() {
		switch {
		case msg.IsSystem():
			continue

		case msg.IsUser():
			blocks = append(blocks,
				m.styles.UserLabel.Render("You")+"  "+msg.DisplayContent())

		case msg.IsAssistant() && msg.ID == m.inFlightID:
			blocks = append(blocks, m.renderStreamingMessage(msg))

		default:
			blocks = append(blocks, m.renderAssistantMessage(msg))
		}
	}

	if len(blocks) == 0 {
		return m.styles.Muted.Render(
			"Ask about jobs, get resume feedback, or search for candidates.")
	}

	return strings.Join(blocks, "\n\n")
}

func (m Model) renderStreamingMessage(msg chat.Message) string {
	label := m.styles.AssistantLabel.Render("Assistant")

	visible := directive.Extract(directive.HideUnterminated(msg.Content)).Narrative
	if visible == "" {
		return label
	}
	return label + "\n" + m.markdown.Format(visible)
}

func (m Model) renderAssistantMessage(msg chat.Message) string {
	label := m.styles.AssistantLabel.Render("Assistant")

	result := directive.Extract(msg.Content)

	parts := []string{label}
	if result.Narrative != "" {
		parts = append(parts, m.markdown.Format(result.Narrative))
	}
	parts = append(parts, m.renderer.RenderAll(result.Payloads)...)

	return strings.Join(parts, "\n")
}
