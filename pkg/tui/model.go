package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hireterm/hireterm/pkg/chat"
	"github.com/hireterm/hireterm/pkg/logger"
	"github.com/hireterm/hireterm/pkg/render"
	"github.com/hireterm/hireterm/pkg/render/theme"
)

// Model is the chat view: a transcript viewport over a single-line-ish
// textarea, with one stream in flight at most.
type Model struct {
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	styles   *theme.Styles
	renderer *render.Renderer
	markdown *render.Formatter

	client  *chat.StreamingClient
	conv    *chat.Conversation
	history *chat.History

	deltas       <-chan chat.Delta
	cancelStream context.CancelFunc
	streaming    bool
	inFlightID   string

	width       int
	height      int
	numEscPress int
	status      string
	log         *logger.Logger
}

// NewModel creates the chat model. history may be nil when persistence is
// disabled.
func NewModel(client *chat.StreamingClient, conv *chat.Conversation, history *chat.History) Model {
	ta := textarea.New()
	ta.Focus()
	ta.Placeholder = "Ask about jobs, candidates, resume feedback..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := theme.DefaultStyles()
	sp.Style = styles.Spinner

	return Model{
		viewport: vp,
		textarea: ta,
		spinner:  sp,
		styles:   styles,
		renderer: render.NewRenderer(80),
		markdown: render.NewFormatter(80),
		client:   client,
		conv:     conv,
		history:  history,
		log:      logger.WithComponent("tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *Model) handleWindowResize(width, height int) {
	m.width = width
	m.height = height

	m.textarea.SetWidth(width)
	m.viewport.Width = width
	m.viewport.Height = height - m.textarea.Height() - 2

	m.renderer.SetWidth(width)
	m.markdown = render.NewFormatter(width)

	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// endStream clears in-flight state after completion, failure or cancel
func (m *Model) endStream() {
	if m.cancelStream != nil {
		m.cancelStream()
		m.cancelStream = nil
	}
	m.streaming = false
	m.inFlightID = ""
	m.deltas = nil
	m.status = ""
}

func (m *Model) saveHistory() {
	if m.history == nil {
		return
	}
	if err := m.history.Replace(m.conv.Messages()); err != nil {
		m.log.Warn("failed to save history", "error", err)
	}
}
