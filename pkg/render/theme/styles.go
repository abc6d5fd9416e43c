package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 palette with warm earth tones
var (
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, borders
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase06 = lipgloss.Color("#d3b597") // Light foreground
	ColorBase07 = lipgloss.Color("#f5d7b9") // Lightest foreground

	ColorRed    = lipgloss.Color("#d95f5f")
	ColorOrange = lipgloss.Color("#eb8755")
	ColorYellow = lipgloss.Color("#f5b761")
	ColorGreen  = lipgloss.Color("#93b56b")
	ColorCyan   = lipgloss.Color("#61afaf")
	ColorBlue   = lipgloss.Color("#6b93b5")
	ColorPurple = lipgloss.Color("#976bb5")

	ColorBorder  = ColorBase03
	ColorFocus   = ColorOrange
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed
	ColorMuted   = ColorBase03
)

// Styles defines the lipgloss styles shared by the TUI and card renderers
type Styles struct {
	// Transcript labels
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	ErrorText      lipgloss.Style
	Muted          lipgloss.Style

	// Component cards
	CardBorder lipgloss.Style
	CardTitle  lipgloss.Style
	CardLabel  lipgloss.Style
	CardValue  lipgloss.Style
	Chip       lipgloss.Style

	// Scores and charts
	ScoreHigh lipgloss.Style
	ScoreMid  lipgloss.Style
	ScoreLow  lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	// Narrative markdown
	Header     lipgloss.Style
	Bold       lipgloss.Style
	InlineCode lipgloss.Style
	Bullet     lipgloss.Style

	// Chrome
	InputPrompt lipgloss.Style
	StatusBar   lipgloss.Style
	Spinner     lipgloss.Style
}

// DefaultStyles returns the standard style set
func DefaultStyles() *Styles {
	return &Styles{
		UserLabel:      lipgloss.NewStyle().Foreground(ColorBlue).Bold(true),
		AssistantLabel: lipgloss.NewStyle().Foreground(ColorGreen).Bold(true),
		ErrorText:      lipgloss.NewStyle().Foreground(ColorError),
		Muted:          lipgloss.NewStyle().Foreground(ColorMuted),

		CardBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(ColorBase07).Bold(true),
		CardLabel: lipgloss.NewStyle().Foreground(ColorBase05),
		CardValue: lipgloss.NewStyle().Foreground(ColorBase06),
		Chip: lipgloss.NewStyle().
			Foreground(ColorBase00).
			Background(ColorCyan).
			Padding(0, 1),

		ScoreHigh: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		ScoreMid:  lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
		ScoreLow:  lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		BarFilled: lipgloss.NewStyle().Foreground(ColorOrange),
		BarEmpty:  lipgloss.NewStyle().Foreground(ColorBase02),

		Header:     lipgloss.NewStyle().Foreground(ColorBase07).Bold(true),
		Bold:       lipgloss.NewStyle().Bold(true),
		InlineCode: lipgloss.NewStyle().Foreground(ColorYellow),
		Bullet:     lipgloss.NewStyle().Foreground(ColorOrange),

		InputPrompt: lipgloss.NewStyle().Foreground(ColorFocus),
		StatusBar:   lipgloss.NewStyle().Foreground(ColorBase05).Background(ColorBase02),
		Spinner:     lipgloss.NewStyle().Foreground(ColorOrange),
	}
}
