package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Payload types for the supported component kinds. JSON field names are part
// of the wire contract with the backend's prompt; see pkg/schema for the
// exported schemas.

// CandidateCard summarizes a candidate profile
type CandidateCard struct {
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Skills          []string `json:"skills"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	MatchScore      *float64 `json:"match_score,omitempty"`
	Summary         string   `json:"summary,omitempty"`
}

// JobCard summarizes a job posting
type JobCard struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	MatchScore     *float64 `json:"match_score,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// RankedItem is one row of a RankedList
type RankedItem struct {
	Rank    int      `json:"rank"`
	Name    string   `json:"name"`
	Score   *float64 `json:"score,omitempty"`
	Details string   `json:"details,omitempty"`
}

// RankedList is an ordered result list, e.g. top candidates for a job
type RankedList struct {
	Title string       `json:"title"`
	Items []RankedItem `json:"items"`
}

// SkillLevel is one bar of a SkillsChart, level 1-5
type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillsChart shows skill proficiency levels
type SkillsChart struct {
	Skills []SkillLevel `json:"skills"`
}

// ScoreBreakdown is one category row of a MatchSummary
type ScoreBreakdown struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Notes    string  `json:"notes,omitempty"`
}

// MatchSummary shows an overall match score with a per-category breakdown
type MatchSummary struct {
	OverallScore   *float64         `json:"overall_score"`
	Breakdown      []ScoreBreakdown `json:"breakdown,omitempty"`
	Recommendation string           `json:"recommendation,omitempty"`
}

const skillLevelMax = 5

func (r *Renderer) renderCandidateCard(c CandidateCard) (string, bool) {
	if c.Name == "" || len(c.Skills) == 0 {
		return "", false
	}

	var lines []string
	title := r.styles.CardTitle.Render(c.Name)
	if c.MatchScore != nil {
		title += "  " + r.scoreStyle(*c.MatchScore).Render(fmt.Sprintf("%.0f%%", *c.MatchScore))
	}
	lines = append(lines, title)

	if c.Email != "" {
		lines = append(lines, r.field("Email", c.Email))
	}
	if c.ExperienceYears != nil {
		lines = append(lines, r.field("Experience", fmt.Sprintf("%.0f years", *c.ExperienceYears)))
	}
	lines = append(lines, r.chips("Skills", c.Skills))
	if c.Summary != "" {
		lines = append(lines, r.styles.CardValue.Render(r.wrap(c.Summary)))
	}

	return r.box(lines), true
}

func (r *Renderer) renderJobCard(j JobCard) (string, bool) {
	if j.Title == "" || j.Company == "" {
		return "", false
	}

	var lines []string
	title := r.styles.CardTitle.Render(j.Title) + " " + r.styles.CardLabel.Render("@ "+j.Company)
	if j.MatchScore != nil {
		title += "  " + r.scoreStyle(*j.MatchScore).Render(fmt.Sprintf("%.0f%%", *j.MatchScore))
	}
	lines = append(lines, title)

	if j.Location != "" {
		lines = append(lines, r.field("Location", j.Location))
	}
	if j.SalaryRange != "" {
		lines = append(lines, r.field("Salary", j.SalaryRange))
	}
	if len(j.RequiredSkills) > 0 {
		lines = append(lines, r.chips("Required", j.RequiredSkills))
	}
	if j.Description != "" {
		lines = append(lines, r.styles.CardValue.Render(r.wrap(j.Description)))
	}

	return r.box(lines), true
}

func (r *Renderer) renderRankedList(l RankedList) (string, bool) {
	if l.Title == "" || len(l.Items) == 0 {
		return "", false
	}

	lines := []string{r.styles.CardTitle.Render(l.Title)}
	for _, item := range l.Items {
		row := fmt.Sprintf("%2d. %s", item.Rank, r.styles.CardValue.Render(item.Name))
		if item.Score != nil {
			row += "  " + r.scoreStyle(*item.Score).Render(fmt.Sprintf("%.0f", *item.Score))
		}
		lines = append(lines, row)
		if item.Details != "" {
			lines = append(lines, "    "+r.styles.Muted.Render(r.wrap(item.Details)))
		}
	}

	return r.box(lines), true
}

func (r *Renderer) renderSkillsChart(c SkillsChart) (string, bool) {
	if len(c.Skills) == 0 {
		return "", false
	}

	nameWidth := 0
	for _, s := range c.Skills {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	var lines []string
	for _, s := range c.Skills {
		level := s.Level
		if level < 0 {
			level = 0
		}
		if level > skillLevelMax {
			level = skillLevelMax
		}
		bar := r.styles.BarFilled.Render(strings.Repeat("█", level*4)) +
			r.styles.BarEmpty.Render(strings.Repeat("░", (skillLevelMax-level)*4))
		lines = append(lines, fmt.Sprintf("%-*s %s %d/%d",
			nameWidth, s.Name, bar, level, skillLevelMax))
	}

	return r.box(lines), true
}

func (r *Renderer) renderMatchSummary(m MatchSummary) (string, bool) {
	if m.OverallScore == nil {
		return "", false
	}

	score := *m.OverallScore
	lines := []string{
		r.styles.CardTitle.Render("Match Score") + "  " +
			r.scoreStyle(score).Render(fmt.Sprintf("%.0f / 100", score)),
	}

	for _, b := range m.Breakdown {
		row := r.field(b.Category, fmt.Sprintf("%.0f", b.Score))
		if b.Notes != "" {
			row += " " + r.styles.Muted.Render("("+b.Notes+")")
		}
		lines = append(lines, row)
	}

	if m.Recommendation != "" {
		lines = append(lines, r.styles.CardValue.Render(r.wrap(m.Recommendation)))
	}

	return r.box(lines), true
}

// helpers

func (r *Renderer) box(lines []string) string {
	return r.styles.CardBorder.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) field(label, value string) string {
	return r.styles.CardLabel.Render(label+": ") + r.styles.CardValue.Render(value)
}

func (r *Renderer) chips(label string, values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, r.styles.Chip.Render(v))
	}
	return r.styles.CardLabel.Render(label+": ") +
		lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

func (r *Renderer) scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 75:
		return r.styles.ScoreHigh
	case score >= 50:
		return r.styles.ScoreMid
	default:
		return r.styles.ScoreLow
	}
}

func (r *Renderer) wrap(text string) string {
	width := r.width - 6
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
