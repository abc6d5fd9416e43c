// Package render maps extracted directive payloads to terminal views.
package render

import (
	"encoding/json"

	"github.com/hireterm/hireterm/pkg/directive"
	"github.com/hireterm/hireterm/pkg/logger"
	"github.com/hireterm/hireterm/pkg/render/theme"
)

// The closed set of supported component tags. Fixed per release; a backend
// emitting anything else degrades to rendering nothing.
const (
	TagCandidateCard = "candidate-summary-card"
	TagJobCard       = "job-summary-card"
	TagRankedList    = "ranked-list"
	TagSkillsChart   = "skills-proficiency-chart"
	TagMatchSummary  = "match-score-summary"
)

// Renderer turns directive payloads into styled terminal blocks
type Renderer struct {
	styles *theme.Styles
	width  int
	log    *logger.Logger
}

// NewRenderer creates a renderer targeting the given terminal width
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		styles: theme.DefaultStyles(),
		width:  width,
		log:    logger.WithComponent("render"),
	}
}

// SetWidth updates the target width on terminal resize
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Render dispatches a payload to its view by type tag. Unknown tags and
// payloads missing their required fields render nothing; neither is an
// error.
func (r *Renderer) Render(p directive.Payload) (string, bool) {
	switch p.Type {
	case TagCandidateCard:
		var c CandidateCard
		if !decode(r, p, &c) {
			return "", false
		}
		return r.renderCandidateCard(c)

	case TagJobCard:
		var j JobCard
		if !decode(r, p, &j) {
			return "", false
		}
		return r.renderJobCard(j)

	case TagRankedList:
		var l RankedList
		if !decode(r, p, &l) {
			return "", false
		}
		return r.renderRankedList(l)

	case TagSkillsChart:
		var c SkillsChart
		if !decode(r, p, &c) {
			return "", false
		}
		return r.renderSkillsChart(c)

	case TagMatchSummary:
		var m MatchSummary
		if !decode(r, p, &m) {
			return "", false
		}
		return r.renderMatchSummary(m)

	default:
		r.log.Debug("unknown component tag", "tag", p.Type)
		return "", false
	}
}

// RenderAll renders every payload that produces output, in order
func (r *Renderer) RenderAll(payloads []directive.Payload) []string {
	var blocks []string
	for _, p := range payloads {
		if block, ok := r.Render(p); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func decode(r *Renderer, p directive.Payload, out any) bool {
	if err := json.Unmarshal(p.Data, out); err != nil {
		r.log.Debug("component payload does not fit its schema", "tag", p.Type, "error", err)
		return false
	}
	return true
}
