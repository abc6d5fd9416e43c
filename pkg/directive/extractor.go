// Package directive separates free-form assistant text from the inline
// [UI:<tag>]{...json...}[/UI] blocks the model embeds to request generative
// UI components. The delimiter syntax is a wire contract with the backend's
// prompt and must not drift.
package directive

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hireterm/hireterm/pkg/logger"
)

var pattern = regexp.MustCompile(`(?s)\[UI:([A-Za-z0-9_-]+)\](.*?)\[/UI\]`)

// Payload is one extracted component: a type tag and its JSON body.
// Derived from message content on demand, never mutated.
type Payload struct {
	Type string
	Data json.RawMessage
}

// Result holds the outcome of extraction: the narrative text with every
// directive span removed, the payloads in order of appearance, and how many
// malformed directives were dropped.
type Result struct {
	Narrative string
	Payloads  []Payload
	Dropped   int
}

// Extract scans text for non-overlapping directives, left to right. A
// directive with a malformed JSON body contributes no payload but is still
// stripped from the narrative so raw JSON never reaches the user. Extraction
// is idempotent: re-running it on the stripped narrative is a no-op.
func Extract(text string) Result {
	log := logger.WithComponent("directive")

	matches := pattern.FindAllStringSubmatch(text, -1)

	result := Result{}
	for _, m := range matches {
		tag := m[1]
		body := strings.TrimSpace(m[2])

		var probe any
		if err := json.Unmarshal([]byte(body), &probe); err != nil {
			result.Dropped++
			log.Debug("dropping malformed directive body", "tag", tag, "error", err)
			continue
		}

		result.Payloads = append(result.Payloads, Payload{
			Type: tag,
			Data: json.RawMessage(body),
		})
	}

	// Strip every matched span, malformed ones included; trim the ends only
	result.Narrative = strings.TrimSpace(pattern.ReplaceAllString(text, ""))
	return result
}

// openSentinel starts a directive; any trailing prefix of it may be the
// beginning of one split across deltas.
const openSentinel = "[UI:"

// HideUnterminated returns text safe to show while the stream is still in
// flight: everything from the last directive opener that has no closing tag
// yet is suppressed, as is a partial opener split across delta boundaries.
// Stored message content is never modified; this only shapes the live view.
func HideUnterminated(text string) string {
	if i := strings.LastIndex(text, openSentinel); i >= 0 {
		if !strings.Contains(text[i:], "[/UI]") {
			return strings.TrimRight(text[:i], " ")
		}
	}

	for n := len(openSentinel) - 1; n > 0; n-- {
		if strings.HasSuffix(text, openSentinel[:n]) {
			return strings.TrimRight(text[:len(text)-n], " ")
		}
	}

	return text
}
