package chat

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/hireterm/hireterm/pkg/logger"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// completionChunk mirrors the event records the completion endpoint emits
type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// EventDecoder turns a raw server-sent-event byte stream into a sequence of
// content deltas. Records are newline-delimited; a partial trailing fragment
// is retained across reads, so framing never has to align with read
// boundaries. Records that fail to parse are dropped silently — network
// chunking can garble an individual record without invalidating the stream.
type EventDecoder struct {
	scanner *bufio.Scanner
	done    bool
	dropped int
	log     *logger.Logger
}

// NewEventDecoder creates a decoder over the response body
func NewEventDecoder(r io.Reader) *EventDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &EventDecoder{
		scanner: scanner,
		log:     logger.WithComponent("event_decoder"),
	}
}

// Next returns the next non-empty content delta. io.EOF signals the end of
// the stream — either the [DONE] sentinel or a natural close, both success.
func (d *EventDecoder) Next() (string, error) {
	if d.done {
		return "", io.EOF
	}

	for d.scanner.Scan() {
		line := d.scanner.Text()
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, dataPrefix) {
			// Comment or unknown field per the SSE framing; not a payload
			continue
		}

		payload := strings.TrimPrefix(line, dataPrefix)
		if strings.TrimSpace(payload) == doneSentinel {
			d.done = true
			return "", io.EOF
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// Permanently dropped: the record never reassembles once the
			// newline that framed it has been consumed
			d.dropped++
			d.log.Debug("dropping malformed stream record", "dropped_total", d.dropped)
			continue
		}

		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			return chunk.Choices[0].Delta.Content, nil
		}
	}

	if err := d.scanner.Err(); err != nil {
		return "", err
	}

	d.done = true
	return "", io.EOF
}

// Dropped reports how many malformed records were skipped
func (d *EventDecoder) Dropped() int {
	return d.dropped
}
