package chat

import (
	"strings"
	"time"
)

// Accumulator builds the full assistant response from streamed deltas.
// Scoped to a single stream session; create a fresh one per request.
type Accumulator struct {
	content    strings.Builder
	deltaCount int
	startTime  time.Time
	complete   bool
	failed     error
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{startTime: time.Now()}
}

// Add folds a delta into the accumulated state
func (a *Accumulator) Add(d Delta) {
	switch {
	case d.Err != nil:
		a.failed = d.Err
		a.complete = true
	case d.Done:
		a.complete = true
	default:
		a.content.WriteString(d.Content)
		a.deltaCount++
	}
}

// String returns the content accumulated so far
func (a *Accumulator) String() string {
	return a.content.String()
}

// Complete reports whether the stream has ended
func (a *Accumulator) Complete() bool {
	return a.complete
}

// Err returns the stream failure, if any
func (a *Accumulator) Err() error {
	return a.failed
}

// DeltaCount returns how many content deltas arrived
func (a *Accumulator) DeltaCount() int {
	return a.deltaCount
}

// Duration returns how long the stream has been running
func (a *Accumulator) Duration() time.Duration {
	return time.Since(a.startTime)
}
