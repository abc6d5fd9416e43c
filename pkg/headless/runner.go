// Package headless runs a single prompt without the TUI: the narrative
// streams to stdout as it arrives, component cards render once at the end.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hireterm/hireterm/pkg/chat"
	"github.com/hireterm/hireterm/pkg/config"
	"github.com/hireterm/hireterm/pkg/directive"
	"github.com/hireterm/hireterm/pkg/logger"
	"github.com/hireterm/hireterm/pkg/render"
)

// Runner executes one prompt against the completion endpoint
type Runner struct {
	client   *chat.StreamingClient
	conv     *chat.Conversation
	renderer *render.Renderer
	out      io.Writer
	plain    bool
	log      *logger.Logger
}

// NewRunner builds a runner from the loaded config and cached token
func NewRunner(cfg *config.Config, token string, out io.Writer, plain bool) *Runner {
	client := chat.NewStreamingClient(
		cfg.API.URL, token, cfg.Chat.Role, cfg.API.TimeoutOrDefault())

	return &Runner{
		client:   client,
		conv:     chat.NewConversationWithSystem(cfg.Chat.Model, cfg.Chat.SystemPrompt),
		renderer: render.NewRenderer(100),
		out:      out,
		plain:    plain,
		log:      logger.WithComponent("headless"),
	}
}

// Run streams the response for a single prompt. The raw narrative is echoed
// delta by delta; directives are stripped and rendered as cards afterwards.
func (r *Runner) Run(ctx context.Context, prompt string) error {
	r.conv.AppendUserMessage(prompt, "")
	msg, err := r.conv.BeginAssistantMessage()
	if err != nil {
		return err
	}

	deltas, err := r.client.StreamCompletion(ctx, r.conv)
	if err != nil {
		r.conv.FinalizeOnError(msg.ID, err.Error())
		return fmt.Errorf("failed to open stream: %w", err)
	}

	acc := chat.NewAccumulator()
	printed := 0

	for d := range deltas {
		acc.Add(d)
		if d.Err != nil {
			r.conv.FinalizeOnError(msg.ID, "Sorry, there was an error processing your request.")
			return fmt.Errorf("stream failed: %w", d.Err)
		}
		if d.Done {
			break
		}

		r.conv.AppendDelta(msg.ID, d.Content)

		// Echo only the part known to be narrative: completed directives
		// are stripped, an unterminated one at the end of the buffer is
		// held back until it closes
		visible := directive.Extract(directive.HideUnterminated(acc.String())).Narrative
		if len(visible) > printed {
			fmt.Fprint(r.out, visible[printed:])
			printed = len(visible)
		}
	}

	r.conv.FinalizeAssistantMessage(msg.ID)
	r.log.Debug("stream complete",
		"deltas", acc.DeltaCount(), "duration", acc.Duration().Round(time.Millisecond))

	result := directive.Extract(acc.String())

	// Flush narrative the directive hiding held back
	if len(result.Narrative) > printed {
		fmt.Fprint(r.out, result.Narrative[printed:])
	}
	fmt.Fprintln(r.out)

	if r.plain {
		return nil
	}

	for _, block := range r.renderer.RenderAll(result.Payloads) {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, block)
	}

	return nil
}
