package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hireterm/hireterm/pkg/logger"
)

// Delta is a single increment from a streaming completion. Exactly one of
// Content, Done or Err is meaningful per value; the channel closes after a
// Done or Err delta.
type Delta struct {
	Content string
	Done    bool
	Err     error
}

// CompletionRequest carries the full transcript to the completion endpoint
type CompletionRequest struct {
	Model    string        `json:"model"`
	Messages []WireMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// StreamingClient talks to the recruitment backend's chat completion
// endpoint. The bearer token is passed in explicitly; there is no ambient
// session state.
type StreamingClient struct {
	baseURL    string
	token      string
	role       string
	httpClient *http.Client
	log        *logger.Logger
}

// NewStreamingClient creates a streaming chat client. role selects the
// backend persona (candidate or recruiter).
func NewStreamingClient(baseURL, token, role string, timeout time.Duration) *StreamingClient {
	return &StreamingClient{
		baseURL: baseURL,
		token:   token,
		role:    role,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger.WithComponent("streaming_client"),
	}
}

// StreamCompletion opens a completion stream for the conversation and
// returns a channel of deltas. Errors before the stream opens are returned
// directly; failures mid-stream arrive as an Err delta. Cancelling ctx
// aborts the request and ends the sequence without error noise.
func (sc *StreamingClient) StreamCompletion(ctx context.Context, conv *Conversation) (<-chan Delta, error) {
	req := CompletionRequest{
		Model:    conv.Model,
		Messages: conv.WireMessages(),
		Stream:   true,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/c1/completions?role=%s", sc.baseURL, sc.role)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if sc.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+sc.token)
	}

	resp, err := sc.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errorBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
		}

		var errorResp struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(errorBody, &errorResp) == nil && errorResp.Detail != "" {
			return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, errorResp.Detail)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(errorBody))
	}

	deltas := make(chan Delta, 64)
	go sc.readStream(ctx, resp.Body, deltas)

	return deltas, nil
}

// readStream pumps decoded deltas into the channel until the stream ends
func (sc *StreamingClient) readStream(ctx context.Context, body io.ReadCloser, deltas chan<- Delta) {
	defer close(deltas)
	defer body.Close()

	decoder := NewEventDecoder(body)
	for {
		content, err := decoder.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				deltas <- Delta{Done: true}
			} else if ctx.Err() != nil {
				// Caller navigated away; not a stream failure
				sc.log.Debug("stream cancelled")
				deltas <- Delta{Done: true}
			} else {
				sc.log.Error("stream reading error", "error", err)
				deltas <- Delta{Err: err}
			}
			if dropped := decoder.Dropped(); dropped > 0 {
				sc.log.Debug("stream finished with dropped records", "dropped", dropped)
			}
			return
		}

		select {
		case deltas <- Delta{Content: content}:
		case <-ctx.Done():
			deltas <- Delta{Done: true}
			return
		}
	}
}
