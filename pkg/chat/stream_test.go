package chat_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hireterm/hireterm/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// sseHandler writes the given deltas as completion records and terminates
// with [DONE].
func sseHandler(contents ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, content := range contents {
			payload, _ := json.Marshal(map[string]any{
				"choices": []map[string]any{
					{"delta": map[string]string{"content": content}},
				},
			})
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
}

// collect drains the delta channel into content and the terminal delta
func collect(deltas <-chan chat.Delta) (string, chat.Delta) {
	acc := chat.NewAccumulator()
	var last chat.Delta
	for d := range deltas {
		acc.Add(d)
		last = d
	}
	return acc.String(), last
}

var _ = Describe("StreamingClient", func() {
	newConv := func() *chat.Conversation {
		conv := chat.NewConversation("test-model")
		conv.AppendUserMessage("find me a Go job", "")
		return conv
	}

	It("should stream content deltas and end with done", func() {
		server := httptest.NewServer(sseHandler("Hello", ", world"))
		defer server.Close()

		client := chat.NewStreamingClient(server.URL, "token", "candidate", 5*time.Second)
		deltas, err := client.StreamCompletion(context.Background(), newConv())
		Expect(err).ToNot(HaveOccurred())

		content, last := collect(deltas)
		Expect(content).To(Equal("Hello, world"))
		Expect(last.Done).To(BeTrue())
		Expect(last.Err).ToNot(HaveOccurred())
	})

	It("should send the bearer token, role and transcript", func() {
		var gotAuth, gotRole string
		var gotReq chat.CompletionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRole = r.URL.Query().Get("role")
			json.NewDecoder(r.Body).Decode(&gotReq)
			sseHandler("ok")(w, r)
		}))
		defer server.Close()

		client := chat.NewStreamingClient(server.URL, "secret-token", "recruiter", 5*time.Second)
		deltas, err := client.StreamCompletion(context.Background(), newConv())
		Expect(err).ToNot(HaveOccurred())
		collect(deltas)

		Expect(gotAuth).To(Equal("Bearer secret-token"))
		Expect(gotRole).To(Equal("recruiter"))
		Expect(gotReq.Model).To(Equal("test-model"))
		Expect(gotReq.Stream).To(BeTrue())
		Expect(gotReq.Messages).To(HaveLen(1))
		Expect(gotReq.Messages[0].Content).To(Equal("find me a Go job"))
	})

	It("should surface the backend detail on a non-200 response", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"detail": "Could not validate credentials"}`)
		}))
		defer server.Close()

		client := chat.NewStreamingClient(server.URL, "expired", "candidate", 5*time.Second)
		_, err := client.StreamCompletion(context.Background(), newConv())

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Could not validate credentials"))
	})

	It("should end without error noise when the context is cancelled", func() {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"first\"}}]}\n\n")
			w.(http.Flusher).Flush()
			<-release
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		client := chat.NewStreamingClient(server.URL, "token", "candidate", 5*time.Second)
		deltas, err := client.StreamCompletion(ctx, newConv())
		Expect(err).ToNot(HaveOccurred())

		Eventually(deltas).Should(Receive(Equal(chat.Delta{Content: "first"})))
		cancel()

		var last chat.Delta
		Eventually(func() bool {
			d, ok := <-deltas
			if ok {
				last = d
			}
			return !ok
		}, 2*time.Second).Should(BeTrue())
		Expect(last.Err).ToNot(HaveOccurred())
	})
})
