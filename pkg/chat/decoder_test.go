package chat_test

import (
	"io"
	"strings"
	"testing/iotest"

	"github.com/hireterm/hireterm/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func record(content string) string {
	return `data: {"choices":[{"delta":{"content":"` + content + `"}}]}` + "\n\n"
}

// drain reads the decoder to completion, collecting deltas
func drain(d *chat.EventDecoder) ([]string, error) {
	var deltas []string
	for {
		content, err := d.Next()
		if err == io.EOF {
			return deltas, nil
		}
		if err != nil {
			return deltas, err
		}
		deltas = append(deltas, content)
	}
}

var _ = Describe("EventDecoder", func() {
	It("should decode a sequence of records followed by the done sentinel", func() {
		stream := record("Hello") + record(", world") + "data: [DONE]\n\n"
		decoder := chat.NewEventDecoder(strings.NewReader(stream))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(Equal([]string{"Hello", ", world"}))
	})

	It("should reassemble records split across read boundaries", func() {
		// One byte per read: no read ever aligns with a record boundary
		stream := record("Hel") + record("lo") + "data: [DONE]\n\n"
		decoder := chat.NewEventDecoder(iotest.OneByteReader(strings.NewReader(stream)))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(strings.Join(deltas, "")).To(Equal("Hello"))
	})

	It("should treat [DONE] as a successful completion with no delta", func() {
		decoder := chat.NewEventDecoder(strings.NewReader("data: [DONE]\n"))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(BeEmpty())
	})

	It("should treat a natural close as a successful completion", func() {
		stream := record("partial answer")
		decoder := chat.NewEventDecoder(strings.NewReader(stream))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(Equal([]string{"partial answer"}))
	})

	It("should drop a malformed record and keep decoding", func() {
		stream := record("before") +
			"data: {not json\n\n" +
			record("after") +
			"data: [DONE]\n\n"
		decoder := chat.NewEventDecoder(strings.NewReader(stream))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(Equal([]string{"before", "after"}))
		Expect(decoder.Dropped()).To(Equal(1))
	})

	It("should skip comments and unknown fields", func() {
		stream := ": keep-alive\n\n" +
			"event: message\n" +
			record("content") +
			"data: [DONE]\n\n"
		decoder := chat.NewEventDecoder(strings.NewReader(stream))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(Equal([]string{"content"}))
	})

	It("should skip records with an empty delta", func() {
		stream := `data: {"choices":[{"delta":{}}]}` + "\n\n" +
			record("real") +
			"data: [DONE]\n\n"
		decoder := chat.NewEventDecoder(strings.NewReader(stream))

		deltas, err := drain(decoder)
		Expect(err).ToNot(HaveOccurred())
		Expect(deltas).To(Equal([]string{"real"}))
	})

	It("should keep returning EOF after the stream ends", func() {
		decoder := chat.NewEventDecoder(strings.NewReader("data: [DONE]\n"))

		_, err := decoder.Next()
		Expect(err).To(Equal(io.EOF))
		_, err = decoder.Next()
		Expect(err).To(Equal(io.EOF))
	})

	It("should surface a transport error", func() {
		failing := io.MultiReader(
			strings.NewReader(record("ok")),
			iotest.ErrReader(io.ErrUnexpectedEOF),
		)
		decoder := chat.NewEventDecoder(failing)

		content, err := decoder.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(content).To(Equal("ok"))

		_, err = decoder.Next()
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
	})
})
