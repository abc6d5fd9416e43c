package chat_test

import (
	"github.com/hireterm/hireterm/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conversation", func() {
	var conv *chat.Conversation

	BeforeEach(func() {
		conv = chat.NewConversation("c1/anthropic/claude-sonnet-4/v-20250815")
	})

	Describe("NewConversationWithSystem", func() {
		It("should seed the transcript with a system message", func() {
			c := chat.NewConversationWithSystem("test-model", "You are a recruitment assistant")

			Expect(c.Len()).To(Equal(1))
			msg, ok := c.LastMessage()
			Expect(ok).To(BeTrue())
			Expect(msg.IsSystem()).To(BeTrue())
		})

		It("should skip the system message when the prompt is empty", func() {
			c := chat.NewConversationWithSystem("test-model", "")

			Expect(c.Len()).To(Equal(0))
		})
	})

	Describe("streaming lifecycle", func() {
		It("should accumulate deltas in order on the in-flight message", func() {
			conv.AppendUserMessage("hello", "")
			asst, err := conv.BeginAssistantMessage()
			Expect(err).ToNot(HaveOccurred())

			conv.AppendDelta(asst.ID, "A")
			conv.AppendDelta(asst.ID, "B")
			conv.AppendDelta(asst.ID, "C")

			last, ok := conv.LastMessage()
			Expect(ok).To(BeTrue())
			Expect(last.ID).To(Equal(asst.ID))
			Expect(last.Content).To(Equal("ABC"))
		})

		It("should reject a second in-flight message", func() {
			_, err := conv.BeginAssistantMessage()
			Expect(err).ToNot(HaveOccurred())

			_, err = conv.BeginAssistantMessage()
			Expect(err).To(MatchError(chat.ErrStreamInFlight))
		})

		It("should allow a new message after finalize", func() {
			asst, _ := conv.BeginAssistantMessage()
			conv.AppendDelta(asst.ID, "done")
			conv.FinalizeAssistantMessage(asst.ID)

			_, inFlight := conv.InFlight()
			Expect(inFlight).To(BeFalse())

			_, err := conv.BeginAssistantMessage()
			Expect(err).ToNot(HaveOccurred())
		})

		It("should ignore deltas for an unknown id", func() {
			conv.AppendUserMessage("hello", "")
			asst, _ := conv.BeginAssistantMessage()

			conv.AppendDelta("not-a-real-id", "garbage")

			last, _ := conv.LastMessage()
			Expect(last.ID).To(Equal(asst.ID))
			Expect(last.Content).To(BeEmpty())
		})

		It("should replace content and clear in-flight on error", func() {
			asst, _ := conv.BeginAssistantMessage()
			conv.AppendDelta(asst.ID, "partial resp")

			conv.FinalizeOnError(asst.ID, "Sorry, there was an error processing your request.")

			last, _ := conv.LastMessage()
			Expect(last.Content).To(Equal("Sorry, there was an error processing your request."))
			_, inFlight := conv.InFlight()
			Expect(inFlight).To(BeFalse())
		})
	})

	Describe("Restore", func() {
		It("should drop empty assistant placeholders from a saved transcript", func() {
			saved := []chat.Message{
				chat.NewUserMessage("hi", ""),
				chat.NewAssistantMessage(), // interrupted stream
			}

			conv.Restore(saved)

			Expect(conv.Len()).To(Equal(1))
			last, _ := conv.LastMessage()
			Expect(last.IsUser()).To(BeTrue())
		})
	})

	Describe("WireMessages", func() {
		It("should skip the empty in-flight placeholder", func() {
			conv.AppendUserMessage("hello", "")
			conv.BeginAssistantMessage()

			wire := conv.WireMessages()

			Expect(wire).To(HaveLen(1))
			Expect(wire[0].Role).To(Equal(chat.RoleUser))
			Expect(wire[0].Content).To(Equal("hello"))
		})

		It("should carry model-facing content, not the display text", func() {
			conv.AppendUserMessage("resume text: ...", "Uploaded resume.pdf")

			wire := conv.WireMessages()

			Expect(wire[0].Content).To(Equal("resume text: ..."))
		})
	})

	Describe("Messages", func() {
		It("should return a copy, not the backing slice", func() {
			conv.AppendUserMessage("hello", "")

			msgs := conv.Messages()
			msgs[0].Content = "mutated"

			fresh := conv.Messages()
			Expect(fresh[0].Content).To(Equal("hello"))
		})
	})
})
