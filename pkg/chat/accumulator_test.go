package chat_test

import (
	"errors"

	"github.com/hireterm/hireterm/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Accumulator", func() {
	var acc *chat.Accumulator

	BeforeEach(func() {
		acc = chat.NewAccumulator()
	})

	It("should start empty and incomplete", func() {
		Expect(acc.String()).To(BeEmpty())
		Expect(acc.Complete()).To(BeFalse())
		Expect(acc.DeltaCount()).To(Equal(0))
	})

	It("should concatenate content deltas in order", func() {
		acc.Add(chat.Delta{Content: "Hello"})
		acc.Add(chat.Delta{Content: ", "})
		acc.Add(chat.Delta{Content: "world"})

		Expect(acc.String()).To(Equal("Hello, world"))
		Expect(acc.DeltaCount()).To(Equal(3))
		Expect(acc.Complete()).To(BeFalse())
	})

	It("should mark complete on a done delta", func() {
		acc.Add(chat.Delta{Content: "answer"})
		acc.Add(chat.Delta{Done: true})

		Expect(acc.Complete()).To(BeTrue())
		Expect(acc.Err()).ToNot(HaveOccurred())
		Expect(acc.String()).To(Equal("answer"))
	})

	It("should record the failure and keep partial content on an error delta", func() {
		streamErr := errors.New("connection reset")
		acc.Add(chat.Delta{Content: "partial"})
		acc.Add(chat.Delta{Err: streamErr})

		Expect(acc.Complete()).To(BeTrue())
		Expect(acc.Err()).To(MatchError(streamErr))
		Expect(acc.String()).To(Equal("partial"))
	})
})
