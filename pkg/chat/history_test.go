package chat_test

import (
	"os"
	"path/filepath"

	"github.com/hireterm/hireterm/pkg/chat"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("History", func() {
	var historyPath string

	BeforeEach(func() {
		dir, err := os.MkdirTemp("", "hireterm-history")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		historyPath = filepath.Join(dir, "history.json")
	})

	It("should start empty when no file exists", func() {
		h, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(h.GetMessages()).To(BeEmpty())
	})

	It("should persist messages across instances", func() {
		h, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())

		Expect(h.Add(chat.NewUserMessage("hello", ""))).To(Succeed())

		reloaded, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())

		msgs := reloaded.GetMessages()
		Expect(msgs).To(HaveLen(1))
		Expect(msgs[0].Content).To(Equal("hello"))
		Expect(msgs[0].Role).To(Equal(chat.RoleUser))
	})

	It("should replace the whole transcript", func() {
		h, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(h.Add(chat.NewUserMessage("old", ""))).To(Succeed())

		fresh := []chat.Message{
			chat.NewUserMessage("new question", ""),
			chat.NewSystemMessage("system"),
		}
		Expect(h.Replace(fresh)).To(Succeed())

		reloaded, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(reloaded.GetMessages()).To(HaveLen(2))
	})

	It("should clear the transcript", func() {
		h, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(h.Add(chat.NewUserMessage("hello", ""))).To(Succeed())

		Expect(h.Clear()).To(Succeed())

		reloaded, err := chat.NewHistory(historyPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(reloaded.GetMessages()).To(BeEmpty())
	})

	It("should create missing parent directories", func() {
		nested := filepath.Join(filepath.Dir(historyPath), "a", "b", "history.json")

		_, err := chat.NewHistory(nested)
		Expect(err).ToNot(HaveOccurred())
	})
})
