package progress_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordlist-tools/flashcards/internal/progress"
)

var _ = Describe("Reporter", func() {
	It("uses line output for writers that are not terminals", func() {
		var buf bytes.Buffer
		reporter := progress.NewReporter(&buf)
		Expect(reporter).To(BeAssignableToTypeOf(&progress.LineReporter{}))
		Expect(progress.IsTerminal(&buf)).To(BeFalse())
	})

	It("prints the start and finish lines with the count", func() {
		var buf bytes.Buffer
		reporter := progress.NewReporter(&buf)

		reporter.Start(3, "Rendering image cards")
		reporter.Increment()
		reporter.Increment()
		reporter.Increment()
		reporter.Finish()

		Expect(buf.String()).To(Equal("Rendering image cards: 3 cards\nRendering image cards: done [3/3]\n"))
	})

	It("keeps quiet when asked to", func() {
		var reporter progress.Reporter = progress.Nop{}
		reporter.Start(10, "x")
		reporter.Increment()
		reporter.Finish()
	})
})
