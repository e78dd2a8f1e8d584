package pdf_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordlist-tools/flashcards/internal/pdf"
	"github.com/wordlist-tools/flashcards/pkg/logger"
)

func pdfTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[pdf-test] "),
		logger.WithFlags(0),
	)
	log.SetLevel(logger.LevelTrace)
	return log
}

var _ = Describe("Card references", func() {
	It("finds references in order of appearance", func() {
		text := "noun #0007\nwater\nverb #0012 drink\n# blank\n#0100"
		Expect(pdf.ParseReferences(text)).To(Equal([]int{7, 12, 100}))
	})

	It("ignores bare and zero references", func() {
		Expect(pdf.ParseReferences("# #0000 #12")).To(BeEmpty())
	})

	It("reports ids missing from every page", func() {
		pages := []pdf.PageReferences{
			{Page: 1, References: []int{1, 2}},
			{Page: 2, References: []int{4}},
		}
		Expect(pdf.MissingReferences(pages, []int{5, 1, 2, 3, 4})).To(Equal([]int{3, 5}))
	})

	It("reports nothing when every id was printed", func() {
		pages := []pdf.PageReferences{{Page: 1, References: []int{1, 2}}}
		Expect(pdf.MissingReferences(pages, []int{2, 1})).To(BeEmpty())
	})

	It("fails on a file that does not exist", func() {
		checker := pdf.NewChecker(pdfTestLogger())
		_, err := checker.References(context.Background(), filepath.Join(os.TempDir(), "no-such-cards.pdf"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Paper sizes", func() {
	DescribeTable("naming pages",
		func(width, height float64, expected string) {
			Expect(pdf.PaperName(width, height)).To(Equal(expected))
		},
		Entry("A4 portrait", 595.28, 841.89, "A4"),
		Entry("A4 within tolerance", 595.9, 841.2, "A4"),
		Entry("A4 landscape", 841.89, 595.28, "A4 landscape"),
		Entry("Letter", 612.0, 792.0, "Letter"),
		Entry("anything else", 455.04, 587.52, "455.04 x 587.52 pt"),
	)

	It("matches either orientation", func() {
		Expect(pdf.MatchesDimensions(792, 612, pdf.Letter)).To(BeTrue())
		Expect(pdf.MatchesDimensions(600, 800, pdf.A4)).To(BeFalse())
	})

	It("names an empty document's paper as nothing", func() {
		Expect((&pdf.Info{}).Paper()).To(BeEmpty())
	})

	It("fails to inspect a missing file", func() {
		_, err := pdf.Inspect(filepath.Join(os.TempDir(), "no-such-cards.pdf"))
		Expect(err).To(MatchError(ContainSubstring("failed to count pages")))
	})
})

var _ = Describe("Printer", func() {
	It("refuses a missing HTML file before starting a browser", func() {
		printer := pdf.NewPrinter("", time.Second, pdfTestLogger())
		err := printer.Print(context.Background(), filepath.Join(os.TempDir(), "no-such-cards.html"), filepath.Join(os.TempDir(), "out.pdf"))
		Expect(err).To(MatchError(ContainSubstring("can't open")))
	})

	It("refuses a directory", func() {
		printer := pdf.NewPrinter("", 0, pdfTestLogger())
		err := printer.Print(context.Background(), os.TempDir(), filepath.Join(os.TempDir(), "out.pdf"))
		Expect(err).To(MatchError(ContainSubstring("is a directory")))
	})
})
