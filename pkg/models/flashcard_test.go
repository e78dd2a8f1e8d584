package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordlist-tools/flashcards/pkg/models"
)

var _ = Describe("Flashcard Models", func() {
	Context("FlashcardRecord", func() {
		It("should zero-pad the display reference to four digits", func() {
			record := models.FlashcardRecord{ID: 7}
			Expect(record.Reference()).To(Equal("#0007"))
		})

		It("should render a bare reference when the identifier is unset", func() {
			Expect(models.FlashcardRecord{}.Reference()).To(Equal("#"))
		})

		It("should not pad identifiers wider than four digits", func() {
			Expect(models.FormatReference(12345)).To(Equal("#12345"))
		})

		It("should report whether an image is attached", func() {
			record := models.FlashcardRecord{ID: 1}
			Expect(record.HasImage()).To(BeFalse())

			record.Image = &models.ImageReference{ID: 1, Path: "/images/c0001.png", Width: 220, Height: 180}
			Expect(record.HasImage()).To(BeTrue())
		})
	})

	Context("PartOfSpeech", func() {
		DescribeTable("ParsePartOfSpeech",
			func(raw string, expected models.PartOfSpeech, known bool) {
				pos, ok := models.ParsePartOfSpeech(raw)
				Expect(pos).To(Equal(expected))
				Expect(ok).To(Equal(known))
			},
			Entry("full noun", "noun", models.Noun, true),
			Entry("noun alias", "N", models.Noun, true),
			Entry("verb alias with spaces", " v ", models.Verb, true),
			Entry("class I", "I", models.ClassI, true),
			Entry("class III lower case", "iii", models.ClassIII, true),
			Entry("unknown code", "adj", models.PartOfSpeech("adj"), false),
		)
	})

	Context("AccordionGroup", func() {
		It("should pad its labels", func() {
			group := models.AccordionGroup{Start: 1, End: 250}
			Expect(group.StartLabel()).To(Equal("0001"))
			Expect(group.EndLabel()).To(Equal("0250"))
		})
	})
})
