package render_test

import (
	"strings"
	"testing/fstest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordlist-tools/flashcards/internal/render"
	"github.com/wordlist-tools/flashcards/pkg/logger"
	"github.com/wordlist-tools/flashcards/pkg/models"
)

func renderTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[render-test] "),
		logger.WithFlags(0),
	)
	log.SetLevel(logger.LevelTrace)
	return log
}

var _ = Describe("Template Renderer", func() {
	var (
		renderer *render.Renderer
		record   models.FlashcardRecord
	)

	BeforeEach(func() {
		var err error
		renderer, err = render.New(render.DefaultTemplates(), models.ImageSize{Width: 220, Height: 180}, renderTestLogger())
		Expect(err).NotTo(HaveOccurred())

		record = models.FlashcardRecord{
			ID:           7,
			PartOfSpeech: models.Noun,
			English:      "water",
			Target:       "น้ำ",
			Phonetic:     "nám",
		}
	})

	Context("cards", func() {
		It("should substitute every field and the padded reference", func() {
			fragment, err := renderer.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())

			Expect(fragment.ID).To(Equal(7))
			Expect(fragment.HTML).To(ContainSubstring(`<span class="reference">#0007</span>`))
			Expect(fragment.HTML).To(ContainSubstring(`<span class="pos">noun</span>`))
			Expect(fragment.HTML).To(ContainSubstring(`<h3 class="english">water</h3>`))
			Expect(fragment.HTML).To(ContainSubstring(`<h3 class="lwc">น้ำ</h3>`))
			Expect(fragment.HTML).To(ContainSubstring(`<p class="ipa">nám</p>`))
		})

		It("should pad the image slot with the default size when there is no image", func() {
			fragment, err := renderer.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())

			Expect(fragment.HTML).To(ContainSubstring(`class="img-padding" style="width: 220px; height: 180px"`))
			Expect(fragment.HTML).NotTo(ContainSubstring("<img"))
		})

		It("should emit an image tag bounded by the reference size", func() {
			record.Image = &models.ImageReference{ID: 7, Path: "/data/images/c0007.png", Width: 200, Height: 150}

			fragment, err := renderer.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())

			Expect(fragment.HTML).To(ContainSubstring(`<img src="/data/images/c0007.png"`))
			Expect(fragment.HTML).To(ContainSubstring(`max-width: 200px; max-height: 150px`))
			Expect(fragment.HTML).NotTo(ContainSubstring("img-padding"))
		})

		It("should link images relative to the document directory", func() {
			linked, err := render.New(render.DefaultTemplates(), models.ImageSize{Width: 220, Height: 180}, renderTestLogger(),
				render.WithDocumentDir("/data/out/cards"))
			Expect(err).NotTo(HaveOccurred())

			record.Image = &models.ImageReference{ID: 7, Path: "/data/images/c0007.png", Width: 200, Height: 150}
			fragment, err := linked.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())
			Expect(fragment.HTML).To(ContainSubstring(`<img src="../../images/c0007.png"`))

			record.Image.Path = "/data/field photos/c0007.png"
			fragment, err = linked.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())
			Expect(fragment.HTML).To(ContainSubstring(`<img src="../../field%20photos/c0007.png"`))
		})

		It("should ignore the image in no-image mode", func() {
			record.Image = &models.ImageReference{ID: 7, Path: "/data/images/c0007.png", Width: 200, Height: 150}

			fragment, err := renderer.Render(record, render.ModeNoImage)
			Expect(err).NotTo(HaveOccurred())

			Expect(fragment.HTML).NotTo(ContainSubstring("<img"))
			Expect(fragment.HTML).To(ContainSubstring("img-padding"))
			Expect(fragment.HTML).To(ContainSubstring("water"))
		})

		It("should leave every field empty in blank mode", func() {
			fragment, err := renderer.Render(record, render.ModeBlank)
			Expect(err).NotTo(HaveOccurred())

			Expect(fragment.ID).To(Equal(7))
			Expect(fragment.HTML).NotTo(ContainSubstring("water"))
			Expect(fragment.HTML).To(ContainSubstring(`<span class="reference">#</span>`))
			Expect(fragment.HTML).To(ContainSubstring(`<h3 class="english"></h3>`))
		})

		It("should escape markup in glosses", func() {
			record.English = "<b>water</b>"
			fragment, err := renderer.Render(record, render.ModeImage)
			Expect(err).NotTo(HaveOccurred())
			Expect(fragment.HTML).To(ContainSubstring("&lt;b&gt;water&lt;/b&gt;"))
		})

		It("should render a list of records in order", func() {
			second := record
			second.ID = 8
			calls := 0

			fragments, err := renderer.RenderAll([]models.FlashcardRecord{record, second}, render.ModeImage, func() { calls++ })
			Expect(err).NotTo(HaveOccurred())
			Expect(fragments).To(HaveLen(2))
			Expect(fragments[0].ID).To(Equal(7))
			Expect(fragments[1].ID).To(Equal(8))
			Expect(calls).To(Equal(2))
		})
	})

	Context("pages", func() {
		It("should fill the six slots of a 2x3 page and leave the rest empty", func() {
			page, err := renderer.Page(render.TemplatePage2x3)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Slots()).To(Equal(6))

			html, err := page.RenderPage([]string{"<p>a</p>", "<p>b</p>", "<p>c</p>"})
			Expect(err).NotTo(HaveOccurred())
			Expect(html).To(ContainSubstring(`<div class="slot"><p>a</p></div>`))
			Expect(html).To(ContainSubstring(`<div class="slot"><p>c</p></div>`))
			Expect(strings.Count(html, `<div class="slot"></div>`)).To(Equal(3))
		})

		It("should reject more cards than slots", func() {
			page, err := renderer.Page(render.TemplatePage1x2)
			Expect(err).NotTo(HaveOccurred())

			_, err = page.RenderPage([]string{"a", "b", "c"})
			Expect(err).To(HaveOccurred())
		})

		It("should reject unknown page templates", func() {
			_, err := renderer.Page("page4x4")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("document shell", func() {
		It("should render the header with the title and language", func() {
			header, err := renderer.Header("Card sets (Thai) - IMAGE", "th")
			Expect(err).NotTo(HaveOccurred())
			Expect(header).To(HavePrefix("<!DOCTYPE html>"))
			Expect(header).To(ContainSubstring(`<html lang="th">`))
			Expect(header).To(ContainSubstring("<title>Card sets (Thai) - IMAGE</title>"))
		})

		It("should default the document language", func() {
			header, err := renderer.Header("Cards", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(header).To(ContainSubstring(`<html lang="en">`))
		})

		It("should close the document in the footer", func() {
			footer, err := renderer.Footer()
			Expect(err).NotTo(HaveOccurred())
			Expect(footer).To(ContainSubstring("</html>"))
		})

		It("should label accordion groups", func() {
			html, err := renderer.Group(models.AccordionGroup{
				Start: 1,
				End:   250,
				Count: 250,
				Pages: []string{"<section>one</section>", "<section>two</section>"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(html).To(ContainSubstring(`id="group-0001"`))
			Expect(html).To(ContainSubstring("<summary>0001 - 0250 (250 cards)</summary>"))
			Expect(html).To(ContainSubstring("<section>one</section><section>two</section>"))
		})
	})

	Context("custom templates", func() {
		It("should fail when a required template is missing", func() {
			fsys := fstest.MapFS{
				"card.html.tmpl": &fstest.MapFile{Data: []byte(`{{define "card"}}{{.English}}{{end}}`)},
			}
			_, err := render.New(fsys, models.ImageSize{Width: 220, Height: 220}, renderTestLogger())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("is not defined"))
		})
	})
})
