package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/wordlist-tools/flashcards/pkg/logger"
	"github.com/wordlist-tools/flashcards/pkg/models"
)

//go:embed templates/*.html.tmpl
var embedded embed.FS

// Template names every template set must define.
const (
	TemplateHeader    = "header"
	TemplateFooter    = "footer"
	TemplateCard      = "card"
	TemplatePage1x2   = "page1x2"
	TemplatePage2x3   = "page2x3"
	TemplateAccordion = "accordion"
)

var requiredTemplates = []string{
	TemplateHeader,
	TemplateFooter,
	TemplateCard,
	TemplatePage1x2,
	TemplatePage2x3,
	TemplateAccordion,
}

// Mode selects how much of a record ends up on its card.
type Mode int

const (
	// ModeImage prints every field and the record's image when it has one.
	ModeImage Mode = iota
	// ModeNoImage prints every field but always pads the image slot.
	ModeNoImage
	// ModeBlank prints an empty card for handwritten use.
	ModeBlank
)

func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeNoImage:
		return "no-image"
	case ModeBlank:
		return "blank"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// DefaultTemplates returns the built-in template set.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer fills records and pages into the card templates. Templates are
// parsed once, when the Renderer is created.
type Renderer struct {
	templates   *template.Template
	defaultSize models.ImageSize
	documentDir string
	logger      *logger.Logger
}

type Option func(*Renderer)

// WithDocumentDir makes image links relative to dir, the directory the
// rendered documents are written to. Without it image paths are emitted as
// given.
func WithDocumentDir(dir string) Option {
	return func(r *Renderer) { r.documentDir = dir }
}

// New parses every *.html.tmpl file of fsys. defaultSize is the image padding
// used for cards without a picture.
func New(fsys fs.FS, defaultSize models.ImageSize, logger *logger.Logger, opts ...Option) (*Renderer, error) {
	tmpl, err := template.New("flashcards").Funcs(sprig.HtmlFuncMap()).ParseFS(fsys, "*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, name := range requiredTemplates {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is not defined", name)
		}
	}
	r := &Renderer{
		templates:   tmpl,
		defaultSize: defaultSize,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type imageData struct {
	Src    template.URL
	Width  int
	Height int
}

type cardData struct {
	PartOfSpeech string
	English      string
	Target       string
	Phonetic     string
	Reference    string
	Image        *imageData
	Padding      models.ImageSize
}

// Render produces the markup of a single card.
func (r *Renderer) Render(record models.FlashcardRecord, mode Mode) (models.RenderedFragment, error) {
	data := cardData{
		PartOfSpeech: record.PartOfSpeech.String(),
		English:      record.English,
		Target:       record.Target,
		Phonetic:     record.Phonetic,
		Reference:    record.Reference(),
		Padding:      r.defaultSize,
	}

	switch mode {
	case ModeImage:
		if record.Image != nil {
			data.Image = &imageData{
				Src:    r.imageSource(record.Image.Path),
				Width:  record.Image.Width,
				Height: record.Image.Height,
			}
		}
	case ModeBlank:
		data = cardData{
			Reference: models.FormatReference(0),
			Padding:   r.defaultSize,
		}
	}

	html, err := r.execute(TemplateCard, data)
	if err != nil {
		return models.RenderedFragment{}, fmt.Errorf("failed to render card %s: %w", record.Reference(), err)
	}
	r.logger.Trace("Rendered card %s (%s)", record.Reference(), mode)

	return models.RenderedFragment{ID: record.ID, HTML: html}, nil
}

// RenderAll renders records in order. onCard, when set, is called after each
// card.
func (r *Renderer) RenderAll(records []models.FlashcardRecord, mode Mode, onCard func()) ([]models.RenderedFragment, error) {
	fragments := make([]models.RenderedFragment, 0, len(records))
	for _, record := range records {
		fragment, err := r.Render(record, mode)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
		if onCard != nil {
			onCard()
		}
	}
	return fragments, nil
}

type headerData struct {
	Title string
	Lang  string
}

// Header opens a document.
func (r *Renderer) Header(title, lang string) (string, error) {
	return r.execute(TemplateHeader, headerData{Title: title, Lang: lang})
}

// Footer closes a document.
func (r *Renderer) Footer() (string, error) {
	return r.execute(TemplateFooter, nil)
}

type groupData struct {
	StartLabel string
	EndLabel   string
	Count      int
	Pages      []template.HTML
}

// Group wraps the pages of an accordion group in its collapsible section.
func (r *Renderer) Group(group models.AccordionGroup) (string, error) {
	data := groupData{
		StartLabel: group.StartLabel(),
		EndLabel:   group.EndLabel(),
		Count:      group.Count,
		Pages:      make([]template.HTML, len(group.Pages)),
	}
	for i, page := range group.Pages {
		data.Pages[i] = template.HTML(page)
	}
	return r.execute(TemplateAccordion, data)
}

// Page returns a page template with a fixed number of card slots.
func (r *Renderer) Page(name string) (*PageTemplate, error) {
	slots, ok := pageSlots[name]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", name)
	}
	return &PageTemplate{renderer: r, name: name, slots: slots}, nil
}

var pageSlots = map[string]int{
	TemplatePage1x2: 2,
	TemplatePage2x3: 6,
}

// PageTemplate renders one page of cards.
type PageTemplate struct {
	renderer *Renderer
	name     string
	slots    int
}

func (p *PageTemplate) Slots() int {
	return p.slots
}

type pageData struct {
	Cards []template.HTML
}

// RenderPage fills the slots in order. Missing cards leave their slot empty.
func (p *PageTemplate) RenderPage(cards []string) (string, error) {
	if len(cards) > p.slots {
		return "", fmt.Errorf("page %s holds %d cards, got %d", p.name, p.slots, len(cards))
	}
	data := pageData{Cards: make([]template.HTML, p.slots)}
	for i, card := range cards {
		data.Cards[i] = template.HTML(card)
	}
	return p.renderer.execute(p.name, data)
}

// imageSource links path from the document directory. Paths that cannot be
// made relative (another volume) become absolute file URLs.
func (r *Renderer) imageSource(path string) template.URL {
	if r.documentDir == "" {
		return template.URL(filepath.ToSlash(path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return template.URL(filepath.ToSlash(path))
	}
	dir, err := filepath.Abs(r.documentDir)
	if err != nil {
		return template.URL(filepath.ToSlash(path))
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		slashed := filepath.ToSlash(abs)
		if !strings.HasPrefix(slashed, "/") {
			slashed = "/" + slashed
		}
		u := url.URL{Scheme: "file", Path: slashed}
		return template.URL(u.String())
	}
	u := url.URL{Path: filepath.ToSlash(rel)}
	return template.URL(u.String())
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
