// Package generator runs the whole pipeline: wordlist and images in, one HTML
// document per variant out, optionally followed by a printed PDF.
package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wordlist-tools/flashcards/internal/config"
	"github.com/wordlist-tools/flashcards/internal/document"
	"github.com/wordlist-tools/flashcards/internal/images"
	"github.com/wordlist-tools/flashcards/internal/layout"
	"github.com/wordlist-tools/flashcards/internal/pdf"
	"github.com/wordlist-tools/flashcards/internal/progress"
	"github.com/wordlist-tools/flashcards/internal/render"
	"github.com/wordlist-tools/flashcards/internal/wordlist"
	"github.com/wordlist-tools/flashcards/pkg/logger"
	"github.com/wordlist-tools/flashcards/pkg/models"
	"github.com/wordlist-tools/flashcards/pkg/utils"
)

type Generator struct {
	cfg       *config.Config
	logger    *logger.Logger
	templates fs.FS
	reporter  progress.Reporter
	printer   pdf.PDFPrinter
	checker   pdf.PDFChecker
}

type Option func(*Generator)

// WithTemplates replaces the built-in templates.
func WithTemplates(fsys fs.FS) Option {
	return func(g *Generator) { g.templates = fsys }
}

func WithReporter(r progress.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithPrinter replaces the headless browser used for the PDF step.
func WithPrinter(p pdf.PDFPrinter) Option {
	return func(g *Generator) { g.printer = p }
}

func WithChecker(c pdf.PDFChecker) Option {
	return func(g *Generator) { g.checker = c }
}

// New creates a generator for a validated configuration.
func New(cfg *config.Config, logger *logger.Logger, opts ...Option) *Generator {
	g := &Generator{
		cfg:       cfg,
		logger:    logger,
		templates: render.DefaultTemplates(),
		reporter:  progress.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.printer == nil {
		g.printer = pdf.NewPrinter(cfg.PDF.BrowserPath, time.Duration(cfg.PDF.TimeoutSeconds)*time.Second, logger)
	}
	if g.checker == nil {
		g.checker = pdf.NewChecker(logger)
	}
	return g
}

// Run parses the wordlist, renders every configured variant and writes the
// documents. Nothing is written when parsing fails.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	report := &Report{StartTime: time.Now()}
	defer func() { report.EndTime = time.Now() }()

	records, err := g.load(report)
	if err != nil {
		return report, err
	}

	width, height := g.cfg.DefaultSize()
	renderer, err := render.New(g.templates, models.ImageSize{Width: width, Height: height}, g.logger,
		render.WithDocumentDir(utils.OutputPath(g.cfg.OutputDir, "")))
	if err != nil {
		return report, err
	}

	paths := make(map[config.Variant]string)
	for _, variant := range g.cfg.Variants {
		doc, docReport, err := g.build(renderer, records, variant)
		if err != nil {
			return report, fmt.Errorf("building %s cards: %w", variant, err)
		}
		if err := doc.WriteToFile(); err != nil {
			return report, err
		}
		if docReport.Checksum, err = utils.HashFile(doc.Filename()); err != nil {
			g.logger.Warn("couldn't hash %s: %v", doc.Filename(), err)
		}
		g.logger.Info("Wrote %s (%d cards)", doc.Filename(), docReport.Cards)

		paths[variant] = doc.Filename()
		report.Documents = append(report.Documents, docReport)
	}

	if g.cfg.PDF.Enabled {
		pdfReport, err := g.print(ctx, paths[g.cfg.PDF.Variant], records)
		if err != nil {
			return report, err
		}
		report.PDF = pdfReport
	}

	return report, nil
}

func (g *Generator) load(report *Report) ([]models.FlashcardRecord, error) {
	raw, err := os.ReadFile(g.cfg.WordlistPath)
	if err != nil {
		return nil, fmt.Errorf("can't read wordlist %s: %w", g.cfg.WordlistPath, err)
	}

	width, height := g.cfg.DefaultSize()
	resolver := images.NewDirResolver(g.cfg.Images.Directory, models.ImageSize{Width: width, Height: height}, g.logger)
	parser := wordlist.NewParser(resolver, wordlist.Options{
		PhoneticColumn:      g.cfg.PhoneticColumn,
		PhoneticPlaceholder: g.cfg.PhoneticPlaceholder,
	}, g.logger)

	result, err := parser.Parse(string(raw), g.cfg.TargetLanguageName)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", g.cfg.WordlistPath, err)
	}

	records := result.Records.Range(g.cfg.StartID, g.cfg.EndID)

	report.Rows = result.Rows
	report.Parsed = result.Records.Len()
	report.Skipped = result.Skipped
	report.Duplicates = result.Duplicates
	report.UnknownPoS = result.UnknownPoS
	report.InRange = len(records)
	for _, record := range records {
		if record.HasImage() {
			report.WithImages++
		}
	}

	g.logger.Info("Parsed %d records, %d in range %d-%d", report.Parsed, report.InRange, g.cfg.StartID, g.cfg.EndID)
	if len(records) == 0 {
		g.logger.Warn("no records between %d and %d", g.cfg.StartID, g.cfg.EndID)
	}
	return records, nil
}

func (g *Generator) build(renderer *render.Renderer, records []models.FlashcardRecord, variant config.Variant) (*document.Document, DocumentReport, error) {
	docReport := DocumentReport{
		Variant: variant,
		Title:   Title(g.cfg.TargetLanguageName, g.cfg.TargetLanguageTag, variant),
		Path:    utils.OutputPath(g.cfg.OutputDir, Filename(g.cfg.TargetLanguageName, variant)),
		Cards:   len(records),
	}

	doc, err := document.New(docReport.Title, docReport.Path, g.cfg.TargetLanguageTag, renderer)
	if err != nil {
		return nil, docReport, err
	}

	mode := modeFor(variant)
	g.reporter.Start(len(records), "Rendering "+mode.String()+" cards")
	fragments, err := renderer.RenderAll(records, mode, g.reporter.Increment)
	g.reporter.Finish()
	if err != nil {
		return nil, docReport, err
	}

	if variant == config.VariantImage {
		pages, err := renderer.Page(render.TemplatePage1x2)
		if err != nil {
			return nil, docReport, err
		}
		groups, err := layout.Accordion{
			CardsPerGroup: g.cfg.CardsPerAccordion,
			Pages:         pages,
		}.Layout(fragments)
		if err != nil {
			return nil, docReport, err
		}
		for _, group := range groups {
			docReport.Pages += len(group.Pages)
			g.logger.Debug("Group %s-%s: %d cards", group.StartLabel(), group.EndLabel(), group.Count)
		}
		docReport.Groups = len(groups)
		return doc, docReport, doc.AppendGroups(groups)
	}

	pages, err := renderer.Page(render.TemplatePage2x3)
	if err != nil {
		return nil, docReport, err
	}
	html, err := layout.Grid{Pages: pages}.Layout(fragments)
	if err != nil {
		return nil, docReport, err
	}
	docReport.Pages = len(html)
	return doc, docReport, doc.AppendPages(html)
}

func (g *Generator) print(ctx context.Context, htmlPath string, records []models.FlashcardRecord) (*PDFReport, error) {
	if htmlPath == "" {
		return nil, fmt.Errorf("pdf variant %q was not generated", g.cfg.PDF.Variant)
	}
	pdfPath := utils.ReplaceExt(htmlPath, ".pdf")

	g.logger.Info("Printing %s", htmlPath)
	if err := g.printer.Print(ctx, htmlPath, pdfPath); err != nil {
		return nil, err
	}

	pdfReport := &PDFReport{Path: pdfPath}
	info, err := pdf.Inspect(pdfPath)
	if err != nil {
		return nil, err
	}
	pdfReport.Pages = info.Pages
	pdfReport.Paper = info.Paper()

	if g.cfg.PDF.Variant == config.VariantBlank {
		return pdfReport, nil
	}

	pages, err := g.checker.References(ctx, pdfPath)
	if err != nil {
		g.logger.Warn("couldn't check card references in %s: %v", pdfPath, err)
		return pdfReport, nil
	}
	ids := make([]int, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	pdfReport.Missing = pdf.MissingReferences(pages, ids)
	if len(pdfReport.Missing) > 0 {
		g.logger.Warn("%d cards are missing from %s, first is %s", len(pdfReport.Missing), pdfPath, models.FormatReference(pdfReport.Missing[0]))
	}
	return pdfReport, nil
}

func modeFor(variant config.Variant) render.Mode {
	switch variant {
	case config.VariantNoImage:
		return render.ModeNoImage
	case config.VariantBlank:
		return render.ModeBlank
	}
	return render.ModeImage
}

// Title is the document title, e.g. "Card sets (Thai) - NO IMAGE".
func Title(languageName, languageTag string, variant config.Variant) string {
	tag := language.Und
	if parsed, err := language.Parse(languageTag); err == nil {
		tag = parsed
	}
	name := cases.Title(tag, cases.NoLower).String(strings.TrimSpace(languageName))
	return fmt.Sprintf("Card sets (%s) - %s", name, variant.Title())
}

// Filename is the HTML file name for a variant, e.g.
// "card-sets-thai-no-image.html".
func Filename(languageName string, variant config.Variant) string {
	return slug.Make("card sets "+languageName+" "+string(variant)) + ".html"
}
