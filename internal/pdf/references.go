package pdf

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/gen2brain/go-fitz"

	"github.com/wordlist-tools/flashcards/pkg/logger"
)

var referencePattern = regexp.MustCompile(`#(\d{4,})`)

// PageReferences lists the card references printed on one page.
type PageReferences struct {
	Page       int
	References []int
}

// Checker extracts page text with MuPDF.
type Checker struct {
	logger *logger.Logger
}

func NewChecker(logger *logger.Logger) *Checker {
	return &Checker{logger: logger}
}

// References returns the references found on every page, first page first.
// Pages are numbered from 1.
func (c *Checker) References(ctx context.Context, pdfPath string) ([]PageReferences, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var pages []PageReferences

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			c.logger.Warn("couldn't extract text from page %d: %v", pageNum+1, err)
			continue
		}
		refs := ParseReferences(text)
		c.logger.Trace("Page %d: %d references", pageNum+1, len(refs))
		pages = append(pages, PageReferences{Page: pageNum + 1, References: refs})
	}

	return pages, nil
}

// ParseReferences finds "#0007"-style card references in text, in order of
// appearance. A bare "#" (blank cards) is not a reference.
func ParseReferences(text string) []int {
	var refs []int
	for _, m := range referencePattern.FindAllStringSubmatch(text, -1) {
		id, err := strconv.Atoi(m[1])
		if err != nil || id == 0 {
			continue
		}
		refs = append(refs, id)
	}
	return refs
}

// MissingReferences returns the ids that appear on no page, ascending.
func MissingReferences(pages []PageReferences, ids []int) []int {
	seen := make(map[int]bool)
	for _, page := range pages {
		for _, id := range page.References {
			seen[id] = true
		}
	}
	var missing []int
	for _, id := range ids {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Ints(missing)
	return missing
}
