package layout

import (
	"fmt"

	"github.com/wordlist-tools/flashcards/pkg/models"
)

// Paginate splits cards into pages of exactly slots entries. The final page
// is padded with empty strings.
func Paginate(fragments []models.RenderedFragment, slots int) [][]string {
	if slots <= 0 || len(fragments) == 0 {
		return nil
	}
	pages := make([][]string, 0, (len(fragments)+slots-1)/slots)
	for i := 0; i < len(fragments); i += slots {
		page := make([]string, slots)
		for j := 0; j < slots && i+j < len(fragments); j++ {
			page[j] = fragments[i+j].HTML
		}
		pages = append(pages, page)
	}
	return pages
}

// Grid lays cards out N-up with no grouping.
type Grid struct {
	Pages PageRenderer
}

// Layout renders one page per Slots cards, in input order.
func (g Grid) Layout(fragments []models.RenderedFragment) ([]string, error) {
	slots, err := checkSlots(g.Pages)
	if err != nil {
		return nil, err
	}

	var out []string
	for i, page := range Paginate(fragments, slots) {
		html, err := g.Pages.RenderPage(page)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", i+1, err)
		}
		out = append(out, html)
	}
	return out, nil
}
