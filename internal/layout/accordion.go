package layout

import (
	"errors"
	"fmt"

	"github.com/wordlist-tools/flashcards/pkg/models"
)

// CardsPerAccordionPage is the number of cards on one accordion page.
const CardsPerAccordionPage = 2

var ErrGroupSize = errors.New("cards per group must be positive")

// Accordion lays cards out two per page and collects the pages into
// collapsible groups of CardsPerGroup cards.
type Accordion struct {
	CardsPerGroup int
	Pages         PageRenderer
}

// Layout walks the cards once. A group is sealed when the number of cards
// placed since the start of the document reaches the next multiple of
// CardsPerGroup, or when the input runs out. Group labels are the
// identifiers of the first and last card placed in the group.
func (a Accordion) Layout(fragments []models.RenderedFragment) ([]models.AccordionGroup, error) {
	if a.CardsPerGroup <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrGroupSize, a.CardsPerGroup)
	}
	perPage, err := checkSlots(a.Pages)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, nil
	}

	var (
		groups   []models.AccordionGroup
		placed   int
		boundary = a.CardsPerGroup
	)

	for placed < len(fragments) {
		group := models.AccordionGroup{Start: fragments[placed].ID}

		for placed < boundary && placed < len(fragments) {
			n := min(perPage, boundary-placed, len(fragments)-placed)

			cards := make([]string, n)
			for i := range cards {
				cards[i] = fragments[placed+i].HTML
			}
			page, err := a.Pages.RenderPage(cards)
			if err != nil {
				return nil, fmt.Errorf("failed to render page for %s: %w", models.FormatReference(fragments[placed].ID), err)
			}

			group.Pages = append(group.Pages, page)
			group.End = fragments[placed+n-1].ID
			group.Count += n
			placed += n
		}

		groups = append(groups, group)
		boundary += a.CardsPerGroup
	}

	return groups, nil
}
