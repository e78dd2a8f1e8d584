// Package layout arranges rendered cards into pages and accordion groups.
//
// Placement is purely positional: cards are consumed in the order given and
// never reordered. Identifiers are only used to label accordion groups.
package layout

import (
	"errors"
	"fmt"
)

// PageRenderer renders one page from up to Slots cards. Slots not covered by
// cards render empty.
type PageRenderer interface {
	Slots() int
	RenderPage(cards []string) (string, error)
}

var ErrNoSlots = errors.New("page must have at least one slot")

func checkSlots(pages PageRenderer) (int, error) {
	if pages == nil {
		return 0, errors.New("no page renderer")
	}
	slots := pages.Slots()
	if slots <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNoSlots, slots)
	}
	return slots, nil
}
