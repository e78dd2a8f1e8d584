package models

import (
	"fmt"
	"strings"
)

// PartOfSpeech is the grammatical category printed on a card. The known set is
// closed; codes outside it are carried verbatim and reported by Known.
type PartOfSpeech string

const (
	Noun     PartOfSpeech = "noun"
	Verb     PartOfSpeech = "verb"
	ClassI   PartOfSpeech = "I"
	ClassII  PartOfSpeech = "II"
	ClassIII PartOfSpeech = "III"
)

var partOfSpeechAliases = map[string]PartOfSpeech{
	"n":    Noun,
	"noun": Noun,
	"v":    Verb,
	"verb": Verb,
	"i":    ClassI,
	"ii":   ClassII,
	"iii":  ClassIII,
}

// ParsePartOfSpeech maps a raw wordlist code onto the known set. The second
// return value is false when the code is not recognised; the trimmed raw code
// is returned in that case.
func ParsePartOfSpeech(raw string) (PartOfSpeech, bool) {
	code := strings.TrimSpace(raw)
	if pos, ok := partOfSpeechAliases[strings.ToLower(code)]; ok {
		return pos, true
	}
	return PartOfSpeech(code), false
}

func (p PartOfSpeech) Known() bool {
	_, ok := partOfSpeechAliases[strings.ToLower(string(p))]
	return ok
}

func (p PartOfSpeech) String() string {
	return string(p)
}

// ImageSize is a pixel width/height pair.
type ImageSize struct {
	Width  int
	Height int
}

// ImageReference points at the picture chosen for a record.
type ImageReference struct {
	ID     int
	Path   string
	Width  int
	Height int
}

// FlashcardRecord is one parsed wordlist row.
type FlashcardRecord struct {
	ID           int
	PartOfSpeech PartOfSpeech
	English      string
	Target       string
	Phonetic     string
	Image        *ImageReference
}

// Reference is the display form of the identifier: "#0007", or "#" when the
// identifier is unset.
func (r FlashcardRecord) Reference() string {
	return FormatReference(r.ID)
}

// HasImage reports whether an image was resolved for the record.
func (r FlashcardRecord) HasImage() bool {
	return r.Image != nil
}

// PadID renders an identifier zero-padded to four digits.
func PadID(id int) string {
	return fmt.Sprintf("%04d", id)
}

func FormatReference(id int) string {
	if id == 0 {
		return "#"
	}
	return "#" + PadID(id)
}

// RenderedFragment is a single card's finished markup.
type RenderedFragment struct {
	ID   int
	HTML string
}

// AccordionGroup is a sealed collapsible section of card pages.
type AccordionGroup struct {
	Start int
	End   int
	Count int
	Pages []string
}

func (g AccordionGroup) StartLabel() string {
	return PadID(g.Start)
}

func (g AccordionGroup) EndLabel() string {
	return PadID(g.End)
}
