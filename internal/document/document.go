// Package document assembles header, laid-out pages and footer into one HTML
// file.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordlist-tools/flashcards/pkg/models"
)

// ErrSealed is returned when content is appended after the footer.
var ErrSealed = errors.New("document is sealed")

// Shell renders the parts of a document that surround the cards.
type Shell interface {
	Header(title, lang string) (string, error)
	Footer() (string, error)
	Group(group models.AccordionGroup) (string, error)
}

// Document accumulates markup in memory until it is written.
type Document struct {
	title    string
	filename string
	shell    Shell
	body     strings.Builder
	sealed   bool
}

// New creates a document with its header already written.
func New(title, filename, lang string, shell Shell) (*Document, error) {
	if shell == nil {
		return nil, errors.New("document shell is required")
	}
	if strings.TrimSpace(filename) == "" {
		return nil, errors.New("document filename is required")
	}
	header, err := shell.Header(title, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to render header of %s: %w", filename, err)
	}

	d := &Document{title: title, filename: filename, shell: shell}
	d.body.WriteString(header)
	return d, nil
}

func (d *Document) Title() string    { return d.title }
func (d *Document) Filename() string { return d.filename }
func (d *Document) Sealed() bool     { return d.sealed }

// AppendFlashcards appends cards one after another, without pages.
func (d *Document) AppendFlashcards(fragments []models.RenderedFragment) error {
	if d.sealed {
		return ErrSealed
	}
	for _, f := range fragments {
		d.body.WriteString(f.HTML)
	}
	return nil
}

// AppendPages appends rendered grid pages.
func (d *Document) AppendPages(pages []string) error {
	if d.sealed {
		return ErrSealed
	}
	for _, page := range pages {
		d.body.WriteString(page)
	}
	return nil
}

// AppendGroups wraps every group in its collapsible section and appends it.
func (d *Document) AppendGroups(groups []models.AccordionGroup) error {
	if d.sealed {
		return ErrSealed
	}
	for _, group := range groups {
		html, err := d.shell.Group(group)
		if err != nil {
			return fmt.Errorf("failed to render group %s-%s: %w", group.StartLabel(), group.EndLabel(), err)
		}
		d.body.WriteString(html)
	}
	return nil
}

// Seal appends the footer. Sealing twice is a no-op.
func (d *Document) Seal() error {
	if d.sealed {
		return nil
	}
	footer, err := d.shell.Footer()
	if err != nil {
		return fmt.Errorf("failed to render footer of %s: %w", d.filename, err)
	}
	d.body.WriteString(footer)
	d.sealed = true
	return nil
}

// WriteToFile seals the document if needed and writes it, replacing any
// existing file at the same path.
func (d *Document) WriteToFile() error {
	if err := d.Seal(); err != nil {
		return err
	}
	if dir := filepath.Dir(d.filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(d.filename, []byte(d.body.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.filename, err)
	}
	return nil
}

// String returns the markup accumulated so far.
func (d *Document) String() string {
	return d.body.String()
}
