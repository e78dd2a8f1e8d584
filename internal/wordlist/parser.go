package wordlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wordlist-tools/flashcards/pkg/logger"
	"github.com/wordlist-tools/flashcards/pkg/models"
)

// Fixed column positions in every wordlist.
const (
	ColumnID = iota
	ColumnPartOfSpeech
	ColumnEnglish
)

var (
	ErrUnknownTargetLanguageColumn = errors.New("unknown target language column")
	ErrEmptyWordlist               = errors.New("wordlist is empty")
)

// LineError is a fatal problem with one wordlist line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ImageResolver looks up the picture for a record identifier.
type ImageResolver interface {
	Resolve(id int) (*models.ImageReference, bool)
}

type Options struct {
	// PhoneticColumn names an optional header column with transcriptions.
	PhoneticColumn string
	// PhoneticPlaceholder is used when that column is absent or the cell empty.
	PhoneticPlaceholder string
}

// Result is the outcome of parsing one wordlist.
type Result struct {
	Records    *Set
	Rows       int
	Skipped    int
	Duplicates []int
	UnknownPoS int
}

type Parser struct {
	resolver ImageResolver
	options  Options
	logger   *logger.Logger
}

// NewParser creates a parser. resolver may be nil, in which case no record
// gets an image.
func NewParser(resolver ImageResolver, options Options, logger *logger.Logger) *Parser {
	return &Parser{
		resolver: resolver,
		options:  options,
		logger:   logger,
	}
}

// Parse reads tab-separated wordlist text. The first line is the header and
// must name targetColumn. Lines without an English gloss are skipped with a
// warning; a malformed identifier is fatal.
func (p *Parser) Parse(raw, targetColumn string) (*Result, error) {
	text := strings.TrimPrefix(strings.ReplaceAll(raw, "\r\n", "\n"), "\ufeff")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrEmptyWordlist
	}

	header := strings.Split(lines[0], "\t")
	targetIdx := columnIndex(header, targetColumn)
	if targetIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTargetLanguageColumn, targetColumn)
	}
	phoneticIdx := columnIndex(header, p.options.PhoneticColumn)
	p.logger.Debug("Target language column %q at index %d, phonetic column at index %d", targetColumn, targetIdx, phoneticIdx)

	result := &Result{Records: NewSet()}
	for i, line := range lines[1:] {
		lineNum := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Rows++

		fields := strings.Split(line, "\t")
		english := field(fields, ColumnEnglish)
		if english == "" {
			p.logger.Warn("line %d: missing English gloss, skipping", lineNum)
			result.Skipped++
			continue
		}

		id, err := strconv.Atoi(field(fields, ColumnID))
		if err != nil {
			return nil, &LineError{Line: lineNum, Err: fmt.Errorf("invalid identifier %q", field(fields, ColumnID))}
		}
		if id <= 0 {
			return nil, &LineError{Line: lineNum, Err: fmt.Errorf("identifier must be positive, got %d", id)}
		}

		pos, known := models.ParsePartOfSpeech(field(fields, ColumnPartOfSpeech))
		if !known {
			p.logger.Warn("line %d: unknown part of speech %q, keeping it as is", lineNum, pos)
			result.UnknownPoS++
		}

		phonetic := p.options.PhoneticPlaceholder
		if phoneticIdx >= 0 {
			if value := field(fields, phoneticIdx); value != "" {
				phonetic = value
			}
		}

		record := models.FlashcardRecord{
			ID:           id,
			PartOfSpeech: pos,
			English:      english,
			Target:       field(fields, targetIdx),
			Phonetic:     phonetic,
		}
		if p.resolver != nil {
			if img, ok := p.resolver.Resolve(id); ok {
				record.Image = img
			}
		}

		if result.Records.Put(record) {
			p.logger.Warn("line %d: duplicate identifier %s replaces the earlier entry", lineNum, models.PadID(id))
			result.Duplicates = append(result.Duplicates, id)
		}
		p.logger.Trace("Parsed %s %q", record.Reference(), english)
	}

	return result, nil
}

func columnIndex(header []string, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
