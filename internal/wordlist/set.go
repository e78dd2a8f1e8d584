package wordlist

import (
	"sort"

	"github.com/wordlist-tools/flashcards/pkg/models"
)

// Set maps identifiers to records. Iteration is always ascending by
// identifier. Inserting an identifier that is already present replaces the
// earlier record.
type Set struct {
	records map[int]models.FlashcardRecord
	ids     []int
	sorted  bool
}

func NewSet() *Set {
	return &Set{
		records: make(map[int]models.FlashcardRecord),
		sorted:  true,
	}
}

// Put stores record under its identifier and reports whether an earlier
// record was replaced.
func (s *Set) Put(record models.FlashcardRecord) bool {
	_, replaced := s.records[record.ID]
	s.records[record.ID] = record
	if !replaced {
		s.ids = append(s.ids, record.ID)
		s.sorted = false
	}
	return replaced
}

func (s *Set) Get(id int) (models.FlashcardRecord, bool) {
	record, ok := s.records[id]
	return record, ok
}

func (s *Set) Len() int {
	return len(s.records)
}

// IDs returns every identifier in ascending order.
func (s *Set) IDs() []int {
	s.sort()
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Records returns every record in ascending identifier order.
func (s *Set) Records() []models.FlashcardRecord {
	return s.Range(0, 0)
}

// Range returns the records with start <= id <= end in ascending order.
// A zero end means no upper bound.
func (s *Set) Range(start, end int) []models.FlashcardRecord {
	s.sort()
	lo := sort.SearchInts(s.ids, start)
	var out []models.FlashcardRecord
	for _, id := range s.ids[lo:] {
		if end > 0 && id > end {
			break
		}
		out = append(out, s.records[id])
	}
	return out
}

func (s *Set) sort() {
	if s.sorted {
		return
	}
	sort.Ints(s.ids)
	s.sorted = true
}
