package verse

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"gitahub/pkg/models"
)

// Store is the ordered, read-only verse collection for one process.
// It is built once by Assemble and never mutated afterwards, so it is
// safe for concurrent readers.
type Store struct {
	verses []models.Verse
	intn   func(n int) int
}

type Option func(*Store)

// WithRand replaces the index picker used by Random.
func WithRand(intn func(n int) int) Option {
	return func(s *Store) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// Assemble normalizes every record and orders the result by
// (chapter, verse). Records sharing a pair keep their input order.
func Assemble(records []models.RawVerseRecord, opts ...Option) *Store {
	verses := make([]models.Verse, 0, len(records))
	for _, rec := range records {
		verses = append(verses, Normalize(rec))
	}
	slices.SortStableFunc(verses, Compare)

	s := &Store{verses: verses, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare orders verses by chapter, then verse number.
func Compare(a, b models.Verse) int {
	if c := cmp.Compare(a.Chapter, b.Chapter); c != 0 {
		return c
	}
	return cmp.Compare(a.Verse, b.Verse)
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.verses)
}

// All returns a copy of the ordered verses.
func (s *Store) All() []models.Verse {
	if s == nil {
		return nil
	}
	return slices.Clone(s.verses)
}

// Random picks a verse uniformly. ok is false on an empty store.
func (s *Store) Random() (models.Verse, bool) {
	if s.Len() == 0 {
		return models.Verse{}, false
	}
	return s.verses[s.intn(len(s.verses))], true
}

// InChapter returns the verses of one chapter in store order. The chapter
// may be given as an int, a float, a json.Number or a numeric string.
func (s *Store) InChapter(chapter any) []models.Verse {
	n, ok := AsNumber(chapter)
	if !ok || s.Len() == 0 {
		return []models.Verse{}
	}

	start, _ := slices.BinarySearchFunc(s.verses, n, func(v models.Verse, ch int) int {
		return cmp.Compare(v.Chapter, ch)
	})
	out := []models.Verse{}
	for _, v := range s.verses[start:] {
		if v.Chapter != n {
			break
		}
		out = append(out, v)
	}
	return out
}

// Get looks up a single verse.
func (s *Store) Get(chapter, verse int) (models.Verse, bool) {
	if s.Len() == 0 {
		return models.Verse{}, false
	}
	target := models.Verse{Chapter: chapter, Verse: verse}
	i, found := slices.BinarySearchFunc(s.verses, target, Compare)
	if !found {
		return models.Verse{}, false
	}
	return s.verses[i], true
}

// Chapters summarizes the advertised chapters 1..ChapterCount.
func (s *Store) Chapters() []models.ChapterSummary {
	out := make([]models.ChapterSummary, 0, ChapterCount)
	for n := 1; n <= ChapterCount; n++ {
		t, _ := ChapterTitle(n)
		out = append(out, models.ChapterSummary{
			Number:        n,
			TitleEnglish:  t.English,
			TitleSanskrit: t.Sanskrit,
			VerseCount:    len(s.InChapter(n)),
		})
	}
	return out
}

// Stats describes what was loaded.
type Stats struct {
	Verses          int `json:"verses"`
	Chapters        int `json:"chapters"`
	UnknownChapter  int `json:"unknown_chapter"`
	MissingSanskrit int `json:"missing_sanskrit"`
}

func (s *Store) Stats() Stats {
	st := Stats{Verses: s.Len()}
	if s.Len() == 0 {
		return st
	}
	last := -1
	for _, v := range s.verses {
		if v.Chapter == 0 {
			st.UnknownChapter++
		} else if v.Chapter != last {
			st.Chapters++
		}
		last = v.Chapter
		if v.Sanskrit == "" {
			st.MissingSanskrit++
		}
	}
	return st
}
