package models

// RawVerseRecord is one object of the upstream verse dataset, as decoded.
// No key is guaranteed to be present and several spellings of the same
// field may coexist; internal/verse resolves them into a Verse.
type RawVerseRecord map[string]any

// Verse is the normalized, internal form of a single verse.
//
// Chapter and Verse are 0 when the source record carried no usable number.
type Verse struct {
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Sanskrit    string `json:"sanskrit"`
	Translation string `json:"translation"`
}

// ChapterSummary is what the chapter listing shows for one card.
type ChapterSummary struct {
	Number        int    `json:"number"`
	TitleEnglish  string `json:"title_en"`
	TitleSanskrit string `json:"title_sa"`
	VerseCount    int    `json:"verse_count"`
}
