package verse

import (
	"regexp"
	"strings"

	"gitahub/pkg/models"
)

const (
	// MissingTranslation is used when a record has no translation-like field.
	MissingTranslation = "Meaning unavailable."

	danda       = "।"
	doubleDanda = "॥"
	terminator  = " ।।"
)

// trailingNumbering matches verse-numbering residue such as "2.47" or "12||".
var trailingNumbering = regexp.MustCompile(`[0-9.|]+$`)

// Normalize maps one raw record into a Verse. It never fails: missing
// fields degrade to their defaults.
func Normalize(rec models.RawVerseRecord) models.Verse {
	var v models.Verse

	if raw, _, ok := SourceTextFields.Resolve(rec); ok {
		v.Sanskrit = CleanSourceText(asText(raw))
	}

	v.Translation = MissingTranslation
	if raw, _, ok := TranslationFields.Resolve(rec); ok {
		v.Translation = strings.TrimSpace(asText(raw))
	}

	if raw, _, ok := ChapterFields.Resolve(rec); ok {
		v.Chapter, _ = AsNumber(raw)
	}
	if raw, _, ok := VerseFields.Resolve(rec); ok {
		v.Verse, _ = AsNumber(raw)
	}
	return v
}

// CleanSourceText collapses line breaks, drops trailing numbering, trims,
// and makes sure the text ends in a danda or double danda.
func CleanSourceText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = trailingNumbering.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if s != "" && !strings.HasSuffix(s, danda) && !strings.HasSuffix(s, doubleDanda) {
		s += terminator
	}
	return s
}
