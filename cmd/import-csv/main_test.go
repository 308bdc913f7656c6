package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitahub/internal/source"
	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

func TestReadRecords(t *testing.T) {
	in := "Chapter_Number,Verse,Shloka,Meaning\n" +
		"2,47,कर्मण्येवाधिकारस्ते,You have a right to action\n" +
		"1,1,धर्मक्षेत्रे,\n" +
		",,,\n"

	records, err := readRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.RawVerseRecord{
		"chapter_number": "2",
		"verse":          "47",
		"shloka":         "कर्मण्येवाधिकारस्ते",
		"meaning":        "You have a right to action",
	}, records[0])
	assert.NotContains(t, records[1], "meaning")

	v := verse.Normalize(records[1])
	assert.Equal(t, models.Verse{Chapter: 1, Verse: 1, Sanskrit: "धर्मक्षेत्रे ।।", Translation: verse.MissingTranslation}, v)
}

func TestReadRecords_NoTextColumn(t *testing.T) {
	_, err := readRecords(strings.NewReader("chapter,verse\n1,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shloka")
}

func TestWriteDataset_Loadable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "gita.json")
	records := []models.RawVerseRecord{{"chapter": "3", "verse": "5", "text": "न हि कश्चित्"}}
	require.NoError(t, writeDataset(out, records))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	back, err := source.Decode(f)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 3, verse.Normalize(back[0]).Chapter)
}
