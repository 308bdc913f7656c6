package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

func TestWriteCSV(t *testing.T) {
	store := verse.Assemble([]models.RawVerseRecord{
		{"chapter": 2, "verse": 47, "text": "कर्मण्येवाधिकारस्ते", "translation": "You have a right, to action"},
		{"text": "orphan"},
		{"chapter": 1, "verse": 1, "text": "धर्मक्षेत्रे"},
	})

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, store.All()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"chapter", "verse", "sanskrit", "translation"},
		{"", "", "orphan ।।", verse.MissingTranslation},
		{"1", "1", "धर्मक्षेत्रे ।।", verse.MissingTranslation},
		{"2", "47", "कर्मण्येवाधिकारस्ते ।।", "You have a right, to action"},
	}, rows)
}

func TestExportVerses_CreatesDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "verses.csv")
	require.NoError(t, exportVerses(out, []models.Verse{{Chapter: 1, Verse: 1, Sanskrit: "a ।।", Translation: "b"}}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "chapter,verse,sanskrit,translation\n1,1,a ।।,b\n", string(data))
}
