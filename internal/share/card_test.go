package share

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

func TestCard(t *testing.T) {
	v := models.Verse{
		Chapter:     2,
		Verse:       47,
		Sanskrit:    "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन ।।",
		Translation: "You have a right to action <alone> & never to its fruits",
	}
	title, _ := verse.ChapterTitle(2)

	out, err := Card(v, title)
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Chapter 2 • Verse 47")
	assert.Contains(t, svg, "The Path of Knowledge")
	assert.Contains(t, svg, "&lt;alone&gt; &amp; never")
	assert.NotContains(t, svg, "<alone>")

	// well-formed XML
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		if _, err := dec.Token(); err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}
}

func TestCard_NoTitle(t *testing.T) {
	out, err := Card(models.Verse{Chapter: 40, Verse: 1, Sanskrit: "x ।।", Translation: "y"}, verse.Title{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "font-style=\"italic\"")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 7))
	assert.Equal(t, []string{"supercalifragilistic", "a"}, Wrap("supercalifragilistic a", 5))
	assert.Nil(t, Wrap("   ", 10))
	for _, l := range Wrap("धर्मक्षेत्रे कुरुक्षेत्रे समवेता युयुत्सवः", 14) {
		assert.LessOrEqual(t, len([]rune(l)), 14)
	}
}
