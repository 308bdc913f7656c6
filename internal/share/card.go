// Package share renders a verse as a standalone SVG card for sharing.
package share

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

const (
	cardWidth       = 1080
	lineHeight      = 56
	wrapSanskrit    = 28
	wrapTranslation = 48
)

var cardTmpl = template.Must(template.New("card").Funcs(template.FuncMap{
	"esc": escape,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<rect width="100%" height="100%" fill="#FFFBF5"/>
<text x="{{.Center}}" y="96" text-anchor="middle" font-family="Inter, sans-serif" font-size="28" font-weight="700" fill="#B45309">{{esc .Reference}}</text>
{{- if .Title}}
<text x="{{.Center}}" y="140" text-anchor="middle" font-family="'Playfair Display', serif" font-size="30" font-style="italic" fill="#666666">{{esc .Title}}</text>
{{- end}}
{{- range .Sanskrit}}
<text x="{{$.Center}}" y="{{.Y}}" text-anchor="middle" font-family="'Noto Serif Devanagari', serif" font-size="44" fill="#111111">{{esc .Text}}</text>
{{- end}}
{{- range .Translation}}
<text x="{{$.Center}}" y="{{.Y}}" text-anchor="middle" font-family="'Playfair Display', serif" font-size="32" fill="#555555">{{esc .Text}}</text>
{{- end}}
</svg>
`))

type line struct {
	Text string
	Y    int
}

type cardData struct {
	Width, Height, Center int
	Reference, Title      string
	Sanskrit, Translation []line
}

// Card renders v as SVG. title may be zero when the chapter has none.
func Card(v models.Verse, title verse.Title) ([]byte, error) {
	d := cardData{
		Width:     cardWidth,
		Center:    cardWidth / 2,
		Reference: fmt.Sprintf("Chapter %d • Verse %d", v.Chapter, v.Verse),
		Title:     title.English,
	}

	y := 230
	for _, l := range Wrap(v.Sanskrit, wrapSanskrit) {
		d.Sanskrit = append(d.Sanskrit, line{Text: l, Y: y})
		y += lineHeight + 8
	}
	y += lineHeight / 2
	for _, l := range Wrap(v.Translation, wrapTranslation) {
		d.Translation = append(d.Translation, line{Text: l, Y: y})
		y += lineHeight
	}
	d.Height = y + 80

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render share card: %w", err)
	}
	return buf.Bytes(), nil
}

// Wrap breaks s on spaces into lines of at most width runes. Words longer
// than width get a line of their own.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	var (
		lines []string
		cur   strings.Builder
	)
	for _, w := range words {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
