// Package web serves the single-page reader: home, chapter list, reader,
// install and about views, plus the manifest and share cards.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"gitahub/internal/app"
	"gitahub/internal/reader"
	"gitahub/internal/share"
	"gitahub/internal/verse"
	"gitahub/internal/view"
	"gitahub/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const appName = "Gita"

type Handler struct {
	State         *app.State
	ArrowsEnabled bool
}

func NewHandler(state *app.State, arrows bool) *Handler {
	return &Handler{State: state, ArrowsEnabled: arrows}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Register installs templates, static assets and page routes on r.
func (h *Handler) Register(r *gin.Engine) error {
	t, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(t)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", h.home)
	r.GET("/chapters", h.chapters)
	r.GET("/chapters/:chapter", h.reader)
	r.GET("/install", h.install)
	r.GET("/about", h.about)
	r.GET("/manifest.webmanifest", h.manifest)
	r.GET("/share/:chapter/:verse", h.share)
	return nil
}

type page struct {
	AppName       string
	View          view.View
	Nav           []view.NavItem
	Message       string
	ArrowsEnabled bool

	Verse    *models.Verse
	Chapters []models.ChapterSummary
	Chapter  int
	Title    verse.Title
	Verses   []models.Verse
}

func (h *Handler) newPage(v view.View) page {
	ctrl := view.NewController()
	return page{
		AppName:       appName,
		View:          v,
		Nav:           ctrl.Switch(v),
		Message:       h.State.Message(),
		ArrowsEnabled: h.ArrowsEnabled,
	}
}

func (h *Handler) render(c *gin.Context, status int, p page) {
	c.HTML(status, "layout.html", p)
}

func (h *Handler) home(c *gin.Context) {
	p := h.newPage(view.Home)
	if v, ok := h.State.Store.Random(); ok {
		p.Verse = &v
	}
	h.render(c, http.StatusOK, p)
}

func (h *Handler) chapters(c *gin.Context) {
	p := h.newPage(view.Chapters)
	p.Chapters = h.State.Store.Chapters()
	h.render(c, http.StatusOK, p)
}

func (h *Handler) reader(c *gin.Context) {
	n, ok := reader.ParseChapter(c.Param("chapter"))
	if !ok {
		p := h.newPage(view.Chapters)
		p.Chapters = h.State.Store.Chapters()
		p.Message = "Chapter not found."
		h.render(c, http.StatusNotFound, p)
		return
	}

	p := h.newPage(view.Reader)
	p.Chapter = n
	p.Title, _ = verse.ChapterTitle(n)
	p.Verses = h.State.Store.InChapter(n)
	h.render(c, http.StatusOK, p)
}

func (h *Handler) install(c *gin.Context) {
	h.render(c, http.StatusOK, h.newPage(view.Install))
}

func (h *Handler) about(c *gin.Context) {
	h.render(c, http.StatusOK, h.newPage(view.About))
}

func (h *Handler) manifest(c *gin.Context) {
	c.Header("Content-Type", "application/manifest+json")
	c.JSON(http.StatusOK, gin.H{
		"name":             "Bhagavad Gita",
		"short_name":       appName,
		"start_url":        "/",
		"display":          "standalone",
		"background_color": "#FFFBF5",
		"theme_color":      "#B45309",
		"icons": []gin.H{
			{"src": "/static/icon.svg", "sizes": "any", "type": "image/svg+xml"},
		},
	})
}

// share renders /share/:chapter/:verse as an SVG card. A trailing ".svg"
// on the verse segment is accepted.
func (h *Handler) share(c *gin.Context) {
	raw := c.Param("verse")
	if len(raw) > 4 && raw[len(raw)-4:] == ".svg" {
		raw = raw[:len(raw)-4]
	}
	ch, okCh := verse.AsNumber(c.Param("chapter"))
	vn, okV := verse.AsNumber(raw)
	if !okCh || !okV {
		c.String(http.StatusBadRequest, "chapter and verse must be numbers")
		return
	}

	v, ok := h.State.Store.Get(ch, vn)
	if !ok {
		c.String(http.StatusNotFound, "verse not found")
		return
	}
	title, _ := verse.ChapterTitle(ch)

	svg, err := share.Card(v, title)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="gita-%d-%d.svg"`, ch, vn))
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", svg)
}
