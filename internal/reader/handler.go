package reader

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gitahub/internal/app"
	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

type Handler struct {
	State *app.State
}

func NewHandler(state *app.State) *Handler {
	return &Handler{State: state}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/verses", h.list)                     // GET /api/verses?chapter=2&limit=20
	rg.GET("/verses/random", h.random)            // GET /api/verses/random
	rg.GET("/verses/:chapter/:verse", h.getVerse) // GET /api/verses/2/47
	rg.GET("/chapters", h.listChapters)           // GET /api/chapters
	rg.GET("/chapters/:chapter", h.getChapter)    // GET /api/chapters/2
}

type chapterResponse struct {
	verse.Title
	Chapter int            `json:"chapter"`
	Verses  []models.Verse `json:"verses"`
}

// unavailable answers 503 when the dataset failed to load and reports
// whether it did so.
func (h *Handler) unavailable(c *gin.Context) bool {
	if h.State.Ready() {
		return false
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.State.Message()})
	return true
}

func (h *Handler) list(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	items := h.State.Store.All()
	if ch := strings.TrimSpace(c.Query("chapter")); ch != "" {
		items = h.State.Store.InChapter(ch)
	}

	limit := parseInt(c.Query("limit"), 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := parseInt(c.Query("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	total := len(items)
	page := []models.Verse{}
	if offset < total {
		page = items[offset:min(offset+limit, total)]
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  page,
	})
}

func (h *Handler) random(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	v, ok := h.State.Store.Random()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no verses"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) getVerse(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	ch, okCh := verse.AsNumber(c.Param("chapter"))
	vn, okV := verse.AsNumber(c.Param("verse"))
	if !okCh || !okV {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chapter and verse must be numbers"})
		return
	}

	v, ok := h.State.Store.Get(ch, vn)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) listChapters(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total": verse.ChapterCount,
		"items": h.State.Store.Chapters(),
	})
}

func (h *Handler) getChapter(c *gin.Context) {
	if h.unavailable(c) {
		return
	}
	n, ok := ParseChapter(c.Param("chapter"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "chapter not found"})
		return
	}

	title, _ := verse.ChapterTitle(n)
	c.JSON(http.StatusOK, chapterResponse{
		Chapter: n,
		Title:   title,
		Verses:  h.State.Store.InChapter(n),
	})
}

// ParseChapter accepts any tolerant chapter representation and limits it
// to the advertised 1..18 range.
func ParseChapter(raw string) (int, bool) {
	n, ok := verse.AsNumber(raw)
	if !ok || !verse.ValidChapter(n) {
		return 0, false
	}
	return n, true
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
