package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitahub/internal/app"
	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

func newRouter(t *testing.T, st *app.State) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, NewHandler(st, true).Register(r))
	return r
}

func fetch(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

var records = []models.RawVerseRecord{
	{"chapter_number": 2, "verse_id": 47, "shloka": "कर्मण्येवाधिकारस्ते\n2.47", "meaning": "You have a right to action"},
	{"chapter": 2, "verse": 1, "text": "तं तथा कृपयाविष्टम्"},
}

func TestHome(t *testing.T) {
	st := &app.State{Store: verse.Assemble(records[:1])}
	w := fetch(newRouter(t, st), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "कर्मण्येवाधिकारस्ते ।।")
	assert.Contains(t, body, "You have a right to action")
	assert.Contains(t, body, "Chapter 2 • Verse 47")
	assert.Contains(t, body, `/share/2/47.svg`)
	assert.NotContains(t, body, "load-error")
	assert.Contains(t, body, "arrow-layer")
}

func TestHome_LoadFailed(t *testing.T) {
	st := &app.State{Store: verse.Assemble(nil), LoadErr: errors.New("boom")}
	w := fetch(newRouter(t, st), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), app.LoadErrorMessage)
	assert.NotContains(t, w.Body.String(), "verse-content")
}

func TestHome_EmptyStore(t *testing.T) {
	st := &app.State{Store: verse.Assemble(nil)}
	w := fetch(newRouter(t, st), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "verse-content")
	assert.NotContains(t, w.Body.String(), "load-error")
}

func TestChapters(t *testing.T) {
	st := &app.State{Store: verse.Assemble(records)}
	w := fetch(newRouter(t, st), "/chapters")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, verse.ChapterCount, strings.Count(body, `class="chapter-card"`))
	assert.Contains(t, body, `href="/chapters/1"`)
	assert.Contains(t, body, `href="/chapters/18"`)
	assert.Contains(t, body, "The Distress of Arjuna")
	assert.Contains(t, body, `nav-link active" href="/chapters"`)
}

func TestReader(t *testing.T) {
	st := &app.State{Store: verse.Assemble(records)}
	w := fetch(newRouter(t, st), "/chapters/2")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	first := strings.Index(body, `id="v1"`)
	second := strings.Index(body, `id="v47"`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, body, "सांख्ययोग")
	assert.Contains(t, body, `nav-link active" href="/chapters"`)
}

func TestReader_OutOfRange(t *testing.T) {
	st := &app.State{Store: verse.Assemble(records)}
	r := newRouter(t, st)

	for _, path := range []string{"/chapters/0", "/chapters/19", "/chapters/abc"} {
		w := fetch(r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Chapter not found.", path)
	}
}

func TestStaticPages(t *testing.T) {
	r := newRouter(t, &app.State{Store: verse.Assemble(nil)})

	w := fetch(r, "/install")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "btn-install")

	w = fetch(r, "/about")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/api/contact"`)

	w = fetch(r, "/static/app.js")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestManifest(t *testing.T) {
	w := fetch(newRouter(t, &app.State{Store: verse.Assemble(nil)}), "/manifest.webmanifest")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/manifest+json")
	assert.Contains(t, w.Body.String(), `"start_url":"/"`)
}

func TestShare(t *testing.T) {
	r := newRouter(t, &app.State{Store: verse.Assemble(records)})

	w := fetch(r, "/share/2/47.svg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "<svg"), w.Body.String())

	assert.Equal(t, http.StatusNotFound, fetch(r, "/share/2/3.svg").Code)
	assert.Equal(t, http.StatusBadRequest, fetch(r, "/share/x/3").Code)
}
