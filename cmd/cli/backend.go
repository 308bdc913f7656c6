package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"gitahub/internal/app"
	"gitahub/internal/reader"
	"gitahub/internal/source"
	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

// chapterView mirrors the /api/chapters/:n response.
type chapterView struct {
	verse.Title
	Chapter int            `json:"chapter"`
	Verses  []models.Verse `json:"verses"`
}

// backend answers CLI reads either over HTTP or from a locally loaded store.
type backend interface {
	Random(ctx context.Context) (models.Verse, error)
	Chapters(ctx context.Context) ([]models.ChapterSummary, error)
	Chapter(ctx context.Context, n string) (chapterView, error)
	Verse(ctx context.Context, chapter, verse string) (models.Verse, error)
}

func openBackend(ctx context.Context) (backend, error) {
	if offlinePath == "" {
		return &apiBackend{
			BaseURL: apiURL,
			Client:  &http.Client{Timeout: 15 * time.Second},
		}, nil
	}
	st := app.Load(ctx, source.New(offlinePath), zap.NewNop())
	if !st.Ready() {
		return nil, fmt.Errorf("%s: %w", st.Message(), st.LoadErr)
	}
	return &localBackend{State: st}, nil
}

type apiBackend struct {
	BaseURL string
	Client  *http.Client
}

func (b *apiBackend) get(ctx context.Context, path string, out any) error {
	return doJSON(ctx, b.Client, http.MethodGet, b.BaseURL+path, nil, out)
}

func (b *apiBackend) Random(ctx context.Context) (models.Verse, error) {
	var v models.Verse
	err := b.get(ctx, "/api/verses/random", &v)
	return v, err
}

func (b *apiBackend) Chapters(ctx context.Context) ([]models.ChapterSummary, error) {
	var resp struct {
		Total int                     `json:"total"`
		Items []models.ChapterSummary `json:"items"`
	}
	err := b.get(ctx, "/api/chapters", &resp)
	return resp.Items, err
}

func (b *apiBackend) Chapter(ctx context.Context, n string) (chapterView, error) {
	var ch chapterView
	err := b.get(ctx, "/api/chapters/"+url.PathEscape(n), &ch)
	return ch, err
}

func (b *apiBackend) Verse(ctx context.Context, chapter, v string) (models.Verse, error) {
	var out models.Verse
	err := b.get(ctx, "/api/verses/"+url.PathEscape(chapter)+"/"+url.PathEscape(v), &out)
	return out, err
}

var (
	errNoVerses        = errors.New("no verses loaded")
	errChapterNotFound = errors.New("chapter not found")
	errVerseNotFound   = errors.New("verse not found")
)

type localBackend struct {
	State *app.State
}

func (b *localBackend) Random(context.Context) (models.Verse, error) {
	v, ok := b.State.Store.Random()
	if !ok {
		return models.Verse{}, errNoVerses
	}
	return v, nil
}

func (b *localBackend) Chapters(context.Context) ([]models.ChapterSummary, error) {
	return b.State.Store.Chapters(), nil
}

func (b *localBackend) Chapter(_ context.Context, raw string) (chapterView, error) {
	n, ok := reader.ParseChapter(raw)
	if !ok {
		return chapterView{}, fmt.Errorf("%w: %q", errChapterNotFound, raw)
	}
	title, _ := verse.ChapterTitle(n)
	return chapterView{Title: title, Chapter: n, Verses: b.State.Store.InChapter(n)}, nil
}

func (b *localBackend) Verse(_ context.Context, chapter, v string) (models.Verse, error) {
	ch, okCh := verse.AsNumber(chapter)
	vn, okV := verse.AsNumber(v)
	if !okCh || !okV {
		return models.Verse{}, fmt.Errorf("chapter and verse must be numbers")
	}
	out, ok := b.State.Store.Get(ch, vn)
	if !ok {
		return models.Verse{}, fmt.Errorf("%w: %d.%d", errVerseNotFound, ch, vn)
	}
	return out, nil
}

func printVerse(w io.Writer, v models.Verse) {
	fmt.Fprintf(w, "%s\n%s\nChapter %d, Verse %d\n\n", v.Sanskrit, v.Translation, v.Chapter, v.Verse)
}
