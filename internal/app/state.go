// Package app holds the per-process application state: the verse store
// plus how it was loaded. It replaces module-level globals; handlers get
// a *State at construction time.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gitahub/internal/source"
	"gitahub/internal/verse"
)

// LoadErrorMessage is the static text shown when the dataset failed to load.
const LoadErrorMessage = "Could not load verse data."

type State struct {
	Store    *verse.Store
	Source   string
	LoadErr  error
	LoadedAt time.Time
}

// Load fetches and assembles the verse store once. It never returns an
// error: a failed load yields an empty store with LoadErr set, and the
// failure is logged exactly once here.
func Load(ctx context.Context, src source.Source, logger *zap.Logger, opts ...verse.Option) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	st := &State{Source: src.Name(), LoadedAt: time.Now().UTC()}

	records, err := src.FetchAll(ctx)
	if err != nil {
		logger.Error("verse data load failed", zap.String("source", st.Source), zap.Error(err))
		st.LoadErr = err
		st.Store = verse.Assemble(nil, opts...)
		return st
	}

	st.Store = verse.Assemble(records, opts...)
	stats := st.Store.Stats()
	logger.Info("verse data loaded",
		zap.String("source", st.Source),
		zap.Int("verses", stats.Verses),
		zap.Int("chapters", stats.Chapters),
		zap.Int("unknown_chapter", stats.UnknownChapter),
	)
	return st
}

// Ready reports whether the dataset loaded.
func (s *State) Ready() bool {
	return s != nil && s.LoadErr == nil
}

// Message is the user-facing load status, empty when ready.
func (s *State) Message() string {
	if s.Ready() {
		return ""
	}
	return LoadErrorMessage
}
