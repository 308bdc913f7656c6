package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gitahub/internal/source"
	"gitahub/pkg/models"
)

type stubSource struct {
	records []models.RawVerseRecord
	err     error
	calls   int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchAll(context.Context) ([]models.RawVerseRecord, error) {
	s.calls++
	return s.records, s.err
}

func TestLoad_OK(t *testing.T) {
	src := &stubSource{records: []models.RawVerseRecord{
		{"chapter": 2, "verse": 1, "text": "b"},
		{"chapter": 1, "verse": 1, "text": "a"},
	}}
	st := Load(context.Background(), src, zap.NewNop())

	require.True(t, st.Ready())
	assert.Empty(t, st.Message())
	assert.Equal(t, "stub", st.Source)
	assert.Equal(t, 2, st.Store.Len())
	assert.Equal(t, 1, st.Store.All()[0].Chapter)
	assert.Equal(t, 1, src.calls)
}

func TestLoad_FailureLeavesEmptyStore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	src := &stubSource{err: fmt.Errorf("%w: status 500", source.ErrFetch)}

	st := Load(context.Background(), src, zap.New(core))

	assert.False(t, st.Ready())
	assert.Equal(t, LoadErrorMessage, st.Message())
	assert.True(t, errors.Is(st.LoadErr, source.ErrFetch))
	require.NotNil(t, st.Store)
	assert.Equal(t, 0, st.Store.Len())
	_, ok := st.Store.Random()
	assert.False(t, ok)

	assert.Equal(t, 1, logs.FilterMessage("verse data load failed").Len())
	assert.Equal(t, 1, src.calls, "no retry")
}

func TestLoad_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Load(context.Background(), &stubSource{}, nil)
	})
}

func TestState_NilReady(t *testing.T) {
	var st *State
	assert.False(t, st.Ready())
	assert.Equal(t, LoadErrorMessage, st.Message())
}
