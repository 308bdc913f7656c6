package arrows

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu     sync.Mutex
	arrows []Arrow
}

func (s *recordingSink) BroadcastJSON(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arrows = append(s.arrows, v.(Arrow))
}

func (s *recordingSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.arrows)
}

func TestLoop_StopIsCooperative(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := &recordingSink{}
	loop := NewLoop(5*time.Millisecond, sink)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	require.Eventually(t, func() bool { return sink.len() >= 3 }, time.Second, time.Millisecond)
	loop.Stop()
	assert.True(t, loop.Stopped())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after Stop")
	}

	n := loop.Emitted()
	assert.Equal(t, int64(sink.len()), n)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, loop.Emitted(), "no arrows after stop")
}

func TestLoop_ContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(time.Hour, &recordingSink{})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after cancel")
	}
}

func TestLoop_StoppedBeforeRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := &recordingSink{}
	loop := NewLoop(time.Millisecond, sink)
	loop.Stop()
	require.NoError(t, loop.Run(context.Background()))
	assert.Zero(t, sink.len())
}

func TestLoop_ArrowShape(t *testing.T) {
	loop := NewLoop(time.Second, &recordingSink{})
	loop.rnd = func() float64 { return 0.5 }

	a := loop.next()
	assert.Equal(t, "arrow", a.Type)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, 50.0, a.X)
	assert.Equal(t, 50.0, a.Y)
	assert.Equal(t, 0.0, a.Angle)
	assert.Equal(t, 2100, a.DurationMS)
	assert.False(t, a.At.IsZero())
}

func TestHub_BroadcastOverWebSocket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	r := gin.New()
	r.GET("/ws/arrows", WSHandler(hub, zap.NewNop()))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/arrows"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastJSON(Arrow{Type: "arrow", ID: "a1", X: 10, Y: 20})

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got Arrow
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, 10.0, got.X)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	hub.CloseAll()
	assert.Zero(t, hub.Count())
	assert.NotPanics(t, func() { hub.BroadcastJSON(map[string]string{"type": "noop"}) })
}
