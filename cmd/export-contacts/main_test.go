package main

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitahub/internal/contact"
	"gitahub/pkg/database"
	"gitahub/pkg/models"
)

func TestCollect(t *testing.T) {
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	repo := contact.NewRepo(db)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < pageSize+5; i++ {
		require.NoError(t, repo.Create(ctx, models.ContactMessage{
			ID:        fmt.Sprintf("m-%03d", i),
			Name:      "Arjuna",
			Email:     "arjuna@example.org",
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.MarkForwarded(ctx, "m-000"))

	all, err := collect(ctx, repo, false)
	require.NoError(t, err)
	require.Len(t, all, pageSize+5)
	assert.Equal(t, fmt.Sprintf("m-%03d", pageSize+4), all[0].ID)

	unsent, err := collect(ctx, repo, true)
	require.NoError(t, err)
	assert.Len(t, unsent, pageSize+4)
	for _, m := range unsent {
		assert.False(t, m.Forwarded)
	}
}
