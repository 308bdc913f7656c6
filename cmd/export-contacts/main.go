package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"gitahub/internal/contact"
	"gitahub/pkg/database"
	"gitahub/pkg/models"
)

const pageSize = 100

func main() {
	var (
		outPath    = flag.String("out", "data/contact_messages.json", "output JSON path")
		onlyUnsent = flag.Bool("unsent", false, "only messages that were not forwarded")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	out, err := collect(ctx, contact.NewRepo(db), *onlyUnsent)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatalf("mkdir failed: %v", err)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		log.Fatalf("write failed: %v", err)
	}

	log.Printf("✅ exported %d contact messages to %s", len(out), *outPath)
}

// collect pages through every stored message, newest first.
func collect(ctx context.Context, repo *contact.Repo, onlyUnsent bool) ([]models.ContactMessage, error) {
	out := []models.ContactMessage{}
	for offset := 0; ; offset += pageSize {
		page, total, err := repo.List(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, m := range page {
			if onlyUnsent && m.Forwarded {
				continue
			}
			out = append(out, m)
		}
		if len(page) == 0 || offset+len(page) >= total {
			return out, nil
		}
	}
}
