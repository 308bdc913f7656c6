package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gitahub/internal/app"
	"gitahub/internal/logging"
	"gitahub/internal/source"
	"gitahub/pkg/models"
	"gitahub/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		data = flag.String("data", cfg.DataPath, "dataset file path or URL")
		out  = flag.String("out", "data/verses.csv", "output CSV path")
	)
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := app.Load(ctx, source.New(*data), logger)
	if !st.Ready() {
		logger.Fatal("export aborted", zap.String("source", st.Source), zap.Error(st.LoadErr))
	}

	if err := exportVerses(*out, st.Store.All()); err != nil {
		logger.Fatal("export verses failed", zap.Error(err))
	}
	logger.Info("exported verses", zap.String("out", *out), zap.Int("verses", st.Store.Len()))
}

func exportVerses(outPath string, verses []models.Verse) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeCSV(f, verses)
}

// writeCSV writes verses in store order. Unknown chapter or verse
// numbers are left empty.
func writeCSV(dst io.Writer, verses []models.Verse) error {
	w := csv.NewWriter(dst)
	if err := w.Write([]string{"chapter", "verse", "sanskrit", "translation"}); err != nil {
		return err
	}

	for _, v := range verses {
		if err := w.Write([]string{
			number(v.Chapter),
			number(v.Verse),
			v.Sanskrit,
			v.Translation,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func number(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
