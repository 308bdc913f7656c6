package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gitahub/internal/verse"
	"gitahub/pkg/models"
)

// import-csv turns a spreadsheet export into a dataset file the server can
// load. Column names are kept as-is so any of the recognized aliases
// (shloka, meaning, chapter_number, ...) work.
func main() {
	var (
		in  = flag.String("in", "data/verses.csv", "input CSV path")
		out = flag.String("out", "data/gita.json", "output dataset JSON path")
	)
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		log.Fatalf("import %s failed: %v", *in, err)
	}
	if err := writeDataset(*out, records); err != nil {
		log.Fatalf("write %s failed: %v", *out, err)
	}

	stats := verse.Assemble(records).Stats()
	log.Printf("✅ imported %d verses (%d chapters) from %s into %s", stats.Verses, stats.Chapters, *in, *out)
	if stats.UnknownChapter > 0 {
		log.Printf("⚠️  %d rows have no usable chapter number", stats.UnknownChapter)
	}
}

// readRecords reads one raw record per row. Empty cells are omitted so
// the next alias column can supply the field.
func readRecords(src io.Reader) ([]models.RawVerseRecord, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if !hasAny(header, verse.SourceTextFields.Keys()) {
		return nil, fmt.Errorf("no source text column (want one of %s)", strings.Join(verse.SourceTextFields.Keys(), ", "))
	}

	var records []models.RawVerseRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		rec := models.RawVerseRecord{}
		for name := range header {
			if v := valueAt(header, row, name); v != "" {
				rec[name] = v
			}
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func writeDataset(outPath string, records []models.RawVerseRecord) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if records == nil {
		records = []models.RawVerseRecord{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, append(b, '\n'), 0o644)
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func hasAny(header map[string]int, keys []string) bool {
	for _, k := range keys {
		if _, ok := header[k]; ok {
			return true
		}
	}
	return false
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
