package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gitahub/pkg/models"
)

// Load failures. Both collapse to a single "could not load data" state
// for the user; they are kept apart for logs and tests.
var (
	ErrFetch = errors.New("fetch verse data")
	ErrParse = errors.New("parse verse data")
)

// Source is implemented by each place the verse dataset can come from.
// A source returns the raw records untouched; normalization happens later.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]models.RawVerseRecord, error)
}

// New picks an HTTPSource for http(s) locations and a FileSource otherwise.
func New(location string) Source {
	l := strings.ToLower(location)
	if strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://") {
		return NewHTTPSource(location)
	}
	return NewFileSource(location)
}

// MaxDatasetBytes caps how much of a dataset is read. The full scripture
// is a few megabytes; anything far beyond that is the wrong file or URL.
const MaxDatasetBytes = 32 << 20

// Decode reads a JSON array of objects. Numbers are kept as json.Number
// so chapter and verse values survive without float rounding.
func Decode(r io.Reader) ([]models.RawVerseRecord, error) {
	return decode(r, MaxDatasetBytes)
}

func decode(r io.Reader, limit int64) ([]models.RawVerseRecord, error) {
	lr := &io.LimitedReader{R: r, N: limit + 1}
	dec := json.NewDecoder(lr)
	dec.UseNumber()

	var raw []json.RawMessage
	err := dec.Decode(&raw)
	if lr.N <= 0 {
		return nil, fmt.Errorf("%w: dataset larger than %d bytes", ErrParse, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrParse, err)
	}

	records := make([]models.RawVerseRecord, 0, len(raw))
	for i, item := range raw {
		itemDec := json.NewDecoder(bytes.NewReader(item))
		itemDec.UseNumber()

		var rec models.RawVerseRecord
		if err := itemDec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: item %d is not an object: %v", ErrParse, i, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: item %d is null", ErrParse, i)
		}
		records = append(records, rec)
	}
	return records, nil
}
