package verse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gitahub/pkg/models"
)

// Accessor reads one candidate value out of a raw record.
type Accessor struct {
	Key string
	Get func(models.RawVerseRecord) (any, bool)
}

// Candidates is an ordered fallback list for one target field.
// The first accessor yielding a present value wins.
type Candidates []Accessor

// Keyed builds a Candidates list that reads the given keys in order.
func Keyed(keys ...string) Candidates {
	out := make(Candidates, 0, len(keys))
	for _, k := range keys {
		key := k
		out = append(out, Accessor{
			Key: key,
			Get: func(rec models.RawVerseRecord) (any, bool) {
				v, ok := rec[key]
				return v, ok
			},
		})
	}
	return out
}

var (
	SourceTextFields  = Keyed("text", "shloka", "sanskrit")
	ChapterFields     = Keyed("chapter", "chapter_number", "chapter_id")
	VerseFields       = Keyed("verse", "verse_number", "verse_id")
	TranslationFields = Keyed("translation", "meaning", "english_meaning", "transliteration", "word_meanings")
)

// Resolve returns the first present value and the key it came from.
func (c Candidates) Resolve(rec models.RawVerseRecord) (any, string, bool) {
	for _, a := range c {
		v, ok := a.Get(rec)
		if ok && present(v) {
			return v, a.Key, true
		}
	}
	return nil, "", false
}

// Keys lists the candidate keys in resolution order.
func (c Candidates) Keys() []string {
	keys := make([]string, len(c))
	for i, a := range c {
		keys[i] = a.Key
	}
	return keys
}

// present reports whether v counts as supplied. Empty strings, zero
// numbers, false and null all fall through to the next candidate.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case int32:
		return x != 0
	default:
		return true
	}
}

func asText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// AsNumber coerces a chapter or verse value to int. Numeric strings are
// accepted after trimming, so "5", " 5" and 5 compare equal. Anything
// that is not a whole number yields ok=false.
func AsNumber(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case int32:
		return int(x), true
	case float64:
		return wholeFloat(x)
	case float32:
		return wholeFloat(float64(x))
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return AsNumber(n)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
