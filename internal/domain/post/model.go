package post

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Language tags accepted by the search surface.
const (
	LanguagePortuguese = "pt"
	LanguageEnglish    = "en"
)

// AllLanguages lists the language tags a query may carry.
var AllLanguages = []string{LanguagePortuguese, LanguageEnglish}

var (
	// ErrUnsupportedLanguage is returned before any network call when a
	// query names a language outside AllLanguages.
	ErrUnsupportedLanguage = errors.New("language not available")

	// ErrInvalidQuery is returned before any network call when a query
	// parameter is out of bounds.
	ErrInvalidQuery = errors.New("invalid query")
)

// ValidateLanguage checks lang against AllLanguages. An empty tag means no
// language restriction and is always valid.
func ValidateLanguage(lang string) error {
	if lang == "" {
		return nil
	}
	for _, l := range AllLanguages {
		if l == lang {
			return nil
		}
	}
	return fmt.Errorf("%w: choose between %v", ErrUnsupportedLanguage, AllLanguages)
}

// Post is one fetched item plus its author record. Text and Username are
// always present; the remaining fields may be absent and stay at their zero
// value, which readers must treat as unknown.
type Post struct {
	CreatedAt         time.Time `json:"created_at"`
	Text              string    `json:"text"`
	Language          string    `json:"language,omitempty"`
	PossiblySensitive bool      `json:"possibly_sensitive"`
	Source            string    `json:"source,omitempty"`
	Likes             int       `json:"likes"`
	Reposts           int       `json:"reposts"`
	Username          string    `json:"username"`
	Location          string    `json:"location,omitempty"`
	Verified          bool      `json:"verified"`
	Description       string    `json:"description,omitempty"`
}

// Query bounds a single search invocation.
type Query struct {
	Hashtag      string
	Language     string // optional, empty means unrestricted
	MaxResults   int    // [10, 100]
	LookbackDays int    // [1, 6]
}

// Fetcher issues one bounded search call and materializes the results.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]Post, error)
}
