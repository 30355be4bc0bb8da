package text

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const stopwordHeader = "stopwords"

// StopwordTable holds one normalized stopword set per supported language.
// It is loaded once per run and never mutated afterwards.
type StopwordTable struct {
	sets     map[string]map[string]struct{}
	fallback string
}

// LoadStopwords eagerly reads stopwords_<lang>.csv from dir for every
// language in langs. Each file is UTF-8 with a "stopwords" header line and
// one token per line; tokens pass through CleanToken so membership tests
// compare like with like. The fallback language must be among langs.
func LoadStopwords(dir string, langs []string, fallback string) (*StopwordTable, error) {
	table := &StopwordTable{
		sets:     make(map[string]map[string]struct{}, len(langs)),
		fallback: fallback,
	}

	for _, lang := range langs {
		path := filepath.Join(dir, fmt.Sprintf("stopwords_%s.csv", lang))
		set, err := loadStopwordFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s stopwords: %w", lang, err)
		}
		table.sets[lang] = set
	}

	if _, ok := table.sets[fallback]; !ok {
		return nil, fmt.Errorf("fallback language %q has no stopword set", fallback)
	}

	return table, nil
}

func loadStopwordFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if strings.EqualFold(line, stopwordHeader) {
				continue
			}
		}
		if w := CleanToken(line); w != "" {
			set[w] = struct{}{}
		}
	}
	return set, scanner.Err()
}

// SetFor returns the stopword set for lang. Any language without a loaded
// set, including the empty tag, resolves to the fallback set.
func (t *StopwordTable) SetFor(lang string) map[string]struct{} {
	if set, ok := t.sets[lang]; ok {
		return set
	}
	return t.sets[t.fallback]
}
