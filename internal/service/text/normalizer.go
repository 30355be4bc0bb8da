package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// repostMarker prefixes reposted text, as in "RT @someone: the original".
const repostMarker = "RT"

var urlPattern = regexp.MustCompile(`https?://\S+`)

// stripAccents decomposes and drops combining marks, so "é" compares as "e".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanToken maps a raw token to its canonical comparable form: repost
// marker and URLs removed, accents transliterated, anything that is not a
// letter or digit dropped, the rest uppercased. An all-punctuation or empty
// token yields "". Callers are responsible for filtering empty results and
// the residual "RT" token.
func CleanToken(tok string) string {
	tok = stripRepostMarker(tok)
	tok = urlPattern.ReplaceAllString(tok, "")
	if out, _, err := transform.String(stripAccents, tok); err == nil {
		tok = out
	}
	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.ToUpper(b.String()))
}

// stripRepostMarker removes everything from the first repost marker through
// the first colon that follows it. Text without both pieces is unchanged.
func stripRepostMarker(s string) string {
	i := strings.Index(s, repostMarker)
	if i < 0 {
		return s
	}
	j := strings.Index(s[i:], ":")
	if j < 0 {
		return s
	}
	return s[:i] + s[i+j+1:]
}

// CleanText normalizes a multi-word string without merging words across
// whitespace: it splits on whitespace, cleans each token, drops the empties,
// and rejoins with single spaces.
func CleanText(s string) string {
	fields := strings.Fields(s)
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		if c := CleanToken(f); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return strings.Join(cleaned, " ")
}
