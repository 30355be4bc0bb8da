package sentiment

import (
	"context"
	"strings"
	"unicode"
)

// Lexicon is a word-list polarity model used when no remote sentiment
// service is configured. Polarity is the signed share of sentiment-bearing
// words: (positive - negative) / (positive + negative), zero when the text
// carries no sentiment words at all.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexicon creates a lexicon model with the built-in English word lists.
func NewLexicon() *Lexicon {
	return &Lexicon{
		positive: wordSet(positiveWords),
		negative: wordSet(negativeWords),
	}
}

// Polarity scores text in [-1, 1]. Matching is case-insensitive and ignores
// surrounding punctuation.
func (l *Lexicon) Polarity(ctx context.Context, text string) (float64, error) {
	var pos, neg int
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok == "" {
			continue
		}
		if _, ok := l.positive[tok]; ok {
			pos++
		}
		if _, ok := l.negative[tok]; ok {
			neg++
		}
	}

	if pos+neg == 0 {
		return 0, nil
	}
	return float64(pos-neg) / float64(pos+neg), nil
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "best",
	"love", "loved", "loving", "beautiful", "perfect", "awesome", "brilliant",
	"outstanding", "superb", "exceptional", "incredible", "magnificent",
	"marvelous", "pleasant", "delightful", "enjoyable", "happy", "glad",
	"pleased", "satisfied", "terrific", "fabulous", "splendid", "impressive",
	"remarkable", "positive", "advantage", "benefit", "success", "successful",
	"win", "winning", "winner", "better", "improvement", "improved",
	"exciting", "excited", "enthusiasm", "enthusiastic", "optimistic",
	"hopeful", "promising", "favorable",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate", "hated",
	"hating", "ugly", "disgusting", "dreadful", "poor", "disappointing",
	"disappointed", "disappointment", "failure", "failed", "fail", "failing",
	"lose", "losing", "loser", "lost", "worse", "negative", "problem",
	"problems", "broken", "useless", "worthless", "annoying", "annoyed",
	"angry", "anger", "sad", "sadness", "unhappy", "miserable", "painful",
	"pain", "fear", "afraid", "scared", "worried", "worry", "pessimistic",
	"hopeless", "unfavorable", "wrong", "mess",
}
