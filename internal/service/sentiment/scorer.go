package sentiment

import (
	"context"
	"log"

	"tagscope/internal/domain/analysis"
	"tagscope/internal/domain/post"
	"tagscope/internal/service/text"
)

// Model scores the polarity of an English text in [-1, 1].
type Model interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// Translator converts text from a source language into English.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) (string, error)
}

// Scorer runs the clean, translate, score pipeline over a post collection,
// one blocking external call per post.
type Scorer struct {
	translator Translator
	model      Model
}

// NewScorer creates a sentiment scorer backed by the given translation and
// polarity capabilities.
func NewScorer(translator Translator, model Model) *Scorer {
	return &Scorer{
		translator: translator,
		model:      model,
	}
}

// Score cleans each post's text, translates it when sourceLang is neither
// English nor empty, and scores its polarity. A post whose external call
// fails is logged and skipped; the rest of the collection still scores.
// Ties for most positive or most negative go to the earlier post.
func (s *Scorer) Score(ctx context.Context, posts []post.Post, sourceLang string) analysis.SentimentReport {
	report := analysis.SentimentReport{
		Entries: make([]analysis.SentimentEntry, 0, len(posts)),
	}

	for _, p := range posts {
		cleaned := text.CleanText(p.Text)

		translated := cleaned
		if sourceLang != "" && sourceLang != post.LanguageEnglish {
			out, err := s.translator.Translate(ctx, cleaned, sourceLang)
			if err != nil {
				log.Printf("skipping post by @%s: translation failed: %v", p.Username, err)
				continue
			}
			translated = out
		}

		polarity, err := s.model.Polarity(ctx, translated)
		if err != nil {
			log.Printf("skipping post by @%s: sentiment scoring failed: %v", p.Username, err)
			continue
		}

		report.Entries = append(report.Entries, analysis.SentimentEntry{
			Username:   p.Username,
			Text:       p.Text,
			Translated: translated,
			Polarity:   polarity,
		})
	}

	for i := range report.Entries {
		e := &report.Entries[i]
		if report.MostPositive == nil || e.Polarity > report.MostPositive.Polarity {
			report.MostPositive = e
		}
		if report.MostNegative == nil || e.Polarity < report.MostNegative.Polarity {
			report.MostNegative = e
		}
	}

	return report
}
