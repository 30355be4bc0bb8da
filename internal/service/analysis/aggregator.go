package analysis

import (
	"sort"
	"strings"

	"tagscope/internal/domain/analysis"
	"tagscope/internal/domain/post"
	"tagscope/internal/service/text"
)

// residualRepostToken survives normalization when a repost marker appears
// without a trailing colon.
const residualRepostToken = "RT"

// Engine derives the aggregate views over one fetched post collection.
type Engine struct {
	stopwords *text.StopwordTable
	topWords  int
}

// NewEngine creates an aggregation engine returning the topWords highest
// ranked words per analysis.
func NewEngine(stopwords *text.StopwordTable, topWords int) *Engine {
	if topWords <= 0 {
		topWords = 10
	}
	return &Engine{
		stopwords: stopwords,
		topWords:  topWords,
	}
}

// Aggregate produces the five views over posts. Word counts are corpus-wide,
// not per post. Aggregating an empty collection yields empty views and no
// superlatives, which is a legitimate terminal state rather than an error.
func (e *Engine) Aggregate(posts []post.Post, lang string) analysis.Result {
	return analysis.Result{
		TopWords:     e.topWordCounts(posts, lang),
		Locations:    locationCounts(posts),
		Authors:      authorCounts(posts),
		Verified:     verifiedPosts(posts),
		MostLiked:    mostBy(posts, func(p post.Post) int { return p.Likes }),
		MostReposted: mostBy(posts, func(p post.Post) int { return p.Reposts }),
	}
}

// topWordCounts flattens every post into one token stream, normalizes and
// filters the tokens, and ranks the survivors by occurrence count.
func (e *Engine) topWordCounts(posts []post.Post, lang string) []analysis.WordCount {
	stop := e.stopwords.SetFor(lang)

	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		for _, tok := range strings.Fields(p.Text) {
			w := text.CleanToken(tok)
			if w == "" || w == residualRepostToken {
				continue
			}
			if _, skip := stop[w]; skip {
				continue
			}
			if _, seen := counts[w]; !seen {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	ranked := rankCounts(order, counts)
	if len(ranked) > e.topWords {
		ranked = ranked[:e.topWords]
	}

	top := make([]analysis.WordCount, len(ranked))
	for i, g := range ranked {
		top[i] = analysis.WordCount{Word: g.Key, Count: g.Count}
	}
	return top
}

// locationCounts groups posts by normalized author location. Posts without a
// location are excluded rather than grouped under an empty key.
func locationCounts(posts []post.Post) []analysis.GroupCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		if p.Location == "" {
			continue
		}
		loc := text.CleanText(p.Location)
		if loc == "" {
			continue
		}
		if _, seen := counts[loc]; !seen {
			order = append(order, loc)
		}
		counts[loc]++
	}
	return rankCounts(order, counts)
}

// authorCounts groups posts by username verbatim.
func authorCounts(posts []post.Post) []analysis.GroupCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		if _, seen := counts[p.Username]; !seen {
			order = append(order, p.Username)
		}
		counts[p.Username]++
	}
	return rankCounts(order, counts)
}

func verifiedPosts(posts []post.Post) []analysis.VerifiedPost {
	verified := make([]analysis.VerifiedPost, 0)
	for _, p := range posts {
		if p.Verified {
			verified = append(verified, analysis.VerifiedPost{
				Username: p.Username,
				Text:     p.Text,
			})
		}
	}
	return verified
}

// mostBy picks the single post maximizing metric. Ties go to the post
// appearing first in ingestion order.
func mostBy(posts []post.Post, metric func(post.Post) int) *analysis.Superlative {
	if len(posts) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(posts); i++ {
		if metric(posts[i]) > metric(posts[best]) {
			best = i
		}
	}
	p := posts[best]
	return &analysis.Superlative{
		Username: p.Username,
		Text:     p.Text,
		Likes:    p.Likes,
		Reposts:  p.Reposts,
	}
}

// rankCounts materializes counts in first-encountered order, then sorts
// non-increasing by count. The stable sort keeps first-encountered order
// among equal counts.
func rankCounts(order []string, counts map[string]int) []analysis.GroupCount {
	ranked := make([]analysis.GroupCount, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, analysis.GroupCount{Key: key, Count: counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
