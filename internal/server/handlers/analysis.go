// internal/server/handlers/analysis.go

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tagscope/internal/domain/analysis"
	"tagscope/internal/domain/post"
	analysisService "tagscope/internal/service/analysis"
	"tagscope/internal/service/sentiment"
)

// Defaults fill query parameters the caller leaves out.
type Defaults struct {
	MaxResults   int
	LookbackDays int
}

// AnalysisHandler handles hashtag analysis HTTP requests
type AnalysisHandler struct {
	fetcher  post.Fetcher
	engine   *analysisService.Engine
	scorer   *sentiment.Scorer
	defaults Defaults
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(fetcher post.Fetcher, engine *analysisService.Engine, scorer *sentiment.Scorer, defaults Defaults) *AnalysisHandler {
	return &AnalysisHandler{
		fetcher:  fetcher,
		engine:   engine,
		scorer:   scorer,
		defaults: defaults,
	}
}

// AnalysisReport is the aggregate views plus run metadata.
type AnalysisReport struct {
	ID          string    `json:"id"`
	Hashtag     string    `json:"hashtag"`
	Language    string    `json:"language,omitempty"`
	PostCount   int       `json:"post_count"`
	GeneratedAt time.Time `json:"generated_at"`
	analysis.Result
}

// SentimentReport is the scored posts plus run metadata.
type SentimentReport struct {
	ID          string    `json:"id"`
	Hashtag     string    `json:"hashtag"`
	Language    string    `json:"language,omitempty"`
	PostCount   int       `json:"post_count"`
	GeneratedAt time.Time `json:"generated_at"`
	analysis.SentimentReport
}

// GetPosts returns the raw fetched post collection for a hashtag
func (h *AnalysisHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	posts, err := h.fetch(w, r, q)
	if err != nil {
		return
	}

	respondWithJSON(w, http.StatusOK, posts)
}

// GetAnalysis fetches posts for a hashtag and returns the aggregate views
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	posts, err := h.fetch(w, r, q)
	if err != nil {
		return
	}

	respondWithJSON(w, http.StatusOK, AnalysisReport{
		ID:          uuid.New().String(),
		Hashtag:     q.Hashtag,
		Language:    q.Language,
		PostCount:   len(posts),
		GeneratedAt: time.Now().UTC(),
		Result:      h.engine.Aggregate(posts, q.Language),
	})
}

// GetSentiment fetches posts for a hashtag and returns polarity scores
func (h *AnalysisHandler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	posts, err := h.fetch(w, r, q)
	if err != nil {
		return
	}

	respondWithJSON(w, http.StatusOK, SentimentReport{
		ID:              uuid.New().String(),
		Hashtag:         q.Hashtag,
		Language:        q.Language,
		PostCount:       len(posts),
		GeneratedAt:     time.Now().UTC(),
		SentimentReport: h.scorer.Score(r.Context(), posts, q.Language),
	})
}

// fetch runs the search and writes the error response itself when the call
// fails, so handlers can just bail out.
func (h *AnalysisHandler) fetch(w http.ResponseWriter, r *http.Request, q post.Query) ([]post.Post, error) {
	posts, err := h.fetcher.Fetch(r.Context(), q)
	if err != nil {
		if errors.Is(err, post.ErrUnsupportedLanguage) || errors.Is(err, post.ErrInvalidQuery) {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		} else {
			respondWithError(w, http.StatusBadGateway, "Failed to fetch posts", err)
		}
		return nil, err
	}
	return posts, nil
}

// parseQuery reads the shared query parameters: hashtag (required, a leading
// "#" is tolerated), lang, max_results and days.
func (h *AnalysisHandler) parseQuery(r *http.Request) (post.Query, error) {
	params := r.URL.Query()

	q := post.Query{
		Hashtag:      strings.TrimPrefix(strings.TrimSpace(params.Get("hashtag")), "#"),
		Language:     params.Get("lang"),
		MaxResults:   h.defaults.MaxResults,
		LookbackDays: h.defaults.LookbackDays,
	}

	if q.Hashtag == "" {
		return q, errors.New("missing hashtag parameter")
	}

	if v := params.Get("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid max_results: %q", v)
		}
		q.MaxResults = n
	}

	if v := params.Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid days: %q", v)
		}
		q.LookbackDays = n
	}

	return q, nil
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
