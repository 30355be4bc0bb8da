package social

import (
	"context"
	"fmt"
	"net/http"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"

	"tagscope/internal/domain/post"
)

const twitterHost = "https://api.twitter.com"

// Bounds accepted by the recent-search endpoint.
const (
	minResults      = 10
	maxResults      = 100
	minLookbackDays = 1
	maxLookbackDays = 6
)

// bearerAuthorizer satisfies twitter.Authorizer with an app-only token.
type bearerAuthorizer struct {
	token string
}

func (a bearerAuthorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// recentSearcher is the slice of twitter.Client the fetcher needs.
type recentSearcher interface {
	TweetRecentSearch(ctx context.Context, query string, opts twitter.TweetRecentSearchOpts) (*twitter.TweetRecentSearchResponse, error)
}

// Client fetches recent posts for a hashtag through the Twitter v2 search
// API, one blocking call per Fetch with no retry or pagination.
type Client struct {
	api recentSearcher
	now func() time.Time
}

// NewClient creates a search client authenticated with bearerToken.
func NewClient(bearerToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		api: &twitter.Client{
			Authorizer: bearerAuthorizer{token: bearerToken},
			Client:     httpClient,
			Host:       twitterHost,
		},
		now: time.Now,
	}
}

// Fetch issues one bounded recent-search call covering [now - lookback, now]
// and materializes the results into posts in the order the API returned
// them. All validation happens before any network I/O; a failed or
// malformed response propagates to the caller.
func (c *Client) Fetch(ctx context.Context, q post.Query) ([]post.Post, error) {
	if err := post.ValidateLanguage(q.Language); err != nil {
		return nil, err
	}
	if q.MaxResults < minResults || q.MaxResults > maxResults {
		return nil, fmt.Errorf("%w: max results must be between %d and %d, got %d",
			post.ErrInvalidQuery, minResults, maxResults, q.MaxResults)
	}
	if q.LookbackDays < minLookbackDays || q.LookbackDays > maxLookbackDays {
		return nil, fmt.Errorf("%w: lookback days must be between %d and %d, got %d",
			post.ErrInvalidQuery, minLookbackDays, maxLookbackDays, q.LookbackDays)
	}

	query := "#" + q.Hashtag
	if q.Language != "" {
		query = fmt.Sprintf("#%s lang:%s", q.Hashtag, q.Language)
	}

	end := c.now()
	start := end.AddDate(0, 0, -q.LookbackDays)

	opts := twitter.TweetRecentSearchOpts{
		StartTime:  start,
		EndTime:    end,
		MaxResults: q.MaxResults,
		Expansions: []twitter.Expansion{twitter.ExpansionAuthorID},
		TweetFields: []twitter.TweetField{
			twitter.TweetFieldCreatedAt,
			twitter.TweetFieldLanguage,
			twitter.TweetFieldPossiblySensitve,
			twitter.TweetFieldSource,
			twitter.TweetFieldPublicMetrics,
		},
		UserFields: []twitter.UserField{
			twitter.UserFieldUserName,
			twitter.UserFieldLocation,
			twitter.UserFieldVerified,
			twitter.UserFieldDescription,
		},
	}

	resp, err := c.api.TweetRecentSearch(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("searching #%s: %w", q.Hashtag, err)
	}
	if resp == nil || resp.Raw == nil {
		return []post.Post{}, nil
	}

	return mapPosts(resp.Raw), nil
}

// mapPosts joins each tweet with its expanded author record by author ID and
// flattens both into one row. Missing metrics map to zero and a missing
// author record leaves the author fields unknown.
func mapPosts(raw *twitter.TweetRaw) []post.Post {
	authors := make(map[string]*twitter.UserObj)
	if raw.Includes != nil {
		for _, u := range raw.Includes.Users {
			if u != nil {
				authors[u.ID] = u
			}
		}
	}

	posts := make([]post.Post, 0, len(raw.Tweets))
	for _, tw := range raw.Tweets {
		if tw == nil {
			continue
		}
		p := post.Post{
			CreatedAt:         parseCreatedAt(tw.CreatedAt),
			Text:              tw.Text,
			Language:          tw.Language,
			PossiblySensitive: tw.PossiblySensitive,
			Source:            tw.Source,
		}
		if tw.PublicMetrics != nil {
			p.Likes = tw.PublicMetrics.Likes
			p.Reposts = tw.PublicMetrics.Retweets
		}
		if u := authors[tw.AuthorID]; u != nil {
			p.Username = u.UserName
			p.Location = u.Location
			p.Verified = u.Verified
			p.Description = u.Description
		}
		posts = append(posts, p)
	}
	return posts
}

// parseCreatedAt keeps the calendar date and discards the time of day.
func parseCreatedAt(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
