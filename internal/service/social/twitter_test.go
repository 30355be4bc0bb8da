package social

import (
	"context"
	"errors"
	"testing"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"

	"tagscope/internal/domain/post"
)

type fakeSearcher struct {
	gotQuery string
	gotOpts  twitter.TweetRecentSearchOpts
	calls    int
	resp     *twitter.TweetRecentSearchResponse
	err      error
}

func (f *fakeSearcher) TweetRecentSearch(ctx context.Context, query string, opts twitter.TweetRecentSearchOpts) (*twitter.TweetRecentSearchResponse, error) {
	f.calls++
	f.gotQuery = query
	f.gotOpts = opts
	return f.resp, f.err
}

func newTestClient(fake *fakeSearcher) *Client {
	return &Client{
		api: fake,
		now: func() time.Time {
			return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestFetch_UnsupportedLanguageFailsBeforeNetwork(t *testing.T) {
	fake := &fakeSearcher{}
	client := newTestClient(fake)

	_, err := client.Fetch(context.Background(), post.Query{
		Hashtag:      "golang",
		Language:     "fr",
		MaxResults:   10,
		LookbackDays: 1,
	})

	if !errors.Is(err, post.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("search was called %d times, want 0", fake.calls)
	}
}

func TestFetch_BoundsValidation(t *testing.T) {
	tests := []struct {
		name  string
		query post.Query
	}{
		{"max results too low", post.Query{Hashtag: "go", MaxResults: 5, LookbackDays: 1}},
		{"max results too high", post.Query{Hashtag: "go", MaxResults: 101, LookbackDays: 1}},
		{"lookback too low", post.Query{Hashtag: "go", MaxResults: 10, LookbackDays: 0}},
		{"lookback too high", post.Query{Hashtag: "go", MaxResults: 10, LookbackDays: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSearcher{}
			client := newTestClient(fake)

			_, err := client.Fetch(context.Background(), tt.query)
			if !errors.Is(err, post.ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
			if fake.calls != 0 {
				t.Errorf("search was called %d times, want 0", fake.calls)
			}
		})
	}
}

func TestFetch_QueryAndWindow(t *testing.T) {
	fake := &fakeSearcher{resp: &twitter.TweetRecentSearchResponse{}}
	client := newTestClient(fake)

	_, err := client.Fetch(context.Background(), post.Query{
		Hashtag:      "golang",
		Language:     "en",
		MaxResults:   50,
		LookbackDays: 2,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if fake.gotQuery != "#golang lang:en" {
		t.Errorf("query = %q, want %q", fake.gotQuery, "#golang lang:en")
	}
	wantStart := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	if !fake.gotOpts.StartTime.Equal(wantStart) {
		t.Errorf("StartTime = %v, want %v", fake.gotOpts.StartTime, wantStart)
	}
	if fake.gotOpts.MaxResults != 50 {
		t.Errorf("MaxResults = %d, want 50", fake.gotOpts.MaxResults)
	}
}

func TestFetch_NoLanguageOmitsFilter(t *testing.T) {
	fake := &fakeSearcher{resp: &twitter.TweetRecentSearchResponse{}}
	client := newTestClient(fake)

	if _, err := client.Fetch(context.Background(), post.Query{Hashtag: "golang", MaxResults: 10, LookbackDays: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if fake.gotQuery != "#golang" {
		t.Errorf("query = %q, want %q", fake.gotQuery, "#golang")
	}
}

func TestFetch_MapsPosts(t *testing.T) {
	fake := &fakeSearcher{
		resp: &twitter.TweetRecentSearchResponse{
			Raw: &twitter.TweetRaw{
				Tweets: []*twitter.TweetObj{
					{
						AuthorID:          "1",
						Text:              "gophers assemble",
						CreatedAt:         "2026-08-27T09:30:45Z",
						Language:          "en",
						Source:            "web",
						PossiblySensitive: false,
						PublicMetrics:     &twitter.TweetMetricsObj{Likes: 4, Retweets: 2},
					},
					{
						AuthorID: "2",
						Text:     "no metrics here",
					},
				},
				Includes: &twitter.TweetRawIncludes{
					Users: []*twitter.UserObj{
						{
							ID:          "1",
							UserName:    "alice",
							Location:    "Lisboa",
							Verified:    true,
							Description: "gopher",
						},
					},
				},
			},
		},
	}
	client := newTestClient(fake)

	posts, err := client.Fetch(context.Background(), post.Query{Hashtag: "golang", MaxResults: 10, LookbackDays: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	first := posts[0]
	if first.Username != "alice" || first.Location != "Lisboa" || !first.Verified || first.Description != "gopher" {
		t.Errorf("author fields not mapped: %+v", first)
	}
	if first.Likes != 4 || first.Reposts != 2 {
		t.Errorf("metrics = (%d, %d), want (4, 2)", first.Likes, first.Reposts)
	}
	wantDate := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	if !first.CreatedAt.Equal(wantDate) {
		t.Errorf("CreatedAt = %v, want the calendar date %v", first.CreatedAt, wantDate)
	}

	// Missing metrics and author record stay at their zero values.
	second := posts[1]
	if second.Likes != 0 || second.Reposts != 0 {
		t.Errorf("missing metrics = (%d, %d), want (0, 0)", second.Likes, second.Reposts)
	}
	if second.Username != "" || second.Location != "" {
		t.Errorf("missing author mapped to %+v, want zero values", second)
	}
}

func TestFetch_SearchErrorPropagates(t *testing.T) {
	fake := &fakeSearcher{err: errors.New("boom")}
	client := newTestClient(fake)

	if _, err := client.Fetch(context.Background(), post.Query{Hashtag: "golang", MaxResults: 10, LookbackDays: 1}); err == nil {
		t.Fatal("expected the search error to propagate")
	}
}
