package analysis

// WordCount is one entry of the word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// GroupCount is one entry of a grouped view (by location, by author).
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// VerifiedPost is a post projected down to its author and body.
type VerifiedPost struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Superlative is the single most-liked or most-reposted post of a collection.
type Superlative struct {
	Username string `json:"username"`
	Text     string `json:"text"`
	Likes    int    `json:"likes"`
	Reposts  int    `json:"reposts"`
}

// Result bundles the five independent views derived from one post
// collection. Each view is a pure projection; none mutates another.
type Result struct {
	TopWords     []WordCount    `json:"top_words"`
	Locations    []GroupCount   `json:"locations"`
	Authors      []GroupCount   `json:"authors"`
	Verified     []VerifiedPost `json:"verified"`
	MostLiked    *Superlative   `json:"most_liked,omitempty"`
	MostReposted *Superlative   `json:"most_reposted,omitempty"`
}

// SentimentEntry is one scored post.
type SentimentEntry struct {
	Username   string  `json:"username"`
	Text       string  `json:"text"`
	Translated string  `json:"translated"`
	Polarity   float64 `json:"polarity"`
}

// SentimentReport holds every scored post plus the polarity extremes.
type SentimentReport struct {
	Entries      []SentimentEntry `json:"entries"`
	MostPositive *SentimentEntry  `json:"most_positive,omitempty"`
	MostNegative *SentimentEntry  `json:"most_negative,omitempty"`
}
