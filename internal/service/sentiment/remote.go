package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Remote scores polarity through an external HTTP sentiment service,
// treated as an opaque capability (text) -> float.
type Remote struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewRemote creates a sentiment client for the service at baseURL.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Polarity scores text with a single blocking call. A score outside [-1, 1]
// counts as a malformed response.
func (r *Remote) Polarity(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sentiment service returned status code %d", resp.StatusCode)
	}

	var out struct {
		Polarity float64 `json:"polarity"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}

	if out.Polarity < -1 || out.Polarity > 1 {
		return 0, fmt.Errorf("sentiment service returned polarity %f outside [-1, 1]", out.Polarity)
	}

	return out.Polarity, nil
}
