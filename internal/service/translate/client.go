package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls a LibreTranslate-compatible HTTP endpoint. The service is
// treated as a black box (text, source language) -> English text.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a translation client for the service at baseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate converts text from sourceLang into English with a single
// blocking call. Failures propagate to the caller; there is no retry.
func (c *Client) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	payload := map[string]string{
		"q":      text,
		"source": sourceLang,
		"target": "en",
		"format": "text",
	}
	if c.APIKey != "" {
		payload["api_key"] = c.APIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status code %d", resp.StatusCode)
	}

	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	return out.TranslatedText, nil
}
