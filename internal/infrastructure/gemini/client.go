package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 60 * time.Second

	maxOutputTokens = 2048
)

// Config holds text-generation API settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Gemini generateContent endpoint. Output is forced to
// JSON at temperature zero; callers still have to fish the JSON payload
// out of the returned text.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// APIError carries a non-2xx Gemini response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new Gemini API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Result holds the joined candidate text plus the raw response envelope
type Result struct {
	Text string
	Raw  string
}

// GenerateContent sends a single-turn prompt and returns the model output
func (c *Client) GenerateContent(ctx context.Context, prompt string) (*Result, error) {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": prompt}},
			},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens":  maxOutputTokens,
			"temperature":      0.0,
			"responseMimeType": "application/json",
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, c.cfg.Model, url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var sb strings.Builder
	for _, part := range gjson.GetBytes(body, "candidates.0.content.parts").Array() {
		sb.WriteString(part.Get("text").String())
	}
	return &Result{Text: sb.String(), Raw: string(body)}, nil
}

// jsonBlock matches the first object or array literal in model output,
// tolerating prose or code fences around it.
var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}|\[[\s\S]*\]`)

// FirstJSON extracts the first JSON object or array embedded in text.
// The second return value is false when nothing parseable was found.
func FirstJSON(text string) (json.RawMessage, bool) {
	match := jsonBlock.FindString(text)
	if match == "" {
		return nil, false
	}
	if !json.Valid([]byte(match)) {
		return nil, false
	}
	return json.RawMessage(match), true
}
