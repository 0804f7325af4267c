package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.hubapi.com"
	defaultTimeout = 30 * time.Second

	// Contact-to-company association, HubSpot-defined type.
	contactToCompanyTypeID = 279

	listPageSize = 100
)

// Config holds HubSpot API access settings
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Client is a thin adapter over the HubSpot CRM v3/v4 object APIs
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// APIError carries a non-2xx HubSpot response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot: status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new HubSpot API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("hubspot token is required")
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

// Object is a HubSpot CRM object with its requested properties
type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// Exists reports whether an object id is known to HubSpot
func (c *Client) Exists(ctx context.Context, objectType, id string) (bool, error) {
	resp, body, err := c.doRequest(ctx, http.MethodGet,
		fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, url.PathEscape(id)), nil)
	if err != nil {
		return false, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

// Create writes a new object and returns its HubSpot id
func (c *Client) Create(ctx context.Context, objectType string, properties map[string]string) (string, error) {
	payload := map[string]interface{}{"properties": properties}
	resp, body, err := c.doRequest(ctx, http.MethodPost, "/crm/v3/objects/"+objectType, payload)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var created Object
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if v := created.Properties["hs_object_id"]; v != "" {
		return v, nil
	}
	return created.ID, nil
}

// Update patches the properties of an existing object
func (c *Client) Update(ctx context.Context, objectType, id string, properties map[string]string) error {
	payload := map[string]interface{}{"properties": properties}
	resp, body, err := c.doRequest(ctx, http.MethodPatch,
		fmt.Sprintf("/crm/v3/objects/%s/%s", objectType, url.PathEscape(id)), payload)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// Associate links a contact to a company using the default association type
func (c *Client) Associate(ctx context.Context, contactID, companyID string) error {
	payload := []map[string]interface{}{
		{
			"associationCategory": "HUBSPOT_DEFINED",
			"associationTypeId":   contactToCompanyTypeID,
		},
	}
	resp, body, err := c.doRequest(ctx, http.MethodPut,
		fmt.Sprintf("/crm/v4/objects/contacts/%s/associations/companies/%s",
			url.PathEscape(contactID), url.PathEscape(companyID)), payload)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

type listResponse struct {
	Results []Object `json:"results"`
	Paging  struct {
		Next struct {
			After string `json:"after"`
		} `json:"next"`
	} `json:"paging"`
}

// ListAll pages through every object of a type, following next cursors
func (c *Client) ListAll(ctx context.Context, objectType string, properties []string) ([]Object, error) {
	var all []Object
	after := ""
	for {
		q := url.Values{}
		q.Set("limit", fmt.Sprintf("%d", listPageSize))
		q.Set("properties", strings.Join(properties, ","))
		if after != "" {
			q.Set("after", after)
		}

		resp, body, err := c.doRequest(ctx, http.MethodGet,
			"/crm/v3/objects/"+objectType+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode list response: %w", err)
		}
		all = append(all, page.Results...)

		after = page.Paging.Next.After
		if after == "" {
			return all, nil
		}
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("hubspot request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, body, nil
}
