package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"indexdeck/internal/domain"
	"indexdeck/internal/logging"
	"indexdeck/internal/ports"
)

// Client talks to the indexing service over its HTTP API. It implements
// ports.Indexer and is the only place requests are built, so URL escaping
// of user-supplied paths happens exactly once.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

var _ ports.Indexer = (*Client)(nil)

// New creates a Client. WithBaseURL is required.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http: &http.Client{},
		log:  logging.Discard(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "failed to apply indexer option")
		}
	}
	if c.baseURL == "" {
		return nil, errors.New("indexer client requires a base URL")
	}
	return c, nil
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Status(ctx context.Context) (domain.StatusSnapshot, error) {
	var snapshot domain.StatusSnapshot
	err := c.getJSON(ctx, "/api/status", nil, &snapshot)
	return snapshot, err
}

func (c *Client) Directories(ctx context.Context) (domain.PathSet, string, error) {
	var payload struct {
		MonitoredPaths []string `json:"monitored_paths"`
		BasePath       string   `json:"base_path"`
	}
	if err := c.getJSON(ctx, "/api/directories", nil, &payload); err != nil {
		return nil, "", err
	}
	return domain.PathSet(payload.MonitoredPaths), payload.BasePath, nil
}

func (c *Client) ReplaceDirectories(ctx context.Context, paths domain.PathSet) error {
	body := struct {
		MonitoredPaths []string `json:"monitored_paths"`
	}{MonitoredPaths: paths}
	return c.postJSON(ctx, "/api/directories", body, nil)
}

func (c *Client) RemoveDirectory(ctx context.Context, path string) (int, error) {
	endpoint, err := url.JoinPath(c.baseURL, "/api/directories", url.PathEscape(path))
	if err != nil {
		return 0, errors.Wrap(err, "failed to build delete endpoint")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create delete request")
	}
	var payload struct {
		DeletedFiles int `json:"deleted_files"`
	}
	if err := c.do(req, &payload); err != nil {
		return 0, err
	}
	return payload.DeletedFiles, nil
}

func (c *Client) Browse(ctx context.Context, path string) (domain.BrowseListing, error) {
	var listing domain.BrowseListing
	query := url.Values{"path": []string{path}}
	if err := c.getJSON(ctx, "/api/browse", query, &listing); err != nil {
		return domain.BrowseListing{}, err
	}
	// The backend reports unreadable paths as a 200 with an error field.
	if listing.Error != "" {
		return domain.BrowseListing{}, &BrowseError{Path: path, Message: listing.Error}
	}
	return listing, nil
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	body := struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}{Query: query, MaxResults: maxResults}
	var payload struct {
		Results []domain.SearchResult `json:"results"`
	}
	if err := c.postJSON(ctx, "/api/search", body, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) Reindex(ctx context.Context) error {
	return c.postJSON(ctx, "/api/reindex", nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return errors.Wrapf(err, "failed to build endpoint for %s", path)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to create request for %s", path)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return errors.Wrapf(err, "failed to build endpoint for %s", path)
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal request for %s", path)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to create request for %s", path)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", req.URL.String()).Warn("request failed")
		return errors.Wrapf(err, "request to %s failed", req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apiErrorFromResponse(resp)
		c.log.WithField("url", req.URL.String()).WithField("status", resp.StatusCode).Warn("request rejected")
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", req.URL.Path)
	}
	return nil
}
