package indexer

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Option configures a Client.
type Option func(c *Client) error

// WithBaseURL sets the server base URL, e.g. "http://localhost:8080".
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return errors.New("base URL cannot be empty")
		}
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return errors.Wrap(err, "invalid base URL")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client. The default carries
// no timeout: a hung request leaves the issuing component in its loading
// state, which is the documented behavior, so timeouts are opt-in here.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.http = hc
		return nil
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		c.log = log
		return nil
	}
}
