package indexer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is an error reported by the indexing service over HTTP. It
// carries the status code and whatever message the backend put in the
// response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("indexer: %d: %s", e.StatusCode, e.Message)
}

// BrowseError is a backend-reported domain error for a browse request
// (unreadable path, permission denied). The browser renders it inline at
// the point of failure rather than as a notification.
type BrowseError struct {
	Path    string
	Message string
}

func (e *BrowseError) Error() string {
	return fmt.Sprintf("browse %s: %s", e.Path, e.Message)
}

func apiErrorFromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = string(body)
		return apiErr
	}
	switch {
	case payload.Detail != "":
		apiErr.Message = payload.Detail
	case payload.Error != "":
		apiErr.Message = payload.Error
	default:
		apiErr.Message = string(body)
	}
	return apiErr
}
