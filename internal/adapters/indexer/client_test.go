package indexer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"indexdeck/internal/domain"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New()
	require.Error(t, err)

	_, err = New(WithBaseURL("not a url"))
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/status", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"is_indexing": true,
			"total_files": 200,
			"indexed_files": 50,
			"pending_files": 150,
			"current_file": "src/render.cpp",
			"entities_count": 1200,
			"relationships_count": 90,
			"chunks_count": 4500
		}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	snapshot, err := client.Status(context.Background())
	require.NoError(t, err)
	require.True(t, snapshot.IsIndexing)
	require.Equal(t, 200, snapshot.TotalFiles)
	require.Equal(t, 50, snapshot.IndexedFiles)
	require.Equal(t, 150, snapshot.PendingFiles)
	require.Equal(t, "src/render.cpp", snapshot.CurrentFile)
	require.Equal(t, 25, snapshot.ProgressPercent())
}

func TestDirectoriesRoundTrip(t *testing.T) {
	var savedBody map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/directories", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"monitored_paths": ["/host/src", "/host/lib"], "base_path": "/host"}`))
		case http.MethodPost:
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&savedBody))
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	paths, basePath, err := client.Directories(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.PathSet{"/host/src", "/host/lib"}, paths)
	require.Equal(t, "/host", basePath)

	// full replace, not a diff
	require.NoError(t, client.ReplaceDirectories(context.Background(), domain.PathSet{"/host/src"}))
	require.Equal(t, []string{"/host/src"}, savedBody["monitored_paths"])
}

func TestRemoveDirectoryEscapesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"status": "ok", "deleted_files": 42}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	deleted, err := client.RemoveDirectory(context.Background(), "/host/my src")
	require.NoError(t, err)
	require.Equal(t, 42, deleted)
	require.Equal(t, "/api/directories/%2Fhost%2Fmy%20src", gotPath)
}

func TestBrowseBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/browse", r.URL.Path)
		require.Equal(t, "/host/secret", r.URL.Query().Get("path"))
		_, _ = w.Write([]byte(`{"error": "Permission denied: /host/secret", "items": []}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Browse(context.Background(), "/host/secret")
	require.Error(t, err)

	var browseErr *BrowseError
	require.ErrorAs(t, err, &browseErr)
	require.Equal(t, "/host/secret", browseErr.Path)
	require.Contains(t, browseErr.Message, "Permission denied")
}

func TestBrowseFiltersNothingClientSide(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"current_path": "/host",
			"parent_path": "/",
			"items": [
				{"name": "src", "path": "/host/src", "is_dir": true, "cpp_files": 7},
				{"name": "notes.txt", "path": "/host/notes.txt", "is_dir": false}
			]
		}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	listing, err := client.Browse(context.Background(), "/host")
	require.NoError(t, err)
	// files arrive over the wire; filtering to directories happens at
	// display time
	require.Len(t, listing.Items, 2)
	require.Equal(t, 7, listing.Items[0].CppFiles)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "vertex buffer", body["query"])
		require.Equal(t, float64(5), body["max_results"])

		_, _ = w.Write([]byte(`{"results": [
			{"entity": "gfx::VertexBuffer::Allocate", "type": "function",
			 "file": "src/gfx/vbo.cpp", "lines": "120-163",
			 "content": "void VertexBuffer::Allocate() {}", "similarity": 0.91}
		]}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "vertex buffer", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "gfx::VertexBuffer::Allocate", results[0].Entity)
	require.InDelta(t, 0.91, results[0].Similarity, 1e-9)
}

func TestReindex(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/reindex", r.URL.Path)
		called = true
		_, _ = w.Write([]byte(`{"status": "indexing_started"}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)
	require.NoError(t, client.Reindex(context.Background()))
	require.True(t, called)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "database unavailable"}`))
	}))
	defer srv.Close()

	client, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Status(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "database unavailable", apiErr.Message)
}
