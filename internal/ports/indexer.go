package ports

import (
	"context"

	"indexdeck/internal/domain"
)

// Indexer is the client-side view of the indexing service. Every consumer
// (TUI views, CLI commands, MCP tools) goes through this single boundary so
// all of them share one failure-handling discipline.
type Indexer interface {
	// Status fetches the current indexing status snapshot.
	Status(ctx context.Context) (domain.StatusSnapshot, error)

	// Directories loads the monitored path set and the backend's browse
	// root.
	Directories(ctx context.Context) (paths domain.PathSet, basePath string, err error)

	// ReplaceDirectories replaces the backend's entire stored set with
	// paths. Full replacement keeps add/remove idempotent from the
	// client's perspective.
	ReplaceDirectories(ctx context.Context, paths domain.PathSet) error

	// RemoveDirectory removes one path and cascades cleanup of its derived
	// records. Returns the number of cleaned-up file records.
	RemoveDirectory(ctx context.Context, path string) (deletedFiles int, err error)

	// Browse lists the contents of a remote directory.
	Browse(ctx context.Context, path string) (domain.BrowseListing, error)

	// Search runs a semantic search capped at maxResults.
	Search(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error)

	// Reindex asks the backend to rebuild its index.
	Reindex(ctx context.Context) error
}
