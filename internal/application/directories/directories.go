// Package directories holds the one-shot monitored-path operations shared
// by the CLI and the MCP bridge. The interactive dashboard keeps its own
// local projection and only shares the domain rules and the service port.
package directories

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"indexdeck/internal/domain"
	"indexdeck/internal/ports"
)

// ErrDuplicatePath is returned when adding a path that is already
// monitored. No backend call is made in that case.
var ErrDuplicatePath = errors.New("path is already monitored")

// ErrEmptyPath is returned for blank input before any network call.
var ErrEmptyPath = errors.New("path cannot be empty")

// AddCommand appends one path to the monitored set and persists the full
// set back to the backend.
type AddCommand struct {
	svc  ports.Indexer
	Path string
}

func NewAddCommand(svc ports.Indexer, path string) *AddCommand {
	return &AddCommand{svc: svc, Path: path}
}

// Execute loads the current set, appends the path, and writes the whole
// set back. Returns the resulting set.
func (c *AddCommand) Execute(ctx context.Context) (domain.PathSet, error) {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		return nil, ErrEmptyPath
	}
	paths, _, err := c.svc.Directories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monitored directories")
	}
	updated, added := paths.Add(path)
	if !added {
		return paths, ErrDuplicatePath
	}
	if err := c.svc.ReplaceDirectories(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save monitored directories")
	}
	return updated, nil
}

// RemoveCommand removes one path and triggers the backend's cascading
// cleanup of records derived from it.
type RemoveCommand struct {
	svc  ports.Indexer
	Path string
}

func NewRemoveCommand(svc ports.Indexer, path string) *RemoveCommand {
	return &RemoveCommand{svc: svc, Path: path}
}

// Execute returns the number of cleaned-up file records.
func (c *RemoveCommand) Execute(ctx context.Context) (int, error) {
	path := strings.TrimSpace(c.Path)
	if path == "" {
		return 0, ErrEmptyPath
	}
	deleted, err := c.svc.RemoveDirectory(ctx, path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove directory")
	}
	return deleted, nil
}
