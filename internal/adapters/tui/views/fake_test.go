package views

import (
	"context"
	"errors"

	"indexdeck/internal/domain"
)

var errFake = errors.New("backend unreachable")

// fakeIndexer is a canned ports.Indexer for view tests.
type fakeIndexer struct {
	status     domain.StatusSnapshot
	statusErr  error
	paths      domain.PathSet
	basePath   string
	listings   map[string]domain.BrowseListing
	browseErrs map[string]error
	results    []domain.SearchResult
	searchErr  error

	searchCalls  int
	replaceCalls int
	removeCalls  int
	lastReplaced domain.PathSet
}

func (f *fakeIndexer) Status(context.Context) (domain.StatusSnapshot, error) {
	return f.status, f.statusErr
}

func (f *fakeIndexer) Directories(context.Context) (domain.PathSet, string, error) {
	return f.paths.Clone(), f.basePath, nil
}

func (f *fakeIndexer) ReplaceDirectories(_ context.Context, paths domain.PathSet) error {
	f.replaceCalls++
	f.lastReplaced = paths.Clone()
	return nil
}

func (f *fakeIndexer) RemoveDirectory(_ context.Context, path string) (int, error) {
	f.removeCalls++
	return 42, nil
}

func (f *fakeIndexer) Browse(_ context.Context, path string) (domain.BrowseListing, error) {
	if err := f.browseErrs[path]; err != nil {
		return domain.BrowseListing{}, err
	}
	return f.listings[path], nil
}

func (f *fakeIndexer) Search(context.Context, string, int) ([]domain.SearchResult, error) {
	f.searchCalls++
	return f.results, f.searchErr
}

func (f *fakeIndexer) Reindex(context.Context) error {
	return nil
}
