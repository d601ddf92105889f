package directories

import (
	"context"
	"errors"
	"testing"

	"indexdeck/internal/domain"
)

// fakeIndexer records calls so tests can assert how many writes happened.
type fakeIndexer struct {
	paths        domain.PathSet
	basePath     string
	replaceCalls int
	removeCalls  int
	loadErr      error
	replaceErr   error
	removeErr    error
	deletedFiles int
}

func (f *fakeIndexer) Status(context.Context) (domain.StatusSnapshot, error) {
	return domain.StatusSnapshot{}, nil
}

func (f *fakeIndexer) Directories(context.Context) (domain.PathSet, string, error) {
	if f.loadErr != nil {
		return nil, "", f.loadErr
	}
	return f.paths.Clone(), f.basePath, nil
}

func (f *fakeIndexer) ReplaceDirectories(_ context.Context, paths domain.PathSet) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.paths = paths.Clone()
	return nil
}

func (f *fakeIndexer) RemoveDirectory(_ context.Context, path string) (int, error) {
	f.removeCalls++
	if f.removeErr != nil {
		return 0, f.removeErr
	}
	f.paths, _ = f.paths.Remove(path)
	return f.deletedFiles, nil
}

func (f *fakeIndexer) Browse(context.Context, string) (domain.BrowseListing, error) {
	return domain.BrowseListing{}, nil
}

func (f *fakeIndexer) Search(context.Context, string, int) ([]domain.SearchResult, error) {
	return nil, nil
}

func (f *fakeIndexer) Reindex(context.Context) error {
	return nil
}

func TestAddPersistsFullSet(t *testing.T) {
	svc := &fakeIndexer{paths: domain.PathSet{"/host/lib"}}

	paths, err := NewAddCommand(svc, "/host/src").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	if svc.replaceCalls != 1 {
		t.Errorf("expected exactly one persisted write, got %d", svc.replaceCalls)
	}
}

func TestAddDuplicateMakesNoBackendWrite(t *testing.T) {
	svc := &fakeIndexer{paths: domain.PathSet{"/host/src"}}

	_, err := NewAddCommand(svc, "/host/src").Execute(context.Background())
	if !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("expected ErrDuplicatePath, got %v", err)
	}
	if svc.replaceCalls != 0 {
		t.Errorf("duplicate add must not persist, got %d writes", svc.replaceCalls)
	}
	if len(svc.paths) != 1 {
		t.Errorf("expected exactly one occurrence, got %v", svc.paths)
	}
}

func TestAddRejectsEmptyPathBeforeAnyCall(t *testing.T) {
	svc := &fakeIndexer{loadErr: errors.New("should not be called")}

	_, err := NewAddCommand(svc, "   ").Execute(context.Background())
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
	if svc.replaceCalls != 0 {
		t.Error("empty path must not reach the backend")
	}
}

func TestRemoveReportsCleanupCount(t *testing.T) {
	svc := &fakeIndexer{paths: domain.PathSet{"/host/src"}, deletedFiles: 42}

	deleted, err := NewRemoveCommand(svc, "/host/src").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 42 {
		t.Errorf("expected 42 cleaned-up files, got %d", deleted)
	}
	if svc.removeCalls != 1 {
		t.Errorf("expected one delete call, got %d", svc.removeCalls)
	}
}
