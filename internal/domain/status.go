package domain

import "math"

// ConnState describes the dashboard's view of the backend connection,
// derived from the outcome of the most recent status poll.
type ConnState int

const (
	ConnConnecting ConnState = iota
	ConnConnected
	ConnIndexing
	ConnError
)

func (s ConnState) String() string {
	switch s {
	case ConnConnecting:
		return "connecting"
	case ConnConnected:
		return "connected"
	case ConnIndexing:
		return "indexing"
	case ConnError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusSnapshot is a point-in-time copy of the backend's indexing status.
// Each poll replaces the previous snapshot wholesale; fields are never
// merged across polls.
type StatusSnapshot struct {
	IsIndexing         bool   `json:"is_indexing"`
	TotalFiles         int    `json:"total_files"`
	IndexedFiles       int    `json:"indexed_files"`
	PendingFiles       int    `json:"pending_files"`
	CurrentFile        string `json:"current_file"`
	LastIndexed        string `json:"last_indexed"`
	EntitiesCount      int    `json:"entities_count"`
	RelationshipsCount int    `json:"relationships_count"`
	ChunksCount        int    `json:"chunks_count"`
}

// ConnState derives the connection state from a successful poll.
func (s StatusSnapshot) ConnState() ConnState {
	if s.IsIndexing {
		return ConnIndexing
	}
	return ConnConnected
}

// ShowProgress reports whether a progress indicator should be visible.
// Progress is hidden (not zeroed) unless the backend is actively indexing
// a non-empty file set.
func (s StatusSnapshot) ShowProgress() bool {
	return s.IsIndexing && s.TotalFiles > 0
}

// ProgressPercent returns the indexing progress rounded to whole percent.
// A backend that momentarily reports indexed > total is tolerated by
// clamping to 100 rather than treated as an error.
func (s StatusSnapshot) ProgressPercent() int {
	if s.TotalFiles <= 0 {
		return 0
	}
	pct := int(math.Round(float64(s.IndexedFiles) / float64(s.TotalFiles) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
