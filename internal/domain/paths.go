package domain

// PathSet is an ordered collection of unique monitored directory paths.
// It is the client's local projection of the backend's configuration; the
// backend remains the source of truth and is updated by replacing the
// entire set, never by diffing.
type PathSet []string

// Contains reports whether path is already in the set.
func (p PathSet) Contains(path string) bool {
	for _, existing := range p {
		if existing == path {
			return true
		}
	}
	return false
}

// Add appends path to the set, preserving order. The returned bool is
// false when the path was already present, in which case the set is
// returned unchanged and callers must skip the persist write.
func (p PathSet) Add(path string) (PathSet, bool) {
	if p.Contains(path) {
		return p, false
	}
	return append(p, path), true
}

// Remove filters path out of the set. The returned bool is false when the
// path was not present.
func (p PathSet) Remove(path string) (PathSet, bool) {
	for i, existing := range p {
		if existing == path {
			out := make(PathSet, 0, len(p)-1)
			out = append(out, p[:i]...)
			return append(out, p[i+1:]...), true
		}
	}
	return p, false
}

// Clone returns an independent copy, used when handing the set to an
// in-flight request so later local mutations cannot race the write.
func (p PathSet) Clone() PathSet {
	out := make(PathSet, len(p))
	copy(out, p)
	return out
}
