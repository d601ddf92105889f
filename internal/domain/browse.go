package domain

import "strings"

// BrowseNode is a single entry in a remote directory listing.
type BrowseNode struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsDir    bool   `json:"is_dir"`
	CppFiles int    `json:"cpp_files"`
}

// BrowseListing is the backend's response to a browse request. Either
// Items is populated or Error carries a backend-reported domain error
// (unreadable path, permission denied).
type BrowseListing struct {
	CurrentPath string       `json:"current_path"`
	ParentPath  string       `json:"parent_path"`
	Items       []BrowseNode `json:"items"`
	Error       string       `json:"error"`
}

// DirectoriesOnly filters a listing down to directory entries. Files are
// fetched but never shown in the browser.
func DirectoriesOnly(items []BrowseNode) []BrowseNode {
	dirs := make([]BrowseNode, 0, len(items))
	for _, item := range items {
		if item.IsDir {
			dirs = append(dirs, item)
		}
	}
	return dirs
}

// Crumb is one navigable segment of a breadcrumb trail. Path is the full
// prefix reconstructed up to and including this segment, so jumping to a
// crumb reuses the ordinary navigate transition.
type Crumb struct {
	Label string
	Path  string
}

// Breadcrumbs splits path into ordered prefix crumbs. "/host/a/b" yields
// "/", "/host", "/host/a", "/host/a/b".
func Breadcrumbs(path string) []Crumb {
	if path == "" {
		return nil
	}
	crumbs := []Crumb{{Label: "/", Path: "/"}}
	prefix := ""
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		prefix += "/" + seg
		crumbs = append(crumbs, Crumb{Label: seg, Path: prefix})
	}
	return crumbs
}

// ParentPath returns the path one level up, or the path itself at the root.
func ParentPath(path string) string {
	crumbs := Breadcrumbs(path)
	if len(crumbs) < 2 {
		return path
	}
	return crumbs[len(crumbs)-2].Path
}
