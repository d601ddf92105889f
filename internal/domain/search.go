package domain

import (
	"fmt"
	"unicode/utf8"
)

// SearchResult is one ranked hit from a semantic search. The rendered list
// is ephemeral and replaced wholesale per query.
type SearchResult struct {
	Entity     string  `json:"entity"`
	EntityType string  `json:"type"`
	File       string  `json:"file"`
	Lines      string  `json:"lines"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
	ChunkType  string  `json:"chunk_type"`
}

// FormatSimilarity renders a [0,1] similarity as a percentage with one
// decimal place.
func FormatSimilarity(similarity float64) string {
	return fmt.Sprintf("%.1f%%", similarity*100)
}

// TruncateContent shortens content for display. The cut backs up to the
// nearest rune boundary so a multi-byte character is never split.
// Truncation is purely a display concern; callers must never write the
// result back into a SearchResult.
func TruncateContent(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "…"
}
