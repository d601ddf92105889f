package domain

import "testing"

func TestFormatSimilarity(t *testing.T) {
	tests := []struct {
		similarity float64
		want       string
	}{
		{0.876543, "87.7%"},
		{1, "100.0%"},
		{0, "0.0%"},
		{0.5, "50.0%"},
	}

	for _, tt := range tests {
		if got := FormatSimilarity(tt.similarity); got != tt.want {
			t.Errorf("FormatSimilarity(%v) = %q, want %q", tt.similarity, got, tt.want)
		}
	}
}

func TestTruncateContent(t *testing.T) {
	if got := TruncateContent("short", 10); got != "short" {
		t.Errorf("content under the limit should pass through, got %q", got)
	}

	got := TruncateContent("0123456789abcdef", 10)
	if got != "0123456789…" {
		t.Errorf("expected truncation with ellipsis, got %q", got)
	}

	if got := TruncateContent("anything", 0); got != "anything" {
		t.Errorf("non-positive limit should disable truncation, got %q", got)
	}
}

func TestTruncateContentRespectsRuneBoundaries(t *testing.T) {
	// a naive byte cut at 2 would split the two-byte é
	got := TruncateContent("nést", 2)
	if got != "n…" {
		t.Errorf("expected cut before the split rune, got %q", got)
	}

	got = TruncateContent("日本語テキスト", 7)
	if got != "日本…" {
		t.Errorf("expected whole runes only, got %q", got)
	}
}

func TestTruncateContentDoesNotMutateResult(t *testing.T) {
	r := SearchResult{Content: "0123456789abcdef"}
	_ = TruncateContent(r.Content, 4)
	if r.Content != "0123456789abcdef" {
		t.Error("truncation is a display concern and must not mutate the result")
	}
}
