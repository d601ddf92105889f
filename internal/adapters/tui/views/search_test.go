package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/domain"
)

func pressEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func typeQuery(m *SearchModel, q string) {
	m.input.SetValue(q)
}

func TestWhitespaceQueryNeverHitsTheNetwork(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		svc := &fakeIndexer{}
		m := NewSearchModel(svc, 10)
		typeQuery(m, q)

		_, cmd := m.Update(pressEnter())
		if cmd == nil {
			t.Fatalf("query %q: expected a toast command", q)
		}
		toast, ok := cmd().(ShowToastMsg)
		if !ok {
			t.Fatalf("query %q: expected ShowToastMsg, got %T", q, cmd())
		}
		if toast.Kind != ToastInfo {
			t.Errorf("query %q: expected an informational toast", q)
		}
		if svc.searchCalls != 0 {
			t.Errorf("query %q: search issued %d network calls", q, svc.searchCalls)
		}
		if m.searching {
			t.Errorf("query %q: must not enter the searching state", q)
		}
	}
}

func TestSearchReplacesResultsWholesale(t *testing.T) {
	svc := &fakeIndexer{
		results: []domain.SearchResult{
			{Entity: "Foo::bar", File: "/host/src/foo.cpp", Lines: "10-20", Similarity: 0.87},
			{Entity: "Foo::baz", File: "/host/src/foo.cpp", Lines: "30-40", Similarity: 0.71},
		},
	}
	m := NewSearchModel(svc, 10)
	typeQuery(m, "bar")

	_, cmd := m.Update(pressEnter())
	if !m.searching {
		t.Fatal("expected searching state after submit")
	}
	applyBatch(t, m, cmd)
	if len(m.results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(m.results))
	}

	// a second query with one hit must not accumulate
	svc.results = svc.results[:1]
	typeQuery(m, "baz")
	_, cmd = m.Update(pressEnter())
	applyBatch(t, m, cmd)
	if len(m.results) != 1 {
		t.Fatalf("results must be replaced per query, got %d", len(m.results))
	}
	if m.cursor != 0 {
		t.Error("cursor resets with each result set")
	}
}

func TestSearchFailureShowsDegradedHint(t *testing.T) {
	svc := &fakeIndexer{searchErr: errFake}
	m := NewSearchModel(svc, 10)
	typeQuery(m, "frob")

	_, cmd := m.Update(pressEnter())
	applyBatch(t, m, cmd)

	if !m.failed {
		t.Fatal("expected failed state")
	}
	view := m.View()
	if !strings.Contains(view, "Search failed") {
		t.Error("expected failure hint in the view")
	}
	if strings.Contains(view, "No matches") {
		t.Error("failure must not read as an empty result set")
	}
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	svc := &fakeIndexer{
		results: []domain.SearchResult{{Entity: "old", File: "a.cpp"}},
	}
	m := NewSearchModel(svc, 10)
	typeQuery(m, "first")
	cmdA := m.searchCmd("first")
	msgA := cmdA()

	svc.results = []domain.SearchResult{{Entity: "new", File: "b.cpp"}}
	cmdB := m.searchCmd("second")
	msgB := cmdB()

	m.Update(msgB)
	m.Update(msgA)

	if len(m.results) != 1 || m.results[0].Entity != "new" {
		t.Fatalf("stale response leaked in: %+v", m.results)
	}
}

func TestResetClearsPanel(t *testing.T) {
	svc := &fakeIndexer{
		results: []domain.SearchResult{{Entity: "x", File: "x.cpp"}},
	}
	m := NewSearchModel(svc, 10)
	typeQuery(m, "x")
	_, cmd := m.Update(pressEnter())
	applyBatch(t, m, cmd)

	m.Reset()
	if m.input.Value() != "" || m.results != nil || m.searched || m.failed {
		t.Fatal("reset must return the panel to its initial state")
	}
}

// applyBatch executes a command and feeds every produced message back into
// the model, unwrapping tea.BatchMsg. Spinner ticks are dropped so the test
// does not loop forever.
func applyBatch(t *testing.T, m *SearchModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if inner, ok := c().(searchResultsMsg); ok {
				m.Update(inner)
			}
		}
	case searchResultsMsg:
		m.Update(msg)
	}
}
