package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/adapters/tui/styles"
	"indexdeck/internal/domain"
	"indexdeck/internal/ports"
)

// snippetLimit caps how much of a code chunk is shown per result.
// Truncation happens at render time only.
const snippetLimit = 200

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Yank   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy file path"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel submits semantic queries and renders ranked snippets. The
// result list is ephemeral and replaced wholesale per query.
type SearchModel struct {
	ViewState
	svc        ports.Indexer
	maxResults int

	input     textinput.Model
	results   []domain.SearchResult
	cursor    int
	searching bool
	searched  bool
	failed    bool
	searchSeq int
	spin      spinner.Model
}

type searchResultsMsg struct {
	seq     int
	results []domain.SearchResult
	err     error
}

// NewSearchModel creates a new search view model
func NewSearchModel(svc ports.Indexer, maxResults int) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search the codebase..."
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &SearchModel{
		svc:        svc,
		maxResults: maxResults,
		input:      input,
		spin:       sp,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results for a fresh panel.
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.searched = false
	m.failed = false
	m.input.Focus()
}

func (m *SearchModel) searchCmd(query string) tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	svc := m.svc
	maxResults := m.maxResults
	return func() tea.Msg {
		results, err := svc.Search(context.Background(), query, maxResults)
		return searchResultsMsg{seq: seq, results: results, err: err}
	}
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchResultsMsg:
		if msg.seq != m.searchSeq {
			// a double-submitted search was superseded
			return m, nil
		}
		m.searching = false
		m.searched = true
		m.cursor = 0
		if msg.err != nil {
			m.failed = true
			m.results = nil
			return m, nil
		}
		m.failed = false
		m.results = msg.results
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Yank):
			if m.cursor < len(m.results) {
				r := m.results[m.cursor]
				_ = clipboard.WriteAll(r.File)
				return m, ShowToast("File path copied to clipboard", ToastInfo)
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Submit):
			// rejected before any network call
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, ShowToast("Enter a search query first", ToastInfo)
			}
			m.searching = true
			m.failed = false
			return m, tea.Batch(m.searchCmd(m.input.Value()), m.spin.Tick)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Semantic search"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(m.spin.View())
		b.WriteString(styles.MutedText.Render(" searching..."))
		b.WriteString("\n")
	case m.failed:
		// distinguishes "search unavailable" from "no matches"
		b.WriteString(styles.ErrorMsg.Render("Search failed. The index may still be building."))
		b.WriteString("\n")
	case m.searched && len(m.results) == 0:
		b.WriteString(styles.MutedText.Render("No matches"))
		b.WriteString("\n")
	default:
		for i, r := range m.results {
			b.WriteString(m.renderResult(r, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		SearchKeys.Submit,
		SearchKeys.Yank,
		SearchKeys.Cancel,
	))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(r domain.SearchResult, selected bool) string {
	entity := r.Entity
	if entity == "" {
		entity = "(file chunk)"
	}
	header := fmt.Sprintf("%s  %s",
		styles.ResultEntity.Render(Sanitize(entity)),
		styles.ResultScore.Render(domain.FormatSimilarity(r.Similarity)),
	)
	location := styles.ResultFile.Render(fmt.Sprintf("  %s:%s", Sanitize(r.File), Sanitize(r.Lines)))
	snippet := styles.ResultSnippet.Render(indent(SanitizeBlock(domain.TruncateContent(r.Content, snippetLimit)), "  │ "))

	line := header + "\n" + location + "\n" + snippet + "\n"
	if selected {
		return styles.ListSelected.Render("▸") + line
	}
	return " " + line
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
