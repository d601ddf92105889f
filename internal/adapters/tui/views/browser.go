package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/adapters/tui/styles"
	"indexdeck/internal/domain"
	"indexdeck/internal/ports"
)

// BrowserKeyMap defines key bindings for the directory browser
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Parent key.Binding
	Select key.Binding
	Close  key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Parent: key.NewBinding(
		key.WithKeys("h", "left", "backspace"),
		key.WithHelp("h", "parent"),
	),
	Select: key.NewBinding(
		key.WithKeys("a", " "),
		key.WithHelp("a", "monitor this directory"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
}

// BrowserModel is a modal lazy navigator over the remote filesystem.
// State machine: Closed → Open(root) → Open(path') → ... → Closed.
// selectedPath always tracks the last successfully navigated path; a
// failed navigation leaves it on the previous valid directory so select
// remains usable.
type BrowserModel struct {
	ViewState
	svc ports.Indexer

	open         bool
	currentPath  string // optimistic: set when navigation is issued
	selectedPath string // last good: set when navigation succeeds
	items        []domain.BrowseNode
	cursor       int
	loading      bool
	inlineErr    string
	navSeq       int
	spin         spinner.Model
}

type browseResultMsg struct {
	seq     int
	path    string
	listing domain.BrowseListing
	err     error
}

// NewBrowserModel creates the browser.
func NewBrowserModel(svc ports.Indexer) *BrowserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &BrowserModel{svc: svc, spin: sp}
}

// Init implements tea.Model; the browser only starts work when opened.
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// IsOpen reports whether the modal is showing.
func (m *BrowserModel) IsOpen() bool {
	return m.open
}

// SelectedPath returns the last successfully navigated path, or "" when
// the modal is closed.
func (m *BrowserModel) SelectedPath() string {
	return m.selectedPath
}

// Open transitions to the Open state rooted at root. The browser keeps no
// memory of previous sessions; every open starts at the root.
func (m *BrowserModel) Open(root string) tea.Cmd {
	m.open = true
	m.items = nil
	m.cursor = 0
	m.inlineErr = ""
	m.selectedPath = ""
	return m.navigate(root)
}

// Close clears selection and leaves currentPath to be reset by the next
// Open.
func (m *BrowserModel) Close() {
	m.open = false
	m.selectedPath = ""
	m.items = nil
	m.inlineErr = ""
}

// navigate is the single transition used by list entries, parent moves,
// and breadcrumb jumps, so every entry point shares one error-handling
// path. The breadcrumb optimistically reflects the target while the fetch
// is pending. The spinner tick is batched here because its chain dies
// whenever loading completes, so every navigation must restart it.
func (m *BrowserModel) navigate(path string) tea.Cmd {
	m.navSeq++
	seq := m.navSeq
	m.currentPath = path
	m.loading = true
	svc := m.svc
	fetch := func() tea.Msg {
		listing, err := svc.Browse(context.Background(), path)
		return browseResultMsg{seq: seq, path: path, listing: listing, err: err}
	}
	return tea.Batch(fetch, m.spin.Tick)
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case browseResultMsg:
		if msg.seq != m.navSeq {
			// superseded by a later navigation; rendering it would
			// show a directory that is no longer the target
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// selectedPath intentionally keeps its previous value
			m.inlineErr = msg.err.Error()
			m.items = nil
			return m, nil
		}
		m.inlineErr = ""
		m.items = domain.DirectoriesOnly(msg.listing.Items)
		m.cursor = 0
		m.selectedPath = msg.path
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// digits jump to a breadcrumb prefix; same transition as everything
	// else
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		crumbs := domain.Breadcrumbs(m.currentPath)
		idx := int(s[0] - '1')
		if idx < len(crumbs)-1 {
			return m, m.navigate(crumbs[idx].Path)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, BrowserKeys.Close):
		m.Close()
		return m, func() tea.Msg {
			return CloseBrowserMsg{}
		}

	case key.Matches(msg, BrowserKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, BrowserKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, BrowserKeys.Enter):
		if m.cursor < len(m.items) {
			return m, m.navigate(m.items[m.cursor].Path)
		}

	case key.Matches(msg, BrowserKeys.Parent):
		if parent := domain.ParentPath(m.currentPath); parent != m.currentPath {
			return m, m.navigate(parent)
		}

	case key.Matches(msg, BrowserKeys.Select):
		if m.selectedPath == "" {
			return m, nil
		}
		path := m.selectedPath
		m.Close()
		return m, func() tea.Msg {
			return BrowserSelectMsg{Path: path}
		}
	}

	return m, nil
}

// View renders the browser modal
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add directory"))
	b.WriteString("\n")
	b.WriteString(m.renderBreadcrumbs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View())
		b.WriteString(styles.MutedText.Render(" loading " + Sanitize(m.currentPath) + "..."))
		b.WriteString("\n")
	case m.inlineErr != "":
		b.WriteString(RenderMessage(Sanitize(m.inlineErr), true))
		b.WriteString("\n")
		if m.selectedPath != "" {
			b.WriteString(styles.MutedText.Render("select still applies to " + Sanitize(m.selectedPath)))
			b.WriteString("\n")
		}
	case len(m.items) == 0:
		b.WriteString(styles.MutedText.Render("no subdirectories"))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			b.WriteString(m.renderItem(item, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Enter,
		BrowserKeys.Parent,
		BrowserKeys.Select,
		BrowserKeys.Close,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderBreadcrumbs() string {
	crumbs := domain.Breadcrumbs(m.currentPath)
	parts := make([]string, 0, len(crumbs))
	for i, crumb := range crumbs {
		label := Sanitize(crumb.Label)
		if i == len(crumbs)-1 {
			parts = append(parts, styles.CrumbCurrent.Render(label))
			continue
		}
		// numbered so the jump keys are discoverable
		parts = append(parts, styles.Crumb.Render(fmt.Sprintf("%d:%s", i+1, label)))
	}
	return strings.Join(parts, styles.CrumbSeparator.String())
}

func (m *BrowserModel) renderItem(item domain.BrowseNode, selected bool) string {
	name := Sanitize(item.Name)
	annotation := ""
	if item.CppFiles > 0 {
		annotation = fmt.Sprintf(" (%d C++ files)", item.CppFiles)
	}
	if selected {
		return styles.ListSelected.Render("▸ "+name) + styles.ListAnnotation.Render(annotation)
	}
	return styles.ListItem.Render("  "+name) + styles.ListAnnotation.Render(annotation)
}
