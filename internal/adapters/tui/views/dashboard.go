package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"indexdeck/internal/adapters/tui/styles"
	"indexdeck/internal/domain"
	"indexdeck/internal/ports"
)

// DashboardKeyMap defines key bindings for the dashboard view
type DashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Remove  key.Binding
	Search  key.Binding
	Reindex key.Binding
	Yank    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var DashboardKeys = DashboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add directory"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reindex: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reindex"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DashboardModel owns the status snapshot and the local projection of the
// monitored path set. It is the stateful core of the client: the poll loop
// lives here, and every mutation of the path set happens synchronously in
// Update before any network write is issued.
type DashboardModel struct {
	ViewState
	svc ports.Indexer

	pollEvery  time.Duration
	browseRoot string

	// last successful snapshot; kept on poll failure (stale-but-visible)
	status     domain.StatusSnapshot
	conn       domain.ConnState
	haveStatus bool
	pollSeq    int

	paths      domain.PathSet
	dirsLoaded bool
	cursor     int
}

type statusMsg struct {
	seq      int
	snapshot domain.StatusSnapshot
	err      error
}

type pollTickMsg time.Time

type dirsLoadedMsg struct {
	paths    domain.PathSet
	basePath string
	err      error
}

type dirsSavedMsg struct {
	err error
}

type dirRemovedMsg struct {
	path    string
	deleted int
	err     error
}

type reindexDoneMsg struct {
	err error
}

// NewDashboardModel creates the dashboard.
func NewDashboardModel(svc ports.Indexer, pollEvery time.Duration, browseRoot string) *DashboardModel {
	return &DashboardModel{
		svc:        svc,
		pollEvery:  pollEvery,
		browseRoot: browseRoot,
		conn:       domain.ConnConnecting,
	}
}

// Init starts the poll loop and the one-shot directory load. The poll loop
// is started exactly once here and runs for the life of the program.
func (m *DashboardModel) Init() tea.Cmd {
	m.pollSeq++
	return tea.Batch(m.pollCmd(m.pollSeq), m.tickCmd(), m.loadDirsCmd())
}

func (m *DashboardModel) pollCmd(seq int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		snapshot, err := svc.Status(context.Background())
		return statusMsg{seq: seq, snapshot: snapshot, err: err}
	}
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.pollEvery, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func (m *DashboardModel) loadDirsCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		paths, basePath, err := svc.Directories(context.Background())
		return dirsLoadedMsg{paths: paths, basePath: basePath, err: err}
	}
}

func (m *DashboardModel) saveDirsCmd(paths domain.PathSet) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return dirsSavedMsg{err: svc.ReplaceDirectories(context.Background(), paths)}
	}
}

func (m *DashboardModel) removeDirCmd(path string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		deleted, err := svc.RemoveDirectory(context.Background(), path)
		return dirRemovedMsg{path: path, deleted: deleted, err: err}
	}
}

func (m *DashboardModel) reindexCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return reindexDoneMsg{err: svc.Reindex(context.Background())}
	}
}

// BrowseRoot returns the root the directory browser should open at.
func (m *DashboardModel) BrowseRoot() string {
	return m.browseRoot
}

// AddPath appends a path selected in the browser. The local set is updated
// first; on a duplicate nothing is persisted and an informational toast is
// shown instead. A failed persist is surfaced but not rolled back; the next
// load reconciles.
func (m *DashboardModel) AddPath(path string) tea.Cmd {
	updated, added := m.paths.Add(path)
	if !added {
		return ShowToast(fmt.Sprintf("%s is already monitored", path), ToastInfo)
	}
	m.paths = updated
	return m.saveDirsCmd(m.paths.Clone())
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case pollTickMsg:
		// A slow poll never delays the next one; staleness is handled
		// at resolution time via the sequence guard.
		m.pollSeq++
		return m, tea.Batch(m.pollCmd(m.pollSeq), m.tickCmd())

	case statusMsg:
		if msg.seq != m.pollSeq {
			// superseded response, a newer poll is in flight
			return m, nil
		}
		if msg.err != nil {
			m.conn = domain.ConnError
			return m, nil
		}
		m.status = msg.snapshot
		m.haveStatus = true
		m.conn = msg.snapshot.ConnState()
		return m, nil

	case dirsLoadedMsg:
		if msg.err != nil {
			m.paths = nil
			m.dirsLoaded = true
			return m, ShowToast("Could not load monitored directories", ToastError)
		}
		m.paths = msg.paths
		m.dirsLoaded = true
		if msg.basePath != "" {
			m.browseRoot = msg.basePath
		}
		m.clampCursor()
		return m, nil

	case dirsSavedMsg:
		if msg.err != nil {
			return m, ShowToast("Failed to save directory configuration", ToastError)
		}
		return m, ShowToast("Directory configuration saved", ToastSuccess)

	case dirRemovedMsg:
		// Removal is client-authoritative; a failed delete is not
		// restored in the UI.
		if msg.err != nil {
			return m, ShowToast(fmt.Sprintf("Cleanup for %s failed", msg.path), ToastError)
		}
		return m, ShowToast(
			fmt.Sprintf("Directory removed and data cleaned up (%d files)", msg.deleted),
			ToastSuccess,
		)

	case reindexDoneMsg:
		if msg.err != nil {
			return m, ShowToast("Failed to trigger reindex", ToastError)
		}
		return m, ShowToast("Reindex started", ToastSuccess)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DashboardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, DashboardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, DashboardKeys.Down):
		if m.cursor < len(m.paths)-1 {
			m.cursor++
		}

	case key.Matches(msg, DashboardKeys.Add):
		root := m.browseRoot
		return m, func() tea.Msg {
			return OpenBrowserMsg{Root: root}
		}

	case key.Matches(msg, DashboardKeys.Remove):
		if m.cursor < len(m.paths) {
			path := m.paths[m.cursor]
			// local set reflects the removal before the backend
			// confirms; see dirRemovedMsg
			m.paths, _ = m.paths.Remove(path)
			m.clampCursor()
			return m, m.removeDirCmd(path)
		}

	case key.Matches(msg, DashboardKeys.Yank):
		if m.cursor < len(m.paths) {
			_ = clipboard.WriteAll(m.paths[m.cursor])
			return m, ShowToast("Path copied to clipboard", ToastInfo)
		}

	case key.Matches(msg, DashboardKeys.Search):
		return m, func() tea.Msg {
			return SwitchToSearchMsg{}
		}

	case key.Matches(msg, DashboardKeys.Reindex):
		return m, m.reindexCmd()

	case key.Matches(msg, DashboardKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *DashboardModel) clampCursor() {
	if m.cursor >= len(m.paths) {
		m.cursor = len(m.paths) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("indexdeck"))
	b.WriteString("  ")
	b.WriteString(m.renderBadge())
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("code index dashboard"))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderPaths())
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		DashboardKeys.Add,
		DashboardKeys.Remove,
		DashboardKeys.Search,
		DashboardKeys.Reindex,
		DashboardKeys.Help,
		DashboardKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *DashboardModel) renderBadge() string {
	switch m.conn {
	case domain.ConnConnected:
		return styles.BadgeConnected.Render("connected")
	case domain.ConnIndexing:
		return styles.BadgeIndexing.Render("indexing")
	case domain.ConnError:
		return styles.BadgeError.Render("offline")
	default:
		return styles.BadgeConnecting.Render("connecting")
	}
}

func (m *DashboardModel) renderStatus() string {
	if !m.haveStatus {
		return styles.MutedText.Render("Waiting for first status report...") + "\n"
	}

	var b strings.Builder
	s := m.status

	indexed := s.IndexedFiles
	if s.TotalFiles > 0 && indexed > s.TotalFiles {
		indexed = s.TotalFiles
	}
	statLine := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(styles.StatLabel.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(styles.StatValue.Render(value))
		b.WriteString("\n")
	}
	statLine("Files", fmt.Sprintf("%s / %s", humanize.Comma(int64(indexed)), humanize.Comma(int64(s.TotalFiles))))
	statLine("Entities", humanize.Comma(int64(s.EntitiesCount)))
	statLine("Chunks", humanize.Comma(int64(s.ChunksCount)))
	if s.RelationshipsCount > 0 {
		statLine("Relationships", humanize.Comma(int64(s.RelationshipsCount)))
	}
	if s.LastIndexed != "" {
		if ts, err := time.Parse(time.RFC3339, s.LastIndexed); err == nil {
			statLine("Last indexed", humanize.Time(ts))
		}
	}

	// Progress is hidden, not zeroed, unless actively indexing a
	// non-empty set.
	if s.ShowProgress() {
		pct := s.ProgressPercent()
		b.WriteString("  ")
		b.WriteString(styles.ProgressBar.Render(renderProgressBar(pct, 24)))
		b.WriteString(styles.StatValue.Render(fmt.Sprintf(" %d%%", pct)))
		b.WriteString("\n")
		if s.CurrentFile != "" {
			b.WriteString("  ")
			b.WriteString(styles.MutedText.Render(Sanitize(s.CurrentFile)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProgressBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m *DashboardModel) renderPaths() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render("Monitored directories"))
	b.WriteString("\n")

	switch {
	case !m.dirsLoaded:
		b.WriteString(styles.MutedText.Render("  loading..."))
		b.WriteString("\n")
	case len(m.paths) == 0:
		b.WriteString(styles.MutedText.Render("  none configured, press 'a' to add one"))
		b.WriteString("\n")
	default:
		for i, path := range m.paths {
			line := "  " + Sanitize(path)
			if i == m.cursor {
				line = styles.ListSelected.Render("▸ " + Sanitize(path))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}
