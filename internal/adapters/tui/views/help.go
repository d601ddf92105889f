package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("indexdeck help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move through monitored directories"))
	b.WriteString(helpLine("a", "Browse the server filesystem and add a directory"))
	b.WriteString(helpLine("d", "Remove the selected directory and clean up its data"))
	b.WriteString(helpLine("y", "Copy the selected path"))
	b.WriteString(helpLine("/", "Semantic search"))
	b.WriteString(helpLine("R", "Trigger a full reindex"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Directory browser"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter / l", "Descend into directory"))
	b.WriteString(helpLine("h / backspace", "Go to parent"))
	b.WriteString(helpLine("1-9", "Jump to a breadcrumb segment"))
	b.WriteString(helpLine("a / space", "Monitor the current directory"))
	b.WriteString(helpLine("esc", "Close without selecting"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Run the query"))
	b.WriteString(helpLine("ctrl+y", "Copy the selected result's file path"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
