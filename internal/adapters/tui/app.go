package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"indexdeck/internal/adapters/tui/views"
	"indexdeck/internal/config"
	"indexdeck/internal/ports"
)

// ViewID represents the current view
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewBrowser
	ViewSearch
	ViewHelp
)

// App is the main TUI application model. It owns the single mutable state
// object: each view owns one slice of it, and all mutation happens
// synchronously inside Update. Network results arrive as messages and are
// routed back to the view that issued them.
type App struct {
	svc ports.Indexer
	cfg config.Config
	log *logrus.Logger

	state     ViewID
	dashboard *views.DashboardModel
	browser   *views.BrowserModel
	search    *views.SearchModel
	help      *views.HelpModel
	toasts    *views.ToastModel

	width  int
	height int
}

// NewApp wires the views to the service port.
func NewApp(svc ports.Indexer, cfg config.Config, log *logrus.Logger) *App {
	return &App{
		svc:       svc,
		cfg:       cfg,
		log:       log,
		state:     ViewDashboard,
		dashboard: views.NewDashboardModel(svc, cfg.PollInterval, cfg.BrowseRoot),
		browser:   views.NewBrowserModel(svc),
		search:    views.NewSearchModel(svc, cfg.MaxResults),
		help:      views.NewHelpModel(),
		toasts:    views.NewToastModel(views.DefaultToastDuration),
	}
}

// Init starts the status poll loop and the one-shot directory load. The
// poll loop is started exactly once and runs until the program exits.
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.ShowToastMsg:
		return a, a.toasts.Push(msg.Message, msg.Kind)

	// View switching
	case views.OpenBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Open(msg.Root)

	case views.CloseBrowserMsg:
		a.state = ViewDashboard
		return a, nil

	case views.BrowserSelectMsg:
		a.state = ViewDashboard
		return a, a.dashboard.AddPath(msg.Path)

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToDashboardMsg:
		a.state = ViewDashboard
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// other keys go to the active view only
		var cmd tea.Cmd
		switch a.state {
		case ViewBrowser:
			_, cmd = a.browser.Update(msg)
		case ViewSearch:
			_, cmd = a.search.Update(msg)
		case ViewHelp:
			_, cmd = a.help.Update(msg)
		default:
			_, cmd = a.dashboard.Update(msg)
		}
		return a, cmd
	}

	// Everything else is a completion or timer message. Broadcast it:
	// each model only reacts to its own message types, and the poll loop
	// must keep running no matter which view is active.
	var cmds []tea.Cmd
	if _, cmd := a.dashboard.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := a.browser.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := a.search.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := a.toasts.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// View renders the current view with the toast overlay below it.
func (a *App) View() string {
	var body string
	switch a.state {
	case ViewBrowser:
		body = a.browser.View()
	case ViewSearch:
		body = a.search.View()
	case ViewHelp:
		body = a.help.View()
	default:
		body = a.dashboard.View()
	}

	if overlay := a.toasts.View(); overlay != "" {
		return body + "\n" + overlay
	}
	return body
}
