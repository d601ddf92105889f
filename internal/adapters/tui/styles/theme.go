package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Info      = lipgloss.Color("#60A5FA") // Blue
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Connection badge per state
	BadgeConnected = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(White).
			Padding(0, 1)

	BadgeIndexing = lipgloss.NewStyle().
			Background(Warning).
			Foreground(White).
			Padding(0, 1)

	BadgeError = lipgloss.NewStyle().
			Background(Error).
			Foreground(White).
			Padding(0, 1)

	BadgeConnecting = lipgloss.NewStyle().
			Background(Muted).
			Foreground(White).
			Padding(0, 1)

	// Stat blocks on the dashboard
	StatLabel = lipgloss.NewStyle().
			Foreground(Muted)

	StatValue = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	ProgressBar = lipgloss.NewStyle().
			Foreground(Secondary)

	// List entries
	ListItem = lipgloss.NewStyle()

	ListSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	ListAnnotation = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Breadcrumbs
	Crumb = lipgloss.NewStyle().
		Foreground(Info)

	CrumbCurrent = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	CrumbSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" › ")

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Toast styles per kind
	ToastInfo = lipgloss.NewStyle().
			Foreground(Info)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(Secondary)

	ToastError = lipgloss.NewStyle().
			Foreground(Error)

	// Search results
	ResultEntity = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	ResultScore = lipgloss.NewStyle().
			Foreground(Warning)

	ResultFile = lipgloss.NewStyle().
			Foreground(Muted)

	ResultSnippet = lipgloss.NewStyle().
			Foreground(White)
)
