package views

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"indexdeck/internal/adapters/tui/styles"
)

// ToastKind classifies a transient notification.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Toast is one transient user-facing message.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
}

// ShowToastMsg asks the controller to enqueue a toast. Any view can emit
// it.
type ShowToastMsg struct {
	Message string
	Kind    ToastKind
}

// ShowToast wraps a ShowToastMsg in a command.
func ShowToast(message string, kind ToastKind) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Message: message, Kind: kind}
	}
}

type toastExpiredMsg struct {
	id int
}

// DefaultToastDuration is how long each toast stays visible.
const DefaultToastDuration = 4 * time.Second

// ToastModel queues transient messages. Each toast schedules its own
// expiry timer keyed by ID, so concurrent toasts expire independently
// rather than FIFO-gated. Identical messages are not deduplicated.
type ToastModel struct {
	toasts []Toast
	nextID int
	ttl    time.Duration
}

// NewToastModel creates a toast queue with the given display duration.
func NewToastModel(ttl time.Duration) *ToastModel {
	if ttl <= 0 {
		ttl = DefaultToastDuration
	}
	return &ToastModel{ttl: ttl}
}

// Push appends a toast and returns the command that will expire it.
func (m *ToastModel) Push(message string, kind ToastKind) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.toasts = append(m.toasts, Toast{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	return tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Update removes expired toasts.
func (m *ToastModel) Update(msg tea.Msg) tea.Cmd {
	if expired, ok := msg.(toastExpiredMsg); ok {
		for i, t := range m.toasts {
			if t.ID == expired.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Active returns the currently visible toasts, oldest first.
func (m *ToastModel) Active() []Toast {
	return m.toasts
}

// View renders the visible toasts as stacked lines.
func (m *ToastModel) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range m.toasts {
		var style = styles.ToastInfo
		switch t.Kind {
		case ToastSuccess:
			style = styles.ToastSuccess
		case ToastError:
			style = styles.ToastError
		}
		b.WriteString(style.Render("▪ " + Sanitize(t.Message)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
