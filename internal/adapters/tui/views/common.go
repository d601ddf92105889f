package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height handling.
type ViewState struct {
	Width  int
	Height int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Messages for view switching, handled by the app controller.

// SwitchToSearchMsg asks the controller to show the search panel.
type SwitchToSearchMsg struct{}

// SwitchToDashboardMsg asks the controller to show the dashboard.
type SwitchToDashboardMsg struct{}

// SwitchToHelpMsg asks the controller to show the help view.
type SwitchToHelpMsg struct{}

// OpenBrowserMsg asks the controller to open the directory browser modal
// rooted at Root.
type OpenBrowserMsg struct {
	Root string
}

// CloseBrowserMsg is sent when the browser modal closes without selecting.
type CloseBrowserMsg struct{}

// BrowserSelectMsg commits the browser's selected path into the monitored
// set.
type BrowserSelectMsg struct {
	Path string
}
