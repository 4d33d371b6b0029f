package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the root router to another page. An optional Payload
// message is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}
