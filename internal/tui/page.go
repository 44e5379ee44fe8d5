package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (home, work).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{} // anchor to scroll to, as a string
}

// Enterable pages receive the navigation params after Init.
type Enterable interface {
	Enter(params interface{}) tea.Cmd
}

// broadcastMsg marks messages delivered to every page, not just the active
// one. Timers keep running while their page is hidden.
type broadcastMsg interface {
	broadcast()
}
