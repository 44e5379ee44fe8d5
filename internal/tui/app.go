package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model that routes between pages.
type App struct {
	pages      map[string]Page
	order      []string
	activePage string
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	order := make([]string, 0, len(pages))
	for _, p := range pages {
		pageMap[p.ID()] = p
		order = append(order, p.ID())
	}
	a := &App{pages: pageMap, order: order}
	if len(order) > 0 {
		a.activePage = order[0]
	}
	return a
}

// SetActive selects the page shown first. Unknown IDs are ignored.
func (a *App) SetActive(id string) {
	if _, ok := a.pages[id]; ok {
		a.activePage = id
	}
}

// Active returns the ID of the page on screen.
func (a *App) Active() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	// Pass WindowSizeMsg and timer messages to all pages so they can track
	// dimensions and keep animating in the background.
	_, isSize := msg.(tea.WindowSizeMsg)
	if _, isBroadcast := msg.(broadcastMsg); isSize || isBroadcast {
		var cmds []tea.Cmd
		var activeNav *PageNav
		for _, id := range a.order {
			cmd, nav := a.pages[id].Update(msg)
			cmds = append(cmds, cmd)
			if id == a.activePage {
				activeNav = nav
			}
		}
		return a, tea.Batch(append(cmds, a.navigate(activeNav))...)
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	return a, tea.Batch(cmd, a.navigate(nav))
}

func (a *App) navigate(nav *PageNav) tea.Cmd {
	if nav == nil {
		return nil
	}
	p, exists := a.pages[nav.PageID]
	if !exists {
		log.Printf("tui: navigation to unknown page %q", nav.PageID)
		return nil
	}
	a.activePage = nav.PageID
	cmds := []tea.Cmd{p.Init()}
	if e, ok := p.(Enterable); ok {
		cmds = append(cmds, e.Enter(nav.Params))
	}
	return tea.Batch(cmds...)
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
