package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenNewReceipt
	ScreenHistory
	ScreenReceiptView
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenNewReceipt:
		return "New Receipt"
	case ScreenHistory:
		return "Receipts"
	case ScreenReceiptView:
		return "Receipt"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	login       tea.Model
	dashboard   tea.Model
	newReceipt  tea.Model
	history     tea.Model
	receiptView tea.Model
	settings    tea.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	m := Model{
		app:           a,
		currentScreen: ScreenLogin,
		login:         NewLoginModel(a),
	}
	if a.Session.IsLoggedIn() {
		m.currentScreen = ScreenDashboard
		m.dashboard = NewDashboardModel(a)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	switch m.currentScreen {
	case ScreenDashboard:
		return m.dashboard.Init()
	default:
		return m.login.Init()
	}
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
// The new receipt form is always rebuilt so each visit starts a fresh draft.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenDashboard:
		if m.dashboard == nil {
			m.dashboard = NewDashboardModel(m.app)
			return m.dashboard.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenNewReceipt:
		m.newReceipt = NewReceiptFormModel(m.app)
		return m.newReceipt.Init()
	case ScreenHistory:
		if m.history == nil {
			m.history = NewHistoryModel(m.app)
			return m.history.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenSettings:
		if m.settings == nil {
			m.settings = NewSettingsModel(m.app)
			return m.settings.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (D, N, R) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreen returns the model for the current screen
func (m *Model) activeScreen() tea.Model {
	switch m.currentScreen {
	case ScreenLogin:
		return m.login
	case ScreenDashboard:
		return m.dashboard
	case ScreenNewReceipt:
		return m.newReceipt
	case ScreenHistory:
		return m.history
	case ScreenReceiptView:
		return m.receiptView
	case ScreenSettings:
		return m.settings
	}
	return nil
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.currentScreen == ScreenLogin {
			// Only quitting is allowed until the shop is unlocked
			if key.Matches(msg, DefaultKeyMap.Quit) {
				return m, tea.Quit
			}
			break
		}

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Logout):
				m.app.Session.ClearLoginFlag()
				m.login = NewLoginModel(m.app)
				m.currentScreen = ScreenLogin
				return m, m.login.Init()

			case key.Matches(msg, DefaultKeyMap.Dashboard):
				m.currentScreen = ScreenDashboard
				cmd := m.initScreen(ScreenDashboard)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.NewReceipt):
				m.currentScreen = ScreenNewReceipt
				cmd := m.initScreen(ScreenNewReceipt)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.History):
				m.currentScreen = ScreenHistory
				cmd := m.initScreen(ScreenHistory)
				return m, cmd

			case key.Matches(msg, DefaultKeyMap.Settings):
				m.currentScreen = ScreenSettings
				cmd := m.initScreen(ScreenSettings)
				return m, cmd
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		cmd := m.initScreen(msg.Screen)
		return m, cmd

	case ViewReceiptMsg:
		m.receiptView = NewReceiptViewModel(m.app, msg.ID)
		m.currentScreen = ScreenReceiptView
		return m, m.receiptView.Init()

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenLogin:
		if m.login != nil {
			m.login, cmd = m.login.Update(msg)
		}
	case ScreenDashboard:
		if m.dashboard != nil {
			m.dashboard, cmd = m.dashboard.Update(msg)
		}
	case ScreenNewReceipt:
		if m.newReceipt != nil {
			m.newReceipt, cmd = m.newReceipt.Update(msg)
		}
	case ScreenHistory:
		if m.history != nil {
			m.history, cmd = m.history.Update(msg)
		}
	case ScreenReceiptView:
		if m.receiptView != nil {
			m.receiptView, cmd = m.receiptView.Update(msg)
		}
	case ScreenSettings:
		if m.settings != nil {
			m.settings, cmd = m.settings.Update(msg)
		}
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Header
	header := headerStyle.Render(fmt.Sprintf("pressbook - %s", m.currentScreen.String()))

	// Footer with navigation keys
	footer := footerStyle.Render("[D]ashboard  [N]ew Receipt  [R]eceipts  [,] Settings  [Ctrl+L] Logout  [Q]uit")
	if m.currentScreen == ScreenLogin {
		footer = footerStyle.Render("[Q]uit")
	}

	// Current screen content
	content := "Loading..."
	if screen := m.activeScreen(); screen != nil {
		content = screen.View()
	}

	// Error display
	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
