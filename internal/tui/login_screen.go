package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
)

// LoginModel is the entry gate shown before any other screen. It holds no
// credentials; unlocking just sets the session flag that the rest of the
// UI navigation checks.
type LoginModel struct {
	app      *app.App
	settings domain.PressSettings
	loaded   bool
}

type loginSettingsMsg struct {
	settings domain.PressSettings
}

// NewLoginModel creates the login screen
func NewLoginModel(a *app.App) tea.Model {
	return &LoginModel{
		app:      a,
		settings: domain.DefaultPressSettings(),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return m.loadSettings()
}

func (m *LoginModel) loadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.app.SettingsRepo.Get(context.Background())
		if err != nil {
			return loginSettingsMsg{settings: domain.DefaultPressSettings()}
		}
		return loginSettingsMsg{settings: settings}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginSettingsMsg:
		m.settings = msg.settings
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			m.app.Session.SetLoginFlag()
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDashboard} }
		}
	}

	return m, nil
}

func (m *LoginModel) View() string {
	var s string
	s += "\n"
	s += "  " + brandStyle.Render(m.settings.Name) + "\n"
	if m.settings.Tagline != "" {
		s += "  " + subtitleStyle.Render(m.settings.Tagline) + "\n"
	}
	s += "\n"
	if m.settings.Address != "" {
		s += "  " + m.settings.Address + "\n"
	}
	if m.settings.Contact != "" {
		s += "  " + m.settings.Contact + "\n"
	}
	s += "\n" + helpStyle.Render("  enter: open the shop")
	return s
}
