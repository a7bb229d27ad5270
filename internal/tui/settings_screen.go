package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldName = iota
	settingsFieldTagline
	settingsFieldAddress
	settingsFieldContact
	settingsFieldCount
)

type settingsDataMsg struct {
	settings domain.PressSettings
	err      error
}

type settingsSavedMsg struct {
	settings domain.PressSettings
	err      error
}

// SettingsModel manages the press profile screen
type SettingsModel struct {
	app      *app.App
	mode     settingsMode
	settings domain.PressSettings

	fields     []textinput.Model
	fieldFocus int

	loading   bool
	err       error
	statusMsg string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:     a,
		mode:    settingsModeView,
		loading: true,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return m.loadSettings()
}

func (m *SettingsModel) loadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.app.SettingsRepo.Get(context.Background())
		if err != nil {
			return settingsDataMsg{err: err}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	s := m.settings

	m.fields[settingsFieldName] = textinput.New()
	m.fields[settingsFieldName].Placeholder = "Press name"
	m.fields[settingsFieldName].CharLimit = 100
	m.fields[settingsFieldName].Width = 50
	m.fields[settingsFieldName].SetValue(s.Name)

	m.fields[settingsFieldTagline] = textinput.New()
	m.fields[settingsFieldTagline].Placeholder = "Tagline"
	m.fields[settingsFieldTagline].CharLimit = 200
	m.fields[settingsFieldTagline].Width = 60
	m.fields[settingsFieldTagline].SetValue(s.Tagline)

	m.fields[settingsFieldAddress] = textinput.New()
	m.fields[settingsFieldAddress].Placeholder = "Address"
	m.fields[settingsFieldAddress].CharLimit = 200
	m.fields[settingsFieldAddress].Width = 60
	m.fields[settingsFieldAddress].SetValue(s.Address)

	m.fields[settingsFieldContact] = textinput.New()
	m.fields[settingsFieldContact].Placeholder = "+92 3xx xxxxxxx"
	m.fields[settingsFieldContact].CharLimit = 100
	m.fields[settingsFieldContact].Width = 40
	m.fields[settingsFieldContact].SetValue(s.Contact)

	m.fieldFocus = settingsFieldName
	m.fields[settingsFieldName].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	settings := domain.PressSettings{
		Name:    strings.TrimSpace(m.fields[settingsFieldName].Value()),
		Tagline: strings.TrimSpace(m.fields[settingsFieldTagline].Value()),
		Address: strings.TrimSpace(m.fields[settingsFieldAddress].Value()),
		Contact: strings.TrimSpace(m.fields[settingsFieldContact].Value()),
	}

	return func() tea.Msg {
		if settings.Name == "" {
			return settingsSavedMsg{err: fmt.Errorf("press name is required")}
		}
		if err := m.app.SettingsRepo.Save(context.Background(), settings); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save settings: %w", err)}
		}
		return settingsSavedMsg{settings: settings}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsDataMsg:
		m.loading = false
		m.err = msg.err
		m.settings = msg.settings
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadSettings()
	}

	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		m.err = nil
		if msg.String() == "enter" {
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.settings = msg.settings
		m.mode = settingsModeView
		m.statusMsg = "Settings saved. New receipts will carry the updated details."
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.loading {
		return "Loading..."
	}
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Press Profile") + "\n\n"

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Name:"), valueStyle.Render(m.settings.Name))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Tagline:"), valueStyle.Render(m.settings.Tagline))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Address:"), valueStyle.Render(m.settings.Address))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Contact:"), valueStyle.Render(m.settings.Contact))

	s += "\n" + subtitleStyle.Render("  Saved receipts keep the details they were printed with.") + "\n"
	s += "\n" + helpStyle.Render("  enter: edit profile")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Press Profile") + "\n\n"

	labels := []string{"Name:", "Tagline:", "Address:", "Contact:"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
