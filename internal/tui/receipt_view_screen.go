package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/render"
)

// ReceiptViewModel shows a single receipt as its printable template
type ReceiptViewModel struct {
	app *app.App
	id  string

	receipt  *domain.Receipt
	settings domain.PressSettings
	notFound bool

	loading   bool
	err       error
	statusMsg string
}

type receiptViewDataMsg struct {
	receipt  *domain.Receipt
	settings domain.PressSettings
	notFound bool
	err      error
}

type receiptExportedMsg struct {
	path string
	err  error
}

// NewReceiptViewModel creates a view for the given receipt ID
func NewReceiptViewModel(a *app.App, id string) tea.Model {
	return &ReceiptViewModel{
		app:     a,
		id:      id,
		loading: true,
	}
}

func (m *ReceiptViewModel) Init() tea.Cmd {
	return m.loadReceipt()
}

func (m *ReceiptViewModel) loadReceipt() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		receipt, err := m.app.ReceiptService.Get(ctx, m.id)
		if err != nil {
			if errors.Is(err, domain.ErrReceiptNotFound) {
				return receiptViewDataMsg{notFound: true}
			}
			return receiptViewDataMsg{err: err}
		}

		// Live settings cover receipts saved before snapshots existed
		settings, err := m.app.SettingsRepo.Get(ctx)
		if err != nil {
			settings = domain.DefaultPressSettings()
		}

		return receiptViewDataMsg{receipt: receipt, settings: settings}
	}
}

func (m *ReceiptViewModel) exportReceipt() tea.Cmd {
	receipt := m.receipt
	settings := m.settings
	outputDir := m.app.Config.Receipt.OutputDir
	return func() tea.Msg {
		path, err := render.Export(receipt, settings, outputDir)
		return receiptExportedMsg{path: path, err: err}
	}
}

func (m *ReceiptViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case receiptViewDataMsg:
		m.loading = false
		m.err = msg.err
		m.receipt = msg.receipt
		m.settings = msg.settings
		m.notFound = msg.notFound
		return m, nil

	case receiptExportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Saved to %s", msg.path)
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadReceipt()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenHistory} }
		case key.Matches(msg, DefaultKeyMap.Export):
			if m.receipt != nil {
				m.err = nil
				return m, m.exportReceipt()
			}
		}
	}

	return m, nil
}

func (m *ReceiptViewModel) View() string {
	if m.loading {
		return "Loading..."
	}

	if m.notFound {
		var s string
		s += titleStyle.Render("Receipt Not Found") + "\n\n"
		s += subtitleStyle.Render("  This receipt no longer exists. It may have been deleted.") + "\n"
		s += "\n" + helpStyle.Render("  esc: back to receipts")
		return s
	}

	if m.err != nil && m.receipt == nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	var s string
	s += render.Receipt(m.receipt, m.settings)

	if m.statusMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n"
	}
	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  e: export to file  esc: back to receipts")

	return s
}
