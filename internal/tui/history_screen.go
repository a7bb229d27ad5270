package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
)

type historyMode int

const (
	historyModeList historyMode = iota
	historyModeSearch
	historyModeConfirmDelete
)

// HistoryModel lists saved receipts newest first, with search and delete
type HistoryModel struct {
	app      *app.App
	mode     historyMode
	receipts []*domain.Receipt
	cursor   int

	searchInput textinput.Model

	loading   bool
	err       error
	statusMsg string
}

type historyDataMsg struct {
	receipts []*domain.Receipt
	err      error
}

type receiptDeletedMsg struct {
	err error
}

// NewHistoryModel creates a new history screen model
func NewHistoryModel(a *app.App) tea.Model {
	search := textinput.New()
	search.Placeholder = "customer name or receipt number"
	search.CharLimit = 100
	search.Width = 40

	return &HistoryModel{
		app:         a,
		mode:        historyModeList,
		searchInput: search,
		loading:     true,
	}
}

// IsCapturingInput returns true when the search box or delete prompt is active
func (m *HistoryModel) IsCapturingInput() bool {
	return m.mode == historyModeSearch || m.mode == historyModeConfirmDelete
}

func (m *HistoryModel) Init() tea.Cmd {
	return m.loadReceipts()
}

func (m *HistoryModel) loadReceipts() tea.Cmd {
	query := m.searchInput.Value()
	return func() tea.Msg {
		receipts, err := m.app.ReceiptService.Search(context.Background(), query)
		if err != nil {
			return historyDataMsg{err: err}
		}
		return historyDataMsg{receipts: receipts}
	}
}

func (m *HistoryModel) deleteSelected() tea.Cmd {
	id := m.receipts[m.cursor].ID
	return func() tea.Msg {
		err := m.app.ReceiptService.Delete(context.Background(), id)
		return receiptDeletedMsg{err: err}
	}
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadReceipts()

	case historyDataMsg:
		m.loading = false
		m.err = msg.err
		m.receipts = msg.receipts
		if m.cursor >= len(m.receipts) {
			m.cursor = 0
		}
		return m, nil

	case receiptDeletedMsg:
		m.loading = true
		m.mode = historyModeList
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		m.statusMsg = "Receipt deleted"
		return m, m.loadReceipts()

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch m.mode {
		case historyModeSearch:
			return m.updateSearch(msg)
		case historyModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == historyModeSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *HistoryModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.statusMsg = ""

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DefaultKeyMap.Down):
		if m.cursor < len(m.receipts)-1 {
			m.cursor++
		}
	case key.Matches(msg, DefaultKeyMap.Select):
		if len(m.receipts) > 0 {
			id := m.receipts[m.cursor].ID
			return m, func() tea.Msg { return ViewReceiptMsg{ID: id} }
		}
	case key.Matches(msg, DefaultKeyMap.Search):
		m.mode = historyModeSearch
		return m, m.searchInput.Focus()
	case key.Matches(msg, DefaultKeyMap.Delete):
		if len(m.receipts) > 0 {
			m.mode = historyModeConfirmDelete
		}
	}

	return m, nil
}

func (m *HistoryModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = historyModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.loading = true
		return m, m.loadReceipts()
	case "enter":
		m.mode = historyModeList
		m.searchInput.Blur()
		m.loading = true
		m.cursor = 0
		return m, m.loadReceipts()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *HistoryModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.loading = true
		return m, m.deleteSelected()
	case "n", "N", "esc":
		m.mode = historyModeList
	}
	return m, nil
}

func (m *HistoryModel) View() string {
	if m.loading {
		return "Loading..."
	}

	var s string
	s += titleStyle.Render("Receipts") + "\n\n"

	if m.mode == historyModeSearch {
		s += "  Search: " + m.searchInput.View() + "\n\n"
	} else if q := m.searchInput.Value(); q != "" {
		s += subtitleStyle.Render(fmt.Sprintf("  Filter: %q  (press / to change)", q)) + "\n\n"
	}

	if m.statusMsg != "" {
		s += lipgloss.NewStyle().Foreground(successColor).
			Render("  "+m.statusMsg) + "\n\n"
	}

	if m.err != nil {
		s += lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	if len(m.receipts) == 0 && m.err == nil {
		s += subtitleStyle.Render("  No receipts found.")
		return s
	}

	// Header
	s += subtitleStyle.Render(fmt.Sprintf(
		"  %-12s  %-10s  %-20s  %12s  %12s  %s",
		"Number", "Date", "Customer", "Total", "Balance", "Status",
	)) + "\n"

	for i, r := range m.receipts {
		line := fmt.Sprintf("  %-12s  %-10s  %-20s  %12s  %12s  %s",
			r.ReceiptNumber,
			r.Date.Format("02 Jan 06"),
			truncateStr(r.Customer.Name, 20),
			formatMoney(r.Total),
			formatMoney(r.RemainingBalance),
			statusBadge(r.Status),
		)

		if i == m.cursor {
			s += selectedStyle.Render(line) + "\n"
		} else {
			s += line + "\n"
		}
	}

	if m.mode == historyModeConfirmDelete {
		r := m.receipts[m.cursor]
		s += "\n" + lipgloss.NewStyle().Foreground(warningColor).Render(
			fmt.Sprintf("  Delete receipt %s for %s? (y/n)", r.ReceiptNumber, r.Customer.Name),
		) + "\n"
	} else {
		s += "\n" + helpStyle.Render("  j/k: navigate  enter: view  /: search  x: delete")
	}

	return s
}
