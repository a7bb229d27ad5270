package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/service"
)

// DashboardModel represents the dashboard home screen
type DashboardModel struct {
	app *app.App

	metrics *service.DashboardMetrics

	loading bool
	err     error
}

type dashboardDataMsg struct {
	metrics *service.DashboardMetrics
	err     error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(a *app.App) tea.Model {
	return &DashboardModel{
		app:     a,
		loading: true,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		metrics, err := m.app.ReportService.GetDashboardMetrics(context.Background())
		if err != nil {
			return dashboardDataMsg{err: fmt.Errorf("dashboard metrics: %w", err)}
		}
		return dashboardDataMsg{metrics: metrics}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.metrics = msg.metrics
		return m, nil

	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	if m.loading {
		return "Loading dashboard..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.metrics == nil {
		return "Loading dashboard..."
	}

	var s string

	// Metric cards
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard("Advance received", formatMoney(m.metrics.TotalAdvance)),
		m.renderCard("Outstanding", formatMoney(m.metrics.TotalRemaining)),
		m.renderCard("Total invoiced", formatMoney(m.metrics.TotalInvoiced)),
	)
	s += cards + "\n"

	s += fmt.Sprintf("  Fully paid: %d    Outstanding orders: %d\n",
		m.metrics.PaidCount, m.metrics.OutstandingCount)

	// Recent orders
	s += "\n" + m.renderRecent()

	return s
}

func (m *DashboardModel) renderCard(label, value string) string {
	content := subtitleStyle.Render(label) + "\n" +
		lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Render(value)
	return boxStyle.Render(content)
}

func (m *DashboardModel) renderRecent() string {
	header := "  Recent Orders\n"
	if len(m.metrics.RecentFive) == 0 {
		return header + subtitleStyle.Render("  No receipts yet. Press 'n' to create one.") + "\n"
	}

	s := header
	s += subtitleStyle.Render(fmt.Sprintf(
		"  %-12s  %-20s  %12s  %12s  %s",
		"Number", "Customer", "Total", "Balance", "Status",
	)) + "\n"

	for _, r := range m.metrics.RecentFive {
		s += fmt.Sprintf("  %-12s  %-20s  %12s  %12s  %s\n",
			r.ReceiptNumber,
			truncateStr(r.Customer.Name, 20),
			formatMoney(r.Total),
			formatMoney(r.RemainingBalance),
			statusBadge(r.Status),
		)
	}

	return s
}

// statusBadge renders a receipt status with color
func statusBadge(status domain.ReceiptStatus) string {
	switch status {
	case domain.StatusPaid:
		return lipgloss.NewStyle().Foreground(successColor).Render("PAID")
	case domain.StatusPartial:
		return lipgloss.NewStyle().Foreground(warningColor).Render("PARTIAL")
	case domain.StatusPending:
		return lipgloss.NewStyle().Foreground(errorColor).Render("PENDING")
	case domain.StatusCancelled:
		return lipgloss.NewStyle().Foreground(mutedColor).Render("CANCELLED")
	default:
		return string(status)
	}
}
