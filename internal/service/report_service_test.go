package service

import (
	"testing"

	"github.com/zeshan/pressbook/internal/domain"
)

func TestComputeDashboardMetrics(t *testing.T) {
	receipts := []*domain.Receipt{
		{AdvancePayment: 1000, RemainingBalance: 1000}, // partial
		{AdvancePayment: 500, RemainingBalance: 0},     // paid
		{AdvancePayment: 0, RemainingBalance: 300},     // pending
	}

	m := ComputeDashboardMetrics(receipts)

	if m.TotalAdvance != 1500 {
		t.Fatalf("expected advance 1500, got %v", m.TotalAdvance)
	}
	if m.TotalRemaining != 1300 {
		t.Fatalf("expected remaining 1300, got %v", m.TotalRemaining)
	}
	if m.TotalInvoiced != 2800 {
		t.Fatalf("expected invoiced 2800, got %v", m.TotalInvoiced)
	}
	if m.PaidCount != 1 {
		t.Fatalf("expected 1 paid, got %d", m.PaidCount)
	}
	if m.OutstandingCount != 2 {
		t.Fatalf("expected 2 outstanding, got %d", m.OutstandingCount)
	}
}

func TestComputeDashboardMetrics_OverpaidCountsNeither(t *testing.T) {
	receipts := []*domain.Receipt{
		{AdvancePayment: 500, RemainingBalance: -5},
	}

	m := ComputeDashboardMetrics(receipts)

	if m.PaidCount != 0 || m.OutstandingCount != 0 {
		t.Fatalf("expected overpaid receipt in neither count, got paid=%d outstanding=%d",
			m.PaidCount, m.OutstandingCount)
	}
	// The negative balance still nets against the totals
	if m.TotalInvoiced != 495 {
		t.Fatalf("expected invoiced 495, got %v", m.TotalInvoiced)
	}
}

func TestComputeDashboardMetrics_RecentFive(t *testing.T) {
	var receipts []*domain.Receipt
	for i := 0; i < 8; i++ {
		receipts = append(receipts, &domain.Receipt{ID: string(rune('a' + i))})
	}

	m := ComputeDashboardMetrics(receipts)

	if len(m.RecentFive) != 5 {
		t.Fatalf("expected 5 recent receipts, got %d", len(m.RecentFive))
	}
	// Input is newest-first, so the first five are the most recent
	if m.RecentFive[0].ID != "a" || m.RecentFive[4].ID != "e" {
		t.Fatalf("expected first five of input, got %v to %v", m.RecentFive[0].ID, m.RecentFive[4].ID)
	}
}

func TestComputeDashboardMetrics_Empty(t *testing.T) {
	m := ComputeDashboardMetrics(nil)

	if m.TotalInvoiced != 0 || len(m.RecentFive) != 0 {
		t.Fatalf("expected zero metrics for empty collection")
	}
}
