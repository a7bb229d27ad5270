package service

import (
	"context"

	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/repository"
)

// DashboardMetrics aggregates the business overview numbers
type DashboardMetrics struct {
	TotalAdvance     float64
	TotalRemaining   float64
	TotalInvoiced    float64
	PaidCount        int
	OutstandingCount int
	RecentFive       []*domain.Receipt
}

// ReportService provides aggregations over the receipt collection
type ReportService interface {
	GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
}

type reportService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReportService creates a new report service
func NewReportService(receiptRepo repository.ReceiptRepository) ReportService {
	return &reportService{receiptRepo: receiptRepo}
}

func (s *reportService) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	receipts, err := s.receiptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDashboardMetrics(receipts), nil
}

// ComputeDashboardMetrics derives the dashboard numbers from a
// newest-first receipt collection. Total invoiced is the sum of advances
// and outstanding balances; receipts with a negative balance count as
// neither paid nor outstanding (they were overpaid against a discount).
func ComputeDashboardMetrics(receipts []*domain.Receipt) *DashboardMetrics {
	m := &DashboardMetrics{}

	for _, r := range receipts {
		m.TotalAdvance += r.AdvancePayment
		m.TotalRemaining += r.RemainingBalance
		if r.RemainingBalance == 0 {
			m.PaidCount++
		} else if r.RemainingBalance > 0 {
			m.OutstandingCount++
		}
	}
	m.TotalInvoiced = m.TotalAdvance + m.TotalRemaining

	recent := 5
	if len(receipts) < recent {
		recent = len(receipts)
	}
	m.RecentFive = receipts[:recent]

	return m
}
