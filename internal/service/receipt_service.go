package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/repository"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrNoLineItems          = errors.New("receipt must have at least one line item")
)

// ReceiptService is the only path by which a receipt enters existence,
// and the surface through which the collection is read and pruned.
type ReceiptService interface {
	// Finalize validates the draft, computes all derived values, stamps
	// id, number and date, snapshots the current press settings, persists
	// the receipt and returns it.
	Finalize(ctx context.Context, draft *Draft) (*domain.Receipt, error)

	// Get retrieves a receipt by id (domain.ErrReceiptNotFound if absent)
	Get(ctx context.Context, id string) (*domain.Receipt, error)

	// List returns the full collection newest-first
	List(ctx context.Context) ([]*domain.Receipt, error)

	// Search filters by customer name or receipt number substring,
	// case-insensitively; an empty query returns everything
	Search(ctx context.Context, query string) ([]*domain.Receipt, error)

	// Delete removes exactly the receipt with the given id
	Delete(ctx context.Context, id string) error
}

type receiptService struct {
	receiptRepo  repository.ReceiptRepository
	settingsRepo repository.SettingsRepository
	numberPrefix string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	settingsRepo repository.SettingsRepository,
	numberPrefix string,
) ReceiptService {
	return &receiptService{
		receiptRepo:  receiptRepo,
		settingsRepo: settingsRepo,
		numberPrefix: numberPrefix,
	}
}

func (s *receiptService) Finalize(ctx context.Context, draft *Draft) (*domain.Receipt, error) {
	if strings.TrimSpace(draft.Customer.Name) == "" {
		return nil, ErrCustomerNameRequired
	}
	if len(draft.Items) == 0 {
		return nil, ErrNoLineItems
	}

	// Snapshot the press identity as it exists right now; the copy is
	// frozen into the receipt and never follows later settings edits.
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for snapshot: %w", err)
	}
	snapshot := settings

	totals := domain.CalculateTotals(draft.Items, draft.Discount, draft.TaxRate, draft.AdvancePayment)

	items := make([]domain.LineItem, len(draft.Items))
	copy(items, draft.Items)

	now := time.Now()
	receipt := &domain.Receipt{
		ID:               uuid.NewString(),
		ReceiptNumber:    domain.NewReceiptNumber(s.numberPrefix, now),
		Date:             now,
		Customer:         draft.Customer,
		Items:            items,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Discount:         draft.Discount,
		Total:            totals.Total,
		AdvancePayment:   draft.AdvancePayment,
		RemainingBalance: totals.RemainingBalance,
		PaymentMethod:    draft.PaymentMethod,
		Status:           domain.StatusFor(totals.RemainingBalance, draft.AdvancePayment),
		Notes:            draft.Notes,
		SettingsSnapshot: &snapshot,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

func (s *receiptService) Get(ctx context.Context, id string) (*domain.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, id)
}

func (s *receiptService) List(ctx context.Context) ([]*domain.Receipt, error) {
	return s.receiptRepo.List(ctx)
}

func (s *receiptService) Search(ctx context.Context, query string) ([]*domain.Receipt, error) {
	receipts, err := s.receiptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterReceipts(receipts, query), nil
}

func (s *receiptService) Delete(ctx context.Context, id string) error {
	return s.receiptRepo.Delete(ctx, id)
}

// FilterReceipts returns the receipts whose customer name or receipt
// number contains the query, compared case-insensitively. An empty query
// returns the input untouched, preserving order.
func FilterReceipts(receipts []*domain.Receipt, query string) []*domain.Receipt {
	if query == "" {
		return receipts
	}

	q := strings.ToLower(query)
	matched := make([]*domain.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if strings.Contains(strings.ToLower(r.Customer.Name), q) ||
			strings.Contains(strings.ToLower(r.ReceiptNumber), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
