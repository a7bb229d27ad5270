package service

import (
	"context"
	"errors"
	"testing"

	"github.com/zeshan/pressbook/internal/domain"
)

// mock implementations
type mockReceiptRepo struct {
	receipts []*domain.Receipt // newest first
}

func (m *mockReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	m.receipts = append([]*domain.Receipt{receipt}, m.receipts...)
	return nil
}

func (m *mockReceiptRepo) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	for _, r := range m.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrReceiptNotFound
}

func (m *mockReceiptRepo) List(ctx context.Context) ([]*domain.Receipt, error) {
	out := make([]*domain.Receipt, len(m.receipts))
	copy(out, m.receipts)
	return out, nil
}

func (m *mockReceiptRepo) Delete(ctx context.Context, id string) error {
	for i, r := range m.receipts {
		if r.ID == id {
			m.receipts = append(m.receipts[:i], m.receipts[i+1:]...)
			return nil
		}
	}
	return domain.ErrReceiptNotFound
}

func (m *mockReceiptRepo) Count(ctx context.Context) (int, error) {
	return len(m.receipts), nil
}

type mockSettingsRepo struct {
	settings domain.PressSettings
}

func (m *mockSettingsRepo) Get(ctx context.Context) (domain.PressSettings, error) {
	return m.settings, nil
}

func (m *mockSettingsRepo) Save(ctx context.Context, settings domain.PressSettings) error {
	m.settings = settings
	return nil
}

func testDraft() *Draft {
	d := NewDraft()
	d.Customer.Name = "Ahmed Khan"
	id := d.Items[0].ID
	d.SetItemDescription(id, "Wedding cards")
	d.SetItemQuantity(id, 1000)
	d.SetItemRate(id, 2)
	return d
}

func TestFinalize_Success(t *testing.T) {
	ctx := context.Background()
	repo := &mockReceiptRepo{}
	settings := &mockSettingsRepo{settings: domain.DefaultPressSettings()}
	svc := NewReceiptService(repo, settings, "ZG")

	d := testDraft()
	d.AdvancePayment = 1000

	receipt, err := svc.Finalize(ctx, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receipt.ID == "" {
		t.Fatalf("expected generated id")
	}
	if receipt.Subtotal != 2000 {
		t.Fatalf("expected subtotal 2000, got %v", receipt.Subtotal)
	}
	if receipt.RemainingBalance != 1000 {
		t.Fatalf("expected balance 1000, got %v", receipt.RemainingBalance)
	}
	if receipt.Status != domain.StatusPartial {
		t.Fatalf("expected status %q, got %q", domain.StatusPartial, receipt.Status)
	}
	if len(repo.receipts) != 1 {
		t.Fatalf("expected receipt persisted")
	}
}

func TestFinalize_RequiresCustomerName(t *testing.T) {
	svc := NewReceiptService(&mockReceiptRepo{}, &mockSettingsRepo{}, "ZG")

	d := NewDraft()
	d.Customer.Name = "   "

	_, err := svc.Finalize(context.Background(), d)
	if !errors.Is(err, ErrCustomerNameRequired) {
		t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
	}
}

func TestFinalize_SnapshotFrozenAtCreation(t *testing.T) {
	ctx := context.Background()
	repo := &mockReceiptRepo{}
	settings := &mockSettingsRepo{settings: domain.PressSettings{Name: "Old Press"}}
	svc := NewReceiptService(repo, settings, "ZG")

	receipt, err := svc.Finalize(ctx, testDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Editing settings after finalization must not touch the stored snapshot
	settings.Save(ctx, domain.PressSettings{Name: "New Press"})

	stored, err := svc.Get(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.SettingsSnapshot == nil {
		t.Fatalf("expected settings snapshot on receipt")
	}
	if stored.SettingsSnapshot.Name != "Old Press" {
		t.Fatalf("expected snapshot to keep %q, got %q", "Old Press", stored.SettingsSnapshot.Name)
	}
}

func TestFinalize_CopiesDraftItems(t *testing.T) {
	ctx := context.Background()
	repo := &mockReceiptRepo{}
	svc := NewReceiptService(repo, &mockSettingsRepo{}, "ZG")

	d := testDraft()
	receipt, err := svc.Finalize(ctx, d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the draft afterwards must not reach the stored receipt
	d.SetItemQuantity(d.Items[0].ID, 9999)

	if receipt.Items[0].Quantity != 1000 {
		t.Fatalf("expected receipt items decoupled from draft, got quantity %v", receipt.Items[0].Quantity)
	}
}

func TestDelete_RemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	repo := &mockReceiptRepo{}
	svc := NewReceiptService(repo, &mockSettingsRepo{}, "ZG")

	first, _ := svc.Finalize(ctx, testDraft())
	second, _ := svc.Finalize(ctx, testDraft())
	third, _ := svc.Finalize(ctx, testDraft())

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining, _ := svc.List(ctx)
	if len(remaining) != 2 {
		t.Fatalf("expected 2 receipts, got %d", len(remaining))
	}
	// Newest-first order preserved
	if remaining[0].ID != third.ID || remaining[1].ID != first.ID {
		t.Fatalf("expected survivors in original order")
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewReceiptService(&mockReceiptRepo{}, &mockSettingsRepo{}, "ZG")

	err := svc.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrReceiptNotFound) {
		t.Fatalf("expected ErrReceiptNotFound, got %v", err)
	}
}

func TestFilterReceipts(t *testing.T) {
	receipts := []*domain.Receipt{
		{ReceiptNumber: "ZG-111111", Customer: domain.Customer{Name: "Ahmed Khan"}},
		{ReceiptNumber: "ZG-222222", Customer: domain.Customer{Name: "Sana Printing Works"}},
		{ReceiptNumber: "ZG-333333", Customer: domain.Customer{Name: "Bilal"}},
	}

	// Empty query returns the input untouched
	if got := FilterReceipts(receipts, ""); len(got) != 3 {
		t.Fatalf("expected all receipts for empty query, got %d", len(got))
	}

	// Case-insensitive customer name match
	got := FilterReceipts(receipts, "AHMED")
	if len(got) != 1 || got[0].Customer.Name != "Ahmed Khan" {
		t.Fatalf("expected Ahmed Khan, got %v", got)
	}

	// Receipt number substring match
	got = FilterReceipts(receipts, "zg-2")
	if len(got) != 1 || got[0].ReceiptNumber != "ZG-222222" {
		t.Fatalf("expected ZG-222222, got %v", got)
	}

	// No match
	if got := FilterReceipts(receipts, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}
