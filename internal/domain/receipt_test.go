package domain

import (
	"testing"
	"time"
)

func TestCalculateTotals_AdvanceLeavesBalance(t *testing.T) {
	items := []LineItem{{Quantity: 1000, Rate: 2, Total: 2000}}

	totals := CalculateTotals(items, 0, 0, 1000)

	if totals.Subtotal != 2000 {
		t.Fatalf("expected subtotal 2000, got %v", totals.Subtotal)
	}
	if totals.Tax != 0 {
		t.Fatalf("expected no tax, got %v", totals.Tax)
	}
	if totals.Total != 2000 {
		t.Fatalf("expected total 2000, got %v", totals.Total)
	}
	if totals.RemainingBalance != 1000 {
		t.Fatalf("expected balance 1000, got %v", totals.RemainingBalance)
	}
	if got := StatusFor(totals.RemainingBalance, 1000); got != StatusPartial {
		t.Fatalf("expected status %q, got %q", StatusPartial, got)
	}
}

func TestCalculateTotals_DiscountThenTax(t *testing.T) {
	items := []LineItem{{Quantity: 10, Rate: 50, Total: 500}}

	// Tax applies to the discounted subtotal
	totals := CalculateTotals(items, 50, 10, 500)

	if totals.Subtotal != 500 {
		t.Fatalf("expected subtotal 500, got %v", totals.Subtotal)
	}
	if totals.Tax != 45 {
		t.Fatalf("expected tax 45, got %v", totals.Tax)
	}
	if totals.Total != 495 {
		t.Fatalf("expected total 495, got %v", totals.Total)
	}
	if totals.RemainingBalance != -5 {
		t.Fatalf("expected balance -5, got %v", totals.RemainingBalance)
	}
	// Overpayment still counts as paid
	if got := StatusFor(totals.RemainingBalance, 500); got != StatusPaid {
		t.Fatalf("expected status %q, got %q", StatusPaid, got)
	}
}

func TestCalculateTotals_DiscountExceedsSubtotal(t *testing.T) {
	items := []LineItem{{Quantity: 1, Rate: 100, Total: 100}}

	// A discount larger than the subtotal is accepted, not clamped
	totals := CalculateTotals(items, 200, 0, 0)

	if totals.Total != -100 {
		t.Fatalf("expected total -100, got %v", totals.Total)
	}
	if totals.RemainingBalance != -100 {
		t.Fatalf("expected balance -100, got %v", totals.RemainingBalance)
	}
}

func TestCalculateTotals_SumsMultipleItems(t *testing.T) {
	items := []LineItem{
		{Quantity: 2, Rate: 150, Total: 300},
		{Quantity: 500, Rate: 1.5, Total: 750},
		{Quantity: 1, Rate: 0, Total: 0},
	}

	totals := CalculateTotals(items, 0, 0, 0)

	if totals.Subtotal != 1050 {
		t.Fatalf("expected subtotal 1050, got %v", totals.Subtotal)
	}
}

func TestStatusFor(t *testing.T) {
	if got := StatusFor(0, 0); got != StatusPaid {
		t.Errorf("zero balance: expected %q, got %q", StatusPaid, got)
	}
	if got := StatusFor(500, 500); got != StatusPartial {
		t.Errorf("advance paid: expected %q, got %q", StatusPartial, got)
	}
	if got := StatusFor(1000, 0); got != StatusPending {
		t.Errorf("nothing paid: expected %q, got %q", StatusPending, got)
	}
	if got := StatusFor(-5, 0); got != StatusPaid {
		t.Errorf("negative balance: expected %q, got %q", StatusPaid, got)
	}
}

func TestNewReceiptNumber(t *testing.T) {
	at := time.UnixMilli(1712345678901)

	got := NewReceiptNumber("ZG", at)

	if got != "ZG-678901" {
		t.Fatalf("expected ZG-678901, got %q", got)
	}
}

func TestNewReceiptNumber_CustomPrefix(t *testing.T) {
	at := time.UnixMilli(1712345000042)

	got := NewReceiptNumber("PRESS", at)

	if got != "PRESS-000042" {
		t.Fatalf("expected PRESS-000042, got %q", got)
	}
}

func TestReceiptValidate(t *testing.T) {
	valid := Receipt{
		ID:            "abc",
		ReceiptNumber: "ZG-123456",
		Customer:      Customer{Name: "Ahmed"},
		Items:         []LineItem{NewLineItem()},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noCustomer := valid
	noCustomer.Customer = Customer{}
	if err := noCustomer.Validate(); err == nil {
		t.Fatalf("expected error for missing customer name")
	}

	noItems := valid
	noItems.Items = nil
	if err := noItems.Validate(); err == nil {
		t.Fatalf("expected error for missing line items")
	}
}
