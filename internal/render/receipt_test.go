package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zeshan/pressbook/internal/domain"
)

func testReceipt() *domain.Receipt {
	return &domain.Receipt{
		ID:            "abc",
		ReceiptNumber: "ZG-678901",
		Date:          time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC),
		Customer:      domain.Customer{Name: "Ahmed Khan", Phone: "0300-1234567"},
		Items: []domain.LineItem{
			{ID: "i1", Description: "Wedding cards", Specs: "5x7, golden", Quantity: 1000, Rate: 2, Total: 2000},
		},
		Subtotal:         2000,
		Total:            2000,
		AdvancePayment:   1000,
		RemainingBalance: 1000,
		PaymentMethod:    domain.PaymentCash,
		Status:           domain.StatusPartial,
		SettingsSnapshot: &domain.PressSettings{Name: "Snapshot Press", Tagline: "old tagline"},
	}
}

func TestReceipt_UsesSnapshotOverLiveSettings(t *testing.T) {
	live := domain.PressSettings{Name: "Live Press"}

	out := Receipt(testReceipt(), live)

	if !strings.Contains(out, "Snapshot Press") {
		t.Fatalf("expected snapshot press name in output")
	}
	if strings.Contains(out, "Live Press") {
		t.Fatalf("expected live settings ignored when a snapshot exists")
	}
}

func TestReceipt_FallsBackToLiveSettings(t *testing.T) {
	r := testReceipt()
	r.SettingsSnapshot = nil
	live := domain.PressSettings{Name: "Live Press"}

	out := Receipt(r, live)

	if !strings.Contains(out, "Live Press") {
		t.Fatalf("expected live press name for pre-snapshot receipts")
	}
}

func TestReceipt_Content(t *testing.T) {
	out := Receipt(testReceipt(), domain.PressSettings{})

	for _, want := range []string{
		"ZG-678901",
		"Ahmed Khan",
		"Wedding cards (5x7, golden)",
		"Payment: Cash",
		"NET TOTAL (PKR)",
		"Balance due",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}

	if strings.Contains(out, "PAYMENT RECEIVED IN FULL") {
		t.Fatalf("unexpected full-payment banner on a partial receipt")
	}
}

func TestReceipt_FullPaymentBanner(t *testing.T) {
	r := testReceipt()
	r.AdvancePayment = 2000
	r.RemainingBalance = 0
	r.Status = domain.StatusPaid

	out := Receipt(r, domain.PressSettings{})

	if !strings.Contains(out, "*** PAYMENT RECEIVED IN FULL ***") {
		t.Fatalf("expected full-payment banner")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	r := testReceipt()

	path, err := Export(r, domain.PressSettings{}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(dir, "ZG-678901-20260314.txt")
	if path != want {
		t.Fatalf("expected path %q, got %q", want, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if !strings.Contains(string(data), "ZG-678901") {
		t.Fatalf("expected exported file to contain the receipt number")
	}
}
