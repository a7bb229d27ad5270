package service

import (
	"testing"

	"github.com/zeshan/pressbook/internal/domain"
)

func TestNewDraft_StartsWithOneBlankItem(t *testing.T) {
	d := NewDraft()

	if len(d.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(d.Items))
	}
	if d.PaymentMethod != domain.PaymentCash {
		t.Fatalf("expected default payment method Cash, got %q", d.PaymentMethod)
	}
}

func TestDraftSetItemQuantity_RecomputesTotal(t *testing.T) {
	d := NewDraft()
	id := d.Items[0].ID

	d.SetItemRate(id, 2)
	d.SetItemQuantity(id, 1000)

	if d.Items[0].Total != 2000 {
		t.Fatalf("expected item total 2000, got %v", d.Items[0].Total)
	}
}

func TestDraftSetters_UnknownIDIgnored(t *testing.T) {
	d := NewDraft()
	before := d.Items[0]

	d.SetItemDescription("no-such-id", "changed")
	d.SetItemQuantity("no-such-id", 99)
	d.SetItemRate("no-such-id", 99)

	if d.Items[0] != before {
		t.Fatalf("expected item unchanged, got %+v", d.Items[0])
	}
}

func TestDraftRemoveItem(t *testing.T) {
	d := NewDraft()
	second := d.AddItem()

	d.RemoveItem(second)

	if len(d.Items) != 1 {
		t.Fatalf("expected 1 item after removal, got %d", len(d.Items))
	}
	if d.Items[0].ID == second {
		t.Fatalf("removed the wrong item")
	}
}

func TestDraftRemoveItem_LastItemStays(t *testing.T) {
	d := NewDraft()
	id := d.Items[0].ID

	d.RemoveItem(id)

	if len(d.Items) != 1 {
		t.Fatalf("expected last item to survive removal, got %d items", len(d.Items))
	}
}

func TestDraftAddSuggestedItem(t *testing.T) {
	d := NewDraft()

	id := d.AddSuggestedItem(domain.JobSuggestion{
		Description:    "Business cards",
		SuggestedSpecs: "matte, 350gsm",
		SuggestedRate:  12,
	})

	if len(d.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(d.Items))
	}
	added := d.Items[1]
	if added.ID != id {
		t.Fatalf("expected returned id to match appended item")
	}
	if added.Description != "Business cards" || added.Rate != 12 {
		t.Fatalf("expected suggestion applied, got %+v", added)
	}
}

func TestDraftTotals(t *testing.T) {
	d := NewDraft()
	id := d.Items[0].ID
	d.SetItemQuantity(id, 10)
	d.SetItemRate(id, 50)
	d.Discount = 50
	d.TaxRate = 10
	d.AdvancePayment = 500

	totals := d.Totals()

	if totals.Tax != 45 {
		t.Fatalf("expected tax 45, got %v", totals.Tax)
	}
	if totals.Total != 495 {
		t.Fatalf("expected total 495, got %v", totals.Total)
	}
	if totals.RemainingBalance != -5 {
		t.Fatalf("expected balance -5, got %v", totals.RemainingBalance)
	}
}
