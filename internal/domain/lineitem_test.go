package domain

import "testing"

func TestNewLineItem_Defaults(t *testing.T) {
	item := NewLineItem()

	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if item.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %v", item.Quantity)
	}
	if item.Total != 0 {
		t.Fatalf("expected zero total, got %v", item.Total)
	}
}

func TestLineItemRecalculate(t *testing.T) {
	item := NewLineItem()
	item.Quantity = 500
	item.Rate = 1.5
	item.Recalculate()

	if item.Total != 750 {
		t.Fatalf("expected total 750, got %v", item.Total)
	}
}

func TestLineItemApplySuggestion(t *testing.T) {
	item := NewLineItem()
	item.ApplySuggestion(JobSuggestion{
		Description:    "Wedding cards",
		SuggestedSpecs: "5x7, golden embossed",
		SuggestedRate:  25,
	})

	if item.Description != "Wedding cards" {
		t.Fatalf("expected description applied, got %q", item.Description)
	}
	if item.Specs != "5x7, golden embossed" {
		t.Fatalf("expected specs applied, got %q", item.Specs)
	}
	// Default quantity of 1 means the total tracks the suggested rate
	if item.Total != 25 {
		t.Fatalf("expected total 25, got %v", item.Total)
	}
}
