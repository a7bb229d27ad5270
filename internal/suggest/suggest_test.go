package suggest

import "testing"

func TestParseSuggestions(t *testing.T) {
	data := []byte(`[
		{"description": "Wedding cards", "suggestedSpecs": "5x7, golden embossed", "suggestedRate": 25},
		{"description": "Envelopes", "suggestedSpecs": "matching", "suggestedRate": 5}
	]`)

	suggestions, err := ParseSuggestions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Description != "Wedding cards" {
		t.Fatalf("expected description decoded, got %q", suggestions[0].Description)
	}
	if suggestions[0].SuggestedRate != 25 {
		t.Fatalf("expected rate 25, got %v", suggestions[0].SuggestedRate)
	}
}

func TestParseSuggestions_Empty(t *testing.T) {
	suggestions, err := ParseSuggestions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(suggestions))
	}
}

func TestParseSuggestions_Malformed(t *testing.T) {
	_, err := ParseSuggestions([]byte(`{"not": "an array"}`))
	if err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
