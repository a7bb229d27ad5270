package domain

import "github.com/google/uuid"

// LineItem is one billable unit within a receipt: a job description,
// its technical specs, a quantity and a per-unit rate.
type LineItem struct {
	ID          string
	Description string
	Specs       string
	Quantity    float64
	Rate        float64
	Total       float64
}

// NewLineItem creates a blank line item with a fresh ID.
// Quantity defaults to 1 so the total tracks the rate immediately.
func NewLineItem() LineItem {
	item := LineItem{
		ID:       uuid.NewString(),
		Quantity: 1,
	}
	item.Recalculate()
	return item
}

// Recalculate restores the Total = Quantity * Rate invariant.
// Must be called whenever quantity or rate changes.
func (li *LineItem) Recalculate() {
	li.Total = li.Quantity * li.Rate
}

// ApplySuggestion pre-fills the item from a collaborator suggestion.
func (li *LineItem) ApplySuggestion(s JobSuggestion) {
	li.Description = s.Description
	li.Specs = s.SuggestedSpecs
	li.Rate = s.SuggestedRate
	li.Recalculate()
}
