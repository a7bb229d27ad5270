package service

import (
	"github.com/zeshan/pressbook/internal/domain"
)

// Draft holds an in-progress order before finalization. It owns its line
// items; once finalized the items belong to the created receipt and the
// draft is discarded. All operations are synchronous in-memory edits.
type Draft struct {
	Customer       domain.Customer
	Items          []domain.LineItem
	Discount       float64
	TaxRate        float64
	AdvancePayment float64
	PaymentMethod  domain.PaymentMethod
	Notes          string
}

// NewDraft creates a draft with a single blank line item.
// A draft never has fewer than one item.
func NewDraft() *Draft {
	return &Draft{
		Items:         []domain.LineItem{domain.NewLineItem()},
		PaymentMethod: domain.PaymentCash,
	}
}

// AddItem appends a blank line item and returns its id
func (d *Draft) AddItem() string {
	item := domain.NewLineItem()
	d.Items = append(d.Items, item)
	return item.ID
}

// AddSuggestedItem appends a line item pre-filled from a collaborator
// suggestion and returns its id
func (d *Draft) AddSuggestedItem(s domain.JobSuggestion) string {
	item := domain.NewLineItem()
	item.ApplySuggestion(s)
	d.Items = append(d.Items, item)
	return item.ID
}

// SetItemDescription updates the description of the item with the given
// id. Unknown ids are silently ignored: the id space is internally
// generated, so a miss means the item was already removed.
func (d *Draft) SetItemDescription(id, description string) {
	if item := d.item(id); item != nil {
		item.Description = description
	}
}

// SetItemSpecs updates the specs of the item with the given id
func (d *Draft) SetItemSpecs(id, specs string) {
	if item := d.item(id); item != nil {
		item.Specs = specs
	}
}

// SetItemQuantity updates the quantity and recomputes the item total
func (d *Draft) SetItemQuantity(id string, quantity float64) {
	if item := d.item(id); item != nil {
		item.Quantity = quantity
		item.Recalculate()
	}
}

// SetItemRate updates the rate and recomputes the item total
func (d *Draft) SetItemRate(id string, rate float64) {
	if item := d.item(id); item != nil {
		item.Rate = rate
		item.Recalculate()
	}
}

// RemoveItem removes the item with the given id. Removing the last
// remaining item is a no-op: a receipt always has at least one line.
func (d *Draft) RemoveItem(id string) {
	if len(d.Items) <= 1 {
		return
	}
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// Totals computes the current derived values for display while editing
func (d *Draft) Totals() domain.Totals {
	return domain.CalculateTotals(d.Items, d.Discount, d.TaxRate, d.AdvancePayment)
}

func (d *Draft) item(id string) *domain.LineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}
