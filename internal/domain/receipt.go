package domain

import (
	"errors"
	"strconv"
	"time"
)

type ReceiptStatus string

const (
	StatusPending   ReceiptStatus = "Pending"
	StatusPaid      ReceiptStatus = "Paid"
	StatusPartial   ReceiptStatus = "Partial"
	StatusCancelled ReceiptStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentEasyPaisa    PaymentMethod = "EasyPaisa"
	PaymentJazzCash     PaymentMethod = "JazzCash"
	PaymentCard         PaymentMethod = "Card"
	PaymentCheque       PaymentMethod = "Cheque"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentEasyPaisa,
	PaymentJazzCash,
	PaymentBankTransfer,
	PaymentCard,
	PaymentCheque,
}

// ErrReceiptNotFound is returned when a requested receipt id does not
// exist in the collection.
var ErrReceiptNotFound = errors.New("receipt not found")

// Receipt is an immutable record of one completed print-shop order.
// All derived values are computed once at creation and never recomputed;
// the only mutation a receipt ever sees is removal from the collection.
type Receipt struct {
	ID               string
	ReceiptNumber    string
	Date             time.Time
	Customer         Customer
	Items            []LineItem
	Subtotal         float64
	Tax              float64
	Discount         float64
	Total            float64
	AdvancePayment   float64
	RemainingBalance float64
	PaymentMethod    PaymentMethod
	Status           ReceiptStatus
	Notes            string

	// SettingsSnapshot freezes the press identity as it existed when the
	// receipt was created, so later settings edits never alter printed
	// history. Nil only for rows predating snapshot support.
	SettingsSnapshot *PressSettings
}

// Totals holds the derived pricing values for a set of inputs.
type Totals struct {
	Subtotal         float64
	Tax              float64
	Total            float64
	RemainingBalance float64
}

// CalculateTotals applies the pricing formulas:
//
//	subtotal = sum of item totals
//	tax      = (subtotal - discount) * taxRate/100
//	total    = subtotal - discount + tax
//	balance  = total - advance
//
// A discount exceeding the subtotal yields a negative total; that is
// accepted input, not clamped.
func CalculateTotals(items []LineItem, discount, taxRate, advance float64) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Total
	}
	t.Tax = (t.Subtotal - discount) * taxRate / 100
	t.Total = t.Subtotal - discount + t.Tax
	t.RemainingBalance = t.Total - advance
	return t
}

// StatusFor classifies a receipt by its payment state.
func StatusFor(remainingBalance, advance float64) ReceiptStatus {
	switch {
	case remainingBalance <= 0:
		return StatusPaid
	case advance > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}

// NewReceiptNumber derives a receipt number from the creation instant:
// the prefix plus the last six digits of the unix-millisecond timestamp.
// Two receipts created within the same millisecond collide; for a
// single-shop tool that is an accepted limitation, not enforced against.
func NewReceiptNumber(prefix string, at time.Time) string {
	ms := strconv.FormatInt(at.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + "-" + ms
}

// Validate returns an error if the receipt is structurally invalid.
func (r *Receipt) Validate() error {
	if r.ID == "" {
		return errors.New("receipt id is required")
	}
	if r.ReceiptNumber == "" {
		return errors.New("receipt number is required")
	}
	if err := r.Customer.Validate(); err != nil {
		return err
	}
	if len(r.Items) == 0 {
		return errors.New("receipt must have at least one line item")
	}
	return nil
}
