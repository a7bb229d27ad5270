// Package render produces the fixed printable receipt template: branding
// block, customer block, line-item table, totals and signature area.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeshan/pressbook/internal/domain"
)

const pageWidth = 78

// Receipt renders the printable template. The press identity comes from
// the receipt's settings snapshot so historical receipts are unaffected
// by later settings edits; `live` is used only for rows predating
// snapshot support.
func Receipt(r *domain.Receipt, live domain.PressSettings) string {
	press := live
	if r.SettingsSnapshot != nil {
		press = *r.SettingsSnapshot
	}

	var b strings.Builder
	rule := strings.Repeat("=", pageWidth)
	thin := strings.Repeat("-", pageWidth)

	// Branding
	b.WriteString(rule + "\n")
	b.WriteString(center(press.Name) + "\n")
	if press.Tagline != "" {
		b.WriteString(center(press.Tagline) + "\n")
	}
	if press.Address != "" {
		b.WriteString(center(press.Address) + "\n")
	}
	if press.Contact != "" {
		b.WriteString(center(press.Contact) + "\n")
	}
	b.WriteString(rule + "\n\n")

	// Receipt header
	b.WriteString(fmt.Sprintf("%-39s%39s\n",
		"Receipt: "+r.ReceiptNumber,
		"Date: "+r.Date.Format("2006-01-02 15:04"),
	))
	b.WriteString("\n")

	// Customer block
	b.WriteString("Customer\n")
	b.WriteString(thin + "\n")
	b.WriteString(fmt.Sprintf("  %s\n", r.Customer.Name))
	if r.Customer.Phone != "" {
		b.WriteString(fmt.Sprintf("  %s\n", r.Customer.Phone))
	}
	if r.Customer.Email != "" {
		b.WriteString(fmt.Sprintf("  %s\n", r.Customer.Email))
	}
	if r.Customer.Address != "" {
		b.WriteString(fmt.Sprintf("  %s\n", r.Customer.Address))
	}
	b.WriteString(fmt.Sprintf("  Payment: %s\n", r.PaymentMethod))
	b.WriteString("\n")

	// Line items
	b.WriteString(fmt.Sprintf("%-3s %-38s %8s %10s %12s\n", "#", "Job", "Qty", "Rate", "Total"))
	b.WriteString(thin + "\n")
	for i, item := range r.Items {
		desc := item.Description
		if item.Specs != "" {
			desc = fmt.Sprintf("%s (%s)", item.Description, item.Specs)
		}
		b.WriteString(fmt.Sprintf("%-3d %-38s %8.0f %10.0f %12.0f\n",
			i+1, truncate(desc, 38), item.Quantity, item.Rate, item.Total))
	}
	b.WriteString(thin + "\n")

	// Totals
	writeAmount(&b, "Subtotal", r.Subtotal)
	if r.Discount != 0 {
		writeAmount(&b, "Discount", -r.Discount)
	}
	if r.Tax != 0 {
		writeAmount(&b, "Tax", r.Tax)
	}
	writeAmount(&b, "NET TOTAL (PKR)", r.Total)
	writeAmount(&b, "Advance received", -r.AdvancePayment)
	writeAmount(&b, "Balance due", r.RemainingBalance)
	if r.RemainingBalance <= 0 {
		b.WriteString("\n" + center("*** PAYMENT RECEIVED IN FULL ***") + "\n")
	}

	if r.Notes != "" {
		b.WriteString("\nNotes: " + r.Notes + "\n")
	}

	// Signature area
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-39s%39s\n",
		"______________________",
		"______________________",
	))
	b.WriteString(fmt.Sprintf("%-39s%39s\n",
		"Customer signature",
		"For "+press.Name,
	))
	b.WriteString("\n" + rule + "\n")

	return b.String()
}

// Export writes the printable template to the output directory and
// returns the written path
func Export(r *domain.Receipt, live domain.PressSettings, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("%s-%s.txt", r.ReceiptNumber, r.Date.Format("20060102")))
	if err := os.WriteFile(path, []byte(Receipt(r, live)), 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path, nil
}

func writeAmount(b *strings.Builder, label string, amount float64) {
	b.WriteString(fmt.Sprintf("%58s %19.0f\n", label+":", amount))
}

func center(s string) string {
	pad := (pageWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
