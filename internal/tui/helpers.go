package tui

import "fmt"

// formatMoney formats rupee amounts as "Rs X,XXX" with comma separators.
// Receipts deal in whole rupees, so fractions are rounded for display.
func formatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.0f", amount)

	// Add commas to the integer part
	result := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}

	prefix := "Rs "
	if negative {
		prefix = "-Rs "
	}
	return prefix + string(result)
}

// truncateStr truncates a string to the specified length with ellipsis
func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
