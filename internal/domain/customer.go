package domain

import (
	"errors"
	"strings"
)

// Customer holds free-form contact details for the person placing an order.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Validate returns an error if the customer is missing required fields.
// Only the name is required; the rest is optional contact info.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("customer name is required")
	}
	return nil
}
