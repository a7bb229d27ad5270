package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zeshan/pressbook/internal/db"
	"github.com/zeshan/pressbook/internal/domain"
)

// ReceiptRepo is a SQLite implementation of ReceiptRepository
type ReceiptRepo struct {
	db *db.DB
}

// NewReceiptRepo creates a new ReceiptRepo
func NewReceiptRepo(database *db.DB) *ReceiptRepo {
	return &ReceiptRepo{db: database}
}

// Create inserts a receipt and its line items in one transaction
func (r *ReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	if err := receipt.Validate(); err != nil {
		return fmt.Errorf("invalid receipt: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var snapName, snapTagline, snapAddress, snapContact interface{}
	if snap := receipt.SettingsSnapshot; snap != nil {
		snapName = snap.Name
		snapTagline = snap.Tagline
		snapAddress = snap.Address
		snapContact = snap.Contact
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (
			id, receipt_number, date,
			customer_name, customer_phone, customer_email, customer_address,
			subtotal, tax, discount, total,
			advance_payment, remaining_balance,
			payment_method, status, notes,
			snapshot_name, snapshot_tagline, snapshot_address, snapshot_contact
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		receipt.ID,
		receipt.ReceiptNumber,
		receipt.Date.Format(timeLayout),
		receipt.Customer.Name,
		receipt.Customer.Phone,
		receipt.Customer.Email,
		receipt.Customer.Address,
		receipt.Subtotal,
		receipt.Tax,
		receipt.Discount,
		receipt.Total,
		receipt.AdvancePayment,
		receipt.RemainingBalance,
		string(receipt.PaymentMethod),
		string(receipt.Status),
		receipt.Notes,
		snapName,
		snapTagline,
		snapAddress,
		snapContact,
	)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	for i, item := range receipt.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO receipt_items (id, receipt_id, position, description, specs, quantity, rate, total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			item.ID,
			receipt.ID,
			i,
			item.Description,
			item.Specs,
			item.Quantity,
			item.Rate,
			item.Total,
		)
		if err != nil {
			return fmt.Errorf("failed to create line item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit receipt: %w", err)
	}

	return nil
}

// GetByID retrieves a receipt with its line items
func (r *ReceiptRepo) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	row := r.db.QueryRowContext(ctx, selectReceipts+" WHERE id = ?", id)

	receipt, err := scanReceipt(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if err := r.loadItems(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

// List retrieves the full collection newest-first. Rows that fail to
// deserialize are skipped rather than failing the whole load.
func (r *ReceiptRepo) List(ctx context.Context) ([]*domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, selectReceipts+" ORDER BY rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := make([]*domain.Receipt, 0)
	for rows.Next() {
		receipt, err := scanReceipt(rows.Scan)
		if err != nil {
			// Malformed row; treat as absent data, not a fatal error
			continue
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipts: %w", err)
	}

	for _, receipt := range receipts {
		if err := r.loadItems(ctx, receipt); err != nil {
			return nil, err
		}
	}

	return receipts, nil
}

// Delete removes exactly the receipt with the given id and its line items
func (r *ReceiptRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM receipt_items WHERE receipt_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete line items: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM receipts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrReceiptNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

// Count returns the number of stored receipts
func (r *ReceiptRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM receipts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	return count, nil
}

const selectReceipts = `
	SELECT id, receipt_number, date,
	       customer_name, customer_phone, customer_email, customer_address,
	       subtotal, tax, discount, total,
	       advance_payment, remaining_balance,
	       payment_method, status, notes,
	       snapshot_name, snapshot_tagline, snapshot_address, snapshot_contact
	FROM receipts`

// scanReceipt reads one receipt row via the given scan function
func scanReceipt(scan func(dest ...interface{}) error) (*domain.Receipt, error) {
	receipt := &domain.Receipt{}
	var date, paymentMethod, status string
	var phone, email, address, notes sql.NullString
	var snapName, snapTagline, snapAddress, snapContact sql.NullString

	err := scan(
		&receipt.ID,
		&receipt.ReceiptNumber,
		&date,
		&receipt.Customer.Name,
		&phone,
		&email,
		&address,
		&receipt.Subtotal,
		&receipt.Tax,
		&receipt.Discount,
		&receipt.Total,
		&receipt.AdvancePayment,
		&receipt.RemainingBalance,
		&paymentMethod,
		&status,
		&notes,
		&snapName,
		&snapTagline,
		&snapAddress,
		&snapContact,
	)
	if err != nil {
		return nil, err
	}

	if receipt.Date, err = parseTime(date); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	receipt.Customer.Phone = phone.String
	receipt.Customer.Email = email.String
	receipt.Customer.Address = address.String
	receipt.PaymentMethod = domain.PaymentMethod(paymentMethod)
	receipt.Status = domain.ReceiptStatus(status)
	receipt.Notes = notes.String

	// The snapshot is present only when a name was stored; rows predating
	// snapshot support stay nil and render with live settings.
	if snapName.Valid {
		receipt.SettingsSnapshot = &domain.PressSettings{
			Name:    snapName.String,
			Tagline: snapTagline.String,
			Address: snapAddress.String,
			Contact: snapContact.String,
		}
	}

	return receipt, nil
}

// loadItems attaches the receipt's line items in stored order
func (r *ReceiptRepo) loadItems(ctx context.Context, receipt *domain.Receipt) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, specs, quantity, rate, total
		FROM receipt_items
		WHERE receipt_id = ?
		ORDER BY position
	`, receipt.ID)
	if err != nil {
		return fmt.Errorf("failed to load line items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var item domain.LineItem
		var specs sql.NullString
		if err := rows.Scan(&item.ID, &item.Description, &specs, &item.Quantity, &item.Rate, &item.Total); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}
		item.Specs = specs.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating line items: %w", err)
	}

	receipt.Items = items
	return nil
}
