package repository

import (
	"context"

	"github.com/zeshan/pressbook/internal/domain"
)

// ReceiptRepository manages the persisted receipt collection.
// Receipts are immutable once created: there is no update operation,
// only creation and removal by id.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	// List returns the full collection newest-first (reverse insertion order).
	List(ctx context.Context) ([]*domain.Receipt, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// SettingsRepository manages the singleton press identity record.
type SettingsRepository interface {
	// Get returns the persisted settings, or the documented defaults
	// when nothing has been saved yet.
	Get(ctx context.Context) (domain.PressSettings, error)
	Save(ctx context.Context, settings domain.PressSettings) error
}
