// Package storage provides abstractions for persistent trip data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripmate/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for trip storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Every successful write is announced to subscribers, which lets callers keep
// derived views (balances, settlement plans) in sync with the data.
type Store interface {
	// CreateExpense persists a new expense.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns all expenses, newest first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateRepayment persists a repayment between two travelers.
	CreateRepayment(ctx context.Context, repayment *models.Repayment) error

	// ListRepayments returns all repayments, newest first.
	ListRepayments(ctx context.Context) ([]*models.Repayment, error)

	// DeleteRepayment removes a repayment by ID.
	DeleteRepayment(ctx context.Context, repaymentID string) error

	// CreateItineraryItems persists the items in a single transaction.
	CreateItineraryItems(ctx context.Context, items []*models.ItineraryItem) error

	// GetItineraryItem retrieves an itinerary item by its ID.
	GetItineraryItem(ctx context.Context, itemID string) (*models.ItineraryItem, error)

	// UpdateItineraryItem replaces an existing itinerary item.
	UpdateItineraryItem(ctx context.Context, item *models.ItineraryItem) error

	// ListItinerary returns the items of one day, or of every day when day is 0,
	// ordered by day then time.
	ListItinerary(ctx context.Context, day int) ([]*models.ItineraryItem, error)

	// DeleteItineraryItem removes an itinerary item by ID.
	DeleteItineraryItem(ctx context.Context, itemID string) error

	// Subscribe registers for change notifications on the given collections,
	// or on all of them when none are given.
	// The returned func cancels the subscription and closes the channel.
	Subscribe(collections ...Collection) (<-chan Change, func())

	// Close releases any resources held by the store.
	Close() error
}
