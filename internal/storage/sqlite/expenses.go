package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

// CreateExpense persists a new expense together with its beneficiaries.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().UnixMilli()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, payer_id, amount, description, created_at) VALUES (?, ?, ?, ?, ?)",
		expense.ID, expense.PayerID, expense.Amount, expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, travelerID := range expense.SharedWith {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, traveler_id, position) VALUES (?, ?, ?)",
			expense.ID, travelerID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notify(storage.CollectionExpenses, storage.OpCreate, expense.ID)
	return nil
}

// GetExpense retrieves an expense by ID, including its beneficiaries.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, payer_id, amount, description, created_at FROM expenses WHERE id = ?",
		expenseID,
	).Scan(&expense.ID, &expense.PayerID, &expense.Amount, &expense.Description, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT traveler_id FROM expense_shares WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var travelerID string
		if err := rows.Scan(&travelerID); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		expense.SharedWith = append(expense.SharedWith, travelerID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return expense, nil
}

// ListExpenses returns every expense, newest first.
// Beneficiaries are loaded with a single query and joined in memory.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, payer_id, amount, description, created_at FROM expenses ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.PayerID, &expense.Amount, &expense.Description, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	shareRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, traveler_id FROM expense_shares ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var expenseID, travelerID string
		if err := shareRows.Scan(&expenseID, &travelerID); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.SharedWith = append(expense.SharedWith, travelerID)
		}
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID. Its shares go with it.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.deleteByID(ctx, "expenses", "expense", expenseID); err != nil {
		return err
	}
	s.notify(storage.CollectionExpenses, storage.OpDelete, expenseID)
	return nil
}
