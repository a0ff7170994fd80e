package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

// CreateRepayment persists a new repayment to the database.
func (s *SQLiteStore) CreateRepayment(ctx context.Context, repayment *models.Repayment) error {
	// Generate ID if not set
	if repayment.ID == "" {
		repayment.ID = uuid.New().String()
	}
	if repayment.CreatedAt == 0 {
		repayment.CreatedAt = time.Now().UnixMilli()
	}

	var note interface{} = nil
	if repayment.Note != "" {
		note = repayment.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO repayments (id, from_id, to_id, amount, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		repayment.ID, repayment.FromID, repayment.ToID, repayment.Amount, note, repayment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert repayment: %w", err)
	}

	s.notify(storage.CollectionRepayments, storage.OpCreate, repayment.ID)
	return nil
}

// ListRepayments retrieves every repayment, newest first.
func (s *SQLiteStore) ListRepayments(ctx context.Context) ([]*models.Repayment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_id, to_id, amount, note, created_at
		 FROM repayments ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	defer rows.Close()

	var repayments []*models.Repayment
	for rows.Next() {
		repayment := &models.Repayment{}
		var note sql.NullString

		if err := rows.Scan(&repayment.ID, &repayment.FromID, &repayment.ToID,
			&repayment.Amount, &note, &repayment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan repayment: %w", err)
		}

		if note.Valid {
			repayment.Note = note.String
		}

		repayments = append(repayments, repayment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate repayments: %w", err)
	}

	return repayments, nil
}

// DeleteRepayment removes a repayment by ID.
func (s *SQLiteStore) DeleteRepayment(ctx context.Context, repaymentID string) error {
	if err := s.deleteByID(ctx, "repayments", "repayment", repaymentID); err != nil {
		return err
	}
	s.notify(storage.CollectionRepayments, storage.OpDelete, repaymentID)
	return nil
}
