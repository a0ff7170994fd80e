package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

const itineraryColumns = "id, day, time, title, location, type, notes"

// CreateItineraryItems inserts all items or none of them.
func (s *SQLiteStore) CreateItineraryItems(ctx context.Context, items []*models.ItineraryItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO itinerary_items ("+itineraryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare itinerary insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if _, err := stmt.ExecContext(ctx,
			item.ID, item.Day, item.Time, item.Title, item.Location, string(item.Type), item.Notes,
		); err != nil {
			return fmt.Errorf("failed to insert itinerary item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, item := range items {
		s.notify(storage.CollectionItinerary, storage.OpCreate, item.ID)
	}
	return nil
}

// GetItineraryItem retrieves an itinerary item by ID.
func (s *SQLiteStore) GetItineraryItem(ctx context.Context, itemID string) (*models.ItineraryItem, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itineraryColumns+" FROM itinerary_items WHERE id = ?", itemID,
	)
	item, err := scanItineraryItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("itinerary item %s: %w", itemID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary item: %w", err)
	}
	return item, nil
}

// UpdateItineraryItem overwrites every field of an existing item.
func (s *SQLiteStore) UpdateItineraryItem(ctx context.Context, item *models.ItineraryItem) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE itinerary_items SET day = ?, time = ?, title = ?, location = ?, type = ?, notes = ?
		 WHERE id = ?`,
		item.Day, item.Time, item.Title, item.Location, string(item.Type), item.Notes, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update itinerary item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated itinerary item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("itinerary item %s: %w", item.ID, storage.ErrNotFound)
	}

	s.notify(storage.CollectionItinerary, storage.OpUpdate, item.ID)
	return nil
}

// ListItinerary returns the items of one day, or of every day when day is 0.
func (s *SQLiteStore) ListItinerary(ctx context.Context, day int) ([]*models.ItineraryItem, error) {
	query := "SELECT " + itineraryColumns + " FROM itinerary_items"
	var args []any
	if day > 0 {
		query += " WHERE day = ?"
		args = append(args, day)
	}
	query += " ORDER BY day, time, title, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list itinerary: %w", err)
	}
	defer rows.Close()

	var items []*models.ItineraryItem
	for rows.Next() {
		item, err := scanItineraryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itinerary: %w", err)
	}

	return items, nil
}

// DeleteItineraryItem removes an itinerary item by ID.
func (s *SQLiteStore) DeleteItineraryItem(ctx context.Context, itemID string) error {
	if err := s.deleteByID(ctx, "itinerary_items", "itinerary item", itemID); err != nil {
		return err
	}
	s.notify(storage.CollectionItinerary, storage.OpDelete, itemID)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItineraryItem(row scanner) (*models.ItineraryItem, error) {
	item := &models.ItineraryItem{}
	var itemType string
	if err := row.Scan(&item.ID, &item.Day, &item.Time, &item.Title, &item.Location, &itemType, &item.Notes); err != nil {
		return nil, err
	}
	item.Type = models.ItemType(itemType)
	return item, nil
}
