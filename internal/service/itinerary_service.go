package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
	"github.com/mmynk/tripmate/pkg/api"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

// ItineraryService implements the Connect ItineraryService
type ItineraryService struct {
	apiconnect.UnimplementedItineraryServiceHandler
	store    storage.Store
	explorer *genai.Explorer
	days     int
}

// NewItineraryService creates a new ItineraryService planning the days of trip.
func NewItineraryService(store storage.Store, explorer *genai.Explorer, trip *config.Trip) *ItineraryService {
	return &ItineraryService{store: store, explorer: explorer, days: trip.Days}
}

// ListItinerary returns the items of one day, or all days when day is 0.
func (s *ItineraryService) ListItinerary(ctx context.Context, req *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	if req.Msg.Day < 0 || int(req.Msg.Day) > s.days {
		return nil, invalidArgument(fmt.Errorf("invalid day %d: must be between 0 and %d", req.Msg.Day, s.days))
	}

	items, err := s.store.ListItinerary(ctx, int(req.Msg.Day))
	if err != nil {
		slog.Error("ListItinerary failed", "day", req.Msg.Day, "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(&api.ListItineraryResponse{Items: itemsToAPI(items)}), nil
}

// AddItineraryItem adds one item to a day. The type defaults to activity.
func (s *ItineraryService) AddItineraryItem(ctx context.Context, req *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	slog.Info("AddItineraryItem request received", "day", req.Msg.Day, "time", req.Msg.Time, "title", req.Msg.Title)

	item := &models.ItineraryItem{
		Day:      int(req.Msg.Day),
		Time:     strings.TrimSpace(req.Msg.Time),
		Title:    strings.TrimSpace(req.Msg.Title),
		Location: strings.TrimSpace(req.Msg.Location),
		Type:     models.ItemType(req.Msg.Type),
		Notes:    strings.TrimSpace(req.Msg.Notes),
	}
	if item.Type == "" {
		item.Type = models.ItemActivity
	}
	if err := validateItem(item, s.days); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.store.CreateItineraryItems(ctx, []*models.ItineraryItem{item}); err != nil {
		slog.Error("AddItineraryItem failed", "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.AddItineraryItemResponse{Item: itemToAPI(item)}), nil
}

// UpdateItineraryItem replaces every field of an existing item.
func (s *ItineraryService) UpdateItineraryItem(ctx context.Context, req *connect.Request[api.UpdateItineraryItemRequest]) (*connect.Response[api.UpdateItineraryItemResponse], error) {
	in := req.Msg.Item
	if in == nil || in.ID == "" {
		return nil, invalidArgument(errors.New("item with id is required"))
	}
	slog.Info("UpdateItineraryItem request received", "item_id", in.ID)

	item := &models.ItineraryItem{
		ID:       in.ID,
		Day:      int(in.Day),
		Time:     strings.TrimSpace(in.Time),
		Title:    strings.TrimSpace(in.Title),
		Location: strings.TrimSpace(in.Location),
		Type:     models.ItemType(in.Type),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if err := validateItem(item, s.days); err != nil {
		return nil, invalidArgument(err)
	}

	if err := s.store.UpdateItineraryItem(ctx, item); err != nil {
		slog.Error("UpdateItineraryItem failed", "item_id", item.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.UpdateItineraryItemResponse{Item: itemToAPI(item)}), nil
}

// DeleteItineraryItem removes an item by ID.
func (s *ItineraryService) DeleteItineraryItem(ctx context.Context, req *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	slog.Info("DeleteItineraryItem request received", "item_id", req.Msg.ID)

	if req.Msg.ID == "" {
		return nil, invalidArgument(errors.New("id is required"))
	}
	if err := s.store.DeleteItineraryItem(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteItineraryItem failed", "item_id", req.Msg.ID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.DeleteItineraryItemResponse{}), nil
}

// AutoSchedule asks the AI for a day plan around the given areas and stores
// every generated item in one batch.
func (s *ItineraryService) AutoSchedule(ctx context.Context, req *connect.Request[api.AutoScheduleRequest]) (*connect.Response[api.AutoScheduleResponse], error) {
	slog.Info("AutoSchedule request received", "day", req.Msg.Day, "areas", req.Msg.Areas)

	if err := validateDay(int(req.Msg.Day), s.days); err != nil {
		return nil, invalidArgument(err)
	}
	areas := strings.TrimSpace(req.Msg.Areas)
	if areas == "" {
		return nil, invalidArgument(errors.New("areas are required"))
	}

	items, err := s.explorer.GenerateDailyItinerary(ctx, int(req.Msg.Day), areas)
	if err != nil {
		return nil, aiError(err)
	}

	if err := s.store.CreateItineraryItems(ctx, items); err != nil {
		slog.Error("AutoSchedule failed to store items", "error", err)
		return nil, storeError(err)
	}

	slog.Info("AutoSchedule completed", "day", req.Msg.Day, "items", len(items))
	return connect.NewResponse(&api.AutoScheduleResponse{Items: itemsToAPI(items)}), nil
}

// WatchItinerary sends the itinerary immediately and again after every change.
func (s *ItineraryService) WatchItinerary(ctx context.Context, req *connect.Request[api.WatchItineraryRequest], stream *connect.ServerStream[api.ListItineraryResponse]) error {
	day := int(req.Msg.Day)
	if day < 0 || day > s.days {
		return invalidArgument(fmt.Errorf("invalid day %d: must be between 0 and %d", day, s.days))
	}

	changes, cancel := s.store.Subscribe(storage.CollectionItinerary)
	defer cancel()

	send := func() error {
		items, err := s.store.ListItinerary(ctx, day)
		if err != nil {
			slog.Error("WatchItinerary reload failed", "error", err)
			return storeError(err)
		}
		return stream.Send(&api.ListItineraryResponse{Items: itemsToAPI(items)})
	}

	if err := send(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return connect.NewError(connect.CodeUnavailable, errors.New("store closed"))
			}
			if err := send(); err != nil {
				return err
			}
		}
	}
}

func validateDay(day, days int) error {
	if day < 1 || day > days {
		return fmt.Errorf("invalid day %d: must be between 1 and %d", day, days)
	}
	return nil
}

func validateItem(item *models.ItineraryItem, days int) error {
	if err := validateDay(item.Day, days); err != nil {
		return err
	}
	if err := models.ValidateClock(item.Time); err != nil {
		return err
	}
	if item.Title == "" {
		return errors.New("title is required")
	}
	if !item.Type.Valid() {
		return fmt.Errorf("invalid type '%s': must be one of %v", item.Type, models.ItemTypes)
	}
	return nil
}
