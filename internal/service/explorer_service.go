package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/internal/genai"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
	"github.com/mmynk/tripmate/pkg/api"
	"github.com/mmynk/tripmate/pkg/api/apiconnect"
)

// maxItineraryTextBytes bounds uploaded itinerary text.
const maxItineraryTextBytes = 64 << 10

// ExplorerService implements the Connect ExplorerService
type ExplorerService struct {
	apiconnect.UnimplementedExplorerServiceHandler
	store    storage.Store
	explorer *genai.Explorer
}

// NewExplorerService creates a new ExplorerService.
func NewExplorerService(store storage.Store, explorer *genai.Explorer) *ExplorerService {
	return &ExplorerService{store: store, explorer: explorer}
}

// SearchPlaces recommends places in the trip city.
func (s *ExplorerService) SearchPlaces(ctx context.Context, req *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error) {
	query := strings.TrimSpace(req.Msg.Query)
	slog.Info("SearchPlaces request received", "query", query)
	if query == "" {
		return nil, invalidArgument(errors.New("query is required"))
	}

	places, err := s.explorer.SearchPlaces(ctx, query)
	if err != nil {
		return nil, aiError(err)
	}
	return connect.NewResponse(&api.SearchPlacesResponse{Places: placesToAPI(places)}), nil
}

// ParseItineraryFile extracts places from uploaded itinerary text.
func (s *ExplorerService) ParseItineraryFile(ctx context.Context, req *connect.Request[api.ParseItineraryFileRequest]) (*connect.Response[api.ParseItineraryFileResponse], error) {
	slog.Info("ParseItineraryFile request received", "bytes", len(req.Msg.Text))
	if strings.TrimSpace(req.Msg.Text) == "" {
		return nil, invalidArgument(errors.New("text is required"))
	}
	if len(req.Msg.Text) > maxItineraryTextBytes {
		return nil, invalidArgument(fmt.Errorf("text is %d bytes, limit is %d", len(req.Msg.Text), maxItineraryTextBytes))
	}

	places, err := s.explorer.ParseItineraryText(ctx, req.Msg.Text)
	if err != nil {
		return nil, aiError(err)
	}
	return connect.NewResponse(&api.ParseItineraryFileResponse{Places: placesToAPI(places)}), nil
}

// ItineraryPlaces lists the planned stops as places. No AI call is made.
func (s *ExplorerService) ItineraryPlaces(ctx context.Context, req *connect.Request[api.ItineraryPlacesRequest]) (*connect.Response[api.ItineraryPlacesResponse], error) {
	items, err := s.store.ListItinerary(ctx, 0)
	if err != nil {
		slog.Error("ItineraryPlaces failed", "error", err)
		return nil, storeError(err)
	}

	places := make([]models.Place, len(items))
	for i, item := range items {
		address := item.Location
		if address == "" {
			address = s.explorer.City()
		}
		places[i] = models.Place{
			Name:    item.Title,
			Address: address,
			Day:     item.Day,
			Source:  models.SourceItinerary,
		}
	}
	return connect.NewResponse(&api.ItineraryPlacesResponse{Places: placesToAPI(places)}), nil
}

// CalculateRoute suggests a public transport route between two places.
func (s *ExplorerService) CalculateRoute(ctx context.Context, req *connect.Request[api.CalculateRouteRequest]) (*connect.Response[api.CalculateRouteResponse], error) {
	start, end := strings.TrimSpace(req.Msg.Start), strings.TrimSpace(req.Msg.End)
	slog.Info("CalculateRoute request received", "start", start, "end", end)
	if start == "" || end == "" {
		return nil, invalidArgument(errors.New("start and end are required"))
	}

	route, err := s.explorer.CalculateRoute(ctx, start, end)
	if err != nil {
		return nil, aiError(err)
	}
	return connect.NewResponse(&api.CalculateRouteResponse{Route: &api.Route{
		Summary:       route.Summary,
		Details:       route.Details,
		EstimatedTime: route.EstimatedTime,
	}}), nil
}
