package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/models"
)

// Explorer runs the trip's place, route and schedule lookups.
type Explorer struct {
	gen    Generator
	city   string
	places *cache.Cache
}

// NewExplorer creates an explorer for city. Search results are cached for cacheTTL;
// a zero TTL disables caching.
func NewExplorer(gen Generator, city string, cacheTTL time.Duration) *Explorer {
	e := &Explorer{gen: gen, city: city}
	if cacheTTL > 0 {
		e.places = cache.New(cacheTTL, 2*cacheTTL)
	}
	return e
}

// City returns the city the explorer searches in.
func (e *Explorer) City() string {
	return e.city
}

// Replies are wrapped in an object because schema roots must be objects.

type placeReply struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Rating          float64 `json:"rating,omitempty"`
	UserRatingCount int     `json:"userRatingCount,omitempty"`
	GoogleMapsURI   string  `json:"googleMapsUri,omitempty"`
}

type placesReply struct {
	Places []placeReply `json:"places"`
}

type itemReply struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Notes    string `json:"notes,omitempty"`
}

type itemsReply struct {
	Items []itemReply `json:"items"`
}

type routeReply struct {
	EstimatedTime string `json:"estimatedTime"`
	Summary       string `json:"summary"`
	Details       string `json:"details"`
}

var placeSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"name":            {Type: jsonschema.String},
		"address":         {Type: jsonschema.String},
		"rating":          {Type: jsonschema.Number},
		"userRatingCount": {Type: jsonschema.Integer},
		"googleMapsUri":   {Type: jsonschema.String},
	},
	Required: []string{"name", "address"},
}

var placesSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"places": {Type: jsonschema.Array, Items: &placeSchema},
	},
	Required: []string{"places"},
}

var itemsSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"items": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"time":     {Type: jsonschema.String, Description: "Time in HH:MM format (24h)"},
					"title":    {Type: jsonschema.String},
					"location": {Type: jsonschema.String},
					"type":     {Type: jsonschema.String, Enum: itemTypeNames()},
					"notes":    {Type: jsonschema.String, Description: "Short tip or description"},
				},
				Required: []string{"time", "title", "location", "type"},
			},
		},
	},
	Required: []string{"items"},
}

var routeSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"estimatedTime": {Type: jsonschema.String},
		"summary":       {Type: jsonschema.String},
		"details":       {Type: jsonschema.String},
	},
	Required: []string{"estimatedTime", "summary", "details"},
}

func itemTypeNames() []string {
	names := make([]string, len(models.ItemTypes))
	for i, t := range models.ItemTypes {
		names[i] = string(t)
	}
	return names
}

// SearchPlaces recommends five places in the city matching query.
func (e *Explorer) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	key := normalizeQuery(query)
	if e.places != nil {
		if cached, ok := e.places.Get(key); ok {
			metrics.ObserveAICall("search_places", metrics.OutcomeCacheHit)
			return clonePlaces(cached.([]models.Place)), nil
		}
	}

	prompt := fmt.Sprintf("Recommend 5 top-rated places in %s for: %q.", e.city, query)

	var reply placesReply
	if err := e.generate(ctx, "search_places", prompt, placesSchema, &reply); err != nil {
		return nil, err
	}

	places := toPlaces(reply.Places)
	if e.places != nil {
		e.places.Set(key, clonePlaces(places), cache.DefaultExpiration)
	}
	return places, nil
}

// ParseItineraryText extracts the physical locations named in free text.
func (e *Explorer) ParseItineraryText(ctx context.Context, text string) ([]models.Place, error) {
	prompt := "Extract all physical location names from the following travel itinerary text.\nItinerary Text: " + text

	var reply placesReply
	if err := e.generate(ctx, "parse_itinerary", prompt, placesSchema, &reply); err != nil {
		return nil, err
	}
	return toPlaces(reply.Places), nil
}

// CalculateRoute suggests a public transport route between two places.
func (e *Explorer) CalculateRoute(ctx context.Context, start, end string) (*models.Route, error) {
	prompt := fmt.Sprintf(
		"Calculate the best public transport route in %s from %q to %q.\n"+
			"Provide the estimated time, summary (e.g., Subway Line 2), and brief details.",
		e.city, start, end,
	)

	var reply routeReply
	if err := e.generate(ctx, "calculate_route", prompt, routeSchema, &reply); err != nil {
		return nil, err
	}
	return &models.Route{
		Summary:       reply.Summary,
		Details:       reply.Details,
		EstimatedTime: reply.EstimatedTime,
	}, nil
}

// GenerateDailyItinerary plans one day from 10:00 to 20:00 around the given areas.
// Items without a title or a valid HH:MM time are dropped; unknown types become "other".
func (e *Explorer) GenerateDailyItinerary(ctx context.Context, day int, areas string) ([]*models.ItineraryItem, error) {
	prompt := fmt.Sprintf(
		"Create a one-day travel itinerary for %s.\n"+
			"The user wants to visit these areas: %q.\n"+
			"Start from 10:00 AM to 8:00 PM.\n"+
			"Each item should be logically spaced by 2-3 hours.\n"+
			"Types should vary between 'food', 'activity', 'shopping', 'transport'.",
		e.city, areas,
	)

	var reply itemsReply
	if err := e.generate(ctx, "generate_itinerary", prompt, itemsSchema, &reply); err != nil {
		return nil, err
	}

	items := make([]*models.ItineraryItem, 0, len(reply.Items))
	for _, r := range reply.Items {
		title := strings.TrimSpace(r.Title)
		if title == "" || models.ValidateClock(r.Time) != nil {
			slog.Warn("Dropping generated itinerary item", "time", r.Time, "title", r.Title)
			continue
		}
		itemType := models.ItemType(strings.ToLower(strings.TrimSpace(r.Type)))
		if !itemType.Valid() {
			itemType = models.ItemOther
		}
		items = append(items, &models.ItineraryItem{
			Day:      day,
			Time:     r.Time,
			Title:    title,
			Location: strings.TrimSpace(r.Location),
			Type:     itemType,
			Notes:    strings.TrimSpace(r.Notes),
		})
	}
	return items, nil
}

func (e *Explorer) generate(ctx context.Context, operation, prompt string, schema *jsonschema.Definition, out any) error {
	err := e.gen.GenerateJSON(ctx, prompt, schema, out)
	if err != nil {
		metrics.ObserveAICall(operation, metrics.OutcomeError)
		if !errors.Is(err, ErrDisabled) {
			slog.Error("Generative AI call failed", "operation", operation, "error", err)
		}
		return fmt.Errorf("%s: %w", operation, err)
	}
	metrics.ObserveAICall(operation, metrics.OutcomeOK)
	return nil
}

func toPlaces(replies []placeReply) []models.Place {
	places := make([]models.Place, 0, len(replies))
	for _, r := range replies {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		places = append(places, models.Place{
			Name:            r.Name,
			Address:         r.Address,
			Rating:          r.Rating,
			UserRatingCount: r.UserRatingCount,
			MapsURI:         r.GoogleMapsURI,
			Source:          models.SourceSearch,
		})
	}
	return places
}

func clonePlaces(places []models.Place) []models.Place {
	return append([]models.Place(nil), places...)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
