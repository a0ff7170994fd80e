package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tripmate/internal/calculator"
	"github.com/mmynk/tripmate/internal/models"
)

// Trip describes the single trip this server plans.
type Trip struct {
	ID              string
	Name            string
	City            string
	BaseCurrency    string
	DisplayCurrency string

	// Days is the trip length; itinerary days run from 1 to Days.
	Days int

	// ExchangeRate converts base-currency amounts to the display currency.
	ExchangeRate decimal.Decimal

	Travelers []models.Traveler
}

// tripFile is the YAML layout of a trip file. Every field is optional.
type tripFile struct {
	ID              string            `yaml:"id"`
	Name            string            `yaml:"name"`
	City            string            `yaml:"city"`
	BaseCurrency    string            `yaml:"base_currency"`
	DisplayCurrency string            `yaml:"display_currency"`
	ExchangeRate    string            `yaml:"exchange_rate"`
	Days            int               `yaml:"days"`
	Travelers       []models.Traveler `yaml:"travelers"`
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// DefaultTrip returns the built-in trip used when no trip file exists.
func DefaultTrip() *Trip {
	return &Trip{
		ID:              "seoul-trip-2024",
		Name:            "Seoul Trip",
		City:            "Seoul",
		BaseCurrency:    "KRW",
		DisplayCurrency: "TWD",
		Days:            5,
		ExchangeRate:    decimal.RequireFromString("0.024"),
		Travelers: []models.Traveler{
			{ID: "me", Name: "Me"},
			{ID: "friend1", Name: "Friend"},
		},
	}
}

// LoadTrip reads the trip file at path. A missing file yields DefaultTrip;
// fields absent from the file keep their default values.
func LoadTrip(path string) (*Trip, error) {
	trip := DefaultTrip()
	if path == "" {
		return trip, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("Trip file not found, using built-in trip", "path", path)
		return trip, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read trip file: %w", err)
	}

	return ParseTrip(data)
}

// ParseTrip decodes a YAML trip description over the defaults and validates it.
func ParseTrip(data []byte) (*Trip, error) {
	trip := DefaultTrip()

	var file tripFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse trip file: %w", err)
	}

	if file.ID != "" {
		trip.ID = file.ID
	}
	if file.Name != "" {
		trip.Name = file.Name
	}
	if file.City != "" {
		trip.City = file.City
	}
	if file.BaseCurrency != "" {
		trip.BaseCurrency = strings.ToUpper(file.BaseCurrency)
	}
	if file.DisplayCurrency != "" {
		trip.DisplayCurrency = strings.ToUpper(file.DisplayCurrency)
	}
	if file.ExchangeRate != "" {
		rate, err := calculator.ParseRate(file.ExchangeRate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse trip file: %w", err)
		}
		trip.ExchangeRate = rate
	}
	if file.Days != 0 {
		trip.Days = file.Days
	}
	if len(file.Travelers) > 0 {
		trip.Travelers = file.Travelers
	}

	if err := trip.Validate(); err != nil {
		return nil, err
	}
	return trip, nil
}

// Validate checks the trip and fills in missing traveler names.
func (t *Trip) Validate() error {
	var errs []string

	if t.City == "" {
		errs = append(errs, "city cannot be empty")
	}
	if !currencyCode.MatchString(t.BaseCurrency) {
		errs = append(errs, fmt.Sprintf("invalid base currency '%s': must be a 3-letter code", t.BaseCurrency))
	}
	if !currencyCode.MatchString(t.DisplayCurrency) {
		errs = append(errs, fmt.Sprintf("invalid display currency '%s': must be a 3-letter code", t.DisplayCurrency))
	}
	if t.Days < 1 {
		errs = append(errs, fmt.Sprintf("invalid days %d: must be at least 1", t.Days))
	}
	if !t.ExchangeRate.IsPositive() {
		errs = append(errs, fmt.Sprintf("invalid exchange rate %s: must be positive", t.ExchangeRate))
	}

	if len(t.Travelers) == 0 {
		errs = append(errs, "at least one traveler is required")
	}
	seen := make(map[string]bool, len(t.Travelers))
	for i := range t.Travelers {
		tr := &t.Travelers[i]
		tr.ID = strings.TrimSpace(tr.ID)
		if tr.ID == "" {
			errs = append(errs, fmt.Sprintf("traveler %d has no id", i+1))
			continue
		}
		if seen[tr.ID] {
			errs = append(errs, fmt.Sprintf("duplicate traveler id '%s'", tr.ID))
		}
		seen[tr.ID] = true
		if tr.Name == "" {
			tr.Name = tr.ID
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("trip validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// TravelerIDs returns the traveler ids in file order.
func (t *Trip) TravelerIDs() []string {
	return models.TravelerIDs(t.Travelers)
}

// HasTraveler reports whether id names a traveler of the trip.
func (t *Trip) HasTraveler(id string) bool {
	for _, tr := range t.Travelers {
		if tr.ID == id {
			return true
		}
	}
	return false
}

// TravelerName returns the display name for id, or id itself when unknown.
func (t *Trip) TravelerName(id string) string {
	for _, tr := range t.Travelers {
		if tr.ID == id {
			return tr.Name
		}
	}
	return id
}
