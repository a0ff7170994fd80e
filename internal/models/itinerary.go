package models

import (
	"fmt"
	"time"
)

// ItemType categorizes an itinerary entry.
type ItemType string

const (
	ItemFood      ItemType = "food"
	ItemActivity  ItemType = "activity"
	ItemShopping  ItemType = "shopping"
	ItemTransport ItemType = "transport"
	ItemOther     ItemType = "other"
)

// ItemTypes lists every valid item type.
var ItemTypes = []ItemType{ItemFood, ItemActivity, ItemShopping, ItemTransport, ItemOther}

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	for _, v := range ItemTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ItineraryItem represents one planned stop on a given day of the trip.
type ItineraryItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Day is the 1-based trip day.
	Day int

	// Time is the start time in 24h "HH:MM" format.
	Time string

	Title    string
	Location string
	Type     ItemType
	Notes    string
}

// ValidateClock checks that s is a 24h "HH:MM" time.
func ValidateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil || len(s) != 5 {
		return fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return nil
}
