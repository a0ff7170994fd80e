package models

// PlaceSource records where a place came from.
type PlaceSource string

const (
	SourceItinerary PlaceSource = "itinerary"
	SourceSearch    PlaceSource = "search"
)

// Place represents a point of interest shown in the explorer.
type Place struct {
	Name            string
	Address         string
	Rating          float64
	UserRatingCount int
	MapsURI         string
	Day             int // set for places derived from itinerary items
	Source          PlaceSource
}

// Route represents a suggested public-transport route between two places.
type Route struct {
	Summary       string // e.g. "Subway Line 2 (20 mins)"
	Details       string // e.g. "Walk to Station A -> Take Line 2 -> Walk to dest"
	EstimatedTime string
}
