package models

// Traveler represents one participant of the trip.
// The traveler set is fixed for the lifetime of the server.
type Traveler struct {
	// ID is the opaque identifier referenced by expenses (e.g. "me").
	ID string `yaml:"id"`

	// Name is the display name.
	Name string `yaml:"name"`
}

// TravelerIDs returns the ids of travelers in order.
func TravelerIDs(travelers []Traveler) []string {
	ids := make([]string, len(travelers))
	for i, t := range travelers {
		ids[i] = t.ID
	}
	return ids
}
