package entity

// LocationSource records how a location preference was obtained.
type LocationSource string

const (
	LocationSourceSaved   LocationSource = "saved"
	LocationSourceGPS     LocationSource = "gps"
	LocationSourceSearch  LocationSource = "search"
	LocationSourceDefault LocationSource = "default"
)

// LocationPreference is the location the client currently uses for prayer times.
type LocationPreference struct {
	Coordinates Coordinates    `json:"coordinates"`
	DisplayName string         `json:"display_name"`
	Source      LocationSource `json:"source"`
}

// Default location used when no preference is saved and geolocation fails.
const (
	DefaultLatitude    = 51.5074
	DefaultLongitude   = -0.1278
	DefaultDisplayName = "London, UK"
)

// DefaultLocation returns the London fallback. It is never persisted.
func DefaultLocation() LocationPreference {
	return LocationPreference{
		Coordinates: Coordinates{Latitude: DefaultLatitude, Longitude: DefaultLongitude},
		DisplayName: DefaultDisplayName,
		Source:      LocationSourceDefault,
	}
}
