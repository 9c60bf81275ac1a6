package service

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// GeocodeResult is a single forward-geocoding match.
type GeocodeResult struct {
	Coordinates entity.Coordinates
	// DisplayName is the provider's full comma separated label.
	DisplayName string
}

// Geocoder converts between place names and coordinates.
type Geocoder interface {
	// Search returns at most one match for a free-text query. No match yields an empty slice.
	Search(ctx context.Context, query string) ([]GeocodeResult, error)

	// Reverse returns the most specific settlement name for coordinates,
	// or "Unknown Location" when the provider knows none.
	Reverse(ctx context.Context, coords entity.Coordinates) (string, error)
}
