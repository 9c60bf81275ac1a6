package usecase

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// Resolution is the outcome of resolving the effective location.
type Resolution struct {
	Preference entity.LocationPreference

	// DisplayName delivers the final display name exactly once and is then closed.
	// For GPS resolutions it arrives after reverse geocoding and after the preference
	// has been persisted. For every other source it is ready immediately.
	DisplayName <-chan string
}

// LocationUsecase decides which coordinates the client uses
type LocationUsecase interface {
	// Resolve walks the chain saved preference, device geolocation, London default.
	Resolve(ctx context.Context) (*Resolution, error)

	// Search geocodes query, persists the first match and returns it.
	Search(ctx context.Context, query string) (*entity.LocationPreference, error)

	// Forget clears the saved preference so the next Resolve retries geolocation.
	Forget(ctx context.Context) error
}
