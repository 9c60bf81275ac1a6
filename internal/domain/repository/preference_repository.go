// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"alvaqth/internal/domain/entity"
	"alvaqth/internal/errors"
)

// ErrPreferenceNotFound is returned when no location preference has been saved.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository persists the user's chosen location across restarts.
type PreferenceRepository interface {
	// Get returns the saved preference or ErrPreferenceNotFound.
	// A preference saved without a display name comes back with an empty DisplayName.
	Get(ctx context.Context) (*entity.LocationPreference, error)

	// Set overwrites the saved preference. Coordinates are always stored together.
	Set(ctx context.Context, pref *entity.LocationPreference) error

	// Clear removes the saved preference. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
