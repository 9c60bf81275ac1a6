package service

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// Geolocator obtains the device's current position.
//
// Failures are reported with the domain errors ErrCapabilityUnavailable,
// ErrPermissionDenied or ErrPositionUnavailable.
type Geolocator interface {
	Locate(ctx context.Context) (entity.Coordinates, error)
}
