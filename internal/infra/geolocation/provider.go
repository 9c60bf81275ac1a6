// Package geolocation supplies the device position to the location resolver.
package geolocation

import (
	"context"
	"log/slog"
	"net/http"

	"alvaqth/config"
	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"

	"go.uber.org/fx"
)

// unavailableLocator is used when the device offers no position source
type unavailableLocator struct{}

func (unavailableLocator) Locate(context.Context) (entity.Coordinates, error) {
	return entity.Coordinates{}, domainerrors.ErrCapabilityUnavailable
}

// staticLocator always reports the configured position
type staticLocator struct {
	coords entity.Coordinates
}

func (l *staticLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails(err.Error())
	}

	return l.coords, nil
}

// NewStaticLocator creates a Geolocator reporting coords
func NewStaticLocator(coords entity.Coordinates) service.Geolocator {
	return &staticLocator{coords: coords}
}

// NewUnavailableLocator creates a Geolocator that always reports ErrCapabilityUnavailable
func NewUnavailableLocator() service.Geolocator {
	return unavailableLocator{}
}

// Params holds dependencies for the Geolocator, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Geolocator based on configuration
func New(params Params) (service.Geolocator, error) {
	cfg := params.Config.Geolocation
	logger := params.Logger

	switch cfg.Provider {
	case config.GeolocationProviderNone, "":
		logger.Info("Geolocation not configured, device position unavailable")

		return NewUnavailableLocator(), nil

	case config.GeolocationProviderStatic:
		coords, err := entity.NewCoordinates(cfg.Latitude, cfg.Longitude)
		if err != nil {
			return nil, errors.Wrap(err, "invalid static geolocation coordinates")
		}
		logger.Info("Using static geolocation",
			slog.Float64("latitude", coords.Latitude),
			slog.Float64("longitude", coords.Longitude),
		)

		return NewStaticLocator(coords), nil

	case config.GeolocationProviderIP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for ip geolocation")
		}
		logger.Info("Using IP geolocation", slog.String("endpoint", cfg.Endpoint))

		return NewIPLocator(cfg.Endpoint, &http.Client{Timeout: cfg.Timeout}, logger), nil

	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", cfg.Provider)
	}
}
