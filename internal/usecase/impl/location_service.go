package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/repository"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/usecase"
)

// nameLookupTimeout bounds the background reverse geocode and save after a GPS fix
const nameLookupTimeout = 15 * time.Second

type locationService struct {
	preferences repository.PreferenceRepository
	locator     service.Geolocator
	geocoder    service.Geocoder
	logger      *slog.Logger

	// saveMu orders background GPS saves against explicit choices.
	// generation moves on every Search and Forget so a late GPS save cannot overwrite them.
	saveMu     sync.Mutex
	generation uint64
}

// NewLocationService creates a new location service instance
func NewLocationService(
	preferences repository.PreferenceRepository,
	locator service.Geolocator,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		preferences: preferences,
		locator:     locator,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// Resolve returns the saved preference, else a GPS fix, else the London default
func (s *locationService) Resolve(ctx context.Context) (*usecase.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	saved, err := s.preferences.Get(ctx)
	switch {
	case err == nil:
		if saved.DisplayName == "" {
			saved.DisplayName = saved.Coordinates.Label()
		}
		saved.Source = entity.LocationSourceSaved
		s.logger.Debug("Using saved location", slog.String("name", saved.DisplayName))

		return resolved(*saved), nil
	case !errors.Is(err, repository.ErrPreferenceNotFound):
		// Unreadable store behaves like an empty one
		s.logger.Warn("Failed to read saved location", slog.Any("error", err))
	}

	coords, err := s.locator.Locate(ctx)
	if err != nil {
		s.logger.Info("Geolocation failed, using default location",
			slog.String("reason", failureKind(err)),
			slog.Any("error", err),
		)

		return resolved(entity.DefaultLocation()), nil
	}

	s.saveMu.Lock()
	generation := s.generation
	s.saveMu.Unlock()

	names := make(chan string, 1)
	go s.nameAndSave(context.WithoutCancel(ctx), coords, generation, names)

	return &usecase.Resolution{
		Preference: entity.LocationPreference{
			Coordinates: coords,
			DisplayName: coords.Label(),
			Source:      entity.LocationSourceGPS,
		},
		DisplayName: names,
	}, nil
}

// nameAndSave reverse geocodes coords, persists the preference once and publishes the name
func (s *locationService) nameAndSave(ctx context.Context, coords entity.Coordinates, generation uint64, names chan<- string) {
	defer close(names)

	ctx, cancel := context.WithTimeout(ctx, nameLookupTimeout)
	defer cancel()

	name, err := s.geocoder.Reverse(ctx, coords)
	if err != nil || name == "" {
		s.logger.Warn("Reverse geocoding failed, using coordinates as name", slog.Any("error", err))
		name = coords.Label()
	}

	s.saveMu.Lock()
	if generation == s.generation {
		if err := s.preferences.Set(ctx, &entity.LocationPreference{
			Coordinates: coords,
			DisplayName: name,
			Source:      entity.LocationSourceGPS,
		}); err != nil {
			s.logger.Error("Failed to save GPS location", slog.Any("error", err))
		}
	} else {
		s.logger.Debug("Skipping GPS save, location changed meanwhile")
	}
	s.saveMu.Unlock()

	names <- name
}

// Search geocodes query and saves the first match
func (s *locationService) Search(ctx context.Context, query string) (*entity.LocationPreference, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}

	results, err := s.geocoder.Search(ctx, query)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrNetworkFailure, err.Error())
	}
	if len(results) == 0 {
		return nil, domainerrors.ErrLocationNotFound.WithDetails(query)
	}

	first := results[0]
	name := shortName(first.DisplayName)
	if name == "" {
		name = first.Coordinates.Label()
	}

	pref := &entity.LocationPreference{
		Coordinates: first.Coordinates,
		DisplayName: name,
		Source:      entity.LocationSourceSearch,
	}

	s.saveMu.Lock()
	s.generation++
	if err := s.preferences.Set(ctx, pref); err != nil {
		s.logger.Error("Failed to save searched location", slog.Any("error", err))
	}
	s.saveMu.Unlock()

	s.logger.Info("Location found", slog.String("query", query), slog.String("name", name))

	return pref, nil
}

// Forget clears the saved preference
func (s *locationService) Forget(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.generation++
	if err := s.preferences.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear saved location")
	}

	return nil
}

// resolved wraps a preference whose name is already final
func resolved(pref entity.LocationPreference) *usecase.Resolution {
	names := make(chan string, 1)
	names <- pref.DisplayName
	close(names)

	return &usecase.Resolution{
		Preference:  pref,
		DisplayName: names,
	}
}

// shortName keeps the text before the first comma of a geocoder label
func shortName(displayName string) string {
	name, _, _ := strings.Cut(displayName, ",")

	return strings.TrimSpace(name)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrCapabilityUnavailable):
		return "capability_unavailable"
	case errors.Is(err, domainerrors.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, domainerrors.ErrPositionUnavailable):
		return "position_unavailable"
	default:
		return "unknown"
	}
}
