package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
)

// ipLookupResponse accepts both the ipapi.co and ip-api.com field names
type ipLookupResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

func (r *ipLookupResponse) coordinates() (entity.Coordinates, bool) {
	lat, lng := r.Latitude, r.Longitude
	if lat == nil || lng == nil {
		lat, lng = r.Lat, r.Lon
	}
	if lat == nil || lng == nil {
		return entity.Coordinates{}, false
	}

	coords, err := entity.NewCoordinates(*lat, *lng)
	if err != nil {
		return entity.Coordinates{}, false
	}

	return coords, true
}

type ipLocator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewIPLocator creates a Geolocator that derives the position from the public IP
func NewIPLocator(endpoint string, httpClient *http.Client, logger *slog.Logger) service.Geolocator {
	return &ipLocator{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (l *ipLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return entity.Coordinates{}, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entity.Coordinates{}, domainerrors.ErrPermissionDenied.WithDetails("lookup returned status " + strconv.Itoa(resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails("lookup returned status " + strconv.Itoa(resp.StatusCode))
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails("malformed lookup response")
	}

	coords, ok := body.coordinates()
	if !ok {
		return entity.Coordinates{}, domainerrors.ErrPositionUnavailable.WithDetails("lookup response has no usable coordinates")
	}

	l.logger.Debug("Located device by IP",
		slog.Float64("latitude", coords.Latitude),
		slog.Float64("longitude", coords.Longitude),
	)

	return coords, nil
}
