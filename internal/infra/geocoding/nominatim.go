// Package geocoding resolves place names through a Nominatim-compatible API.
package geocoding

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"alvaqth/config"
	"alvaqth/internal/domain/constants"
	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/infra/backend"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// searchHit is one element of the /search response
type searchHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// coordinates parses the string pair Nominatim returns
func (h searchHit) coordinates() (entity.Coordinates, error) {
	lat, err := strconv.ParseFloat(h.Lat, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "parse lat")
	}
	lng, err := strconv.ParseFloat(h.Lon, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "parse lon")
	}

	return entity.NewCoordinates(lat, lng)
}

// reverseResponse is the subset of /reverse the client reads
type reverseResponse struct {
	Error   string `json:"error"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

// name picks the most specific settlement
func (r *reverseResponse) name() string {
	for _, candidate := range []string{r.Address.City, r.Address.Town, r.Address.Village, r.Address.County} {
		if candidate != "" {
			return candidate
		}
	}

	return constants.UnknownLocationName
}

type nominatimClient struct {
	client  *backend.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Params holds dependencies for the geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Nominatim geocoder from configuration
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding

	return NewNominatimClient(cfg.BaseURL, cfg.UserAgent, &http.Client{Timeout: cfg.Timeout},
		rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1), params.Logger)
}

// NewNominatimClient creates a geocoder against baseURL. limiter may be nil for no throttling.
func NewNominatimClient(baseURL, userAgent string, httpClient *http.Client, limiter *rate.Limiter, logger *slog.Logger) service.Geocoder {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	logger = logger.With(slog.String("upstream", "nominatim"))

	return &nominatimClient{
		client:  backend.NewClient(baseURL, httpClient, logger, backend.WithUserAgent(userAgent)),
		limiter: limiter,
		logger:  logger,
	}
}

// Search returns the first match for query, or nothing.
// A first hit with unusable coordinates is a failure of the geocoder, not a miss.
func (c *nominatimClient) Search(ctx context.Context, query string) ([]service.GeocodeResult, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	var hits []searchHit
	if err := c.get(ctx, "/search", params, &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []service.GeocodeResult{}, nil
	}

	first := hits[0]
	coords, err := first.coordinates()
	if err != nil {
		c.logger.Warn("Geocoder returned malformed coordinates",
			slog.String("lat", first.Lat),
			slog.String("lon", first.Lon),
		)

		return nil, domainerrors.ErrNetworkFailure.WithDetails("malformed coordinates in geocoder result")
	}

	return []service.GeocodeResult{{
		Coordinates: coords,
		DisplayName: first.DisplayName,
	}}, nil
}

// Reverse returns the settlement name for coords
func (c *nominatimClient) Reverse(ctx context.Context, coords entity.Coordinates) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))

	var resp reverseResponse
	if err := c.get(ctx, "/reverse", params, &resp); err != nil {
		return "", err
	}

	return resp.name(), nil
}

// get waits for the rate limiter and maps every failure to ErrNetworkFailure
func (c *nominatimClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
	}

	if err := c.client.Get(ctx, path, params, out); err != nil {
		return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
	}

	return nil
}
