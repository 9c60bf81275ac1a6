// Package prayertimes fetches computed prayer times from the time-calculation backend.
package prayertimes

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/infra/backend"
)

// timesResponse mirrors GET /times
type timesResponse struct {
	Date                 string                      `json:"date"`
	Timezone             string                      `json:"timezone"`
	Method               string                      `json:"method"`
	HighLatitudeFallback entity.HighLatitudeFallback `json:"high_latitude_fallback"`
	Times                *struct {
		Fajr        string `json:"fajr"`
		Sunrise     string `json:"sunrise"`
		Zuhr        string `json:"zuhr"`
		Asr         string `json:"asr"`
		AsrStandard string `json:"asr_standard"`
		AsrHanafi   string `json:"asr_hanafi"`
		Maghrib     string `json:"maghrib"`
		Isha        string `json:"isha"`
	} `json:"times"`
}

type timesClient struct {
	backend *backend.Client
	logger  *slog.Logger
}

// NewTimesClient creates a TimesProvider on top of the backend transport
func NewTimesClient(client *backend.Client, logger *slog.Logger) service.TimesProvider {
	return &timesClient{
		backend: client,
		logger:  logger,
	}
}

// FetchTimes issues exactly one GET /times. Results are not cached.
func (c *timesClient) FetchTimes(ctx context.Context, query service.TimesQuery) (*entity.PrayerTimesRecord, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(query.Coordinates.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(query.Coordinates.Longitude, 'f', -1, 64))
	params.Set("date", query.Date)
	params.Set("timezone", query.Timezone)
	if query.Method != "" {
		params.Set("method", query.Method)
	}

	var resp timesResponse
	if err := c.backend.Get(ctx, "/times", params, &resp); err != nil {
		return nil, networkFailure(err)
	}

	if resp.Times == nil {
		return nil, domainerrors.ErrNetworkFailure.WithDetails("times missing from backend response")
	}

	record := &entity.PrayerTimesRecord{
		Date:                 resp.Date,
		Timezone:             resp.Timezone,
		Method:               resp.Method,
		Fajr:                 resp.Times.Fajr,
		Sunrise:              resp.Times.Sunrise,
		Zuhr:                 resp.Times.Zuhr,
		Asr:                  resp.Times.Asr,
		AsrStandard:          resp.Times.AsrStandard,
		AsrHanafi:            resp.Times.AsrHanafi,
		Maghrib:              resp.Times.Maghrib,
		Isha:                 resp.Times.Isha,
		HighLatitudeFallback: resp.HighLatitudeFallback,
	}
	if record.Date == "" {
		record.Date = query.Date
	}
	if record.Timezone == "" {
		record.Timezone = query.Timezone
	}

	c.logger.Debug("Fetched prayer times",
		slog.String("date", record.Date),
		slog.String("timezone", record.Timezone),
		slog.String("method", record.Method),
	)

	return record, nil
}

// ListMethods calls GET /methods
func (c *timesClient) ListMethods(ctx context.Context) (map[string]string, error) {
	methods := map[string]string{}
	if err := c.backend.Get(ctx, "/methods", nil, &methods); err != nil {
		return nil, networkFailure(err)
	}

	return methods, nil
}

func networkFailure(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	if detail := backend.DetailOf(err); detail != "" {
		return domainerrors.ErrNetworkFailure.WithDetails(detail)
	}

	return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
}
