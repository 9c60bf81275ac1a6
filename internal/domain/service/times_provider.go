package service

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// TimesQuery identifies one day of prayer times.
type TimesQuery struct {
	Coordinates entity.Coordinates
	// Date is the calendar day as YYYY-MM-DD.
	Date string
	// Timezone is an IANA zone name.
	Timezone string
	// Method is the calculation method key. Empty uses the backend default.
	Method string
}

// TimesProvider fetches computed prayer times from the backend.
type TimesProvider interface {
	FetchTimes(ctx context.Context, query TimesQuery) (*entity.PrayerTimesRecord, error)

	// ListMethods returns the supported calculation methods keyed by method key.
	ListMethods(ctx context.Context) (map[string]string, error)
}
