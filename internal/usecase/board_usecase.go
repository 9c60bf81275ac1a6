package usecase

import (
	"context"
	"time"

	"alvaqth/internal/domain/entity"
)

// BoardStatus describes the state of the times panel
type BoardStatus string

const (
	BoardStatusIdle     BoardStatus = "idle"
	BoardStatusLoading  BoardStatus = "loading"
	BoardStatusReady    BoardStatus = "ready"
	BoardStatusError    BoardStatus = "error"
	BoardStatusNotFound BoardStatus = "not_found"
)

// User-visible board messages
const (
	MessageTimesUnavailable = "Could not load times. Check connection."
	MessageCityNotFound     = "City not found."
	MessageSearchFailed     = "Search failed."
)

// Board is a point-in-time view of the home screen
type Board struct {
	Location     *entity.LocationPreference `json:"location"`
	NamePending  bool                       `json:"name_pending"`
	Date         string                     `json:"date,omitempty"`
	Timezone     string                     `json:"timezone"`
	Times        *entity.PrayerTimesRecord  `json:"times"`
	Entries      []entity.PrayerTime        `json:"entries,omitempty"`
	Ishraq       string                     `json:"ishraq,omitempty"`
	ActivePrayer entity.PrayerName          `json:"active_prayer"`
	Status       BoardStatus                `json:"status"`
	Message      string                     `json:"message,omitempty"`
	Sequence     uint64                     `json:"sequence"`
}

// BoardUsecase drives location resolution, the times fetch and active prayer
type BoardUsecase interface {
	// Start resolves the location and loads today's times.
	Start(ctx context.Context) (*Board, error)

	// Search moves the board to the first geocoding match for query.
	// A blank query returns ErrValidationFailed and leaves the board untouched.
	Search(ctx context.Context, query string) (*Board, error)

	// Refresh reloads times for the current location.
	Refresh(ctx context.Context) (*Board, error)

	// Snapshot returns the board with the active prayer computed at now.
	Snapshot(now time.Time) *Board

	// Methods lists the calculation methods offered by the backend.
	Methods(ctx context.Context) (map[string]string, error)
}
