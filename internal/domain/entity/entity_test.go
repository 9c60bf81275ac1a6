package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{name: "london", lat: 51.5074, lng: -0.1278},
		{name: "north pole and antimeridian", lat: 90, lng: 180},
		{name: "south pole", lat: -90, lng: -180},
		{name: "latitude too high", lat: 90.1, lng: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -180.5, wantErr: true},
		{name: "nan", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinates(tt.lat, tt.lng)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCoordinates)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lat, c.Latitude)
			assert.Equal(t, tt.lng, c.Longitude)
		})
	}
}

func TestCoordinates_PointAndLabel(t *testing.T) {
	c := Coordinates{Latitude: 30.0444, Longitude: 31.2357}

	assert.Equal(t, 31.2357, c.Point().X())
	assert.Equal(t, 30.0444, c.Point().Y())
	assert.Equal(t, "30.04, 31.24", c.Label())
}

func TestDefaultLocation(t *testing.T) {
	loc := DefaultLocation()

	assert.Equal(t, 51.5074, loc.Coordinates.Latitude)
	assert.Equal(t, -0.1278, loc.Coordinates.Longitude)
	assert.Equal(t, LocationSourceDefault, loc.Source)
	assert.Equal(t, "London, UK", loc.DisplayName)
}

func TestPrayerTimesRecord_Entries(t *testing.T) {
	record := sampleRecord()
	entries := record.Entries()

	require.Len(t, entries, 7)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"fajr", "sunrise", "zuhr", "asr_standard", "asr_hanafi", "maghrib", "isha"}, keys)
	assert.Equal(t, PrayerAsr, entries[3].Name)
	assert.Equal(t, PrayerAsr, entries[4].Name)
}

func TestPrayerTimesRecord_Ishraq(t *testing.T) {
	record := sampleRecord()
	assert.Equal(t, "07:05", record.Ishraq())

	record.Sunrise = ""
	assert.Empty(t, record.Ishraq())
}

func TestOptInForm_Defaults(t *testing.T) {
	form := NewOptInForm()

	assert.Equal(t, []string{"fajr", "zuhr", "asr", "maghrib", "isha"}, form.Prayers())
	assert.Equal(t, ReminderMethodText, form.Method)
	assert.Equal(t, IntensitySteady, form.Intensity)
}

func TestOptInForm_TogglePrayer(t *testing.T) {
	form := NewOptInForm()

	assert.False(t, form.TogglePrayer(PrayerZuhr))
	assert.Equal(t, []string{"fajr", "asr", "maghrib", "isha"}, form.Prayers())

	assert.True(t, form.TogglePrayer(PrayerZuhr))
	assert.Equal(t, []string{"fajr", "zuhr", "asr", "maghrib", "isha"}, form.Prayers())
}

func TestOptInForm_EmptySelectionIsNotNil(t *testing.T) {
	form := NewOptInForm()
	for _, p := range ReminderPrayers() {
		form.TogglePrayer(p)
	}

	prayers := form.Prayers()
	assert.NotNil(t, prayers)
	assert.Empty(t, prayers)
}

func TestIsReminderPrayer(t *testing.T) {
	assert.True(t, IsReminderPrayer(PrayerAsr))
	assert.False(t, IsReminderPrayer(PrayerSunrise))
	assert.False(t, IsReminderPrayer("tahajjud"))
}

func TestReminderMethodAndIntensity_Valid(t *testing.T) {
	assert.True(t, ReminderMethodCall.Valid())
	assert.False(t, ReminderMethod("pigeon").Valid())
	assert.True(t, IntensityStrong.Valid())
	assert.False(t, Intensity("").Valid())
}
