package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *PrayerTimesRecord {
	return &PrayerTimesRecord{
		Date:        "2026-10-19",
		Timezone:    "Africa/Cairo",
		Fajr:        "05:10",
		Sunrise:     "06:45",
		Zuhr:        "12:30",
		AsrStandard: "15:50",
		AsrHanafi:   "16:40",
		Maghrib:     "18:20",
		Isha:        "19:50",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.UTC)
}

func TestActivePrayerAt(t *testing.T) {
	record := sampleRecord()

	tests := []struct {
		name string
		now  time.Time
		want PrayerName
	}{
		{name: "after midnight before fajr", now: at(0, 5), want: PrayerFajr},
		{name: "just before fajr", now: at(5, 9), want: PrayerFajr},
		{name: "exactly fajr is not strictly later", now: at(5, 10), want: PrayerSunrise},
		{name: "between sunrise and zuhr", now: at(9, 5), want: PrayerZuhr},
		{name: "between zuhr and asr", now: at(13, 0), want: PrayerAsr},
		{name: "between asr standard and hanafi", now: at(16, 0), want: PrayerMaghrib},
		{name: "between maghrib and isha", now: at(18, 45), want: PrayerIsha},
		{name: "after isha wraps to fajr", now: at(21, 0), want: PrayerFajr},
		{name: "last minute of day", now: at(23, 59), want: PrayerFajr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivePrayerAt(record, tt.now))
		})
	}
}

// 9:05 sorts after 10:15 as text; numeric comparison must not.
func TestActivePrayerAt_SingleDigitHourIsNumeric(t *testing.T) {
	record := sampleRecord()
	record.Sunrise = "10:15"

	assert.Equal(t, PrayerSunrise, ActivePrayerAt(record, at(9, 5)))
}

func TestActivePrayerAt_UnpaddedBackendTimes(t *testing.T) {
	record := sampleRecord()
	record.Fajr = "5:10"
	record.Sunrise = "6:45"

	assert.Equal(t, PrayerSunrise, ActivePrayerAt(record, at(6, 0)))
}

func TestActivePrayerAt_NilRecord(t *testing.T) {
	assert.Equal(t, PrayerName(""), ActivePrayerAt(nil, at(12, 0)))
}

func TestActivePrayerAt_FallsBackToPrimaryAsr(t *testing.T) {
	record := sampleRecord()
	record.AsrStandard = ""
	record.Asr = "15:50"

	assert.Equal(t, PrayerAsr, ActivePrayerAt(record, at(15, 0)))
}

func TestActivePrayerAt_SkipsUnparseableEntries(t *testing.T) {
	record := sampleRecord()
	record.Zuhr = "n/a"

	assert.Equal(t, PrayerAsr, ActivePrayerAt(record, at(10, 0)))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "05:10", want: 310},
		{in: "5:10", want: 310},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "07:05", FormatClock(425))
	assert.Equal(t, "00:10", FormatClock(minutesPerDay+10))
	assert.Equal(t, "23:50", FormatClock(-10))
}
