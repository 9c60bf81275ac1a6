package entity

import (
	"fmt"
	"time"

	"alvaqth/internal/errors"
)

const minutesPerDay = 24 * 60

// ParseClock converts "H:MM" or "HH:MM" to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse clock %q", s)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM", wrapping past midnight.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ActivePrayerAt returns the next prayer due after now on the record's day.
//
// Times are compared as minutes since midnight. Entries are checked in the order
// fajr, sunrise, zuhr, asr (standard), maghrib, isha and the first one strictly later
// than now wins. Once isha has passed the result wraps to fajr. Unparseable entries
// are skipped. A nil record yields "".
func ActivePrayerAt(record *PrayerTimesRecord, now time.Time) PrayerName {
	if record == nil {
		return ""
	}

	current := now.Hour()*60 + now.Minute()

	order := []PrayerTime{
		{Name: PrayerFajr, Time: record.Fajr},
		{Name: PrayerSunrise, Time: record.Sunrise},
		{Name: PrayerZuhr, Time: record.Zuhr},
		{Name: PrayerAsr, Time: record.standardAsr()},
		{Name: PrayerMaghrib, Time: record.Maghrib},
		{Name: PrayerIsha, Time: record.Isha},
	}

	for _, entry := range order {
		at, err := ParseClock(entry.Time)
		if err != nil {
			continue
		}
		if at > current {
			return entry.Name
		}
	}

	return PrayerFajr
}
