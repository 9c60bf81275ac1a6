package entity

import (
	"time"
)

// PrayerName is the display tag of a prayer window. Asr variants collapse into PrayerAsr.
type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerSunrise PrayerName = "sunrise"
	PrayerZuhr    PrayerName = "zuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
)

// ReminderPrayers are the prayers the reminder service can track, in canonical order.
func ReminderPrayers() []PrayerName {
	return []PrayerName{PrayerFajr, PrayerZuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}
}

// IsReminderPrayer reports whether p can be selected in the opt-in form.
func IsReminderPrayer(p PrayerName) bool {
	switch p {
	case PrayerFajr, PrayerZuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	default:
		return false
	}
}

// Keys used by the backend for each time of day.
const (
	TimeKeyFajr        = "fajr"
	TimeKeySunrise     = "sunrise"
	TimeKeyZuhr        = "zuhr"
	TimeKeyAsr         = "asr"
	TimeKeyAsrStandard = "asr_standard"
	TimeKeyAsrHanafi   = "asr_hanafi"
	TimeKeyMaghrib     = "maghrib"
	TimeKeyIsha        = "isha"
)

// ishraqOffset is shown after sunrise as an informational marker.
const ishraqOffset = 20 * time.Minute

// HighLatitudeFallback reports which times the backend approximated.
type HighLatitudeFallback struct {
	Fajr   bool   `json:"fajr"`
	Isha   bool   `json:"isha"`
	Method string `json:"method,omitempty"`
}

// PrayerTimesRecord is one calendar day of prayer times at one location and timezone.
// Times are "HH:MM" (24-hour) strings local to Timezone.
type PrayerTimesRecord struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
	Method   string `json:"method,omitempty"`

	Fajr        string `json:"fajr"`
	Sunrise     string `json:"sunrise"`
	Zuhr        string `json:"zuhr"`
	Asr         string `json:"asr,omitempty"`
	AsrStandard string `json:"asr_standard"`
	AsrHanafi   string `json:"asr_hanafi"`
	Maghrib     string `json:"maghrib"`
	Isha        string `json:"isha"`

	HighLatitudeFallback HighLatitudeFallback `json:"high_latitude_fallback"`
}

// PrayerTime is a single labelled entry of a record.
type PrayerTime struct {
	Key  string     `json:"key"`
	Name PrayerName `json:"name"`
	Time string     `json:"time"`
}

// Entries returns the record in canonical order. Both Asr variants are tagged PrayerAsr.
func (r *PrayerTimesRecord) Entries() []PrayerTime {
	return []PrayerTime{
		{Key: TimeKeyFajr, Name: PrayerFajr, Time: r.Fajr},
		{Key: TimeKeySunrise, Name: PrayerSunrise, Time: r.Sunrise},
		{Key: TimeKeyZuhr, Name: PrayerZuhr, Time: r.Zuhr},
		{Key: TimeKeyAsrStandard, Name: PrayerAsr, Time: r.standardAsr()},
		{Key: TimeKeyAsrHanafi, Name: PrayerAsr, Time: r.AsrHanafi},
		{Key: TimeKeyMaghrib, Name: PrayerMaghrib, Time: r.Maghrib},
		{Key: TimeKeyIsha, Name: PrayerIsha, Time: r.Isha},
	}
}

// standardAsr prefers asr_standard and falls back to the method's primary asr.
func (r *PrayerTimesRecord) standardAsr() string {
	if r.AsrStandard != "" {
		return r.AsrStandard
	}

	return r.Asr
}

// Ishraq returns sunrise plus twenty minutes, or "" when sunrise is not a valid time.
func (r *PrayerTimesRecord) Ishraq() string {
	minutes, err := ParseClock(r.Sunrise)
	if err != nil {
		return ""
	}

	return FormatClock(minutes + int(ishraqOffset/time.Minute))
}
