package entity

// ReminderMethod is how the reminder service contacts the user.
type ReminderMethod string

const (
	ReminderMethodText ReminderMethod = "text"
	ReminderMethodCall ReminderMethod = "call"
)

// Valid reports whether m is a known method.
func (m ReminderMethod) Valid() bool {
	return m == ReminderMethodText || m == ReminderMethodCall
}

// Intensity is how strict the accountability partner is.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensitySteady Intensity = "steady"
	IntensityStrong Intensity = "strong"
)

// Valid reports whether i is a known intensity.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLight, IntensitySteady, IntensityStrong:
		return true
	default:
		return false
	}
}

// OptInForm is the mutable input collected by the opt-in wizard.
type OptInForm struct {
	PhoneNumber     string
	Name            string
	SelectedPrayers map[PrayerName]struct{}
	Method          ReminderMethod
	Intensity       Intensity
}

// NewOptInForm returns a form with every reminder prayer selected, text method and steady intensity.
func NewOptInForm() *OptInForm {
	selected := make(map[PrayerName]struct{}, 5)
	for _, p := range ReminderPrayers() {
		selected[p] = struct{}{}
	}

	return &OptInForm{
		SelectedPrayers: selected,
		Method:          ReminderMethodText,
		Intensity:       IntensitySteady,
	}
}

// TogglePrayer flips p in the selection and reports whether it is now selected.
func (f *OptInForm) TogglePrayer(p PrayerName) bool {
	if _, ok := f.SelectedPrayers[p]; ok {
		delete(f.SelectedPrayers, p)

		return false
	}
	f.SelectedPrayers[p] = struct{}{}

	return true
}

// Prayers returns the selection in canonical order. Never nil.
func (f *OptInForm) Prayers() []string {
	prayers := make([]string, 0, len(f.SelectedPrayers))
	for _, p := range ReminderPrayers() {
		if _, ok := f.SelectedPrayers[p]; ok {
			prayers = append(prayers, string(p))
		}
	}

	return prayers
}

// OptInPreferences is the preferences object sent to the reminder service.
type OptInPreferences struct {
	Prayers   []string       `json:"prayers"`
	Method    ReminderMethod `json:"method"`
	Intensity Intensity      `json:"intensity"`
}

// OptInRegistration is the request body for the reminder service's opt-in endpoint.
type OptInRegistration struct {
	PhoneNumber string           `json:"phone_number"`
	Name        string           `json:"name"`
	Timezone    string           `json:"timezone"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Preferences OptInPreferences `json:"preferences"`
}
