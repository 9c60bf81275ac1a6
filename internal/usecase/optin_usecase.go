package usecase

import (
	"context"

	"alvaqth/internal/domain/entity"
)

// OptInStep is the wizard state
type OptInStep string

const (
	OptInStepContact     OptInStep = "step1"
	OptInStepPreferences OptInStep = "step2"
	OptInStepSubmitting  OptInStep = "submitting"
	OptInStepSuccess     OptInStep = "success"
	OptInStepError       OptInStep = "error"
)

// User-visible wizard messages
const (
	MessageOptInSuccess = "Accountability Active. Check WhatsApp."
	MessageOptInFailed  = "Opt-in failed"
)

// OptInView is a copy of the wizard state safe to hand out
type OptInView struct {
	Open        bool                  `json:"open"`
	Step        OptInStep             `json:"step"`
	PhoneNumber string                `json:"phone_number"`
	Name        string                `json:"name"`
	Prayers     []string              `json:"prayers"`
	Method      entity.ReminderMethod `json:"method"`
	Intensity   entity.Intensity      `json:"intensity"`
	Message     string                `json:"message,omitempty"`
}

// OptInWizard is the two-step reminder registration flow.
//
// Operations other than Open and Close return ErrWizardClosed while the wizard is
// closed, and ErrInvalidTransition when the current step does not allow them.
type OptInWizard interface {
	Open() OptInView
	View() OptInView
	SetContact(phone, name string) (OptInView, error)
	Next() (OptInView, error)
	Back() (OptInView, error)
	TogglePrayer(prayer entity.PrayerName) (OptInView, error)
	SetMethod(method entity.ReminderMethod) (OptInView, error)
	SetIntensity(intensity entity.Intensity) (OptInView, error)

	// Submit registers the form. A rejected registration moves to the error step
	// and is not returned as an error.
	Submit(ctx context.Context) (OptInView, error)
	Retry() (OptInView, error)
	Close() OptInView
}
