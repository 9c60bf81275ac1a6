package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"alvaqth/config"
	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/repository"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/usecase"
)

type optInWizard struct {
	registrar    service.ReminderRegistrar
	preferences  repository.PreferenceRepository
	zoneName     string
	successDelay time.Duration
	logger       *slog.Logger

	mu      sync.Mutex
	open    bool
	step    usecase.OptInStep
	form    *entity.OptInForm
	message string
	// session changes on every Open and Close so late submit results and timers can tell they are stale
	session uint64
	timer   *time.Timer
	onClose func()
}

// NewOptInWizard creates the reminder opt-in wizard. It starts closed.
func NewOptInWizard(
	registrar service.ReminderRegistrar,
	preferences repository.PreferenceRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OptInWizard {
	_, zoneName := cfg.Device.Zone()

	delay := time.Duration(0)
	if cfg.OptIn != nil {
		delay = cfg.OptIn.SuccessDelay
	}

	return &optInWizard{
		registrar:    registrar,
		preferences:  preferences,
		zoneName:     zoneName,
		successDelay: delay,
		logger:       logger,
		step:         usecase.OptInStepContact,
		form:         entity.NewOptInForm(),
	}
}

func (w *optInWizard) Open() usecase.OptInView {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTimerLocked()
	w.session++
	w.open = true
	w.resetLocked()

	return w.viewLocked()
}

func (w *optInWizard) View() usecase.OptInView {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.viewLocked()
}

func (w *optInWizard) SetContact(phone, name string) (usecase.OptInView, error) {
	return w.transition(func() error {
		if w.step != usecase.OptInStepContact {
			return w.invalid("set contact")
		}
		w.form.PhoneNumber = phone
		w.form.Name = name

		return nil
	})
}

// Next requires a non-empty phone number and nothing else
func (w *optInWizard) Next() (usecase.OptInView, error) {
	return w.transition(func() error {
		if w.step != usecase.OptInStepContact {
			return w.invalid("next")
		}
		if w.form.PhoneNumber == "" {
			return domainerrors.ErrValidationFailed.WithDetails("phone number is required")
		}
		w.step = usecase.OptInStepPreferences

		return nil
	})
}

func (w *optInWizard) Back() (usecase.OptInView, error) {
	return w.transition(func() error {
		if w.step != usecase.OptInStepPreferences {
			return w.invalid("back")
		}
		w.step = usecase.OptInStepContact

		return nil
	})
}

func (w *optInWizard) TogglePrayer(prayer entity.PrayerName) (usecase.OptInView, error) {
	return w.transition(func() error {
		if !w.editingPreferences() {
			return w.invalid("toggle prayer")
		}
		if !entity.IsReminderPrayer(prayer) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown prayer " + string(prayer))
		}
		w.form.TogglePrayer(prayer)

		return nil
	})
}

func (w *optInWizard) SetMethod(method entity.ReminderMethod) (usecase.OptInView, error) {
	return w.transition(func() error {
		if !w.editingPreferences() {
			return w.invalid("set method")
		}
		if !method.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown reminder method " + string(method))
		}
		w.form.Method = method

		return nil
	})
}

func (w *optInWizard) SetIntensity(intensity entity.Intensity) (usecase.OptInView, error) {
	return w.transition(func() error {
		if !w.editingPreferences() {
			return w.invalid("set intensity")
		}
		if !intensity.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown intensity " + string(intensity))
		}
		w.form.Intensity = intensity

		return nil
	})
}

// Submit sends the registration. The selected prayer set is not validated.
func (w *optInWizard) Submit(ctx context.Context) (usecase.OptInView, error) {
	w.mu.Lock()
	if err := w.checkOpenLocked(); err != nil {
		view := w.viewLocked()
		w.mu.Unlock()

		return view, err
	}
	if !w.editingPreferences() {
		view := w.viewLocked()
		err := w.invalid("submit")
		w.mu.Unlock()

		return view, err
	}

	w.step = usecase.OptInStepSubmitting
	w.message = ""
	session := w.session
	form := *w.form
	prayers := w.form.Prayers()
	w.mu.Unlock()

	registration := &entity.OptInRegistration{
		PhoneNumber: form.PhoneNumber,
		Name:        form.Name,
		Timezone:    w.zoneName,
		Preferences: entity.OptInPreferences{
			Prayers:   prayers,
			Method:    form.Method,
			Intensity: form.Intensity,
		},
	}
	registration.Latitude, registration.Longitude = w.lastCoordinates(ctx)

	err := w.registrar.OptIn(ctx, registration)

	w.mu.Lock()
	defer w.mu.Unlock()

	if session != w.session || w.step != usecase.OptInStepSubmitting {
		w.logger.Debug("Discarding opt-in result for a closed wizard")

		return w.viewLocked(), nil
	}

	if err != nil {
		w.step = usecase.OptInStepError
		w.message = optInFailureMessage(err)
		w.logger.Warn("Opt-in failed", slog.Any("error", err))

		return w.viewLocked(), nil
	}

	w.step = usecase.OptInStepSuccess
	w.message = usecase.MessageOptInSuccess
	w.logger.Info("Opt-in registered", slog.Int("prayers", len(prayers)))
	w.scheduleCloseLocked(session)

	return w.viewLocked(), nil
}

func (w *optInWizard) Retry() (usecase.OptInView, error) {
	return w.transition(func() error {
		if w.step != usecase.OptInStepError {
			return w.invalid("retry")
		}
		w.step = usecase.OptInStepPreferences
		w.message = ""

		return nil
	})
}

// Close discards the form from any state
func (w *optInWizard) Close() usecase.OptInView {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closeLocked()

	return w.viewLocked()
}

// OnClose registers fn to run whenever the wizard closes itself after a success
func (w *optInWizard) OnClose(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onClose = fn
}

func (w *optInWizard) transition(apply func() error) (usecase.OptInView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkOpenLocked(); err != nil {
		return w.viewLocked(), err
	}
	if err := apply(); err != nil {
		return w.viewLocked(), err
	}

	return w.viewLocked(), nil
}

func (w *optInWizard) checkOpenLocked() error {
	if !w.open {
		return domainerrors.ErrWizardClosed
	}

	return nil
}

func (w *optInWizard) editingPreferences() bool {
	return w.step == usecase.OptInStepPreferences || w.step == usecase.OptInStepError
}

func (w *optInWizard) invalid(action string) error {
	return domainerrors.ErrInvalidTransition.WithDetails(action + " not allowed in " + string(w.step))
}

func (w *optInWizard) scheduleCloseLocked(session uint64) {
	w.stopTimerLocked()
	w.timer = time.AfterFunc(w.successDelay, func() {
		w.mu.Lock()
		if session != w.session || w.step != usecase.OptInStepSuccess {
			w.mu.Unlock()

			return
		}
		w.closeLocked()
		onClose := w.onClose
		w.mu.Unlock()

		if onClose != nil {
			onClose()
		}
	})
}

func (w *optInWizard) closeLocked() {
	w.stopTimerLocked()
	w.session++
	w.open = false
	w.resetLocked()
}

func (w *optInWizard) stopTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *optInWizard) resetLocked() {
	w.step = usecase.OptInStepContact
	w.form = entity.NewOptInForm()
	w.message = ""
}

func (w *optInWizard) viewLocked() usecase.OptInView {
	return usecase.OptInView{
		Open:        w.open,
		Step:        w.step,
		PhoneNumber: w.form.PhoneNumber,
		Name:        w.form.Name,
		Prayers:     w.form.Prayers(),
		Method:      w.form.Method,
		Intensity:   w.form.Intensity,
		Message:     w.message,
	}
}

// lastCoordinates reads the most recently resolved location, or 0,0 when there is none
func (w *optInWizard) lastCoordinates(ctx context.Context) (float64, float64) {
	pref, err := w.preferences.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			w.logger.Warn("Failed to read saved location for opt-in", slog.Any("error", err))
		}

		return 0, 0
	}

	return pref.Coordinates.Latitude, pref.Coordinates.Longitude
}

func optInFailureMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	return usecase.MessageOptInFailed
}
