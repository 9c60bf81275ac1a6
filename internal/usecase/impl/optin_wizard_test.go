package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"alvaqth/config"
	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/repository"
	"alvaqth/internal/errors"
	mockRepo "alvaqth/internal/mocks/repository"
	mockSvc "alvaqth/internal/mocks/service"
	"alvaqth/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wizardMocks struct {
	registrar *mockSvc.MockReminderRegistrar
	prefs     *mockRepo.MockPreferenceRepository
}

func newWizardFixture(t *testing.T, delay time.Duration) (*optInWizard, wizardMocks) {
	t.Helper()

	m := wizardMocks{
		registrar: mockSvc.NewMockReminderRegistrar(t),
		prefs:     mockRepo.NewMockPreferenceRepository(t),
	}
	cfg := &config.Config{
		Device: &config.DeviceConfig{Timezone: "Africa/Cairo"},
		OptIn:  &config.OptInConfig{SuccessDelay: delay},
	}

	w, ok := NewOptInWizard(m.registrar, m.prefs, cfg, newDiscardLogger()).(*optInWizard)
	require.True(t, ok)

	return w, m
}

// toPreferences opens the wizard and walks it to step two
func toPreferences(t *testing.T, w *optInWizard) {
	t.Helper()

	w.Open()
	_, err := w.SetContact("+201000000000", "Yusuf")
	require.NoError(t, err)
	view, err := w.Next()
	require.NoError(t, err)
	require.Equal(t, usecase.OptInStepPreferences, view.Step)
}

func TestOptInWizard_OpenDefaults(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)

	assert.False(t, w.View().Open)

	view := w.Open()
	assert.True(t, view.Open)
	assert.Equal(t, usecase.OptInStepContact, view.Step)
	assert.Equal(t, []string{"fajr", "zuhr", "asr", "maghrib", "isha"}, view.Prayers)
	assert.Equal(t, entity.ReminderMethodText, view.Method)
	assert.Equal(t, entity.IntensitySteady, view.Intensity)
}

func TestOptInWizard_NextRequiresPhone(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)
	w.Open()

	view, err := w.Next()
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, usecase.OptInStepContact, view.Step)

	_, err = w.SetContact("x", "")
	require.NoError(t, err)

	view, err = w.Next()
	require.NoError(t, err, "any non-empty phone passes")
	assert.Equal(t, usecase.OptInStepPreferences, view.Step)
}

func TestOptInWizard_BackKeepsForm(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)
	toPreferences(t, w)

	_, err := w.TogglePrayer(entity.PrayerFajr)
	require.NoError(t, err)

	view, err := w.Back()
	require.NoError(t, err)
	assert.Equal(t, usecase.OptInStepContact, view.Step)
	assert.Equal(t, "+201000000000", view.PhoneNumber)
	assert.Equal(t, []string{"zuhr", "asr", "maghrib", "isha"}, view.Prayers)
}

func TestOptInWizard_InvalidTransitions(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)
	w.Open()

	_, err := w.Back()
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	_, err = w.Retry()
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	_, err = w.TogglePrayer(entity.PrayerFajr)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	_, err = w.Submit(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))

	toPreferences(t, w)
	_, err = w.SetContact("+1", "")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	_, err = w.Next()
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestOptInWizard_ClosedRejectsEverything(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)

	_, err := w.SetContact("+1", "")
	assert.True(t, errors.Is(err, domainerrors.ErrWizardClosed))
	_, err = w.Next()
	assert.True(t, errors.Is(err, domainerrors.ErrWizardClosed))
	_, err = w.Submit(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrWizardClosed))
}

func TestOptInWizard_PreferenceValidation(t *testing.T) {
	w, _ := newWizardFixture(t, time.Hour)
	toPreferences(t, w)

	_, err := w.TogglePrayer(entity.PrayerSunrise)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	_, err = w.SetMethod("pigeon")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	_, err = w.SetIntensity("extreme")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = w.SetMethod(entity.ReminderMethodCall)
	require.NoError(t, err)
	view, err := w.SetIntensity(entity.IntensityStrong)
	require.NoError(t, err)
	assert.Equal(t, entity.ReminderMethodCall, view.Method)
	assert.Equal(t, entity.IntensityStrong, view.Intensity)
}

func TestOptInWizard_SubmitSuccessThenAutoClose(t *testing.T) {
	w, m := newWizardFixture(t, 20*time.Millisecond)
	ctx := context.Background()
	toPreferences(t, w)

	var closed atomic.Bool
	w.OnClose(func() { closed.Store(true) })

	m.prefs.EXPECT().Get(ctx).Return(&entity.LocationPreference{Coordinates: cairo}, nil)
	m.registrar.EXPECT().OptIn(ctx, &entity.OptInRegistration{
		PhoneNumber: "+201000000000",
		Name:        "Yusuf",
		Timezone:    "Africa/Cairo",
		Latitude:    30.0444,
		Longitude:   31.2357,
		Preferences: entity.OptInPreferences{
			Prayers:   []string{"fajr", "zuhr", "asr", "maghrib", "isha"},
			Method:    entity.ReminderMethodText,
			Intensity: entity.IntensitySteady,
		},
	}).Return(nil)

	view, err := w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.OptInStepSuccess, view.Step)
	assert.Equal(t, "Accountability Active. Check WhatsApp.", view.Message)

	require.Eventually(t, closed.Load, time.Second, 5*time.Millisecond)

	after := w.View()
	assert.False(t, after.Open)
	assert.Equal(t, usecase.OptInStepContact, after.Step)
	assert.Empty(t, after.PhoneNumber)
	assert.Empty(t, after.Message)
}

func TestOptInWizard_SubmitEmptyPrayersWithoutLocation(t *testing.T) {
	w, m := newWizardFixture(t, time.Hour)
	ctx := context.Background()
	toPreferences(t, w)

	for _, p := range entity.ReminderPrayers() {
		_, err := w.TogglePrayer(p)
		require.NoError(t, err)
	}

	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().
		OptIn(ctx, mock.MatchedBy(func(r *entity.OptInRegistration) bool {
			return r.Preferences.Prayers != nil && len(r.Preferences.Prayers) == 0 &&
				r.Latitude == 0 && r.Longitude == 0
		})).
		Return(nil)

	view, err := w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.OptInStepSuccess, view.Step)
}

func TestOptInWizard_SubmitFailureThenRetry(t *testing.T) {
	w, m := newWizardFixture(t, time.Hour)
	ctx := context.Background()
	toPreferences(t, w)

	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).
		Return(domainerrors.ErrOptInFailed.WithDetails("Number already enrolled")).Once()

	view, err := w.Submit(ctx)
	require.NoError(t, err, "rejection becomes state")
	assert.Equal(t, usecase.OptInStepError, view.Step)
	assert.Equal(t, "Number already enrolled", view.Message)

	// Preferences stay editable on the error step
	_, err = w.SetIntensity(entity.IntensityLight)
	require.NoError(t, err)

	view, err = w.Retry()
	require.NoError(t, err)
	assert.Equal(t, usecase.OptInStepPreferences, view.Step)
	assert.Empty(t, view.Message)
	assert.Equal(t, entity.IntensityLight, view.Intensity)
}

func TestOptInWizard_SubmitFailureWithoutDetail(t *testing.T) {
	w, m := newWizardFixture(t, time.Hour)
	ctx := context.Background()
	toPreferences(t, w)

	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrOptInFailed, "connection refused"))

	view, err := w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Opt-in failed", view.Message)
}

func TestOptInWizard_ResubmitFromError(t *testing.T) {
	w, m := newWizardFixture(t, time.Hour)
	ctx := context.Background()
	toPreferences(t, w)

	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).Return(domainerrors.ErrOptInFailed).Once()
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).Return(nil).Once()

	view, err := w.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, usecase.OptInStepError, view.Step)

	view, err = w.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.OptInStepSuccess, view.Step)
}

func TestOptInWizard_CloseDuringSubmitDiscardsResult(t *testing.T) {
	w, m := newWizardFixture(t, time.Hour)
	ctx := context.Background()
	toPreferences(t, w)

	entered := make(chan struct{})
	release := make(chan struct{})
	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).
		RunAndReturn(func(context.Context, *entity.OptInRegistration) error {
			close(entered)
			<-release

			return nil
		})

	done := make(chan usecase.OptInView)
	go func() {
		view, _ := w.Submit(ctx)
		done <- view
	}()

	<-entered
	assert.Equal(t, usecase.OptInStepSubmitting, w.View().Step)
	closed := w.Close()
	assert.False(t, closed.Open)

	close(release)
	view := <-done
	assert.False(t, view.Open)
	assert.Equal(t, usecase.OptInStepContact, view.Step)
}

func TestOptInWizard_ReopenCancelsPendingAutoClose(t *testing.T) {
	w, m := newWizardFixture(t, 30*time.Millisecond)
	ctx := context.Background()
	toPreferences(t, w)

	m.prefs.EXPECT().Get(ctx).Return(nil, repository.ErrPreferenceNotFound)
	m.registrar.EXPECT().OptIn(ctx, mock.Anything).Return(nil)

	_, err := w.Submit(ctx)
	require.NoError(t, err)

	w.Open()
	time.Sleep(60 * time.Millisecond)

	assert.True(t, w.View().Open, "the earlier success timer must not close a fresh session")
}
