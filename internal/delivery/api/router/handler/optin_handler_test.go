package handler

import (
	"net/http"
	"testing"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	mockusecase "alvaqth/internal/mocks/usecase"
	"alvaqth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOptInTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockOptInWizard) {
	t.Helper()

	wizard := mockusecase.NewMockOptInWizard(t)
	h := NewOptInHandler(OptInHandlerParams{Wizard: wizard, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/api/v1/optin")
	g.GET("", h.Get)
	g.POST("/open", h.Open)
	g.PUT("/contact", h.SetContact)
	g.POST("/next", h.Next)
	g.POST("/back", h.Back)
	g.PUT("/preferences", h.SetPreferences)
	g.POST("/submit", h.Submit)
	g.POST("/retry", h.Retry)
	g.POST("/close", h.Close)

	return e, wizard
}

func stepView(step usecase.OptInStep) usecase.OptInView {
	return usecase.OptInView{
		Open:      true,
		Step:      step,
		Prayers:   []string{"fajr", "zuhr", "asr", "maghrib", "isha"},
		Method:    entity.ReminderMethodText,
		Intensity: entity.IntensitySteady,
	}
}

func TestOptInHandler_OpenAndClose(t *testing.T) {
	e, wizard := newOptInTestEcho(t)
	wizard.EXPECT().Open().Return(stepView(usecase.OptInStepContact))
	wizard.EXPECT().Close().Return(usecase.OptInView{Step: usecase.OptInStepContact})

	rec, env := serve(t, e, http.MethodPost, "/api/v1/optin/open", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"open":true`)
	assert.Contains(t, string(env.Data), `"step":"step1"`)

	rec, env = serve(t, e, http.MethodPost, "/api/v1/optin/close", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"open":false`)
}

func TestOptInHandler_SetContactAndNext(t *testing.T) {
	e, wizard := newOptInTestEcho(t)

	view := stepView(usecase.OptInStepContact)
	view.PhoneNumber = "+201000000000"
	view.Name = "Amina"
	wizard.EXPECT().SetContact("+201000000000", "Amina").Return(view, nil)

	next := view
	next.Step = usecase.OptInStepPreferences
	wizard.EXPECT().Next().Return(next, nil)

	rec, env := serve(t, e, http.MethodPut, "/api/v1/optin/contact", `{"phone_number":"+201000000000","name":"Amina"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"phone_number":"+201000000000"`)

	rec, env = serve(t, e, http.MethodPost, "/api/v1/optin/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"step":"step2"`)
}

func TestOptInHandler_NextWithoutPhone(t *testing.T) {
	e, wizard := newOptInTestEcho(t)
	wizard.EXPECT().Next().
		Return(stepView(usecase.OptInStepContact), domainerrors.ErrValidationFailed.WithDetails("phone number is required"))

	rec, env := serve(t, e, http.MethodPost, "/api/v1/optin/next", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "phone number is required", env.Error.Details)
}

func TestOptInHandler_ClosedWizard(t *testing.T) {
	e, wizard := newOptInTestEcho(t)
	wizard.EXPECT().Back().Return(usecase.OptInView{}, domainerrors.ErrWizardClosed)

	rec, env := serve(t, e, http.MethodPost, "/api/v1/optin/back", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "WIZARD_CLOSED", env.Error.Code)
}

func TestOptInHandler_SetPreferences(t *testing.T) {
	t.Run("applies every field in order", func(t *testing.T) {
		e, wizard := newOptInTestEcho(t)

		base := stepView(usecase.OptInStepPreferences)
		toggled := base
		toggled.Prayers = []string{"zuhr", "asr", "maghrib", "isha"}
		withMethod := toggled
		withMethod.Method = entity.ReminderMethodCall
		final := withMethod
		final.Intensity = entity.IntensityStrong

		wizard.EXPECT().View().Return(base)
		wizard.EXPECT().TogglePrayer(entity.PrayerFajr).Return(toggled, nil).Once()
		wizard.EXPECT().SetMethod(entity.ReminderMethodCall).Return(withMethod, nil).Once()
		wizard.EXPECT().SetIntensity(entity.IntensityStrong).Return(final, nil).Once()

		rec, env := serve(t, e, http.MethodPut, "/api/v1/optin/preferences",
			`{"toggle_prayer":"fajr","method":"call","intensity":"strong"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"prayers":["zuhr","asr","maghrib","isha"]`)
		assert.Contains(t, string(env.Data), `"method":"call"`)
		assert.Contains(t, string(env.Data), `"intensity":"strong"`)
	})

	t.Run("unknown method rejected before the wizard", func(t *testing.T) {
		e, _ := newOptInTestEcho(t)

		rec, env := serve(t, e, http.MethodPut, "/api/v1/optin/preferences", `{"method":"pigeon"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("wrong step", func(t *testing.T) {
		e, wizard := newOptInTestEcho(t)
		wizard.EXPECT().View().Return(stepView(usecase.OptInStepContact))
		wizard.EXPECT().SetIntensity(entity.IntensityLight).
			Return(stepView(usecase.OptInStepContact), domainerrors.ErrInvalidTransition.WithDetails("set intensity not allowed in step1"))

		rec, env := serve(t, e, http.MethodPut, "/api/v1/optin/preferences", `{"intensity":"light"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	})
}

func TestOptInHandler_SubmitAndRetry(t *testing.T) {
	e, wizard := newOptInTestEcho(t)

	failed := stepView(usecase.OptInStepError)
	failed.Message = "Phone number already registered"
	wizard.EXPECT().Submit(mock.Anything).Return(failed, nil)
	wizard.EXPECT().Retry().Return(stepView(usecase.OptInStepPreferences), nil)

	rec, env := serve(t, e, http.MethodPost, "/api/v1/optin/submit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"step":"error"`)
	assert.Contains(t, string(env.Data), "Phone number already registered")

	rec, env = serve(t, e, http.MethodPost, "/api/v1/optin/retry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"step":"step2"`)
}

func TestOptInHandler_Get(t *testing.T) {
	e, wizard := newOptInTestEcho(t)
	success := stepView(usecase.OptInStepSuccess)
	success.Message = usecase.MessageOptInSuccess
	wizard.EXPECT().View().Return(success)

	rec, env := serve(t, e, http.MethodGet, "/api/v1/optin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Accountability Active. Check WhatsApp.")
}
