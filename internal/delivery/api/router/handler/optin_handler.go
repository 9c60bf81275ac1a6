package handler

import (
	"log/slog"
	"net/http"

	"alvaqth/internal/delivery/api/response"
	"alvaqth/internal/domain/entity"
	"alvaqth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OptInHandlerParams holds dependencies for OptInHandler, injected by Fx.
type OptInHandlerParams struct {
	fx.In

	Wizard usecase.OptInWizard
	Logger *slog.Logger
}

// OptInHandler drives the reminder opt-in wizard
type OptInHandler struct {
	wizard usecase.OptInWizard
	logger *slog.Logger
}

// NewOptInHandler is the constructor for OptInHandler
func NewOptInHandler(params OptInHandlerParams) *OptInHandler {
	return &OptInHandler{
		wizard: params.Wizard,
		logger: params.Logger,
	}
}

// ContactRequest represents the step one form
type ContactRequest struct {
	PhoneNumber string `json:"phone_number" validate:"max=32"`
	Name        string `json:"name" validate:"max=100"`
}

// PreferencesRequest edits the step two form. Every field is optional and applied in order.
type PreferencesRequest struct {
	TogglePrayer string `json:"toggle_prayer" validate:"omitempty,oneof=fajr zuhr asr maghrib isha"`
	Method       string `json:"method" validate:"omitempty,oneof=text call"`
	Intensity    string `json:"intensity" validate:"omitempty,oneof=light steady strong"`
}

func (h *OptInHandler) Open(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wizard.Open())
}

func (h *OptInHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wizard.View())
}

// SetContact stores phone and name. Emptiness is only checked by Next.
func (h *OptInHandler) SetContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	return h.reply(c)(h.wizard.SetContact(req.PhoneNumber, req.Name))
}

func (h *OptInHandler) Next(c echo.Context) error {
	return h.reply(c)(h.wizard.Next())
}

func (h *OptInHandler) Back(c echo.Context) error {
	return h.reply(c)(h.wizard.Back())
}

func (h *OptInHandler) SetPreferences(c echo.Context) error {
	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid preferences input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view := h.wizard.View()
	var err error
	if req.TogglePrayer != "" {
		if view, err = h.wizard.TogglePrayer(entity.PrayerName(req.TogglePrayer)); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.Method != "" {
		if view, err = h.wizard.SetMethod(entity.ReminderMethod(req.Method)); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.Intensity != "" {
		if view, err = h.wizard.SetIntensity(entity.Intensity(req.Intensity)); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, view)
}

// Submit blocks until the backend answers. A rejection is reported in the view, not as an HTTP error.
func (h *OptInHandler) Submit(c echo.Context) error {
	return h.reply(c)(h.wizard.Submit(c.Request().Context()))
}

func (h *OptInHandler) Retry(c echo.Context) error {
	return h.reply(c)(h.wizard.Retry())
}

func (h *OptInHandler) Close(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wizard.Close())
}

func (h *OptInHandler) reply(c echo.Context) func(usecase.OptInView, error) error {
	return func(view usecase.OptInView, err error) error {
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, view)
	}
}
