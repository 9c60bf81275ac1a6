package handler

import (
	"log/slog"
	"net/http"

	"alvaqth/internal/delivery/api/response"
	"alvaqth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler manages the saved location preference
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// Forget clears the saved location so the next start retries geolocation
func (h *LocationHandler) Forget(c echo.Context) error {
	if err := h.locationUC.Forget(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Saved location cleared")

	return c.NoContent(http.StatusNoContent)
}
