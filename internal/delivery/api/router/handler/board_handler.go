package handler

import (
	"log/slog"
	"net/http"
	"time"

	"alvaqth/internal/delivery/api/response"
	"alvaqth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BoardHandlerParams holds dependencies for BoardHandler, injected by Fx.
type BoardHandlerParams struct {
	fx.In

	BoardUC usecase.BoardUsecase
	Logger  *slog.Logger
}

// BoardHandler exposes the home board
type BoardHandler struct {
	boardUC usecase.BoardUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewBoardHandler is the constructor for BoardHandler
func NewBoardHandler(params BoardHandlerParams) *BoardHandler {
	return &BoardHandler{
		boardUC: params.BoardUC,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// SearchRequest represents the request body for a city search
type SearchRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// Start resolves the location and loads today's times
func (h *BoardHandler) Start(c echo.Context) error {
	board, err := h.boardUC.Start(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, board)
}

// Get returns the current board with the active prayer computed now
func (h *BoardHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.boardUC.Snapshot(h.now()))
}

// Search moves the board to the first match for the query.
// Not-found and lookup failures are reported on the board itself.
func (h *BoardHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	board, err := h.boardUC.Search(c.Request().Context(), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, board)
}

// Refresh reloads times for the current location
func (h *BoardHandler) Refresh(c echo.Context) error {
	board, err := h.boardUC.Refresh(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, board)
}

// Methods lists the backend's calculation methods
func (h *BoardHandler) Methods(c echo.Context) error {
	methods, err := h.boardUC.Methods(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, methods)
}
