package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	mockusecase "alvaqth/internal/mocks/usecase"
	"alvaqth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBoardTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockBoardUsecase, *BoardHandler) {
	t.Helper()

	boardUC := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(BoardHandlerParams{BoardUC: boardUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/v1/board", h.Get)
	e.POST("/api/v1/board/start", h.Start)
	e.POST("/api/v1/board/search", h.Search)
	e.POST("/api/v1/board/refresh", h.Refresh)
	e.GET("/api/v1/methods", h.Methods)

	return e, boardUC, h
}

func readyBoard() *usecase.Board {
	return &usecase.Board{
		Location: &entity.LocationPreference{
			Coordinates: entity.Coordinates{Latitude: 30.0444, Longitude: 31.2357},
			DisplayName: "Cairo",
			Source:      entity.LocationSourceSearch,
		},
		Date:     "2026-10-19",
		Timezone: "Africa/Cairo",
		Status:   usecase.BoardStatusReady,
		Sequence: 1,
	}
}

func TestBoardHandler_Start(t *testing.T) {
	e, boardUC, _ := newBoardTestEcho(t)
	boardUC.EXPECT().Start(mock.Anything).Return(readyBoard(), nil)

	rec, env := serve(t, e, http.MethodPost, "/api/v1/board/start", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"display_name":"Cairo"`)
	assert.Contains(t, string(env.Data), `"status":"ready"`)
}

func TestBoardHandler_GetUsesClock(t *testing.T) {
	e, boardUC, h := newBoardTestEcho(t)
	fixed := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	board := readyBoard()
	board.ActivePrayer = entity.PrayerMaghrib
	boardUC.EXPECT().Snapshot(fixed).Return(board)

	rec, env := serve(t, e, http.MethodGet, "/api/v1/board", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"active_prayer":"maghrib"`)
}

func TestBoardHandler_Search(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockusecase.MockBoardUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			body: `{"query":"Cairo"}`,
			setup: func(m *mockusecase.MockBoardUsecase) {
				m.EXPECT().Search(mock.Anything, "Cairo").Return(readyBoard(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found is reported on the board",
			body: `{"query":"Atlantis"}`,
			setup: func(m *mockusecase.MockBoardUsecase) {
				m.EXPECT().Search(mock.Anything, "Atlantis").Return(&usecase.Board{
					Status:  usecase.BoardStatusNotFound,
					Message: usecase.MessageCityNotFound,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing query",
			body:       `{}`,
			setup:      func(m *mockusecase.MockBoardUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "blank query rejected by usecase",
			body: `{"query":"   "}`,
			setup: func(m *mockusecase.MockBoardUsecase) {
				m.EXPECT().Search(mock.Anything, "   ").
					Return(nil, domainerrors.ErrValidationFailed.WithDetails("search query is required"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"query":`,
			setup:      func(m *mockusecase.MockBoardUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, boardUC, _ := newBoardTestEcho(t)
			tt.setup(boardUC)

			rec, env := serve(t, e, http.MethodPost, "/api/v1/board/search", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}

func TestBoardHandler_Refresh(t *testing.T) {
	e, boardUC, _ := newBoardTestEcho(t)
	boardUC.EXPECT().Refresh(mock.Anything).Return(&usecase.Board{
		Status:  usecase.BoardStatusError,
		Message: usecase.MessageTimesUnavailable,
	}, nil)

	rec, env := serve(t, e, http.MethodPost, "/api/v1/board/refresh", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), usecase.MessageTimesUnavailable)
}

func TestBoardHandler_StartUnexpectedError(t *testing.T) {
	e, boardUC, _ := newBoardTestEcho(t)
	boardUC.EXPECT().Start(mock.Anything).Return(&usecase.Board{}, context.Canceled)

	rec, env := serve(t, e, http.MethodPost, "/api/v1/board/start", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
}

func TestBoardHandler_Methods(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		e, boardUC, _ := newBoardTestEcho(t)
		boardUC.EXPECT().Methods(mock.Anything).Return(map[string]string{"MWL": "Muslim World League"}, nil)

		rec, env := serve(t, e, http.MethodGet, "/api/v1/methods", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"MWL":"Muslim World League"}`, string(env.Data))
	})

	t.Run("backend down hides details", func(t *testing.T) {
		e, boardUC, _ := newBoardTestEcho(t)
		boardUC.EXPECT().Methods(mock.Anything).
			Return(nil, domainerrors.ErrNetworkFailure.WithDetails("dial tcp: connection refused"))

		rec, env := serve(t, e, http.MethodGet, "/api/v1/methods", "")

		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NETWORK_FAILURE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}
