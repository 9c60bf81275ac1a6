package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"alvaqth/config"
	"alvaqth/internal/domain/entity"
	domainerrors "alvaqth/internal/domain/errors"
	"alvaqth/internal/domain/service"
	"alvaqth/internal/errors"
	"alvaqth/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

type boardService struct {
	locations usecase.LocationUsecase
	times     service.TimesProvider
	method    string
	zone      *time.Location
	zoneName  string
	logger    *slog.Logger
	now       func() time.Time

	mu sync.Mutex
	// seq is the token of the newest operation. Results carrying an older token are dropped.
	// locSeq is the token of the newest operation that moved the location.
	// intent counts requests that may move the location. A search only lands if it is still the newest one.
	seq    uint64
	locSeq uint64
	intent uint64
	state  usecase.Board
}

// NewBoardService creates the home board service
func NewBoardService(
	locations usecase.LocationUsecase,
	times service.TimesProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BoardUsecase {
	zone, zoneName := cfg.Device.Zone()

	method := ""
	if cfg.Backend != nil {
		method = cfg.Backend.Method
	}

	return &boardService{
		locations: locations,
		times:     times,
		method:    method,
		zone:      zone,
		zoneName:  zoneName,
		logger:    logger,
		now:       time.Now,
		state: usecase.Board{
			Timezone: zoneName,
			Status:   usecase.BoardStatusIdle,
		},
	}
}

// Start resolves the location and loads today's times
func (s *boardService) Start(ctx context.Context) (*usecase.Board, error) {
	token := s.begin(true)

	res, err := s.locations.Resolve(ctx)
	if err != nil {
		s.apply(token, func(b *usecase.Board) {
			b.Status = usecase.BoardStatusError
			b.Message = usecase.MessageTimesUnavailable
		})

		return s.Snapshot(s.now()), errors.Wrap(err, "failed to resolve location")
	}

	pref := res.Preference
	s.applyLocation(token, func(b *usecase.Board) {
		b.Location = &pref
		b.NamePending = true
	})

	// The name may still be reverse geocoding. Neither task fails the other.
	var g errgroup.Group
	g.Go(func() error {
		select {
		case name, ok := <-res.DisplayName:
			if ok {
				s.applyLocation(token, func(b *usecase.Board) {
					if b.Location == nil {
						return
					}
					located := *b.Location
					located.DisplayName = name
					b.Location = &located
					b.NamePending = false
				})
			}
		case <-ctx.Done():
		}

		return nil
	})
	g.Go(func() error {
		s.loadTimes(ctx, token, pref.Coordinates)

		return nil
	})
	_ = g.Wait()

	return s.Snapshot(s.now()), nil
}

// Search moves the board to the first match for query.
// A failed search only reports its status. It leaves in-flight loads and the current location alone.
func (s *boardService) Search(ctx context.Context, query string) (*usecase.Board, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}

	intent := s.beginSearch()

	pref, err := s.locations.Search(ctx, query)
	if err != nil {
		s.finishSearch(intent, func(b *usecase.Board) {
			if errors.Is(err, domainerrors.ErrLocationNotFound) {
				b.Status = usecase.BoardStatusNotFound
				b.Message = usecase.MessageCityNotFound
			} else {
				b.Status = usecase.BoardStatusError
				b.Message = usecase.MessageSearchFailed
			}
		})
		s.logger.Info("Location search failed", slog.String("query", query), slog.Any("error", err))

		return s.Snapshot(s.now()), nil
	}

	token, ok := s.moveTo(intent, pref)
	if !ok {
		return s.Snapshot(s.now()), nil
	}
	s.loadTimes(ctx, token, pref.Coordinates)

	return s.Snapshot(s.now()), nil
}

// Refresh reloads times for the current location, starting the board if needed
func (s *boardService) Refresh(ctx context.Context) (*usecase.Board, error) {
	s.mu.Lock()
	location := s.state.Location
	s.mu.Unlock()

	if location == nil {
		return s.Start(ctx)
	}

	token := s.begin(false)
	s.loadTimes(ctx, token, location.Coordinates)

	return s.Snapshot(s.now()), nil
}

// Snapshot copies the board and computes the active prayer at now
func (s *boardService) Snapshot(now time.Time) *usecase.Board {
	s.mu.Lock()
	board := s.state
	s.mu.Unlock()

	if board.Location != nil {
		location := *board.Location
		board.Location = &location
	}

	if board.Times != nil {
		record := *board.Times
		board.Times = &record
		board.Entries = record.Entries()
		board.Ishraq = record.Ishraq()
		board.ActivePrayer = entity.ActivePrayerAt(&record, now.In(s.zone))
	}

	return &board
}

// Methods lists the backend's calculation methods
func (s *boardService) Methods(ctx context.Context) (map[string]string, error) {
	methods, err := s.times.ListMethods(ctx)
	if err != nil {
		return nil, err
	}

	return methods, nil
}

// begin issues a new token, invalidating every in-flight times load.
// When movesLocation is set it also invalidates pending location and name updates.
func (s *boardService) begin(movesLocation bool) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if movesLocation {
		s.locSeq = s.seq
		s.intent++
	}
	s.state.Sequence = s.seq
	s.state.Status = usecase.BoardStatusLoading
	s.state.Message = ""

	return s.seq
}

// beginSearch registers a search without invalidating anything in flight
func (s *boardService) beginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.intent++
	s.state.Status = usecase.BoardStatusLoading
	s.state.Message = ""

	return s.intent
}

// finishSearch reports a failed search unless a newer location request was issued since
func (s *boardService) finishSearch(intent uint64, update func(b *usecase.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if intent != s.intent {
		s.logger.Debug("Discarding stale search result", slog.Uint64("intent", intent))

		return
	}

	update(&s.state)
}

// moveTo switches the board to pref and issues the token for its times load.
// It refuses when a newer location request was issued after the search began.
func (s *boardService) moveTo(intent uint64, pref *entity.LocationPreference) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if intent != s.intent {
		s.logger.Debug("Discarding stale search result", slog.Uint64("intent", intent))

		return 0, false
	}

	s.seq++
	s.locSeq = s.seq
	s.state.Sequence = s.seq
	s.state.Location = pref
	s.state.NamePending = false
	s.state.Status = usecase.BoardStatusLoading
	s.state.Message = ""

	return s.seq, true
}

// apply mutates the board only if token is still the newest operation
func (s *boardService) apply(token uint64, update func(b *usecase.Board)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(token, s.seq, update)
}

// applyLocation mutates the board only if no later operation moved the location
func (s *boardService) applyLocation(token uint64, update func(b *usecase.Board)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(token, s.locSeq, update)
}

func (s *boardService) applyLocked(token, current uint64, update func(b *usecase.Board)) bool {
	if token != current {
		s.logger.Debug("Discarding stale board update",
			slog.Uint64("token", token),
			slog.Uint64("current", current),
		)

		return false
	}

	update(&s.state)

	return true
}

func (s *boardService) loadTimes(ctx context.Context, token uint64, coords entity.Coordinates) {
	date := s.now().In(s.zone).Format(dateLayout)

	record, err := s.times.FetchTimes(ctx, service.TimesQuery{
		Coordinates: coords,
		Date:        date,
		Timezone:    s.zoneName,
		Method:      s.method,
	})
	if err != nil {
		s.logger.Warn("Failed to load prayer times",
			slog.String("date", date),
			slog.Any("error", err),
		)
		s.apply(token, func(b *usecase.Board) {
			b.Times = nil
			b.Date = ""
			b.Status = usecase.BoardStatusError
			b.Message = usecase.MessageTimesUnavailable
		})

		return
	}

	s.apply(token, func(b *usecase.Board) {
		b.Times = record
		b.Date = record.Date
		// A search failure reported meanwhile stays visible over the loaded times
		if !searchFailed(b) {
			b.Status = usecase.BoardStatusReady
			b.Message = ""
		}
	})
}

func searchFailed(b *usecase.Board) bool {
	return b.Message == usecase.MessageCityNotFound || b.Message == usecase.MessageSearchFailed
}
