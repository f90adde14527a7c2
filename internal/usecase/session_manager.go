package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-session/internal/tictactoe"
)

const (
	tracerName = "github.com/rocketscienceinc/tictactoe-session/internal/usecase"

	deferredMoveTimeout = 5 * time.Second

	// computerMoveRetries bounds re-tries of a computer move the store failed
	// to apply. A later read of the session re-arms it after that.
	computerMoveRetries = 3
)

type sessionRepo interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, id string, fn func(session *entity.Session) error) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionEvents interface {
	Publish(ctx context.Context, session *entity.Session) error
}

type SessionManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	sessionRepo sessionRepo
	events      sessionEvents
	scheduler   *MoveScheduler

	computerDelay time.Duration

	randomMu sync.Mutex
	random   tictactoe.RandomSource
}

func NewSessionManager(
	logger *slog.Logger,
	sessionRepo sessionRepo,
	events sessionEvents,
	scheduler *MoveScheduler,
	random tictactoe.RandomSource,
	computerDelay time.Duration,
) *SessionManager {
	return &SessionManager{
		logger: logger.With("component", "session-manager"),
		tracer: otel.Tracer(tracerName),

		sessionRepo: sessionRepo,
		events:      events,
		scheduler:   scheduler,

		computerDelay: computerDelay,
		random:        random,
	}
}

// GetOrCreateSession returns the stored session or starts a fresh one. An
// empty id always starts a new session; an expired one is recreated under
// the same id. A stored session waiting for the computer gets its move
// re-armed when none is pending on this instance.
func (that *SessionManager) GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	ctx, span := that.startSpan(ctx, "GetOrCreateSession", id)
	defer span.End()

	if id != "" {
		session, err := that.sessionRepo.GetByID(ctx, id)
		if err == nil {
			that.ensureComputerMove(session)
			return session, nil
		}

		if !errors.Is(err, apperror.ErrSessionNotFound) {
			return nil, recordError(span, fmt.Errorf("failed to get session: %w", err))
		}
	} else {
		id = pkg.GenerateNewSessionID()
	}

	session := entity.NewSession(id)
	if err := that.sessionRepo.Create(ctx, session); err != nil {
		return nil, recordError(span, fmt.Errorf("failed to create session: %w", err))
	}

	that.logger.Info("session created", "sessionID", id)

	return session, nil
}

// SelectCell plays the current player's mark. An invalid selection (filled
// cell, finished game, out of range, or the computer's turn) is ignored and
// reported through accepted=false, not as an error.
func (that *SessionManager) SelectCell(ctx context.Context, id string, cell int) (*entity.Session, bool, error) {
	ctx, span := that.startSpan(ctx, "SelectCell", id)
	defer span.End()

	span.SetAttributes(attribute.Int("game.cell", cell))

	var accepted bool

	session, err := that.sessionRepo.Update(ctx, id, func(session *entity.Session) error {
		accepted = false

		if session.IsComputerTurn() {
			return nil
		}

		game, ok := tictactoe.SelectCell(session.Game, cell)
		if !ok {
			return nil
		}

		session.Game = game
		session.Touch()
		accepted = true

		return nil
	})
	if err != nil {
		return nil, false, recordError(span, fmt.Errorf("failed to select cell: %w", err))
	}

	span.SetAttributes(attribute.Bool("game.accepted", accepted))

	switch {
	case accepted && session.IsComputerTurn():
		that.scheduleComputerMove(session.ID, session.Version, 0)
	case !accepted:
		that.ensureComputerMove(session)
	}

	return session, accepted, nil
}

// Restart clears the board and keeps the score.
func (that *SessionManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	ctx, span := that.startSpan(ctx, "Restart", id)
	defer span.End()

	session, err := that.reset(ctx, id, func(session *entity.Session) {
		session.Game = tictactoe.Restart(session.Game)
	})
	if err != nil {
		return nil, recordError(span, fmt.Errorf("failed to restart game: %w", err))
	}

	return session, nil
}

// ResetScore zeroes the score and restarts the game.
func (that *SessionManager) ResetScore(ctx context.Context, id string) (*entity.Session, error) {
	ctx, span := that.startSpan(ctx, "ResetScore", id)
	defer span.End()

	session, err := that.reset(ctx, id, func(session *entity.Session) {
		session.Game = tictactoe.ResetScore(session.Game)
	})
	if err != nil {
		return nil, recordError(span, fmt.Errorf("failed to reset score: %w", err))
	}

	return session, nil
}

// SetMode switches between two-player and computer play and restarts the game.
func (that *SessionManager) SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error) {
	ctx, span := that.startSpan(ctx, "SetMode", id)
	defer span.End()

	span.SetAttributes(attribute.String("game.mode", string(mode)))

	if !mode.IsValid() {
		return nil, recordError(span, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode))
	}

	session, err := that.reset(ctx, id, func(session *entity.Session) {
		session.Mode = mode
		session.Game = tictactoe.Restart(session.Game)
	})
	if err != nil {
		return nil, recordError(span, fmt.Errorf("failed to set mode: %w", err))
	}

	return session, nil
}

// EndSession drops the session together with its pending computer move.
// Ending an unknown session is not an error.
func (that *SessionManager) EndSession(ctx context.Context, id string) error {
	ctx, span := that.startSpan(ctx, "EndSession", id)
	defer span.End()

	that.scheduler.Cancel(id)

	err := that.sessionRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return recordError(span, fmt.Errorf("failed to delete session: %w", err))
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

// Close drops every pending computer move.
func (that *SessionManager) Close() {
	that.scheduler.Stop()
}

// reset applies fn as a new round of the session. Any pending computer move
// is cancelled; the version bump also invalidates one that is already firing.
func (that *SessionManager) reset(ctx context.Context, id string, fn func(session *entity.Session)) (*entity.Session, error) {
	that.scheduler.Cancel(id)

	session, err := that.sessionRepo.Update(ctx, id, func(session *entity.Session) error {
		fn(session)
		session.Touch()
		return nil
	})
	if err != nil {
		return nil, err //nolint: wrapcheck // wrapped by the caller
	}

	return session, nil
}

func (that *SessionManager) scheduleComputerMove(id string, version uint64, attempt int) {
	that.scheduler.Schedule(id, that.computerDelay, func() {
		that.applyComputerMove(id, version, attempt)
	})
}

// ensureComputerMove arms the computer move for a session left on the
// computer's turn without one, e.g. after a restart of the process or when
// the move was scheduled by another instance.
func (that *SessionManager) ensureComputerMove(session *entity.Session) {
	if !session.IsComputerTurn() || that.scheduler.Pending(session.ID) {
		return
	}

	that.logger.Debug("re-arming computer move", "sessionID", session.ID, "version", session.Version)
	that.scheduleComputerMove(session.ID, session.Version, 0)
}

// applyComputerMove is the deferred computer turn. It is discarded when the
// session has changed since the move was scheduled for version.
func (that *SessionManager) applyComputerMove(id string, version uint64, attempt int) {
	log := that.logger.With("method", "applyComputerMove", "sessionID", id, "version", version)

	ctx, cancel := context.WithTimeout(context.Background(), deferredMoveTimeout)
	defer cancel()

	ctx, span := that.startSpan(ctx, "applyComputerMove", id)
	defer span.End()

	var cell int

	session, err := that.sessionRepo.Update(ctx, id, func(session *entity.Session) error {
		if session.Version != version || !session.IsComputerTurn() {
			return apperror.ErrStaleMove
		}

		var ok bool
		if cell, ok = that.chooseMove(session.Game.Board); !ok {
			return apperror.ErrStaleMove
		}

		game, ok := tictactoe.SelectCell(session.Game, cell)
		if !ok {
			return apperror.ErrStaleMove
		}

		session.Game = game
		session.Touch()

		return nil
	})
	if errors.Is(err, apperror.ErrStaleMove) || errors.Is(err, apperror.ErrSessionNotFound) {
		log.Debug("discarding stale computer move", "error", err)
		return
	}

	if err != nil {
		log.Error("failed to apply computer move", "error", recordError(span, err), "attempt", attempt)

		if attempt < computerMoveRetries {
			that.scheduleComputerMove(id, version, attempt+1)
		}

		return
	}

	span.SetAttributes(attribute.Int("game.cell", cell))
	log.Debug("computer moved", "cell", cell)

	if err = that.events.Publish(ctx, session); err != nil {
		log.Error("failed to publish session", "error", recordError(span, err))
	}
}

func (that *SessionManager) chooseMove(board entity.Board) (int, bool) {
	that.randomMu.Lock()
	defer that.randomMu.Unlock()

	return tictactoe.ChooseComputerMove(board, entity.ComputerMark, that.random)
}

func (that *SessionManager) startSpan(ctx context.Context, name, sessionID string) (context.Context, trace.Span) {
	return that.tracer.Start(ctx, "SessionManager."+name,
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
