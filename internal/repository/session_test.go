package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/testing/suite"
)

const sessionTTL = time.Minute

func TestSessionRepository_Create(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

	// Given: a new session
	session := entity.NewSession("123")

	// When: Create is called
	err := sessionRepo.Create(ctx, session)

	// Then: no error should be returned, and the key carries the TTL
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, sessionTTL)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// Given: a stored session with a played cell and a score
		session := entity.NewSession("123")
		session.Mode = entity.ModeVsComputer
		session.Game.Board[4] = entity.PlayerX
		session.Game.Turn = entity.PlayerO
		session.Game.Score = entity.Score{X: 1, O: 2, Draws: 3}
		session.Version = 7

		require.NoError(t, sessionRepo.Create(ctx, session))

		// When: GetByID is called with the existing ID
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved one
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		// When: GetByID is called with a non-existent ID
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_Update(t *testing.T) {
	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)
		require.NoError(t, sessionRepo.Create(ctx, entity.NewSession("123")))

		// When: Update changes the mode
		updated, err := sessionRepo.Update(ctx, "123", func(session *entity.Session) error {
			session.Mode = entity.ModeVsComputer
			session.Touch()
			return nil
		})

		// Then: the change is returned and stored
		require.NoError(t, err)
		assert.Equal(t, entity.ModeVsComputer, updated.Mode)

		stored, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update_Aborted", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)
		require.NoError(t, sessionRepo.Create(ctx, entity.NewSession("123")))

		// When: the update function refuses the change
		_, err := sessionRepo.Update(ctx, "123", func(session *entity.Session) error {
			session.Mode = entity.ModeVsComputer
			return apperror.ErrStaleMove
		})

		// Then: the error is passed through and nothing is written
		require.ErrorIs(t, err, apperror.ErrStaleMove)

		stored, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.ModeTwoPlayer, stored.Mode)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		_, err := sessionRepo.Update(ctx, "missing", func(*entity.Session) error {
			return errors.New("must not be called")
		})

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Update_Concurrent", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)
		require.NoError(t, sessionRepo.Create(ctx, entity.NewSession("123")))

		// When: several writers bump the version at once
		const writers = 4

		var wg sync.WaitGroup
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := sessionRepo.Update(ctx, "123", func(session *entity.Session) error {
					session.Touch()
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then: no write is lost
		stored, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, uint64(writers), stored.Version)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)
		require.NoError(t, sessionRepo.Create(ctx, entity.NewSession("123")))

		// When: DeleteByID is called with the existing ID
		err := sessionRepo.DeleteByID(ctx, "123")

		// Then: the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, sessionTTL)

		err := sessionRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestSessionEvents(t *testing.T) {
	ctx, st := suite.New(t)

	events := NewSessionEvents(st.Logger, st.Storage)

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Given: a subscriber of session 123
	updates, closeSub, err := events.Subscribe(subCtx, "123")
	require.NoError(t, err)
	defer func() { _ = closeSub() }()

	// When: a snapshot of session 123 and one of another session are published
	other := entity.NewSession("456")
	require.NoError(t, events.Publish(ctx, other))

	session := entity.NewSession("123")
	session.Version = 3
	require.NoError(t, events.Publish(ctx, session))

	// Then: only the session 123 snapshot arrives
	select {
	case got := <-updates:
		assert.Equal(t, session, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no session event received")
	}

	// Then: cancelling the context closes the channel
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
