package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
	mockedRest "github.com/rocketscienceinc/tictactoe-session/mocks/rest"
)

const (
	secretKey = "test-secret"
	tokenTTL  = time.Hour
)

func newRoutes(t *testing.T) (http.Handler, *mockedRest.MocksessionUseCase) {
	t.Helper()

	sessions := mockedRest.NewMocksessionUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHandlers(logger, sessions, secretKey, tokenTTL).Routes(), sessions
}

func withToken(t *testing.T, req *http.Request, sessionID string) {
	t.Helper()

	token, err := pkg.IssueToken(secretKey, sessionID, tokenTTL)
	require.NoError(t, err)

	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionResponse {
	t.Helper()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp sessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp.Error
}

func TestHandlers_Ping(t *testing.T) {
	routes, _ := newRoutes(t)

	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_GetSession(t *testing.T) {
	t.Run("Starts a session and sets the cookie", func(t *testing.T) {
		// Given: a request without a cookie
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(session, nil).
			Once()

		// When: getting the session
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))

		// Then: the new session is returned with a token for it
		resp := decodeSession(t, rec)
		assert.Equal(t, session, resp.Session)
		assert.True(t, resp.Accepted)

		sessionID, err := pkg.ParseToken(secretKey, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, session.ID, sessionID)

		// Then: the same token is set as an http-only cookie
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookie, cookies[0].Name)
		assert.Equal(t, resp.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("Returns the session of the cookie", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())
		session.Game.Score = entity.Score{X: 2, Draws: 1}

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		withToken(t, req, session.ID)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		assert.Equal(t, session, decodeSession(t, rec).Session)
	})

	t.Run("Ignores a forged cookie", func(t *testing.T) {
		// Given: a cookie signed with another key
		routes, sessions := newRoutes(t)

		forged, err := pkg.IssueToken("other-secret", uuid.NewString(), tokenTTL)
		require.NoError(t, err)

		session := entity.NewSession(uuid.NewString())

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(session, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: forged})

		// When: getting the session
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		// Then: a new session is started
		assert.Equal(t, session.ID, decodeSession(t, rec).Session.ID)
	})

	t.Run("Storage failure", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(nil, errors.New("redis down")).
			Once()

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decodeError(t, rec))
	})
}

func TestHandlers_SelectCell(t *testing.T) {
	t.Run("Plays the cell", func(t *testing.T) {
		// Given: a session X is to move in
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())

		played := *session
		played.Game.Board[8] = entity.PlayerX
		played.Game.Turn = entity.PlayerO
		played.Version = 1

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		sessions.EXPECT().
			SelectCell(mock.Anything, session.ID, 8).
			Return(&played, true, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/api/session/cells/8", nil)
		withToken(t, req, session.ID)

		// When: selecting cell 8
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		// Then: the move is accepted
		resp := decodeSession(t, rec)
		assert.True(t, resp.Accepted)
		assert.Equal(t, &played, resp.Session)
	})

	t.Run("Rejected selection is still 200", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		sessions.EXPECT().
			SelectCell(mock.Anything, session.ID, 12).
			Return(session, false, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/api/session/cells/12", nil)
		withToken(t, req, session.ID)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		resp := decodeSession(t, rec)
		assert.False(t, resp.Accepted)
		assert.Equal(t, session, resp.Session)
	})

	t.Run("Cell must be an integer", func(t *testing.T) {
		routes, _ := newRoutes(t)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/session/cells/center", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errInvalidCell.Error(), decodeError(t, rec))
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		routes, _ := newRoutes(t)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/session/cells/1", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandlers_RestartAndResetScore(t *testing.T) {
	routes, sessions := newRoutes(t)

	session := entity.NewSession(uuid.NewString())
	session.Game.Score = entity.Score{O: 1}

	sessions.EXPECT().
		GetOrCreateSession(mock.Anything, session.ID).
		Return(session, nil).
		Twice()

	sessions.EXPECT().
		Restart(mock.Anything, session.ID).
		Return(session, nil).
		Once()

	reset := entity.NewSession(session.ID)
	sessions.EXPECT().
		ResetScore(mock.Anything, session.ID).
		Return(reset, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/session/restart", nil)
	withToken(t, req, session.ID)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)

	assert.Equal(t, entity.Score{O: 1}, decodeSession(t, rec).Session.Game.Score)

	req = httptest.NewRequest(http.MethodPost, "/api/session/reset-score", nil)
	withToken(t, req, session.ID)
	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, req)

	assert.Equal(t, entity.Score{}, decodeSession(t, rec).Session.Game.Score)
}

func TestHandlers_SetMode(t *testing.T) {
	t.Run("Switches to computer play", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())

		switched := *session
		switched.Mode = entity.ModeVsComputer

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		sessions.EXPECT().
			SetMode(mock.Anything, session.ID, entity.ModeVsComputer).
			Return(&switched, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/api/session/mode", strings.NewReader(`{"mode":"ai"}`))
		withToken(t, req, session.ID)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		assert.Equal(t, entity.ModeVsComputer, decodeSession(t, rec).Session.Mode)
	})

	t.Run("Unknown mode is a bad request", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		session := entity.NewSession(uuid.NewString())

		sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		sessions.EXPECT().
			SetMode(mock.Anything, session.ID, entity.Mode("online")).
			Return(nil, apperror.ErrUnknownMode).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/api/session/mode", strings.NewReader(`{"mode":"online"}`))
		withToken(t, req, session.ID)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "unknown mode", decodeError(t, rec))
	})

	t.Run("Malformed body", func(t *testing.T) {
		routes, _ := newRoutes(t)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/session/mode", strings.NewReader(`mode=ai`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errInvalidBody.Error(), decodeError(t, rec))
	})
}

func TestHandlers_EndSession(t *testing.T) {
	t.Run("Drops the session and clears the cookie", func(t *testing.T) {
		// Given: a request carrying a session cookie
		routes, sessions := newRoutes(t)

		sessionID := uuid.NewString()

		sessions.EXPECT().
			EndSession(mock.Anything, sessionID).
			Return(nil).
			Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
		withToken(t, req, sessionID)

		// When: ending the session
		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		// Then: the cookie is expired
		assert.Equal(t, http.StatusNoContent, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookie, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("Without a cookie there is nothing to end", func(t *testing.T) {
		routes, _ := newRoutes(t)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/session", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		routes, sessions := newRoutes(t)

		sessionID := uuid.NewString()

		sessions.EXPECT().
			EndSession(mock.Anything, sessionID).
			Return(errors.New("redis down")).
			Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
		withToken(t, req, sessionID)

		rec := httptest.NewRecorder()
		routes.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
