package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
)

const (
	SessionCookie = "session_token"

	maxBodySize = 1 << 10
)

var (
	errInvalidCell = errors.New("cell must be an integer")
	errInvalidBody = errors.New("malformed request body")
)

type sessionUseCase interface {
	GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error)
	SelectCell(ctx context.Context, id string, cell int) (*entity.Session, bool, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ResetScore(ctx context.Context, id string) (*entity.Session, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	EndSession(ctx context.Context, id string) error
}

type Handlers struct {
	logger *slog.Logger

	sessions sessionUseCase

	secretKey string
	tokenTTL  time.Duration
}

type sessionResponse struct {
	Session  *entity.Session `json:"session"`
	Accepted bool            `json:"accepted"`
	Token    string          `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type modeRequest struct {
	Mode entity.Mode `json:"mode"`
}

func NewHandlers(logger *slog.Logger, sessions sessionUseCase, secretKey string, tokenTTL time.Duration) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),

		sessions: sessions,

		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

func (that *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.Ping)

	mux.HandleFunc("GET /api/session", that.GetSession)
	mux.HandleFunc("POST /api/session/cells/{cell}", that.SelectCell)
	mux.HandleFunc("POST /api/session/restart", that.Restart)
	mux.HandleFunc("POST /api/session/reset-score", that.ResetScore)
	mux.HandleFunc("POST /api/session/mode", that.SetMode)
	mux.HandleFunc("DELETE /api/session", that.EndSession)

	return mux
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

// GetSession returns the caller's session, starting one when the cookie is
// missing, invalid or points to an expired session.
func (that *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.currentSession(r)
	if err != nil {
		that.writeError(w, "GetSession", err)
		return
	}

	that.writeSession(w, session, true)
}

func (that *Handlers) SelectCell(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(r.PathValue("cell"))
	if err != nil {
		that.writeError(w, "SelectCell", fmt.Errorf("%w: %w", errInvalidCell, err))
		return
	}

	session, err := that.currentSession(r)
	if err != nil {
		that.writeError(w, "SelectCell", err)
		return
	}

	session, accepted, err := that.sessions.SelectCell(r.Context(), session.ID, cell)
	if err != nil {
		that.writeError(w, "SelectCell", err)
		return
	}

	that.writeSession(w, session, accepted)
}

func (that *Handlers) Restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.currentSession(r)
	if err != nil {
		that.writeError(w, "Restart", err)
		return
	}

	if session, err = that.sessions.Restart(r.Context(), session.ID); err != nil {
		that.writeError(w, "Restart", err)
		return
	}

	that.writeSession(w, session, true)
}

func (that *Handlers) ResetScore(w http.ResponseWriter, r *http.Request) {
	session, err := that.currentSession(r)
	if err != nil {
		that.writeError(w, "ResetScore", err)
		return
	}

	if session, err = that.sessions.ResetScore(r.Context(), session.ID); err != nil {
		that.writeError(w, "ResetScore", err)
		return
	}

	that.writeSession(w, session, true)
}

func (that *Handlers) SetMode(w http.ResponseWriter, r *http.Request) {
	var request modeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&request); err != nil {
		that.writeError(w, "SetMode", fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	session, err := that.currentSession(r)
	if err != nil {
		that.writeError(w, "SetMode", err)
		return
	}

	if session, err = that.sessions.SetMode(r.Context(), session.ID, request.Mode); err != nil {
		that.writeError(w, "SetMode", err)
		return
	}

	that.writeSession(w, session, true)
}

// EndSession drops the session behind the cookie and clears the cookie.
func (that *Handlers) EndSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if sessionID, err := pkg.ParseToken(that.secretKey, cookie.Value); err == nil {
			if err = that.sessions.EndSession(r.Context(), sessionID); err != nil {
				that.writeError(w, "EndSession", err)
				return
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// currentSession resolves the session behind the cookie. The cookie is never
// trusted blindly: an invalid token starts a new session.
func (that *Handlers) currentSession(r *http.Request) (*entity.Session, error) {
	log := that.logger.With("method", "currentSession")

	var sessionID string

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if sessionID, err = pkg.ParseToken(that.secretKey, cookie.Value); err != nil {
			log.Info("invalid session token, starting a new session", "error", err)
			sessionID = ""
		}
	}

	session, err := that.sessions.GetOrCreateSession(r.Context(), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// writeSession replies with the snapshot and refreshes the session cookie.
func (that *Handlers) writeSession(w http.ResponseWriter, session *entity.Session, accepted bool) {
	token, err := pkg.IssueToken(that.secretKey, session.ID, that.tokenTTL)
	if err != nil {
		that.writeError(w, "writeSession", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(that.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	that.writeJSON(w, http.StatusOK, sessionResponse{
		Session:  session,
		Accepted: accepted,
		Token:    token,
	})
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	log := that.logger.With("method", method)

	status, message := http.StatusInternalServerError, "internal error"

	switch {
	case errors.Is(err, errInvalidCell):
		status, message = http.StatusBadRequest, errInvalidCell.Error()
	case errors.Is(err, errInvalidBody):
		status, message = http.StatusBadRequest, errInvalidBody.Error()
	case errors.Is(err, apperror.ErrUnknownMode):
		status, message = http.StatusBadRequest, "unknown mode"
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Info("bad request", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
