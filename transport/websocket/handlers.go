package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
)

var (
	errMalformedPayload = errors.New("malformed payload")
	errCellRequired     = errors.New("cell is required")
	errNotConnected     = errors.New("no session: send connect or a token first")
)

// handleConnect binds the connection to the session carried by the token, or
// to a new session when the token is missing or invalid.
func (that *Server) handleConnect(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleConnect")

	request, err := decodeRequest(message)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	var sessionID string
	if request.Token != "" {
		if sessionID, err = pkg.ParseToken(that.secretKey, request.Token); err != nil {
			log.Info("invalid session token, starting a new session", "error", err)
			sessionID = ""
		}
	}

	session, err := that.sessions.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	token, err := pkg.IssueToken(that.secretKey, session.ID, that.tokenTTL)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	if err = that.watchSession(ctx, conn, session.ID); err != nil {
		log.Error("failed to watch session", "sessionID", session.ID, "error", err)
	}

	log.Info("successfully connected", "sessionID", session.ID)

	return conn.send(message.Action, Payload{
		Token:    token,
		Session:  session,
		Accepted: true,
	})
}

func (that *Server) handleCellSelect(ctx context.Context, conn *connection, message *Message) error {
	request, sessionID, err := that.prepareAction(ctx, conn, message)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	if request.Cell == nil {
		return that.replyError(conn, message.Action, errCellRequired)
	}

	session, accepted, err := that.sessions.SelectCell(ctx, sessionID, *request.Cell)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	return conn.send(message.Action, Payload{Session: session, Accepted: accepted})
}

func (that *Server) handleGameRestart(ctx context.Context, conn *connection, message *Message) error {
	_, sessionID, err := that.prepareAction(ctx, conn, message)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	session, err := that.sessions.Restart(ctx, sessionID)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	return conn.send(message.Action, Payload{Session: session, Accepted: true})
}

func (that *Server) handleScoreReset(ctx context.Context, conn *connection, message *Message) error {
	_, sessionID, err := that.prepareAction(ctx, conn, message)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	session, err := that.sessions.ResetScore(ctx, sessionID)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	return conn.send(message.Action, Payload{Session: session, Accepted: true})
}

func (that *Server) handleModeSet(ctx context.Context, conn *connection, message *Message) error {
	request, sessionID, err := that.prepareAction(ctx, conn, message)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	session, err := that.sessions.SetMode(ctx, sessionID, request.Mode)
	if err != nil {
		return that.replyError(conn, message.Action, err)
	}

	return conn.send(message.Action, Payload{Session: session, Accepted: true})
}

// prepareAction decodes the payload and resolves the session the action applies
// to: the token's session if one is given, otherwise the connected one.
func (that *Server) prepareAction(ctx context.Context, conn *connection, message *Message) (*Request, string, error) {
	request, err := decodeRequest(message)
	if err != nil {
		return nil, "", err
	}

	if request.Token == "" {
		if conn.sessionID == "" {
			return nil, "", errNotConnected
		}
		return request, conn.sessionID, nil
	}

	sessionID, err := pkg.ParseToken(that.secretKey, request.Token)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse token: %w", err)
	}

	if err = that.watchSession(ctx, conn, sessionID); err != nil {
		that.logger.Error("failed to watch session", "sessionID", sessionID, "error", err)
	}

	return request, sessionID, nil
}

// watchSession binds conn to the session and forwards its published snapshots
// as game:update messages. Binding the already bound session is a no-op.
func (that *Server) watchSession(ctx context.Context, conn *connection, sessionID string) error {
	log := that.logger.With("method", "watchSession", "sessionID", sessionID)

	if conn.sessionID == sessionID {
		return nil
	}

	updates, stop, err := that.events.Subscribe(ctx, sessionID)
	if err != nil {
		conn.bind(sessionID, nil)
		return fmt.Errorf("failed to subscribe to session updates: %w", err)
	}

	conn.bind(sessionID, func() {
		if err := stop(); err != nil {
			log.Debug("failed to stop session updates", "error", err)
		}
	})

	go func() {
		for session := range updates {
			if err := conn.send(actionGameUpdate, Payload{Session: session, Accepted: true}); err != nil {
				log.Debug("failed to send game update", "error", err)
			}
		}
	}()

	return nil
}

// replyError tells the client what went wrong and hands err back for logging.
func (that *Server) replyError(conn *connection, action string, err error) error {
	if sendErr := conn.sendError(action, clientError(err)); sendErr != nil {
		return errors.Join(err, sendErr)
	}

	return err
}

func clientError(err error) string {
	switch {
	case errors.Is(err, errMalformedPayload):
		return errMalformedPayload.Error()
	case errors.Is(err, errCellRequired):
		return errCellRequired.Error()
	case errors.Is(err, errNotConnected):
		return errNotConnected.Error()
	case errors.Is(err, apperror.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, apperror.ErrUnknownMode):
		return "unknown mode"
	case errors.Is(err, apperror.ErrSessionNotFound):
		return "session not found"
	default:
		return "internal error"
	}
}

func decodeRequest(message *Message) (*Request, error) {
	var request Request

	if len(message.Payload) == 0 {
		return &request, nil
	}

	if err := json.Unmarshal(message.Payload, &request); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedPayload, err)
	}

	return &request, nil
}
