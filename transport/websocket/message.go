package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const (
	actionConnect     = "connect"
	actionCellSelect  = "cell:select"
	actionGameRestart = "game:restart"
	actionScoreReset  = "score:reset"
	actionModeSet     = "mode:set"
	actionGameUpdate  = "game:update"
)

var errMalformedMessage = errors.New("malformed message")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Request is the payload sent by the client.
type Request struct {
	Token string      `json:"token,omitempty"`
	Cell  *int        `json:"cell,omitempty"`
	Mode  entity.Mode `json:"mode,omitempty"`
}

// Payload is the payload sent to the client.
type Payload struct {
	Token    string          `json:"token,omitempty"`
	Session  *entity.Session `json:"session,omitempty"`
	Accepted bool            `json:"accepted"`
	Error    string          `json:"error,omitempty"`
}

// connection serializes writes to one socket and tracks the session it is
// bound to. sessionID and stopUpdates are owned by the read loop.
type connection struct {
	conn    *ws.Conn
	writeMu sync.Mutex

	sessionID   string
	stopUpdates func()
}

func newConnection(conn *ws.Conn) *connection {
	return &connection{conn: conn}
}

func (that *connection) read() (*Message, error) {
	_, data, err := that.conn.ReadMessage()
	if err != nil {
		return nil, err //nolint: wrapcheck // close errors are inspected by the caller
	}

	var message Message
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return &message, nil
}

func (that *connection) send(action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, errorMsg string) error {
	if err := that.send(action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

// bind switches the connection to a session, replacing the previous update
// subscription.
func (that *connection) bind(sessionID string, stopUpdates func()) {
	that.unbind()

	that.sessionID = sessionID
	that.stopUpdates = stopUpdates
}

func (that *connection) unbind() {
	if that.stopUpdates != nil {
		that.stopUpdates()
	}

	that.sessionID = ""
	that.stopUpdates = nil
}

// keepAlive pings the peer until ctx is done, then closes the socket so the
// read loop returns.
func (that *connection) keepAlive(ctx context.Context, log *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closeMsg := ws.FormatCloseMessage(ws.CloseGoingAway, "server shutting down")
			_ = that.conn.WriteControl(ws.CloseMessage, closeMsg, time.Now().Add(writeWait))
			_ = that.conn.Close()
			return
		case <-ticker.C:
			if err := that.conn.WriteControl(ws.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug("failed to ping peer", "error", err)
				return
			}
		}
	}
}

func (that *connection) close() {
	that.unbind()
	_ = that.conn.Close()
}
