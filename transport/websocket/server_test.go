package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
	"github.com/rocketscienceinc/tictactoe-session/internal/pkg"
	mockedWebSocket "github.com/rocketscienceinc/tictactoe-session/mocks/websocket"
)

const (
	secretKey = "test-secret"
	tokenTTL  = time.Hour
	readWait  = 2 * time.Second
)

type harness struct {
	sessions *mockedWebSocket.MocksessionUseCase
	events   *mockedWebSocket.MocksessionSubscriber
	conn     *ws.Conn
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	sessions := mockedWebSocket.NewMocksessionUseCase(t)
	events := mockedWebSocket.NewMocksessionSubscriber(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := New(logger, sessions, events, secretKey, tokenTTL)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"

	conn, resp, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	t.Cleanup(func() { _ = conn.Close() })

	return &harness{sessions: sessions, events: events, conn: conn}
}

func (that *harness) send(t *testing.T, action string, request any) {
	t.Helper()

	payload, err := json.Marshal(request)
	require.NoError(t, err)

	require.NoError(t, that.conn.WriteJSON(Message{Action: action, Payload: payload}))
}

func (that *harness) receive(t *testing.T) (string, Payload) {
	t.Helper()

	require.NoError(t, that.conn.SetReadDeadline(time.Now().Add(readWait)))

	var message Message
	require.NoError(t, that.conn.ReadJSON(&message))

	var payload Payload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message.Action, payload
}

// expectSubscribe returns the channel feeding game:update messages for id.
func (that *harness) expectSubscribe(id string) chan *entity.Session {
	updates := make(chan *entity.Session, 1)

	var once sync.Once
	stop := func() error {
		once.Do(func() { close(updates) })
		return nil
	}

	that.events.EXPECT().
		Subscribe(mock.Anything, id).
		Return(updates, stop, nil).
		Once()

	return updates
}

// connect performs the connect handshake for a fresh session.
func (that *harness) connect(t *testing.T) (*entity.Session, chan *entity.Session) {
	t.Helper()

	session := entity.NewSession(uuid.NewString())

	that.sessions.EXPECT().
		GetOrCreateSession(mock.Anything, "").
		Return(session, nil).
		Once()

	updates := that.expectSubscribe(session.ID)

	that.send(t, actionConnect, Request{})
	action, payload := that.receive(t)
	require.Equal(t, actionConnect, action)
	require.Empty(t, payload.Error)

	return session, updates
}

func TestServer_Connect(t *testing.T) {
	t.Run("Creates a session and issues a token", func(t *testing.T) {
		// Given: a client without a token
		h := newHarness(t)

		session := entity.NewSession(uuid.NewString())

		h.sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(session, nil).
			Once()

		h.expectSubscribe(session.ID)

		// When: the client connects
		h.send(t, actionConnect, Request{})
		action, payload := h.receive(t)

		// Then: the reply carries the session and a token for it
		assert.Equal(t, actionConnect, action)
		assert.True(t, payload.Accepted)
		assert.Equal(t, session, payload.Session)

		sessionID, err := pkg.ParseToken(secretKey, payload.Token)
		require.NoError(t, err)
		assert.Equal(t, session.ID, sessionID)
	})

	t.Run("Resumes the session of a valid token", func(t *testing.T) {
		// Given: a client holding a token
		h := newHarness(t)

		session := entity.NewSession(uuid.NewString())
		session.Game.Score = entity.Score{O: 3}

		token, err := pkg.IssueToken(secretKey, session.ID, tokenTTL)
		require.NoError(t, err)

		h.sessions.EXPECT().
			GetOrCreateSession(mock.Anything, session.ID).
			Return(session, nil).
			Once()

		h.expectSubscribe(session.ID)

		// When: the client connects with it
		h.send(t, actionConnect, Request{Token: token})
		_, payload := h.receive(t)

		// Then: the stored session is returned
		assert.Equal(t, session, payload.Session)
	})

	t.Run("Starts over with an invalid token", func(t *testing.T) {
		h := newHarness(t)

		session := entity.NewSession(uuid.NewString())

		h.sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(session, nil).
			Once()

		h.expectSubscribe(session.ID)

		h.send(t, actionConnect, Request{Token: "not-a-token"})
		_, payload := h.receive(t)

		assert.Equal(t, session.ID, payload.Session.ID)
		assert.NotEmpty(t, payload.Token)
	})

	t.Run("Reports a failing use case", func(t *testing.T) {
		h := newHarness(t)

		h.sessions.EXPECT().
			GetOrCreateSession(mock.Anything, "").
			Return(nil, context.DeadlineExceeded).
			Once()

		h.send(t, actionConnect, Request{})
		action, payload := h.receive(t)

		assert.Equal(t, actionConnect, action)
		assert.Equal(t, "internal error", payload.Error)
		assert.Nil(t, payload.Session)
	})
}

func TestServer_CellSelect(t *testing.T) {
	t.Run("Plays the cell of the connected session", func(t *testing.T) {
		// Given: a connected client
		h := newHarness(t)
		session, _ := h.connect(t)

		played := *session
		played.Game.Board[4] = entity.PlayerX
		played.Game.Turn = entity.PlayerO
		played.Version = 1

		h.sessions.EXPECT().
			SelectCell(mock.Anything, session.ID, 4).
			Return(&played, true, nil).
			Once()

		// When: the client selects cell 4
		h.send(t, actionCellSelect, map[string]int{"cell": 4})
		action, payload := h.receive(t)

		// Then: the new snapshot is returned as accepted
		assert.Equal(t, actionCellSelect, action)
		assert.True(t, payload.Accepted)
		assert.Equal(t, &played, payload.Session)
	})

	t.Run("Rejected selection is not an error", func(t *testing.T) {
		h := newHarness(t)
		session, _ := h.connect(t)

		h.sessions.EXPECT().
			SelectCell(mock.Anything, session.ID, 0).
			Return(session, false, nil).
			Once()

		h.send(t, actionCellSelect, map[string]int{"cell": 0})
		_, payload := h.receive(t)

		assert.False(t, payload.Accepted)
		assert.Empty(t, payload.Error)
		assert.Equal(t, session, payload.Session)
	})

	t.Run("Cell is required", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t)

		h.send(t, actionCellSelect, Request{})
		_, payload := h.receive(t)

		assert.Equal(t, errCellRequired.Error(), payload.Error)
	})

	t.Run("Requires a session", func(t *testing.T) {
		// Given: a client that never connected
		h := newHarness(t)

		// When: it selects a cell without a token
		h.send(t, actionCellSelect, map[string]int{"cell": 4})
		_, payload := h.receive(t)

		// Then: it is told to connect first
		assert.Equal(t, errNotConnected.Error(), payload.Error)
	})

	t.Run("Rejects an invalid token", func(t *testing.T) {
		h := newHarness(t)

		h.send(t, actionCellSelect, map[string]any{"cell": 4, "token": "forged"})
		_, payload := h.receive(t)

		assert.Equal(t, "invalid token", payload.Error)
	})
}

func TestServer_ActionsWithToken(t *testing.T) {
	// Given: a client that only holds a token
	h := newHarness(t)

	session := entity.NewSession(uuid.NewString())
	session.Game.Score = entity.Score{X: 1}

	token, err := pkg.IssueToken(secretKey, session.ID, tokenTTL)
	require.NoError(t, err)

	h.expectSubscribe(session.ID)

	h.sessions.EXPECT().
		Restart(mock.Anything, session.ID).
		Return(session, nil).
		Once()

	reset := entity.NewSession(session.ID)
	h.sessions.EXPECT().
		ResetScore(mock.Anything, session.ID).
		Return(reset, nil).
		Once()

	// When: it restarts and then resets the score
	h.send(t, actionGameRestart, Request{Token: token})
	restartAction, restartPayload := h.receive(t)

	h.send(t, actionScoreReset, Request{Token: token})
	resetAction, resetPayload := h.receive(t)

	// Then: both act on the token's session, subscribing only once
	assert.Equal(t, actionGameRestart, restartAction)
	assert.Equal(t, session, restartPayload.Session)

	assert.Equal(t, actionScoreReset, resetAction)
	assert.Equal(t, reset, resetPayload.Session)
}

func TestServer_ModeSet(t *testing.T) {
	t.Run("Switches the mode", func(t *testing.T) {
		h := newHarness(t)
		session, _ := h.connect(t)

		switched := *session
		switched.Mode = entity.ModeVsComputer

		h.sessions.EXPECT().
			SetMode(mock.Anything, session.ID, entity.ModeVsComputer).
			Return(&switched, nil).
			Once()

		h.send(t, actionModeSet, Request{Mode: entity.ModeVsComputer})
		_, payload := h.receive(t)

		assert.True(t, payload.Accepted)
		assert.Equal(t, entity.ModeVsComputer, payload.Session.Mode)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		h := newHarness(t)
		session, _ := h.connect(t)

		h.sessions.EXPECT().
			SetMode(mock.Anything, session.ID, entity.Mode("online")).
			Return(nil, apperror.ErrUnknownMode).
			Once()

		h.send(t, actionModeSet, Request{Mode: "online"})
		_, payload := h.receive(t)

		assert.Equal(t, "unknown mode", payload.Error)
		assert.False(t, payload.Accepted)
	})
}

func TestServer_GameUpdate(t *testing.T) {
	// Given: a connected client
	h := newHarness(t)
	session, updates := h.connect(t)

	// When: the computer's move is published for its session
	moved := *session
	moved.Mode = entity.ModeVsComputer
	moved.Game.Board[0] = entity.PlayerX
	moved.Game.Board[4] = entity.PlayerO
	moved.Version = 2
	updates <- &moved

	// Then: it arrives unsolicited as game:update
	action, payload := h.receive(t)
	assert.Equal(t, actionGameUpdate, action)
	assert.Equal(t, &moved, payload.Session)
}

func TestServer_BadMessages(t *testing.T) {
	t.Run("Unknown action", func(t *testing.T) {
		h := newHarness(t)

		h.send(t, "game:leave", Request{})
		action, payload := h.receive(t)

		assert.Equal(t, "game:leave", action)
		assert.Equal(t, "unknown action", payload.Error)
	})

	t.Run("Malformed message keeps the connection open", func(t *testing.T) {
		// Given: a client sending garbage
		h := newHarness(t)
		require.NoError(t, h.conn.WriteMessage(ws.TextMessage, []byte("{not json")))

		// Then: it gets an error reply
		action, payload := h.receive(t)
		assert.Empty(t, action)
		assert.Equal(t, "malformed message", payload.Error)

		// Then: the next message is still served
		h.send(t, "game:leave", Request{})
		_, payload = h.receive(t)
		assert.Equal(t, "unknown action", payload.Error)
	})

	t.Run("Malformed payload", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.conn.WriteJSON(Message{Action: actionConnect, Payload: json.RawMessage(`"token"`)}))
		_, payload := h.receive(t)

		assert.Equal(t, errMalformedPayload.Error(), payload.Error)
	})
}
