package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	maxMessageSize = 4096
)

type sessionUseCase interface {
	GetOrCreateSession(ctx context.Context, id string) (*entity.Session, error)
	SelectCell(ctx context.Context, id string, cell int) (*entity.Session, bool, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ResetScore(ctx context.Context, id string) (*entity.Session, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
}

type sessionSubscriber interface {
	Subscribe(ctx context.Context, id string) (<-chan *entity.Session, func() error, error)
}

type handlerFunc func(ctx context.Context, conn *connection, message *Message) error

type Server struct {
	logger *slog.Logger

	sessions sessionUseCase
	events   sessionSubscriber

	secretKey string
	tokenTTL  time.Duration

	upgrader ws.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions sessionUseCase, events sessionSubscriber, secretKey string, tokenTTL time.Duration) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),

		sessions: sessions,
		events:   events,

		secretKey: secretKey,
		tokenTTL:  tokenTTL,

		upgrader: ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionCellSelect] = server.handleCellSelect
	server.handlers[actionGameRestart] = server.handleGameRestart
	server.handlers[actionScoreReset] = server.handleScoreReset
	server.handlers[actionModeSet] = server.handleModeSet

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection to WebSocket and serves it until the peer leaves.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	conn := newConnection(wsConn)
	defer conn.close()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	go conn.keepAlive(ctx, log)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}

	log.Info("WebSocket connection closed", "remote", req.RemoteAddr)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	conn.conn.SetReadLimit(maxMessageSize)
	_ = conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		message, err := conn.read()
		if errors.Is(err, errMalformedMessage) {
			log.Error("failed to unmarshal message", "error", err)
			if err = conn.sendError("", "malformed message"); err != nil {
				return err
			}
			continue
		}

		if err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseNormalClosure) {
				return fmt.Errorf("failed to read message: %w", err)
			}
			return nil
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = conn.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, conn, message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
