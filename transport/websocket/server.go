package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type uGame interface {
	StartGame(ctx context.Context, difficulty entity.Difficulty, computer entity.Player, username string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, player entity.Player, move entity.Move) (*entity.Game, error)
	ComputerTurn(ctx context.Context, id string, epoch uint64) (*entity.Game, error)
	ExpireTurn(ctx context.Context, id string, epoch uint64, player entity.Player) (*entity.Game, error)
	ResetGame(ctx context.Context, id string) (*entity.Game, error)
}

type timerScheduler interface {
	Schedule(key string, delay time.Duration, fn func()) bool
	Cancel(key string) bool
}

// Pacing holds the delays the server waits before acting on its own.
type Pacing struct {
	ComputerDelay time.Duration
	// TurnTimeout of zero disables the countdown.
	TurnTimeout time.Duration
}

type Server struct {
	logger    *slog.Logger
	uGame     uGame
	timers    timerScheduler
	pacing    Pacing
	hub       *Hub
	upgrader  websocket.Upgrader

	// epochs holds the newest epoch published per game; older states are not
	// broadcast or armed.
	mu     sync.Mutex
	epochs map[string]uint64

	handlers map[string]func(ctx context.Context, client *Client, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, timers timerScheduler, pacing Pacing) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		uGame:     uGame,
		timers:    timers,
		pacing:    pacing,
		hub:       NewHub(),
		epochs:    make(map[string]uint64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(context.Context, *Client, *Message) error),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionTurn] = server.handleGameTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionState] = server.handleState

	return server
}

// Handler - returns the /ws endpoint. ctx bounds the server-driven game events.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	that.hub.Register(client)

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	go client.writePump()
	that.handleMessages(ctx, client)
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, client *Client) {
	log := that.logger.With("method", "handleMessages")

	defer func() {
		that.hub.Unregister(client)
		_ = client.conn.Close()
	}()

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(client, "malformed_message", "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(client, "unknown_action", "unknown action "+message.Action)
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) encode(action string, payload ResponsePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return data, nil
}

func (that *Server) sendMessage(client *Client, action string, payload ResponsePayload) {
	data, err := that.encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.hub.Send(client, data)
}

func (that *Server) broadcast(gameID, action string, payload ResponsePayload) {
	data, err := that.encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.hub.Broadcast(gameID, data)
	that.logger.Debug("broadcast", "game_id", gameID, "action", action, "watchers", that.hub.watchers(gameID))
}

func (that *Server) sendError(client *Client, reason, message string) {
	that.sendMessage(client, actionError, ResponsePayload{Error: message, Reason: reason})
}
