package websocket

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/scheduler"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/service"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/ultimate-tictactoe/testing/suite"
)

type memoryGames struct {
	mu    sync.Mutex
	games map[string]entity.Game
}

func (that *memoryGames) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = *game

	return nil
}

func (that *memoryGames) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return &game, nil
}

type memoryLeaderboard struct{}

func (memoryLeaderboard) Add(context.Context, entity.ScoreEntry) error { return nil }

func (memoryLeaderboard) Top(context.Context, int64) ([]entity.ScoreEntry, error) {
	return nil, nil
}

func (memoryLeaderboard) Usernames(context.Context) ([]string, error) { return nil, nil }

func (memoryLeaderboard) Clear(context.Context) error { return nil }

func newManager() *usecase.GameManager {
	return usecase.NewGameManager(
		suite.NewLogger(),
		&memoryGames{games: make(map[string]entity.Game)},
		memoryLeaderboard{},
		service.NewBotService(rand.New(rand.NewSource(7))),
		tictactoe.DefaultScoreTable(),
		10,
	)
}

func newTimers(t *testing.T) *scheduler.Scheduler {
	t.Helper()

	sched := scheduler.New()
	t.Cleanup(sched.Stop)

	return sched
}

// serveWS - serves server over httptest and returns its /ws URL.
func serveWS(t *testing.T, server *Server) string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	httpServer := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(httpServer.Close)

	return "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
}

func startServer(t *testing.T, pacing Pacing) string {
	t.Helper()

	return serveWS(t, New(suite.NewLogger(), newManager(), newTimers(t), pacing))
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: body}))
}

func receive(t *testing.T, conn *websocket.Conn) (string, ResponsePayload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	var payload ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message.Action, payload
}

func TestServer_NewGame(t *testing.T) {
	t.Run("Computer opens when it plays X", func(t *testing.T) {
		// Given: a server with a short computer delay
		conn := dial(t, startServer(t, Pacing{ComputerDelay: 10 * time.Millisecond}))

		// When: an easy game is started with the computer as X
		send(t, conn, actionNewGame, NewGameRequest{Difficulty: entity.DifficultyEasy, Computer: entity.PlayerX})

		// Then: the fresh game comes back, followed by the computer's move
		action, payload := receive(t, conn)
		assert.Equal(t, actionNewGame, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 0, payload.Game.MoveCount)
		assert.Len(t, payload.LegalMoves, 81)

		action, payload = receive(t, conn)
		assert.Equal(t, actionUpdate, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 1, payload.Game.MoveCount)
		assert.Equal(t, entity.PlayerO, payload.Game.Turn)
		require.NotNil(t, payload.Game.Forced)
		require.NotEmpty(t, payload.LegalMoves)
		for _, move := range payload.LegalMoves {
			assert.Equal(t, *payload.Game.Forced, move.Board())
		}
	})

	t.Run("Unknown difficulty is refused", func(t *testing.T) {
		conn := dial(t, startServer(t, Pacing{}))

		send(t, conn, actionNewGame, map[string]string{"difficulty": "insane"})

		action, payload := receive(t, conn)
		assert.Equal(t, actionError, action)
		assert.Equal(t, "invalid_difficulty", payload.Reason)
	})
}

func TestServer_GameTurn(t *testing.T) {
	t.Run("Two players share one connection", func(t *testing.T) {
		// Given: a two-player game
		conn := dial(t, startServer(t, Pacing{}))
		send(t, conn, actionNewGame, NewGameRequest{})
		_, created := receive(t, conn)
		gameID := created.Game.ID

		// When: X plays the centre of the centre
		send(t, conn, actionTurn, TurnRequest{GameID: gameID, Move: entity.Move{SubRow: 1, SubCol: 1, CellRow: 1, CellCol: 1}})

		// Then: O is sent to the centre board
		action, payload := receive(t, conn)
		assert.Equal(t, actionTurn, action)
		assert.Equal(t, 1, payload.Game.MoveCount)
		assert.Equal(t, entity.Coord{Row: 1, Col: 1}, *payload.Game.Forced)

		// When: O ignores the forced board
		send(t, conn, actionTurn, TurnRequest{GameID: gameID, Move: entity.Move{SubRow: 0, SubCol: 0, CellRow: 0, CellCol: 0}})

		// Then: the move is rejected with a reason and the game is unchanged
		action, payload = receive(t, conn)
		assert.Equal(t, actionRejected, action)
		assert.Equal(t, "wrong_sub_board", payload.Reason)
		assert.Equal(t, 1, payload.Game.MoveCount)
	})

	t.Run("Explicit player out of turn is rejected", func(t *testing.T) {
		conn := dial(t, startServer(t, Pacing{}))
		send(t, conn, actionNewGame, NewGameRequest{})
		_, created := receive(t, conn)

		send(t, conn, actionTurn, TurnRequest{GameID: created.Game.ID, Player: entity.PlayerO, Move: entity.Move{}})

		action, payload := receive(t, conn)
		assert.Equal(t, actionRejected, action)
		assert.Equal(t, "wrong_turn", payload.Reason)
	})

	t.Run("Computer answers the human", func(t *testing.T) {
		// Given: a medium game with the computer as O
		conn := dial(t, startServer(t, Pacing{ComputerDelay: 10 * time.Millisecond}))
		send(t, conn, actionNewGame, NewGameRequest{Difficulty: entity.DifficultyMedium, Computer: entity.PlayerO, Username: "alice"})
		_, created := receive(t, conn)

		// When: the human moves
		send(t, conn, actionTurn, TurnRequest{GameID: created.Game.ID, Move: entity.Move{SubRow: 0, SubCol: 0, CellRow: 2, CellCol: 2}})

		// Then: the computer replies inside board (2,2)
		action, _ := receive(t, conn)
		assert.Equal(t, actionTurn, action)

		action, payload := receive(t, conn)
		assert.Equal(t, actionUpdate, action)
		assert.Equal(t, 2, payload.Game.MoveCount)
		assert.Equal(t, entity.PlayerX, payload.Game.Turn)
		assert.Equal(t, 1, countMarks(payload.Game.Boards[2][2], entity.PlayerO))
	})

	t.Run("Other watchers see the move", func(t *testing.T) {
		url := startServer(t, Pacing{})
		first := dial(t, url)
		second := dial(t, url)

		send(t, first, actionNewGame, NewGameRequest{})
		_, created := receive(t, first)

		send(t, second, actionState, GameRequest{GameID: created.Game.ID})
		action, _ := receive(t, second)
		require.Equal(t, actionState, action)

		send(t, first, actionTurn, TurnRequest{GameID: created.Game.ID, Move: entity.Move{SubRow: 2, SubCol: 2, CellRow: 0, CellCol: 0}})

		action, payload := receive(t, second)
		assert.Equal(t, actionTurn, action)
		assert.Equal(t, 1, payload.Game.MoveCount)
	})
}

func TestServer_Countdown(t *testing.T) {
	// Given: a two-player game with a short countdown
	conn := dial(t, startServer(t, Pacing{TurnTimeout: 20 * time.Millisecond}))
	send(t, conn, actionNewGame, NewGameRequest{})
	_, created := receive(t, conn)
	require.Equal(t, entity.PlayerX, created.Game.Turn)

	// When: X does nothing

	// Then: the turn passes to O without a move
	action, payload := receive(t, conn)
	assert.Equal(t, actionUpdate, action)
	assert.Equal(t, entity.PlayerO, payload.Game.Turn)
	assert.Equal(t, 0, payload.Game.MoveCount)
	assert.Nil(t, payload.Game.Forced)
}

func TestServer_Reset(t *testing.T) {
	// Given: a game where the computer is about to open
	conn := dial(t, startServer(t, Pacing{ComputerDelay: 50 * time.Millisecond}))
	send(t, conn, actionNewGame, NewGameRequest{Difficulty: entity.DifficultyHard, Computer: entity.PlayerX})
	_, created := receive(t, conn)

	// When: the game is reset before the computer moves
	send(t, conn, actionReset, GameRequest{GameID: created.Game.ID})

	// Then: the fresh game has a new epoch and the computer opens it once
	action, payload := receive(t, conn)
	assert.Equal(t, actionReset, action)
	assert.Equal(t, uint64(1), payload.Game.Epoch)
	assert.Equal(t, 0, payload.Game.MoveCount)

	action, payload = receive(t, conn)
	assert.Equal(t, actionUpdate, action)
	assert.Equal(t, 1, payload.Game.MoveCount)
	assert.Equal(t, uint64(2), payload.Game.Epoch)
}

// resetAfterComputer resets the game right after the first computer move is
// stored, before the server has published that move.
type resetAfterComputer struct {
	*usecase.GameManager

	server *Server
	once   sync.Once
}

func (that *resetAfterComputer) ComputerTurn(ctx context.Context, id string, epoch uint64) (*entity.Game, error) {
	game, err := that.GameManager.ComputerTurn(ctx, id, epoch)
	if err != nil {
		return game, err
	}

	that.once.Do(func() {
		fresh, resetErr := that.GameManager.ResetGame(ctx, id)
		if resetErr == nil {
			that.server.publish(ctx, actionReset, fresh)
		}
	})

	return game, nil
}

func TestServer_ResetDuringComputerTurn(t *testing.T) {
	// Given: the game is reset between storing the computer's move and publishing it
	games := &resetAfterComputer{GameManager: newManager()}
	server := New(suite.NewLogger(), games, newTimers(t), Pacing{ComputerDelay: 10 * time.Millisecond})
	games.server = server
	conn := dial(t, serveWS(t, server))

	// When: a game with the computer as X starts
	send(t, conn, actionNewGame, NewGameRequest{Difficulty: entity.DifficultyEasy, Computer: entity.PlayerX})
	action, _ := receive(t, conn)
	require.Equal(t, actionNewGame, action)

	// Then: the reset is published and the outdated move is not
	action, payload := receive(t, conn)
	assert.Equal(t, actionReset, action)
	assert.Equal(t, uint64(2), payload.Game.Epoch)
	assert.Equal(t, 0, payload.Game.MoveCount)

	// Then: the fresh game still gets its computer move
	action, payload = receive(t, conn)
	assert.Equal(t, actionUpdate, action)
	assert.Equal(t, uint64(3), payload.Game.Epoch)
	assert.Equal(t, 1, payload.Game.MoveCount)
}

type recordedTimers struct {
	mu        sync.Mutex
	scheduled []string
	cancelled []string
}

func (that *recordedTimers) Schedule(key string, _ time.Duration, _ func()) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scheduled = append(that.scheduled, key)

	return true
}

func (that *recordedTimers) Cancel(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelled = append(that.cancelled, key)

	return true
}

func TestServer_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Older epoch neither reschedules nor cancels", func(t *testing.T) {
		// Given: a reset game at epoch 2 with the computer to move
		timers := &recordedTimers{}
		server := New(suite.NewLogger(), nil, timers, Pacing{ComputerDelay: time.Hour})

		fresh := tictactoe.NewGame("game-1", entity.DifficultyEasy, entity.PlayerX, "")
		fresh.Epoch = 2
		require.True(t, server.publish(ctx, actionReset, fresh))

		// When: the pre-reset state at epoch 1 arrives late
		stale := tictactoe.NewGame("game-1", entity.DifficultyEasy, entity.PlayerX, "")
		require.NoError(t, tictactoe.ApplyMove(stale, entity.Move{SubRow: 1, SubCol: 1, CellRow: 1, CellCol: 1}, entity.PlayerX, time.Now()))
		stale.Epoch = 1
		published := server.publish(ctx, actionUpdate, stale)

		// Then: only the fresh game's timer exists
		assert.False(t, published)
		assert.Equal(t, []string{"game-1"}, timers.scheduled)
		assert.Empty(t, timers.cancelled)
	})

	t.Run("Newer epoch replaces the timer", func(t *testing.T) {
		timers := &recordedTimers{}
		server := New(suite.NewLogger(), nil, timers, Pacing{TurnTimeout: time.Hour})

		game := tictactoe.NewGame("game-1", entity.DifficultyNone, entity.PlayerNone, "")
		require.True(t, server.publish(ctx, actionNewGame, game))

		next := tictactoe.NewGame("game-1", entity.DifficultyNone, entity.PlayerNone, "")
		next.Epoch = 1
		require.True(t, server.publish(ctx, actionUpdate, next))

		assert.Equal(t, []string{"game-1", "game-1"}, timers.scheduled)
	})
}

func TestServer_Errors(t *testing.T) {
	t.Run("Unknown action", func(t *testing.T) {
		conn := dial(t, startServer(t, Pacing{}))

		send(t, conn, "game:fly", GameRequest{})

		action, payload := receive(t, conn)
		assert.Equal(t, actionError, action)
		assert.Equal(t, "unknown_action", payload.Reason)
	})

	t.Run("Unknown game", func(t *testing.T) {
		conn := dial(t, startServer(t, Pacing{}))

		send(t, conn, actionState, GameRequest{GameID: "nope"})

		action, payload := receive(t, conn)
		assert.Equal(t, actionError, action)
		assert.Equal(t, "game_not_found", payload.Reason)
	})
}

func countMarks(board entity.SubBoard, p entity.Player) int {
	count := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if board.Cells[r][c] == entity.Mark(p) {
				count++
			}
		}
	}

	return count
}
