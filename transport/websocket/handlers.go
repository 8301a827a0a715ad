package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

func (that *Server) handleNewGame(ctx context.Context, client *Client, msg *Message) error {
	var req NewGameRequest
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			that.sendError(client, "malformed_message", "invalid payload")
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	game, err := that.uGame.StartGame(ctx, req.Difficulty, req.Computer, req.Username)
	if err != nil {
		that.sendError(client, apperror.Reason(err), "failed to create a new game")
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.hub.Watch(client, game.ID)
	that.publish(ctx, msg.Action, game)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *Client, msg *Message) error {
	var req TurnRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		that.sendError(client, "malformed_message", "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	current, err := that.watchGame(ctx, client, req.GameID)
	if err != nil {
		return err
	}

	game, err := that.uGame.MakeTurn(ctx, current.ID, moverFor(current, req.Player), req.Move)
	if apperror.IsRejection(err) {
		payload := gamePayload(game)
		payload.Reason = apperror.Reason(err)
		that.sendMessage(client, actionRejected, payload)

		return nil
	}

	if err != nil {
		that.sendError(client, apperror.Reason(err), "failed to make turn")
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.publish(ctx, msg.Action, game)

	return nil
}

func (that *Server) handleReset(ctx context.Context, client *Client, msg *Message) error {
	var req GameRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		that.sendError(client, "malformed_message", "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if _, err := that.watchGame(ctx, client, req.GameID); err != nil {
		return err
	}

	game, err := that.uGame.ResetGame(ctx, req.GameID)
	if err != nil {
		that.sendError(client, apperror.Reason(err), "failed to reset game")
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.publish(ctx, msg.Action, game)

	return nil
}

func (that *Server) handleState(ctx context.Context, client *Client, msg *Message) error {
	var req GameRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		that.sendError(client, "malformed_message", "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	game, err := that.watchGame(ctx, client, req.GameID)
	if err != nil {
		return err
	}

	that.sendMessage(client, msg.Action, gamePayload(game))

	return nil
}

// watchGame - loads the game and subscribes the client to its updates.
func (that *Server) watchGame(ctx context.Context, client *Client, id string) (*entity.Game, error) {
	game, err := that.uGame.GetGame(ctx, id)
	if err != nil {
		that.sendError(client, apperror.Reason(err), "failed to get the game")
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}

	that.hub.Watch(client, game.ID)

	return game, nil
}

// publish - broadcasts game and arms its next event, unless a newer epoch of
// the same game was already published.
func (that *Server) publish(ctx context.Context, action string, game *entity.Game) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if latest, ok := that.epochs[game.ID]; ok && game.Epoch < latest {
		that.logger.Debug("skipped outdated state", "game_id", game.ID, "epoch", game.Epoch, "latest", latest)
		return false
	}
	that.epochs[game.ID] = game.Epoch

	that.broadcast(game.ID, action, gamePayload(game))
	that.arm(ctx, game)

	return true
}

// arm - schedules whatever happens next on its own: the computer's move or
// the end of the human's countdown.
func (that *Server) arm(ctx context.Context, game *entity.Game) {
	if game.IsResolved() {
		that.timers.Cancel(game.ID)
		return
	}

	id, epoch := game.ID, game.Epoch

	if game.IsComputerTurn() {
		that.timers.Schedule(id, that.pacing.ComputerDelay, func() {
			that.applyScheduled(ctx, id, "computer", func() (*entity.Game, error) {
				return that.uGame.ComputerTurn(ctx, id, epoch)
			})
		})

		return
	}

	if that.pacing.TurnTimeout <= 0 {
		that.timers.Cancel(id)
		return
	}

	player := game.Turn
	that.timers.Schedule(id, that.pacing.TurnTimeout, func() {
		that.applyScheduled(ctx, id, "countdown", func() (*entity.Game, error) {
			return that.uGame.ExpireTurn(ctx, id, epoch, player)
		})
	})
}

func (that *Server) applyScheduled(ctx context.Context, id, event string, apply func() (*entity.Game, error)) {
	log := that.logger.With("method", "applyScheduled", "game_id", id, "event", event)

	if ctx.Err() != nil {
		return
	}

	game, err := apply()
	if errors.Is(err, apperror.ErrStaleEvent) {
		log.Debug("dropped stale event")
		return
	}

	if err != nil {
		log.Error("failed to apply scheduled event", "error", err)
		return
	}

	that.publish(ctx, actionUpdate, game)
}

// moverFor - against the computer the client always plays the human side;
// in a two-player game an unspecified player means whoever is to move.
func moverFor(game *entity.Game, requested entity.Player) entity.Player {
	if game.HasComputer() {
		return game.Human()
	}

	if requested.Valid() {
		return requested
	}

	return game.Turn
}

func gamePayload(game *entity.Game) ResponsePayload {
	payload := ResponsePayload{
		Game:       game,
		LegalMoves: tictactoe.LegalMoves(game),
	}

	if winner, ok := tictactoe.Outcome(game); ok {
		payload.Winner = winner.String()
	}

	return payload
}
