package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionTurn     = "game:turn"
	actionReset    = "game:reset"
	actionState    = "game:state"
	actionUpdate   = "game:update"
	actionRejected = "game:rejected"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type NewGameRequest struct {
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	Computer   entity.Player     `json:"computer,omitempty"`
	Username   string            `json:"username,omitempty"`
}

type TurnRequest struct {
	GameID string        `json:"game_id"`
	Player entity.Player `json:"player,omitempty"`
	Move   entity.Move   `json:"move"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type ResponsePayload struct {
	Game       *entity.Game  `json:"game,omitempty"`
	LegalMoves []entity.Move `json:"legal_moves,omitempty"`
	Winner     string        `json:"winner,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	Error      string        `json:"error,omitempty"`
}
