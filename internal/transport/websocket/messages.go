package websocket

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/presentation"
)

// ClientMessage is what a presentation client sends.
type ClientMessage struct {
	Type   string `json:"type"` // init, play, restart
	Token  string `json:"token,omitempty"`
	Column int    `json:"column"`
}

// ServerMessage is an event pushed to the presentation client.
type ServerMessage struct {
	Type      string               `json:"type"`
	Message   string               `json:"message,omitempty"`
	SessionID string               `json:"sessionId,omitempty"`
	Token     string               `json:"token,omitempty"`
	Board     *domain.Board        `json:"board,omitempty"`
	Turn      domain.Color         `json:"turn,omitempty"`
	State     domain.GameState     `json:"state,omitempty"`
	Row       *int                 `json:"row,omitempty"`
	Column    *int                 `json:"column,omitempty"`
	Player    domain.Color         `json:"player,omitempty"`
	From      *presentation.Vector `json:"from,omitempty"`
	To        *presentation.Vector `json:"to,omitempty"`
	Cells     []domain.Coord       `json:"cells,omitempty"`
}

const (
	MsgSession       = "session"
	MsgCheckerPlaced = "checker_placed"
	MsgConnectedFour = "connected_four"
	MsgBoardReset    = "board_reset"
	MsgError         = "error"
)
