package websocket

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/presentation"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/rs/zerolog"
)

// Presenter forwards game events of one session to its websocket and keeps
// the highlight state the client renders.
type Presenter struct {
	sessionID string
	conns     *ConnectionManager
	tiles     *presentation.TileMap
	log       zerolog.Logger
}

// NewPresenterFactory returns a factory suitable for game.NewSessionManager.
func NewPresenterFactory(conns *ConnectionManager, logger zerolog.Logger) game.PresenterFactory {
	return func(sessionID string) game.Presenter {
		return &Presenter{
			sessionID: sessionID,
			conns:     conns,
			tiles:     presentation.NewTileMap(),
			log:       logger.With().Str("component", "ws").Str("session", sessionID).Logger(),
		}
	}
}

func (p *Presenter) CheckerPlaced(color domain.Color, at domain.Coord) {
	checker := presentation.NewDroppingChecker(color, at)
	to := presentation.CellPosition(at)
	row, column := at.Row, at.Column

	p.send(ServerMessage{
		Type:   MsgCheckerPlaced,
		Row:    &row,
		Column: &column,
		Player: color,
		From:   &checker.Position,
		To:     &to,
	})
}

func (p *Presenter) HighlightConnected(cells []domain.Coord) error {
	if err := p.tiles.Highlight(cells); err != nil {
		return err
	}

	p.send(ServerMessage{Type: MsgConnectedFour, Cells: cells})
	return nil
}

func (p *Presenter) BoardCleared() {
	p.tiles.Reset()
	p.send(ServerMessage{Type: MsgBoardReset})
}

func (p *Presenter) send(message ServerMessage) {
	if err := p.conns.SendMessage(p.sessionID, message); err != nil {
		p.log.Warn().Err(err).Str("type", message.Type).Msg("failed to push event")
	}
}
