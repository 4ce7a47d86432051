package game

import (
	"errors"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/rs/zerolog"
)

// Presenter is whatever shows the game to a player. Calls happen synchronously
// inside Play and Restart.
type Presenter interface {
	// CheckerPlaced is called after a piece lands in a cell.
	CheckerPlaced(color domain.Color, at domain.Coord)
	// HighlightConnected marks the cells of a connected four.
	HighlightConnected(cells []domain.Coord) error
	// BoardCleared asks for all pieces and highlights to be removed.
	BoardCleared()
}

// Outcome tells the caller what a call to Play did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomePlaced
	OutcomeConnectedFour
	OutcomeReset
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaced:
		return "placed"
	case OutcomeConnectedFour:
		return "connected_four"
	case OutcomeReset:
		return "reset"
	default:
		return "ignored"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Snapshot is a read-only copy of a game.
type Snapshot struct {
	Board           domain.Board     `json:"board"`
	Turn            domain.Color     `json:"turn"`
	State           domain.GameState `json:"state"`
	Winner          domain.Color     `json:"winner,omitempty"`
	Winning         []domain.Coord   `json:"winning,omitempty"`
	Placed          int              `json:"placed"`
	RedRemaining    int              `json:"redRemaining"`
	YellowRemaining int              `json:"yellowRemaining"`
}

// Controller drives the turns of one game.
type Controller struct {
	grid      *domain.Grid
	state     domain.GameState
	winner    domain.Color
	winning   []domain.Coord
	presenter Presenter
	log       zerolog.Logger
}

// NewController starts a game on an empty grid. presenter may be nil.
func NewController(presenter Presenter, logger zerolog.Logger) *Controller {
	return &Controller{
		grid:      domain.NewGrid(),
		state:     domain.StatePlaying,
		presenter: presenter,
		log:       logger.With().Str("component", "game").Logger(),
	}
}

// Play handles a column selection. Misplays (bad or full column) are ignored
// without error; the only error returned is domain.ErrInvalidTurnState.
func (c *Controller) Play(column int) (Outcome, error) {
	if c.grid.IsFull() || c.state == domain.StateFinished {
		c.Restart()
		return OutcomeReset, nil
	}

	color := c.grid.Turn()
	at, err := c.grid.Place(column)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTurnState) {
			c.log.Error().Err(err).Int("column", column).Msg("grid is inconsistent, move dropped")
			return OutcomeIgnored, err
		}
		c.log.Debug().Err(err).Int("column", column).Msg("move ignored")
		return OutcomeIgnored, nil
	}

	if c.presenter != nil {
		c.presenter.CheckerPlaced(color, at)
	}

	board := c.grid.Board()
	cells := domain.FindConnectedFours(&board, at)
	if cells == nil {
		return OutcomePlaced, nil
	}

	c.state = domain.StateFinished
	c.winner = color
	c.winning = cells
	c.log.Info().Str("winner", color.String()).Int("moves", c.grid.Placed()).Msg("connected four")

	if c.presenter == nil {
		c.log.Error().Msg("no presenter, skipping highlight")
	} else if err := c.presenter.HighlightConnected(cells); err != nil {
		c.log.Warn().Err(err).Msg("highlight was requested twice")
	}

	return OutcomeConnectedFour, nil
}

// Restart empties the board and starts a new game with Red to move.
func (c *Controller) Restart() {
	c.grid.Reset()
	c.state = domain.StatePlaying
	c.winner = domain.Empty
	c.winning = nil

	if c.presenter != nil {
		c.presenter.BoardCleared()
	}
	c.log.Debug().Msg("board reset")
}

func (c *Controller) State() domain.GameState {
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Board:           c.grid.Board(),
		Turn:            c.grid.Turn(),
		State:           c.state,
		Winner:          c.winner,
		Winning:         append([]domain.Coord(nil), c.winning...),
		Placed:          c.grid.Placed(),
		RedRemaining:    c.grid.Remaining(domain.Red),
		YellowRemaining: c.grid.Remaining(domain.Yellow),
	}
}
