package domain

import "fmt"

// Color is the owner of a cell. The zero value is an empty cell.
type Color int

const (
	Empty  Color = 0
	Red    Color = 1
	Yellow Color = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// enough pieces per color to fill half of the board
	PiecesPerColor = (Rows*Columns + 1) / 2
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return ""
	}
}

// Opponent returns the color that moves after c.
func (c Color) Opponent() Color {
	if c == Red {
		return Yellow
	}
	return Red
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "red":
		*c = Red
	case "yellow":
		*c = Yellow
	case "":
		*c = Empty
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// Coord addresses a cell. Row 0 is the top row, column 0 the leftmost column.
type Coord struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Column >= 0 && c.Column < Columns
}

// to represent the game state
type GameState string

const (
	StatePlaying  GameState = "playing"
	StateFinished GameState = "finished"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn      Error = "invalid column"
	ErrColumnFull         Error = "column is full"
	ErrInvalidTurnState   Error = "piece pools out of turn order"
	ErrAlreadyHighlighted Error = "tiles are already highlighted"
)
