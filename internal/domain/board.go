package domain

import "fmt"

// Board holds the owner of every cell; board[0] is the top row.
type Board [Rows][Columns]Color

func (b *Board) At(c Coord) Color {
	if !c.InBounds() {
		return Empty
	}
	return b[c.Row][c.Column]
}

// ColumnHeight returns the number of occupied cells in the column.
func (b *Board) ColumnHeight(column int) int {
	height := 0
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			break
		}
		height++
	}
	return height
}

// OpenColumns lists the columns that can still take a piece, left to right.
func (b *Board) OpenColumns() []int {
	open := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			open = append(open, col)
		}
	}
	return open
}

// lowestEmptyRow scans the column from the bottom row upward
func (b *Board) lowestEmptyRow(column int) (int, bool) {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row, true
		}
	}
	return -1, false
}

// Grid owns the board and the two piece pools. It is not safe for
// concurrent use; callers serialize access per game.
type Grid struct {
	board  Board
	turn   Color
	red    int
	yellow int
	placed int
}

func NewGrid() *Grid {
	return &Grid{
		turn:   Red,
		red:    PiecesPerColor,
		yellow: PiecesPerColor,
	}
}

// Place drops a piece of the color to move into column and returns the cell it
// landed in. On error nothing changes.
func (g *Grid) Place(column int) (Coord, error) {
	if column < 0 || column >= Columns {
		return Coord{}, fmt.Errorf("column %d: %w", column, ErrInvalidColumn)
	}

	color := g.turn
	if err := g.checkTurn(); err != nil {
		return Coord{}, err
	}

	row, ok := g.board.lowestEmptyRow(column)
	if !ok {
		return Coord{}, fmt.Errorf("column %d: %w", column, ErrColumnFull)
	}

	pool := g.pool(color)
	if *pool == 0 {
		return Coord{}, fmt.Errorf("%s pool is empty: %w", color, ErrInvalidTurnState)
	}

	*pool--
	g.board[row][column] = color
	g.placed++
	g.turn = color.Opponent()

	return Coord{Row: row, Column: column}, nil
}

// checkTurn verifies that the pools agree with the stored turn: Red moves on
// equal pools, Yellow when its pool holds exactly one piece more.
func (g *Grid) checkTurn() error {
	diff := g.yellow - g.red
	switch {
	case g.turn == Red && diff == 0:
		return nil
	case g.turn == Yellow && diff == 1:
		return nil
	}
	return fmt.Errorf("%s to move with red=%d yellow=%d: %w", g.turn, g.red, g.yellow, ErrInvalidTurnState)
}

func (g *Grid) pool(color Color) *int {
	if color == Yellow {
		return &g.yellow
	}
	return &g.red
}

// IsFull reports whether every piece has been played. Yellow is always the
// last pool to run out.
func (g *Grid) IsFull() bool {
	return g.yellow == 0
}

// Reset returns every placed piece to its pool and hands the move back to Red.
func (g *Grid) Reset() {
	for row := range g.board {
		for col := range g.board[row] {
			if owner := g.board[row][col]; owner != Empty {
				*g.pool(owner)++
				g.board[row][col] = Empty
			}
		}
	}

	g.placed = 0
	g.turn = Red
}

func (g *Grid) Cell(c Coord) Color {
	return g.board.At(c)
}

// Board returns a copy of the board.
func (g *Grid) Board() Board {
	return g.board
}

func (g *Grid) Turn() Color {
	return g.turn
}

func (g *Grid) Remaining(color Color) int {
	switch color {
	case Red:
		return g.red
	case Yellow:
		return g.yellow
	}
	return 0
}

func (g *Grid) Placed() int {
	return g.placed
}

func (g *Grid) OpenColumns() []int {
	return g.board.OpenColumns()
}

func (g *Grid) ColumnHeight(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	return g.board.ColumnHeight(column)
}
