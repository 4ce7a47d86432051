package domain

import "sort"

// axes a line of four can run along, as (row, column) steps
var axes = [4]Coord{
	{Row: 0, Column: 1},  // horizontal
	{Row: 1, Column: 0},  // vertical
	{Row: 1, Column: 1},  // diagonal \
	{Row: -1, Column: 1}, // diagonal /
}

// FindConnectedFours returns every cell of every line of four same-colored
// pieces passing through at, sorted row by row. It returns nil when the cell
// completes no line.
//
// Only the four windows of length ToWin that contain at are checked on each
// axis, so the scan never reads more than 64 cells.
func FindConnectedFours(board *Board, at Coord) []Coord {
	if !at.InBounds() {
		return nil
	}

	var connected map[Coord]struct{}

	for _, axis := range axes {
		for start := -(ToWin - 1); start <= 0; start++ {
			if !isWinningWindow(board, at, axis, start) {
				continue
			}
			if connected == nil {
				connected = make(map[Coord]struct{}, ToWin)
			}
			for i := 0; i < ToWin; i++ {
				connected[step(at, axis, start+i)] = struct{}{}
			}
		}
	}

	if connected == nil {
		return nil
	}

	cells := make([]Coord, 0, len(connected))
	for c := range connected {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Column < cells[j].Column
	})
	return cells
}

// isWinningWindow checks the window of ToWin cells starting start steps away
// from at along axis. Any cell off the board disqualifies the window.
func isWinningWindow(board *Board, at Coord, axis Coord, start int) bool {
	first := Empty
	for i := 0; i < ToWin; i++ {
		c := step(at, axis, start+i)
		if !c.InBounds() {
			return false
		}

		owner := board[c.Row][c.Column]
		if owner == Empty {
			return false
		}
		if i == 0 {
			first = owner
		} else if owner != first {
			return false
		}
	}
	return true
}

func step(from Coord, axis Coord, n int) Coord {
	return Coord{Row: from.Row + axis.Row*n, Column: from.Column + axis.Column*n}
}

