package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard reads one string per row, top row first: R, Y or '.'.
func parseBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Rows)

	var b Board
	for r, line := range rows {
		require.Len(t, line, Columns, "row %d", r)
		for c, ch := range line {
			switch ch {
			case 'R':
				b[r][c] = Red
			case 'Y':
				b[r][c] = Yellow
			case '.':
			default:
				t.Fatalf("unexpected %q at row %d", ch, r)
			}
		}
	}
	return b
}

func TestFindConnectedFoursHorizontalFromPlay(t *testing.T) {
	g := NewGrid()
	var last Coord
	for _, column := range []int{0, 0, 1, 1, 2, 2, 3} {
		at, err := g.Place(column)
		require.NoError(t, err)
		last = at
	}

	board := g.Board()
	assert.Equal(t, []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}}, FindConnectedFours(&board, last))
}

func TestFindConnectedFours(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		at    []Coord
		want  []Coord
	}{
		{
			name: "mixed colors",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"RRYR...",
			},
			at:   []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}},
			want: nil,
		},
		{
			name: "three is not enough",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				"YYY....",
				"RRR....",
			},
			at:   []Coord{{5, 2}, {4, 2}},
			want: nil,
		},
		{
			name: "vertical",
			board: []string{
				".......",
				".......",
				"....Y..",
				"....Y..",
				"R...Y..",
				"RR..Y..",
			},
			at:   []Coord{{2, 4}, {5, 4}},
			want: []Coord{{2, 4}, {3, 4}, {4, 4}, {5, 4}},
		},
		{
			name: "diagonal down right in any order",
			board: []string{
				".......",
				".......",
				"R......",
				"YR.....",
				"YYR....",
				"RYYR...",
			},
			at:   []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
			want: []Coord{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
		},
		{
			name: "diagonal up right",
			board: []string{
				".......",
				".......",
				"...Y...",
				"..YR...",
				".YRR...",
				"YRRY...",
			},
			at:   []Coord{{5, 0}, {4, 1}, {3, 2}, {2, 3}},
			want: []Coord{{2, 3}, {3, 2}, {4, 1}, {5, 0}},
		},
		{
			name: "five in a row through the middle",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				"YYYY...",
				"RRRRR..",
			},
			at:   []Coord{{5, 2}},
			want: []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}, {5, 4}},
		},
		{
			name: "only windows through the placed cell count",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				"YYYY...",
				"RRRRR..",
			},
			at:   []Coord{{5, 4}},
			want: []Coord{{5, 1}, {5, 2}, {5, 3}, {5, 4}},
		},
		{
			name: "horizontal and diagonal together",
			board: []string{
				".......",
				".......",
				"......R",
				".....RY",
				"....RYY",
				"RRRRYYY",
			},
			at:   []Coord{{5, 3}},
			want: []Coord{{2, 6}, {3, 5}, {4, 4}, {5, 0}, {5, 1}, {5, 2}, {5, 3}},
		},
		{
			name: "empty cell",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"RRR.RRR",
			},
			at:   []Coord{{5, 3}},
			want: nil,
		},
		{
			name: "off the board",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"RRRR...",
			},
			at:   []Coord{{-1, 0}, {6, 0}, {5, -1}, {5, 7}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := parseBoard(t, tt.board...)
			for _, at := range tt.at {
				assert.Equal(t, tt.want, FindConnectedFours(&board, at), "at %+v", at)
			}
		})
	}
}
