package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPicksOpenColumns(t *testing.T) {
	g := domain.NewGrid()
	for _, column := range []int{0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3, 3} {
		_, err := g.Place(column)
		require.NoError(t, err)
	}

	d := NewRandom(7)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		column, err := d.NextColumn(g.Board(), g.Turn())
		require.NoError(t, err)
		assert.NotEqual(t, 0, column)
		assert.NotEqual(t, 3, column)
		seen[column] = true
	}
	assert.Len(t, seen, 5)
}

func TestRandomIsReproducible(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	var board domain.Board
	for i := 0; i < 20; i++ {
		x, _ := a.NextColumn(board, domain.Red)
		y, _ := b.NextColumn(board, domain.Red)
		assert.Equal(t, x, y)
	}
}

func TestRandomOnFullBoard(t *testing.T) {
	var board domain.Board
	for r := range board {
		for c := range board[r] {
			board[r][c] = domain.Red
		}
	}

	column, err := NewRandom(1).NextColumn(board, domain.Red)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, column, 0)
	assert.Less(t, column, domain.Columns)
}

const leftmostOpen = `
function choose(board, turn)
  for c = 1, 7 do
    if board[1][c] == "" then
      return c - 1
    end
  end
  return 0
end
`

func TestLuaDriver(t *testing.T) {
	d, err := NewLua("leftmost", leftmostOpen)
	require.NoError(t, err)
	defer d.Close()

	g := domain.NewGrid()
	for i := 0; i < domain.Rows; i++ {
		column, err := d.NextColumn(g.Board(), g.Turn())
		require.NoError(t, err)
		assert.Equal(t, 0, column)
		_, err = g.Place(column)
		require.NoError(t, err)
	}

	column, err := d.NextColumn(g.Board(), g.Turn())
	require.NoError(t, err)
	assert.Equal(t, 1, column)
}

func TestLuaDriverSeesTurn(t *testing.T) {
	d, err := NewLua("turn", `function choose(board, turn) if turn == "yellow" then return 6 end return 1 end`)
	require.NoError(t, err)
	defer d.Close()

	var board domain.Board
	column, err := d.NextColumn(board, domain.Red)
	require.NoError(t, err)
	assert.Equal(t, 1, column)

	column, err = d.NextColumn(board, domain.Yellow)
	require.NoError(t, err)
	assert.Equal(t, 6, column)
}

func TestLuaDriverErrors(t *testing.T) {
	_, err := NewLua("broken", "function choose(")
	assert.Error(t, err)

	_, err = NewLua("missing", "x = 1")
	assert.ErrorContains(t, err, "does not define choose")

	d, err := NewLua("raises", `function choose() error("boom") end`)
	require.NoError(t, err)
	defer d.Close()
	_, err = d.NextColumn(domain.Board{}, domain.Red)
	assert.ErrorContains(t, err, "boom")

	d2, err := NewLua("text", `function choose() return "left" end`)
	require.NoError(t, err)
	defer d2.Close()
	_, err = d2.NextColumn(domain.Board{}, domain.Red)
	assert.ErrorContains(t, err, "want a number")
}

func TestLoadLuaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driver.lua")
	require.NoError(t, os.WriteFile(path, []byte(leftmostOpen), 0o600))

	d, err := LoadLuaFile(path)
	require.NoError(t, err)
	defer d.Close()

	_, err = LoadLuaFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}
