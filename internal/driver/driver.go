// Package driver picks columns without a human at the keyboard.
package driver

import (
	"math/rand/v2"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Driver chooses the next column to play on board for the color to move.
type Driver interface {
	NextColumn(board domain.Board, turn domain.Color) (int, error)
}

// Random plays a uniformly random open column.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextColumn picks among the open columns. On a full board any column will do;
// the next play resets the game.
func (r *Random) NextColumn(board domain.Board, _ domain.Color) (int, error) {
	open := board.OpenColumns()
	if len(open) == 0 {
		return r.rng.IntN(domain.Columns), nil
	}
	return open[r.rng.IntN(len(open))], nil
}
