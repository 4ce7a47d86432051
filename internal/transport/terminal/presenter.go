package terminal

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/presentation"
)

// Presenter keeps what the screen shows besides the board itself: checkers
// still falling and the highlighted cells.
type Presenter struct {
	falling []*presentation.Checker
	tiles   *presentation.TileMap
}

func NewPresenter() *Presenter {
	return &Presenter{tiles: presentation.NewTileMap()}
}

func (p *Presenter) CheckerPlaced(color domain.Color, at domain.Coord) {
	p.falling = append(p.falling, presentation.NewDroppingChecker(color, at))
}

func (p *Presenter) HighlightConnected(cells []domain.Coord) error {
	return p.tiles.Highlight(cells)
}

func (p *Presenter) BoardCleared() {
	p.falling = p.falling[:0]
	p.tiles.Reset()
}

// Step advances every falling checker and forgets the ones that landed.
func (p *Presenter) Step(delta float64) {
	moving := p.falling[:0]
	for _, c := range p.falling {
		if c.Step(delta) {
			moving = append(moving, c)
		}
	}
	clear(p.falling[len(moving):])
	p.falling = moving
}

// Falling returns the checker still on its way to at, if any.
func (p *Presenter) Falling(at domain.Coord) (*presentation.Checker, bool) {
	for _, c := range p.falling {
		if c.Cell == at {
			return c, true
		}
	}
	return nil, false
}

func (p *Presenter) Animating() bool {
	return len(p.falling) > 0
}
