package presentation

import "github.com/iamasit07/connect4-engine/internal/domain"

// TileMap tracks which cells of the board frame are lit up for a connected four.
type TileMap struct {
	highlighted bool
	cells       map[domain.Coord]struct{}
}

func NewTileMap() *TileMap {
	return &TileMap{cells: make(map[domain.Coord]struct{})}
}

// Highlight lights up the given cells. It refuses to run again until Reset.
func (t *TileMap) Highlight(cells []domain.Coord) error {
	if t.highlighted {
		return domain.ErrAlreadyHighlighted
	}

	for _, c := range cells {
		t.cells[c] = struct{}{}
	}
	t.highlighted = true
	return nil
}

func (t *TileMap) Reset() {
	clear(t.cells)
	t.highlighted = false
}

func (t *TileMap) Highlighted() bool {
	return t.highlighted
}

func (t *TileMap) IsHighlighted(c domain.Coord) bool {
	_, ok := t.cells[c]
	return ok
}
