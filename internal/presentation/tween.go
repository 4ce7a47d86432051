package presentation

import (
	"math"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	// CellSize is the pixel pitch between neighbouring cells.
	CellSize = 16
	// ApproachSpeed is how far a falling checker travels per second.
	ApproachSpeed = 256.0
	// SnapDistance is how close a checker gets before it lands on its cell.
	SnapDistance = 4.0
)

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// CellPosition is the top-left corner of a cell in board space.
func CellPosition(c domain.Coord) Vector {
	return Vector{X: float64(c.Column * CellSize), Y: float64(c.Row * CellSize)}
}

// SpawnPosition is where a checker appears: one cell above the column.
func SpawnPosition(column int) Vector {
	return Vector{X: float64(column * CellSize), Y: -CellSize}
}

// Checker is a piece moving from the top of its column to the cell it was
// placed in.
type Checker struct {
	Color    domain.Color
	Cell     domain.Coord
	Position Vector
	target   *Vector
}

func NewDroppingChecker(color domain.Color, at domain.Coord) *Checker {
	target := CellPosition(at)
	return &Checker{
		Color:    color,
		Cell:     at,
		Position: SpawnPosition(at.Column),
		target:   &target,
	}
}

// Moving reports whether the checker has yet to reach its cell.
func (c *Checker) Moving() bool {
	return c.target != nil
}

// Step advances the checker by delta seconds and reports whether it is still
// moving afterwards.
func (c *Checker) Step(delta float64) bool {
	if c.target == nil {
		return false
	}

	offset := c.target.Sub(c.Position)
	if dist := offset.Length(); dist > 0 {
		travel := math.Min(ApproachSpeed*delta, dist)
		c.Position.X += offset.X / dist * travel
		c.Position.Y += offset.Y / dist * travel
	}

	if c.target.Sub(c.Position).Length() < SnapDistance {
		c.Position = *c.target
		c.target = nil
	}
	return c.target != nil
}
