package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/presentation"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

// screen layout
const (
	originX   = 2
	statusY   = 0
	labelsY   = 1
	boardTop  = 3 // row 0 of the board; the lane above it is where checkers spawn
	cellWidth = 3
	helpY     = boardTop + domain.Rows + 2
)

const (
	glyphEmpty     = '·'
	glyphChecker   = '●'
	glyphConnected = '◉'
)

var (
	styleDefault = tcell.StyleDefault
	styleFrame   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleYellow  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func checkerStyle(c domain.Color) tcell.Style {
	if c == domain.Yellow {
		return styleYellow
	}
	return styleRed
}

// cellX is the screen column of the glyph for a board column.
func cellX(column int) int {
	return originX + column*cellWidth + 1
}

// screenRow maps a checker's vertical position in board pixels to a screen row.
func screenRow(y float64) int {
	return boardTop + int(math.Round(y/presentation.CellSize))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func render(s tcell.Screen, snap game.Snapshot, p *Presenter) {
	s.Clear()

	drawText(s, originX, statusY, styleDefault, status(snap))
	for col := 0; col < domain.Columns; col++ {
		s.SetContent(cellX(col), labelsY, rune('1'+col), nil, styleDefault)
	}

	for row := 0; row < domain.Rows; row++ {
		y := boardTop + row
		s.SetContent(originX-1, y, '│', nil, styleFrame)
		s.SetContent(cellX(domain.Columns-1)+2, y, '│', nil, styleFrame)

		for col := 0; col < domain.Columns; col++ {
			at := domain.Coord{Row: row, Column: col}
			owner := snap.Board[row][col]
			_, falling := p.Falling(at)

			switch {
			case owner == domain.Empty || falling:
				s.SetContent(cellX(col), y, glyphEmpty, nil, styleFrame)
			case p.tiles.IsHighlighted(at):
				s.SetContent(cellX(col), y, glyphConnected, nil, checkerStyle(owner).Bold(true))
			default:
				s.SetContent(cellX(col), y, glyphChecker, nil, checkerStyle(owner))
			}
		}
	}
	for x := originX - 1; x <= cellX(domain.Columns-1)+2; x++ {
		s.SetContent(x, boardTop+domain.Rows, '─', nil, styleFrame)
	}

	for _, c := range p.falling {
		s.SetContent(cellX(c.Cell.Column), screenRow(c.Position.Y), glyphChecker, nil, checkerStyle(c.Color))
	}

	drawText(s, originX, helpY, styleDefault, "1-7 drop  r restart  q quit")
	s.Show()
}

func status(snap game.Snapshot) string {
	switch {
	case snap.State == domain.StateFinished:
		return fmt.Sprintf("%s connects four! press any column to play again", snap.Winner)
	case snap.YellowRemaining == 0:
		return "board full, press any column to play again"
	default:
		return fmt.Sprintf("%s to move", snap.Turn)
	}
}
