package mines

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type Grid struct {
	Width, Height int
	cells         []Cell // row-major, y*Width + x
}

type point struct{ x, y int }

var (
	// N, NE, E, SE, S, SW, W, NW
	mooreDirs = [8]point{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
	// N, S, E, W
	orthogonalDirs = [4]point{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}
)

// Blank returns a width x height grid of Concealed(0) cells.
func Blank(width, height int) (*Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

// Cell returns the cell at column x, row y, and false if the coordinate is
// outside the grid.
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.Width+x], true
}

// at is Cell for coordinates already known to be in bounds.
func (g *Grid) at(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(AssertionError{fmt.Sprintf("cell %d:%d outside %dx%d", x, y, g.Width, g.Height)})
	}
	return g.cells[y*g.Width+x]
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.Width+x] = c
}

func (g *Grid) Clone() *Grid {
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  slices.Clone(g.cells),
	}
}

// Rows yields each row as a fresh slice, top to bottom.
func (g *Grid) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for y := range g.Height {
			row := slices.Clone(g.cells[y*g.Width : (y+1)*g.Width])
			if !yield(y, row) {
				return
			}
		}
	}
}

func (g *Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c.IsMine() {
			count++
		}
	}
	return
}

// Concealed counts safe cells that are still concealed.
func (g *Grid) Concealed() (count int) {
	for _, c := range g.cells {
		if c.IsConcealed() {
			count++
		}
	}
	return
}

// bumpNeighbours increments the count of every in-bounds neighbour of x, y.
func (g *Grid) bumpNeighbours(x, y int) {
	for _, d := range mooreDirs {
		nx, ny := x+d.x, y+d.y
		if !g.InBounds(nx, ny) {
			continue
		}
		i := ny*g.Width + nx
		g.cells[i] = g.cells[i].bump()
	}
}

// PlayerView renders what the player knows: "[ ]" for anything concealed,
// "[n]" for revealed cells.
func (g *Grid) PlayerView() string {
	return g.render(func(c Cell) string {
		switch c.kind {
		case Mine, Concealed:
			return "[ ]"
		case Revealed:
			return fmt.Sprintf("[%d]", c.count)
		default:
			return "[!]"
		}
	})
}

// AnswerView renders the full board: "[B]" for mines and "[n]" for every
// safe cell.
func (g *Grid) AnswerView() string {
	return g.render(func(c Cell) string {
		switch c.kind {
		case Mine:
			return "[B]"
		case Concealed, Revealed:
			return fmt.Sprintf("[%d]", c.count)
		default:
			return "[!]"
		}
	})
}

func (g *Grid) render(cell func(Cell) string) string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, row := range g.Rows() {
		for _, c := range row {
			b.WriteString(cell(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows() {
		fmt.Fprintln(&b, row)
	}
	return b.String()
}
