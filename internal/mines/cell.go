package mines

import (
	"math"
	"strconv"
)

type CellKind int8

const (
	Concealed CellKind = iota
	Revealed
	Mine
)

func (k CellKind) String() string {
	switch k {
	case Concealed:
		return "concealed"
	case Revealed:
		return "revealed"
	case Mine:
		return "mine"
	default:
		return "!"
	}
}

/*
Cell is one grid position. It is a closed sum of three variants:

  - Mine: a concealed cell holding a mine; it carries no count.
  - Concealed(n): a safe cell not yet opened, n mined neighbours.
  - Revealed(n): a safe cell that has been opened, same n.

The zero value is Concealed(0). Cells are values; mutation happens by
storing a new Cell into the grid.
*/
type Cell struct {
	kind  CellKind
	count uint8
}

func MineCell() Cell {
	return Cell{kind: Mine}
}

func ConcealedCell(n uint8) Cell {
	return Cell{kind: Concealed, count: n}
}

func RevealedCell(n uint8) Cell {
	return Cell{kind: Revealed, count: n}
}

func (c Cell) Kind() CellKind { return c.kind }

// Count is the number of mined neighbours; always 0 for a mine.
func (c Cell) Count() uint8 { return c.count }

func (c Cell) IsMine() bool { return c.kind == Mine }

func (c Cell) IsConcealed() bool { return c.kind == Concealed }

func (c Cell) IsRevealed() bool { return c.kind == Revealed }

// reveal flips Concealed(n) to Revealed(n). Other variants are returned
// unchanged.
func (c Cell) reveal() Cell {
	if c.kind == Concealed {
		c.kind = Revealed
	}
	return c
}

// bump records one more mined neighbour. Mines are left alone and the
// count saturates.
func (c Cell) bump() Cell {
	switch c.kind {
	case Mine:
		return c
	case Concealed, Revealed:
		if c.count < math.MaxUint8 {
			c.count++
		}
		return c
	default:
		panic(AssertionError{"unknown cell kind " + strconv.Itoa(int(c.kind))})
	}
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	switch c.kind {
	case Mine:
		return "*"
	case Concealed:
		return "h" + strconv.Itoa(int(c.count))
	case Revealed:
		return "v" + strconv.Itoa(int(c.count))
	default:
		return "!"
	}
}
