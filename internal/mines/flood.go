package mines

type FloodMode uint8

const (
	// FloodOrthogonal spreads north, south, east and west only.
	FloodOrthogonal FloodMode = iota
	// FloodMoore spreads to all eight neighbours.
	FloodMoore
)

func (m FloodMode) String() string {
	switch m {
	case FloodOrthogonal:
		return "orthogonal"
	case FloodMoore:
		return "moore"
	default:
		return "!"
	}
}

func ParseFloodMode(s string) (FloodMode, bool) {
	switch s {
	case "", "orthogonal":
		return FloodOrthogonal, true
	case "moore":
		return FloodMoore, true
	default:
		return 0, false
	}
}

func (m FloodMode) dirs() []point {
	if m == FloodMoore {
		return mooreDirs[:]
	}
	return orthogonalDirs[:]
}

/*
flood opens the region reachable from the entry cell x, y and returns
the number of cells it revealed.

Concealed zero cells propagate to their neighbours; concealed numbered
cells are revealed but stop the spread. The entry cell always propagates,
whatever its count. Mines and revealed cells are skipped, so the
Revealed tag doubles as the visited mark and no cell is opened twice.
*/
func (g *Grid) flood(x, y int, mode FloodMode) (revealed int) {
	var (
		dirs  = mode.dirs()
		stack = []point{{x, y}}
		entry = true
	)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.InBounds(p.x, p.y) {
			continue
		}
		i := p.y*g.Width + p.x
		c := g.cells[i]
		if c.kind != Concealed {
			entry = false
			continue
		}

		g.cells[i] = c.reveal()
		revealed++

		if c.count > 0 && !entry {
			continue
		}
		entry = false

		for _, d := range dirs {
			stack = append(stack, point{p.x + d.x, p.y + d.y})
		}
	}
	return
}
