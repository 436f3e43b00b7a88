package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// WithMines returns a width x height grid with mineCount mines placed
// uniformly at random and every safe cell carrying its mined-neighbour
// count. mineCount must leave at least one safe cell.
func WithMines(width, height, mineCount int, r *rand.Rand) (*Grid, error) {
	if err := (GameParams{width, height, mineCount}).Validate(); err != nil {
		return nil, err
	}
	grid, err := Blank(width, height)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}

	for _, i := range mineCoords(mineCount, width*height, r) {
		x, y := i%width, i/width
		grid.set(x, y, MineCell())
		grid.bumpNeighbours(x, y)
	}

	Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  mineCount,
	}).Debug("generated grid")

	return grid, nil
}

/*
mineCoords draws n distinct cell indices out of [0, cells).

Sparse boards use rejection sampling: draw a candidate, throw it away if
it was already chosen. Once at least half of the board is mined the
expected number of redraws grows without bound as n approaches cells, so
dense boards pick n off a candidate list instead, swapping each pick with
the tail.
*/
func mineCoords(n, cells int, r *rand.Rand) []int {
	coords := make([]int, 0, n)

	if 2*n <= cells {
		chosen := make(map[int]struct{}, n)
		for len(coords) < n {
			c := r.IntN(cells)
			if _, ok := chosen[c]; ok {
				continue
			}
			chosen[c] = struct{}{}
			coords = append(coords, c)
		}
		return coords
	}

	candidates := make([]int, cells)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range n {
		i := r.IntN(k)
		coords = append(coords, candidates[i])
		k--
		candidates[i] = candidates[k]
	}
	return coords
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
