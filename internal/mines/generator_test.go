package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// trueCount counts mines among the 8 neighbours of x, y.
func trueCount(g *Grid, x, y int) (n int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.InBounds(x+dx, y+dy) && g.at(x+dx, y+dy).IsMine() {
				n++
			}
		}
	}
	return
}

func TestBlank(t *testing.T) {
	g, err := Blank(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	for y := range g.Height {
		for x := range g.Width {
			assert.Equal(t, ConcealedCell(0), g.at(x, y))
		}
	}
	assert.Equal(t, 6, g.Concealed())
	assert.Zero(t, g.Mines())
}

func TestBlankInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, -1},
		{"absurd", MaxCells, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := Blank(test.width, test.height)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, g)
		})
	}
}

func TestWithMines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{name: "1x2(1)", params: GameParams{Width: 1, Height: 2, MineCount: 1}},
		{name: "9x9(0)", params: GameParams{Width: 9, Height: 9, MineCount: 0}},
		{name: "9x9(10)", params: GameParams{Width: 9, Height: 9, MineCount: 10}},
		{name: "9x9(35)", params: GameParams{Width: 9, Height: 9, MineCount: 35}},
		{name: "16x16(40)", params: GameParams{Width: 16, Height: 16, MineCount: 40}},
		{name: "30x16(99)", params: GameParams{Width: 30, Height: 16, MineCount: 99}},
		{name: "30x16(170)", params: GameParams{Width: 30, Height: 16, MineCount: 170}},
		{name: "8x8(63)", params: GameParams{Width: 8, Height: 8, MineCount: 63}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				w, h, mc := test.params.Width, test.params.Height, test.params.MineCount
				g, err := WithMines(w, h, mc, r)
				require.NoError(t, err)
				require.Equal(t, mc, g.Mines())

				for y := range h {
					for x := range w {
						c := g.at(x, y)
						if c.IsMine() {
							assert.Zero(t, c.Count())
							continue
						}
						require.True(t, c.IsConcealed())
						require.Equal(t, trueCount(g, x, y), int(c.Count()),
							"count at %d:%d", x, y)
					}
				}
			}
		})
	}
}

func TestWithMinesDeterministic(t *testing.T) {
	a, err := WithMines(16, 16, 40, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := WithMines(16, 16, 40, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, a.AnswerView(), b.AnswerView())
}

func TestWithMinesNilRand(t *testing.T) {
	g, err := WithMines(5, 5, 12, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Mines())
}

func TestWithMinesInvalid(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		name   string
		params GameParams
	}{
		{"full board", GameParams{Width: 3, Height: 3, MineCount: 9}},
		{"overfull board", GameParams{Width: 3, Height: 3, MineCount: 10}},
		{"negative mines", GameParams{Width: 3, Height: 3, MineCount: -1}},
		{"zero width", GameParams{Width: 0, Height: 3, MineCount: 1}},
		{"negative height", GameParams{Width: 3, Height: -3, MineCount: 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, h, mc := test.params.Width, test.params.Height, test.params.MineCount
			g, err := WithMines(w, h, mc, r)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, g)
		})
	}
}

func TestMineCoordsUnique(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 10, 50, 51, 99, 100} {
		coords := mineCoords(n, 100, r)
		require.Len(t, coords, n)
		seen := make(map[int]bool, n)
		for _, c := range coords {
			require.GreaterOrEqual(t, c, 0)
			require.Less(t, c, 100)
			require.False(t, seen[c], "duplicate %d", c)
			seen[c] = true
		}
	}
}

func TestMineCoordsCoverEveryCell(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{3, 20} {
		hits := make([]int, 25)
		for range 2000 {
			for _, c := range mineCoords(n, 25, r) {
				hits[c]++
			}
		}
		for i, h := range hits {
			assert.NotZero(t, h, "cell %d never mined with n = %d", i, n)
		}
	}
}

func TestSeed(t *testing.T) {
	p := GameParams{Width: 30, Height: 16, MineCount: 99}
	assert.Equal(t, "30:16:99", p.Seed())

	parsed, err := ParseSeed(p.Seed())
	require.NoError(t, err)
	assert.Equal(t, p, *parsed)

	_, err = ParseSeed("30:16")
	assert.Error(t, err)
	_, err = ParseSeed("a:b:c")
	assert.Error(t, err)
}

func TestGameParamsValidate(t *testing.T) {
	assert.NoError(t, GameParams{Width: 2, Height: 2, MineCount: 3}.Validate())
	assert.ErrorIs(t, GameParams{Width: 2, Height: 2, MineCount: 4}.Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, GameParams{Width: 0, Height: 2}.Validate(), ErrInvalidConfiguration)
}
