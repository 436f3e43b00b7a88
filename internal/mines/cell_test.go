package mines

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellReveal(t *testing.T) {
	assert.Equal(t, RevealedCell(2), ConcealedCell(2).reveal())
	assert.Equal(t, RevealedCell(2), RevealedCell(2).reveal())
	assert.Equal(t, MineCell(), MineCell().reveal())
}

func TestCellBump(t *testing.T) {
	assert.Equal(t, ConcealedCell(1), ConcealedCell(0).bump())
	assert.Equal(t, RevealedCell(4), RevealedCell(3).bump())
	assert.Equal(t, MineCell(), MineCell().bump())
	assert.Equal(t, ConcealedCell(math.MaxUint8), ConcealedCell(math.MaxUint8).bump())
}

func TestCellZeroValue(t *testing.T) {
	var c Cell
	assert.Equal(t, ConcealedCell(0), c)
	assert.True(t, c.IsConcealed())
	assert.False(t, c.IsRevealed())
	assert.False(t, c.IsMine())
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{ConcealedCell(0), "h0"},
		{ConcealedCell(8), "h8"},
		{RevealedCell(3), "v3"},
		{MineCell(), "*"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.cell.String())
	}
	assert.Equal(t, "mine", MineCell().Kind().String())
	assert.Equal(t, "revealed", RevealedCell(0).Kind().String())
}
