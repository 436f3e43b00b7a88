package mines

import (
	"fmt"
	"strings"
)

// MaxCells bounds the board area accepted by the generator.
const MaxCells = 1 << 22

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// Validate reports [ErrInvalidConfiguration] unless the board has positive
// dimensions, fits in [MaxCells], and leaves at least one safe cell.
func (p GameParams) Validate() error {
	if err := checkDimensions(p.Width, p.Height); err != nil {
		return err
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return invalidConfiguration(p.Width, p.Height, p.MineCount)
	}
	return nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return invalidConfiguration(width, height, 0)
	}
	return nil
}
