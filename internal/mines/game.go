package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type State uint8

const (
	Active State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "!"
	}
}

// GameState is a single game in progress. It owns its grid; callers only
// ever see copies through [GameState.Snapshot]. A GameState must not be
// used from more than one goroutine at a time.
type GameState struct {
	grid  *Grid
	score int
	state State
	flood FloodMode
	mines int
}

// NewSession starts a game on a width x height board with level mines. A
// nil r is replaced by a randomly seeded source.
func NewSession(level, width, height int, r *rand.Rand) (*GameState, error) {
	grid, err := WithMines(width, height, level, r)
	if err != nil {
		return nil, err
	}
	return newGameState(grid), nil
}

func NewSessionFromParams(params GameParams, r *rand.Rand) (*GameState, error) {
	return NewSession(params.MineCount, params.Width, params.Height, r)
}

// SessionFromText starts a game on a board described in the [ParseGrid]
// format.
func SessionFromText(text string, concealed bool) (*GameState, error) {
	grid, err := ParseGrid(text, concealed)
	if err != nil {
		return nil, err
	}
	return newGameState(grid), nil
}

func newGameState(grid *Grid) *GameState {
	s := &GameState{
		grid:  grid,
		state: Active,
		mines: grid.Mines(),
	}
	s.checkWon()
	return s
}

func (s *GameState) Score() int { return s.score }

func (s *GameState) State() State { return s.state }

func (s *GameState) Width() int { return s.grid.Width }

func (s *GameState) Height() int { return s.grid.Height }

func (s *GameState) Mines() int { return s.mines }

func (s *GameState) FloodMode() FloodMode { return s.flood }

func (s *GameState) SetFloodMode(m FloodMode) { s.flood = m }

// Snapshot returns a copy of the board that the caller may keep.
func (s *GameState) Snapshot() *Grid {
	return s.grid.Clone()
}

/*
Reveal opens the cell at column x, row y and returns how many cells were
revealed by the move.

  - a mine ends the game as [Lost] and scores nothing;
  - an already revealed cell is left alone;
  - a concealed cell starts a flood fill from x, y.

Once the game is [Won] or [Lost] every move is a no-op. Coordinates
outside the board yield [ErrOutOfBounds] and leave the state untouched.
*/
func (s *GameState) Reveal(x, y int) (int, error) {
	if err := s.checkMove(x, y); err != nil {
		return 0, err
	}
	if s.state != Active {
		return 0, nil
	}

	c := s.grid.at(x, y)
	switch c.kind {
	case Mine:
		s.state = Lost
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("mine hit")
		return 0, nil
	case Revealed:
		return 0, nil
	case Concealed:
		n := s.grid.flood(x, y, s.flood)
		s.score += n
		s.checkWon()
		Log.WithFields(logrus.Fields{
			"x":        x,
			"y":        y,
			"revealed": n,
			"score":    s.score,
			"state":    s.state,
		}).Debug("cells revealed")
		return n, nil
	default:
		panic(AssertionError{"unknown cell kind " + c.kind.String()})
	}
}

// CheckAndReveal reports false if x, y holds a mine, ending the game, and
// true otherwise, revealing the cell as a side effect. On a finished game
// it only reports.
func (s *GameState) CheckAndReveal(x, y int) (bool, error) {
	if err := s.checkMove(x, y); err != nil {
		return false, err
	}
	if s.state != Active {
		return !s.grid.at(x, y).IsMine(), nil
	}
	if s.grid.at(x, y).IsMine() {
		s.state = Lost
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("mine hit")
		return false, nil
	}
	if _, err := s.Reveal(x, y); err != nil {
		return false, err
	}
	return true, nil
}

func (s *GameState) checkMove(x, y int) error {
	if !s.grid.InBounds(x, y) {
		return fmt.Errorf("%w: %d:%d on %dx%d board",
			ErrOutOfBounds, x, y, s.grid.Width, s.grid.Height)
	}
	return nil
}

func (s *GameState) checkWon() {
	if s.state == Active && s.grid.Concealed() == 0 {
		s.state = Won
	}
}
