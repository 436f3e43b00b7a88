package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrParse                = errors.New("malformed board description")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// ParseError reports where a textual board description went wrong. Row and
// Col are 0-based; Col is -1 when the problem concerns a whole row.
type ParseError struct {
	Row, Col int
	Token    string
	Reason   string
}

func (e *ParseError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%s: %s", ErrParse, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("%s: row %d: %s", ErrParse, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%s: row %d, col %d (%q): %s",
			ErrParse, e.Row, e.Col, e.Token, e.Reason)
	}
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func invalidConfiguration(width, height, mineCount int) error {
	switch {
	case width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidConfiguration, width)
	case height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidConfiguration, height)
	case width > MaxCells/height:
		return fmt.Errorf("%w: %dx%d exceeds %d cells",
			ErrInvalidConfiguration, width, height, MaxCells)
	case mineCount < 0:
		return fmt.Errorf("%w: negative mine count %d",
			ErrInvalidConfiguration, mineCount)
	default:
		return fmt.Errorf("%w: not enough space for %d mines (%d >= %d * %d)",
			ErrInvalidConfiguration, mineCount, mineCount, width, height)
	}
}
