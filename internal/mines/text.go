package mines

import (
	"errors"
	"strconv"
	"strings"
)

/*
ParseGrid builds a grid from its textual description. Rows are separated
by whitespace and columns within a row by commas:

	1,1,1,1
	1,0,X,1
	1,1,1,1

A token that is an unsigned integer, optionally with a leading '+',
becomes a safe cell carrying exactly that count, concealed or revealed depending on concealed. Any other token
is a mine. Counts are taken as given and not checked against the actual
mine layout.
*/
func ParseGrid(text string, concealed bool) (*Grid, error) {
	lines := strings.Fields(text)
	if len(lines) == 0 {
		return nil, &ParseError{Row: -1, Col: -1, Reason: "empty input"}
	}

	var (
		width int
		cells []Cell
	)
	for y, line := range lines {
		n := 0
		for x, token := range byPiece(line, ",") {
			c, err := parseCell(token, concealed)
			if err != nil {
				return nil, &ParseError{Row: y, Col: x, Token: token, Reason: err.Error()}
			}
			cells = append(cells, c)
			n++
		}
		if y == 0 {
			width = n
		} else if n != width {
			return nil, &ParseError{
				Row: y, Col: -1,
				Reason: "has " + strconv.Itoa(n) + " columns, want " + strconv.Itoa(width),
			}
		}
	}

	if err := checkDimensions(width, len(lines)); err != nil {
		return nil, &ParseError{Row: -1, Col: -1, Reason: err.Error()}
	}

	return &Grid{Width: width, Height: len(lines), cells: cells}, nil
}

func parseCell(token string, concealed bool) (Cell, error) {
	if token == "" {
		return Cell{}, errors.New("empty token")
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Cell{}, errors.New("count out of range")
		}
		return MineCell(), nil
	}
	if concealed {
		return ConcealedCell(uint8(n)), nil
	}
	return RevealedCell(uint8(n)), nil
}
