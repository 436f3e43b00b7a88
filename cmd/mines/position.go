package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/gorilla/schema"
)

var (
	decoder = schema.NewDecoder()

	errEmptyInput = errors.New("empty input")
	errQuit       = errors.New("quit")
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

// parsePosition reads "x,y" or "x y", column first.
func parsePosition(line string) (*Position, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	switch {
	case len(fields) == 0:
		return nil, errEmptyInput
	case len(fields) == 1 && (fields[0] == "q" || fields[0] == "quit"):
		return nil, errQuit
	case len(fields) != 2:
		return nil, fmt.Errorf("want x,y, got %q", strings.TrimSpace(line))
	}

	var pos Position
	query := url.Values{"x": {fields[0]}, "y": {fields[1]}}
	if err := decoder.Decode(&pos, query); err != nil {
		return nil, err
	}
	return &pos, nil
}
