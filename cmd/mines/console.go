package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type console struct {
	out  io.Writer
	game *mines.GameState
	log  *logrus.Entry
}

// readLines sends every line of r to lines until r is exhausted or ctx is
// done. lines is closed on return.
func readLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}
	if ctx.Err() != nil {
		return nil // input closed on shutdown
	}
	return scanner.Err()
}

// play runs the game on lines read from r. The reader goroutine is never
// waited on; a read blocked on a terminal stays parked until exit.
func (c *console) play(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		if err := readLines(ctx, r, lines); err != nil {
			c.log.WithError(err).Warn("unable to read input")
		}
	}()
	return c.run(ctx, lines)
}

func (c *console) prompt() {
	fmt.Fprintf(c.out, "Score: %d\n", c.game.Score())
	fmt.Fprint(c.out, c.game.Snapshot().PlayerView())
	fmt.Fprint(c.out, "$> ")
}

func (c *console) finish(message string) {
	fmt.Fprintf(c.out, "Score: %d\n", c.game.Score())
	fmt.Fprint(c.out, c.game.Snapshot().AnswerView())
	fmt.Fprintln(c.out, message)
}

// run plays moves read from lines until the game ends, the input runs out
// or ctx is done.
func (c *console) run(ctx context.Context, lines <-chan string) error {
	for {
		switch c.game.State() {
		case mines.Lost:
			c.finish("You Dead!")
			return nil
		case mines.Won:
			c.finish("Cleared!")
			return nil
		case mines.Active:
		}

		c.prompt()

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return nil
			}
			line = l
		}

		pos, err := parsePosition(line)
		switch {
		case errors.Is(err, errEmptyInput):
			continue
		case errors.Is(err, errQuit):
			c.finish("Bye!")
			return nil
		case err != nil:
			fmt.Fprintf(c.out, "invalid move: %s\n", err)
			continue
		}

		alive, err := c.game.CheckAndReveal(pos.X, pos.Y)
		if errors.Is(err, mines.ErrOutOfBounds) {
			fmt.Fprintf(c.out, "invalid move: %s\n", err)
			continue
		} else if err != nil {
			return err
		}

		c.log.WithFields(logrus.Fields{
			"x":     pos.X,
			"y":     pos.Y,
			"alive": alive,
			"score": c.game.Score(),
		}).Debug("move")
	}
}
