package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	boardPath  string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.StringVar(&boardPath, "board", "", "play a board read from this file instead of a random one")
}

func setupLogging(cfg *config.Config) error {
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if cfg.LogFile == "" {
		return nil
	}

	// stdout belongs to the board, so logs go to the file only
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.AddHook(hook)
		l.SetOutput(io.Discard)
	}
	return nil
}

func newSession(cfg *config.Config) (*mines.GameState, error) {
	var (
		game *mines.GameState
		err  error
	)
	if boardPath != "" {
		var b []byte
		if b, err = os.ReadFile(boardPath); err != nil {
			return nil, err
		}
		game, err = mines.SessionFromText(string(b), true)
	} else {
		var r *rand.Rand
		if seed := cfg.Board.Seed; seed != 0 {
			r = rand.New(rand.NewPCG(seed, seed))
		}
		game, err = mines.NewSessionFromParams(cfg.Params(), r)
	}
	if err != nil {
		return nil, err
	}
	game.SetFloodMode(cfg.FloodMode())
	return game, nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := config.MustLoad(configPath)

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	game, err := newSession(cfg)
	if err != nil {
		log.Fatal("unable to create game session: ", err)
	}

	c := &console{
		out:  os.Stdout,
		game: game,
		log: log.WithFields(logrus.Fields{
			"session": uuid.NewString(),
			"width":   game.Width(),
			"height":  game.Height(),
			"mines":   game.Mines(),
		}),
	}
	c.log.Info("session started")

	ctx, cancel := context.WithCancel(mainCtx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return c.play(gCtx, os.Stdin)
	})
	g.Go(func() error {
		<-gCtx.Done()
		// unblocks the reader where stdin is pollable
		return os.Stdin.Close()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}
	c.log.WithFields(logrus.Fields{
		"score": game.Score(),
		"state": game.State(),
	}).Info("session ended")
}
