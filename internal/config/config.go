package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrInvalidFloodMode = errors.New("invalid flood mode")

type Config struct {
	Mode     string `yaml:"mode" env:"MINES_MODE" env-default:"production" env-description:"production or development"`
	LogLevel string `yaml:"log-level" env:"MINES_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"MINES_LOG_FILE" env-default:"mines.log" env-description:"rotating log file"`
	Board    Board  `yaml:"board"`
}

type Board struct {
	Width  int    `yaml:"width" env:"MINES_WIDTH" env-default:"12"`
	Height int    `yaml:"height" env:"MINES_HEIGHT" env-default:"12"`
	Level  int    `yaml:"level" env:"MINES_LEVEL" env-default:"12" env-description:"number of mines"`
	Seed   uint64 `yaml:"seed" env:"MINES_SEED" env-description:"random seed, 0 for a random board"`
	Flood  string `yaml:"flood" env:"MINES_FLOOD" env-default:"orthogonal" env-description:"orthogonal or moore"`
}

// Load reads the YAML file at path, if any, and then the environment.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad is [Load] that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, ok := mines.ParseFloodMode(c.Board.Flood); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFloodMode, c.Board.Flood)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Params() mines.GameParams {
	return mines.GameParams{
		Width:     c.Board.Width,
		Height:    c.Board.Height,
		MineCount: c.Board.Level,
	}
}

func (c Config) FloodMode() mines.FloodMode {
	m, _ := mines.ParseFloodMode(c.Board.Flood)
	return m
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":         c.Mode,
		"log_level":    c.LogLevel,
		"log_file":     c.LogFile,
		"board_seed":   c.Params().Seed(),
		"board_random": c.Board.Seed,
		"board_flood":  c.Board.Flood,
	}
}
