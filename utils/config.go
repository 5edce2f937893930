// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod"` // Time between update loop invocations

	// Play-field
	Width  int `json:"width"`
	Height int `json:"height"`

	// Paddle
	PaddleWidth  int `json:"paddleWidth"`
	PaddleHeight int `json:"paddleHeight"`
	PaddleStep   int `json:"paddleStep"` // Pixels per key press at normal speed

	// Ball
	BallSize int `json:"ballSize"`
	BallStep int `json:"ballStep"` // Pixels per tick on each axis at normal speed

	// Blocks
	BlockRows    int `json:"blockRows"`
	BlockColumns int `json:"blockColumns"`
	BlockWidth   int `json:"blockWidth"`
	BlockHeight  int `json:"blockHeight"`
	BlockSpacing int `json:"blockSpacing"`
	BlockTop     int `json:"blockTop"` // Y offset of the first row

	// Bonuses
	BonusChance int `json:"bonusChance"` // Percent (0-100) of destroyed blocks that drop a bonus
	BonusSpeed  int `json:"bonusSpeed"`  // Pixels per tick
	BonusSize   int `json:"bonusSize"`

	// SpeedUpFactor multiplies paddle and ball steps once the matching bonus is collected.
	SpeedUpFactor int `json:"speedUpFactor"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickPeriod: 10 * time.Millisecond,

		Width:  800,
		Height: 600,

		PaddleWidth:  100,
		PaddleHeight: 10,
		PaddleStep:   5,

		BallSize: 10,
		BallStep: 1,

		BlockRows:    5,
		BlockColumns: 10,
		BlockWidth:   75,
		BlockHeight:  20,
		BlockSpacing: 10,
		BlockTop:     50,

		BonusChance: 30,
		BonusSpeed:  3,
		BonusSize:   20,

		SpeedUpFactor: 2,
	}
}

// Validate reports the first inconsistency found in cfg.
func (cfg Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", cfg.Width},
		{"height", cfg.Height},
		{"paddleWidth", cfg.PaddleWidth},
		{"paddleHeight", cfg.PaddleHeight},
		{"paddleStep", cfg.PaddleStep},
		{"ballSize", cfg.BallSize},
		{"ballStep", cfg.BallStep},
		{"blockRows", cfg.BlockRows},
		{"blockColumns", cfg.BlockColumns},
		{"blockWidth", cfg.BlockWidth},
		{"blockHeight", cfg.BlockHeight},
		{"bonusSpeed", cfg.BonusSpeed},
		{"bonusSize", cfg.BonusSize},
		{"speedUpFactor", cfg.SpeedUpFactor},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if cfg.TickPeriod <= 0 {
		return fmt.Errorf("%w: tickPeriod must be positive, got %s", ErrInvalidConfig, cfg.TickPeriod)
	}
	if cfg.BlockSpacing < 0 || cfg.BlockTop < 0 {
		return fmt.Errorf("%w: blockSpacing and blockTop must not be negative", ErrInvalidConfig)
	}
	if cfg.BonusChance < 0 || cfg.BonusChance > 100 {
		return fmt.Errorf("%w: bonusChance must be within 0..100, got %d", ErrInvalidConfig, cfg.BonusChance)
	}
	if cfg.PaddleWidth > cfg.Width {
		return fmt.Errorf("%w: paddle (%d) wider than field (%d)", ErrInvalidConfig, cfg.PaddleWidth, cfg.Width)
	}

	// The last column may be clipped by the right wall but must start inside the field.
	lastColumnLeft := (cfg.BlockColumns - 1) * (cfg.BlockWidth + cfg.BlockSpacing)
	if lastColumnLeft >= cfg.Width {
		return fmt.Errorf("%w: last block column starts at %d, outside field width %d", ErrInvalidConfig, lastColumnLeft, cfg.Width)
	}
	gridBottom := cfg.BlockTop + cfg.BlockRows*(cfg.BlockHeight+cfg.BlockSpacing) - cfg.BlockSpacing
	if gridBottom >= cfg.Height/2 {
		return fmt.Errorf("%w: block grid reaches the ball spawn point (bottom %d, field height %d)", ErrInvalidConfig, gridBottom, cfg.Height)
	}
	return nil
}

// LoadConfig reads a JSON file on top of DefaultConfig, so a file only needs
// the keys it overrides. Durations are written in nanoseconds.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
