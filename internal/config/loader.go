package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated before it is returned.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// Validate checks that the configuration describes a playable board.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %vx%v", c.Board.Width, c.Board.Height))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must have rows and columns, got %dx%d", c.Bricks.Rows, c.Bricks.Columns))
	} else if c.BrickWidth() <= 0 {
		errs = append(errs, fmt.Errorf("bricks do not fit the board width %v", c.Board.Width))
	}
	if c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("brick height must be positive, got %v", c.Bricks.Height))
	}
	if len(c.Bricks.Colors) < c.Bricks.Rows {
		errs = append(errs, fmt.Errorf("need %d brick colors, got %d", c.Bricks.Rows, len(c.Bricks.Colors)))
	}
	if _, err := c.BrickColors(); err != nil {
		errs = append(errs, err)
	}
	if c.Ball.Size <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball size and speed must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle size and speed must be positive"))
	}
	if c.Paddle.Width > c.Board.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds board width %v", c.Paddle.Width, c.Board.Width))
	}
	if c.PaddleY() <= 0 || c.PaddleY()+c.Paddle.Height > c.Board.Height {
		errs = append(errs, fmt.Errorf("paddle bottom offset %v puts the paddle off the board", c.Paddle.BottomOffset))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
