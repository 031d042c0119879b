package config

import (
	"fmt"
	"math"
)

// ConfigError reports a configuration value the game cannot run with.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that the config describes a playable field.
// The first violation found is returned as a *ConfigError.
func (c BlockBreakerConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"blocks.width", c.Blocks.Width},
		{"blocks.height", c.Blocks.Height},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return invalid(p.field, "must be a positive number, got %v", p.value)
		}
	}

	if c.Blocks.Rows <= 0 {
		return invalid("blocks.rows", "must be positive, got %d", c.Blocks.Rows)
	}
	if c.Blocks.Cols <= 0 {
		return invalid("blocks.cols", "must be positive, got %d", c.Blocks.Cols)
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"blocks.spacing", c.Blocks.Spacing},
		{"blocks.top_margin", c.Blocks.TopMargin},
		{"blocks.side_margin", c.Blocks.SideMargin},
		{"gameplay.perturbation", c.Gameplay.Perturbation},
	}
	for _, n := range nonNegative {
		if !(n.value >= 0) || math.IsInf(n.value, 0) {
			return invalid(n.field, "must be a non-negative number, got %v", n.value)
		}
	}

	// The ball may travel at most one block thickness per tick.
	if limit := math.Min(c.Blocks.Width, c.Blocks.Height); c.Ball.Speed > limit {
		return invalid("ball.speed", "%v exceeds smallest block dimension %v", c.Ball.Speed, limit)
	}

	if c.Paddle.Width > c.Field.Width {
		return invalid("paddle.width", "%v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	}
	if !(c.Paddle.Offset > 0 && c.Paddle.Offset < c.Field.Height) {
		return invalid("paddle.offset", "must lie inside the field, got %v", c.Paddle.Offset)
	}
	if !(c.Ball.ServeOffset > 0 && c.Ball.ServeOffset < c.Field.Height) {
		return invalid("ball.serve_offset", "must lie inside the field, got %v", c.Ball.ServeOffset)
	}

	if right := c.Blocks.SideMargin + c.GridWidth(); !(right <= c.Field.Width-c.Blocks.SideMargin) {
		return invalid("blocks", "grid of %d columns needs %v units, field allows %v",
			c.Blocks.Cols, right, c.Field.Width-c.Blocks.SideMargin)
	}
	paddleTop := c.PaddleY() - c.Paddle.Height/2
	if bottom := c.GridBottom(); !(bottom < paddleTop) {
		return invalid("blocks", "grid bottom %v reaches the paddle at %v", bottom, paddleTop)
	}

	if c.Gameplay.InitialLives <= 0 {
		return invalid("gameplay.initial_lives", "must be positive, got %d", c.Gameplay.InitialLives)
	}
	if c.Gameplay.ScorePerBlock < 0 {
		return invalid("gameplay.score_per_block", "must not be negative, got %d", c.Gameplay.ScorePerBlock)
	}
	return nil
}
