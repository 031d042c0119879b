// Package config provides YAML-based game configuration loading, validation and
// difficulty presets for Block Breaker.
package config

// BlockBreakerConfig contains all configuration for the game.
type BlockBreakerConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	RNGSeed  int64          `yaml:"rng_seed"` // 0 = seed from the wall clock
}

// FieldConfig defines the play field in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Paddle centre sits at field.height - offset
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // Velocity magnitude per tick
	ServeOffset float64 `yaml:"serve_offset"` // Resting ball sits at field.height - serve_offset
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Spacing    float64 `yaml:"spacing"`
	TopMargin  float64 `yaml:"top_margin"`
	SideMargin float64 `yaml:"side_margin"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	InitialLives  int     `yaml:"initial_lives"`
	ScorePerBlock int     `yaml:"score_per_block"`
	Perturbation  float64 `yaml:"perturbation"` // Block hits nudge velocity by U[-p, p)
}

// PaddleY returns the paddle centre y-coordinate.
func (c BlockBreakerConfig) PaddleY() float64 {
	return c.Field.Height - c.Paddle.Offset
}

// ServeY returns the resting ball y-coordinate.
func (c BlockBreakerConfig) ServeY() float64 {
	return c.Field.Height - c.Ball.ServeOffset
}

// GridWidth returns the total width of the block grid.
func (c BlockBreakerConfig) GridWidth() float64 {
	b := c.Blocks
	return float64(b.Cols)*b.Width + float64(b.Cols-1)*b.Spacing
}

// GridBottom returns the y-coordinate of the bottom edge of the last block row.
func (c BlockBreakerConfig) GridBottom() float64 {
	b := c.Blocks
	return b.TopMargin + float64(b.Rows)*b.Height + float64(b.Rows-1)*b.Spacing
}

// BlockCount returns the number of blocks in the grid.
func (c BlockBreakerConfig) BlockCount() int {
	return c.Blocks.Rows * c.Blocks.Cols
}
