package blockbreaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Ball is the ball state in field units.
type Ball struct {
	X, Y   float64 // Centre
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Paddle is the player's paddle. X, Y is the centre.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the x-coordinate of the left edge.
func (p Paddle) Left() float64 { return p.X - p.Width/2 }

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 { return p.X + p.Width/2 }

// Top returns the y-coordinate of the top edge.
func (p Paddle) Top() float64 { return p.Y - p.Height/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (p Paddle) Bottom() float64 { return p.Y + p.Height/2 }

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.Left(), p.Top(), p.Width, p.Height)
}

// Block is one destructible brick. X, Y is the top-left corner.
type Block struct {
	X, Y          float64
	Width, Height float64
	Active        bool
	Color         core.Color
}

// Rect returns the block bounds.
func (b Block) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// NewBall creates a ball at (x, y) moving up and to the right at 45 degrees.
func NewBall(x, y, radius, speed float64) (Ball, error) {
	if !(radius > 0) {
		return Ball{}, entityError("ball.radius", radius)
	}
	if !(speed > 0) {
		return Ball{}, entityError("ball.speed", speed)
	}
	dx, dy := serveVelocity(speed)
	return Ball{X: x, Y: y, DX: dx, DY: dy, Radius: radius}, nil
}

// NewPaddle creates a paddle centred on (x, y).
func NewPaddle(x, y, width, height float64) (Paddle, error) {
	if !(width > 0) {
		return Paddle{}, entityError("paddle.width", width)
	}
	if !(height > 0) {
		return Paddle{}, entityError("paddle.height", height)
	}
	return Paddle{X: x, Y: y, Width: width, Height: height}, nil
}

// NewBlock creates an active block with its top-left corner at (x, y).
func NewBlock(x, y, width, height float64, color core.Color) (Block, error) {
	if !(width > 0) {
		return Block{}, entityError("blocks.width", width)
	}
	if !(height > 0) {
		return Block{}, entityError("blocks.height", height)
	}
	return Block{X: x, Y: y, Width: width, Height: height, Active: true, Color: color}, nil
}

func entityError(field string, v float64) error {
	return &config.ConfigError{Field: field, Reason: fmt.Sprintf("must be positive, got %v", v)}
}

// serveVelocity returns the launch velocity: 45 degrees up and to the right.
func serveVelocity(speed float64) (float64, float64) {
	return speed * math.Cos(math.Pi/4), -speed * math.Sin(math.Pi/4)
}

// randomBlockColor picks each channel uniformly in [0.3, 1.0).
func randomBlockColor(rng core.Random) core.Color {
	return core.RGB(
		core.Uniform(rng, 0.3, 1.0),
		core.Uniform(rng, 0.3, 1.0),
		core.Uniform(rng, 0.3, 1.0),
	)
}

// layoutBlocks builds the row-major block grid, one palette entry per slot.
func layoutBlocks(cfg config.BlockBreakerConfig, palette []core.Color) ([]Block, error) {
	bc := cfg.Blocks
	blocks := make([]Block, 0, cfg.BlockCount())
	for row := range bc.Rows {
		for col := range bc.Cols {
			x := bc.SideMargin + float64(col)*(bc.Width+bc.Spacing)
			y := bc.TopMargin + float64(row)*(bc.Height+bc.Spacing)
			blk, err := NewBlock(x, y, bc.Width, bc.Height, palette[row*bc.Cols+col])
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, blk)
		}
	}
	return blocks, nil
}
