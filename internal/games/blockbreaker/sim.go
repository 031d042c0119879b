// Package blockbreaker implements the Block Breaker game: a deterministic
// simulation, the controller that feeds it input events, and a render model.
package blockbreaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// CollisionSide indicates which side of a block was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// String returns a human-readable name for the side.
func (s CollisionSide) String() string {
	switch s {
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	default:
		return "none"
	}
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Advanced   bool          // False when the tick was a no-op
	WallHit    bool          // Ball reflected off the left, right or top wall
	PaddleHit  bool          // Ball reflected off the paddle
	BlockIndex int           // Index of the destroyed block, or -1
	Side       CollisionSide // Side of the destroyed block that was hit
	LifeLost   bool          // Ball left through the bottom edge
	Finished   bool          // The round ended on this tick
}

// Sim holds the complete game state and advances it one tick at a time.
// It is not safe for concurrent use.
type Sim struct {
	cfg config.BlockBreakerConfig
	rng core.Random

	// Initial entities, copied in by Reset.
	homeBall   Ball
	homePaddle Paddle
	layout     []Block

	ball    Ball
	paddle  Paddle
	blocks  []Block
	score   int
	lives   int
	running bool
	over    bool
	ticks   uint64
}

// NewSim validates cfg and builds a simulation in the Idle state.
// The block palette is drawn from rng once, here; later draws perturb the ball.
func NewSim(cfg config.BlockBreakerConfig, rng core.Random) (*Sim, error) {
	if rng == nil {
		return nil, fmt.Errorf("blockbreaker: nil random source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	paddle, err := NewPaddle(cfg.Field.Width/2, cfg.PaddleY(), cfg.Paddle.Width, cfg.Paddle.Height)
	if err != nil {
		return nil, err
	}
	ball, err := NewBall(paddle.X, cfg.ServeY(), cfg.Ball.Radius, cfg.Ball.Speed)
	if err != nil {
		return nil, err
	}

	palette := make([]core.Color, cfg.BlockCount())
	for i := range palette {
		palette[i] = randomBlockColor(rng)
	}
	layout, err := layoutBlocks(cfg, palette)
	if err != nil {
		return nil, err
	}

	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		homeBall:   ball,
		homePaddle: paddle,
		layout:     layout,
	}
	s.Reset()
	return s, nil
}

// Reset reinitializes the ball, paddle and blocks and restores score and lives.
func (s *Sim) Reset() {
	s.ball = s.homeBall
	s.paddle = s.homePaddle
	s.blocks = append(s.blocks[:0], s.layout...)
	s.score = 0
	s.lives = s.cfg.Gameplay.InitialLives
	s.running = false
	s.over = false
	s.ticks = 0
}

// SetPaddleX moves the paddle centre to px, clamped to the field.
// While the ball is waiting to be served it follows the paddle.
func (s *Sim) SetPaddleX(px float64) {
	if math.IsNaN(px) {
		return
	}
	half := s.paddle.Width / 2
	s.paddle.X = core.ClampF(px, half, s.cfg.Field.Width-half)
	if !s.running && !s.over {
		s.ball.X = s.paddle.X
	}
}

// Start serves the ball. A finished round is reset first.
func (s *Sim) Start() {
	if s.over {
		s.Reset()
	}
	s.running = true
}

// Tick advances the simulation by one step.
func (s *Sim) Tick() TickResult {
	res := TickResult{BlockIndex: -1}
	if !s.running || s.over {
		return res
	}
	res.Advanced = true
	s.ticks++

	b := &s.ball
	w, h := s.cfg.Field.Width, s.cfg.Field.Height

	// Move
	b.X += b.DX
	b.Y += b.DY

	// Walls. Position is not clamped; the reversed velocity carries the ball back.
	if b.X-b.Radius <= 0 || b.X+b.Radius >= w {
		b.DX = -b.DX
		res.WallHit = true
	}
	if b.Y-b.Radius <= 0 {
		b.DY = -b.DY
		res.WallHit = true
	}

	// Paddle
	if s.hitsPaddle() {
		s.deflectFromPaddle()
		res.PaddleHit = true
	}

	// Blocks: the first overlapping block in row-major order is the only one hit.
	for i := range s.blocks {
		blk := &s.blocks[i]
		if !blk.Active {
			continue
		}
		r := blk.Rect()
		if !core.CircleRectOverlap(b.X, b.Y, b.Radius, r) {
			continue
		}
		side := classifySide(b.X, b.Y, r)
		blk.Active = false
		s.score += s.cfg.Gameplay.ScorePerBlock
		s.bounceOffBlock(side)
		res.BlockIndex = i
		res.Side = side
		break
	}

	// Bottom exit
	if b.Y-b.Radius > h {
		s.lives--
		res.LifeLost = true
		if s.lives <= 0 {
			s.lives = 0
			s.finish()
		} else {
			s.ball = s.homeBall
			s.ball.X = s.paddle.X
			s.running = false
		}
	}

	// Victory
	if !s.over && s.ActiveBlocks() == 0 {
		s.finish()
	}

	res.Finished = s.over
	return res
}

func (s *Sim) finish() {
	s.over = true
	s.running = false
}

// hitsPaddle tests the ball's vertical extent against the paddle and its
// centre against the paddle's horizontal span.
func (s *Sim) hitsPaddle() bool {
	b, p := s.ball, s.paddle
	return b.Y+b.Radius >= p.Top() &&
		b.Y-b.Radius <= p.Bottom() &&
		b.X >= p.Left() &&
		b.X <= p.Right()
}

// deflectFromPaddle sends the ball upward at an angle set by where it struck:
// the centre returns it vertically, the edges at 60 degrees.
func (s *Sim) deflectFromPaddle() {
	b := &s.ball
	hitPos := (b.X - s.paddle.X) / (s.paddle.Width / 2)
	angle := hitPos * math.Pi / 3

	b.DY = -math.Abs(b.DY)
	speed := b.Speed()
	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
}

func (s *Sim) bounceOffBlock(side CollisionSide) {
	b := &s.ball
	p := s.cfg.Gameplay.Perturbation
	switch side {
	case CollisionTop, CollisionBottom:
		b.DY = -b.DY
		b.DX += core.Uniform(s.rng, -p, p)
	default:
		b.DX = -b.DX
		b.DY += core.Uniform(s.rng, -p, p)
	}
	b.DX, b.DY = core.NormalizeToSpeed(b.DX, b.DY, s.cfg.Ball.Speed)
}

// classifySide picks the block side nearest the ball centre.
// Left and right win corner ties.
func classifySide(cx, cy float64, r core.RectF) CollisionSide {
	px, py := core.ClosestPointOnRect(cx, cy, r)
	switch {
	case px == r.X:
		return CollisionLeft
	case px == r.Right():
		return CollisionRight
	case py == r.Y:
		return CollisionTop
	default:
		return CollisionBottom
	}
}

// ActiveBlocks returns the number of blocks still in play.
func (s *Sim) ActiveBlocks() int {
	n := 0
	for _, blk := range s.blocks {
		if blk.Active {
			n++
		}
	}
	return n
}

// Ball returns the ball state.
func (s *Sim) Ball() Ball { return s.ball }

// Paddle returns the paddle state.
func (s *Sim) Paddle() Paddle { return s.paddle }

// Blocks returns a copy of the block list in layout order.
func (s *Sim) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Sim) Lives() int { return s.lives }

// Running reports whether the ball is in play.
func (s *Sim) Running() bool { return s.running }

// Over reports whether the round has ended.
func (s *Sim) Over() bool { return s.over }

// Ticks returns the number of ticks advanced since the last reset.
func (s *Sim) Ticks() uint64 { return s.ticks }
