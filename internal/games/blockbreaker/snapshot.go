package blockbreaker

import "math"

// Snapshot contains the complete observable game state for determinism tests and logging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick    uint64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64
	PaddleX float64
	Score   int
	Lives   int
	Running bool
	Over    bool

	// Block states in layout order
	Active []bool

	// RNG state, when the random source exposes one
	RNGState uint64
}

// stater is implemented by random sources that can report their internal state.
type stater interface {
	State() uint64
}

// Snapshot returns a deep copy of the current game state.
func (c *Controller) Snapshot() Snapshot {
	s := c.sim
	active := make([]bool, len(s.blocks))
	for i, blk := range s.blocks {
		active[i] = blk.Active
	}

	snap := Snapshot{
		Tick:    s.ticks,
		BallX:   s.ball.X,
		BallY:   s.ball.Y,
		BallDX:  s.ball.DX,
		BallDY:  s.ball.DY,
		PaddleX: s.paddle.X,
		Score:   s.score,
		Lives:   s.lives,
		Running: s.running,
		Over:    s.over,
		Active:  active,
	}
	if st, ok := s.rng.(stater); ok {
		snap.RNGState = st.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Running)
	h = h*31 + boolBit(snap.Over)

	for _, a := range snap.Active {
		h = h*31 + boolBit(a)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
