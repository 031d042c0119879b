package blockbreaker

import (
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Phase is the controller state derived from the running and over flags.
type Phase int

const (
	PhaseIdle     Phase = iota // Ball resting above the paddle, waiting for a click
	PhasePlaying               // Ball in motion
	PhaseFinished              // Round over, won or lost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome tells a won round from a lost one.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Controller owns a simulation and translates presenter events into calls on it.
// Presenters hold a *Controller; nothing else mutates game state.
type Controller struct {
	sim *Sim
}

// New creates a controller in the Idle state.
// A nil rng is replaced by a core.RNG seeded from cfg.RNGSeed (wall clock when 0).
func New(cfg config.BlockBreakerConfig, rng core.Random) (*Controller, error) {
	if rng == nil {
		rng = core.NewRNG(core.ResolveSeed(cfg.RNGSeed))
	}
	sim, err := NewSim(cfg, rng)
	if err != nil {
		return nil, err
	}
	return &Controller{sim: sim}, nil
}

// OnPointerMove moves the paddle to field x-coordinate x.
func (c *Controller) OnPointerMove(x float64) {
	c.sim.SetPaddleX(x)
}

// OnClick serves the ball, restarting a finished round.
// Clicks while the ball is in play have no effect.
func (c *Controller) OnClick() {
	c.sim.Start()
}

// OnTick advances the simulation one step.
func (c *Controller) OnTick() TickResult {
	return c.sim.Tick()
}

// Handle dispatches a presenter event. Only tick events produce a non-empty result.
func (c *Controller) Handle(ev core.Event) TickResult {
	switch ev.Kind {
	case core.EventPointerMove:
		c.OnPointerMove(ev.X)
	case core.EventClick:
		c.OnClick()
	case core.EventTick:
		return c.OnTick()
	}
	return TickResult{BlockIndex: -1}
}

// Reset returns the game to its initial Idle state.
func (c *Controller) Reset() {
	c.sim.Reset()
}

// Ball returns the ball state.
func (c *Controller) Ball() Ball { return c.sim.Ball() }

// Paddle returns the paddle state.
func (c *Controller) Paddle() Paddle { return c.sim.Paddle() }

// Blocks returns a copy of the blocks in layout order.
func (c *Controller) Blocks() []Block { return c.sim.Blocks() }

// Score returns the current score.
func (c *Controller) Score() int { return c.sim.Score() }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.sim.Lives() }

// Running reports whether the ball is in play.
func (c *Controller) Running() bool { return c.sim.Running() }

// Over reports whether the round has ended.
func (c *Controller) Over() bool { return c.sim.Over() }

// Config returns the configuration the game was built with.
func (c *Controller) Config() config.BlockBreakerConfig { return c.sim.cfg }

// Phase returns the current controller state.
func (c *Controller) Phase() Phase {
	switch {
	case c.sim.Over():
		return PhaseFinished
	case c.sim.Running():
		return PhasePlaying
	default:
		return PhaseIdle
	}
}

// Outcome returns whether the round is still going, won or lost.
func (c *Controller) Outcome() Outcome {
	switch {
	case !c.sim.Over():
		return OutcomeInProgress
	case c.sim.Lives() == 0:
		return OutcomeLoss
	default:
		return OutcomeWin
	}
}

// Render draws the current frame into dst.
func (c *Controller) Render(dst *core.Screen) {
	Rasterize(c.View(), dst)
}
