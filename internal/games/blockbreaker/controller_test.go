package blockbreaker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

func newTestController(t *testing.T, seed int64) *Controller {
	t.Helper()
	c, err := New(config.DefaultConfig(), core.NewRNG(seed))
	require.NoError(t, err)
	return c
}

// randomEvents builds a reproducible stream weighted toward ticks.
func randomEvents(seed int64, n int) []core.Event {
	rng := core.NewRNG(seed)
	events := make([]core.Event, n)
	for i := range events {
		switch k := rng.Float64(); {
		case k < 0.75:
			events[i] = core.Tick()
		case k < 0.95:
			events[i] = core.PointerMove(core.Uniform(rng, -100, 900))
		default:
			events[i] = core.Click()
		}
	}
	return events
}

func inactiveCount(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if !b.Active {
			n++
		}
	}
	return n
}

func TestControllerStateMachine(t *testing.T) {
	c := newTestController(t, 1)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, OutcomeInProgress, c.Outcome())

	c.OnClick()
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.True(t, c.Running())

	// A second click while playing changes nothing.
	c.OnClick()
	assert.Equal(t, PhasePlaying, c.Phase())

	// Miss with the paddle far away: back to Idle with one life fewer.
	c.sim.paddle.X = 50
	c.sim.ball.X, c.sim.ball.Y, c.sim.ball.DX, c.sim.ball.DY = 400, 612, 0, 5
	res := c.OnTick()
	require.True(t, res.LifeLost)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, 2, c.Lives())

	// Lose the remaining lives.
	for c.Lives() > 0 {
		c.OnClick()
		c.sim.ball.X, c.sim.ball.Y, c.sim.ball.DX, c.sim.ball.DY = 400, 612, 0, 5
		c.OnTick()
	}
	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, OutcomeLoss, c.Outcome())
	assert.True(t, c.Over())
	assert.False(t, c.Running())

	// Click from Finished resets and serves.
	c.OnClick()
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, 3, c.Lives())
	assert.Equal(t, 0, c.Score())
}

func TestControllerWinOutcome(t *testing.T) {
	c := newTestController(t, 1)
	for i := 1; i < len(c.sim.blocks); i++ {
		c.sim.blocks[i].Active = false
	}
	c.sim.score = 440
	c.OnClick()
	c.sim.ball.X, c.sim.ball.Y, c.sim.ball.DX, c.sim.ball.DY = 60, 85, 0, -5

	res := c.OnTick()
	assert.True(t, res.Finished)
	assert.Equal(t, PhaseFinished, c.Phase())
	assert.Equal(t, OutcomeWin, c.Outcome())
}

func TestControllerHandleDispatch(t *testing.T) {
	c := newTestController(t, 1)

	res := c.Handle(core.PointerMove(200))
	assert.False(t, res.Advanced)
	assert.Equal(t, 200.0, c.Paddle().X)
	assert.Equal(t, 200.0, c.Ball().X)

	res = c.Handle(core.Tick())
	assert.False(t, res.Advanced, "idle ticks do nothing")

	c.Handle(core.Click())
	assert.True(t, c.Running())

	res = c.Handle(core.Tick())
	assert.True(t, res.Advanced)

	res = c.Handle(core.Event{Kind: core.EventNone})
	assert.Equal(t, -1, res.BlockIndex)
}

func TestControllerInvariants(t *testing.T) {
	cfg := config.DefaultConfig()
	half := cfg.Paddle.Width / 2

	for seed := int64(1); seed <= 20; seed++ {
		c := newTestController(t, seed)

		for i, ev := range randomEvents(seed*7919, 5000) {
			inactiveBefore := inactiveCount(c.Blocks())
			res := c.Handle(ev)

			paddle := c.Paddle()
			ball := c.Ball()
			blocks := c.Blocks()
			inactive := inactiveCount(blocks)

			require.GreaterOrEqual(t, paddle.X, half, "seed %d event %d: paddle left of field", seed, i)
			require.LessOrEqual(t, paddle.X, cfg.Field.Width-half, "seed %d event %d: paddle right of field", seed, i)

			if res.Advanced {
				require.InDelta(t, cfg.Ball.Speed, ball.Speed(), 1e-9, "seed %d event %d: speed drifted", seed, i)
				require.LessOrEqual(t, inactive-inactiveBefore, 1, "seed %d event %d: several blocks in one tick", seed, i)
			}
			if res.PaddleHit && res.BlockIndex < 0 && !res.LifeLost {
				require.Less(t, ball.DY, 0.0, "seed %d event %d: paddle sent ball down", seed, i)
			}

			require.Equal(t, cfg.Gameplay.ScorePerBlock*inactive, c.Score(), "seed %d event %d: score mismatch", seed, i)
			require.Equal(t, c.Lives() == 0 || inactive == len(blocks), c.Over(), "seed %d event %d: over flag mismatch", seed, i)

			if c.Phase() == PhaseIdle {
				require.Equal(t, paddle.X, ball.X, "seed %d event %d: idle ball left the paddle", seed, i)
				require.Equal(t, cfg.ServeY(), ball.Y, "seed %d event %d: idle ball off serve row", seed, i)
			}
			if c.Over() {
				require.False(t, c.Running(), "seed %d event %d: finished round still running", seed, i)
			}
		}
	}
}

func TestControllerDeterminism(t *testing.T) {
	events := randomEvents(99, 3000)

	run := func(seed int64) Snapshot {
		c := newTestController(t, seed)
		for _, ev := range events {
			c.Handle(ev)
		}
		return c.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)

	snap3 := run(54321)
	assert.NotEqual(t, snap1.Hash(), snap3.Hash())
}

func TestNewWithNilRNGUsesConfigSeed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RNGSeed = 7

	c1, err := New(cfg, nil)
	require.NoError(t, err)
	c2, err := New(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, c1.Blocks(), c2.Blocks())
	assert.Equal(t, cfg, c1.Config())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Blocks.Cols = 12

	_, err := New(cfg, core.NewRNG(1))
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "blocks", cfgErr.Field)
}

func TestNewRejectsNonFiniteLayout(t *testing.T) {
	edits := map[string]func(*config.BlockBreakerConfig){
		"blocks.spacing":     func(c *config.BlockBreakerConfig) { c.Blocks.Spacing = math.NaN() },
		"blocks.side_margin": func(c *config.BlockBreakerConfig) { c.Blocks.SideMargin = math.NaN() },
		"paddle.offset":      func(c *config.BlockBreakerConfig) { c.Paddle.Offset = math.NaN() },
		"ball.serve_offset":  func(c *config.BlockBreakerConfig) { c.Ball.ServeOffset = math.NaN() },
	}

	for field, edit := range edits {
		t.Run(field, func(t *testing.T) {
			cfg := config.DefaultConfig()
			edit(&cfg)

			_, err := New(cfg, core.NewRNG(1))
			var cfgErr *config.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, field, cfgErr.Field)
		})
	}
}

func TestResetIsIdempotent(t *testing.T) {
	c := newTestController(t, 5)
	for _, ev := range randomEvents(5, 2000) {
		c.Handle(ev)
	}

	c.Reset()
	snapA, blocksA, viewA := c.Snapshot(), c.Blocks(), c.View()
	c.Reset()
	snapB, blocksB, viewB := c.Snapshot(), c.Blocks(), c.View()

	assert.Equal(t, snapA, snapB)
	assert.Equal(t, blocksA, blocksB)
	assert.Equal(t, viewA, viewB)
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestResetKeepsPalette(t *testing.T) {
	c := newTestController(t, 5)
	before := c.Blocks()

	c.OnClick()
	c.sim.ball.X, c.sim.ball.Y, c.sim.ball.DX, c.sim.ball.DY = 60, 85, 0, -5
	c.OnTick()
	c.Reset()

	assert.Equal(t, before, c.Blocks())
}

func TestSetPaddleXIsIdempotent(t *testing.T) {
	for _, x := range []float64{-10, 0, 123.4, 400, 799, 1e9, math.Inf(1), math.Inf(-1)} {
		c := newTestController(t, 2)
		c.OnPointerMove(x)
		first := c.Snapshot()
		c.OnPointerMove(x)
		assert.Equal(t, first, c.Snapshot(), "x=%v", x)
	}

	// Also while playing.
	c := newTestController(t, 2)
	c.OnClick()
	c.OnPointerMove(300)
	first := c.Snapshot()
	c.OnPointerMove(300)
	assert.Equal(t, first, c.Snapshot())
}

func TestBlocksReturnsCopy(t *testing.T) {
	c := newTestController(t, 1)
	blocks := c.Blocks()
	blocks[0].Active = false
	assert.True(t, c.Blocks()[0].Active)
}

func TestPhaseAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "in_progress", OutcomeInProgress.String())
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "loss", OutcomeLoss.String())
	assert.Equal(t, "left", CollisionLeft.String())
}
