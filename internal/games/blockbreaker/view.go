package blockbreaker

import (
	"fmt"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Render model constants, in field units.
const (
	hudTextSize     = 20
	modalWidth      = 300
	modalHeight     = 60
	modalTitleSize  = 24
	modalHintSize   = 18
	blockEdgeWidth  = 2
	blockBevelInset = 3
)

// Text is a line of overlay text. X, Y is the left end of the baseline.
type Text struct {
	X, Y    float64
	Size    float64
	Content string
	Color   core.Color
}

// Disk is a filled circle.
type Disk struct {
	X, Y, Radius float64
	Color        core.Color
}

// FilledRect is a solid rectangle.
type FilledRect struct {
	Rect  core.RectF
	Color core.Color
}

// BlockView describes how to draw one active block: a diagonal gradient body,
// a light stroke on the top and left edges, a dark stroke on the bottom and
// right edges, and a flat inner bevel.
type BlockView struct {
	Index      int // Position in the block list
	Rect       core.RectF
	Base       core.Color
	Light      core.Color // Gradient stop at the top-left corner
	Dark       core.Color // Gradient stop at the bottom-right corner
	Highlight  core.RGBA
	Shadow     core.RGBA
	EdgeWidth  float64
	Bevel      core.RectF
	BevelColor core.Color
}

// Shade returns the gradient color at (x, y), projecting the point onto the
// top-left to bottom-right diagonal.
func (b BlockView) Shade(x, y float64) core.Color {
	r := b.Rect
	d2 := r.W*r.W + r.H*r.H
	if d2 == 0 {
		return b.Light
	}
	t := ((x-r.X)*r.W + (y-r.Y)*r.H) / d2
	return b.Light.Lerp(b.Dark, t)
}

// Modal is the centred message box shown while the ball is not in play.
type Modal struct {
	Rect  core.RectF
	Fill  core.RGBA
	Lines []Text
}

// View is a read-only drawable description of one frame.
type View struct {
	Width, Height float64
	Background    core.Color
	Blocks        []BlockView
	Paddle        FilledRect
	Ball          Disk
	HUD           []Text
	Modal         *Modal // nil while playing
	Phase         Phase
	Outcome       Outcome
}

// View builds the render model for the current state.
func (c *Controller) View() View {
	cfg := c.sim.cfg
	w, h := cfg.Field.Width, cfg.Field.Height

	v := View{
		Width:      w,
		Height:     h,
		Background: core.ColorBackground,
		Paddle:     FilledRect{Rect: c.sim.paddle.Rect(), Color: core.ColorPaddle},
		Ball: Disk{
			X:      c.sim.ball.X,
			Y:      c.sim.ball.Y,
			Radius: c.sim.ball.Radius,
			Color:  core.ColorBall,
		},
		HUD: []Text{
			{X: 20, Y: 30, Size: hudTextSize, Content: fmt.Sprintf("Score: %d", c.sim.score), Color: core.ColorWhite},
			{X: w - 100, Y: 30, Size: hudTextSize, Content: fmt.Sprintf("Lives: %d", c.sim.lives), Color: core.ColorWhite},
		},
		Phase:   c.Phase(),
		Outcome: c.Outcome(),
	}

	for i, blk := range c.sim.blocks {
		if blk.Active {
			v.Blocks = append(v.Blocks, blockView(i, blk))
		}
	}

	switch v.Phase {
	case PhaseIdle:
		v.Modal = newModal(w, h, "Click to Start!", "")
	case PhaseFinished:
		title := "You Win!"
		if v.Outcome == OutcomeLoss {
			title = "Game Over!"
		}
		v.Modal = newModal(w, h, title, "Click to Play Again")
	}
	return v
}

func blockView(i int, blk Block) BlockView {
	r := blk.Rect()
	return BlockView{
		Index:     i,
		Rect:      r,
		Base:      blk.Color,
		Light:     blk.Color.Scale(1.2),
		Dark:      blk.Color.Scale(0.7),
		Highlight: core.ColorWhite.WithAlpha(0.5),
		Shadow:    core.ColorBlack.WithAlpha(0.5),
		EdgeWidth: blockEdgeWidth,
		Bevel: core.NewRectF(
			r.X+blockBevelInset,
			r.Y+blockBevelInset,
			r.W-2*blockBevelInset,
			r.H-2*blockBevelInset,
		),
		BevelColor: blk.Color.Scale(0.8),
	}
}

func newModal(w, h float64, title, hint string) *Modal {
	m := &Modal{
		Rect: core.NewRectF(w/2-modalWidth/2, h/2-modalHeight/2, modalWidth, modalHeight),
		Fill: core.ColorBlack.WithAlpha(0.7),
		Lines: []Text{
			{X: w/2 - 140, Y: h/2 + 10, Size: modalTitleSize, Content: title, Color: core.ColorWhite},
		},
	}
	if hint != "" {
		m.Lines = append(m.Lines, Text{X: w/2 - 120, Y: h/2 + 40, Size: modalHintSize, Content: hint, Color: core.ColorWhite})
	}
	return m
}
