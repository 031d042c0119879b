// Package gui runs Block Breaker in a desktop window with ebiten.
package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

// basicfont glyphs are 13 pixels tall; text sizes scale from that.
const fontPixels = 13

// Game adapts a Controller to ebiten's Update/Draw/Layout loop.
type Game struct {
	game     *blockbreaker.Controller
	logger   *log.Logger
	sprites  map[int]*ebiten.Image // Pre-rendered blocks by index
	cursorX  int
	hasMoved bool
}

// NewGame wraps a controller for ebiten. A nil logger discards output.
func NewGame(game *blockbreaker.Controller, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		game:    game,
		logger:  logger,
		sprites: make(map[int]*ebiten.Image),
	}
}

// Update polls the pointer, then advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.logger.Info("quit", "score", g.game.Score(), "lives", g.game.Lives(), "phase", g.game.Phase())
		return ebiten.Termination
	}

	x, _ := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, ev := range pointerEvents(x, g.cursorX, g.hasMoved, clicked) {
		before := g.game.Phase()
		g.game.Handle(ev)
		if ev.Kind == core.EventClick && before != blockbreaker.PhasePlaying && g.game.Phase() == blockbreaker.PhasePlaying {
			g.logger.Info("round started", "lives", g.game.Lives(), "score", g.game.Score())
		}
	}
	g.cursorX = x
	g.hasMoved = true

	res := g.game.OnTick()
	if res.BlockIndex >= 0 {
		g.logger.Debug("block destroyed", "index", res.BlockIndex, "side", res.Side, "score", g.game.Score())
	}
	if res.LifeLost {
		g.logger.Info("life lost", "lives", g.game.Lives())
	}
	if res.Finished {
		g.logger.Info("round finished", "outcome", g.game.Outcome(), "score", g.game.Score())
	}
	return nil
}

// pointerEvents turns one frame of polled mouse state into game events.
// Motion is reported only when the cursor column changed since the last frame.
func pointerEvents(x, lastX int, hasLast, clicked bool) []core.Event {
	var events []core.Event
	if !hasLast || x != lastX || clicked {
		events = append(events, core.PointerMove(float64(x)))
	}
	if clicked {
		events = append(events, core.Click())
	}
	return events
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.game.View()
	screen.Fill(v.Background)

	for _, b := range v.Blocks {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(b.Rect.X, b.Rect.Y)
		screen.DrawImage(g.sprite(b), op)
	}

	p := v.Paddle
	vector.DrawFilledRect(screen, float32(p.Rect.X), float32(p.Rect.Y), float32(p.Rect.W), float32(p.Rect.H), p.Color, true)
	vector.DrawFilledCircle(screen, float32(v.Ball.X), float32(v.Ball.Y), float32(v.Ball.Radius), v.Ball.Color, true)

	for _, t := range v.HUD {
		drawText(screen, t)
	}

	if m := v.Modal; m != nil {
		vector.DrawFilledRect(screen, float32(m.Rect.X), float32(m.Rect.Y), float32(m.Rect.W), float32(m.Rect.H), m.Fill, true)
		for _, t := range m.Lines {
			drawText(screen, t)
		}
	}
}

// sprite returns the cached image for a block, building it on first use.
// Block colors never change within a session, so the cache is keyed by index.
func (g *Game) sprite(b blockbreaker.BlockView) *ebiten.Image {
	if img, ok := g.sprites[b.Index]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(blockImage(b))
	g.sprites[b.Index] = img
	return img
}

func drawText(dst *ebiten.Image, t blockbreaker.Text) {
	scale := t.Size / fontPixels
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(t.Color)
	text.DrawWithOptions(dst, t.Content, basicfont.Face7x13, op)
}

// Layout reports the field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.game.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Run opens the game window and blocks until it is closed.
func Run(cfg config.BlockBreakerConfig, rt core.RuntimeConfig, scale float64, logger *log.Logger) error {
	seed := rt.ResolveSeed()
	game, err := blockbreaker.New(cfg, core.NewRNG(seed))
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	if scale <= 0 {
		scale = 1
	}
	g := NewGame(game, logger)
	g.logger.Info("session start", "presenter", "window", "seed", seed, "scale", scale)

	ebiten.SetWindowSize(int(cfg.Field.Width*scale), int(cfg.Field.Height*scale))
	ebiten.SetWindowTitle("Block Breaker")
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
