package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

func newTestModel(t *testing.T, logger *log.Logger) (Model, *blockbreaker.Controller) {
	t.Helper()
	game, err := blockbreaker.New(config.DefaultConfig(), core.NewRNG(1))
	require.NoError(t, err)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	return NewModel(game, rt, logger), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, nil)
	assert.NotNil(t, m.Init())
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, 105.0, game.Paddle().X)
	assert.Equal(t, 105.0, game.Ball().X, "idle ball follows the paddle")

	// Far left is clamped to half the paddle width.
	_, _ = update(t, m, tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, 50.0, game.Paddle().X)
}

func TestModelClickServes(t *testing.T) {
	m, game := newTestModel(t, nil)

	_, _ = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, blockbreaker.PhasePlaying, game.Phase())
	assert.Equal(t, 605.0, game.Paddle().X)
}

func TestModelKeys(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 380.0, game.Paddle().X)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 420.0, game.Paddle().X)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, game.Running())

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelTickAdvancesGame(t *testing.T) {
	m, game := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	y := game.Ball().Y
	_, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick loop continues")
	assert.Less(t, game.Ball().Y, y)
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))
	snap := game.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 40, m.screen.Height())
	assert.Equal(t, snap, game.Snapshot())

	// Mouse mapping follows the new width.
	_, _ = update(t, m, tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionMotion})
	assert.InDelta(t, 403.33, game.Paddle().X, 0.01)
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	out := m.View()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "Click to Start!")
	assert.Contains(t, out, "serve")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 24)
}

func TestModelLogsRoundEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m, _ := newTestModel(t, logger)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, buf.String(), "round started")

	m.logTick(blockbreaker.TickResult{BlockIndex: 4, Side: blockbreaker.CollisionTop})
	assert.Contains(t, buf.String(), "block destroyed")

	m.logTick(blockbreaker.TickResult{BlockIndex: -1, LifeLost: true})
	assert.Contains(t, buf.String(), "life lost")

	m.logTick(blockbreaker.TickResult{BlockIndex: -1, Finished: true})
	assert.Contains(t, buf.String(), "round finished")

	_, _ = update(t, m, runeKey('q'))
	assert.Contains(t, buf.String(), "quit")
}

func TestRenderScreenLines(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 1, "hello")
	out := RenderScreen(s)

	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "hello")
}
