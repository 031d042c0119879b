package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

// nudgeSteps is how many key presses move the paddle across the whole field.
const nudgeSteps = 40

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *blockbreaker.Controller
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is reserved for the help bar.
func NewModel(game *blockbreaker.Controller, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.game.Config().Field.Width / nudgeSteps

	switch m.keys.MapKey(msg) {
	case KeyQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score(), "lives", m.game.Lives(), "phase", m.game.Phase())
		return m, tea.Quit
	case KeyServe:
		m.click()
	case KeyLeft:
		m.movePointer(m.game.Paddle().X - step)
	case KeyRight:
		m.movePointer(m.game.Paddle().X + step)
	case KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse maps pointer motion and clicks on the play area to game events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	for _, ev := range MapMouse(msg, m.screen.Width(), m.game.Config().Field.Width) {
		switch ev.Kind {
		case core.EventPointerMove:
			m.movePointer(ev.X)
		case core.EventClick:
			m.click()
		}
	}
	return m, nil
}

// handleResize processes window resize events. Game state is kept; only the
// cell grid the field is scaled onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.OnTick()
	m.logTick(res)
	return m, tickCmd(m.config.TickInterval())
}

func (m *Model) movePointer(x float64) {
	m.game.Handle(core.PointerMove(x))
}

func (m *Model) click() {
	before := m.game.Phase()
	m.game.Handle(core.Click())
	if before != blockbreaker.PhasePlaying && m.game.Phase() == blockbreaker.PhasePlaying {
		m.logger.Info("round started", "lives", m.game.Lives(), "score", m.game.Score())
	}
}

func (m Model) logTick(res blockbreaker.TickResult) {
	if res.BlockIndex >= 0 {
		m.logger.Debug("block destroyed", "index", res.BlockIndex, "side", res.Side, "score", m.game.Score())
	}
	if res.LifeLost {
		m.logger.Info("life lost", "lives", m.game.Lives())
	}
	if res.Finished {
		m.logger.Info("round finished", "outcome", m.game.Outcome(), "score", m.game.Score())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a new game built from cfg.
func Run(cfg config.BlockBreakerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	seed := rt.ResolveSeed()
	game, err := blockbreaker.New(cfg, core.NewRNG(seed))
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if logger != nil {
		logger.Info("session start", "presenter", "terminal", "seed", seed, "cols", rt.ScreenW, "rows", rt.ScreenH)
	}

	p := tea.NewProgram(
		NewModel(game, rt, logger),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// playRows returns the rows available to the field below the terminal height.
func playRows(height int) int {
	return max(height-1, 1)
}
