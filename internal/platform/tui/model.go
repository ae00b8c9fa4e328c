package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorshift/internal/core"
	"github.com/vovakirdan/colorshift/internal/registry"
)

// Options configures a game model.
type Options struct {
	Journal *Journal    // Session journal; nil disables journaling
	Logger  *log.Logger // Defaults to log.Default()
	Player  string      // Recorded in the journal
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	journal    *Journal
	logger     *log.Logger
	player     string
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	journal := opts.Journal
	if journal == nil {
		journal = NewJournal(nil, logger)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		journal:    journal,
		logger:     logger,
		player:     opts.Player,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.config.ScreenW, m.config.ScreenH = m.gameArea()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// gameArea returns the screen size left for the game above the help footer.
func (m Model) gameArea() (w, h int) {
	footer := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	return m.width, max(m.height-footer, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.journal.Start(m.game, m.player, m.config.Seed)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "session", m.journal.ID())

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.journal.Finish()
		return m, tea.Quit
	}

	return m, nil
}

// relayout resizes the game area after a window or footer change.
// Games that can follow a resize keep their state; others restart.
func (m *Model) relayout() {
	m.config.ScreenW, m.config.ScreenH = m.gameArea()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = m.width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".colorshift", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	defer model.journal.Finish()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
