// Package colorshift provides the Color Shift puzzle for the platform.
// Touch a cell to select its same-colored region, then push the region
// around the board with the arrow keys.
package colorshift

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/colorshift/internal/core"
	"github.com/vovakirdan/colorshift/internal/config"
	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
	"github.com/vovakirdan/colorshift/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "colorshift"

// Settings are the resolved options a game is created with.
type Settings struct {
	Palette     []core.Color
	Status      string
	BorderWidth int
	CellW       int // Terminal columns per cell
	CellH       int // Terminal rows per cell
}

// DefaultSettings returns the settings of an unconfigured game.
func DefaultSettings() Settings {
	return Settings{
		Palette:     core.DefaultPalette(),
		Status:      core.DefaultStatus,
		BorderWidth: core.DefaultBorderWidth,
		CellW:       3,
		CellH:       1,
	}
}

// SettingsFromConfig resolves color names and checks that the palette
// fills the board.
func SettingsFromConfig(cfg config.ColorShiftConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	palette := make([]core.Color, 0, len(cfg.Palette))
	for _, name := range cfg.Palette {
		c, ok := core.ParseColor(name)
		if !ok {
			return Settings{}, fmt.Errorf("colorshift: unknown color %q", name)
		}
		palette = append(palette, c)
	}

	s := Settings{
		Palette:     palette,
		Status:      cfg.Status,
		BorderWidth: cfg.Board.BorderWidth,
		CellW:       cfg.Board.CellWidth,
		CellH:       cfg.Board.CellHeight,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the palette can deal a board and the layout is drawable.
func (s Settings) Validate() error {
	if _, err := core.Deal(s.Palette); err != nil {
		return fmt.Errorf("colorshift: %w", err)
	}
	if s.BorderWidth < 0 {
		return fmt.Errorf("colorshift: negative border width %d", s.BorderWidth)
	}
	if s.CellW < 1 || s.CellH < 1 {
		return fmt.Errorf("colorshift: cell size %dx%d is too small", s.CellW, s.CellH)
	}
	return nil
}

// Package-level settings applied to games created by the registry.
var (
	selectedSettings = DefaultSettings()
)

// Configure sets the settings used by games created afterwards.
// Call before starting any game; it is not synchronized.
func Configure(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	selectedSettings = s
	return nil
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

const (
	hudHeight    = 2 // Title and status lines above the board
	footerHeight = 1 // Selection info below the board
)

// Game implements the Color Shift puzzle.
type Game struct {
	settings Settings
	rng      *rand.Rand
	board    *core.Board
	session  *core.Session
	tick     uint64

	// Keyboard cursor used to touch cells without a mouse
	cursor core.Coord

	// Session counters, reported to the journal
	touches int
	moves   int

	// Screen layout
	screenW int
	screenH int
	boardX  int
	boardY  int

	paused   bool
	tooSmall bool
}

// New creates a game with the currently configured settings.
func New() *Game {
	return &Game{
		settings: selectedSettings,
	}
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(s Settings) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		settings: s,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Shift"
}

// Reset deals a fresh board and clears the selection.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = core.NewBoard()
	g.session = core.NewSession(g.board, g.settings.BorderWidth)
	g.tick = 0
	g.cursor = core.C(0, 0)
	g.touches = 0
	g.moves = 0
	g.paused = false

	// Settings are validated when the game is created.
	if err := core.Setup(g.board, g.rng, g.settings.Palette, g.settings.Status); err != nil {
		panic(fmt.Sprintf("colorshift: dealing board: %v", err))
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size without redealing.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	boardW, boardH := g.boardSize()
	g.boardX = (w - boardW) / 2
	g.boardY = hudHeight
	g.tooSmall = w < boardW || h < hudHeight+boardH+footerHeight
}

// boardSize returns the board dimensions in terminal cells, grid lines included.
func (g *Game) boardSize() (w, h int) {
	return core.Size*(g.settings.CellW+1) + 1, core.Size*(g.settings.CellH+1) + 1
}

var arrowKeys = map[platformcore.Action]core.Key{
	platformcore.ActionUp:    core.KeyArrowUp,
	platformcore.ActionRight: core.KeyArrowRight,
	platformcore.ActionDown:  core.KeyArrowDown,
	platformcore.ActionLeft:  core.KeyArrowLeft,
}

var cursorSteps = map[platformcore.Action][2]int{
	platformcore.ActionCursorUp:    {0, -1},
	platformcore.ActionCursorRight: {1, 0},
	platformcore.ActionCursorDown:  {0, 1},
	platformcore.ActionCursorLeft:  {-1, 0},
}

// Step handles the input of one tick. Events are applied one at a time in
// the order they arrived, so every arrow press reaches the mover.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	for _, ev := range in.Events {
		if !ev.Pointer && ev.Action == platformcore.ActionPause {
			g.paused = !g.paused
			continue
		}
		if !g.paused {
			g.apply(ev)
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) apply(ev platformcore.Event) {
	if ev.Pointer {
		if c, onBoard := g.CellAt(ev.X, ev.Y); onBoard {
			g.cursor = c
			g.touch(c)
		}
		return
	}

	if k, ok := arrowKeys[ev.Action]; ok {
		g.press(k)
		return
	}
	if d, ok := cursorSteps[ev.Action]; ok {
		g.cursor = core.C(
			platformcore.Clamp(g.cursor.X+d[0], 0, core.Size-1),
			platformcore.Clamp(g.cursor.Y+d[1], 0, core.Size-1),
		)
		return
	}
	if ev.Action == platformcore.ActionConfirm {
		g.touch(g.cursor)
	}
}

func (g *Game) touch(c core.Coord) {
	if err := g.session.Touch(c); err != nil {
		g.board.SetStatus(err.Error())
		return
	}
	g.touches++
}

func (g *Game) press(k core.Key) {
	moved, err := g.session.KeyDown(k)
	if err != nil {
		g.board.SetStatus(err.Error())
		return
	}
	if moved {
		g.moves++
		g.cursor = g.session.Selection()[0]
	}
}

// CellAt maps a screen position to the board cell drawn there.
// Grid lines right of and below a cell belong to that cell.
func (g *Game) CellAt(x, y int) (core.Coord, bool) {
	if !g.cellArea().Contains(x, y) {
		return core.Coord{}, false
	}
	rx := x - g.boardX - 1
	ry := y - g.boardY - 1
	return core.C(rx/(g.settings.CellW+1), ry/(g.settings.CellH+1)), true
}

// cellArea is the board without its outer top and left grid lines.
func (g *Game) cellArea() platformcore.Rect {
	w, h := g.boardSize()
	return platformcore.NewRect(g.boardX+1, g.boardY+1, w-1, h-1)
}

// cellOrigin returns the screen position of the top-left character of a cell.
func (g *Game) cellOrigin(c core.Coord) (x, y int) {
	return g.boardX + c.X*(g.settings.CellW+1) + 1, g.boardY + c.Y*(g.settings.CellH+1) + 1
}

// State returns the current game state. The puzzle has no score and never ends.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Paused: g.paused || g.tooSmall,
	}
}

// Stats returns how many touches and successful moves the player made.
func (g *Game) Stats() (touches, moves int) {
	return g.touches, g.moves
}
