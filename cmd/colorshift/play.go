package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorshift/internal/core"
	"github.com/vovakirdan/colorshift/internal/games/colorshift"
	"github.com/vovakirdan/colorshift/internal/platform/tui"
	"github.com/vovakirdan/colorshift/internal/registry"
	"github.com/vovakirdan/colorshift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Color Shift in this terminal",
	Long: `Deal a fresh board and start playing.

Controls:
  Click / Enter / Space  - Select the region under the pointer or cursor
  Arrows                 - Shift the selected region one cell
  WASD / HJKL            - Move the keyboard cursor
  P / Esc                - Pause
  ?                      - Show all keys
  Ctrl+S                 - Save a text screenshot
  Q / Ctrl+C             - Quit

While playing, log output goes to ~/.colorshift/colorshift.log.

Examples:
  colorshift play
  colorshift play --seed 42
  colorshift play --config ./my-colorshift.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
		Seed:     flagSeed,
	}

	game, err := registry.Create(colorshift.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// The terminal belongs to the game until it exits.
	if closeLog := redirectLog(); closeLog != nil {
		defer closeLog()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session journal", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := os.Getenv("USER")
	if err := tui.Run(game, cfg, tui.Options{
		Journal: tui.NewJournal(store, logger),
		Logger:  logger,
		Player:  player,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// redirectLog points the logger at a file under ~/.colorshift and returns
// a func restoring stderr. Returns nil if the file cannot be opened.
func redirectLog() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".colorshift")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "colorshift.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}
