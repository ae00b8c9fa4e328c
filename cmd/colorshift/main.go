// colorshift is a terminal color-region puzzle: touch a cell to select its
// same-colored region, then shift the region around the board with the arrows.
//
// Usage:
//
//	colorshift play          - Play in this terminal
//	colorshift serve         - Start SSH server for remote play
//	colorshift history       - Show journaled sessions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for a reproducible board
//	--db <path>           - Set journal path (default: ~/.colorshift/journal.db)
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorshift/internal/config"
	"github.com/vovakirdan/colorshift/internal/games/colorshift"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger     *log.Logger
	gameConfig config.ColorShiftConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorshift",
	Short: "Color Shift - shift colored regions around an 8x8 board",
	Long: `Color Shift deals 64 cells in four colors onto an 8x8 board.
Touch a cell to select the region of same-colored cells around it,
then push the region one cell at a time with the arrow keys.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  history  - Show journaled sessions

Examples:
  colorshift play
  colorshift play --seed 42
  colorshift serve --ssh :2222
  colorshift history --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorshift/journal.db", "Path to session journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup creates the logger and applies the game config before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorshift",
		Level:           level,
	})

	cfg, source, err := config.LoadColorShift(flagConfig)
	if err != nil {
		return err
	}
	settings, err := colorshift.SettingsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	if err := colorshift.Configure(settings); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	gameConfig = cfg

	logger.Debug("config loaded", "source", source, "palette", cfg.Palette, "border_width", cfg.Board.BorderWidth)
	return nil
}

// tickRate returns the --fps flag, falling back to the config.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return gameConfig.TickRate
}
