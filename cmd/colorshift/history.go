package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorshift/internal/games/colorshift"
	"github.com/vovakirdan/colorshift/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled play sessions",
	Long: `Display the most recent play sessions from the journal, newest first.
The seed column replays a session's board with 'colorshift play --seed'.

Examples:
  colorshift history
  colorshift history --limit 50
  colorshift history --db ./journal.db`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session journal: %w", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagHistoryLimit)
	if err != nil {
		return err
	}
	totals, err := store.Totals(colorshift.ID)
	if err != nil {
		return err
	}

	printHistory(os.Stdout, sessions, totals)
	return nil
}

func printHistory(w io.Writer, sessions []storage.SessionEntry, totals storage.Totals) {
	fmt.Fprintln(w, "Color Shift - Session History")
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'colorshift play' to start one!")
		return
	}

	fmt.Fprintln(w, historyTable(sessions).View())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sessions: %d  Touches: %d  Moves: %d\n", totals.Sessions, totals.Touches, totals.Moves)
}

func historyTable(sessions []storage.SessionEntry) table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 16},
		{Title: "Player", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Touches", Width: 8},
		{Title: "Moves", Width: 8},
		{Title: "Duration", Width: 10},
	}

	rows := make([]table.Row, len(sessions))
	for i, e := range sessions {
		rows[i] = table.Row{
			e.StartedAt.Local().Format("2006-01-02 15:04"),
			e.Player,
			strconv.FormatInt(e.Seed, 10),
			strconv.Itoa(e.Touches),
			strconv.Itoa(e.Moves),
			formatDuration(e),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func formatDuration(e storage.SessionEntry) string {
	if e.Open() {
		return "open"
	}
	return e.Duration().Round(time.Second).String()
}
