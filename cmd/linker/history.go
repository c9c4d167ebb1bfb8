package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linker/internal/platform/tui"
	"github.com/vovakirdan/linker/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Shows the run history: one row per finished run with pots broken,
boomerangs thrown, rooms visited and play time, plus totals.

An interactive table is shown on a terminal; --plain prints a listing.

Examples:
  linker history
  linker history --plain --limit 5
  linker history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain listing instead of the table view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs in the plain listing")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(cmd.OutOrStdout(), store, flagLimit)
}

// printHistory writes a plain listing of recent runs and totals. Play time
// uses the tick rate each run was recorded at.
func printHistory(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(w, "Run History")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'linker play' to record the first run!")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-12s  %4s  %6s  %5s  %s\n", "Date", "Layout", "Pots", "Thrown", "Rooms", "Seconds")
	fmt.Fprintf(w, "  %-16s  %-12s  %4s  %6s  %5s  %s\n", "----", "------", "----", "------", "-----", "-------")

	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-12s  %4d  %6d  %5d  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Layout,
			r.PotsBroken, r.BoomerangsThrown, r.RoomsVisited, int(r.PlayTime().Seconds()))
	}

	if totals, err := store.Totals(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Pots broken: %d  Best: %d  Played: %s\n",
			totals.Runs, totals.PotsBroken, totals.BestPots, totals.PlayTime.Truncate(time.Second))
	}
	return nil
}
