package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/linker/internal/config"
	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/games/linker"
	"github.com/vovakirdan/linker/internal/games/linker/layout"
	"github.com/vovakirdan/linker/internal/platform/audio"
	"github.com/vovakirdan/linker/internal/platform/tui"
	"github.com/vovakirdan/linker/internal/registry"
	"github.com/vovakirdan/linker/internal/storage"
)

var flagLatch int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play linker",
	Long: `Start the game in the layout's starting room.

Controls:
  Arrows/WASD  - Move
  Space        - Throw boomerang
  P            - Pause
  R            - Restart from the starting room
  Ctrl+S       - Save a screenshot to ~/.linker/screenshots
  Q/Esc        - Quit

Examples:
  linker play
  linker play --layout ./dungeon.yaml
  linker play --config ./fast.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLatch, "latch", tui.DefaultLatchTicks, "Ticks a direction stays held after a key press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLinker(flagConfig)
	if err != nil {
		return err
	}

	lay, err := layout.LoadOrDefault(flagLayout)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so log to a file
	logOut := io.Writer(os.Stderr)
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	sink, closeAudio := audio.Open(flagSound, logger)
	defer closeAudio()

	linker.SetConfig(&cfg)
	linker.SetLayout(lay)
	linker.SetSoundPlayer(sink)
	linker.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}

	game, err := registry.Create(linker.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "layout", lay.Name, "rooms", len(lay.Rooms), "tick_rate", tickRate, "sound", flagSound)

	latch := flagLatch
	if latch <= 0 {
		latch = tui.DefaultLatchTicks
	}
	runErr := tui.Run(game, store, rc, tui.WithLogger(logger), tui.WithLatchTicks(latch))

	if lg, ok := game.(*linker.Game); ok && lg.Err() != nil {
		return lg.Err()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
