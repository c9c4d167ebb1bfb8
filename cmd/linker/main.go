// linker is a room-based action game for the terminal: walk between rooms,
// push pots into walls and break them with a boomerang.
//
// Usage:
//
//	linker play               - Play (default command)
//	linker rooms [layout]     - Describe the rooms of a layout
//	linker validate [files]   - Check config and layout files
//	linker history            - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Tuning YAML (default: search ~/.linker/configs, ./configs)
//	--layout <path>     - Room layout (.json, .yaml, .toml; default: embedded map)
//	--db <path>         - Run history database (default: ~/.linker/linker.db)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--sound             - Enable sound effects
//	--fps <rate>        - Override the tick rate
//
// LINKER_LOG_LEVEL, LINKER_SOUND and LINKER_DB set the matching flags, also
// from a .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/linker/internal/games/linker"
)

var (
	// Global flags
	flagConfig   string
	flagLayout   string
	flagDBPath   string
	flagLogLevel string
	flagSound    bool
	flagFPS      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linker",
	Short: "Linker - a room-based action game in your terminal",
	Long: `Linker is a small top-down action game. Walk from room to room, push
pots into walls to break them, and throw your boomerang.

Available commands:
  play      - Start the game (default)
  rooms     - Describe the rooms of a layout
  validate  - Check config and layout files
  history   - Show recorded runs

Examples:
  linker
  linker play --layout ./dungeon.yaml --sound
  linker rooms ./dungeon.toml
  linker validate --config ./linker.yaml ./dungeon.yaml
  linker history --plain`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyEnv(cmd)
	},
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to room layout (.json, .yaml, .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linker/linker.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config tick_rate)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
}

// envBindings maps environment variables to persistent flags.
var envBindings = map[string]string{
	"LINKER_LOG_LEVEL": "log-level",
	"LINKER_SOUND":     "sound",
	"LINKER_DB":        "db",
}

// applyEnv loads .env and fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) error {
	// Not fatal - variables might be set directly
	_ = godotenv.Load()

	flags := cmd.Flags()
	for env, name := range envBindings {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// newLogger builds the logger at the configured level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "linker",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.linker/linker.log for appending. The terminal belongs to
// the TUI while playing, so the game logs there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".linker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "linker.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
