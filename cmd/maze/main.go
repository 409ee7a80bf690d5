// maze is a terminal maze game: solve randomly generated mazes against the
// clock, locally or over SSH.
//
// Usage:
//
//	maze play                - Play a maze right away
//	maze menu                - Pick a difficulty, play, browse run history
//	maze serve               - Start SSH server for remote play
//	maze runs [difficulty]   - Show the run journal
//	maze gen                 - Print a generated maze as text
//	maze algorithms          - List maze generation algorithms
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path>         - Set journal path (default: ~/.maze/runs.db)
//	--config <path>     - Load maze settings from a YAML file
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

const defaultDBPath = "~/.maze/runs.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Settings resolved once per invocation by setup.
var (
	mazeConfig config.MazeConfig
	env        config.Env
	logger     *log.Logger
	logFile    *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - solve random mazes in your terminal",
	Long: `Maze generates a perfect maze and times you while you walk from the
top-left corner to the bottom-right one.

Available commands:
  play        - Play a maze directly
  menu        - Interactive difficulty menu with run history
  serve       - Start SSH server for remote play
  runs        - View the run journal
  gen         - Print a maze as text
  algorithms  - List generation algorithms

Examples:
  maze play --difficulty hard
  maze menu
  maze serve --ssh :2222
  maze runs easy
  maze gen --size 8 --solve --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to the run journal (env "+config.EnvDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

// setup loads .env, the maze config and the logger. Environment values
// only apply where the matching flag was not given.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	env, err = config.LoadEnv()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if env.DB != "" && !flags.Changed("db") {
		flagDBPath = env.DB
	}
	if env.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}

	mazeConfig, err = config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}

	// Interactive commands own the terminal, so logs only go to a file.
	var out io.Writer = io.Discard
	if cmd == serveCmd {
		out = os.Stderr
	}
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	}

	logger, err = newLogger(out, flagLogLevel)
	return err
}

func teardown(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
	}
}

// newLogger builds the application logger at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "maze",
	}), nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the journal. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("open journal", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// playerName is recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
