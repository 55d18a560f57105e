// snake is a terminal Snake game, playable locally or over SSH.
//
// Usage:
//
//	snake play [variant]   - Play a variant (default: snake)
//	snake menu             - Pick a variant interactively
//	snake serve            - Start SSH server for remote play
//	snake scores [variant] - Show stored best scores
//	snake list             - List variants
//	snake config           - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>           - Frame rate (default: 60)
//	--seed <value>         - RNG seed for reproducible games
//	--db <path>            - Database path (default: ~/.snake/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--walls / --no-walls   - Override wall collisions
//	--log-level <level>    - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWalls      bool
	flagNoWalls    bool
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up before any subcommand runs.
var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A grid Snake game for the terminal.

Steer with WASD or the arrow keys, eat the fruit, and avoid the walls and
your own tail. The snake speeds up every 20 points.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View stored best scores
  list     - Show all variants
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_wrap --difficulty hard
  snake menu --no-walls
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagWalls, "walls", false, "Force solid walls")
	pf.BoolVar(&flagNoWalls, "no-walls", false, "Force wrap-around walls")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", tui.DefaultLogPath, "Log file for interactive commands")
	rootCmd.MarkFlagsMutuallyExclusive("walls", "no-walls")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup creates the logger and installs the game configuration.
func setup(cmd *cobra.Command, _ []string) error {
	var w io.Writer = os.Stderr
	if interactive(cmd) {
		f, err := tui.OpenLogFile(flagLogFile)
		if err != nil {
			return err
		}
		w, logCloser = f, f
	}

	l, err := tui.NewLogger(w, flagLogLevel, "snake")
	if err != nil {
		return err
	}
	logger = l

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	snake.Configure(cfg)
	logger.Debug("configuration loaded",
		"cells", cfg.Board.Cells,
		"base_cadence", cfg.Speed.BaseCadence,
		"walls", cfg.Gameplay.CollideWalls,
	)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// interactive reports whether cmd takes over the terminal, so logs must go to a file.
func interactive(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == menuCmd
}

// loadGameConfig resolves the YAML config and applies the preset and wall flags.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	switch {
	case flagWalls:
		cfg.Gameplay.CollideWalls = true
	case flagNoWalls:
		cfg.Gameplay.CollideWalls = false
	}
	return cfg, nil
}
