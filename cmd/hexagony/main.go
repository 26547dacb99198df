// Command hexagony interprets a Hexagony source file: a two-dimensional
// esoteric language whose program is laid out on a regular hexagonal grid.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"hexagony/internal/config"
	"hexagony/internal/debugger"
	"hexagony/internal/interp"
	"hexagony/internal/logging"
	"hexagony/internal/program"
)

var (
	verbose    bool
	startDebug bool
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "hexagony <source file>",
	Short: "Hexagony interpreter",
	Long: `hexagony runs a program written in Hexagony, Martin Ender's
two-dimensional esoteric language.

The source is padded into a regular hexagon and executed by six
instruction pointers over a hexagonal memory grid. A backtick in the
source marks the following instruction as a breakpoint; the interpreter
then pauses with a rendering of the program, the instruction pointers and
the memory neighborhood, and accepts 's' (step), 'c' (continue) or 'q'
(quit).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&startDebug, "debug", "d", false, "pause before the first instruction")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored debugger output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(verbose || cfg.Logging.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	source, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	prog, loadErr := program.Load(source)
	source.Close()
	if loadErr != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], loadErr)
	}
	logger.Debug("program loaded",
		zap.String("file", args[0]),
		zap.Int("rings", prog.Rings()),
		zap.Int("cells", prog.Size()))

	// The debugger prompt and the program's ',' / '?' instructions must
	// drain the same buffered STDIN.
	stdin := bufio.NewReader(os.Stdin)

	dbgOpts := []debugger.Option{debugger.WithViewRings(cfg.Debugger.ViewRings)}
	if cfg.Debugger.Color && !noColor && term.IsTerminal(int(os.Stdout.Fd())) {
		dbgOpts = append(dbgOpts, debugger.WithColor())
	}
	dbg := debugger.New(stdin, os.Stdout, dbgOpts...)

	engOpts := []interp.Option{
		interp.WithStdin(stdin),
		interp.WithStdout(os.Stdout),
		interp.WithDebugger(dbg),
		interp.WithLogger(logger),
	}
	if startDebug {
		engOpts = append(engOpts, interp.WithStepMode())
	}

	return interp.New(prog, engOpts...).Run()
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
