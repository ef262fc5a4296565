package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/woozymasta/gscript"
)

// errReported marks errors already printed to stderr.
var errReported = errors.New("reported")

// app holds state shared by all subcommands.
type app struct {
	configPath string
	debug      bool
	operators  []string
	tabIndent  bool

	cfg    config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "gscript",
		Short:         "Parse, format and lint GraphHopper Script files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", os.Getenv("GSCRIPT_CONFIG"), "Path to TOML or YAML config file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringSliceVar(&a.operators, "operator", nil, "Additional condition operator token (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&a.tabIndent, "tab-indent", false, "Treat leading tabs as continuation indent")

	rootCmd.AddCommand(
		newParseCmd(a),
		newFmtCmd(a),
		newLintCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

// setup loads the config file and merges flags over it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	cfg.ExtraOperators = append(cfg.ExtraOperators, a.operators...)
	if flags.Changed("tab-indent") {
		cfg.TabIndent = a.tabIndent
	}

	debug := a.debug || os.Getenv("GSCRIPT_DEBUG") != ""
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), debug)
	a.logger.Debug("config loaded", "path", a.configPath, "operators", cfg.Operators, "extra_operators", cfg.ExtraOperators)
	return nil
}

// parseOptions returns library options for a named source.
func (a *app) parseOptions(name string) *gscript.ParseOptions {
	return &gscript.ParseOptions{
		Logger:         a.logger,
		Filename:       name,
		Operators:      a.cfg.Operators,
		ExtraOperators: a.cfg.ExtraOperators,
		AllowTabIndent: a.cfg.TabIndent,
	}
}

// parseInput reads and parses the command input. Parse errors are printed
// with a source snippet and returned marked as reported.
func (a *app) parseInput(cmd *cobra.Command, args []string) ([]*gscript.Assignment, string, error) {
	data, name, err := readInput(cmd, args)
	if err != nil {
		return nil, "", err
	}

	script, err := gscript.Parse(data, a.parseOptions(name))
	if err != nil {
		return nil, name, a.report(cmd, data, err)
	}

	a.logger.Debug("parsed", "file", name, "assignments", len(script))
	return script, name, nil
}

// report prints parse errors with a snippet.
func (a *app) report(cmd *cobra.Command, source []byte, err error) error {
	var perr *gscript.ParseError
	if !errors.As(err, &perr) {
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), perr.Snippet(source))
	return fmt.Errorf("%w: %w", errReported, err)
}
