// Package commands implements the patc command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patmatch/internal/config"
	"github.com/katalvlaran/patmatch/internal/logging"
	"github.com/katalvlaran/patmatch/internal/style"
)

// Build information, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfg     config.Config
	printer style.Printer

	// flags
	configPath string
	verbosity  int
	color      string
	layout     string
	strict     bool
}

// NewRootCmd builds the patc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patc",
		Short: "Compile and check pattern-match clause tables",
		Long: `patc compiles tables of match clauses into decision trees and reports
unreachable clauses and missing cases.

Clause tables are YAML or TOML files declaring the types their patterns use
and listing the clauses in priority order.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.resolve(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetErr(os.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: patmatch/config.toml in the XDG config dirs)")
	pf.CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&a.color, "color", "", "Colour output: auto, always or never")
	pf.StringVar(&a.layout, "layout", "", "Tree layout: indent or line")
	pf.BoolVar(&a.strict, "strict", false, "Reject unknown keys in clause tables")

	root.AddCommand(
		newCompileCmd(a),
		newCheckCmd(a),
		newSpecializeCmd(a),
		newDefaultCmd(a),
		newRenderCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)

	return root
}

// resolve loads the config file and applies flag overrides.
func (a *app) resolve(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFrom(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		a.cfg.Verbosity = a.verbosity
	}
	if flags.Changed("color") {
		a.cfg.Color = a.color
	}
	if flags.Changed("layout") {
		a.cfg.Layout = a.layout
	}
	if flags.Changed("strict") {
		a.cfg.Strict = a.strict
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	colored := style.ColorEnabled(a.cfg.Color, os.Stdout)
	logging.SetupLogger(a.cfg.Verbosity, !style.ColorEnabled(a.cfg.Color, os.Stderr), a.cfg.LogFile)
	a.printer = style.NewPrinter(colored)

	return nil
}

// logger returns the component logger for library tracing.
func (a *app) logger(component string) zerolog.Logger {
	return logging.GetLogger(component)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "patc version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
