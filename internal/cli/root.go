// Package cli implements the lastword command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/config"
	"github.com/mrz1836/lastword/internal/metrics"
	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// BuildInfo carries version metadata injected at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
	cmdCtx    *CommandContext

	buildInfo BuildInfo
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lastword",
	Short: "Decode BIP39 mnemonics and find valid final words",
	Long: `lastword decodes BIP39 mnemonic phrases and enumerates every final word
that completes a phrase with a valid checksum.

Words may be given in full or as their unique 4-letter abbreviation.
Phrases are read from arguments, --file, or stdin.

Example:
  lastword complete wrap jar phys abus ...
  lastword decode --file phrase.txt
  lastword verify < phrase.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute(info BuildInfo) error {
	buildInfo = info
	rootCmd.Version = formatVersion(info)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		formatErr(err)
		cleanup()
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return lwerr.ExitCode(err)
}

// formatVersion renders build info, substituting placeholders for missing fields.
func formatVersion(info BuildInfo) string {
	version, commit, date := info.Version, info.Commit, info.Date
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// formatErr prints err to stderr in the active format.
func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	if logger != nil {
		logger.Error("command failed: %s", lwerr.Code(err))
	}
	_ = output.FormatError(rootCmd.ErrOrStderr(), err, format)
}

// initGlobals loads configuration and builds the logger and formatter.
func initGlobals(cmd *cobra.Command) error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	var err error
	cfg, err = config.Load(config.Path(home))
	if err != nil {
		if !lwerr.Is(err, lwerr.ErrConfigNotFound) {
			output.Warnf(cmd.ErrOrStderr(), "ignoring configuration: %v", err)
		}
		cfg = config.Defaults()
		cfg.Home = home
	}

	config.ApplyEnvironment(cfg)

	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != string(output.FormatAuto) {
		cfg.Output.DefaultFormat = outputFormat
	}

	logger, err = config.OpenLogger(cfg.Logging, cfg.LogPath(), cfg.Output.Verbose)
	if err != nil && cfg.Output.Verbose {
		output.Warnf(cmd.ErrOrStderr(), "logging disabled: %v", err)
	}

	w := cmd.OutOrStdout()
	formatter = output.NewFormatter(output.ParseFormat(cfg.Output.DefaultFormat), w).
		WithColor(output.ColorEnabled(cfg.Output.Color, w))

	cmdCtx = NewCommandContext(cfg, logger, formatter, mnemonic.English())

	logger.Debug("command=%s home=%s format=%s", cmd.CommandPath(), cfg.Home, formatter.Format())
	return nil
}

// cleanup logs the metric snapshot and releases resources.
func cleanup() {
	if logger == nil {
		return
	}
	snap := metrics.Global.Snapshot()
	logger.Debug("metrics: resolves=%d failed=%d decodes=%d completions=%d candidates=%d hashes=%d avg_ms=%.3f",
		snap.ResolvesTotal, snap.ResolvesFailed, snap.DecodesTotal, snap.CompletionsTotal,
		snap.CandidatesTotal, snap.ChecksumHashes, metrics.Global.CompletionAvgMs())
	_ = logger.Close()
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// Context returns the global command context.
func Context() *CommandContext {
	return cmdCtx
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "lastword data directory (default: ~/.lastword)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
