package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/lastword/internal/config"
	"github.com/mrz1836/lastword/internal/output"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify lastword configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.lastword/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  lastword config init
  lastword config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the effective configuration: file values with environment and
flag overrides applied.

Example:
  lastword config show
  lastword config show -o json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its dotted path.

Examples:
  lastword config get completion.workers
  lastword config get output.default_format`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE:      runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value by its dotted path and save the file.

Examples:
  lastword config set completion.workers 4
  lastword config set completion.verify true
  lastword config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return lwerr.WithSuggestion(
			lwerr.WithDetails(lwerr.ErrGeneral, map[string]string{"path": configPath}),
			"configuration already exists; use --force to overwrite",
		)
	}

	defaults := config.Defaults()
	defaults.Home = cfg.Home
	if err := config.Save(defaults, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	logger.Debug("config init: path=%s", configPath)

	if formatter.IsJSON() {
		return formatter.JSON(map[string]string{"status": "created", "path": configPath})
	}

	w := formatter.Writer()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - input.strip_numbering: Strip list numbers, bullets and commas from pasted phrases")
	outln(w, "  - completion.workers: Parallel completion workers (0 = sequential)")
	outln(w, "  - completion.verify: Re-check candidates with an independent implementation")
	outln(w, "  - output.default_format: Output format (text/json/auto)")
	outln(w, "  - logging.level: Log level (off/error/debug)")
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	if formatter.IsJSON() {
		values := make(map[string]string, len(config.Keys))
		for _, key := range config.Keys {
			values[key], _ = cfg.Get(key)
		}
		return formatter.JSON(values)
	}

	table := output.NewTable("KEY", "VALUE")
	for _, key := range config.Keys {
		v, _ := cfg.Get(key)
		if v == "" {
			v = "-"
		}
		table.AddRow(key, v)
	}
	return table.Render(formatter.Writer())
}

func runConfigGet(_ *cobra.Command, args []string) error {
	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}

	if formatter.IsJSON() {
		return formatter.JSON(map[string]string{"key": args[0], "value": value})
	}
	outln(formatter.Writer(), value)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	configPath := config.Path(cfg.Home)

	// Edit the file's contents, not the environment-adjusted effective config.
	current, err := config.Load(configPath)
	if err != nil {
		if !lwerr.Is(err, lwerr.ErrConfigNotFound) {
			return err
		}
		current = config.Defaults()
		current.Home = cfg.Home
	}

	if err := current.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(current, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	stored, _ := current.Get(key)
	logger.Debug("config set: key=%s", key)

	if formatter.IsJSON() {
		return formatter.JSON(map[string]string{"key": key, "value": stored})
	}
	out(formatter.Writer(), "Set %s = %s\n", key, stored)
	return nil
}
