package cli

import (
	"github.com/mrz1836/lastword/internal/config"
	"github.com/mrz1836/lastword/internal/metrics"
	"github.com/mrz1836/lastword/internal/mnemonic"
	"github.com/mrz1836/lastword/internal/output"
)

// CommandContext holds dependencies for CLI commands.
type CommandContext struct {
	Config     *config.Config
	Logger     *config.Logger
	Formatter  *output.Formatter
	Dictionary *mnemonic.Dictionary
	Metrics    *metrics.Metrics
}

// NewCommandContext creates a context with the given dependencies, recording
// into the global metrics.
func NewCommandContext(
	cfg *config.Config,
	logger *config.Logger,
	formatter *output.Formatter,
	dict *mnemonic.Dictionary,
) *CommandContext {
	return &CommandContext{
		Config:     cfg,
		Logger:     logger,
		Formatter:  formatter,
		Dictionary: dict,
		Metrics:    metrics.Global,
	}
}

// WithDictionary replaces the word list used by commands.
func (c *CommandContext) WithDictionary(d *mnemonic.Dictionary) *CommandContext {
	c.Dictionary = d
	return c
}

// WithMetrics replaces the metrics sink used by commands.
func (c *CommandContext) WithMetrics(m *metrics.Metrics) *CommandContext {
	c.Metrics = m
	return c
}
