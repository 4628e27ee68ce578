package config

import (
	"strconv"
	"strings"

	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// Keys lists every dotted path accepted by Get and Set, in display order.
//
//nolint:gochecknoglobals // read-only key table
var Keys = []string{
	"home",
	"input.strip_numbering",
	"completion.workers",
	"completion.verify",
	"output.default_format",
	"output.color",
	"output.verbose",
	"logging.level",
	"logging.file",
}

// Get returns the value at a dotted path such as "completion.workers".
func (c *Config) Get(path string) (string, error) {
	switch path {
	case "home":
		return c.Home, nil
	case "input.strip_numbering":
		return strconv.FormatBool(c.Input.StripNumbering), nil
	case "completion.workers":
		return strconv.Itoa(c.Completion.Workers), nil
	case "completion.verify":
		return strconv.FormatBool(c.Completion.Verify), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "output.color":
		return c.Output.Color, nil
	case "output.verbose":
		return strconv.FormatBool(c.Output.Verbose), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", unknownKey(path)
	}
}

// Set parses value and stores it at path. The config is validated afterwards;
// on failure the previous value is restored.
func (c *Config) Set(path, value string) error {
	prev, err := c.Get(path)
	if err != nil {
		return err
	}

	if err := c.set(path, strings.TrimSpace(value)); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		_ = c.set(path, prev)
		return err
	}
	return nil
}

func (c *Config) set(path, value string) error {
	var err error
	switch path {
	case "home":
		c.Home = value
	case "input.strip_numbering":
		c.Input.StripNumbering, err = parseStrictBool(path, value)
	case "completion.workers":
		c.Completion.Workers, err = parseInt(path, value)
	case "completion.verify":
		c.Completion.Verify, err = parseStrictBool(path, value)
	case "output.default_format":
		c.Output.DefaultFormat = strings.ToLower(value)
	case "output.color":
		c.Output.Color = strings.ToLower(value)
	case "output.verbose":
		c.Output.Verbose, err = parseStrictBool(path, value)
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.file":
		c.Logging.File = value
	default:
		return unknownKey(path)
	}
	return err
}

func parseStrictBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, lwerr.WithDetails(lwerr.ErrConfigInvalid, map[string]string{"key": key, "value": value})
	}
	return b, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, lwerr.WithDetails(lwerr.ErrConfigInvalid, map[string]string{"key": key, "value": value})
	}
	return n, nil
}

func unknownKey(path string) error {
	return lwerr.WithSuggestion(
		lwerr.WithDetails(lwerr.ErrUnknownConfigKey, map[string]string{"key": path}),
		"valid keys: "+strings.Join(Keys, ", "),
	)
}
