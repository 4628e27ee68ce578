package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mrz1836/lastword/internal/config"
)

const (
	scenarioHead = "wrap jar physical abuse minimum sand hair pet address alley fashion thank " +
		"duck sound budget spell flush knock source novel mixed detect tackle"
	scenarioHeadAbbrev = "wrap jar phys abus mini sand hair pet addr alle fash than " +
		"duck soun budg spel flus knoc sour nove mixe dete tack"
	validTwelve = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

//nolint:gochecknoglobals // expected completions of scenarioHead
var scenarioCandidates = []string{"among", "depart", "estate", "join", "oppose", "penalty", "symbol", "wasp"}

// saveGlobals saves all package-level globals and restores them on cleanup.
func saveGlobals(t *testing.T) {
	t.Helper()
	origCfg, origLogger, origFormatter, origCmdCtx := cfg, logger, formatter, cmdCtx
	origHome, origFormat, origVerbose := homeDir, outputFormat, verbose
	origBuild := buildInfo
	t.Cleanup(func() {
		cfg, logger, formatter, cmdCtx = origCfg, origLogger, origFormatter, origCmdCtx
		homeDir, outputFormat, verbose = origHome, origFormat, origVerbose
		buildInfo = origBuild
	})
}

// resetFlags returns every flag variable to its default; cobra keeps values
// between Execute calls.
func resetFlags() {
	homeDir, outputFormat, verbose = "", "auto", false
	phraseFile = ""
	completeWorkers, completeLimit, completeVerify = -1, 0, false
	verifyShowEntropy = false
	configForce = false
}

// clearEnv unsets the LASTWORD_* overrides for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvHome, config.EnvOutputFormat, config.EnvVerbose,
		config.EnvLogLevel, config.EnvWorkers,
	} {
		t.Setenv(key, "")
	}
}

// runCLI executes the root command with home as --home, stdin as input and
// returns captured stdout and stderr.
func runCLI(t *testing.T, home, stdin string, args ...string) (string, string, error) {
	t.Helper()
	saveGlobals(t)
	clearEnv(t)
	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--home", home}, args...))
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	if err != nil {
		formatErr(err)
	}
	cleanup()
	return stdout.String(), stderr.String(), err
}
