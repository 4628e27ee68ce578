//go:build integration

// Package integration provides end-to-end tests that drive the built
// lastword binary the way a user would.
//
// Run with: go test -tags=integration ./tests/integration/...
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const (
	scenarioHead = "wrap jar physical abuse minimum sand hair pet address alley fashion thank " +
		"duck sound budget spell flush knock source novel mixed detect tackle"
	validTwelve = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

// testHome is a temporary directory for test data.
//
//nolint:gochecknoglobals // TestMain requires globals for shared test state
var testHome string

// lastwordBinary is the path to the built binary.
//
//nolint:gochecknoglobals // TestMain requires globals for shared test state
var lastwordBinary string

func TestMain(m *testing.M) {
	// Get the project root (two directories up from tests/integration)
	cwd, _ := os.Getwd()
	projectRoot := filepath.Join(cwd, "..", "..")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	//nolint:gosec // G204: Binary path is controlled by test environment
	buildCmd := exec.CommandContext(ctx, "go", "build", "-o", filepath.Join(cwd, "lastword-test"), "./cmd/lastword")
	buildCmd.Dir = projectRoot
	output, err := buildCmd.CombinedOutput()
	if err != nil {
		panic("failed to build lastword binary: " + err.Error() + "\nOutput: " + string(output))
	}
	lastwordBinary = filepath.Join(cwd, "lastword-test")

	testHome, err = os.MkdirTemp("", "lastword-integration-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	code := m.Run()

	_ = os.RemoveAll(testHome)
	_ = os.Remove(lastwordBinary)

	os.Exit(code)
}

// runLastword executes the binary with stdin and returns its output and exit code.
func runLastword(t *testing.T, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	fullArgs := append([]string{"--home", testHome}, args...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	//nolint:gosec // G204: Binary path is controlled by test environment
	cmd := exec.CommandContext(ctx, lastwordBinary, fullArgs...)
	cmd.Env = append(os.Environ(), "LASTWORD_HOME=", "LASTWORD_OUTPUT_FORMAT=", "LASTWORD_WORKERS=")
	cmd.Stdin = strings.NewReader(stdin)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		exitCode = -1
	}

	return stdout, stderr, exitCode
}

//nolint:gocognit // Integration tests require step-by-step validation
func TestQuickstartWorkflow(t *testing.T) {
	t.Run("config init", func(t *testing.T) {
		stdout, _, exitCode := runLastword(t, "", "-o", "text", "config", "init")
		if exitCode != 0 {
			t.Fatalf("config init failed with exit code %d: %s", exitCode, stdout)
		}
		if _, err := os.Stat(filepath.Join(testHome, "config.yaml")); os.IsNotExist(err) {
			t.Error("config.yaml was not created")
		}
	})

	// In non-TTY (piped stdout), auto-format outputs JSON.
	t.Run("complete from stdin", func(t *testing.T) {
		stdout, stderr, exitCode := runLastword(t, scenarioHead, "complete")
		if exitCode != 0 {
			t.Fatalf("complete failed with exit code %d: %s", exitCode, stderr)
		}
		var resp struct {
			Candidates []string `json:"candidates"`
			Count      int      `json:"count"`
		}
		if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
			t.Fatalf("complete output is not valid JSON: %s", stdout)
		}
		want := []string{"among", "depart", "estate", "join", "oppose", "penalty", "symbol", "wasp"}
		if strings.Join(resp.Candidates, " ") != strings.Join(want, " ") || resp.Count != len(want) {
			t.Errorf("unexpected candidates: %v", resp.Candidates)
		}
	})

	t.Run("complete parallel from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "phrase.txt")
		if err := os.WriteFile(path, []byte(scenarioHead+"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		stdout, _, exitCode := runLastword(t, "", "-o", "text", "complete", "--workers", "4", "--verify", "--file", path)
		if exitCode != 0 {
			t.Fatalf("complete failed with exit code %d", exitCode)
		}
		if strings.Fields(stdout)[0] != "among" || len(strings.Fields(stdout)) != 8 {
			t.Errorf("unexpected output: %s", stdout)
		}
	})

	t.Run("verify", func(t *testing.T) {
		stdout, _, exitCode := runLastword(t, validTwelve, "-o", "text", "verify")
		if exitCode != 0 {
			t.Fatalf("verify failed with exit code %d", exitCode)
		}
		if !strings.Contains(stdout, "checksum valid") {
			t.Errorf("unexpected verify output: %s", stdout)
		}
	})

	t.Run("decode", func(t *testing.T) {
		stdout, _, exitCode := runLastword(t, "", "decode", "zoo", "aban", "act")
		if exitCode != 0 {
			t.Fatalf("decode failed with exit code %d", exitCode)
		}
		if !strings.Contains(stdout, `"value_decimal": "8585740307"`) {
			t.Errorf("unexpected decode output: %s", stdout)
		}
	})

	t.Run("version json", func(t *testing.T) {
		stdout, _, exitCode := runLastword(t, "", "version", "-o", "json")
		if exitCode != 0 {
			t.Fatalf("version failed with exit code %d", exitCode)
		}
		var v map[string]any
		if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &v); err != nil {
			t.Errorf("version output is not valid JSON: %s", stdout)
		} else if _, ok := v["version"]; !ok {
			t.Errorf("JSON output missing 'version' field: %s", stdout)
		}
	})

	t.Run("help commands", func(t *testing.T) {
		for _, cmdArgs := range []string{"--help", "decode --help", "complete --help", "verify --help", "config --help"} {
			stdout, _, exitCode := runLastword(t, "", strings.Fields(cmdArgs)...)
			if exitCode != 0 {
				t.Errorf("help for '%s' failed with exit code %d", cmdArgs, exitCode)
			}
			if !strings.Contains(stdout, "Usage:") {
				t.Errorf("expected help output for '%s', got: %s", cmdArgs, stdout)
			}
		}
	})
}

func TestExitCodes(t *testing.T) {
	testCases := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"success - help", "", []string{"--help"}, 0, ""},
		{"general error - unknown command", "", []string{"unknowncmd"}, 1, ""},
		{"input error - unknown word", "", []string{"decode", "abandon", "bogus"}, 2, "UNKNOWN_WORD"},
		{"input error - bad checksum", strings.Repeat("abandon ", 12), []string{"verify"}, 2, "INVALID_CHECKSUM"},
		{"input error - word count", "abandon", []string{"verify"}, 2, "INVALID_WORD_COUNT"},
		{"input error - empty phrase", "", []string{"complete"}, 2, "INVALID_INPUT"},
		{"not found - phrase file", "", []string{"decode", "--file", "/nonexistent/phrase.txt"}, 4, "NOT_FOUND"},
		{"not found - no words", "", []string{"words", "qqq"}, 4, "NOT_FOUND"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, exitCode := runLastword(t, tc.stdin, tc.args...)
			if exitCode != tc.wantCode {
				t.Errorf("expected exit code %d, got %d (stderr: %s)", tc.wantCode, exitCode, stderr)
			}
			if tc.wantErr != "" && !strings.Contains(stderr, tc.wantErr) {
				t.Errorf("expected %s in stderr, got: %s", tc.wantErr, stderr)
			}
		})
	}
}
