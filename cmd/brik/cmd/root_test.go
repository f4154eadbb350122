package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazcamedia/brik/internal/config"
	"github.com/nazcamedia/brik/internal/output"
)

// execute runs brik against an isolated config path.
func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "config.json")
	code := Execute(append([]string{"--config", path}, args...), &stdout, &stderr)
	return ansi.Strip(stdout.String()), ansi.Strip(stderr.String()), code
}

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &resp), "output: %s", raw)
	return resp
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})
	require.NotNil(t, cmd)
	assert.Equal(t, "brik", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})
	commands := []string{"add", "even", "clamp", "init", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(&RootOptions{})

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, config.FormatText, formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, config.DefaultPath, configFlag.DefValue)
}

func TestBanner(t *testing.T) {
	stdout, _, code := execute(t)
	assert.Equal(t, output.ExitSuccess, code)
	assert.Equal(t, "BRIK System Initialized\n1+1=2\n", stdout)
}

func TestBannerJSON(t *testing.T) {
	stdout, _, code := execute(t, "--format", "json")
	require.Equal(t, output.ExitSuccess, code)

	data := decode(t, stdout)["data"].(map[string]any)
	assert.Equal(t, Banner, data["message"])
	assert.Equal(t, float64(2), data["value"])
}

func TestTextCommands(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"add", []string{"add", "2", "3"}, "5\n"},
		{"add negative", []string{"add", "--", "-4", "6"}, "2\n"},
		{"even true", []string{"even", "4"}, "true\n"},
		{"even false", []string{"even", "5"}, "false\n"},
		{"even zero", []string{"even", "0"}, "true\n"},
		{"clamp low", []string{"clamp", "--", "-1"}, "0\n"},
		{"clamp high", []string{"clamp", "2"}, "1\n"},
		{"clamp mid", []string{"clamp", "0.5"}, "0.5\n"},
		{"clamp nan", []string{"clamp", "NaN"}, "NaN\n"},
		{"clamp inf", []string{"clamp", "Inf"}, "1\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, tc.args...)
			require.Equal(t, output.ExitSuccess, code, "stderr: %s", stderr)
			assert.Equal(t, tc.expected, stdout)
		})
	}
}

func TestJSONCommands(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected any
	}{
		{"add", []string{"add", "2", "3"}, float64(5)},
		{"even", []string{"even", "5"}, false},
		{"clamp", []string{"clamp", "0.5"}, "0.5"},
		{"clamp nan", []string{"clamp", "NaN"}, "NaN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, code := execute(t, append(tc.args, "--format", "json")...)
			require.Equal(t, output.ExitSuccess, code)

			resp := decode(t, stdout)
			assert.Equal(t, "ok", resp["status"])
			data := resp["data"].(map[string]any)
			assert.Equal(t, tc.args[0], data["op"])
			assert.Equal(t, tc.expected, data["value"])
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"add missing operand", []string{"add", "2"}},
		{"add not an integer", []string{"add", "2", "x"}},
		{"even float", []string{"even", "1.5"}},
		{"clamp not a number", []string{"clamp", "abc"}},
		{"unknown flag", []string{"add", "--bogus", "1", "2"}},
		{"unknown command", []string{"subtract", "1", "2"}},
		{"bad format", []string{"--format", "yaml", "add", "1", "2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, tc.args...)
			assert.Equal(t, output.ExitCommandError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestInvalidArgumentJSON(t *testing.T) {
	badConfig := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(badConfig, []byte(`{"version":9}`), 0o644))

	cases := []struct {
		name    string
		args    []string
		message string
	}{
		{"not an integer", []string{"--format", "json", "add", "2", "x"}, `invalid integer "x"`},
		{"missing operand", []string{"--format", "json", "add", "2"}, "invalid arguments"},
		{"unknown flag", []string{"--format", "json", "add", "--bogus", "1", "2"}, "invalid flags"},
		{"bad config", []string{"--format", "json", "--config", badConfig, "add", "1", "2"}, "failed to load config"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, tc.args...)
			assert.Equal(t, output.ExitCommandError, code)
			assert.Empty(t, stderr)

			resp := decode(t, stdout)
			assert.Equal(t, "error", resp["status"])
			errMsg := resp["error"].(map[string]any)
			assert.Equal(t, "command_error", errMsg["code"])
			assert.Contains(t, errMsg["message"], tc.message)
		})
	}
}

func TestConfigSelectsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"output":{"format":"json"}}`), 0o644))

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--config", path, "even", "4"}, &stdout, &stderr)
	require.Equal(t, output.ExitSuccess, code)
	assert.JSONEq(t, `{"status":"ok","data":{"op":"even","args":["4"],"value":true}}`, stdout.String())

	stdout.Reset()
	code = Execute([]string{"--config", path, "--format", "text", "even", "4"}, &stdout, &stderr)
	require.Equal(t, output.ExitSuccess, code)
	assert.Equal(t, "true\n", ansi.Strip(stdout.String()))
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":9}`), 0o644))

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--config", path, "add", "1", "2"}, &stdout, &stderr)
	assert.Equal(t, output.ExitCommandError, code)
	assert.Contains(t, stderr.String(), "failed to load config")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultDir, config.DefaultFile)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--config", path, "init"}, &stdout, &stderr)
	require.Equal(t, output.ExitSuccess, code, "stderr: %s", stderr.String())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultVersion, cfg.Version)

	code = Execute([]string{"--config", path, "init"}, &stdout, &stderr)
	assert.Equal(t, output.ExitCommandError, code)

	code = Execute([]string{"--config", path, "init", "--force"}, &stdout, &stderr)
	assert.Equal(t, output.ExitSuccess, code)
}

func TestInitForceReplacesMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--config", path, "init", "--force"}, &stdout, &stderr)
	require.Equal(t, output.ExitSuccess, code, "stderr: %s", stderr.String())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultVersion, cfg.Version)
}

func TestInitWithoutForceKeepsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"--config", path, "init"}, &stdout, &stderr)
	assert.Equal(t, output.ExitCommandError, code)
	assert.Contains(t, stderr.String(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{", string(data))
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, code := execute(t, "-v", "add", "2", "3")
	require.Equal(t, output.ExitSuccess, code)
	assert.Equal(t, "5\n", stdout)
	assert.Contains(t, stderr, "resolved config")
	assert.Contains(t, stderr, "a=2")
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "version")
	require.Equal(t, output.ExitSuccess, code)
	assert.Equal(t, "brik "+Version+"\n", stdout)
}

func TestVersionJSON(t *testing.T) {
	stdout, _, code := execute(t, "version", "--format", "json")
	require.Equal(t, output.ExitSuccess, code)
	assert.JSONEq(t, `{"status":"ok","data":{"op":"version","args":[],"value":"`+Version+`"}}`, stdout)
}
