package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/pkg"
)

const scenario = `<?xml version="1.0" encoding="UTF-8"?>
<OpenSCENARIO>
  <FileHeader author="tester" revMajor="1" revMinor="3"/>
  <ParameterDeclarations>
    <ParameterDeclaration name="EgoSpeed" parameterType="double" value="30"/>
  </ParameterDeclarations>
</OpenSCENARIO>
`

// TestMain keeps the configuration and cache directories out of the home
// directory of whoever runs the tests.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", pkg.Name+"-cli-test-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	os.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	os.Unsetenv(pkg.CatalogPathEnv)

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// execute runs the CLI with args and the configuration file at confPath,
// returning its output and the exit code passed to kong's exit function,
// or -1 when kong never exits.
func execute(t *testing.T, confPath string, args ...string) (string, int, error) {
	t.Helper()

	defer log.Config(log.WithLevel(log.DefaultLevel), log.WithFormat(log.DefaultFormat))

	var out bytes.Buffer

	code := -1

	err := run(t.Context(), &out, func(c int) { code = c }, confPath, args...)

	return out.String(), code, err
}

func TestRunEval(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")
	src := filepath.Join(t.TempDir(), "scenario.xosc")

	if err := os.WriteFile(src, []byte(scenario), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, conf, "eval", "-s", src, "-p", "EgoSpeed=36", "$EgoSpeed / 3.6")
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if out != "10\n" {
		t.Errorf("run() output = %q, want %q", out, "10\n")
	}
}

func TestRunEvalParamWithComma(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")

	out, _, err := execute(t, conf, "eval", "-p", "Call=max(1,2)", "-p", "N=4", "$Call")
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if out != "max(1,2)\n" {
		t.Errorf("run() output = %q, want %q", out, "max(1,2)\n")
	}
}

func TestRunVersion(t *testing.T) {
	// The exit function returns, so kong goes on to report the missing
	// command; only the output and exit code matter here.
	out, code, _ := execute(t, filepath.Join(t.TempDir(), "config.yaml"), "--version")

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if !strings.HasPrefix(out, pkg.Name+" ") {
		t.Errorf("version output = %q", out)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "config.yaml")

	// init writes the flags in effect, including those from the command line.
	if _, _, err := execute(t, conf, "--log-format=json", "init"); err != nil {
		t.Fatalf("init error: %v", err)
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), "log-format: json") {
		t.Errorf("configuration missing log-format:\n%s", data)
	}

	// A second init fails without --force.
	if _, _, err := execute(t, conf, "init"); err == nil {
		t.Error("init overwrote the configuration without --force")
	}

	if _, _, err := execute(t, conf, "init", "--force"); err != nil {
		t.Errorf("init --force error: %v", err)
	}
}

func TestRunMalformedConfig(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(conf, []byte("log: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// kong reports loader failures as text, so match the message.
	_, _, err := execute(t, conf, "eval", "1 + 1")
	if err == nil || !strings.Contains(err.Error(), ErrConfig.Error()) {
		t.Errorf("run() error = %v, want %v", err, ErrConfig)
	}
}
