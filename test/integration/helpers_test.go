//go:build integration

package integration_test

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pact-cli/pact/internal/config"
	"github.com/pact-cli/pact/internal/dispatch"
	"github.com/pact-cli/pact/internal/fsutil"
	"github.com/pact-cli/pact/internal/runner"
	"github.com/pact-cli/pact/internal/runner/runnertest"
	"github.com/pact-cli/pact/internal/scaffold"
	"github.com/pact-cli/pact/internal/tmux"
	"github.com/pact-cli/pact/internal/vcs"
	"github.com/sirupsen/logrus/hooks/test"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // $HOME for the test
	BaseDir      string // base_dir in the generated config
	TemplatesDir string // templates_root in the generated config
	ConfigPath   string // PACT_CONFIG
}

// setupTestEnv creates isolated temp directories, writes a config file that
// points at them and sets HOME/PACT_CONFIG so nothing touches the real user
// environment. The env vars are restored after the test.
func setupTestEnv(t *testing.T, extraConfig string) *testEnv {
	t.Helper()

	home := t.TempDir()
	env := &testEnv{
		HomeDir:      home,
		BaseDir:      filepath.Join(home, "dev"),
		TemplatesDir: filepath.Join(home, "templates-root"),
		ConfigPath:   filepath.Join(home, ".pact", "config.yaml"),
	}

	t.Setenv("HOME", home)
	t.Setenv("PACT_CONFIG", env.ConfigPath)
	t.Setenv("SHELL", "/bin/sh")
	t.Setenv("TMUX", "")
	// Keep git from reading the developer's global config.
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	writeFile(t, env.ConfigPath, "base_dir: "+env.BaseDir+"\n"+
		"templates_root: "+env.TemplatesDir+"\n"+
		"shell: /bin/sh\n"+
		"log_level: debug\n"+extraConfig)
	writeFile(t, filepath.Join(home, ".gitconfig"), "[user]\n\tname = pact\n\temail = pact@example.com\n[init]\n\tdefaultBranch = main\n")
	return env
}

// setupTemplates creates a shared template dir and a C template dir.
func setupTemplates(t *testing.T, env *testEnv) {
	t.Helper()
	writeFile(t, filepath.Join(env.TemplatesDir, "templates", "shared", ".editorconfig"), "root = true\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "templates", "shared", "LICENSE"), "MIT\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "templates", "c", "Makefile"), "all:\n\tcc -o main main.c\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "templates", "c", "src", "main.c"), "int main(void) { return 0; }\n")
}

// tmuxRouter sends tmux commands to a fake and everything else to a real
// runner, so git and shell steps run for real without opening sessions.
type tmuxRouter struct {
	real runner.Runner
	fake *runnertest.Fake
}

func (r *tmuxRouter) Run(ctx context.Context, c runner.Command) (*runner.Output, error) {
	if c.Name == tmux.DefaultBinary {
		return r.fake.Run(ctx, c)
	}
	return r.real.Run(ctx, c)
}

// newDispatcher wires a dispatcher the way the CLI does, except that tmux is
// faked. It returns the loaded config and the tmux fake.
func newDispatcher(t *testing.T) (*dispatch.Dispatcher, *config.Config, *runnertest.Fake) {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	logger, _ := test.NewNullLogger()
	exec := runner.NewExec(logger)
	exec.Stdout, exec.Stderr = io.Discard, io.Discard
	fake := runnertest.New()
	r := &tmuxRouter{real: exec, fake: fake}
	fs := fsutil.OS{}

	d := &dispatch.Dispatcher{
		BaseDir: cfg.BaseDir,
		FS:      fs,
		VCS:     vcs.New(r),
		Mux:     &tmux.Tmux{Runner: r, Binary: tmux.DefaultBinary},
		Scaffold: &scaffold.Resolver{
			FS:            fs,
			Runner:        r,
			Shell:         scaffold.ResolveShell(cfg.Shell),
			TemplatesRoot: cfg.TemplatesRoot,
			Log:           logger,
		},
		Log: logger,
	}
	return d, cfg, fake
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
