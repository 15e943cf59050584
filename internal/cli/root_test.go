package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/rook-computer/cardmaker/internal/errors"
	"github.com/rook-computer/cardmaker/internal/render"
)

// run executes the command in a scratch directory with asset and font paths
// that do not exist, so results do not depend on the host.
func run(t *testing.T, redirect RedirectFunc, args ...string) (dir string, stderr string, err error) {
	t.Helper()
	dir = t.TempDir()
	base := []string{
		"--output", filepath.Join(dir, "social_preview.png"),
		"--logo", filepath.Join(dir, "brand-logo.png"),
		"--github-mark", filepath.Join(dir, "github-mark.png"),
		"--font-regular", filepath.Join(dir, "regular.ttf"),
		"--font-bold", filepath.Join(dir, "bold.ttf"),
	}
	cmd := NewRootCommand(redirect)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(base, args...))
	err = cmd.ExecuteContext(context.Background())
	return dir, errOut.String(), err
}

func TestRootWritesCard(t *testing.T) {
	dir, stderr, err := run(t, nil, "--title", "octo/demo", "--subtitle", "short text")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	path := filepath.Join(dir, "social_preview.png")
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != render.CanvasWidth || b.Dy() != render.CanvasHeight {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), render.CanvasWidth, render.CanvasHeight)
	}
	if !strings.Contains(stderr, "Generated "+path) {
		t.Errorf("stderr missing success line: %q", stderr)
	}
}

func TestRootWriteFailure(t *testing.T) {
	cmd := NewRootCommand(nil)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", filepath.Join(t.TempDir(), "missing", "card.png")})

	err := cmd.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeWrite) {
		t.Fatalf("err = %v, want WRITE", err)
	}
}

func TestRootVerbose(t *testing.T) {
	_, stderr, err := run(t, nil, "-v", "--title", "octo/demo")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "DEBU") {
		t.Errorf("expected debug output with -v, got %q", stderr)
	}
}

func TestRootConfigFile(t *testing.T) {
	cfgDir := t.TempDir()
	out := filepath.Join(cfgDir, "from-config.png")
	cfg := filepath.Join(cfgDir, "card.toml")
	body := "output = \"" + filepath.ToSlash(out) + "\"\ntitle = \"octo/demo\"\nauthor = \"octocat\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	// --output from run() is set explicitly and must win over the file.
	dir, _, err := run(t, nil, "--config", cfg)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "social_preview.png")); err != nil {
		t.Errorf("flag output not written: %v", err)
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("config output should have been overridden by the flag")
	}
}

func TestFileConfigApply(t *testing.T) {
	cmd := NewRootCommand(nil)
	if err := cmd.Flags().Parse([]string{"--title", "flag/wins"}); err != nil {
		t.Fatal(err)
	}
	opts := cardOpts{title: "flag/wins", subtitle: "default"}
	fileConfig{Title: "file/loses", Subtitle: "from file", QR: "payload"}.apply(cmd, &opts)

	if opts.title != "flag/wins" {
		t.Errorf("title = %q, want flag value", opts.title)
	}
	if opts.subtitle != "from file" {
		t.Errorf("subtitle = %q, want config value", opts.subtitle)
	}
	if opts.qr != "payload" {
		t.Errorf("qr = %q, want config value", opts.qr)
	}
	if opts.hold != 0 {
		t.Errorf("hold = %v, want unset", opts.hold)
	}
}

func TestFileConfigHold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.toml")
	if err := os.WriteFile(path, []byte("hold = \"1m30s\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Hold != 90*time.Second {
		t.Fatalf("Hold = %v, want 1m30s", cfg.Hold)
	}

	var opts cardOpts
	cfg.apply(NewRootCommand(nil), &opts)
	if opts.hold != 90*time.Second {
		t.Errorf("hold = %v, want config value", opts.hold)
	}

	cmd := NewRootCommand(nil)
	if err := cmd.Flags().Parse([]string{"--hold", "5s"}); err != nil {
		t.Fatal(err)
	}
	opts = cardOpts{hold: 5 * time.Second}
	cfg.apply(cmd, &opts)
	if opts.hold != 5*time.Second {
		t.Errorf("hold = %v, want flag value", opts.hold)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "title = ", "read"},
		{"unknown key", "title = \"a/b\"\ncolour = \"red\"\n", "unknown keys: colour"},
		{"bad hold", "hold = \"soon\"\n", "read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := loadConfig(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("err = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := loadConfig(filepath.Join(dir, "absent.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing file: err = %v, want INVALID_CONFIG", err)
	}
}

func TestRootStdioRedirect(t *testing.T) {
	var got string
	redirect := func(path string) error {
		got = path
		return nil
	}
	if _, _, err := run(t, redirect, "--stdio-log", "/tmp/cardmaker.log"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "/tmp/cardmaker.log" {
		t.Errorf("redirect called with %q", got)
	}
}

func TestRootFramebufferFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := run(t, nil, "--framebuffer", filepath.Join(dir, "fb0"))
	if err != nil {
		t.Fatalf("preview failure must not fail the run: %v", err)
	}
	if !strings.Contains(stderr, "Preview skipped") {
		t.Errorf("expected a warning, got %q", stderr)
	}
}

func TestRootVersion(t *testing.T) {
	cmd := NewRootCommand(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "cardmaker version") {
		t.Errorf("version output = %q", out.String())
	}
}
