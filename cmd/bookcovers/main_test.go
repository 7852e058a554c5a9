package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/azitti/bookcovers/pkg/cover"
	"github.com/azitti/bookcovers/pkg/generator"
	"github.com/google/go-cmp/cmp"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestGenerateDefault(t *testing.T) {
	root := t.TempDir()
	bookDir := filepath.Join(root, "UniverseInANutshell")
	if err := os.MkdirAll(bookDir, 0o755); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runCLI(t, "--out", root)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if diff := cmp.Diff("Created spine and back cover images with color #1b161c\n", stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	fill := generator.RGB{R: 27, G: 22, B: 28}
	if err := cover.Verify(filepath.Join(bookDir, "Spine.png"), cover.Size{Width: 200, Height: 800}, fill); err != nil {
		t.Error(err)
	}
	if err := cover.Verify(filepath.Join(bookDir, "BackCover.png"), cover.Size{Width: 600, Height: 800}, fill); err != nil {
		t.Error(err)
	}
}

func TestGenerateMissingDirectory(t *testing.T) {
	root := t.TempDir()
	stdout, stderr, code := runCLI(t, "generate", "--out", root)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if stdout != "" {
		t.Errorf("confirmation printed on failure: %q", stdout)
	}
	if !strings.Contains(stderr, "Error:") || !strings.Contains(stderr, "Spine.png") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "UniverseInANutshell")); !os.IsNotExist(err) {
		t.Errorf("book directory created without --mkdir: %v", err)
	}
}

func TestGenerateManifestAndVerify(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "covers.yml")

	stdout, stderr, code := runCLI(t, "init", "--manifest", manifest)
	if code != 0 {
		t.Fatalf("init exit %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "Created: "+manifest) {
		t.Errorf("init stdout = %q", stdout)
	}
	if _, _, code := runCLI(t, "init", "--manifest", manifest); code != 1 {
		t.Errorf("second init exit %d, want 1", code)
	}

	stdout, stderr, code = runCLI(t, "gen", "--manifest", manifest, "--mkdir", "-j", "2")
	if code != 0 {
		t.Fatalf("generate exit %d, stderr: %s", code, stderr)
	}
	if diff := cmp.Diff("Created spine and back cover images for 2 books\n", stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	stdout, stderr, code = runCLI(t, "verify", "--manifest", manifest)
	if code != 0 {
		t.Fatalf("verify exit %d, stderr: %s", code, stderr)
	}
	root := filepath.Join(dir, "assets", "books")
	want := strings.Join([]string{
		"OK " + filepath.Join(root, "UniverseInANutshell", "Spine.png"),
		"OK " + filepath.Join(root, "UniverseInANutshell", "BackCover.png"),
		"OK " + filepath.Join(root, "BriefAnswersToBigQuestions", "Spine.png"),
		"OK " + filepath.Join(root, "BriefAnswersToBigQuestions", "BackCover.png"),
	}, "\n") + "\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("verify stdout mismatch (-want +got):\n%s", diff)
	}

	// A color override makes the written files fail verification.
	_, stderr, code = runCLI(t, "verify", "--manifest", manifest, "--book", "BriefAnswersToBigQuestions", "--color", "#000000")
	if code != 1 {
		t.Errorf("verify with wrong color exit %d, want 1", code)
	}
	if !strings.Contains(stderr, "want #000000") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestGenerateOverrides(t *testing.T) {
	root := t.TempDir()
	stdout, stderr, code := runCLI(t, "--out", root, "--mkdir", "--book", "Odyssey", "--color", "#FFFFFF", "--format", "bmp")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if diff := cmp.Diff("Created spine and back cover images with color #ffffff\n", stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	white := generator.RGB{R: 255, G: 255, B: 255}
	if err := cover.Verify(filepath.Join(root, "Odyssey", "Spine.bmp"), cover.DefaultSpine, white); err != nil {
		t.Error(err)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"color of wrong length", []string{"--color", "#fff"}, `invalid color "#fff"`},
		{"color not hex", []string{"--color", "purple"}, `invalid red channel in "purple"`},
		{"bad format", []string{"--format", "jpg"}, `unsupported format "jpg"`},
		{"bad book name", []string{"--book", "../x"}, "single directory name"},
		{"unknown manifest", []string{"--manifest", "does-not-exist.yml"}, "read manifest"},
		{"extra args", []string{"stray"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--out", t.TempDir()}, tt.args...)
			_, stderr, code := runCLI(t, args...)
			if code != 1 {
				t.Fatalf("exit %d, want 1", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want containing %q", stderr, tt.want)
			}
		})
	}
}

func TestLogFile(t *testing.T) {
	root := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "covers.log")
	_, stderr, code := runCLI(t, "--log-file", logPath, "--out", root, "--mkdir")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(b), `"msg":"wrote face"`); got != 2 {
		t.Errorf("log has %d face entries, want 2:\n%s", got, b)
	}
}

func TestErrorPrefixPlainWhenNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		name string
		w    io.Writer
	}{
		{"buffer", &bytes.Buffer{}},
		{"regular file", f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if isTerminal(tt.w) {
				t.Fatal("isTerminal = true")
			}
			if got := errPrefix(tt.w); got != "Error:" {
				t.Errorf("errPrefix = %q, want plain %q", got, "Error:")
			}
		})
	}

	_, stderr, code := runCLI(t, "--color", "#fff")
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if strings.Contains(stderr, "\x1b[") {
		t.Errorf("stderr contains escape codes: %q", stderr)
	}
}

func TestFormatHelpMentionsChannels(t *testing.T) {
	stdout, stderr, code := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "tiff stores RGBA") {
		t.Errorf("help does not describe tiff channels:\n%s", stdout)
	}
}
