package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/inkwell/pkg/bridge"
	"github.com/yaklabco/inkwell/pkg/runner"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.md"), "# A\n")
	writeFile(t, filepath.Join(tmpDir, "docs", "b.md"), "# B\n")
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "plain\n")
	writeFile(t, filepath.Join(tmpDir, ".hidden", "c.md"), "# C\n")

	files, err := runner.Discover(context.Background(), bridge.FormatMarkdown, runner.Options{
		WorkingDir: tmpDir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.md" || filepath.Base(files[1]) != "b.md" {
		t.Errorf("unexpected discovery order: %v", files)
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "keep.md"), "# Keep\n")
	writeFile(t, filepath.Join(tmpDir, "vendor", "skip.md"), "# Skip\n")

	files, err := runner.Discover(context.Background(), bridge.FormatMarkdown, runner.Options{
		WorkingDir:   tmpDir,
		ExcludeGlobs: []string{"vendor/**"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "keep.md" {
		t.Errorf("expected only keep.md, got %v", files)
	}
}

func TestDiscoverHTMLExtensions(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "page.html"), "<p>hi</p>\n")
	writeFile(t, filepath.Join(tmpDir, "readme.md"), "# hi\n")

	files, err := runner.Discover(context.Background(), bridge.FormatHTML, runner.Options{
		WorkingDir: tmpDir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "page.html" {
		t.Errorf("expected only page.html, got %v", files)
	}
}

func TestTargetPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		from bridge.Format
		to   bridge.Format
		want string
	}{
		{"md to html", "doc.md", bridge.FormatMarkdown, bridge.FormatHTML, "doc.html"},
		{"markdown to html", "doc.markdown", bridge.FormatMarkdown, bridge.FormatHTML, "doc.html"},
		{"html to md", "page.html", bridge.FormatHTML, bridge.FormatMarkdown, "page.md"},
		{"same format in place", "doc.md", bridge.FormatMarkdown, bridge.FormatMarkdown, "doc.md"},
		{"unknown extension appends", "doc", bridge.FormatMarkdown, bridge.FormatHTML, "doc.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runner.TargetPath(tt.path, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("TargetPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestRunConvertsToOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "doc.md"), "# Title\n\nbody text\n")

	r, err := runner.New(bridge.FormatMarkdown, bridge.FormatHTML, "gfm")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	result, err := r.Run(context.Background(), runner.Options{WorkingDir: tmpDir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 1 || result.Stats.FilesConverted != 1 {
		t.Fatalf("stats = %+v", result.Stats)
	}
	if result.Stats.FilesWritten != 0 {
		t.Errorf("expected no writes without --write, got %d", result.Stats.FilesWritten)
	}

	out := result.Files[0].Output
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Errorf("output missing heading: %q", out)
	}
	if result.Files[0].Blocks != 2 {
		t.Errorf("expected 2 blocks, got %d", result.Files[0].Blocks)
	}
}

func TestRunWriteCreatesTargets(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "doc.md"), "plain paragraph\n")

	r, err := runner.New(bridge.FormatMarkdown, bridge.FormatHTML, "gfm")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	opts := runner.Options{WorkingDir: tmpDir, Write: true}
	result, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesWritten != 1 {
		t.Fatalf("expected 1 write, stats = %+v", result.Stats)
	}

	target := filepath.Join(tmpDir, "doc.html")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if !strings.Contains(string(data), "<p>plain paragraph</p>") {
		t.Errorf("target content = %q", data)
	}

	// A second run produces identical output and writes nothing.
	result, err = r.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if result.Stats.FilesWritten != 0 {
		t.Errorf("expected idempotent second run, stats = %+v", result.Stats)
	}
}

func TestRunMissingPathFails(t *testing.T) {
	t.Parallel()

	r, err := runner.New(bridge.FormatMarkdown, bridge.FormatHTML, "gfm")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = r.Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing.md"},
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "doc.md"), "# ok\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := runner.New(bridge.FormatMarkdown, bridge.FormatHTML, "gfm")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := r.Run(ctx, runner.Options{WorkingDir: tmpDir}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
