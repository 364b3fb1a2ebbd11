package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestViewerShow tests rendering to disk without opening a browser.
func TestViewerShow(t *testing.T) {
	t.Run("writes a uniquely named html file", func(t *testing.T) {
		dir := t.TempDir()
		v := NewViewer(dir, WithOpen(false))

		line := Line("Revenues", sampleSeries())

		path, err := v.Show(line, "line")
		if err != nil {
			t.Fatalf("Show() error = %v", err)
		}

		if filepath.Dir(path) != dir {
			t.Errorf("path %q not under %q", path, dir)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "line-") || !strings.HasSuffix(base, ".html") {
			t.Errorf("file name = %q, want line-<id>.html", base)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading chart file: %v", err)
		}
		if !strings.Contains(string(content), "echarts") {
			t.Error("chart file should embed the rendering library")
		}
	})

	t.Run("two shows never collide", func(t *testing.T) {
		v := NewViewer(t.TempDir(), WithOpen(false))
		line := Line("Revenues", sampleSeries())

		first, err := v.Show(line, "line")
		if err != nil {
			t.Fatalf("Show() error = %v", err)
		}
		second, err := v.Show(line, "line")
		if err != nil {
			t.Fatalf("Show() error = %v", err)
		}
		if first == second {
			t.Errorf("both shows wrote %q, want unique paths", first)
		}
	})

	t.Run("unwritable output dir fails", func(t *testing.T) {
		blocked := filepath.Join(t.TempDir(), "blocked")
		if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing blocker file: %v", err)
		}

		v := NewViewer(filepath.Join(blocked, "charts"), WithOpen(false))
		if _, err := v.Show(Line("Revenues", nil), "line"); err == nil {
			t.Fatal("Show() expected error for unwritable directory")
		}
	})

	t.Run("empty output dir falls back to temp", func(t *testing.T) {
		v := NewViewer("", WithOpen(false))
		if v.outputDir != os.TempDir() {
			t.Errorf("outputDir = %q, want %q", v.outputDir, os.TempDir())
		}
	})
}
