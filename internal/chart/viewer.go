package chart

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/browser"
)

// Renderable is the part of a chart the viewer needs.
type Renderable interface {
	Render(w io.Writer) error
}

// Viewer writes rendered charts to disk and opens them in the default
// browser, which is the tool's interactive surface.
type Viewer struct {
	outputDir string
	open      bool
	logger    *slog.Logger
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// NewViewer creates a Viewer writing under outputDir, or the OS temp
// directory when outputDir is empty.
func NewViewer(outputDir string, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		outputDir: outputDir,
		open:      true,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.outputDir == "" {
		v.outputDir = os.TempDir()
	}

	return v
}

// WithOpen controls whether rendered charts are opened in the browser.
func WithOpen(open bool) ViewerOption {
	return func(v *Viewer) {
		v.open = open
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ViewerOption {
	return func(v *Viewer) {
		v.logger = logger
	}
}

// Show renders fig to a uniquely named HTML file and opens it unless
// opening is disabled. Returns the written path.
func (v *Viewer) Show(fig Renderable, kind string) (string, error) {
	if err := os.MkdirAll(v.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}

	path := filepath.Join(v.outputDir, fmt.Sprintf("%s-%s.html", kind, uuid.NewString()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	if err := fig.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close chart file: %w", err)
	}

	v.logger.Info("chart written", "path", path)

	if v.open {
		if err := browser.OpenFile(path); err != nil {
			v.logger.Warn("failed to open browser", "path", path, "err", err)
		}
	}

	return path, nil
}
