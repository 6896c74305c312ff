package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Writer renders Jennifer files, formats them with goimports and writes
// them under a root directory. It is safe for concurrent use.
type Writer struct {
	root string

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// NewWriter creates a writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{root: dir}
}

// Metrics returns a snapshot of the writer metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write renders f to root/dir/filename and returns the full path.
func (w *Writer) Write(f *jen.File, dir, filename string) (string, error) {
	fullPath := filepath.Join(w.root, dir, filename)

	// 1. Render
	start := time.Now()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fullPath, fmt.Errorf("render %s: %w", filename, err)
	}
	rendered := time.Now()

	// 2. Format using goimports (removes unused imports and adds missing ones)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Write unformatted file for debugging (errors intentionally ignored as we're already in error state)
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return fullPath, fmt.Errorf("format %s: %w (unformatted written to %s)", filename, err, debugPath)
	}
	formattedAt := time.Now()

	// 3. Write
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fullPath, fmt.Errorf("create directory for %s: %w", filename, err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return fullPath, fmt.Errorf("write %s: %w", filename, err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(formatted))
	w.metrics.RenderTime += rendered.Sub(start)
	w.metrics.FormatTime += formattedAt.Sub(rendered)
	w.metrics.WriteTime += time.Since(formattedAt)
	w.mu.Unlock()

	return fullPath, nil
}
