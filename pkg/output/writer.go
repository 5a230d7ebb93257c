package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-stubgen/pkg/render"
)

// Option customises writer behaviour.
type Option func(*Writer)

// WithDryRun reports what would be written without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(w *Writer) {
		w.dryRun = enabled
	}
}

// WithOverwrite controls whether existing files are replaced. Defaults to
// true; when disabled, existing files are reported as skipped.
func WithOverwrite(enabled bool) Option {
	return func(w *Writer) {
		w.overwrite = enabled
	}
}

// WithIgnore installs an ignore matcher. Files whose paths match are never
// written.
func WithIgnore(matcher *Ignore) Option {
	return func(w *Writer) {
		w.ignore = matcher
	}
}

// WithManifest toggles writing the manifest file alongside the output.
// Defaults to true.
func WithManifest(enabled bool) Option {
	return func(w *Writer) {
		w.manifest = enabled
	}
}

// Writer persists render.Files under a root directory.
type Writer struct {
	dryRun    bool
	overwrite bool
	manifest  bool
	ignore    *Ignore
}

// NewWriter constructs a Writer applying any provided options.
func NewWriter(options ...Option) *Writer {
	w := &Writer{overwrite: true, manifest: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Result summarises a write pass.
type Result struct {
	Written []string
	Skipped []string
	Ignored []string
	DryRun  bool
}

// Write validates the file set and persists it under root. Paths inside the
// set are always slash-separated and relative; they are joined onto root using
// the platform separator.
func (w *Writer) Write(ctx context.Context, root string, files render.Files) (Result, error) {
	result := Result{DryRun: w.dryRun}

	if root == "" {
		return result, errors.New("output: root directory is required")
	}
	if err := files.Validate(); err != nil {
		return result, fmt.Errorf("output: %w", err)
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if w.ignore != nil && w.ignore.Match(file.Path) {
			result.Ignored = append(result.Ignored, file.Path)
			continue
		}

		target := filepath.Join(root, filepath.FromSlash(file.Path))

		if !w.overwrite {
			if _, err := os.Stat(target); err == nil {
				result.Skipped = append(result.Skipped, file.Path)
				continue
			}
		}

		if w.dryRun {
			result.Written = append(result.Written, file.Path)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return result, fmt.Errorf("output: create directory for %s: %w", file.Path, err)
		}
		if err := os.WriteFile(target, file.Contents, 0o644); err != nil {
			return result, fmt.Errorf("output: write %s: %w", file.Path, err)
		}
		result.Written = append(result.Written, file.Path)
	}

	if w.manifest && !w.dryRun {
		if err := writeManifest(root, result.Written); err != nil {
			return result, err
		}
	}

	return result, nil
}
