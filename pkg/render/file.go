package render

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// File is a single generated artifact: a relative output path and its
// contents. Paths always use forward slashes; the output writer maps them to
// the host separator.
type File struct {
	// Path is relative to the generation output root, e.g.
	// "app/Http/Controllers/PetController.php".
	Path string

	// Contents holds the rendered source.
	Contents []byte
}

// Validate rejects files that cannot be written safely.
func (f File) Validate() error {
	cleaned := path.Clean(f.Path)
	switch {
	case f.Path == "":
		return fmt.Errorf("render: file path is required")
	case path.IsAbs(cleaned):
		return fmt.Errorf("render: file path %q must be relative", f.Path)
	case cleaned == ".." || strings.HasPrefix(cleaned, "../"):
		return fmt.Errorf("render: file path %q escapes the output root", f.Path)
	case len(f.Contents) == 0:
		return fmt.Errorf("render: file %q has no contents", f.Path)
	}
	return nil
}

// Files is an ordered artifact set.
type Files []File

// Validate checks every file and rejects duplicate paths.
func (fs Files) Validate() error {
	seen := make(map[string]struct{}, len(fs))
	for _, f := range fs {
		if err := f.Validate(); err != nil {
			return err
		}
		cleaned := path.Clean(f.Path)
		if _, dup := seen[cleaned]; dup {
			return fmt.Errorf("render: duplicate output path %q", f.Path)
		}
		seen[cleaned] = struct{}{}
	}
	return nil
}

// Sort orders files by path so generator output is deterministic regardless
// of template iteration order.
func (fs Files) Sort() {
	sort.Slice(fs, func(i, j int) bool { return fs[i].Path < fs[j].Path })
}

// Paths returns the ordered list of output paths.
func (fs Files) Paths() []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Path)
	}
	return out
}
