package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ManifestFileName records every path written by the last generation pass,
// one per line.
const ManifestFileName = ".stubgen-files"

func writeManifest(root string, paths []string) error {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var builder strings.Builder
	for _, path := range sorted {
		builder.WriteString(path)
		builder.WriteByte('\n')
	}

	target := filepath.Join(root, ManifestFileName)
	if err := os.WriteFile(target, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("output: write manifest: %w", err)
	}
	return nil
}

// ReadManifest returns the paths recorded by the previous generation pass. A
// missing manifest yields an empty slice.
func ReadManifest(root string) ([]string, error) {
	file, err := os.Open(filepath.Join(root, ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("output: read manifest: %w", err)
	}
	defer file.Close()

	var paths []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("output: scan manifest: %w", err)
	}
	return paths, nil
}

// Prune deletes files recorded in the previous manifest that are absent from
// the latest written set. Directories left empty afterwards are removed too.
func Prune(root string, written []string) ([]string, error) {
	previous, err := ReadManifest(root)
	if err != nil {
		return nil, err
	}
	if len(previous) == 0 {
		return nil, nil
	}

	keep := make(map[string]struct{}, len(written))
	for _, path := range written {
		keep[path] = struct{}{}
	}

	var removed []string
	for _, path := range previous {
		if _, ok := keep[path]; ok {
			continue
		}
		target := filepath.Join(root, filepath.FromSlash(path))
		if err := os.Remove(target); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("output: prune %s: %w", path, err)
		}
		removed = append(removed, path)
		removeEmptyParents(root, filepath.Dir(target))
	}
	return removed, nil
}

func removeEmptyParents(root, dir string) {
	for {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
