package output

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreFileName is looked up in the output root before each write pass.
const IgnoreFileName = ".stubgen-ignore"

// Ignore matches output paths against glob patterns using gitignore-like
// semantics: one pattern per line, '#' comments, '!' negates an earlier
// match, and the last matching pattern wins.
type Ignore struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	glob   string
	negate bool
}

// ParseIgnore builds a matcher from raw ignore-file contents. Invalid
// patterns are rejected so typos surface at load time instead of silently
// failing to protect files.
func ParseIgnore(data []byte) (*Ignore, error) {
	ignore := &Ignore{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = strings.TrimSpace(line[1:])
			if line == "" {
				continue
			}
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("output: invalid ignore pattern %q", line)
		}
		ignore.patterns = append(ignore.patterns, ignorePattern{glob: line, negate: negate})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("output: scan ignore file: %w", err)
	}
	return ignore, nil
}

// LoadIgnore reads the ignore file from the output root. A missing file
// yields an empty matcher.
func LoadIgnore(root string) (*Ignore, error) {
	data, err := os.ReadFile(filepath.Join(root, IgnoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Ignore{}, nil
		}
		return nil, fmt.Errorf("output: read ignore file: %w", err)
	}
	return ParseIgnore(data)
}

// Match reports whether the slash-separated relative path is ignored.
func (i *Ignore) Match(path string) bool {
	if i == nil {
		return false
	}
	ignored := false
	for _, pattern := range i.patterns {
		ok, err := doublestar.Match(pattern.glob, path)
		if err != nil || !ok {
			continue
		}
		ignored = !pattern.negate
	}
	return ignored
}

// Empty reports whether the matcher carries no patterns.
func (i *Ignore) Empty() bool {
	return i == nil || len(i.patterns) == 0
}
