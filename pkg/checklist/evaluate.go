package checklist

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-stubgen/pkg/render"
)

// Target abstracts where evaluated files come from: an in-memory render.Files
// set or an output directory on disk.
type Target interface {
	// ReadFile returns the contents of the slash-separated relative path, or
	// an error when the file is absent.
	ReadFile(path string) ([]byte, error)
}

// FilesTarget evaluates against an in-memory file set.
type FilesTarget struct {
	byPath map[string][]byte
}

// NewFilesTarget indexes the file set for lookup by path.
func NewFilesTarget(files render.Files) *FilesTarget {
	byPath := make(map[string][]byte, len(files))
	for _, file := range files {
		byPath[file.Path] = file.Contents
	}
	return &FilesTarget{byPath: byPath}
}

func (t *FilesTarget) ReadFile(path string) ([]byte, error) {
	contents, ok := t.byPath[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return contents, nil
}

// DirTarget evaluates against a directory on disk.
type DirTarget struct {
	root string
}

// NewDirTarget evaluates files below the given root directory.
func NewDirTarget(root string) *DirTarget {
	return &DirTarget{root: root}
}

func (t *DirTarget) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(t.root, filepath.FromSlash(path)))
}

// RuleResult captures one rule outcome.
type RuleResult struct {
	Rule   Rule
	Passed bool
	Detail string
}

// Report aggregates rule outcomes and the weighted score.
type Report struct {
	Title   string
	Results []RuleResult
	Score   int
	Max     int
}

// Passed reports whether every rule passed.
func (r Report) Passed() bool {
	return r.Score == r.Max
}

// Percent returns the score as a 0-100 integer percentage.
func (r Report) Percent() int {
	if r.Max == 0 {
		return 0
	}
	return r.Score * 100 / r.Max
}

// Evaluate runs every rule in document order. A missing target file fails the
// rule instead of aborting the run.
func Evaluate(doc Checklist, target Target) (Report, error) {
	if target == nil {
		return Report{}, errors.New("checklist: target is nil")
	}

	report := Report{Title: doc.Title}
	for _, rule := range doc.Rules {
		result := evaluateRule(rule, target)
		report.Results = append(report.Results, result)
		report.Max += rule.Weight
		if result.Passed {
			report.Score += rule.Weight
		}
	}
	return report, nil
}

func evaluateRule(rule Rule, target Target) RuleResult {
	contents, err := target.ReadFile(rule.Path)

	switch rule.Kind {
	case RuleFileExists:
		if err != nil {
			return RuleResult{Rule: rule, Detail: rule.Path + " is missing"}
		}
		return RuleResult{Rule: rule, Passed: true}

	case RuleContains:
		if err != nil {
			return RuleResult{Rule: rule, Detail: rule.Path + " is missing"}
		}
		if !bytes.Contains(contents, []byte(rule.Match)) {
			return RuleResult{Rule: rule, Detail: rule.Path + " does not contain the expected snippet"}
		}
		return RuleResult{Rule: rule, Passed: true}

	case RuleNotContains:
		if err != nil {
			return RuleResult{Rule: rule, Detail: rule.Path + " is missing"}
		}
		if bytes.Contains(contents, []byte(rule.Match)) {
			return RuleResult{Rule: rule, Detail: rule.Path + " contains the forbidden snippet"}
		}
		return RuleResult{Rule: rule, Passed: true}

	default:
		return RuleResult{Rule: rule, Detail: "unknown rule kind"}
	}
}
