package checklist

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleKind enumerates the supported rule checks.
type RuleKind string

const (
	// RuleFileExists passes when the target path is present in the output.
	RuleFileExists RuleKind = "file_exists"
	// RuleContains passes when the target file contains the snippet.
	RuleContains RuleKind = "contains"
	// RuleNotContains passes when the target file does not contain the
	// snippet. A missing target file fails the rule.
	RuleNotContains RuleKind = "not_contains"
)

// Rule is one weighted quality check.
type Rule struct {
	ID     string   `yaml:"id"`
	Kind   RuleKind `yaml:"kind"`
	Path   string   `yaml:"path"`
	Match  string   `yaml:"match,omitempty"`
	Weight int      `yaml:"weight,omitempty"`
	Note   string   `yaml:"note,omitempty"`
}

// Checklist is an ordered set of rules with a title.
type Checklist struct {
	Title string `yaml:"title"`
	Rules []Rule `yaml:"rules"`
}

// Parse decodes a YAML checklist document and validates every rule.
func Parse(data []byte) (Checklist, error) {
	var doc Checklist
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Checklist{}, fmt.Errorf("checklist: parse document: %w", err)
	}
	if len(doc.Rules) == 0 {
		return Checklist{}, errors.New("checklist: document declares no rules")
	}
	for idx := range doc.Rules {
		rule := &doc.Rules[idx]
		if rule.Weight == 0 {
			rule.Weight = 1
		}
		if err := rule.validate(); err != nil {
			return Checklist{}, err
		}
	}
	return doc, nil
}

// Load reads a checklist document from the provided filesystem.
func Load(fsys fs.FS, path string) (Checklist, error) {
	if fsys == nil {
		return Checklist{}, errors.New("checklist: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Checklist{}, fmt.Errorf("checklist: read %s: %w", path, err)
	}
	return Parse(data)
}

func (r *Rule) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("checklist: rule is missing an id")
	}
	if strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("checklist: rule %s is missing a path", r.ID)
	}
	if r.Weight < 0 {
		return fmt.Errorf("checklist: rule %s has negative weight", r.ID)
	}
	switch r.Kind {
	case RuleFileExists:
		return nil
	case RuleContains, RuleNotContains:
		if r.Match == "" {
			return fmt.Errorf("checklist: rule %s requires a match snippet", r.ID)
		}
		return nil
	default:
		return fmt.Errorf("checklist: rule %s has unknown kind %q", r.ID, r.Kind)
	}
}
