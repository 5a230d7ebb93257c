package checklist

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleDoc = `
title: Laravel stub quality
rules:
  - id: controller-exists
    kind: file_exists
    path: app/Http/Controllers/PetsController.php
  - id: strict-types
    kind: contains
    path: app/Http/Controllers/PetsController.php
    match: "declare(strict_types=1);"
    weight: 2
  - id: no-debug
    kind: not_contains
    path: routes/api.php
    match: dd(
`

func TestParseAppliesDefaultsAndOrder(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Title != "Laravel stub quality" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Rules) != 3 {
		t.Fatalf("rules = %d, want 3", len(doc.Rules))
	}
	if doc.Rules[0].ID != "controller-exists" || doc.Rules[2].ID != "no-debug" {
		t.Errorf("rule order = %v", doc.Rules)
	}
	if doc.Rules[0].Weight != 1 {
		t.Errorf("default weight = %d, want 1", doc.Rules[0].Weight)
	}
	if doc.Rules[1].Weight != 2 {
		t.Errorf("explicit weight = %d, want 2", doc.Rules[1].Weight)
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"invalid yaml", "title: [", "parse document"},
		{"no rules", "title: empty", "declares no rules"},
		{"missing id", "rules:\n  - kind: file_exists\n    path: a.php", "missing an id"},
		{"missing path", "rules:\n  - id: r1\n    kind: file_exists", "missing a path"},
		{"unknown kind", "rules:\n  - id: r1\n    kind: regex\n    path: a.php", `unknown kind "regex"`},
		{"contains without match", "rules:\n  - id: r1\n    kind: contains\n    path: a.php", "requires a match snippet"},
		{"negative weight", "rules:\n  - id: r1\n    kind: file_exists\n    path: a.php\n    weight: -1", "negative weight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	files := fstest.MapFS{
		"checklist.yaml": &fstest.MapFile{Data: []byte(sampleDoc)},
	}

	doc, err := Load(files, "checklist.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Rules) != 3 {
		t.Fatalf("rules = %d, want 3", len(doc.Rules))
	}

	if _, err := Load(files, "missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(nil, "checklist.yaml"); err == nil {
		t.Error("expected error for nil filesystem")
	}
}
