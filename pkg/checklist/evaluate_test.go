package checklist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-stubgen/pkg/render"
)

func sampleChecklist(t *testing.T) Checklist {
	t.Helper()
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func passingFiles() render.Files {
	return render.Files{
		{
			Path:     "app/Http/Controllers/PetsController.php",
			Contents: []byte("<?php\n\ndeclare(strict_types=1);\n"),
		},
		{
			Path:     "routes/api.php",
			Contents: []byte("<?php\n"),
		},
	}
}

func TestEvaluateAllRulesPass(t *testing.T) {
	report, err := Evaluate(sampleChecklist(t), NewFilesTarget(passingFiles()))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if !report.Passed() {
		t.Errorf("report should pass: %+v", report)
	}
	if report.Score != 4 || report.Max != 4 {
		t.Errorf("score = %d/%d, want 4/4", report.Score, report.Max)
	}
	if report.Percent() != 100 {
		t.Errorf("percent = %d", report.Percent())
	}
}

func TestEvaluateMissingFileFailsRule(t *testing.T) {
	files := render.Files{
		{Path: "routes/api.php", Contents: []byte("<?php\n")},
	}
	report, err := Evaluate(sampleChecklist(t), NewFilesTarget(files))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if report.Passed() {
		t.Error("report should fail when files are missing")
	}
	// file_exists and contains both fail; not_contains still passes.
	if report.Score != 1 || report.Max != 4 {
		t.Errorf("score = %d/%d, want 1/4", report.Score, report.Max)
	}
	if detail := report.Results[0].Detail; !strings.Contains(detail, "is missing") {
		t.Errorf("detail = %q", detail)
	}
}

func TestEvaluateNotContainsDetectsForbiddenSnippet(t *testing.T) {
	files := passingFiles()
	files[1].Contents = []byte("<?php\ndd($request);\n")

	report, err := Evaluate(sampleChecklist(t), NewFilesTarget(files))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	last := report.Results[2]
	if last.Passed {
		t.Error("not_contains rule should fail")
	}
	if !strings.Contains(last.Detail, "forbidden snippet") {
		t.Errorf("detail = %q", last.Detail)
	}
}

func TestEvaluateDirTarget(t *testing.T) {
	root := t.TempDir()
	for _, file := range passingFiles() {
		target := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(target, file.Contents, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	report, err := Evaluate(sampleChecklist(t), NewDirTarget(root))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !report.Passed() {
		t.Errorf("report should pass: %+v", report)
	}
}

func TestEvaluateNilTarget(t *testing.T) {
	if _, err := Evaluate(sampleChecklist(t), nil); err == nil {
		t.Fatal("expected error for nil target")
	}
}

func TestReportText(t *testing.T) {
	report, err := Evaluate(sampleChecklist(t), NewFilesTarget(passingFiles()))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	text := report.Text()
	for _, snippet := range []string{
		"Laravel stub quality",
		"[PASS] controller-exists (1)",
		"[PASS] strict-types (2)",
		"score: 4/4 (100%)",
	} {
		if !strings.Contains(text, snippet) {
			t.Errorf("text missing %q\n%s", snippet, text)
		}
	}
}

func TestReportMarkdown(t *testing.T) {
	doc := sampleChecklist(t)
	report, err := Evaluate(doc, NewFilesTarget(nil))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	markdown := report.Markdown()
	for _, snippet := range []string{
		"# Laravel stub quality",
		"| Rule | Weight | Result | Detail |",
		"| controller-exists | 1 | ❌ |",
		"**Score: 0/4 (0%)**",
	} {
		if !strings.Contains(markdown, snippet) {
			t.Errorf("markdown missing %q\n%s", snippet, markdown)
		}
	}
}
