package output_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-stubgen/pkg/output"
	"github.com/goliatone/go-stubgen/pkg/render"
)

func TestReadManifestMissing(t *testing.T) {
	paths, err := output.ReadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("paths = %v, want none", paths)
	}
}

func TestReadManifestRoundTrip(t *testing.T) {
	root := t.TempDir()
	writer := output.NewWriter()

	if _, err := writer.Write(context.Background(), root, sampleFiles()); err != nil {
		t.Fatalf("write: %v", err)
	}

	paths, err := output.ReadManifest(root)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"app/Http/Controllers/PetsController.php", "routes/api.php"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}
}

func TestPruneRemovesStaleFiles(t *testing.T) {
	root := t.TempDir()
	writer := output.NewWriter()

	first := render.Files{
		{Path: "app/Models/Pet.php", Contents: []byte("<?php\n")},
		{Path: "app/Models/Owner.php", Contents: []byte("<?php\n")},
	}
	if _, err := writer.Write(context.Background(), root, first); err != nil {
		t.Fatalf("first write: %v", err)
	}

	// Owner drops out of the second pass; prune should delete it.
	second := render.Files{
		{Path: "app/Models/Pet.php", Contents: []byte("<?php\n")},
	}
	result, err := writer.Write(context.Background(), root, second)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	removed, err := output.Prune(root, result.Written)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if len(removed) != 1 || removed[0] != "app/Models/Owner.php" {
		t.Fatalf("removed = %v", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "app", "Models", "Owner.php")); !os.IsNotExist(err) {
		t.Error("stale file still on disk")
	}
	if _, err := os.Stat(filepath.Join(root, "app", "Models", "Pet.php")); err != nil {
		t.Errorf("kept file missing: %v", err)
	}
}

func TestPruneRemovesEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	writer := output.NewWriter()

	first := render.Files{
		{Path: "src/Validator/CreatePetValidator.php", Contents: []byte("<?php\n")},
		{Path: "src/Controller/PetsController.php", Contents: []byte("<?php\n")},
	}
	if _, err := writer.Write(context.Background(), root, first); err != nil {
		t.Fatalf("first write: %v", err)
	}

	second := render.Files{
		{Path: "src/Controller/PetsController.php", Contents: []byte("<?php\n")},
	}
	result, err := writer.Write(context.Background(), root, second)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	if _, err := output.Prune(root, result.Written); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "Validator")); !os.IsNotExist(err) {
		t.Error("empty directory left behind")
	}
	if _, err := os.Stat(filepath.Join(root, "src", "Controller")); err != nil {
		t.Errorf("non-empty directory removed: %v", err)
	}
}

func TestPruneWithoutManifestIsNoop(t *testing.T) {
	removed, err := output.Prune(t.TempDir(), []string{"anything.php"})
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("removed = %v, want none", removed)
	}
}
