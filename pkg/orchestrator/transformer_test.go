package orchestrator_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-stubgen/pkg/model"
	"github.com/goliatone/go-stubgen/pkg/orchestrator"
)

func sampleStub() model.Stub {
	return model.Stub{
		Namespace: "App",
		Controllers: []model.Controller{
			{
				Tag:       "pets",
				ClassName: "PetsController",
				Operations: []model.Operation{
					{ID: "createPet", MethodName: "createPet", RouteName: "create_pet"},
					{ID: "listPets", MethodName: "listPets", RouteName: "list_pets"},
				},
			},
		},
	}
}

func TestJSONPresetPatchesOperations(t *testing.T) {
	preset := []byte(`{
		"namespace": "Acme\\PetStore",
		"metadata": {"owner": "platform-team"},
		"operations": {
			"createPet": {"methodName": "storePet", "summary": "Store a pet.", "deprecated": true}
		}
	}`)
	transformer, err := orchestrator.NewJSONPresetTransformer(preset)
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}

	stub := sampleStub()
	if err := transformer.Transform(context.Background(), &stub); err != nil {
		t.Fatalf("transform: %v", err)
	}

	if stub.Namespace != "Acme\\PetStore" {
		t.Errorf("namespace = %q", stub.Namespace)
	}
	if stub.Metadata["owner"] != "platform-team" {
		t.Errorf("metadata = %v", stub.Metadata)
	}

	op := stub.Controllers[0].Operations[0]
	if op.MethodName != "storePet" || op.Summary != "Store a pet." || !op.Deprecated {
		t.Errorf("patched operation = %+v", op)
	}

	// Untouched operations keep their builder names.
	if stub.Controllers[0].Operations[1].MethodName != "listPets" {
		t.Errorf("unpatched operation changed: %+v", stub.Controllers[0].Operations[1])
	}
}

func TestJSONPresetUnknownOperation(t *testing.T) {
	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{"operations":{"nope":{}}}`))
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}

	stub := sampleStub()
	err = transformer.Transform(context.Background(), &stub)
	if err == nil || !strings.Contains(err.Error(), `"nope" not found`) {
		t.Fatalf("error = %v", err)
	}
}

func TestJSONPresetRejectsEmptyAndInvalidInput(t *testing.T) {
	if _, err := orchestrator.NewJSONPresetTransformer(nil); err == nil {
		t.Error("expected error for empty document")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("   ")); err == nil {
		t.Error("expected error for blank document")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("{broken")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestJSONPresetFromFS(t *testing.T) {
	files := fstest.MapFS{
		"preset.json": &fstest.MapFile{Data: []byte(`{"namespace":"Acme"}`)},
	}

	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(files, "preset.json")
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}

	stub := sampleStub()
	if err := transformer.Transform(context.Background(), &stub); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if stub.Namespace != "Acme" {
		t.Errorf("namespace = %q", stub.Namespace)
	}

	if _, err := orchestrator.NewJSONPresetTransformerFromFS(files, "missing.json"); err == nil {
		t.Error("expected error for missing preset file")
	}
	if _, err := orchestrator.NewJSONPresetTransformerFromFS(nil, "preset.json"); err == nil {
		t.Error("expected error for nil filesystem")
	}
}

func TestTransformerFuncNilIsNoop(t *testing.T) {
	var fn orchestrator.TransformerFunc
	stub := sampleStub()
	if err := fn.Transform(context.Background(), &stub); err != nil {
		t.Fatalf("nil TransformerFunc should be a no-op, got %v", err)
	}
}
