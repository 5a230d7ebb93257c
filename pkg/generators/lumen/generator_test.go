package lumen_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-stubgen/internal/openapi/parser"
	"github.com/goliatone/go-stubgen/pkg/generators/lumen"
	"github.com/goliatone/go-stubgen/pkg/model"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
	"github.com/goliatone/go-stubgen/pkg/render"
	"github.com/goliatone/go-stubgen/pkg/testsupport"
)

func petstoreStub(t *testing.T) model.Stub {
	t.Helper()

	doc := testsupport.LoadDocument(t, "testdata/petstore.json")
	p := parser.New(pkgopenapi.NewParserOptions())
	operations, err := p.Operations(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse operations: %v", err)
	}
	stub, err := model.NewBuilder().Build(operations)
	if err != nil {
		t.Fatalf("build stub: %v", err)
	}
	stub.Title = "Petstore"
	stub.Version = "1.0.0"
	return stub
}

func renderPetstore(t *testing.T, options render.RenderOptions) render.Files {
	t.Helper()

	generator, err := lumen.New()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	files, err := generator.Render(context.Background(), petstoreStub(t), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return files
}

func fileContents(t *testing.T, files render.Files, path string) string {
	t.Helper()
	for _, file := range files {
		if file.Path == path {
			return string(file.Contents)
		}
	}
	t.Fatalf("file %q not rendered, got %v", path, files.Paths())
	return ""
}

func TestRenderEmitsFullArtifactSet(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})

	want := []string{
		"app/Api/DefaultApiInterface.php",
		"app/Api/PetsApiInterface.php",
		"app/Http/Controllers/DefaultController.php",
		"app/Http/Controllers/PetsController.php",
		"app/Models/NewPet.php",
		"app/Models/NewPetOwner.php",
		"app/Models/Pet.php",
		"app/Validation/CreatePetRules.php",
		"routes/web.php",
	}
	got := files.Paths()
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paths = %v, want %v", got, want)
		}
	}
}

func TestRenderControllerValidatesAgainstRulesConstant(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	controller := fileContents(t, files, "app/Http/Controllers/PetsController.php")

	for _, snippet := range []string{
		"namespace App\\Http\\Controllers;",
		"use App\\Validation\\CreatePetRules;",
		"use Laravel\\Lumen\\Routing\\Controller;",
		"class PetsController extends Controller",
		"$this->validate($request, CreatePetRules::RULES);",
		"return response()->json($result, 201);",
		"$limit = $request->query('limit');",
	} {
		if !strings.Contains(controller, snippet) {
			t.Errorf("controller missing %q\n%s", snippet, controller)
		}
	}
}

func TestRenderRulesPipeSyntax(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	rules := fileContents(t, files, "app/Validation/CreatePetRules.php")

	for _, snippet := range []string{
		"final class CreatePetRules",
		"'name' => 'required|string|min:1|max:64',",
	} {
		if !strings.Contains(rules, snippet) {
			t.Errorf("rules missing %q\n%s", snippet, rules)
		}
	}
}

func TestRenderRoutesUsesRouterArray(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	routes := fileContents(t, files, "routes/web.php")

	for _, snippet := range []string{
		"Route registration for Petstore v1.0.0.",
		"$router->get('/pets', ['as' => 'list_pets', 'uses' => 'PetsController@listPets']);",
		"$router->post('/pets', ['as' => 'create_pet', 'uses' => 'PetsController@createPet']);",
	} {
		if !strings.Contains(routes, snippet) {
			t.Errorf("routes missing %q\n%s", snippet, routes)
		}
	}
}

func TestRenderNamespaceOverride(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{Namespace: "Acme\\Petstore"})
	pet := fileContents(t, files, "app/Models/Pet.php")

	if !strings.Contains(pet, "namespace Acme\\Petstore\\Models;") {
		t.Errorf("namespace override not applied:\n%s", pet)
	}
}
