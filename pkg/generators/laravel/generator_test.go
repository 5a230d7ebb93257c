package laravel_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-stubgen/internal/openapi/parser"
	"github.com/goliatone/go-stubgen/pkg/generators/laravel"
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

	generator, err := laravel.New()
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
		"app/Http/Requests/CreatePetFormRequest.php",
		"app/Models/NewPet.php",
		"app/Models/NewPetOwner.php",
		"app/Models/Pet.php",
		"routes/api.php",
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

func TestRenderControllerDelegatesToHandler(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	controller := fileContents(t, files, "app/Http/Controllers/PetsController.php")

	for _, snippet := range []string{
		"namespace App\\Http\\Controllers;",
		"use App\\Api\\PetsApiInterface;",
		"class PetsController extends Controller",
		"public function __construct(private readonly PetsApiInterface $api)",
		"public function createPet(CreatePetFormRequest $request): JsonResponse",
		"$this->api->createPet($request->validated());",
		"return response()->json($result, 201);",
		"public function getPet(Request $request, int $petId): JsonResponse",
		"$limit = $request->query('limit');",
	} {
		if !strings.Contains(controller, snippet) {
			t.Errorf("controller missing %q\n%s", snippet, controller)
		}
	}
}

func TestRenderFormRequestCarriesPipeRules(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	request := fileContents(t, files, "app/Http/Requests/CreatePetFormRequest.php")

	for _, snippet := range []string{
		"class CreatePetFormRequest extends FormRequest",
		"'name' => 'required|string|min:1|max:64',",
	} {
		if !strings.Contains(request, snippet) {
			t.Errorf("form request missing %q\n%s", snippet, request)
		}
	}
}

func TestRenderRoutesFile(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{})
	routes := fileContents(t, files, "routes/api.php")

	for _, snippet := range []string{
		"Routes for Petstore v1.0.0.",
		"use App\\Http\\Controllers\\PetsController;",
		"Route::get('/pets', [PetsController::class, 'listPets'])->name('list_pets');",
		"Route::delete('/pets/{petId}', [PetsController::class, 'deletePet'])->name('delete_pet');",
	} {
		if !strings.Contains(routes, snippet) {
			t.Errorf("routes missing %q\n%s", snippet, routes)
		}
	}
}

func TestRenderNamespaceOverride(t *testing.T) {
	files := renderPetstore(t, render.RenderOptions{Namespace: "Acme\\Petstore"})
	controller := fileContents(t, files, "app/Http/Controllers/PetsController.php")

	if !strings.Contains(controller, "namespace Acme\\Petstore\\Http\\Controllers;") {
		t.Errorf("namespace override not applied:\n%s", controller)
	}
}

func TestRenderHonoursContextCancellation(t *testing.T) {
	generator, err := laravel.New()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := generator.Render(ctx, petstoreStub(t), render.RenderOptions{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
