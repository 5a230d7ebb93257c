package model_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-stubgen/internal/model"
	"github.com/goliatone/go-stubgen/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
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

	builder := model.New(model.Options{})
	stub, err := builder.Build(operations)
	if err != nil {
		t.Fatalf("build stub: %v", err)
	}
	return stub
}

func TestBuildGroupsOperationsByTag(t *testing.T) {
	stub := petstoreStub(t)

	if stub.Namespace != "App" {
		t.Errorf("namespace = %q", stub.Namespace)
	}
	if len(stub.Controllers) != 2 {
		t.Fatalf("controllers = %d", len(stub.Controllers))
	}

	// Tags sort alphabetically, untagged operations land in Default.
	first := stub.Controllers[0]
	if first.Tag != "Default" || first.ClassName != "DefaultController" || first.InterfaceName != "DefaultApiInterface" {
		t.Fatalf("first controller = %+v", first)
	}
	if len(first.Operations) != 1 || first.Operations[0].MethodName != "getHealth" {
		t.Fatalf("default operations = %+v", first.Operations)
	}

	second := stub.Controllers[1]
	if second.Tag != "pets" || second.ClassName != "PetsController" {
		t.Fatalf("second controller = %+v", second)
	}
	var methods []string
	for _, op := range second.Operations {
		methods = append(methods, op.MethodName)
	}
	want := []string{"createPet", "deletePet", "getPet", "listPets"}
	if len(methods) != len(want) {
		t.Fatalf("methods = %v", methods)
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Fatalf("methods = %v, want %v", methods, want)
		}
	}
}

func TestBuildRequestBodyBecomesTypedDTO(t *testing.T) {
	stub := petstoreStub(t)

	op := findOperation(t, stub, "createPet")
	if op.Body == nil {
		t.Fatal("createPet body is nil")
	}
	if op.Body.ClassName != "NewPet" {
		t.Errorf("body class = %q", op.Body.ClassName)
	}
	if op.Body.Type.Hint != "NewPet" || op.Body.Type.Doc != "\\App\\NewPet" {
		t.Errorf("body type = %+v", op.Body.Type)
	}
	if op.SuccessStatus != 201 {
		t.Errorf("success status = %d", op.SuccessStatus)
	}
}

func TestBuildDerivesValidationRules(t *testing.T) {
	stub := petstoreStub(t)

	op := findOperation(t, stub, "createPet")
	rules := make(map[string][]model.Constraint, len(op.Rules))
	for _, fieldRules := range op.Rules {
		rules[fieldRules.Field] = fieldRules.Constraints
	}

	name, ok := rules["name"]
	if !ok {
		t.Fatalf("missing rules for name: %v", fieldNames(op.Rules))
	}
	assertConstraint(t, name, model.ConstraintRequired, "")
	assertConstraint(t, name, model.ConstraintType, "string")
	assertConstraint(t, name, model.ConstraintMinLength, "1")
	assertConstraint(t, name, model.ConstraintMaxLength, "64")

	// Nested object properties produce dotted paths.
	email, ok := rules["owner.email"]
	if !ok {
		t.Fatalf("missing rules for owner.email: %v", fieldNames(op.Rules))
	}
	assertConstraint(t, email, model.ConstraintRequired, "")
	assertConstraint(t, email, model.ConstraintFormat, "email")

	phone, ok := rules["owner.phone"]
	if !ok {
		t.Fatalf("missing rules for owner.phone: %v", fieldNames(op.Rules))
	}
	assertConstraint(t, phone, model.ConstraintPattern, "^[0-9+\\-() ]+$")

	status, ok := rules["status"]
	if !ok {
		t.Fatalf("missing rules for status: %v", fieldNames(op.Rules))
	}
	assertConstraint(t, status, model.ConstraintEnum, "available,pending,sold")
}

func TestBuildRegistersModels(t *testing.T) {
	stub := petstoreStub(t)

	var names []string
	for _, class := range stub.Models {
		names = append(names, class.Name)
	}
	want := []string{"NewPet", "NewPetOwner", "Pet"}
	if len(names) != len(want) {
		t.Fatalf("models = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("models = %v, want %v", names, want)
		}
	}

	pet := stub.Models[2]
	if pet.SchemaName != "Pet" {
		t.Errorf("pet schema name = %q", pet.SchemaName)
	}
	if len(pet.Properties) != 4 {
		t.Fatalf("pet properties = %d", len(pet.Properties))
	}
	// Properties sort by name: id, name, status, tag.
	if pet.Properties[0].Name != "id" || !pet.Properties[0].Required {
		t.Errorf("pet first property = %+v", pet.Properties[0])
	}
	if pet.Properties[2].Name != "status" || len(pet.Properties[2].Enum) != 3 {
		t.Errorf("pet status property = %+v", pet.Properties[2])
	}
}

func TestBuildArrayResponseType(t *testing.T) {
	stub := petstoreStub(t)

	op := findOperation(t, stub, "listPets")
	if len(op.Responses) != 1 {
		t.Fatalf("listPets responses = %+v", op.Responses)
	}
	resp := op.Responses[0]
	if resp.Status != "200" || !resp.HasBody {
		t.Fatalf("listPets response = %+v", resp)
	}
	if resp.Type.Hint != "array" || resp.Type.Doc != "\\App\\Pet[]" {
		t.Errorf("listPets response type = %+v", resp.Type)
	}
}

func TestBuildDefaultsSuccessStatus(t *testing.T) {
	stub := petstoreStub(t)

	op := findOperation(t, stub, "deletePet")
	if op.SuccessStatus != 200 {
		t.Errorf("deletePet success = %d, want 200 fallback", op.SuccessStatus)
	}
	if op.Body != nil {
		t.Error("deletePet should have no body")
	}
}

func TestBuildPathParams(t *testing.T) {
	stub := petstoreStub(t)

	op := findOperation(t, stub, "getPet")
	if len(op.PathParams) != 1 {
		t.Fatalf("getPet path params = %+v", op.PathParams)
	}
	param := op.PathParams[0]
	if param.Name != "petId" || param.VarName != "petId" {
		t.Errorf("param = %+v", param)
	}
	if param.Type.Hint != "int" {
		t.Errorf("param type = %+v", param.Type)
	}
	if !param.Required {
		t.Error("path param must be required")
	}
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	builder := model.New(model.Options{})
	if _, err := builder.Build(nil); err == nil {
		t.Fatal("expected error for empty operations")
	}
}

func TestBuildRejectsInvalidResponseSchema(t *testing.T) {
	op := pkgopenapi.MustNewOperation("getThing", "GET", "/thing", pkgopenapi.Schema{}, map[string]pkgopenapi.Schema{
		"200": {
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"good": {Type: "string"},
				"bad":  {Type: "array"},
			},
		},
	})

	builder := model.New(model.Options{})
	stub, err := builder.Build(map[string]pkgopenapi.Operation{"getThing": op})
	if err == nil {
		t.Fatal("expected error for array property without items")
	}
	if !strings.Contains(err.Error(), "missing items") {
		t.Fatalf("error = %v", err)
	}
	if len(stub.Models) != 0 {
		t.Fatalf("failed build must not leak models: %+v", stub.Models)
	}
}

func TestBuildSynthesisesInlineResponseDTOName(t *testing.T) {
	op := pkgopenapi.MustNewOperation("createPet", "POST", "/pets", pkgopenapi.Schema{}, map[string]pkgopenapi.Schema{
		"200": {
			Type: "object",
			Properties: map[string]pkgopenapi.Schema{
				"id": {Type: "integer"},
			},
		},
	})

	builder := model.New(model.Options{})
	stub, err := builder.Build(map[string]pkgopenapi.Operation{"createPet": op})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(stub.Models) != 1 || stub.Models[0].Name != "CreatePet200Response" {
		t.Fatalf("models = %+v, want CreatePet200Response", stub.Models)
	}
	built := findOperation(t, stub, "createPet")
	if len(built.Responses) != 1 || !built.Responses[0].HasBody {
		t.Fatalf("responses = %+v", built.Responses)
	}
	if built.Responses[0].Type.Hint != "CreatePet200Response" {
		t.Errorf("response type = %+v", built.Responses[0].Type)
	}
}

func TestBuildCarriesCookieParams(t *testing.T) {
	op := pkgopenapi.MustNewOperation("getSession", "GET", "/session", pkgopenapi.Schema{}, nil)
	op.Parameters = []pkgopenapi.Parameter{
		{Name: "session_id", In: pkgopenapi.ParameterInCookie, Required: true, Schema: pkgopenapi.Schema{Type: "string"}},
	}

	builder := model.New(model.Options{})
	stub, err := builder.Build(map[string]pkgopenapi.Operation{"getSession": op})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	built := findOperation(t, stub, "getSession")
	if len(built.CookieParams) != 1 {
		t.Fatalf("cookie params = %+v", built.CookieParams)
	}
	param := built.CookieParams[0]
	if param.Name != "session_id" || param.VarName != "sessionId" {
		t.Errorf("cookie param = %+v", param)
	}
	if param.Type.Hint != "string" {
		t.Errorf("cookie param type = %+v", param.Type)
	}
}

func TestBuildCustomNamespaceAndTag(t *testing.T) {
	op := pkgopenapi.MustNewOperation("ping", "GET", "/ping", pkgopenapi.Schema{}, nil)

	builder := model.New(model.Options{Namespace: "Acme\\Api", DefaultTag: "Misc"})
	stub, err := builder.Build(map[string]pkgopenapi.Operation{"ping": op})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if stub.Namespace != "Acme\\Api" {
		t.Errorf("namespace = %q", stub.Namespace)
	}
	if len(stub.Controllers) != 1 || stub.Controllers[0].Tag != "Misc" {
		t.Fatalf("controllers = %+v", stub.Controllers)
	}
}

func findOperation(t *testing.T, stub model.Stub, id string) model.Operation {
	t.Helper()
	for _, controller := range stub.Controllers {
		for _, op := range controller.Operations {
			if op.ID == id {
				return op
			}
		}
	}
	t.Fatalf("operation %q not found", id)
	return model.Operation{}
}

func fieldNames(rules []model.FieldRules) []string {
	out := make([]string, 0, len(rules))
	for _, fieldRules := range rules {
		out = append(out, fieldRules.Field)
	}
	return out
}

func assertConstraint(t *testing.T, constraints []model.Constraint, kind, value string) {
	t.Helper()
	for _, constraint := range constraints {
		if constraint.Kind == kind {
			if value != "" && constraint.Value != value {
				t.Errorf("constraint %s value = %q, want %q", kind, constraint.Value, value)
			}
			return
		}
	}
	t.Errorf("constraint %s missing in %v", kind, constraints)
}
