package rules

import (
	"testing"

	"github.com/goliatone/go-stubgen/pkg/model"
)

func TestPipe(t *testing.T) {
	constraints := []model.Constraint{
		{Kind: model.ConstraintRequired},
		{Kind: model.ConstraintType, Value: "string"},
		{Kind: model.ConstraintMinLength, Value: "1"},
		{Kind: model.ConstraintMaxLength, Value: "64"},
	}
	if got := Pipe(constraints); got != "required|string|min:1|max:64" {
		t.Fatalf("Pipe = %q", got)
	}
}

func TestListTokens(t *testing.T) {
	cases := []struct {
		name       string
		constraint model.Constraint
		want       string
	}{
		{"required", model.Constraint{Kind: model.ConstraintRequired}, "required"},
		{"nullable", model.Constraint{Kind: model.ConstraintNullable}, "nullable"},
		{"numeric type", model.Constraint{Kind: model.ConstraintType, Value: "numeric"}, "numeric"},
		{"format", model.Constraint{Kind: model.ConstraintFormat, Value: "email"}, "email"},
		{"min", model.Constraint{Kind: model.ConstraintMin, Value: "0"}, "min:0"},
		{"max items", model.Constraint{Kind: model.ConstraintMaxItems, Value: "10"}, "max:10"},
		{"enum", model.Constraint{Kind: model.ConstraintEnum, Value: "a,b,c"}, "in:a,b,c"},
		{"pattern", model.Constraint{Kind: model.ConstraintPattern, Value: "^a/b$"}, "regex:/^a\\/b$/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := List([]model.Constraint{tc.constraint})
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("List = %v, want [%s]", got, tc.want)
			}
		})
	}
}

func TestListDropsUnknownKinds(t *testing.T) {
	got := List([]model.Constraint{{Kind: "mystery"}})
	if len(got) != 0 {
		t.Fatalf("List = %v, want empty", got)
	}
}

func TestSymfonyExpressions(t *testing.T) {
	cases := []struct {
		name       string
		constraint model.Constraint
		want       string
	}{
		{"required", model.Constraint{Kind: model.ConstraintRequired}, "new Assert\\NotNull()"},
		{"string type", model.Constraint{Kind: model.ConstraintType, Value: "string"}, "new Assert\\Type('string')"},
		{"bool type", model.Constraint{Kind: model.ConstraintType, Value: "boolean"}, "new Assert\\Type('bool')"},
		{"email", model.Constraint{Kind: model.ConstraintFormat, Value: "email"}, "new Assert\\Email()"},
		{"ip", model.Constraint{Kind: model.ConstraintFormat, Value: "ip"}, "new Assert\\Ip()"},
		{"min", model.Constraint{Kind: model.ConstraintMin, Value: "1"}, "new Assert\\GreaterThanOrEqual(1)"},
		{"max length", model.Constraint{Kind: model.ConstraintMaxLength, Value: "64"}, "new Assert\\Length(max: 64)"},
		{"min items", model.Constraint{Kind: model.ConstraintMinItems, Value: "2"}, "new Assert\\Count(min: 2)"},
		{"choice", model.Constraint{Kind: model.ConstraintEnum, Value: "a,b"}, "new Assert\\Choice(['a', 'b'])"},
		{"regex", model.Constraint{Kind: model.ConstraintPattern, Value: "^x$"}, "new Assert\\Regex('/^x$/')"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Symfony([]model.Constraint{tc.constraint})
			if len(got) != 1 || got[0] != tc.want {
				t.Fatalf("Symfony = %v, want [%s]", got, tc.want)
			}
		})
	}
}

func TestSymfonySkipsNullable(t *testing.T) {
	got := Symfony([]model.Constraint{{Kind: model.ConstraintNullable}})
	if len(got) != 0 {
		t.Fatalf("Symfony = %v, want empty", got)
	}
}
