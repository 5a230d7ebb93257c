package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-stubgen/pkg/model"
)

type stubGenerator struct {
	name string
}

func (g stubGenerator) Name() string { return g.name }

func (g stubGenerator) Render(_ context.Context, _ model.Stub, _ RenderOptions) (Files, error) {
	return Files{{Path: g.name + ".php", Contents: []byte("<?php\n")}}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubGenerator{name: "laravel"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	generator, err := registry.Get("laravel")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if generator.Name() != "laravel" {
		t.Fatalf("name = %q", generator.Name())
	}
	if !registry.Has("laravel") {
		t.Error("Has(laravel) = false")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubGenerator{name: "slim"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(stubGenerator{name: "slim"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("error = %v", err)
	}
}

func TestRegistryRejectsInvalidGenerators(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Error("expected error for nil generator")
	}
	if err := registry.Register(stubGenerator{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Get("missing")
	if err == nil || !strings.Contains(err.Error(), `"missing" not found`) {
		t.Fatalf("error = %v", err)
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"symfony", "laravel", "slim"} {
		registry.MustRegister(stubGenerator{name: name})
	}
	got := registry.List()
	want := []string{"laravel", "slim", "symfony"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list = %v, want %v", got, want)
		}
	}
}
