package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-stubgen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-stubgen/pkg/testsupport"
)

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":      &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": &fstest.MapFile{Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": &fstest.MapFile{Data: []byte("{{ name|shout }}")},
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	opts := append([]gotemplate.Option{gotemplate.WithFS(templatesFS())}, options...)
	engine, err := gotemplate.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRender(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" {
		t.Fatalf("render = %q", result)
	}
	if written != result {
		t.Fatalf("writer got %q, want %q", written, result)
	}
}

func TestEngineRenderAppendsExtension(t *testing.T) {
	engine := newEngine(t)

	explicit, err := engine.Render("hello.tpl", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if explicit != "Hello Ada!" {
		t.Fatalf("render = %q", explicit)
	}
}

func TestEngineGlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("render = %q", result)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.Render("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("render = %q", result)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Error("expected error re-registering an existing filter")
	}
	if err := engine.RegisterFilter("", nil); err == nil {
		t.Error("expected error for empty filter registration")
	}
}

func TestEngineRenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString("{{ greeting }}, {{ name }}", map[string]any{
		"greeting": "Hei",
		"name":     "Ada",
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "Hei, Ada" {
		t.Fatalf("render = %q", result)
	}
}

func TestEngineStructData(t *testing.T) {
	engine := newEngine(t)

	type payload struct {
		Name string `json:"name"`
	}
	result, err := engine.Render("hello", payload{Name: "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("render = %q", result)
	}
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error when no template source configured")
	}
}
