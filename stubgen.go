// Package stubgen turns OpenAPI 3 documents into PHP server-stub boilerplate
// for Laravel, Symfony, Slim, and Lumen. The root package re-exports the
// orchestrator entry points so most callers only need a single import.
package stubgen

import (
	"context"

	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
	"github.com/goliatone/go-stubgen/pkg/orchestrator"
	"github.com/goliatone/go-stubgen/pkg/render"
)

// RenderOptions describes per-request overrides such as a namespace override
// or generator-specific properties.
type RenderOptions = render.RenderOptions

// Files is the rendered artifact set returned by generators.
type Files = render.Files

// File is a single rendered artifact with a slash-separated relative path.
type File = render.File

// Request describes the inputs for a generation run.
type Request = orchestrator.Request

// Transformer mutates the stub model between building and rendering.
type Transformer = orchestrator.Transformer

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc = orchestrator.TransformerFunc

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to customise the pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the OpenAPI source, builds the stub model, and renders it
// with the named generator. It is the simplest entry point for callers that
// just want the file set.
func Generate(ctx context.Context, source pkgopenapi.Source, generatorName string, options ...orchestrator.Option) (render.Files, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:    source,
		Generator: generatorName,
	})
}

// GenerateFromDocument renders stubs using a pre-loaded document, bypassing
// the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkgopenapi.Document, generatorName string, options ...orchestrator.Option) (render.Files, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:  &doc,
		Generator: generatorName,
	})
}

// WithStubTransformer registers a transformer that can rewrite the stub model
// before generators run.
func WithStubTransformer(t Transformer) orchestrator.Option {
	return orchestrator.WithStubTransformer(t)
}

// WithDefaultGenerator overrides the generator used when a request omits an
// explicit generator name.
func WithDefaultGenerator(name string) orchestrator.Option {
	return orchestrator.WithDefaultGenerator(name)
}
