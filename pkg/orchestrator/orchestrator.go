package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-stubgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-stubgen/internal/openapi/parser"
	"github.com/goliatone/go-stubgen/pkg/generators/laravel"
	"github.com/goliatone/go-stubgen/pkg/generators/lumen"
	"github.com/goliatone/go-stubgen/pkg/generators/slim"
	"github.com/goliatone/go-stubgen/pkg/generators/symfony"
	"github.com/goliatone/go-stubgen/pkg/model"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
	"github.com/goliatone/go-stubgen/pkg/render"
)

const defaultGeneratorName = laravel.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom stub model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a generator registry. Callers that supply their own
// registry are responsible for registering generators in it.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultGenerator overrides the generator used when a request omits an
// explicit Generator field.
func WithDefaultGenerator(name string) Option {
	return func(o *Orchestrator) {
		o.defaultGenerator = name
	}
}

// WithStubTransformer registers a Transformer that can mutate the stub model
// after building but before generators run.
func WithStubTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the full pipeline from OpenAPI document to rendered
// files. It applies sensible defaults (all built-in generators registered,
// laravel as the default) while remaining open to dependency injection for
// advanced callers.
type Orchestrator struct {
	loader           pkgopenapi.Loader
	parser           pkgopenapi.Parser
	builder          model.Builder
	registry         *render.Registry
	defaultGenerator string
	transformer      Transformer
	initialiseErr    error
	defaultsApplied  bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultGenerator: defaultGeneratorName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate server stubs from an
// OpenAPI document.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkgopenapi.Document

	// Generator names the framework template set to use. If empty, the
	// orchestrator falls back to the configured default generator.
	Generator string

	// RenderOptions carries per-request instructions such as a namespace
	// override or generator-specific properties. When omitted, generators
	// receive the zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → model builder → generator sequence
// and returns the rendered file set.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (render.Files, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	if len(operations) == 0 {
		return nil, errors.New("orchestrator: document declares no operations")
	}

	stub, err := o.builder.Build(operations)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build stub model: %w", err)
	}

	// Document metadata is best-effort; a stub without a title still renders.
	if info, infoErr := o.parser.Info(ctx, doc); infoErr == nil {
		stub.Title = info.Title
		stub.Version = info.Version
		stub.Description = info.Description
	}

	if err := o.applyTransformer(ctx, &stub); err != nil {
		return nil, err
	}

	generator, err := o.generatorFor(req.Generator)
	if err != nil {
		return nil, err
	}

	files, err := generator.Render(ctx, stub, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return files, nil
}

// Operations loads and parses the document, returning the operation map keyed
// by operation id. Used by callers that want to inspect a document without
// generating output.
func (o *Orchestrator) Operations(ctx context.Context, req Request) (map[string]pkgopenapi.Operation, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	return operations, nil
}

// Generators lists the registered generator names.
func (o *Orchestrator) Generators() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) generatorFor(name string) (render.Generator, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: generator registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultGenerator
	}

	if target != "" {
		generator, err := o.registry.Get(target)
		if err == nil {
			return generator, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: generator %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no generators registered")
	}

	generator, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: generator %q: %w", names[0], err)
	}
	return generator, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, stub *model.Stub) error {
	if o.transformer == nil || stub == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, stub); err != nil {
		return fmt.Errorf("orchestrator: transform stub: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registerBuiltins()
	}
	if o.defaultGenerator == "" {
		o.defaultGenerator = defaultGeneratorName
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerBuiltins() {
	type constructor struct {
		name string
		make func() (render.Generator, error)
	}
	builtins := []constructor{
		{laravel.Name, func() (render.Generator, error) { return laravel.New() }},
		{symfony.Name, func() (render.Generator, error) { return symfony.New() }},
		{slim.Name, func() (render.Generator, error) { return slim.New() }},
		{lumen.Name, func() (render.Generator, error) { return lumen.New() }},
	}
	for _, builtin := range builtins {
		generator, err := builtin.make()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default generator %s: %w", builtin.name, err)
			return
		}
		o.registry.MustRegister(generator)
	}
}
