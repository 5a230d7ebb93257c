// Package symfony renders stub models into Symfony application boilerplate:
// attribute-routed controllers, handler interfaces, DTO classes, and a
// constraint-map validator per operation with a request body.
package symfony

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-stubgen/pkg/model"
	"github.com/goliatone/go-stubgen/pkg/render"
	rendertemplate "github.com/goliatone/go-stubgen/pkg/render/template"
	mustache "github.com/goliatone/go-stubgen/pkg/render/template/mustache"
)

// Name identifies this template set in the registry.
const Name = "symfony"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Generator struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the Symfony generator applying any provided options.
func New(options ...Option) (*Generator, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := mustache.New(mustache.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("symfony generator: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Generator{templates: renderer}, nil
}

func (g *Generator) Name() string {
	return Name
}

// Render emits the full Symfony artifact set for the stub model.
func (g *Generator) Render(ctx context.Context, stub model.Stub, options render.RenderOptions) (render.Files, error) {
	if g.templates == nil {
		return nil, fmt.Errorf("symfony generator: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespace := stub.Namespace
	if options.Namespace != "" {
		namespace = options.Namespace
	}
	// Symfony skeletons root application code at the App namespace.
	if namespace == "" {
		namespace = "App"
	}

	var files render.Files
	emit := func(template, path string, data map[string]any) error {
		result, err := g.templates.Render("templates/"+template, data)
		if err != nil {
			return fmt.Errorf("symfony generator: render %s: %w", template, err)
		}
		files = append(files, render.File{Path: path, Contents: []byte(result)})
		return nil
	}

	for _, controller := range stub.Controllers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data := controllerContext(controller, namespace)
		if err := emit("controller", "src/Controller/"+controller.ClassName+".php", data); err != nil {
			return nil, err
		}
		if err := emit("api_interface", "src/Api/"+controller.InterfaceName+".php", data); err != nil {
			return nil, err
		}

		for _, op := range controller.Operations {
			if len(op.Rules) == 0 {
				continue
			}
			valData := validatorContext(op, namespace)
			className := valData["className"].(string)
			if err := emit("validator", "src/Validator/"+className+".php", valData); err != nil {
				return nil, err
			}
		}
	}

	for _, class := range stub.Models {
		if err := emit("dto", "src/Dto/"+class.Name+".php", dtoContext(class, namespace)); err != nil {
			return nil, err
		}
	}

	if err := emit("routes_yaml", "config/routes.yaml", map[string]any{
		"title":   stub.Title,
		"version": stub.Version,
	}); err != nil {
		return nil, err
	}

	files.Sort()
	if err := files.Validate(); err != nil {
		return nil, fmt.Errorf("symfony generator: %w", err)
	}
	return files, nil
}
